package shipment

import "time"

// 任意項目はすべてポインタ。nil は「リクエストに含まれていない」を意味し、
// 更新時に既存値を潰さない（出荷だけが部分適用の対象）。
type UpsertShipmentRequest struct {
	Date        string  `json:"date"`
	ColumnIndex *int    `json:"columnIndex"` // 0 が有効値なのでポインタ
	Category    string  `json:"category"`
	Trailer     *string `json:"trailer"`
	Time        *string `json:"time"`
	Destination *string `json:"destination"`
	Cargo       *string `json:"cargo"`
	Remarks     *string `json:"remarks"`
}

type UpdateShipmentRequest struct {
	ID          *uint64 `json:"id"`
	Date        *string `json:"date"`
	ColumnIndex *int    `json:"columnIndex"`
	Category    *string `json:"category"`
	Trailer     *string `json:"trailer"`
	Time        *string `json:"time"`
	Destination *string `json:"destination"`
	Cargo       *string `json:"cargo"`
	Remarks     *string `json:"remarks"`
}

type ShipmentResponse struct {
	ID          uint64    `json:"id"`
	Date        string    `json:"date"`
	ColumnIndex int       `json:"columnIndex"`
	Category    string    `json:"category"`
	Trailer     string    `json:"trailer"`
	Time        *string   `json:"time"`
	Destination *string   `json:"destination"`
	Cargo       *string   `json:"cargo"`
	Remarks     *string   `json:"remarks"`
	CreatedAt   time.Time `json:"createdAt"`
}

type DeleteResponse struct {
	Success bool `json:"success"`
}
