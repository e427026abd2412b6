package dispatch

type UpsertEntryRequest struct {
	Date      string `json:"date"`
	VehicleID string `json:"vehicleId"`
	// slotIndex は 0 が有効値なのでポインタで有無を判定する
	SlotIndex *int    `json:"slotIndex"`
	Pickup    *string `json:"pickup"`
	Delivery  *string `json:"delivery"`
}

type UpsertDriverRequest struct {
	Date       string `json:"date"`
	VehicleID  string `json:"vehicleId"`
	DriverName string `json:"driverName"`
}

type EntryResponse struct {
	ID        uint64  `json:"id"`
	Date      string  `json:"date"`
	VehicleID string  `json:"vehicleId"`
	SlotIndex int     `json:"slotIndex"`
	Pickup    *string `json:"pickup"`
	Delivery  *string `json:"delivery"`
}

type DriverResponse struct {
	ID         uint64 `json:"id"`
	Date       string `json:"date"`
	VehicleID  string `json:"vehicleId"`
	DriverName string `json:"driverName"`
}
