package shipment

import "time"

// shipments のDB行
type shipmentRow struct {
	ID          uint64
	Date        string
	ColumnIndex int
	Category    string
	Trailer     string
	Time        *string
	Destination *string
	Cargo       *string
	Remarks     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Shipment struct {
	ID          uint64
	Date        string
	ColumnIndex int
	Category    string
	Trailer     string
	Time        *string
	Destination *string
	Cargo       *string
	Remarks     *string
	CreatedAt   time.Time
}

func (r shipmentRow) toModel() Shipment {
	return Shipment{
		ID:          r.ID,
		Date:        r.Date,
		ColumnIndex: r.ColumnIndex,
		Category:    r.Category,
		Trailer:     r.Trailer,
		Time:        r.Time,
		Destination: r.Destination,
		Cargo:       r.Cargo,
		Remarks:     r.Remarks,
		CreatedAt:   r.CreatedAt.UTC(),
	}
}

func (m Shipment) toDTO() ShipmentResponse {
	return ShipmentResponse{
		ID:          m.ID,
		Date:        m.Date,
		ColumnIndex: m.ColumnIndex,
		Category:    m.Category,
		Trailer:     m.Trailer,
		Time:        m.Time,
		Destination: m.Destination,
		Cargo:       m.Cargo,
		Remarks:     m.Remarks,
		CreatedAt:   m.CreatedAt,
	}
}
