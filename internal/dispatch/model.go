package dispatch

import "time"

// dispatch_entries のDB行
type entryRow struct {
	ID        uint64
	Date      string
	VehicleID string
	SlotIndex int
	Pickup    *string
	Delivery  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// daily_drivers のDB行
type driverRow struct {
	ID         uint64
	Date       string
	VehicleID  string
	DriverName string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Entry struct {
	ID        uint64
	Date      string
	VehicleID string
	SlotIndex int
	Pickup    *string
	Delivery  *string
}

type Driver struct {
	ID         uint64
	Date       string
	VehicleID  string
	DriverName string
}

func (r entryRow) toModel() Entry {
	return Entry{
		ID:        r.ID,
		Date:      r.Date,
		VehicleID: r.VehicleID,
		SlotIndex: r.SlotIndex,
		Pickup:    r.Pickup,
		Delivery:  r.Delivery,
	}
}

func (r driverRow) toModel() Driver {
	return Driver{ID: r.ID, Date: r.Date, VehicleID: r.VehicleID, DriverName: r.DriverName}
}

func (e Entry) toDTO() EntryResponse {
	return EntryResponse{
		ID:        e.ID,
		Date:      e.Date,
		VehicleID: e.VehicleID,
		SlotIndex: e.SlotIndex,
		Pickup:    e.Pickup,
		Delivery:  e.Delivery,
	}
}

func (d Driver) toDTO() DriverResponse {
	return DriverResponse{ID: d.ID, Date: d.Date, VehicleID: d.VehicleID, DriverName: d.DriverName}
}
