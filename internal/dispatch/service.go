package dispatch

import (
	"context"
	"database/sql"
	"log"

	"yardboard-backend/internal/platform/apperr"
)

type store interface {
	UpsertEntry(ctx context.Context, date, vehicleID string, slotIndex int, pickup, delivery *string) (Entry, error)
	ListEntriesByDate(ctx context.Context, date string) ([]Entry, error)
	UpsertDriver(ctx context.Context, date, vehicleID, driverName string) (Driver, error)
	ListDriversByDate(ctx context.Context, date string) ([]Driver, error)
}

type Service struct {
	store store
}

func NewService(conn *sql.DB) *Service {
	return &Service{store: NewStore(conn)}
}

func newServiceWithStore(st store) *Service { return &Service{store: st} }

// GET /dispatch
func (s *Service) ListEntries(ctx context.Context, date string) ([]EntryResponse, error) {
	if date == "" {
		return nil, apperr.Invalid("date is required")
	}
	rows, err := s.store.ListEntriesByDate(ctx, date)
	if err != nil {
		log.Printf("[ERROR] list dispatch entries: %v", err)
		return nil, apperr.Internal("failed to fetch dispatch entries")
	}
	out := make([]EntryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDTO())
	}
	return out, nil
}

// POST /dispatch
// slotIndex は存在チェック（0 を有効値として扱う）。他のキー項目も同じ方針。
func (s *Service) UpsertEntry(ctx context.Context, in UpsertEntryRequest) (EntryResponse, error) {
	if in.Date == "" || in.VehicleID == "" || in.SlotIndex == nil {
		return EntryResponse{}, apperr.Invalid("date, vehicleId and slotIndex are required")
	}
	row, err := s.store.UpsertEntry(ctx, in.Date, in.VehicleID, *in.SlotIndex, in.Pickup, in.Delivery)
	if err != nil {
		log.Printf("[ERROR] upsert dispatch entry: %v", err)
		return EntryResponse{}, apperr.Internal("failed to save dispatch entry")
	}
	return row.toDTO(), nil
}

// GET /drivers
func (s *Service) ListDrivers(ctx context.Context, date string) ([]DriverResponse, error) {
	if date == "" {
		return nil, apperr.Invalid("date is required")
	}
	rows, err := s.store.ListDriversByDate(ctx, date)
	if err != nil {
		log.Printf("[ERROR] list daily drivers: %v", err)
		return nil, apperr.Internal("failed to fetch drivers")
	}
	out := make([]DriverResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDTO())
	}
	return out, nil
}

// POST /drivers
func (s *Service) UpsertDriver(ctx context.Context, in UpsertDriverRequest) (DriverResponse, error) {
	if in.Date == "" || in.VehicleID == "" || in.DriverName == "" {
		return DriverResponse{}, apperr.Invalid("date, vehicleId and driverName are required")
	}
	row, err := s.store.UpsertDriver(ctx, in.Date, in.VehicleID, in.DriverName)
	if err != nil {
		log.Printf("[ERROR] upsert daily driver: %v", err)
		return DriverResponse{}, apperr.Internal("failed to save driver")
	}
	return row.toDTO(), nil
}
