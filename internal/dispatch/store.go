package dispatch

import (
	"context"

	"yardboard-backend/internal/platform/db"
)

type Store struct{ db db.DBTX }

func NewStore(dbtx db.DBTX) *Store { return &Store{db: dbtx} }

// UpsertEntry: (date, vehicle_id, slot_index) のUNIQUEキーでINSERTまたはUPDATE。
// 積み・降ろしは丸ごと置き換え（部分適用があるのは出荷のみ）。
func (s *Store) UpsertEntry(ctx context.Context, date, vehicleID string, slotIndex int, pickup, delivery *string) (Entry, error) {
	_, err := s.db.ExecContext(ctx, `
	INSERT INTO dispatch_entries (date, vehicle_id, slot_index, pickup, delivery)
	VALUES (?, ?, ?, ?, ?)
	ON DUPLICATE KEY UPDATE
	pickup   = VALUES(pickup),
	delivery = VALUES(delivery)`,
		date, vehicleID, slotIndex, nullable(pickup), nullable(delivery))
	if err != nil {
		return Entry{}, err
	}

	// 最終行を取得（UNIQUEキーで）
	row := s.db.QueryRowContext(ctx, `
	SELECT id, date, vehicle_id, slot_index, pickup, delivery, created_at, updated_at
	FROM dispatch_entries
	WHERE date = ? AND vehicle_id = ? AND slot_index = ?`,
		date, vehicleID, slotIndex)
	var r entryRow
	if err := row.Scan(&r.ID, &r.Date, &r.VehicleID, &r.SlotIndex, &r.Pickup, &r.Delivery, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return Entry{}, err
	}
	return r.toModel(), nil
}

func (s *Store) ListEntriesByDate(ctx context.Context, date string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT id, date, vehicle_id, slot_index, pickup, delivery, created_at, updated_at
	FROM dispatch_entries
	WHERE date = ?
	ORDER BY created_at ASC, id ASC`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var r entryRow
		if err := rows.Scan(&r.ID, &r.Date, &r.VehicleID, &r.SlotIndex, &r.Pickup, &r.Delivery, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, r.toModel())
	}
	return out, rows.Err()
}

// UpsertDriver: (date, vehicle_id) のUNIQUEキーでINSERTまたはUPDATE。
func (s *Store) UpsertDriver(ctx context.Context, date, vehicleID, driverName string) (Driver, error) {
	_, err := s.db.ExecContext(ctx, `
	INSERT INTO daily_drivers (date, vehicle_id, driver_name)
	VALUES (?, ?, ?)
	ON DUPLICATE KEY UPDATE driver_name = VALUES(driver_name)`,
		date, vehicleID, driverName)
	if err != nil {
		return Driver{}, err
	}

	row := s.db.QueryRowContext(ctx, `
	SELECT id, date, vehicle_id, driver_name, created_at, updated_at
	FROM daily_drivers
	WHERE date = ? AND vehicle_id = ?`, date, vehicleID)
	var r driverRow
	if err := row.Scan(&r.ID, &r.Date, &r.VehicleID, &r.DriverName, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return Driver{}, err
	}
	return r.toModel(), nil
}

func (s *Store) ListDriversByDate(ctx context.Context, date string) ([]Driver, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT id, date, vehicle_id, driver_name, created_at, updated_at
	FROM daily_drivers
	WHERE date = ?
	ORDER BY created_at ASC, id ASC`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Driver
	for rows.Next() {
		var r driverRow
		if err := rows.Scan(&r.ID, &r.Date, &r.VehicleID, &r.DriverName, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, r.toModel())
	}
	return out, rows.Err()
}

// nullable: nil は NULL、空文字はクリア操作としてそのまま格納する
func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
