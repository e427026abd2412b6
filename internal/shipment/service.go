package shipment

import (
	"context"
	"database/sql"
	"log"

	"yardboard-backend/internal/platform/apperr"
)

type store interface {
	Upsert(ctx context.Context, in UpsertShipmentRequest) (Shipment, error)
	UpdateByID(ctx context.Context, id uint64, in UpdateShipmentRequest) (Shipment, error)
	DeleteByID(ctx context.Context, id uint64) error
	ListByDate(ctx context.Context, date string) ([]Shipment, error)
}

type Service struct {
	store store
}

func NewService(conn *sql.DB) *Service {
	return &Service{store: NewStore(conn)}
}

func newServiceWithStore(st store) *Service { return &Service{store: st} }

// GET /shipments
func (s *Service) List(ctx context.Context, date string) ([]ShipmentResponse, error) {
	if date == "" {
		return nil, apperr.Invalid("date is required")
	}
	rows, err := s.store.ListByDate(ctx, date)
	if err != nil {
		log.Printf("[ERROR] list shipments: %v", err)
		return nil, apperr.Internal("failed to fetch shipments")
	}
	out := make([]ShipmentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDTO())
	}
	return out, nil
}

// POST /shipments
// columnIndex は 0 が有効値なのでポインタで存在チェックする
func (s *Service) Upsert(ctx context.Context, in UpsertShipmentRequest) (ShipmentResponse, error) {
	if in.Date == "" || in.ColumnIndex == nil || in.Category == "" {
		return ShipmentResponse{}, apperr.Invalid("date, columnIndex and category are required")
	}
	row, err := s.store.Upsert(ctx, in)
	if err != nil {
		log.Printf("[ERROR] upsert shipment: %v", err)
		return ShipmentResponse{}, apperr.Internal("failed to save shipment")
	}
	return row.toDTO(), nil
}

// PUT /shipments
// 存在しない id への更新は書き込み失敗として500で返す（404にしない）
func (s *Service) UpdateByID(ctx context.Context, in UpdateShipmentRequest) (ShipmentResponse, error) {
	if in.ID == nil {
		return ShipmentResponse{}, apperr.Invalid("id is required")
	}
	row, err := s.store.UpdateByID(ctx, *in.ID, in)
	if err != nil {
		log.Printf("[ERROR] update shipment id=%d: %v", *in.ID, err)
		return ShipmentResponse{}, apperr.Internal("failed to update shipment")
	}
	return row.toDTO(), nil
}

// DELETE /shipments?id=
// 2回目の削除も書き込み失敗（success:true を返さない）
func (s *Service) DeleteByID(ctx context.Context, id uint64) error {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		log.Printf("[ERROR] delete shipment id=%d: %v", id, err)
		return apperr.Internal("failed to delete shipment")
	}
	return nil
}
