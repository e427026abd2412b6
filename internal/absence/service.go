package absence

import (
	"context"
	"database/sql"
	"log"

	"yardboard-backend/internal/platform/apperr"
)

type store interface {
	Insert(ctx context.Context, date, name string) (Absentee, error)
	ListByDate(ctx context.Context, date string) ([]Absentee, error)
}

type Service struct {
	store store
}

func NewService(conn *sql.DB) *Service {
	return &Service{store: NewStore(conn)}
}

func newServiceWithStore(st store) *Service { return &Service{store: st} }

// GET /absentees
func (s *Service) List(ctx context.Context, date string) ([]AbsenteeResponse, error) {
	if date == "" {
		return nil, apperr.Invalid("date is required")
	}
	rows, err := s.store.ListByDate(ctx, date)
	if err != nil {
		log.Printf("[ERROR] list absentees: %v", err)
		return nil, apperr.Internal("failed to fetch absentees")
	}
	out := make([]AbsenteeResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDTO())
	}
	return out, nil
}

// POST /absentees
func (s *Service) Create(ctx context.Context, in CreateAbsenteeRequest) (AbsenteeResponse, error) {
	if in.Date == "" || in.Name == "" {
		return AbsenteeResponse{}, apperr.Invalid("date and name are required")
	}
	row, err := s.store.Insert(ctx, in.Date, in.Name)
	if err != nil {
		log.Printf("[ERROR] create absentee: %v", err)
		return AbsenteeResponse{}, apperr.Internal("failed to create absentee")
	}
	return row.toDTO(), nil
}
