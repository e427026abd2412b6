package yardinfo

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"yardboard-backend/internal/platform/apperr"
)

type store interface {
	GetYardInfo(ctx context.Context, date string) (YardInfo, error)
	UpsertYardInfo(ctx context.Context, date, loadingPerson string) (YardInfo, error)
	GetRemark(ctx context.Context, date string) (Remark, error)
	UpsertRemark(ctx context.Context, date, content string) (Remark, error)
}

type Service struct {
	store store
}

func NewService(conn *sql.DB) *Service {
	return &Service{store: NewStore(conn)}
}

func newServiceWithStore(st store) *Service { return &Service{store: st} }

// GET /daily-yard-info
func (s *Service) GetYardInfo(ctx context.Context, date string) (YardInfoResponse, error) {
	if date == "" {
		return YardInfoResponse{}, apperr.Invalid("date is required")
	}
	row, err := s.store.GetYardInfo(ctx, date)
	if errors.Is(err, sql.ErrNoRows) {
		// 未入力日はデフォルト値を返す。UI側に「まだ無い」を特別扱いさせない。
		return YardInfoResponse{LoadingPerson: ""}, nil
	}
	if err != nil {
		log.Printf("[ERROR] get daily yard info: %v", err)
		return YardInfoResponse{}, apperr.Internal("failed to fetch daily yard info")
	}
	return row.toDTO(), nil
}

// POST /daily-yard-info
func (s *Service) UpsertYardInfo(ctx context.Context, in UpsertYardInfoRequest) (YardInfoResponse, error) {
	if in.Date == "" {
		return YardInfoResponse{}, apperr.Invalid("date is required")
	}
	row, err := s.store.UpsertYardInfo(ctx, in.Date, in.LoadingPerson)
	if err != nil {
		log.Printf("[ERROR] upsert daily yard info: %v", err)
		return YardInfoResponse{}, apperr.Internal("failed to update daily yard info")
	}
	return row.toDTO(), nil
}

// GET /remarks
func (s *Service) GetRemark(ctx context.Context, date string) (RemarkResponse, error) {
	if date == "" {
		return RemarkResponse{}, apperr.Invalid("date is required")
	}
	row, err := s.store.GetRemark(ctx, date)
	if errors.Is(err, sql.ErrNoRows) {
		return RemarkResponse{Content: ""}, nil
	}
	if err != nil {
		log.Printf("[ERROR] get daily remark: %v", err)
		return RemarkResponse{}, apperr.Internal("failed to fetch remark")
	}
	return row.toDTO(), nil
}

// POST /remarks
func (s *Service) UpsertRemark(ctx context.Context, in UpsertRemarkRequest) (RemarkResponse, error) {
	if in.Date == "" {
		return RemarkResponse{}, apperr.Invalid("date is required")
	}
	row, err := s.store.UpsertRemark(ctx, in.Date, in.Content)
	if err != nil {
		log.Printf("[ERROR] upsert daily remark: %v", err)
		return RemarkResponse{}, apperr.Internal("failed to save remark")
	}
	return row.toDTO(), nil
}
