package yardinfo

import (
	"context"

	"yardboard-backend/internal/platform/db"
)

type Store struct{ db db.DBTX }

func NewStore(dbtx db.DBTX) *Store { return &Store{db: dbtx} }

// GetYardInfo: 行が無ければ sql.ErrNoRows をそのまま返す（デフォルト応答はService側）
func (s *Store) GetYardInfo(ctx context.Context, date string) (YardInfo, error) {
	row := s.db.QueryRowContext(ctx, `
	SELECT id, date, loading_person, created_at, updated_at
	FROM daily_yard_infos WHERE date = ?`, date)
	var r yardInfoRow
	if err := row.Scan(&r.ID, &r.Date, &r.LoadingPerson, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return YardInfo{}, err
	}
	return r.toModel(), nil
}

// UpsertYardInfo: date のUNIQUEキーでINSERTまたはUPDATE → 確定行を再取得
func (s *Store) UpsertYardInfo(ctx context.Context, date, loadingPerson string) (YardInfo, error) {
	_, err := s.db.ExecContext(ctx, `
	INSERT INTO daily_yard_infos (date, loading_person) VALUES (?, ?)
	ON DUPLICATE KEY UPDATE loading_person = VALUES(loading_person)`,
		date, loadingPerson)
	if err != nil {
		return YardInfo{}, err
	}
	return s.GetYardInfo(ctx, date)
}

func (s *Store) GetRemark(ctx context.Context, date string) (Remark, error) {
	row := s.db.QueryRowContext(ctx, `
	SELECT id, date, content, created_at, updated_at
	FROM daily_remarks WHERE date = ?`, date)
	var r remarkRow
	if err := row.Scan(&r.ID, &r.Date, &r.Content, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return Remark{}, err
	}
	return r.toModel(), nil
}

func (s *Store) UpsertRemark(ctx context.Context, date, content string) (Remark, error) {
	_, err := s.db.ExecContext(ctx, `
	INSERT INTO daily_remarks (date, content) VALUES (?, ?)
	ON DUPLICATE KEY UPDATE content = VALUES(content)`,
		date, content)
	if err != nil {
		return Remark{}, err
	}
	return s.GetRemark(ctx, date)
}
