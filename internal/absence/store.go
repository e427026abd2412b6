package absence

import (
	"context"

	"yardboard-backend/internal/platform/db"
)

type Store struct{ db db.DBTX }

func NewStore(dbtx db.DBTX) *Store { return &Store{db: dbtx} }

// Insert: 欠勤者は常に新規行。同じ日に同名が来ても重複扱いしない。
func (s *Store) Insert(ctx context.Context, date, name string) (Absentee, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO absentees (date, name) VALUES (?, ?)`, date, name)
	if err != nil {
		return Absentee{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Absentee{}, err
	}

	row := s.db.QueryRowContext(ctx, `
	SELECT id, date, name, created_at FROM absentees WHERE id = ?`, id)
	var r absenteeRow
	if err := row.Scan(&r.ID, &r.Date, &r.Name, &r.CreatedAt); err != nil {
		return Absentee{}, err
	}
	return r.toModel(), nil
}

// ListByDate: 作成日時の昇順。画面の並び順がこれに依存する。
func (s *Store) ListByDate(ctx context.Context, date string) ([]Absentee, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT id, date, name, created_at FROM absentees
	WHERE date = ?
	ORDER BY created_at ASC, id ASC`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Absentee
	for rows.Next() {
		var r absenteeRow
		if err := rows.Scan(&r.ID, &r.Date, &r.Name, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r.toModel())
	}
	return out, rows.Err()
}
