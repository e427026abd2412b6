package shipment

import (
	"context"
	"database/sql"
	"strings"

	"yardboard-backend/internal/platform/db"
)

// 出荷ストアは部分更新のためTxを張るので *sql.DB を直接持つ
type Store struct{ conn *sql.DB }

func NewStore(conn *sql.DB) *Store { return &Store{conn: conn} }

// Upsert: (date, column_index, category) のUNIQUEキーで検索し、
// 既存行にはリクエストに明示されたフィールドだけを適用、無ければ新規作成する。
// 部分適用なので ON DUPLICATE KEY UPDATE ではなく Tx内の SELECT → UPDATE/INSERT。
func (s *Store) Upsert(ctx context.Context, in UpsertShipmentRequest) (Shipment, error) {
	var out Shipment
	err := db.RunInTx(ctx, s.conn, nil, func(ctx context.Context, tx db.DBTX) error {
		row := tx.QueryRowContext(ctx, `
		SELECT id FROM shipments
		WHERE date = ? AND column_index = ? AND category = ?
		FOR UPDATE`, in.Date, *in.ColumnIndex, in.Category)

		var id uint64
		err := row.Scan(&id)
		switch {
		case err == sql.ErrNoRows:
			// 新規作成。trailer だけは NULL でなく空文字をデフォルトにする。
			trailer := ""
			if in.Trailer != nil {
				trailer = *in.Trailer
			}
			res, err := tx.ExecContext(ctx, `
			INSERT INTO shipments (date, column_index, category, trailer, time, destination, cargo, remarks)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				in.Date, *in.ColumnIndex, in.Category, trailer,
				nullable(in.Time), nullable(in.Destination), nullable(in.Cargo), nullable(in.Remarks))
			if err != nil {
				return err
			}
			newID, err := res.LastInsertId()
			if err != nil {
				return err
			}
			id = uint64(newID)
		case err != nil:
			return err
		default:
			sets, args := sparseSet(in)
			if len(sets) > 0 {
				args = append(args, id)
				if _, err := tx.ExecContext(ctx,
					"UPDATE shipments SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...); err != nil {
					return err
				}
			}
		}

		got, err := getByID(ctx, tx, id)
		if err != nil {
			return err
		}
		out = got
		return nil
	})
	return out, err
}

// UpdateByID: id 指定で任意のフィールド集合を置き換える。
// 行が無ければ sql.ErrNoRows（呼び出し側で書き込み失敗として扱う）。
func (s *Store) UpdateByID(ctx context.Context, id uint64, in UpdateShipmentRequest) (Shipment, error) {
	var out Shipment
	err := db.RunInTx(ctx, s.conn, nil, func(ctx context.Context, tx db.DBTX) error {
		var found uint64
		if err := tx.QueryRowContext(ctx,
			`SELECT id FROM shipments WHERE id = ? FOR UPDATE`, id).Scan(&found); err != nil {
			return err
		}

		sets, args := updateSet(in)
		if len(sets) > 0 {
			args = append(args, id)
			if _, err := tx.ExecContext(ctx,
				"UPDATE shipments SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...); err != nil {
				return err
			}
		}

		got, err := getByID(ctx, tx, id)
		if err != nil {
			return err
		}
		out = got
		return nil
	})
	return out, err
}

// DeleteByID: 行が無ければ sql.ErrNoRows（2回目の削除は失敗になる）
func (s *Store) DeleteByID(ctx context.Context, id uint64) error {
	res, err := s.conn.ExecContext(ctx, `DELETE FROM shipments WHERE id = ?`, id)
	if err != nil {
		return err
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListByDate: 作成日時の昇順（グリッドの列の並びがこれに依存する）
func (s *Store) ListByDate(ctx context.Context, date string) ([]Shipment, error) {
	rows, err := s.conn.QueryContext(ctx, `
	SELECT id, date, column_index, category, trailer, time, destination, cargo, remarks, created_at, updated_at
	FROM shipments
	WHERE date = ?
	ORDER BY created_at ASC, id ASC`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Shipment
	for rows.Next() {
		var r shipmentRow
		if err := rows.Scan(&r.ID, &r.Date, &r.ColumnIndex, &r.Category, &r.Trailer,
			&r.Time, &r.Destination, &r.Cargo, &r.Remarks, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, r.toModel())
	}
	return out, rows.Err()
}

func getByID(ctx context.Context, tx db.DBTX, id uint64) (Shipment, error) {
	row := tx.QueryRowContext(ctx, `
	SELECT id, date, column_index, category, trailer, time, destination, cargo, remarks, created_at, updated_at
	FROM shipments WHERE id = ?`, id)
	var r shipmentRow
	if err := row.Scan(&r.ID, &r.Date, &r.ColumnIndex, &r.Category, &r.Trailer,
		&r.Time, &r.Destination, &r.Cargo, &r.Remarks, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return Shipment{}, err
	}
	return r.toModel(), nil
}

// sparseSet: リクエストに明示されたフィールドだけをSET句にする
func sparseSet(in UpsertShipmentRequest) ([]string, []any) {
	var sets []string
	var args []any
	if in.Trailer != nil {
		sets = append(sets, "trailer = ?")
		args = append(args, *in.Trailer)
	}
	if in.Time != nil {
		sets = append(sets, "time = ?")
		args = append(args, *in.Time)
	}
	if in.Destination != nil {
		sets = append(sets, "destination = ?")
		args = append(args, *in.Destination)
	}
	if in.Cargo != nil {
		sets = append(sets, "cargo = ?")
		args = append(args, *in.Cargo)
	}
	if in.Remarks != nil {
		sets = append(sets, "remarks = ?")
		args = append(args, *in.Remarks)
	}
	return sets, args
}

func updateSet(in UpdateShipmentRequest) ([]string, []any) {
	var sets []string
	var args []any
	if in.Date != nil {
		sets = append(sets, "date = ?")
		args = append(args, *in.Date)
	}
	if in.ColumnIndex != nil {
		sets = append(sets, "column_index = ?")
		args = append(args, *in.ColumnIndex)
	}
	if in.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *in.Category)
	}
	if in.Trailer != nil {
		sets = append(sets, "trailer = ?")
		args = append(args, *in.Trailer)
	}
	if in.Time != nil {
		sets = append(sets, "time = ?")
		args = append(args, *in.Time)
	}
	if in.Destination != nil {
		sets = append(sets, "destination = ?")
		args = append(args, *in.Destination)
	}
	if in.Cargo != nil {
		sets = append(sets, "cargo = ?")
		args = append(args, *in.Cargo)
	}
	if in.Remarks != nil {
		sets = append(sets, "remarks = ?")
		args = append(args, *in.Remarks)
	}
	return sets, args
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
