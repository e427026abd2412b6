package absence

import "time"

// DB行に対応（スキャン用）
type absenteeRow struct {
	ID        uint64
	Date      string // "YYYY-MM-DD"
	Name      string
	CreatedAt time.Time
}

// Service ↔ Store で使うモデル
type Absentee struct {
	ID        uint64
	Date      string
	Name      string
	CreatedAt time.Time
}

func (r absenteeRow) toModel() Absentee {
	return Absentee{
		ID:        r.ID,
		Date:      r.Date,
		Name:      r.Name,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

func (a Absentee) toDTO() AbsenteeResponse {
	return AbsenteeResponse{
		ID:        a.ID,
		Date:      a.Date,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
	}
}
