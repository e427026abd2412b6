package yardinfo

import "time"

// daily_yard_infos のDB行
type yardInfoRow struct {
	ID            uint64
	Date          string
	LoadingPerson string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// daily_remarks のDB行
type remarkRow struct {
	ID        uint64
	Date      string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type YardInfo struct {
	ID            uint64
	Date          string
	LoadingPerson string
}

type Remark struct {
	ID      uint64
	Date    string
	Content string
}

func (r yardInfoRow) toModel() YardInfo {
	return YardInfo{ID: r.ID, Date: r.Date, LoadingPerson: r.LoadingPerson}
}

func (r remarkRow) toModel() Remark {
	return Remark{ID: r.ID, Date: r.Date, Content: r.Content}
}

func (y YardInfo) toDTO() YardInfoResponse {
	return YardInfoResponse{ID: y.ID, Date: y.Date, LoadingPerson: y.LoadingPerson}
}

func (r Remark) toDTO() RemarkResponse {
	return RemarkResponse{ID: r.ID, Date: r.Date, Content: r.Content}
}
