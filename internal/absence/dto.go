package absence

import "time"

type CreateAbsenteeRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

type AbsenteeResponse struct {
	ID        uint64    `json:"id"`
	Date      string    `json:"date"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
