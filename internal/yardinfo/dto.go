package yardinfo

type UpsertYardInfoRequest struct {
	Date          string `json:"date"`
	LoadingPerson string `json:"loadingPerson"`
}

type UpsertRemarkRequest struct {
	Date    string `json:"date"`
	Content string `json:"content"`
}

// id/date は omitempty: 未入力日のデフォルト応答を
// {"loadingPerson":""} だけにするため。
type YardInfoResponse struct {
	ID            uint64 `json:"id,omitempty"`
	Date          string `json:"date,omitempty"`
	LoadingPerson string `json:"loadingPerson"`
}

type RemarkResponse struct {
	ID      uint64 `json:"id,omitempty"`
	Date    string `json:"date,omitempty"`
	Content string `json:"content"`
}
