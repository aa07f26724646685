package domain

import jsoniter "github.com/json-iterator/go"

// Dataset is one Pre-Post Test training result set: a title, the two test
// dates and the raw per-participant rows as uploaded.
type Dataset struct {
	ID        string              `json:"id"`
	Title     string              `json:"title"`
	PreDate   string              `json:"preDate"`
	PostDate  string              `json:"postDate"`
	Raw       jsoniter.RawMessage `json:"raw"`
	CreatedAt int64               `json:"createdAt"`
}

// ParticipantCount reads the number of rows in the raw payload without
// committing to its column layout.
func (d *Dataset) ParticipantCount() int {
	var rows []jsoniter.RawMessage
	if err := json.Unmarshal(d.Raw, &rows); err != nil {
		return 0
	}
	return len(rows)
}
