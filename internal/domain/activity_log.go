package domain

import (
	"time"

	jsoniter "github.com/json-iterator/go"
)

// ActivityLog records an admin action (create/edit/delete of datasets or
// monitoring records). Writes are best effort and never block the main flow.
type ActivityLog struct {
	ID        string              `json:"id"`
	UserName  string              `json:"namaUser"`
	Action    string              `json:"aksi"`
	Related   jsoniter.RawMessage `json:"dataTerkait,omitempty"`
	CreatedAt time.Time           `json:"waktu"`
}
