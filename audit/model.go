// audit/model.go
package audit

import "time"

// Entry is a single recorded mutation of a catalog entity.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"user_id,omitempty"`
	Action    string    `json:"action"` // create, update, delete, like, unlike
	Entity    string    `json:"entity"` // album, song, user, playlist, ...
	EntityID  string    `json:"entity_id"`
}
