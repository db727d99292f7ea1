package model

// ExportPayload is the POST /export/playlists/:id request body.
type ExportPayload struct {
	TargetEmail string `json:"targetEmail" binding:"required,email"`
}
