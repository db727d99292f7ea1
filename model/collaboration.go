package model

type Collaboration struct {
	ID         string `json:"id" gorm:"primaryKey"`
	PlaylistID string `json:"playlistId" gorm:"uniqueIndex:idx_playlist_collaborator"`
	UserID     string `json:"userId" gorm:"uniqueIndex:idx_playlist_collaborator"`
}

// CollaborationPayload is the add/remove request body.
type CollaborationPayload struct {
	PlaylistID string `json:"playlistId" binding:"required"`
	UserID     string `json:"userId" binding:"required"`
}
