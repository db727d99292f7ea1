package model

import "time"

type Song struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title"`
	Year      int       `json:"year"`
	Genre     string    `json:"genre"`
	Performer string    `json:"performer"`
	Duration  *int      `json:"duration,omitempty"`
	AlbumID   *string   `json:"albumId,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// SongPayload is the create/update request body.
type SongPayload struct {
	Title     string  `json:"title" binding:"required"`
	Year      int     `json:"year" binding:"required,gte=1900"`
	Genre     string  `json:"genre" binding:"required"`
	Performer string  `json:"performer" binding:"required"`
	Duration  *int    `json:"duration"`
	AlbumID   *string `json:"albumId"`
}

// SongSummary is the trimmed shape used in list responses.
type SongSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Performer string `json:"performer"`
}
