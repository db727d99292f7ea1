package model

import "time"

type Album struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Year      int       `json:"year"`
	Cover     *string   `json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// AlbumPayload is the create/update request body.
type AlbumPayload struct {
	Name string `json:"name" binding:"required"`
	Year int    `json:"year" binding:"required,gte=1900"`
}

// AlbumDetail is the GET /albums/:id response shape: the album joined with
// its songs and an absolute cover URL (null when no cover was uploaded).
type AlbumDetail struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Year     int           `json:"year"`
	CoverURL *string       `json:"coverUrl"`
	Songs    []SongSummary `json:"songs"`
}

type UserAlbumLike struct {
	ID      string `json:"id" gorm:"primaryKey"`
	UserID  string `json:"user_id" gorm:"uniqueIndex:idx_user_album_like"`
	AlbumID string `json:"album_id" gorm:"uniqueIndex:idx_user_album_like"`
}
