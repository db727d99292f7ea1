package model

import "time"

type Playlist struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type PlaylistSong struct {
	ID         string `json:"id" gorm:"primaryKey"`
	PlaylistID string `json:"playlist_id" gorm:"uniqueIndex:idx_playlist_song"`
	SongID     string `json:"song_id" gorm:"uniqueIndex:idx_playlist_song"`
}

// PlaylistActivity records a single add/delete of a song on a playlist.
type PlaylistActivity struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	PlaylistID string    `json:"playlist_id" gorm:"index"`
	SongID     string    `json:"song_id"`
	UserID     string    `json:"user_id"`
	Action     string    `json:"action"` // "add" or "delete"
	Time       time.Time `json:"time"`
}

// PlaylistSummary is the GET /playlists list item: the playlist joined with
// its owner's username.
type PlaylistSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// PlaylistDetail is the GET /playlists/:id/songs response shape.
type PlaylistDetail struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Username string        `json:"username"`
	Songs    []SongSummary `json:"songs"`
}

// ActivityEntry is a single row of the playlist activity log response.
type ActivityEntry struct {
	Username string    `json:"username"`
	Title    string    `json:"title"`
	Action   string    `json:"action"`
	Time     time.Time `json:"time"`
}

// PlaylistPayload is the create request body.
type PlaylistPayload struct {
	Name string `json:"name" binding:"required"`
}

// PlaylistSongPayload is the add/remove song request body.
type PlaylistSongPayload struct {
	SongID string `json:"songId" binding:"required"`
}
