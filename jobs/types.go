package jobs

const TaskExportPlaylist = "export:playlist"

type ExportPlaylistPayload struct {
	PlaylistID  string `json:"playlist_id"`
	TargetEmail string `json:"target_email"`
}
