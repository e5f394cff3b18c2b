package models

// ClubPreset represents a saved club color scheme and emblem reference
type ClubPreset struct {
	ID                string `json:"id"`
	ClubName          string `json:"clubName"`
	PrimaryColor      string `json:"primaryColor"`
	SecondaryColor    string `json:"secondaryColor"`
	EmblemDriveFileID string `json:"emblemDriveFileId"` // Empty when the club has no emblem
}
