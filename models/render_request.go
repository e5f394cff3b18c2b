package models

// CrewInput is the crew roster as supplied by the caller
type CrewInput struct {
	ClubName      string   `json:"clubName"`
	RaceName      string   `json:"raceName"`
	BoatName      string   `json:"boatName"`
	BoatClassCode string   `json:"boatClassCode"`
	RowerNames    []string `json:"rowerNames"`     // Bow first
	CoxName       string   `json:"coxName,omitempty"`
	CoachName     string   `json:"coachName,omitempty"`
}

// Dimensions is the output canvas size in pixels
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ColorInput holds the caller's color strings (hex or named club colors)
type ColorInput struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// EmblemInput references a club emblem either by raw bytes or by preset reference.
// Bytes are base64 in JSON.
type EmblemInput struct {
	Bytes           []byte `json:"bytes,omitempty"`
	PresetReference string `json:"presetReference,omitempty"`
}

// RenderRequest represents the request body for rendering a crew poster
type RenderRequest struct {
	Crew         CrewInput    `json:"crew"`
	TemplateID   string       `json:"templateId"`
	Dimensions   Dimensions   `json:"dimensions"`
	Colors       ColorInput   `json:"colors"`
	Emblem       *EmblemInput `json:"emblem,omitempty"`
	ClubPresetID string       `json:"clubPresetId,omitempty"` // Fills colors not given explicitly
	Format       string       `json:"format,omitempty"`       // "png" (default) or "jpeg"
}

// BatchRenderRequest represents the request body for rendering many crews at once
type BatchRenderRequest struct {
	Requests []RenderRequest `json:"requests"`
}
