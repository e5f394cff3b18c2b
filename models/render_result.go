package models

// Output formats
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
)

// RenderResult is the encoded image produced by one render request
type RenderResult struct {
	RequestID string   `json:"requestId"`
	Data      []byte   `json:"data"`
	Format    string   `json:"format"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	Warnings  []string `json:"warnings,omitempty"`
	Hash      string   `json:"hash,omitempty"` // Preview configuration hash, set by the preview cache
}

// ContentType returns the MIME type of the encoded data
func (r *RenderResult) ContentType() string {
	if r.Format == FormatJPEG {
		return "image/jpeg"
	}
	return "image/png"
}

// BatchItemResult is the outcome of one entry of a batch render
type BatchItemResult struct {
	Index     int           `json:"index"`
	Result    *RenderResult `json:"result,omitempty"`
	Error     string        `json:"error,omitempty"`
	ErrorKind ErrorKind     `json:"errorKind,omitempty"`
}
