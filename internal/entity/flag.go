package entity

import (
	"encoding/json"
	"time"
)

type FlagImageResult struct {
	OutputPath string `json:"output_path"`
	Width      int    `json:"-"`
	Height     int    `json:"-"`
}

// MarshalJSON renders the size as a [width, height] pair.
func (r FlagImageResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		OutputPath string `json:"output_path"`
		ImageSize  [2]int `json:"image_size"`
	}{
		OutputPath: r.OutputPath,
		ImageSize:  [2]int{r.Width, r.Height},
	})
}

// FlagRequest is consumed from kafka to pre-render a flag.
type FlagRequest struct {
	CountryCode string `json:"country_code"`
}

// FlagRenderedEvent is published after a flag has been written to disk.
type FlagRenderedEvent struct {
	CountryCode string    `json:"country_code"`
	OutputPath  string    `json:"output_path"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	RenderedAt  time.Time `json:"rendered_at"`
}
