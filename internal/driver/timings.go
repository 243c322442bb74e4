package driver

import (
	"encoding/json"

	"vhdlparser/internal/observ"
)

type timingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	Cached  bool                 `json:"cached,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// TimingsJSON renders the per-file phase timings of results as one JSON
// array, in result order.
func TimingsJSON(results []*FileResult) ([]byte, error) {
	out := make([]timingPayload, 0, len(results))
	for _, r := range results {
		if r == nil {
			continue
		}
		out = append(out, timingPayload{
			Kind:    "file",
			Path:    r.Path,
			Cached:  r.Cached,
			TotalMS: r.Timing.TotalMS,
			Phases:  r.Timing.Phases,
		})
	}
	return json.Marshal(out)
}
