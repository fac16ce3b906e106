package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/ballsim/internal/sim"
)

type ExportData struct {
	Meta    RunMetadata  `json:"meta"`
	Samples []sim.Sample `json:"samples"`
}

// ExportJSON writes a run report as indented JSON.
func ExportJSON(w io.Writer, meta RunMetadata, result *sim.Result) error {
	meta.Steps = result.StepsTaken
	meta.Contacts = result.Contacts
	meta.Degenerate = result.Degenerate
	meta.Metrics = result.Metrics

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{Meta: meta, Samples: result.Samples})
}
