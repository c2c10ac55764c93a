package core

import (
	"encoding/json"
	"io"
)

// MarshalSummary pretty-prints a scan summary as JSON for humans or pipelines.
func MarshalSummary(w io.Writer, sum Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(sum)
}

// UnmarshalSummary decodes a summary JSON document, useful for ingestion.
func UnmarshalSummary(r io.Reader) (Summary, error) {
	var sum Summary
	if err := json.NewDecoder(r).Decode(&sum); err != nil {
		return Summary{}, err
	}
	return sum, nil
}
