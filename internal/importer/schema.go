package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for project import.
type ImportSchema struct {
	Project   ProjectImport    `json:"project"`
	Tasks     []TaskImport     `json:"tasks"`
	Snapshots []SnapshotImport `json:"snapshots,omitempty"`
}

// ProjectImport defines the project-level fields in the import file.
type ProjectImport struct {
	ShortID string `json:"short_id"`
	Name    string `json:"name"`
	Status  string `json:"status,omitempty"`
}

// TaskImport defines a task in the import file. Dates are YYYY-MM-DD.
type TaskImport struct {
	Ref          string  `json:"ref,omitempty"`
	Title        string  `json:"title"`
	Type         *string `json:"type,omitempty"`
	PlannedStart *string `json:"planned_start,omitempty"`
	PlannedEnd   *string `json:"planned_end,omitempty"`
}

// SnapshotImport defines a weekly phase reading in the import file.
type SnapshotImport struct {
	Phase            string   `json:"phase"`
	Week             int      `json:"week"`
	Progress         *float64 `json:"progress,omitempty"`
	ExpectedProgress *float64 `json:"expected_progress,omitempty"`
	// RecordedAt is RFC 3339; defaults to the import time.
	RecordedAt *string `json:"recorded_at,omitempty"`
}

// LoadImportSchema reads and parses a project import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportSchema(data)
}

// ParseImportSchema parses import JSON. Unknown fields are rejected.
func ParseImportSchema(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
