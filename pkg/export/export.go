// Package export reads static ST JSON export files into typed Person
// records. Validation is per record: a malformed entry is excluded and
// reported, never fatal to the batch.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"sttools/pkg/domain"
	"sttools/pkg/serrors"
)

// SkippedRecord describes an export entry that failed validation and was
// excluded from the parsed result.
type SkippedRecord struct {
	// Index is the zero-based position of the record in the export array.
	Index int `json:"index"`
	// Reason explains why the record was excluded.
	Reason string `json:"reason"`
}

// Export is a parsed ST JSON export: the valid person records plus a report
// of every record that was excluded.
type Export struct {
	People  []domain.Person
	Skipped []SkippedRecord
}

// Load reads and parses an ST JSON export from a file path.
func Load(path string) (*Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read export file: %w", err)
	}

	return Parse(data)
}

// Parse parses an ST JSON export from raw bytes. The export must be a JSON
// array of person objects; anything else is a file-level error. Individual
// records that fail to decode or validate are collected in Skipped with a
// reason instead of failing the batch.
func Parse(data []byte) (*Export, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "export file is not a JSON array of persons")
	}

	out := &Export{}
	for i, msg := range raw {
		var p domain.Person
		if err := json.Unmarshal(msg, &p); err != nil {
			out.Skipped = append(out.Skipped, SkippedRecord{
				Index:  i,
				Reason: fmt.Sprintf("could not decode person: %v", err),
			})

			continue
		}
		if reason := validate(p); reason != "" {
			out.Skipped = append(out.Skipped, SkippedRecord{Index: i, Reason: reason})

			continue
		}
		out.People = append(out.People, p)
	}

	return out, nil
}

// validate returns a non-empty reason when the person record is unusable.
func validate(p domain.Person) string {
	if p.ID <= 0 {
		return "missing or non-positive id"
	}
	if p.Name == "" && p.FirstName == "" && p.LastName == "" {
		return "missing name"
	}

	return ""
}

// Persons returns the valid person records. It satisfies the matcher's
// PersonSource contract; the export is already materialized, so the context
// is unused.
func (e *Export) Persons(_ context.Context) ([]domain.Person, error) {
	return e.People, nil
}
