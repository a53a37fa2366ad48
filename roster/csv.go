package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LoadCSV reads a column-per-team table: the header row names the teams and
// each following row lists at most one performer per team. Rows may be ragged;
// blank cells mean "no performer in this slot". Team and performer names are
// passed through Normalize, and the header order becomes the declared order.
//
// Errors:
//   - ErrMalformedCSV when the input has no header, a blank header cell, a row
//     wider than the header, or is not valid CSV.
//   - any New error (e.g. ErrDuplicateTeam when two headers normalize alike).
func LoadCSV(r io.Reader) (*Registry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rosters
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header row", ErrMalformedCSV)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCSV, err)
	}

	entries := make([]Entry, len(header))
	for i, h := range header {
		id := Normalize(strings.TrimPrefix(h, "\ufeff"))
		if id == "" {
			return nil, fmt.Errorf("%w: blank team name in column %d", ErrMalformedCSV, i+1)
		}
		entries[i].Team = id
	}

	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedCSV, err)
		}
		line++
		if len(rec) > len(header) {
			return nil, fmt.Errorf("%w: row %d has %d cells, header has %d",
				ErrMalformedCSV, line, len(rec), len(header))
		}
		for i, cell := range rec {
			if p := Normalize(cell); p != "" {
				entries[i].Members = append(entries[i].Members, p)
			}
		}
	}

	return New(entries...)
}
