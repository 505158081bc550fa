package scraper

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSV column names used by the agency roster files.
const (
	PortalColumn = "Portal"
	NewsColumn   = "Noticias"
)

// Roster is the agency roster loaded from CSV. All columns are preserved
// verbatim; only the news column is written back.
type Roster struct {
	header    []string
	rows      [][]string
	portalCol int
	newsCol   int
}

// LoadRoster reads a roster CSV. A missing file or a missing Portal column
// is an error that should abort the whole batch. The Noticias column is
// appended when the file does not have one yet.
func LoadRoster(path string) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening roster %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading roster %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("roster %s is empty", path)
	}

	r := &Roster{header: records[0], rows: records[1:], portalCol: -1, newsCol: -1}
	for i, name := range r.header {
		switch name {
		case PortalColumn:
			r.portalCol = i
		case NewsColumn:
			r.newsCol = i
		}
	}
	if r.portalCol < 0 {
		return nil, fmt.Errorf("roster %s: column %q not found", path, PortalColumn)
	}
	if r.newsCol < 0 {
		r.header = append(r.header, NewsColumn)
		r.newsCol = len(r.header) - 1
	}

	// Pad short rows so every row addresses the full header.
	for i, row := range r.rows {
		for len(row) < len(r.header) {
			row = append(row, "")
		}
		r.rows[i] = row
	}
	return r, nil
}

// Save writes the roster back out as CSV.
func (r *Roster) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(r.header); err != nil {
		return err
	}
	if err := w.WriteAll(r.rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// Len returns the number of data rows.
func (r *Roster) Len() int { return len(r.rows) }

// Portal returns the portal URL of row i.
func (r *Roster) Portal(i int) string { return r.rows[i][r.portalCol] }

// News returns the news URL of row i, empty when not yet resolved.
func (r *Roster) News(i int) string { return r.rows[i][r.newsCol] }

// SetNews records the resolved news URL for row i.
func (r *Roster) SetNews(i int, url string) { r.rows[i][r.newsCol] = url }

// Pending returns the indexes of rows that still have no news link.
func (r *Roster) Pending() []int {
	var out []int
	for i := range r.rows {
		if r.News(i) == "" {
			out = append(out, i)
		}
	}
	return out
}

// WithNews counts rows that have a news link.
func (r *Roster) WithNews() int {
	n := 0
	for i := range r.rows {
		if r.News(i) != "" {
			n++
		}
	}
	return n
}
