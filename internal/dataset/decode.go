package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Required source columns.
const (
	ColumnProfessor = "userid"
	ColumnProgram   = "department"
	ColumnTimestamp = "timecreated"
)

// naTokens are read as missing values, the way the dashboard's CSV exports write them.
var naTokens = []string{"", "NA", "NaN", "nan", "<nil>", "null"}

// Decode reads CSV bytes into raw records. Columns beyond the three required
// ones are ignored; a missing required column is an error.
func Decode(data []byte) ([]RawRecord, error) {
	cr := csv.NewReader(bytes.NewReader(data))
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty input: no header row")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	names, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}
	// gota refuses a header-only frame; an empty dataset is still valid.
	if _, err := cr.Read(); errors.Is(err, io.EOF) {
		return []RawRecord{}, nil
	}

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(naTokens),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("read csv: %w", df.Err)
	}

	ids := df.Col(names[ColumnProfessor])
	programs := df.Col(names[ColumnProgram])
	stamps := df.Col(names[ColumnTimestamp])

	records := make([]RawRecord, df.Nrow())
	for i := range records {
		records[i] = RawRecord{
			ProfessorID: cell(ids, i),
			Program:     cell(programs, i),
			Timestamp:   cell(stamps, i),
		}
	}
	return records, nil
}

// resolveColumns maps each required column to the header name it appears under.
func resolveColumns(header []string) (map[string]string, error) {
	byNorm := make(map[string]string, len(header))
	for _, h := range header {
		n := normalizeHeader(h)
		if _, dup := byNorm[n]; !dup {
			byNorm[n] = h
		}
	}
	out := make(map[string]string, 3)
	var missing []string
	for _, col := range []string{ColumnProfessor, ColumnProgram, ColumnTimestamp} {
		name, ok := byNorm[col]
		if !ok {
			missing = append(missing, col)
			continue
		}
		out[col] = name
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("schema mismatch: missing column(s) %s", strings.Join(missing, ", "))
	}
	return out, nil
}

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.ToLower(strings.TrimSpace(h))
}

func cell(s series.Series, i int) string {
	e := s.Elem(i)
	if e.IsNA() {
		return ""
	}
	return strings.TrimSpace(e.String())
}
