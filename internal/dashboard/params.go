package dashboard

import (
	"errors"
	"fmt"

	"github.com/gyaneshwarpardhi/loginsight/internal/analytics"
	"github.com/gyaneshwarpardhi/loginsight/internal/dataset"
)

var (
	ErrUnknownProgram     = errors.New("unknown program")
	ErrUnknownAggregation = errors.New("unknown aggregation")
	ErrInvalidParam       = errors.New("invalid parameter")
)

// Platform and program views always list this many professors in their
// month focus.
const focusTopProfessors = 10

// Defaults are the top-N values used when a request leaves one unset.
type Defaults struct {
	TopPrograms         int `json:"top_programs"`
	TopProgramsPlatform int `json:"top_programs_platform"`
	TopProfessors       int `json:"top_professors"`
	TopHeatmap          int `json:"top_heatmap"`
	MaxTopN             int `json:"max_top_n"`
}

// Params carries everything a view needs besides the dataset. Zero top-N
// values take the matching default. FocusMonth and HourMonth are month
// picker values where "" and dataset.AllMonths mean every month.
type Params struct {
	Selection           analytics.Selection
	TopPrograms         int
	TopProgramsPlatform int
	TopProfessors       int
	TopHeatmap          int
	FocusMonth          string
	HourMonth           string
}

// Resolve fills unset values from d and rejects out of range ones.
func (p Params) Resolve(d Defaults) (Params, error) {
	fill := func(name string, v *int, def int) error {
		if *v == 0 {
			*v = def
		}
		if *v < 1 || (d.MaxTopN > 0 && *v > d.MaxTopN) {
			return fmt.Errorf("%w: %s must be between 1 and %d, got %d", ErrInvalidParam, name, d.MaxTopN, *v)
		}
		return nil
	}
	if err := errors.Join(
		fill("top", &p.TopPrograms, d.TopPrograms),
		fill("top_platform", &p.TopProgramsPlatform, d.TopProgramsPlatform),
		fill("top_professors", &p.TopProfessors, d.TopProfessors),
		fill("top_heatmap", &p.TopHeatmap, d.TopHeatmap),
	); err != nil {
		return p, err
	}
	if p.FocusMonth == "" {
		p.FocusMonth = dataset.AllMonths
	}
	if p.HourMonth == "" {
		p.HourMonth = dataset.AllMonths
	}
	return p, nil
}

// heatmapSize clamps the requested heatmap rows to [min(5,n), min(30,n)]
// for n professors.
func heatmapSize(requested, n int) int {
	low, high := min(5, n), min(30, n)
	return max(low, min(requested, high))
}
