// Package dashboard assembles the dashboard views from the prepared dataset.
package dashboard

import (
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/gyaneshwarpardhi/loginsight/internal/analytics"
	"github.com/gyaneshwarpardhi/loginsight/internal/dataset"
	"github.com/gyaneshwarpardhi/loginsight/internal/metrics"
)

// Aggregations lists the names accepted by Builder.Aggregate.
var Aggregations = []string{"programs", "months", "hours", "days", "professors", "stats", "activity", "crosstab"}

// Builder computes views on demand. It keeps no state besides the dataset,
// so a single Builder serves concurrent requests.
type Builder struct {
	ds *dataset.Dataset
}

func NewBuilder(ds *dataset.Dataset) *Builder {
	return &Builder{ds: ds}
}

func (b *Builder) Dataset() *dataset.Dataset { return b.ds }

// Overview builds the dataset summary for the selection in p.
func (b *Builder) Overview(p Params) *Overview {
	defer observe("overview", time.Now())
	events := analytics.Filter(b.ds.Events(), p.Selection)

	programs := analytics.Shares(analytics.CountByProgram(events))
	perProf := analytics.Describe(analytics.CountValues(analytics.CountByProfessor(events)))
	return &Overview{
		Summary:            analytics.Summarize(events),
		TopPrograms:        analytics.RankShares(analytics.TopN(programs, p.TopPrograms)),
		Programs:           programs,
		Months:             analytics.Shares(analytics.CountByMonth(events)),
		Dates:              analytics.DateSpan(events),
		MedianPerProfessor: perProf.Median,
		MaxPerProfessor:    int(perProf.Max),
	}
}

// Platform builds the platform-wide page for the selection in p.
func (b *Builder) Platform(p Params) *Platform {
	defer observe("platform", time.Now())
	events := analytics.Filter(b.ds.Events(), p.Selection)

	topPrograms := analytics.TopN(analytics.CountByProgram(events), p.TopProgramsPlatform)
	professors := analytics.Shares(analytics.CountByProfessor(events))

	focus := monthFocus(events, p.FocusMonth)
	focus.TopProfessors = analytics.TopN(analytics.CountByProfessor(analytics.ForMonth(events, p.FocusMonth)), focusTopProfessors)

	hourEvents := analytics.ForMonth(events, p.HourMonth)
	return &Platform{
		Summary:     analytics.Summarize(events),
		TopPrograms: analytics.Shares(topPrograms),
		Focus:       focus,
		Professors:  analytics.RankShares(analytics.TopN(professors, p.TopProfessors)),
		Hours: HourActivity{
			Month: p.HourMonth,
			Hours: analytics.CountByHour(hourEvents),
			Bands: analytics.Shares(analytics.CountByHourBand(hourEvents)),
		},
	}
}

// Program builds the drill-down for one program within the selection in p.
// A program left out of a non-empty program selection is unknown, and the
// share is taken against the whole selection.
func (b *Builder) Program(program string, p Params) (*ProgramView, error) {
	if !b.ds.HasProgram(program) || !selected(p.Selection.Programs, program) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProgram, program)
	}
	defer observe("program", time.Now())

	scope := analytics.Filter(b.ds.Events(), p.Selection)
	events := analytics.ForProgram(scope, program)
	perProf := analytics.CountByProfessor(events)
	summary := analytics.Summarize(events)

	focus := monthFocus(events, p.FocusMonth)
	focus.Hours = analytics.CountByHour(analytics.ForMonth(events, p.FocusMonth))

	return &ProgramView{
		Program:             program,
		Events:              summary.Events,
		Professors:          summary.Professors,
		MeanPerProfessor:    summary.MeanPerProfessor,
		MeanPerProfessorInt: summary.MeanPerProfessorInt,
		Percent:             analytics.Percent(len(events), len(scope)),
		Ranking:             analytics.Rank(perProf),
		Heatmap:             analytics.CrossTabProfessorByMonth(events, heatmapSize(p.TopHeatmap, len(perProf))),
		Focus:               focus,
		Stats:               analytics.Describe(analytics.CountValues(perProf)),
		Activity:            analytics.ClassifyActivity(perProf),
	}, nil
}

// Aggregate computes a single named aggregation over the selection in p.
func (b *Builder) Aggregate(name string, p Params) (any, error) {
	events := analytics.Filter(b.ds.Events(), p.Selection)
	var out any
	switch name {
	case "programs":
		out = analytics.Rank(analytics.TopN(analytics.CountByProgram(events), p.TopPrograms))
	case "months":
		out = analytics.Shares(analytics.CountByMonth(events))
	case "hours":
		out = analytics.CountByHour(analytics.ForMonth(events, p.HourMonth))
	case "days":
		out = analytics.CountByDay(analytics.ForMonth(events, p.FocusMonth))
	case "professors":
		out = analytics.RankShares(analytics.TopN(analytics.Shares(analytics.CountByProfessor(events)), p.TopProfessors))
	case "stats":
		out = analytics.Describe(analytics.CountValues(analytics.CountByProfessor(events)))
	case "activity":
		out = analytics.ClassifyActivity(analytics.CountByProfessor(events))
	case "crosstab":
		out = analytics.CrossTabProfessorByMonth(events, p.TopHeatmap)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAggregation, name)
	}
	metrics.ViewRequests.WithLabelValues("aggregation_" + name).Inc()
	return out, nil
}

// Bundle builds every view for a snapshot: overview, platform and one
// program view per selected program.
func (b *Builder) Bundle(p Params) (*Bundle, error) {
	out := &Bundle{
		Selection: p.Selection,
		Overview:  b.Overview(p),
		Platform:  b.Platform(p),
	}
	for _, prog := range p.Selection.Programs {
		v, err := b.Program(prog, p)
		if err != nil {
			return nil, err
		}
		out.Programs = append(out.Programs, v)
	}
	return out, nil
}

func monthFocus(events []dataset.LoginEvent, month string) MonthFocus {
	slice := analytics.ForMonth(events, month)
	f := MonthFocus{
		Month:            month,
		Events:           len(slice),
		ActiveProfessors: analytics.Summarize(slice).Professors,
		Days:             analytics.CountByDay(slice),
	}
	if len(events) > 0 && (month == "" || month == dataset.AllMonths) {
		f.Percent = 100
	} else {
		f.Percent = analytics.Percent(len(slice), len(events))
	}
	return f
}

func selected(programs []string, program string) bool {
	return len(programs) == 0 || lo.Contains(programs, program)
}

func observe(view string, start time.Time) {
	metrics.ViewRequests.WithLabelValues(view).Inc()
	metrics.AggregationDuration.WithLabelValues(view).Observe(float64(time.Since(start).Microseconds()) / 1000)
}
