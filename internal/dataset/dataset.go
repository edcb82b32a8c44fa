// Package dataset loads the professor login export and prepares it into an
// immutable in-memory record set.
package dataset

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spaolacci/murmur3"
)

// LoadFailedMessage is the single user-facing message for any load failure.
const LoadFailedMessage = "failed to load input data"

// LoadError wraps whatever made the load fail: open, read, schema or parse.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s (%s): %v", LoadFailedMessage, e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Dataset is the prepared record set. It is built once and only read after
// that, so it is safe to share between goroutines without locking.
type Dataset struct {
	events      []LoginEvent
	stats       PrepareStats
	source      string
	fingerprint string
	loadedAt    time.Time
	months      []string
	programs    []string
}

// New wraps already prepared events.
func New(events []LoginEvent, stats PrepareStats) *Dataset {
	d := &Dataset{
		events:   events,
		stats:    stats,
		loadedAt: time.Now().UTC(),
	}
	d.index()
	return d
}

// Load reads, decodes and prepares the export behind src.
func Load(ctx context.Context, src Source, opts PrepareOptions) (*Dataset, error) {
	fail := func(err error) (*Dataset, error) {
		return nil, &LoadError{Source: src.String(), Err: err}
	}

	rc, err := src.Open(ctx)
	if err != nil {
		return fail(fmt.Errorf("open: %w", err))
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return fail(fmt.Errorf("read: %w", err))
	}

	records, err := Decode(data)
	if err != nil {
		return fail(err)
	}
	events, stats, err := Prepare(records, opts)
	if err != nil {
		return fail(err)
	}

	d := New(events, stats)
	d.source = src.String()
	d.fingerprint = Fingerprint(data)
	return d, nil
}

// Fingerprint identifies the raw export bytes.
func Fingerprint(data []byte) string {
	h1, h2 := murmur3.Sum128(data)
	return fmt.Sprintf("%016x%016x", h1, h2)
}

func (d *Dataset) index() {
	months := make(map[string]struct{})
	programs := make(map[string]struct{})
	for _, ev := range d.events {
		months[ev.Month] = struct{}{}
		programs[ev.Program] = struct{}{}
	}
	d.months = make([]string, 0, len(months))
	for m := range months {
		d.months = append(d.months, m)
	}
	SortMonths(d.months)
	d.programs = make([]string, 0, len(programs))
	for p := range programs {
		d.programs = append(d.programs, p)
	}
	sort.Strings(d.programs)
}

// Events returns the prepared events. Callers must not modify the slice.
func (d *Dataset) Events() []LoginEvent { return d.events }

func (d *Dataset) Stats() PrepareStats { return d.stats }
func (d *Dataset) Source() string { return d.source }
func (d *Dataset) Fingerprint() string { return d.fingerprint }
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }

// Months lists the localized months present, canonical months first.
func (d *Dataset) Months() []string { return d.months }

// Programs lists the distinct programs, sorted.
func (d *Dataset) Programs() []string { return d.programs }

// HasProgram reports whether program is one of the known labels.
func (d *Dataset) HasProgram(program string) bool {
	i := sort.SearchStrings(d.programs, program)
	return i < len(d.programs) && d.programs[i] == program
}
