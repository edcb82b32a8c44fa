// Package analytics holds the pure aggregations behind the dashboard views.
// Every function takes a slice of prepared events and returns new values;
// nothing here mutates its input or keeps state between calls.
package analytics

// Count is one entry of a string-keyed aggregation.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// IntCount is one entry of an integer-keyed series (hour, day of month).
type IntCount struct {
	Key   int `json:"key"`
	Count int `json:"count"`
}

// Share is a Count with its percentage of the total.
type Share struct {
	Key     string  `json:"key"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Ranked is a Share with its 1-based position in a ranking.
type Ranked struct {
	Rank    int     `json:"rank"`
	Key     string  `json:"key"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}
