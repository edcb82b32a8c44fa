package analytics

import "slices"

// Band is an activity level relative to the quartiles of per-professor counts.
type Band string

const (
	BandVeryActive Band = "very_active"
	BandActive     Band = "active"
	BandModerate   Band = "moderate"
	BandLow        Band = "low"
)

// Bands lists every band from most to least active.
var Bands = []Band{BandVeryActive, BandActive, BandModerate, BandLow}

// Quartiles holds the cut points used for classification.
type Quartiles struct {
	Q1 float64 `json:"q1"`
	Q2 float64 `json:"q2"`
	Q3 float64 `json:"q3"`
}

// BandFor places count relative to q.
func BandFor(count int, q Quartiles) Band {
	c := float64(count)
	switch {
	case c >= q.Q3:
		return BandVeryActive
	case c >= q.Q2:
		return BandActive
	case c >= q.Q1:
		return BandModerate
	default:
		return BandLow
	}
}

type BandCount struct {
	Band  Band `json:"band"`
	Count int  `json:"count"`
}

type ProfessorBand struct {
	ProfessorID string `json:"professor_id"`
	Logins      int    `json:"logins"`
	Band        Band   `json:"band"`
}

// Classification is the outcome of ClassifyActivity. Bands always has one
// entry per band, in Bands order.
type Classification struct {
	Quartiles  Quartiles       `json:"quartiles"`
	Bands      []BandCount     `json:"bands"`
	Professors []ProfessorBand `json:"professors"`
}

// ClassifyActivity assigns every professor in perProfessor to exactly one
// band using the quartiles of their login counts.
func ClassifyActivity(perProfessor []Count) Classification {
	sorted := toFloats(CountValues(perProfessor))
	slices.Sort(sorted)
	q := Quartiles{
		Q1: Quantile(sorted, 0.25),
		Q2: Quantile(sorted, 0.5),
		Q3: Quantile(sorted, 0.75),
	}

	sizes := make(map[Band]int, len(Bands))
	profs := make([]ProfessorBand, len(perProfessor))
	for i, c := range perProfessor {
		b := BandFor(c.Count, q)
		sizes[b]++
		profs[i] = ProfessorBand{ProfessorID: c.Key, Logins: c.Count, Band: b}
	}

	bands := make([]BandCount, len(Bands))
	for i, b := range Bands {
		bands[i] = BandCount{Band: b, Count: sizes[b]}
	}
	return Classification{Quartiles: q, Bands: bands, Professors: profs}
}
