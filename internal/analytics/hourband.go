package analytics

import "github.com/gyaneshwarpardhi/loginsight/internal/dataset"

// HourBand labels an hour of day by how busy the platform usually is.
type HourBand string

const (
	HourActive   HourBand = "active"   // 09-18
	HourModerate HourBand = "moderate" // 06-08, 19-22
	HourLow      HourBand = "low"      // 00-05, 23
)

var hourBands = []HourBand{HourActive, HourModerate, HourLow}

func BandForHour(hour int) HourBand {
	switch {
	case hour < 6 || hour > 22:
		return HourLow
	case hour < 9 || hour > 18:
		return HourModerate
	default:
		return HourActive
	}
}

// CountByHourBand returns logins per hour band, always in the order
// active, moderate, low.
func CountByHourBand(events []dataset.LoginEvent) []Count {
	sizes := make(map[HourBand]int, len(hourBands))
	for _, ev := range events {
		sizes[BandForHour(ev.Hour)]++
	}
	out := make([]Count, len(hourBands))
	for i, b := range hourBands {
		out[i] = Count{Key: string(b), Count: sizes[b]}
	}
	return out
}
