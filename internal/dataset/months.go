package dataset

import "sort"

// AllMonths is the month picker value that selects every month.
const AllMonths = "Todos"

// CanonicalMonths is the reporting period in chronological order.
// Month-keyed results are always laid out in this order.
var CanonicalMonths = []string{
	"Julio",
	"Agosto",
	"Septiembre",
	"Octubre",
	"Noviembre",
	"Diciembre",
}

var spanishMonths = map[string]string{
	"January":   "Enero",
	"February":  "Febrero",
	"March":     "Marzo",
	"April":     "Abril",
	"May":       "Mayo",
	"June":      "Junio",
	"July":      "Julio",
	"August":    "Agosto",
	"September": "Septiembre",
	"October":   "Octubre",
	"November":  "Noviembre",
	"December":  "Diciembre",
}

// LocalizeMonth maps an English month name to Spanish.
// Names outside the table are returned unchanged with ok=false.
func LocalizeMonth(english string) (string, bool) {
	if es, ok := spanishMonths[english]; ok {
		return es, true
	}
	return english, false
}

// MonthIndex returns the position of a localized month in CanonicalMonths, or -1.
func MonthIndex(name string) int {
	for i, m := range CanonicalMonths {
		if m == name {
			return i
		}
	}
	return -1
}

// SortMonths orders month names canonically; unknown names go last, lexically.
func SortMonths(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		a, b := MonthIndex(names[i]), MonthIndex(names[j])
		switch {
		case a >= 0 && b >= 0:
			return a < b
		case a >= 0:
			return true
		case b >= 0:
			return false
		}
		return names[i] < names[j]
	})
}
