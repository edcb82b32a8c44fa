package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gyaneshwarpardhi/loginsight/internal/analytics"
	"github.com/gyaneshwarpardhi/loginsight/internal/dashboard"
)

// parseParams reads the view parameters from the query string and fills
// the gaps from the current dashboard defaults.
func (h *Handler) parseParams(r *http.Request) (dashboard.Params, error) {
	q := r.URL.Query()
	p := dashboard.Params{
		Selection: analytics.Selection{
			Months:   listParam(q, "month"),
			Programs: listParam(q, "program"),
		},
		FocusMonth: strings.TrimSpace(q.Get("focus_month")),
		HourMonth:  strings.TrimSpace(q.Get("hour_month")),
	}
	for _, f := range []struct {
		name string
		dst  *int
	}{
		{"top", &p.TopPrograms},
		{"top_platform", &p.TopProgramsPlatform},
		{"top_professors", &p.TopProfessors},
		{"top_heatmap", &p.TopHeatmap},
	} {
		v, err := intParam(q, f.name)
		if err != nil {
			return p, err
		}
		*f.dst = v
	}
	return p.Resolve(h.loader.Config().Dashboard.Defaults())
}

// listParam accepts repeated keys and comma separated values.
func listParam(q url.Values, key string) []string {
	var out []string
	for _, raw := range q[key] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func intParam(q url.Values, key string) (int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", dashboard.ErrInvalidParam, key, raw)
	}
	if v == 0 {
		return 0, fmt.Errorf("%w: %s must be positive", dashboard.ErrInvalidParam, key)
	}
	return v, nil
}
