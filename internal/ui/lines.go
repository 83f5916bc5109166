package ui

import (
	"strings"

	"doom-fire/internal/core"
)

// Lines formats a parameter snapshot as HUD text, one group header followed
// by indented "Label: value" rows.
func Lines(s core.ParameterSnapshot) []string {
	var out []string
	for _, g := range s.Groups {
		if len(g.Params) == 0 {
			continue
		}
		out = append(out, g.Name)
		for _, p := range g.Params {
			out = append(out, "  "+p.Label+": "+p.Value)
		}
	}
	return out
}

// Summary formats selected parameters on a single line as key=value pairs,
// in the order given. Unknown keys are skipped.
func Summary(s core.ParameterSnapshot, keys ...string) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if p, ok := s.Lookup(k); ok {
			parts = append(parts, k+"="+p.Value)
		}
	}
	return strings.Join(parts, " ")
}
