package model

import (
	"sort"
	"strings"
)

type SortKey int

const (
	SortByCPU SortKey = iota
	SortByMemory
)

func (k SortKey) String() string {
	if k == SortByMemory {
		return "RAM"
	}
	return "CPU"
}

// Toggle returns the other sort key.
func (k SortKey) Toggle() SortKey {
	if k == SortByCPU {
		return SortByMemory
	}
	return SortByCPU
}

// Apply filters ranked processes by a case-insensitive substring match on the
// process name, then orders the survivors by the sort key, descending. Ties
// break on ascending PID so equal inputs order the same way every cycle. The
// input slice is never mutated.
func Apply(ranked []RankedProcess, filter string, key SortKey) []RankedProcess {
	out := Filter(ranked, filter)
	sort.Slice(out, func(i, j int) bool {
		a, b := &out[i], &out[j]
		switch key {
		case SortByMemory:
			if a.RSS != b.RSS {
				return a.RSS > b.RSS
			}
		default:
			if a.CPU != b.CPU {
				return a.CPU > b.CPU
			}
		}
		return a.Pid < b.Pid
	})
	return out
}

// Filter returns the processes whose name contains the filter text,
// case-insensitively. Empty filter text matches everything. Always returns a
// fresh slice; input order is preserved.
func Filter(ranked []RankedProcess, filter string) []RankedProcess {
	out := make([]RankedProcess, 0, len(ranked))
	if filter == "" {
		return append(out, ranked...)
	}
	needle := strings.ToLower(filter)
	for _, r := range ranked {
		if strings.Contains(strings.ToLower(r.Name), needle) {
			out = append(out, r)
		}
	}
	return out
}
