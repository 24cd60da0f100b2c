package compatibility

import (
	"math"
	"sort"
	"strings"
)

// DefaultPriority is assumed for technologies the caller did not prioritize.
const DefaultPriority = 0.5

// ConflictResolver removes the losing side of critical and high conflicts.
// Medium and below are surfaced for reporting but never trigger removal.
type ConflictResolver struct{}

// NewConflictResolver returns a resolver.
func NewConflictResolver() *ConflictResolver {
	return &ConflictResolver{}
}

// Resolve partitions the stack into validated and removed technologies.
// Critical conflicts are processed before high ones, and a removal takes
// effect immediately: a later conflict whose side is already gone is
// skipped. Per conflict the lower context priority loses; priority ties fall
// back to catalog maturity, and a full tie removes the first-named side (a
// fixed tie-break kept for reproducibility).
func (r *ConflictResolver) Resolve(stack []resolvedTech, conflicts []Conflict, priorities map[string]float64) (validated, removed []string) {
	alive := make(map[string]bool, len(stack))
	for _, tech := range stack {
		alive[techKey(tech.Name)] = true
	}
	entries := make(map[string]resolvedTech, len(stack))
	for _, tech := range stack {
		entries[techKey(tech.Name)] = tech
	}

	normPriorities := normalizePriorities(priorities)

	for _, severity := range []Severity{SeverityCritical, SeverityHigh} {
		for _, conflict := range conflicts {
			if conflict.Severity != severity {
				continue
			}
			k1, k2 := techKey(conflict.Tech1), techKey(conflict.Tech2)
			if !alive[k1] || !alive[k2] {
				// A prior removal already resolved this conflict.
				continue
			}
			loser := pickLoser(conflict, entries[k1], entries[k2], normPriorities)
			alive[techKey(loser)] = false
		}
	}

	for _, tech := range stack {
		if alive[techKey(tech.Name)] {
			validated = append(validated, tech.Name)
		} else {
			removed = append(removed, tech.Name)
		}
	}
	return validated, removed
}

// pickLoser decides which side of a conflict to remove.
func pickLoser(conflict Conflict, t1, t2 resolvedTech, priorities map[string]float64) string {
	p1 := priorityFor(conflict.Tech1, priorities)
	p2 := priorityFor(conflict.Tech2, priorities)
	if p1 < p2 {
		return conflict.Tech1
	}
	if p2 < p1 {
		return conflict.Tech2
	}

	m1, m2 := 2, 2 // unknown maturity ranks as beta
	if t1.Entry != nil {
		m1 = t1.Entry.Maturity.Rank()
	}
	if t2.Entry != nil {
		m2 = t2.Entry.Maturity.Rank()
	}
	if m1 < m2 {
		return conflict.Tech1
	}
	if m2 < m1 {
		return conflict.Tech2
	}

	return conflict.Tech1
}

func priorityFor(name string, priorities map[string]float64) float64 {
	if p, ok := priorities[techKey(name)]; ok {
		return p
	}
	return DefaultPriority
}

// normalizePriorities lowercases keys and replaces unusable values (NaN,
// infinities, out of range) with the default.
func normalizePriorities(priorities map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(priorities))
	for name, p := range priorities {
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 || p > 1 {
			p = DefaultPriority
		}
		out[techKey(name)] = p
	}
	return out
}

func techKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func equalTechNames(a, b string) bool {
	return techKey(a) == techKey(b)
}

// sortConflictsBySeverity orders conflicts most severe first, preserving
// detection order within a severity.
func sortConflictsBySeverity(conflicts []Conflict) []Conflict {
	out := append([]Conflict(nil), conflicts...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Severity.Rank() > out[j].Severity.Rank()
	})
	return out
}
