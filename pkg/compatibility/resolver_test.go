package compatibility

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ready2k/Project3-sub011/pkg/catalog"
)

func techWithMaturity(name string, maturity catalog.Maturity) resolvedTech {
	return resolvedTech{
		Name:  name,
		Entry: &catalog.Entry{CanonicalName: name, Maturity: maturity},
	}
}

func highConflict(t1, t2 string) Conflict {
	return Conflict{Tech1: t1, Tech2: t2, Type: ConflictTypeIntegration, Severity: SeverityHigh}
}

func criticalConflict(t1, t2 string) Conflict {
	return Conflict{Tech1: t1, Tech2: t2, Type: ConflictTypeEcosystem, Severity: SeverityCritical}
}

func TestResolvePriorityMonotonicity(t *testing.T) {
	r := NewConflictResolver()
	stack := []resolvedTech{unresolved("A"), unresolved("B")}
	conflicts := []Conflict{highConflict("A", "B")}

	validated, removed := r.Resolve(stack, conflicts, map[string]float64{"A": 0.9, "B": 0.3})
	assert.Equal(t, []string{"A"}, validated)
	assert.Equal(t, []string{"B"}, removed)

	// Swapping the priorities swaps the removal
	validated, removed = r.Resolve(stack, conflicts, map[string]float64{"A": 0.3, "B": 0.9})
	assert.Equal(t, []string{"B"}, validated)
	assert.Equal(t, []string{"A"}, removed)
}

func TestResolveMaturityTieBreak(t *testing.T) {
	r := NewConflictResolver()
	stack := []resolvedTech{
		techWithMaturity("Experimental", catalog.MaturityExperimental),
		techWithMaturity("Mature", catalog.MaturityMature),
	}
	conflicts := []Conflict{highConflict("Experimental", "Mature")}

	validated, removed := r.Resolve(stack, conflicts, nil)
	assert.Equal(t, []string{"Mature"}, validated)
	assert.Equal(t, []string{"Experimental"}, removed)
}

func TestResolveMissingEntryDefaultsToBeta(t *testing.T) {
	r := NewConflictResolver()
	stack := []resolvedTech{
		unresolved("Unknown"),
		techWithMaturity("Deprecated", catalog.MaturityDeprecated),
	}
	conflicts := []Conflict{highConflict("Unknown", "Deprecated")}

	// Unknown ranks as beta (2), deprecated ranks 0, so deprecated loses
	validated, removed := r.Resolve(stack, conflicts, nil)
	assert.Equal(t, []string{"Unknown"}, validated)
	assert.Equal(t, []string{"Deprecated"}, removed)
}

func TestResolveFullTieRemovesFirstNamed(t *testing.T) {
	r := NewConflictResolver()
	stack := []resolvedTech{
		techWithMaturity("A", catalog.MaturityStable),
		techWithMaturity("B", catalog.MaturityStable),
	}
	conflicts := []Conflict{highConflict("A", "B")}

	validated, removed := r.Resolve(stack, conflicts, nil)
	assert.Equal(t, []string{"B"}, validated)
	assert.Equal(t, []string{"A"}, removed)
}

func TestResolveCriticalBeforeHigh(t *testing.T) {
	r := NewConflictResolver()
	stack := []resolvedTech{unresolved("A"), unresolved("B"), unresolved("C")}

	// The high conflict is listed first, but the critical one must be
	// processed first; removing B there settles the high conflict too.
	conflicts := []Conflict{
		highConflict("B", "C"),
		criticalConflict("A", "B"),
	}
	priorities := map[string]float64{"A": 0.9, "B": 0.2, "C": 0.4}

	validated, removed := r.Resolve(stack, conflicts, priorities)
	assert.ElementsMatch(t, []string{"A", "C"}, validated)
	assert.Equal(t, []string{"B"}, removed)
}

func TestResolveRemovalIsImmediate(t *testing.T) {
	r := NewConflictResolver()
	stack := []resolvedTech{unresolved("A"), unresolved("B"), unresolved("C")}
	conflicts := []Conflict{
		highConflict("A", "B"),
		highConflict("B", "C"),
	}
	priorities := map[string]float64{"A": 0.9, "B": 0.1, "C": 0.2}

	// B loses the first conflict; the second conflict is then moot
	validated, removed := r.Resolve(stack, conflicts, priorities)
	assert.ElementsMatch(t, []string{"A", "C"}, validated)
	assert.Equal(t, []string{"B"}, removed)
}

func TestResolveMediumAndBelowNeverRemove(t *testing.T) {
	r := NewConflictResolver()
	stack := []resolvedTech{unresolved("A"), unresolved("B")}
	conflicts := []Conflict{
		{Tech1: "A", Tech2: "B", Severity: SeverityMedium},
		{Tech1: "A", Tech2: "B", Severity: SeverityLow},
		{Tech1: "A", Tech2: "B", Severity: SeverityInfo},
	}

	validated, removed := r.Resolve(stack, conflicts, nil)
	assert.ElementsMatch(t, []string{"A", "B"}, validated)
	assert.Empty(t, removed)
}

func TestResolvePartitionInvariant(t *testing.T) {
	r := NewConflictResolver()
	stack := []resolvedTech{
		unresolved("A"), unresolved("B"), unresolved("C"), unresolved("D"),
	}
	conflicts := []Conflict{
		criticalConflict("A", "B"),
		highConflict("C", "D"),
		highConflict("A", "C"),
	}

	validated, removed := r.Resolve(stack, conflicts, map[string]float64{"A": 0.8})

	assert.Len(t, validated, len(stack)-len(removed))
	seen := map[string]bool{}
	for _, name := range append(append([]string{}, validated...), removed...) {
		assert.False(t, seen[name], "duplicate %s across partitions", name)
		seen[name] = true
	}
	for _, tech := range stack {
		assert.True(t, seen[tech.Name], "%s missing from partition", tech.Name)
	}
}

func TestResolveInvalidPriorities(t *testing.T) {
	r := NewConflictResolver()
	stack := []resolvedTech{
		techWithMaturity("A", catalog.MaturityStable),
		techWithMaturity("B", catalog.MaturityStable),
	}
	conflicts := []Conflict{highConflict("A", "B")}

	// NaN and out-of-range priorities collapse to the 0.5 default, so the
	// outcome matches the full-tie case
	validated, removed := r.Resolve(stack, conflicts, map[string]float64{
		"A": math.NaN(),
		"B": 17.0,
	})
	assert.Equal(t, []string{"B"}, validated)
	assert.Equal(t, []string{"A"}, removed)
}

func TestResolvePriorityLookupIsCaseInsensitive(t *testing.T) {
	r := NewConflictResolver()
	stack := []resolvedTech{unresolved("FastAPI"), unresolved("Django")}
	conflicts := []Conflict{highConflict("FastAPI", "Django")}

	validated, removed := r.Resolve(stack, conflicts, map[string]float64{"fastapi": 0.9})
	require.Equal(t, []string{"FastAPI"}, validated)
	assert.Equal(t, []string{"Django"}, removed)
}
