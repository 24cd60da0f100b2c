package compatibility

import (
	"fmt"
)

// ConflictDetector evaluates the rule set and the compatibility matrix over
// every unordered pair in a candidate stack. O(n²) over the stack size,
// which is tens of items at most.
type ConflictDetector struct {
	rules     []ConflictRule
	matrix    *Matrix
	threshold float64
}

// NewConflictDetector builds a detector. A non-positive threshold selects
// DefaultCompatibilityThreshold.
func NewConflictDetector(rules []ConflictRule, matrix *Matrix, threshold float64) *ConflictDetector {
	if threshold <= 0 {
		threshold = DefaultCompatibilityThreshold
	}
	return &ConflictDetector{rules: rules, matrix: matrix, threshold: threshold}
}

// Detect returns the concatenation of rule-based and matrix-based conflicts
// for all pairs. The same pair can appear once from each source; their
// explanations differ.
func (d *ConflictDetector) Detect(stack []resolvedTech) []Conflict {
	var conflicts []Conflict
	for i := 0; i < len(stack); i++ {
		for j := i + 1; j < len(stack); j++ {
			if c, ok := d.ruleConflict(stack[i], stack[j]); ok {
				conflicts = append(conflicts, c)
			}
			if c, ok := d.matrixConflict(stack[i], stack[j]); ok {
				conflicts = append(conflicts, c)
			}
		}
	}
	return conflicts
}

// ruleConflict applies the rule set to one pair. The first matching rule
// wins; lower-priority rules are not consulted once a match is found.
func (d *ConflictDetector) ruleConflict(a, b resolvedTech) (Conflict, bool) {
	for _, rule := range d.rules {
		for _, pattern := range rule.Patterns {
			if pattern.Matches(a, b) || pattern.Matches(b, a) {
				return Conflict{
					Tech1:       a.Name,
					Tech2:       b.Name,
					Type:        rule.Type,
					Severity:    rule.Severity,
					Description: rule.Description,
					Explanation: fmt.Sprintf("%s and %s: %s",
						a.Name, b.Name, rule.Description),
					SuggestedResolution: rule.SuggestedResolution,
					Alternatives:        pairAlternatives(a, b),
				}, true
			}
		}
	}
	return Conflict{}, false
}

// matrixConflict checks the explicit pair score. Scores below the threshold
// produce an integration conflict: high severity under 0.3, medium
// otherwise.
func (d *ConflictDetector) matrixConflict(a, b resolvedTech) (Conflict, bool) {
	entry, ok := d.matrix.Score(a.Name, b.Name)
	if !ok || entry.Score >= d.threshold {
		return Conflict{}, false
	}

	severity := SeverityMedium
	if entry.Score < 0.3 {
		severity = SeverityHigh
	}

	description := entry.Notes
	if description == "" {
		description = "known integration issues between these technologies"
	}

	return Conflict{
		Tech1:       a.Name,
		Tech2:       b.Name,
		Type:        ConflictTypeIntegration,
		Severity:    severity,
		Description: description,
		Explanation: fmt.Sprintf("%s and %s have a compatibility score of %.2f (threshold %.2f)",
			a.Name, b.Name, entry.Score, d.threshold),
		SuggestedResolution: "Replace one side of the pair or add an integration layer",
		Alternatives:        pairAlternatives(a, b),
	}, true
}

// pairAlternatives collects catalog alternatives for both sides, capped at
// three.
func pairAlternatives(a, b resolvedTech) []string {
	var out []string
	for _, tech := range []resolvedTech{a, b} {
		if tech.Entry == nil {
			continue
		}
		for _, alt := range tech.Entry.Alternatives {
			if len(out) >= 3 {
				return out
			}
			out = append(out, alt)
		}
	}
	return out
}
