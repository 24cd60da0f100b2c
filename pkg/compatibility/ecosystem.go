package compatibility

import (
	"fmt"
	"strings"

	"github.com/Ready2k/Project3-sub011/pkg/catalog"
)

// DefaultEcosystemTolerance is the minimum share of the stack the primary
// ecosystem must hold for the stack to count as consistent.
const DefaultEcosystemTolerance = 0.8

// EcosystemAnalyzer computes the ecosystem distribution of a stack and flags
// inconsistency against per-ecosystem tolerance thresholds.
type EcosystemAnalyzer struct {
	tolerances map[catalog.Ecosystem]float64
	keywords   map[catalog.Ecosystem][]string
}

// NewEcosystemAnalyzer returns an analyzer with the default tolerances and
// vendor keywords.
func NewEcosystemAnalyzer() *EcosystemAnalyzer {
	return &EcosystemAnalyzer{
		tolerances: map[catalog.Ecosystem]float64{
			catalog.EcosystemAWS:        DefaultEcosystemTolerance,
			catalog.EcosystemAzure:      DefaultEcosystemTolerance,
			catalog.EcosystemGCP:        DefaultEcosystemTolerance,
			catalog.EcosystemOpenSource: DefaultEcosystemTolerance,
		},
		keywords: map[catalog.Ecosystem][]string{
			catalog.EcosystemAWS:   {"aws", "amazon"},
			catalog.EcosystemAzure: {"azure", "microsoft"},
			catalog.EcosystemGCP:   {"gcp", "google"},
		},
	}
}

// ApplyRules overrides tolerances and inference keywords from a loaded data
// file. Unset fields keep their defaults.
func (a *EcosystemAnalyzer) ApplyRules(rules map[catalog.Ecosystem]EcosystemRule) {
	for eco, rule := range rules {
		if rule.ToleranceThreshold > 0 && rule.ToleranceThreshold <= 1 {
			a.tolerances[eco] = rule.ToleranceThreshold
		}
		if len(rule.PreferredKeywords) > 0 {
			a.keywords[eco] = rule.PreferredKeywords
		}
	}
}

// Analyze buckets the stack by ecosystem and checks consistency. Resolved
// entries use their catalog ecosystem; unresolved names fall back to vendor
// keyword inference. The primary ecosystem is the largest bucket, ties
// broken by first appearance in the stack.
func (a *EcosystemAnalyzer) Analyze(stack []resolvedTech) EcosystemConsistencyResult {
	result := EcosystemConsistencyResult{
		IsConsistent:          true,
		EcosystemDistribution: make(map[catalog.Ecosystem]int),
	}
	if len(stack) == 0 {
		return result
	}

	assignments := make([]catalog.Ecosystem, len(stack))
	var firstSeen []catalog.Ecosystem
	for i, tech := range stack {
		eco := a.classify(tech)
		assignments[i] = eco
		if result.EcosystemDistribution[eco] == 0 {
			firstSeen = append(firstSeen, eco)
		}
		result.EcosystemDistribution[eco]++
	}

	primary := firstSeen[0]
	for _, eco := range firstSeen[1:] {
		if result.EcosystemDistribution[eco] > result.EcosystemDistribution[primary] {
			primary = eco
		}
	}
	result.PrimaryEcosystem = primary

	cloudCount := 0
	for _, eco := range catalog.CloudEcosystems {
		if result.EcosystemDistribution[eco] > 0 {
			cloudCount++
		}
	}

	tolerance, ok := a.tolerances[primary]
	if !ok {
		tolerance = DefaultEcosystemTolerance
	}
	share := float64(result.EcosystemDistribution[primary]) / float64(len(stack))

	if cloudCount > 1 {
		result.IsConsistent = false
		result.Recommendations = append(result.Recommendations,
			"Multiple cloud vendors detected; standardize on a single provider to reduce integration overhead")
	}
	if share < tolerance {
		result.IsConsistent = false
	}

	if !result.IsConsistent {
		for i, tech := range stack {
			if assignments[i] != primary {
				result.MixedTechnologies = append(result.MixedTechnologies, tech.Name)
			}
		}
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("Standardize on the %s ecosystem where possible", primary))
	}
	return result
}

func (a *EcosystemAnalyzer) classify(tech resolvedTech) catalog.Ecosystem {
	if tech.Entry != nil {
		return tech.Entry.Ecosystem
	}
	lower := strings.ToLower(tech.Name)
	for _, eco := range catalog.CloudEcosystems {
		if containsAny(lower, a.keywords[eco]) {
			return eco
		}
	}
	return catalog.EcosystemOpenSource
}
