package compatibility

import (
	"time"

	"github.com/Ready2k/Project3-sub011/pkg/catalog"
)

// ConflictType classifies why two technologies are incompatible.
type ConflictType string

const (
	ConflictTypeEcosystem    ConflictType = "ecosystem_conflict"
	ConflictTypeLicense      ConflictType = "license_conflict"
	ConflictTypeIntegration  ConflictType = "integration_conflict"
	ConflictTypeArchitecture ConflictType = "architecture_conflict"
)

// Severity grades a conflict. Only critical and high conflicts trigger
// removal during resolution; the rest are surfaced for reporting.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "info"
)

// Rank returns the ordering used when comparing severities.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// valid reports whether s is a known severity value.
func (s Severity) valid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow, SeverityInfo:
		return true
	}
	return false
}

// Conflict is a detected incompatibility between two technologies. Conflicts
// are created per validation call and never persisted.
type Conflict struct {
	Tech1               string       `json:"tech1"`
	Tech2               string       `json:"tech2"`
	Type                ConflictType `json:"conflict_type"`
	Severity            Severity     `json:"severity"`
	Description         string       `json:"description"`
	Explanation         string       `json:"explanation"`
	SuggestedResolution string       `json:"suggested_resolution"`
	Alternatives        []string     `json:"alternatives,omitempty"`
}

// Involves reports whether the conflict names the given technology on
// either side.
func (c Conflict) Involves(tech string) bool {
	return equalTechNames(c.Tech1, tech) || equalTechNames(c.Tech2, tech)
}

// Other returns the side of the conflict that is not the given technology.
func (c Conflict) Other(tech string) string {
	if equalTechNames(c.Tech1, tech) {
		return c.Tech2
	}
	return c.Tech1
}

// EcosystemConsistencyResult describes the ecosystem distribution of a stack
// and whether it is consistent.
type EcosystemConsistencyResult struct {
	IsConsistent          bool                      `json:"is_consistent"`
	PrimaryEcosystem      catalog.Ecosystem         `json:"primary_ecosystem"`
	EcosystemDistribution map[catalog.Ecosystem]int `json:"ecosystem_distribution"`
	MixedTechnologies     []string                  `json:"mixed_ecosystem_technologies,omitempty"`
	Recommendations       []string                  `json:"recommendations,omitempty"`
}

// ValidationReport is the full output of one validation call. It is a pure
// value object with no identity beyond the call that produced it.
type ValidationReport struct {
	ReportID    string    `json:"report_id"`
	GeneratedAt time.Time `json:"generated_at"`

	OriginalStack  []string `json:"original_tech_stack"`
	ValidatedStack []string `json:"validated_technologies"`
	RemovedStack   []string `json:"removed_technologies"`

	Conflicts []Conflict                 `json:"conflicts,omitempty"`
	Ecosystem EcosystemConsistencyResult `json:"ecosystem_result"`

	OverallScore float64 `json:"overall_score"`
	IsCompatible bool    `json:"is_compatible"`

	InclusionExplanations  map[string]string   `json:"inclusion_explanations,omitempty"`
	ExclusionExplanations  map[string]string   `json:"exclusion_explanations,omitempty"`
	AlternativeSuggestions map[string][]string `json:"alternative_suggestions,omitempty"`
	Suggestions            []string            `json:"suggestions,omitempty"`
}

// resolvedTech pairs a raw stack name with its catalog entry, when one
// exists.
type resolvedTech struct {
	Name  string
	Entry *catalog.Entry
}

func (r resolvedTech) ecosystem() catalog.Ecosystem {
	if r.Entry != nil {
		return r.Entry.Ecosystem
	}
	return catalog.InferEcosystem(r.Name)
}

func (r resolvedTech) license() string {
	if r.Entry != nil {
		return r.Entry.License
	}
	return ""
}
