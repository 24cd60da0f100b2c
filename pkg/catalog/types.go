package catalog

import "time"

// Ecosystem is a cloud/vendor affinity grouping used to detect mixed-vendor
// stacks.
type Ecosystem string

const (
	EcosystemAWS        Ecosystem = "aws"
	EcosystemAzure      Ecosystem = "azure"
	EcosystemGCP        Ecosystem = "gcp"
	EcosystemOpenSource Ecosystem = "open_source"
)

// CloudEcosystems lists the vendor-exclusive ecosystems. A stack spanning
// more than one of these is considered mixed.
var CloudEcosystems = []Ecosystem{EcosystemAWS, EcosystemAzure, EcosystemGCP}

// Maturity describes how production-ready a technology is.
type Maturity string

const (
	MaturityDeprecated   Maturity = "deprecated"
	MaturityExperimental Maturity = "experimental"
	MaturityBeta         Maturity = "beta"
	MaturityStable       Maturity = "stable"
	MaturityMature       Maturity = "mature"
)

// Rank returns the ordering used when comparing maturity during conflict
// resolution. Unknown values rank as beta.
func (m Maturity) Rank() int {
	switch m {
	case MaturityDeprecated:
		return 0
	case MaturityExperimental:
		return 1
	case MaturityBeta:
		return 2
	case MaturityStable:
		return 3
	case MaturityMature:
		return 4
	default:
		return 2
	}
}

// Entry describes a single technology in the catalog.
type Entry struct {
	CanonicalName string    `json:"canonical_name"`
	Ecosystem     Ecosystem `json:"ecosystem"`
	License       string    `json:"license"`
	Maturity      Maturity  `json:"maturity"`
	Alternatives  []string  `json:"alternatives,omitempty"`
	Category      string    `json:"category"`
	Aliases       []string  `json:"aliases,omitempty"`

	// Auto-add bookkeeping. Entries inserted on a lookup miss start in a
	// pending-review state with low confidence until curated.
	PendingReview bool      `json:"pending_review,omitempty"`
	Confidence    float64   `json:"confidence,omitempty"`
	SourceContext string    `json:"source_context,omitempty"`
	AddedAt       time.Time `json:"added_at,omitempty"`
}

// clone returns a copy safe to hand to callers while the catalog mutates.
func (e *Entry) clone() *Entry {
	if e == nil {
		return nil
	}
	out := *e
	out.Alternatives = append([]string(nil), e.Alternatives...)
	out.Aliases = append([]string(nil), e.Aliases...)
	return &out
}
