package compatibility

import (
	"fmt"
	"strings"

	svcerrors "github.com/Ready2k/Project3-sub011/pkg/errors"
	"github.com/Ready2k/Project3-sub011/pkg/logging"
)

// RulePattern is a closed set of ways a conflict rule can match a pair of
// technologies. Patterns are directional; the detector tries both orders.
type RulePattern interface {
	// Matches tests tech a against the pattern's first side and tech b
	// against its second side.
	Matches(a, b resolvedTech) bool
	validate() error
}

// NameSubstringPattern matches when the first technology's lowercased name
// contains any of Tech1Contains and the second contains any of
// Tech2Contains.
type NameSubstringPattern struct {
	Tech1Contains []string
	Tech2Contains []string
}

// Matches implements RulePattern.
func (p NameSubstringPattern) Matches(a, b resolvedTech) bool {
	return containsAny(strings.ToLower(a.Name), p.Tech1Contains) &&
		containsAny(strings.ToLower(b.Name), p.Tech2Contains)
}

func (p NameSubstringPattern) validate() error {
	if len(p.Tech1Contains) == 0 || len(p.Tech2Contains) == 0 {
		return fmt.Errorf("substring pattern requires keywords for both sides")
	}
	return nil
}

func containsAny(name string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(name, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

// LicensePairPattern matches on an exact license pairing.
type LicensePairPattern struct {
	License1 string
	License2 string
}

// Matches implements RulePattern.
func (p LicensePairPattern) Matches(a, b resolvedTech) bool {
	return strings.EqualFold(a.license(), p.License1) &&
		strings.EqualFold(b.license(), p.License2)
}

func (p LicensePairPattern) validate() error {
	if p.License1 == "" || p.License2 == "" {
		return fmt.Errorf("license pattern requires both licenses")
	}
	return nil
}

// ConflictRule is one pairwise conflict pattern. Rules are static
// configuration: loaded once, never mutated at request time.
type ConflictRule struct {
	Name                string
	Type                ConflictType
	Severity            Severity
	Patterns            []RulePattern
	Description         string
	SuggestedResolution string
}

func (r ConflictRule) validate() error {
	if r.Name == "" {
		return fmt.Errorf("rule missing name")
	}
	if !r.Severity.valid() {
		return fmt.Errorf("rule %q has unknown severity %q", r.Name, r.Severity)
	}
	if len(r.Patterns) == 0 {
		return fmt.Errorf("rule %q has no patterns", r.Name)
	}
	for _, p := range r.Patterns {
		if err := p.validate(); err != nil {
			return fmt.Errorf("rule %q: %w", r.Name, err)
		}
	}
	return nil
}

// DefaultConflictRules returns the built-in rule set used when no data file
// is configured.
func DefaultConflictRules() []ConflictRule {
	return []ConflictRule{
		{
			Name:     "aws-azure-exclusivity",
			Type:     ConflictTypeEcosystem,
			Severity: SeverityCritical,
			Patterns: []RulePattern{
				NameSubstringPattern{
					Tech1Contains: []string{"aws", "amazon"},
					Tech2Contains: []string{"azure", "microsoft"},
				},
			},
			Description:         "AWS and Azure services in the same stack",
			SuggestedResolution: "Standardize on a single cloud vendor or introduce an abstraction layer",
		},
		{
			Name:     "aws-gcp-exclusivity",
			Type:     ConflictTypeEcosystem,
			Severity: SeverityCritical,
			Patterns: []RulePattern{
				NameSubstringPattern{
					Tech1Contains: []string{"aws", "amazon"},
					Tech2Contains: []string{"gcp", "google"},
				},
			},
			Description:         "AWS and Google Cloud services in the same stack",
			SuggestedResolution: "Standardize on a single cloud vendor or introduce an abstraction layer",
		},
		{
			Name:     "azure-gcp-exclusivity",
			Type:     ConflictTypeEcosystem,
			Severity: SeverityCritical,
			Patterns: []RulePattern{
				NameSubstringPattern{
					Tech1Contains: []string{"azure", "microsoft"},
					Tech2Contains: []string{"gcp", "google"},
				},
			},
			Description:         "Azure and Google Cloud services in the same stack",
			SuggestedResolution: "Standardize on a single cloud vendor or introduce an abstraction layer",
		},
		{
			Name:     "copyleft-proprietary-licensing",
			Type:     ConflictTypeLicense,
			Severity: SeverityHigh,
			Patterns: []RulePattern{
				LicensePairPattern{License1: "GPL-3.0", License2: "Proprietary"},
				LicensePairPattern{License1: "AGPL-3.0", License2: "Proprietary"},
			},
			Description:         "Copyleft-licensed component combined with a proprietary service",
			SuggestedResolution: "Review license obligations or choose a permissively licensed alternative",
		},
	}
}

// rawConflictRule is the loose on-disk rule shape. It is converted into a
// ConflictRule with typed patterns at load time; malformed rules are
// rejected there, never per validation call.
type rawConflictRule struct {
	Name                string       `json:"name" yaml:"name"`
	ConflictType        string       `json:"conflict_type" yaml:"conflict_type"`
	Severity            string       `json:"severity" yaml:"severity"`
	Patterns            []rawPattern `json:"patterns" yaml:"patterns"`
	Description         string       `json:"description" yaml:"description"`
	SuggestedResolution string       `json:"suggested_resolution" yaml:"suggested_resolution"`
}

type rawPattern struct {
	Tech1Contains []string `json:"tech1_contains,omitempty" yaml:"tech1_contains,omitempty"`
	Tech2Contains []string `json:"tech2_contains,omitempty" yaml:"tech2_contains,omitempty"`
	Tech1License  string   `json:"tech1_license,omitempty" yaml:"tech1_license,omitempty"`
	Tech2License  string   `json:"tech2_license,omitempty" yaml:"tech2_license,omitempty"`
}

func (p rawPattern) toPattern() (RulePattern, error) {
	hasSubstring := len(p.Tech1Contains) > 0 || len(p.Tech2Contains) > 0
	hasLicense := p.Tech1License != "" || p.Tech2License != ""

	switch {
	case hasSubstring && hasLicense:
		return nil, fmt.Errorf("pattern mixes substring and license matching")
	case hasLicense:
		lp := LicensePairPattern{License1: p.Tech1License, License2: p.Tech2License}
		return lp, lp.validate()
	case hasSubstring:
		sp := NameSubstringPattern{Tech1Contains: p.Tech1Contains, Tech2Contains: p.Tech2Contains}
		return sp, sp.validate()
	default:
		return nil, fmt.Errorf("pattern has no match criteria")
	}
}

func (r rawConflictRule) toRule() (ConflictRule, error) {
	rule := ConflictRule{
		Name:                r.Name,
		Type:                ConflictType(r.ConflictType),
		Severity:            Severity(strings.ToLower(r.Severity)),
		Description:         r.Description,
		SuggestedResolution: r.SuggestedResolution,
	}
	if rule.Type == "" {
		rule.Type = ConflictTypeIntegration
	}
	for _, raw := range r.Patterns {
		p, err := raw.toPattern()
		if err != nil {
			return ConflictRule{}, svcerrors.NewConfigurationError("rules.load",
				fmt.Sprintf("rule %q has an invalid pattern", r.Name), err)
		}
		rule.Patterns = append(rule.Patterns, p)
	}
	if err := rule.validate(); err != nil {
		return ConflictRule{}, svcerrors.NewConfigurationError("rules.load", err.Error(), nil)
	}
	return rule, nil
}

// convertRules converts raw rules, skipping malformed ones with a warning so
// one bad rule never aborts the whole detector.
func convertRules(raw []rawConflictRule, logger *logging.StructuredLogger) []ConflictRule {
	rules := make([]ConflictRule, 0, len(raw))
	for _, rr := range raw {
		rule, err := rr.toRule()
		if err != nil {
			logger.WarnWithContext("skipping malformed conflict rule",
				"rule", rr.Name, "error", err.Error())
			continue
		}
		rules = append(rules, rule)
	}
	return rules
}
