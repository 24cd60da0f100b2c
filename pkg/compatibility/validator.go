package compatibility

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Ready2k/Project3-sub011/pkg/catalog"
	"github.com/Ready2k/Project3-sub011/pkg/logging"
)

// Config configures a Validator. Zero values select the documented
// defaults.
type Config struct {
	// FuzzyThreshold is the minimum similarity for fuzzy catalog lookups
	// (default 0.8).
	FuzzyThreshold float64
	// CompatibilityThreshold is the matrix score below which a pair
	// conflicts (default 0.7).
	CompatibilityThreshold float64
	// DataFilePath optionally points at a compatibility data file
	// (matrices, ecosystem rules, conflict rules). Read once at
	// construction; a missing or corrupt file degrades to built-in
	// defaults with a warning.
	DataFilePath string
	// MatrixPath optionally backs matrix mutations (AddCompatibilityRule)
	// with a persisted file, written atomically outside the validation
	// path.
	MatrixPath string
	// Registry receives the validator's prometheus metrics. Nil isolates
	// them on a private registry.
	Registry prometheus.Registerer
	// Logger defaults to a text logger for the validator component.
	Logger *logging.StructuredLogger
}

// Validator composes the ecosystem analyzer, conflict detector and conflict
// resolver into a single entry point producing validation reports.
type Validator struct {
	catalog        *catalog.Catalog
	analyzer       *EcosystemAnalyzer
	detector       *ConflictDetector
	resolver       *ConflictResolver
	matrix         *Matrix
	fuzzyThreshold float64
	metrics        *validatorMetrics
	logger         *logging.StructuredLogger
}

// NewValidator builds a validator around the given catalog.
func NewValidator(cat *catalog.Catalog, cfg Config) *Validator {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewDefaultLogger("compatibility")
	}

	fuzzy := cfg.FuzzyThreshold
	if fuzzy <= 0 {
		fuzzy = catalog.DefaultFuzzyThreshold
	}

	rules := DefaultConflictRules()
	matrix := NewMatrix()
	analyzer := NewEcosystemAnalyzer()

	if cfg.DataFilePath != "" {
		doc, err := LoadDataFile(cfg.DataFilePath)
		if err != nil {
			logger.WarnWithContext("compatibility data file unavailable, using built-in defaults",
				"path", cfg.DataFilePath, "error", err.Error())
		} else {
			for key, entry := range doc.Matrices {
				matrix.entries[key] = entry
			}
			analyzer.ApplyRules(doc.EcosystemRules)
			if loaded := convertRules(doc.ConflictRules, logger); len(loaded) > 0 {
				rules = loaded
			}
		}
	}
	matrix.path = cfg.MatrixPath

	return &Validator{
		catalog:        cat,
		analyzer:       analyzer,
		detector:       NewConflictDetector(rules, matrix, cfg.CompatibilityThreshold),
		resolver:       NewConflictResolver(),
		matrix:         matrix,
		fuzzyThreshold: fuzzy,
		metrics:        newValidatorMetrics(cfg.Registry),
		logger:         logger,
	}
}

// AddCompatibilityRule records an explicit pair score used by subsequent
// validations.
func (v *Validator) AddCompatibilityRule(tech1, tech2 string, score float64, notes string) error {
	return v.matrix.AddRule(tech1, tech2, score, notes)
}

// ValidateTechStack validates a candidate technology stack against the
// catalog, the conflict rule set and the compatibility matrix. Unknown
// technologies are auto-added to the catalog in a pending-review state and
// validated with inferred metadata; they are a data-quality signal, never a
// failure. The call does not return an error for any input.
func (v *Validator) ValidateTechStack(techStack []string, contextPriority map[string]float64) *ValidationReport {
	start := time.Now()

	stack := dedupeStack(techStack)
	resolved := make([]resolvedTech, len(stack))
	for i, name := range stack {
		entry, ok := v.catalog.Lookup(name, v.fuzzyThreshold)
		if !ok {
			entry = v.catalog.AutoAdd(name, "tech stack validation")
		}
		resolved[i] = resolvedTech{Name: name, Entry: entry}
	}

	ecosystem := v.analyzer.Analyze(resolved)
	conflicts := v.detector.Detect(resolved)
	validated, removed := v.resolver.Resolve(resolved, conflicts, contextPriority)

	report := &ValidationReport{
		ReportID:       uuid.NewString(),
		GeneratedAt:    time.Now().UTC(),
		OriginalStack:  stack,
		ValidatedStack: validated,
		RemovedStack:   removed,
		Conflicts:      sortConflictsBySeverity(conflicts),
		Ecosystem:      ecosystem,
	}

	report.OverallScore = overallScore(conflicts, ecosystem)
	unresolved := unresolvedCritical(conflicts, validated)
	report.IsCompatible = report.OverallScore >= 0.7 && len(unresolved) == 0

	for _, c := range unresolved {
		report.Suggestions = append(report.Suggestions,
			fmt.Sprintf("critical conflict between %s and %s could not be resolved automatically; review the stack manually", c.Tech1, c.Tech2))
	}

	v.explainInclusions(report, resolved, contextPriority)
	v.explainExclusions(report, resolved)

	elapsed := time.Since(start)
	v.metrics.observe(report, elapsed.Seconds())
	v.logger.InfoWithContext("tech stack validated",
		"stack_size", len(stack),
		"conflicts", len(conflicts),
		"removed", len(removed),
		"score", report.OverallScore,
		"compatible", report.IsCompatible,
		"duration_ms", elapsed.Milliseconds())

	return report
}

// CheckEcosystemConsistency analyzes ecosystem distribution without running
// conflict detection or mutating the catalog.
func (v *Validator) CheckEcosystemConsistency(techStack []string) EcosystemConsistencyResult {
	stack := dedupeStack(techStack)
	resolved := make([]resolvedTech, len(stack))
	for i, name := range stack {
		entry, _ := v.catalog.Lookup(name, v.fuzzyThreshold)
		resolved[i] = resolvedTech{Name: name, Entry: entry}
	}
	return v.analyzer.Analyze(resolved)
}

// overallScore starts at 1.0 and deducts per conflict severity plus a flat
// penalty for ecosystem inconsistency, clamped to [0,1].
func overallScore(conflicts []Conflict, ecosystem EcosystemConsistencyResult) float64 {
	score := 1.0
	for _, c := range conflicts {
		switch c.Severity {
		case SeverityCritical:
			score -= 0.3
		case SeverityHigh:
			score -= 0.2
		case SeverityMedium:
			score -= 0.1
		case SeverityLow:
			score -= 0.05
		}
	}
	if !ecosystem.IsConsistent {
		score -= 0.2
	}
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// unresolvedCritical returns critical conflicts whose both sides survived
// resolution. Defensive: resolution removes one side of every critical
// conflict it can see, so this should stay empty.
func unresolvedCritical(conflicts []Conflict, validated []string) []Conflict {
	alive := make(map[string]bool, len(validated))
	for _, name := range validated {
		alive[techKey(name)] = true
	}
	var out []Conflict
	for _, c := range conflicts {
		if c.Severity == SeverityCritical && alive[techKey(c.Tech1)] && alive[techKey(c.Tech2)] {
			out = append(out, c)
		}
	}
	return out
}

func (v *Validator) explainInclusions(report *ValidationReport, resolved []resolvedTech, priorities map[string]float64) {
	if len(report.ValidatedStack) == 0 {
		return
	}
	report.InclusionExplanations = make(map[string]string, len(report.ValidatedStack))
	normPriorities := normalizePriorities(priorities)

	entries := make(map[string]resolvedTech, len(resolved))
	for _, tech := range resolved {
		entries[techKey(tech.Name)] = tech
	}

	for _, name := range report.ValidatedStack {
		p := priorityFor(name, normPriorities)
		tech := entries[techKey(name)]
		switch {
		case p >= 0.8:
			report.InclusionExplanations[name] = fmt.Sprintf("retained: high priority in request context (%.2f)", p)
		case p > DefaultPriority:
			report.InclusionExplanations[name] = fmt.Sprintf("retained: prioritized in request context (%.2f)", p)
		case tech.ecosystem() == report.Ecosystem.PrimaryEcosystem:
			report.InclusionExplanations[name] = fmt.Sprintf("retained: consistent with the primary %s ecosystem", tech.ecosystem())
		default:
			report.InclusionExplanations[name] = "retained: no blocking conflicts detected"
		}
	}
}

func (v *Validator) explainExclusions(report *ValidationReport, resolved []resolvedTech) {
	if len(report.RemovedStack) == 0 {
		return
	}
	report.ExclusionExplanations = make(map[string]string, len(report.RemovedStack))
	report.AlternativeSuggestions = make(map[string][]string, len(report.RemovedStack))

	entries := make(map[string]resolvedTech, len(resolved))
	for _, tech := range resolved {
		entries[techKey(tech.Name)] = tech
	}

	for _, name := range report.RemovedStack {
		if cause, ok := highestSeverityConflict(report.Conflicts, name); ok {
			report.ExclusionExplanations[name] = fmt.Sprintf("removed due to %s %s with %s: %s",
				cause.Severity, cause.Type, cause.Other(name), cause.Description)
		} else {
			report.ExclusionExplanations[name] = "removed during conflict resolution"
		}

		if alts := v.alternativesFor(entries[techKey(name)], report.RemovedStack); len(alts) > 0 {
			report.AlternativeSuggestions[name] = alts
		}
	}
}

// highestSeverityConflict finds the most severe conflict involving a
// technology. Conflicts in the report are already sorted by severity.
func highestSeverityConflict(conflicts []Conflict, tech string) (Conflict, bool) {
	for _, c := range conflicts {
		if c.Involves(tech) {
			return c, true
		}
	}
	return Conflict{}, false
}

// alternativesFor suggests replacements for a removed technology: its
// catalog alternatives first, then other entries in the same category,
// capped at three. Other removed technologies are never suggested.
func (v *Validator) alternativesFor(tech resolvedTech, removed []string) []string {
	skip := make(map[string]bool, len(removed)+1)
	skip[techKey(tech.Name)] = true
	for _, name := range removed {
		skip[techKey(name)] = true
	}

	var out []string
	add := func(candidate string) {
		if len(out) >= 3 || skip[techKey(candidate)] {
			return
		}
		skip[techKey(candidate)] = true
		out = append(out, candidate)
	}

	if tech.Entry != nil {
		for _, alt := range tech.Entry.Alternatives {
			add(alt)
		}
		if len(out) < 3 && tech.Entry.Category != "" {
			for _, peer := range v.catalog.EntriesByCategory(tech.Entry.Category) {
				add(peer.CanonicalName)
			}
		}
	}
	return out
}

// dedupeStack removes case-insensitive duplicates, preserving first-seen
// order.
func dedupeStack(stack []string) []string {
	seen := make(map[string]bool, len(stack))
	out := make([]string, 0, len(stack))
	for _, name := range stack {
		key := techKey(name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, name)
	}
	return out
}
