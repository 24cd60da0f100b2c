package compatibility

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Ready2k/Project3-sub011/pkg/catalog"
	svcerrors "github.com/Ready2k/Project3-sub011/pkg/errors"
)

// DefaultCompatibilityThreshold is the matrix score below which a pair is
// reported as an integration conflict.
const DefaultCompatibilityThreshold = 0.7

// MatrixEntry is one explicit compatibility score for a technology pair.
// Absence of an entry means "no explicit rule", not automatic compatibility.
type MatrixEntry struct {
	Score       float64   `json:"compatibility_score" yaml:"compatibility_score"`
	Notes       string    `json:"notes,omitempty" yaml:"notes,omitempty"`
	LastUpdated time.Time `json:"last_updated" yaml:"last_updated"`
}

// Matrix is a sparse compatibility-score table keyed by unordered
// technology pairs. Safe for concurrent use.
type Matrix struct {
	mu      sync.RWMutex
	entries map[string]MatrixEntry
	path    string // optional backing file
}

// NewMatrix returns a matrix seeded with the built-in pair scores.
func NewMatrix() *Matrix {
	return &Matrix{entries: defaultMatrixEntries()}
}

func defaultMatrixEntries() map[string]MatrixEntry {
	now := time.Now().UTC()
	seed := map[string]float64{
		pairKey("FastAPI", "PostgreSQL"):    0.95,
		pairKey("Django", "PostgreSQL"):     0.95,
		pairKey("Flask", "PostgreSQL"):      0.9,
		pairKey("React", "FastAPI"):         0.9,
		pairKey("Express", "MongoDB"):       0.9,
		pairKey("Apache Kafka", "RabbitMQ"): 0.4,
	}
	entries := make(map[string]MatrixEntry, len(seed))
	for key, score := range seed {
		entries[key] = MatrixEntry{Score: score, LastUpdated: now}
	}
	return entries
}

// pairKey builds the canonical unordered key for a pair: lowercased names
// joined with "|", smaller name first.
func pairKey(tech1, tech2 string) string {
	a := strings.ToLower(strings.TrimSpace(tech1))
	b := strings.ToLower(strings.TrimSpace(tech2))
	if b < a {
		a, b = b, a
	}
	return a + "|" + b
}

// Score looks up the explicit score for a pair in either order.
func (m *Matrix) Score(tech1, tech2 string) (MatrixEntry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.entries[pairKey(tech1, tech2)]
	return entry, ok
}

// AddRule records an explicit compatibility score for a pair, replacing any
// previous entry. Scores must be in [0,1].
func (m *Matrix) AddRule(tech1, tech2 string, score float64, notes string) error {
	if tech1 == "" || tech2 == "" {
		return svcerrors.NewValidationError("matrix.add", "both technology names are required")
	}
	if math.IsNaN(score) || score < 0 || score > 1 {
		return svcerrors.NewValidationError("matrix.add",
			fmt.Sprintf("compatibility score %v outside [0,1]", score))
	}

	m.mu.Lock()
	m.entries[pairKey(tech1, tech2)] = MatrixEntry{
		Score:       score,
		Notes:       notes,
		LastUpdated: time.Now().UTC(),
	}
	path := m.path
	m.mu.Unlock()

	if path != "" {
		// Best effort: an unwritable file must not fail the caller.
		_ = m.save(path)
	}
	return nil
}

// Len returns the number of explicit pair entries.
func (m *Matrix) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *Matrix) save(path string) error {
	m.mu.RLock()
	doc := DataFile{Matrices: make(map[string]MatrixEntry, len(m.entries))}
	for k, v := range m.entries {
		doc.Matrices[k] = v
	}
	m.mu.RUnlock()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return svcerrors.NewPersistenceError("matrix.save", "failed to marshal matrix", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".compat-*.json")
	if err != nil {
		return svcerrors.NewPersistenceError("matrix.save", "failed to create temp file", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return svcerrors.NewPersistenceError("matrix.save", "failed to write matrix", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return svcerrors.NewPersistenceError("matrix.save", "failed to close temp file", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return svcerrors.NewPersistenceError("matrix.save", "failed to replace matrix file", err)
	}
	return nil
}

// EcosystemRule configures one ecosystem's inference keywords and tolerance
// threshold.
type EcosystemRule struct {
	PreferredKeywords  []string `json:"preferred_keywords" yaml:"preferred_keywords"`
	ToleranceThreshold float64  `json:"tolerance_threshold" yaml:"tolerance_threshold"`
}

// DataFile is the on-disk compatibility document: explicit pair scores,
// per-ecosystem rules and conflict rules. Loaded once at startup; absence is
// non-fatal and falls back to built-in defaults.
type DataFile struct {
	Matrices       map[string]MatrixEntry              `json:"matrices" yaml:"matrices"`
	EcosystemRules map[catalog.Ecosystem]EcosystemRule `json:"ecosystem_rules,omitempty" yaml:"ecosystem_rules,omitempty"`
	ConflictRules  []rawConflictRule                   `json:"conflict_rules,omitempty" yaml:"conflict_rules,omitempty"`
}

// LoadDataFile parses a compatibility data file. The format is JSON unless
// the file extension is .yaml or .yml.
func LoadDataFile(path string) (*DataFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, svcerrors.NewNotFoundError("datafile.load",
				fmt.Sprintf("compatibility data file %s does not exist", path))
		}
		return nil, svcerrors.NewPersistenceError("datafile.load", "failed to read data file", err)
	}

	var doc DataFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, svcerrors.NewPersistenceError("datafile.load", "failed to parse data file", err)
	}

	// Normalize pair keys so lookups match regardless of how the file
	// ordered each pair.
	if doc.Matrices != nil {
		normalized := make(map[string]MatrixEntry, len(doc.Matrices))
		for key, entry := range doc.Matrices {
			parts := strings.SplitN(key, "|", 2)
			if len(parts) == 2 {
				normalized[pairKey(parts[0], parts[1])] = entry
			}
		}
		doc.Matrices = normalized
	}
	return &doc, nil
}
