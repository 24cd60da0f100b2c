package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/agnivade/levenshtein"

	svcerrors "github.com/Ready2k/Project3-sub011/pkg/errors"
	"github.com/Ready2k/Project3-sub011/pkg/logging"
)

// DefaultFuzzyThreshold is the minimum similarity for a fuzzy lookup hit.
const DefaultFuzzyThreshold = 0.8

// Catalog is the canonical technology registry used for name resolution and
// ecosystem/license/maturity lookup. It is safe for concurrent use: lookups
// take a read lock, auto-add takes the write lock, and persistence writes go
// through an atomic file replace so readers of the backing file never see a
// partially written document.
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]*Entry // key: lowercased canonical name
	aliases map[string]string // lowercased alias -> entry key
	path    string            // optional backing file
	logger  *logging.StructuredLogger
}

// New creates a catalog seeded with the built-in technology entries.
func New() *Catalog {
	c := &Catalog{
		entries: make(map[string]*Entry),
		aliases: make(map[string]string),
		logger:  logging.NewDefaultLogger("catalog"),
	}
	for _, e := range builtinEntries() {
		c.put(e)
	}
	return c
}

// NewFromFile creates a catalog backed by the given JSON document. The file
// is created on first save if it does not exist yet; in that case the
// built-in entries seed the catalog.
func NewFromFile(path string) (*Catalog, error) {
	c := New()
	c.path = path

	if err := c.Load(path); err != nil {
		if svcerrors.IsType(err, svcerrors.ErrorTypeNotFound) {
			return c, nil
		}
		return nil, err
	}
	return c, nil
}

// SetLogger replaces the catalog's logger.
func (c *Catalog) SetLogger(logger *logging.StructuredLogger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if logger != nil {
		c.logger = logger
	}
}

func (c *Catalog) put(e *Entry) {
	key := strings.ToLower(e.CanonicalName)
	c.entries[key] = e
	for _, alias := range e.Aliases {
		c.aliases[strings.ToLower(alias)] = key
	}
}

// Get returns the entry for an exact (case-insensitive) canonical name or
// alias match.
func (c *Catalog) Get(name string) (*Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.getLocked(name)
}

func (c *Catalog) getLocked(name string) (*Entry, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if e, ok := c.entries[key]; ok {
		return e.clone(), true
	}
	if target, ok := c.aliases[key]; ok {
		if e, ok := c.entries[target]; ok {
			return e.clone(), true
		}
	}
	return nil, false
}

// Lookup resolves a technology name. Exact canonical/alias matches win; when
// none exists the best fuzzy match at or above fuzzyThreshold is returned.
// A non-positive threshold selects DefaultFuzzyThreshold.
func (c *Catalog) Lookup(name string, fuzzyThreshold float64) (*Entry, bool) {
	if fuzzyThreshold <= 0 {
		fuzzyThreshold = DefaultFuzzyThreshold
	}

	if e, ok := c.Get(name); ok {
		return e, true
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil, false
	}

	var bestKey string
	bestScore := 0.0
	for key := range c.entries {
		if s := similarity(needle, key); s > bestScore {
			bestScore, bestKey = s, key
		}
		for _, alias := range c.entries[key].Aliases {
			if s := similarity(needle, strings.ToLower(alias)); s > bestScore {
				bestScore, bestKey = s, key
			}
		}
	}

	if bestScore >= fuzzyThreshold {
		return c.entries[bestKey].clone(), true
	}
	return nil, false
}

// similarity is a normalized Levenshtein ratio in [0,1].
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(longest)
}

// AutoAdd inserts a pending-review entry for an unknown technology so that
// future lookups for the same name succeed. The ecosystem is inferred from
// the name; maturity defaults to beta. AutoAdd never fails the caller:
// persistence problems are logged and the in-memory entry is still returned.
// If the name already resolves, the existing entry is returned unchanged.
func (c *Catalog) AutoAdd(name, sourceContext string) *Entry {
	name = strings.TrimSpace(name)

	c.mu.Lock()
	if existing, ok := c.getLocked(name); ok {
		c.mu.Unlock()
		return existing
	}

	entry := &Entry{
		CanonicalName: name,
		Ecosystem:     InferEcosystem(name),
		License:       "unknown",
		Maturity:      MaturityBeta,
		Category:      "uncategorized",
		PendingReview: true,
		Confidence:    0.3,
		SourceContext: sourceContext,
		AddedAt:       time.Now().UTC(),
	}
	c.put(entry)
	path := c.path
	logger := c.logger
	c.mu.Unlock()

	logger.InfoWithContext("auto-added technology pending review",
		"technology", name, "ecosystem", string(entry.Ecosystem))

	if path != "" {
		if err := c.Save(path); err != nil {
			logger.WarnWithContext("failed to persist auto-added technology",
				"technology", name, "error", err.Error())
		}
	}
	return entry.clone()
}

// InferEcosystem guesses the ecosystem for a raw technology name from vendor
// keywords. Names without a vendor keyword are treated as open source.
func InferEcosystem(name string) Ecosystem {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "aws") || strings.Contains(lower, "amazon"):
		return EcosystemAWS
	case strings.Contains(lower, "azure") || strings.Contains(lower, "microsoft"):
		return EcosystemAzure
	case strings.Contains(lower, "gcp") || strings.Contains(lower, "google"):
		return EcosystemGCP
	default:
		return EcosystemOpenSource
	}
}

// EntriesByCategory returns entries in the given category, sorted by
// canonical name.
func (c *Catalog) EntriesByCategory(category string) []*Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []*Entry
	for _, e := range c.entries {
		if strings.EqualFold(e.Category, category) {
			out = append(out, e.clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CanonicalName < out[j].CanonicalName
	})
	return out
}

// ListNames returns all canonical names, lowercased and sorted.
func (c *Catalog) ListNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.entries))
	for key := range c.entries {
		names = append(names, key)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// persistedCatalog is the on-disk document shape.
type persistedCatalog struct {
	Technologies map[string]*Entry `json:"technologies"`
	Metadata     catalogMetadata   `json:"metadata"`
}

type catalogMetadata struct {
	Version   string    `json:"version"`
	Count     int       `json:"total_technologies"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Load replaces the catalog contents with the technologies in the given
// JSON document.
func (c *Catalog) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return svcerrors.NewNotFoundError("catalog.load",
				fmt.Sprintf("catalog file %s does not exist", path))
		}
		return svcerrors.NewPersistenceError("catalog.load", "failed to read catalog file", err)
	}

	var doc persistedCatalog
	if err := json.Unmarshal(data, &doc); err != nil {
		return svcerrors.NewPersistenceError("catalog.load", "failed to parse catalog file", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*Entry, len(doc.Technologies))
	c.aliases = make(map[string]string)
	for id, e := range doc.Technologies {
		if e.CanonicalName == "" {
			e.CanonicalName = id
		}
		c.put(e)
	}
	return nil
}

// Save writes the catalog as a JSON document. The write is atomic: the
// document goes to a temp file in the same directory and is renamed over the
// target, so concurrent readers see either the old or the new snapshot.
func (c *Catalog) Save(path string) error {
	c.mu.RLock()
	doc := persistedCatalog{
		Technologies: make(map[string]*Entry, len(c.entries)),
		Metadata: catalogMetadata{
			Version:   "1.0",
			Count:     len(c.entries),
			UpdatedAt: time.Now().UTC(),
		},
	}
	for key, e := range c.entries {
		doc.Technologies[key] = e.clone()
	}
	c.mu.RUnlock()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return svcerrors.NewPersistenceError("catalog.save", "failed to marshal catalog", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".catalog-*.json")
	if err != nil {
		return svcerrors.NewPersistenceError("catalog.save", "failed to create temp file", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return svcerrors.NewPersistenceError("catalog.save", "failed to write catalog", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return svcerrors.NewPersistenceError("catalog.save", "failed to close temp file", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return svcerrors.NewPersistenceError("catalog.save", "failed to replace catalog file", err)
	}
	return nil
}
