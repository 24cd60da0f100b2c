package catalog

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	c := New()

	assert.Greater(t, c.Len(), 20)

	names := c.ListNames()
	assert.Contains(t, names, "fastapi")
	assert.Contains(t, names, "postgresql")
	assert.Contains(t, names, "aws s3")

	// Should be sorted
	for i := 1; i < len(names); i++ {
		assert.True(t, names[i-1] <= names[i])
	}
}

func TestGet(t *testing.T) {
	c := New()

	entry, ok := c.Get("PostgreSQL")
	require.True(t, ok)
	assert.Equal(t, "PostgreSQL", entry.CanonicalName)
	assert.Equal(t, EcosystemOpenSource, entry.Ecosystem)
	assert.Equal(t, MaturityMature, entry.Maturity)

	// Case insensitive
	entry2, ok2 := c.Get("POSTGRESQL")
	require.True(t, ok2)
	assert.Equal(t, entry.CanonicalName, entry2.CanonicalName)

	// Alias resolution
	entry3, ok3 := c.Get("postgres")
	require.True(t, ok3)
	assert.Equal(t, "PostgreSQL", entry3.CanonicalName)

	entry4, ok4 := c.Get("k8s")
	require.True(t, ok4)
	assert.Equal(t, "Kubernetes", entry4.CanonicalName)

	_, ok5 := c.Get("nonexistent")
	assert.False(t, ok5)
}

func TestLookupFuzzy(t *testing.T) {
	c := New()

	// One-character typo should still resolve
	entry, ok := c.Lookup("PostgrSQL", DefaultFuzzyThreshold)
	require.True(t, ok)
	assert.Equal(t, "PostgreSQL", entry.CanonicalName)

	entry2, ok2 := c.Lookup("FastAPI ", 0)
	require.True(t, ok2)
	assert.Equal(t, "FastAPI", entry2.CanonicalName)

	// Far-off names must miss
	_, ok3 := c.Lookup("xyz", DefaultFuzzyThreshold)
	assert.False(t, ok3)

	// Raising the threshold turns a near match into a miss
	_, ok4 := c.Lookup("PostgrSQL", 0.99)
	assert.False(t, ok4)

	_, ok5 := c.Lookup("", DefaultFuzzyThreshold)
	assert.False(t, ok5)
}

func TestLookupReturnsCopy(t *testing.T) {
	c := New()

	entry, ok := c.Lookup("AWS S3", 0)
	require.True(t, ok)
	entry.CanonicalName = "mutated"
	entry.Alternatives[0] = "mutated"

	fresh, ok := c.Lookup("AWS S3", 0)
	require.True(t, ok)
	assert.Equal(t, "AWS S3", fresh.CanonicalName)
	assert.Equal(t, "MinIO", fresh.Alternatives[0])
}

func TestAutoAdd(t *testing.T) {
	c := New()

	entry := c.AutoAdd("Cloudflare Workers", "unit test")
	require.NotNil(t, entry)
	assert.True(t, entry.PendingReview)
	assert.Equal(t, EcosystemOpenSource, entry.Ecosystem)
	assert.Equal(t, MaturityBeta, entry.Maturity)
	assert.Equal(t, "unit test", entry.SourceContext)
	assert.False(t, entry.AddedAt.IsZero())

	// Future lookups for the same name must succeed
	found, ok := c.Get("cloudflare workers")
	require.True(t, ok)
	assert.Equal(t, "Cloudflare Workers", found.CanonicalName)

	// Vendor keywords drive ecosystem inference
	awsEntry := c.AutoAdd("AWS AppSync", "unit test")
	assert.Equal(t, EcosystemAWS, awsEntry.Ecosystem)

	// Adding a name that already resolves returns the existing entry
	existing := c.AutoAdd("FastAPI", "unit test")
	assert.False(t, existing.PendingReview)
	assert.Equal(t, "FastAPI", existing.CanonicalName)
}

func TestInferEcosystem(t *testing.T) {
	assert.Equal(t, EcosystemAWS, InferEcosystem("Amazon Kinesis"))
	assert.Equal(t, EcosystemAzure, InferEcosystem("Microsoft Teams API"))
	assert.Equal(t, EcosystemGCP, InferEcosystem("Google Pub/Sub"))
	assert.Equal(t, EcosystemGCP, InferEcosystem("gcp-dataflow"))
	assert.Equal(t, EcosystemOpenSource, InferEcosystem("Kafka"))
}

func TestEntriesByCategory(t *testing.T) {
	c := New()

	storage := c.EntriesByCategory("object_storage")
	require.NotEmpty(t, storage)

	names := make([]string, 0, len(storage))
	for _, e := range storage {
		names = append(names, e.CanonicalName)
	}
	assert.Contains(t, names, "AWS S3")
	assert.Contains(t, names, "MinIO")

	// Sorted by canonical name
	for i := 1; i < len(storage); i++ {
		assert.True(t, storage[i-1].CanonicalName <= storage[i].CanonicalName)
	}

	assert.Empty(t, c.EntriesByCategory("no_such_category"))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")

	c := New()
	c.AutoAdd("Cloudflare Workers", "round trip")
	require.NoError(t, c.Save(path))

	reloaded := New()
	require.NoError(t, reloaded.Load(path))
	assert.Equal(t, c.Len(), reloaded.Len())

	entry, ok := reloaded.Get("AWS S3")
	require.True(t, ok)
	assert.Equal(t, EcosystemAWS, entry.Ecosystem)
	assert.Equal(t, "Proprietary", entry.License)
	assert.Contains(t, entry.Aliases, "s3")
	assert.Contains(t, entry.Alternatives, "MinIO")

	pending, ok := reloaded.Get("Cloudflare Workers")
	require.True(t, ok)
	assert.True(t, pending.PendingReview)
}

func TestLoadMissingFile(t *testing.T) {
	c := New()
	err := c.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestNewFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")

	// Missing file: seeded catalog, backed by the path from now on
	c, err := NewFromFile(path)
	require.NoError(t, err)
	assert.Greater(t, c.Len(), 0)

	// Auto-add persists, so a fresh catalog over the same file sees it
	c.AutoAdd("Cloudflare Workers", "persistence test")

	c2, err := NewFromFile(path)
	require.NoError(t, err)
	_, ok := c2.Get("Cloudflare Workers")
	assert.True(t, ok)
}

func TestConcurrentLookupAndAutoAdd(t *testing.T) {
	c := New()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Lookup("PostgreSQL", 0)
				c.Lookup("unknown-tech", 0)
			}
		}()
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.AutoAdd("Concurrent Tech", "race test")
			}
		}(i)
	}
	wg.Wait()

	_, ok := c.Get("Concurrent Tech")
	assert.True(t, ok)
}

func BenchmarkLookupExact(b *testing.B) {
	c := New()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		c.Lookup("PostgreSQL", 0)
	}
}

func BenchmarkLookupFuzzy(b *testing.B) {
	c := New()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		c.Lookup("PostgrSQL", 0)
	}
}
