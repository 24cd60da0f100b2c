package compatibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ready2k/Project3-sub011/pkg/catalog"
)

func tech(name string, eco catalog.Ecosystem) resolvedTech {
	return resolvedTech{
		Name:  name,
		Entry: &catalog.Entry{CanonicalName: name, Ecosystem: eco},
	}
}

func unresolved(name string) resolvedTech {
	return resolvedTech{Name: name}
}

func TestAnalyzeConsistentStack(t *testing.T) {
	a := NewEcosystemAnalyzer()

	result := a.Analyze([]resolvedTech{
		tech("FastAPI", catalog.EcosystemOpenSource),
		tech("PostgreSQL", catalog.EcosystemOpenSource),
		tech("Redis", catalog.EcosystemOpenSource),
	})

	assert.True(t, result.IsConsistent)
	assert.Equal(t, catalog.EcosystemOpenSource, result.PrimaryEcosystem)
	assert.Equal(t, 3, result.EcosystemDistribution[catalog.EcosystemOpenSource])
	assert.Empty(t, result.MixedTechnologies)
	assert.Empty(t, result.Recommendations)
}

func TestAnalyzeMultiCloud(t *testing.T) {
	a := NewEcosystemAnalyzer()

	result := a.Analyze([]resolvedTech{
		tech("AWS S3", catalog.EcosystemAWS),
		tech("Azure Blob Storage", catalog.EcosystemAzure),
		tech("FastAPI", catalog.EcosystemOpenSource),
	})

	assert.False(t, result.IsConsistent)
	// Primary is the first-seen bucket when counts tie
	assert.Equal(t, catalog.EcosystemAWS, result.PrimaryEcosystem)
	assert.Contains(t, result.MixedTechnologies, "Azure Blob Storage")
	assert.Contains(t, result.MixedTechnologies, "FastAPI")
	assert.NotContains(t, result.MixedTechnologies, "AWS S3")
	require.NotEmpty(t, result.Recommendations)
}

func TestAnalyzeToleranceBreach(t *testing.T) {
	a := NewEcosystemAnalyzer()

	// One cloud only, but the primary open_source bucket holds 2/3 < 0.8
	result := a.Analyze([]resolvedTech{
		tech("AWS S3", catalog.EcosystemAWS),
		tech("FastAPI", catalog.EcosystemOpenSource),
		tech("PostgreSQL", catalog.EcosystemOpenSource),
	})

	assert.False(t, result.IsConsistent)
	assert.Equal(t, catalog.EcosystemOpenSource, result.PrimaryEcosystem)
	assert.Equal(t, []string{"AWS S3"}, result.MixedTechnologies)
}

func TestAnalyzeToleranceOverride(t *testing.T) {
	a := NewEcosystemAnalyzer()
	a.ApplyRules(map[catalog.Ecosystem]EcosystemRule{
		catalog.EcosystemOpenSource: {ToleranceThreshold: 0.5},
	})

	result := a.Analyze([]resolvedTech{
		tech("AWS S3", catalog.EcosystemAWS),
		tech("FastAPI", catalog.EcosystemOpenSource),
		tech("PostgreSQL", catalog.EcosystemOpenSource),
	})

	assert.True(t, result.IsConsistent)
}

func TestAnalyzeFirstSeenPrimary(t *testing.T) {
	a := NewEcosystemAnalyzer()

	result := a.Analyze([]resolvedTech{
		tech("Azure Functions", catalog.EcosystemAzure),
		tech("AWS Lambda", catalog.EcosystemAWS),
	})

	assert.False(t, result.IsConsistent)
	assert.Equal(t, catalog.EcosystemAzure, result.PrimaryEcosystem)
}

func TestAnalyzeUnresolvedInference(t *testing.T) {
	a := NewEcosystemAnalyzer()

	result := a.Analyze([]resolvedTech{
		unresolved("Amazon SQS"),
		unresolved("Amazon SNS"),
		unresolved("some-internal-lib"),
	})

	assert.Equal(t, 2, result.EcosystemDistribution[catalog.EcosystemAWS])
	assert.Equal(t, 1, result.EcosystemDistribution[catalog.EcosystemOpenSource])
	assert.Equal(t, catalog.EcosystemAWS, result.PrimaryEcosystem)
}

func TestAnalyzeEmptyStack(t *testing.T) {
	a := NewEcosystemAnalyzer()

	result := a.Analyze(nil)

	assert.True(t, result.IsConsistent)
	assert.Empty(t, result.EcosystemDistribution)
	assert.Empty(t, result.MixedTechnologies)
}
