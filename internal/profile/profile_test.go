package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvidence() []Evidence {
	return []Evidence{
		{Dimension: "communication", Scores: map[string]float64{"clarity": 4, "structure": 2}},
		{Dimension: "communication", Scores: map[string]float64{"communication": 5}},
		{Dimension: "integrity", Scores: map[string]float64{"ethical": 5, "practical": 3}},
	}
}

func dimension(t *testing.T, p Profile, id string) DimensionScore {
	t.Helper()
	for _, d := range p.Dimensions {
		if d.Dimension == id {
			return d
		}
	}
	t.Fatalf("dimension %q not in profile", id)
	return DimensionScore{}
}

func TestComputeTwoLevelMean(t *testing.T) {
	p := Compute(sampleEvidence())

	// communication: result means are 3 and 5, dimension mean 4.
	comm := dimension(t, p, "communication")
	assert.InDelta(t, 4.0, comm.Score, 1e-9)
	assert.Equal(t, 2, comm.Evidence)

	// integrity: single result mean (5+3)/2 = 4.
	integ := dimension(t, p, "integrity")
	assert.InDelta(t, 4.0, integ.Score, 1e-9)
	assert.Equal(t, 1, integ.Evidence)
}

func TestComputeZeroEvidenceDimensions(t *testing.T) {
	p := Compute(sampleEvidence())

	empathy := dimension(t, p, "empathy")
	assert.Equal(t, 0.0, empathy.Score)
	assert.Equal(t, 0, empathy.Evidence)
}

func TestComputeIdempotent(t *testing.T) {
	evidence := sampleEvidence()
	first := Compute(evidence)
	second := Compute(evidence)
	require.Equal(t, first, second)
}

func TestComputeEmptyLedger(t *testing.T) {
	p := Compute(nil)

	for _, d := range p.Dimensions {
		assert.Equal(t, 0.0, d.Score, "dimension %s", d.Dimension)
		assert.Equal(t, 0, d.Evidence, "dimension %s", d.Dimension)
	}

	overall, evidence := p.Overall()
	assert.Equal(t, 0.0, overall)
	assert.Equal(t, 0, evidence)
}

func TestOverallExcludesZeroEvidence(t *testing.T) {
	p := Compute(sampleEvidence())

	overall, evidence := p.Overall()
	// Two dimensions with evidence, both at 4.
	assert.InDelta(t, 4.0, overall, 1e-9)
	assert.Equal(t, 3, evidence)
}

func TestSnapshotOnlyIncludesEvidence(t *testing.T) {
	p := Compute(sampleEvidence())

	snap := p.Snapshot()
	assert.Len(t, snap, 2)
	assert.InDelta(t, 4.0, snap["communication"], 1e-9)
	_, ok := snap["empathy"]
	assert.False(t, ok)
}
