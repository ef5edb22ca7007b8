package profile

import (
	"github.com/trio-sh/academy-builder-sub001/internal/catalog"
	"github.com/trio-sh/academy-builder-sub001/internal/store"
)

// Evidence is one challenge result's contribution to the profile.
type Evidence struct {
	Dimension string
	Scores    map[string]float64
}

// DimensionScore is the aggregated standing for one skill dimension.
type DimensionScore struct {
	Dimension string
	Label     string
	Score     float64 // 1-5 when evidence exists, 0 otherwise
	Evidence  int     // number of results contributing
}

// Profile is the full aggregated skill profile, one entry per catalog
// dimension in catalog order.
type Profile struct {
	Dimensions []DimensionScore
}

// Compute aggregates evidence into a profile with a two-level mean:
// each result collapses to the mean of its criterion scores, and each
// dimension reports the mean of its result means. Aggregation is pure,
// so recomputing over an unchanged ledger yields identical output.
// Dimensions with no evidence report score 0 and evidence 0.
func Compute(evidence []Evidence) Profile {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, ev := range evidence {
		if len(ev.Scores) == 0 {
			continue
		}
		sum := 0.0
		for _, v := range ev.Scores {
			sum += v
		}
		mean := sum / float64(len(ev.Scores))

		sums[ev.Dimension] += mean
		counts[ev.Dimension]++
	}

	dims := make([]DimensionScore, 0, len(catalog.Dimensions))
	for _, d := range catalog.Dimensions {
		ds := DimensionScore{Dimension: d.ID, Label: d.Label}
		if n := counts[d.ID]; n > 0 {
			ds.Score = sums[d.ID] / float64(n)
			ds.Evidence = n
		}
		dims = append(dims, ds)
	}

	return Profile{Dimensions: dims}
}

// FromRecords maps persisted result rows into aggregation evidence.
func FromRecords(records []store.ResultRecord) []Evidence {
	out := make([]Evidence, 0, len(records))
	for _, r := range records {
		out = append(out, Evidence{Dimension: r.Dimension, Scores: r.Scores})
	}
	return out
}

// Overall returns the mean score across dimensions with evidence, and
// the total evidence count. Zero-evidence dimensions are excluded.
func (p Profile) Overall() (float64, int) {
	sum := 0.0
	dims := 0
	evidence := 0
	for _, d := range p.Dimensions {
		if d.Evidence == 0 {
			continue
		}
		sum += d.Score
		dims++
		evidence += d.Evidence
	}
	if dims == 0 {
		return 0, 0
	}
	return sum / float64(dims), evidence
}

// Snapshot converts the profile into its persisted snapshot form.
func (p Profile) Snapshot() map[string]float64 {
	out := make(map[string]float64)
	for _, d := range p.Dimensions {
		if d.Evidence > 0 {
			out[d.Dimension] = d.Score
		}
	}
	return out
}
