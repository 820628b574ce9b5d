package portzone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/landings/internal/schema"
)

func rec(port, zone string) schema.Record {
	return schema.Record{Port: port, Zone: zone}
}

func TestBuild_SingleZonePerPort(t *testing.T) {
	records := []schema.Record{
		rec("Stonington", "C"),
		rec("Stonington", "C"),
		rec("Portland", "A"),
	}

	lookup := Build(records)
	require.Equal(t, 2, lookup.Len())

	e, ok := lookup.Get("Stonington")
	require.True(t, ok)
	assert.Equal(t, "C", e.MappedZone)
	assert.Equal(t, 2, e.SupportCount)
	assert.False(t, e.Ambiguous)
}

func TestBuild_DominantZoneWins(t *testing.T) {
	records := []schema.Record{
		rec("Friendship", "A"),
		rec("Friendship", "B"),
		rec("Friendship", "B"),
		rec("Friendship", "B"),
	}

	lookup := Build(records)
	e, ok := lookup.Get("Friendship")
	require.True(t, ok)
	assert.Equal(t, "B", e.MappedZone)
	assert.Equal(t, 3, e.SupportCount)
	assert.False(t, e.Ambiguous, "a clear majority is not ambiguous")
}

func TestBuild_TieBreaksAlphabeticallyAndFlags(t *testing.T) {
	records := []schema.Record{
		rec("Harpswell", "B"), rec("Harpswell", "B"), rec("Harpswell", "B"),
		rec("Harpswell", "A"), rec("Harpswell", "A"), rec("Harpswell", "A"),
	}

	lookup := Build(records)
	e, ok := lookup.Get("Harpswell")
	require.True(t, ok)
	assert.Equal(t, "A", e.MappedZone, "alphabetically earliest of the tied set")
	assert.Equal(t, 3, e.SupportCount)
	assert.True(t, e.Ambiguous)
}

func TestBuild_TieClearedByLaterMajority(t *testing.T) {
	records := []schema.Record{
		rec("Cutler", "A"), rec("Cutler", "B"),
		rec("Cutler", "C"), rec("Cutler", "C"),
	}

	lookup := Build(records)
	e, _ := lookup.Get("Cutler")
	assert.Equal(t, "C", e.MappedZone)
	assert.False(t, e.Ambiguous)
}

func TestBuild_SkipsRecordsMissingPortOrZone(t *testing.T) {
	records := []schema.Record{
		rec("", "A"),
		rec("Portland", ""),
		rec("Portland", "A"),
	}

	lookup := Build(records)
	require.Equal(t, 1, lookup.Len())
	e, _ := lookup.Get("Portland")
	assert.Equal(t, 1, e.SupportCount)
}

func TestBuild_EmptyCorpus(t *testing.T) {
	lookup := Build(nil)
	assert.Equal(t, 0, lookup.Len(), "empty corpus yields an empty lookup, not an error")
}

func TestAmbiguousPorts(t *testing.T) {
	records := []schema.Record{
		rec("Harpswell", "A"), rec("Harpswell", "B"),
		rec("Portland", "A"),
	}

	amb := Build(records).AmbiguousPorts()
	require.Len(t, amb, 1)
	assert.Equal(t, "Harpswell", amb[0].Port)
}

func TestApply_BackfillsMissingZones(t *testing.T) {
	lookup := Build([]schema.Record{rec("Stonington", "C")})
	records := []schema.Record{
		rec("Stonington", ""),
		rec("Stonington", "B"), // explicit zone is never overwritten
		rec("Unknown Port", ""),
		rec("", ""),
	}

	out, gaps := Apply(records, lookup, nil)

	assert.Equal(t, "C", out[0].Zone)
	assert.Equal(t, "B", out[1].Zone)
	assert.Empty(t, out[2].Zone, "unknown port stays missing, no error")
	assert.Empty(t, out[3].Zone)
	assert.Equal(t, 1, gaps, "only the port with no entry counts as a gap")
}

func TestApply_OverridePrecedence(t *testing.T) {
	lookup := Build([]schema.Record{rec("Bremen", "B")})
	overrides := Overrides{"Bremen": "C"}

	out, _ := Apply([]schema.Record{rec("Bremen", "")}, lookup, overrides)
	assert.Equal(t, "C", out[0].Zone, "override wins over the automatic lookup")
}

func TestApply_OverrideWithoutLookupEntry(t *testing.T) {
	out, gaps := Apply([]schema.Record{rec("Monhegan", "")}, Build(nil), Overrides{"Monhegan": "d"})
	assert.Equal(t, "D", out[0].Zone)
	assert.Zero(t, gaps)
}

func TestApply_EmptyLookupIsPassThrough(t *testing.T) {
	records := []schema.Record{rec("Portland", ""), rec("Camden", "A")}

	out, gaps := Apply(records, Build(nil), nil)
	assert.Equal(t, records, out)
	assert.Equal(t, 1, gaps)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	lookup := Build([]schema.Record{rec("Stonington", "C")})
	records := []schema.Record{rec("Stonington", "")}

	_, _ = Apply(records, lookup, nil)
	assert.Empty(t, records[0].Zone)
}
