package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/landings/internal/schema"
)

func TestFilter_CaseInsensitiveExact(t *testing.T) {
	records := []schema.Record{
		{Species: "Lobster American", Port: "Portland"},
		{Species: "Haddock", Port: "Portland"},
		{Species: "Lobster American", Port: "Camden"},
	}

	got := Filter(records, FilterOptions{Species: []string{"lobster american"}})
	require.Len(t, got, 2)

	got = Filter(records, FilterOptions{Species: []string{"Lobster"}})
	assert.Empty(t, got, "matching is exact, not substring")
}

func TestFilter_CombinesConstraints(t *testing.T) {
	records := []schema.Record{
		{Species: "Haddock", Port: "Portland", Zone: "A", Year: intPtr(2020)},
		{Species: "Haddock", Port: "Portland", Zone: "B", Year: intPtr(2020)},
		{Species: "Haddock", Port: "Portland", Zone: "A", Year: intPtr(2015)},
	}

	yr := [2]int{2018, 2021}
	got := Filter(records, FilterOptions{
		Species:   []string{"Haddock"},
		Zones:     []string{"a"},
		YearRange: &yr,
	})
	require.Len(t, got, 1)
	assert.Equal(t, 2020, *got[0].Year)
}

func TestFilter_MissingFieldExcludedByConstraint(t *testing.T) {
	records := []schema.Record{
		{Species: "Haddock"},              // no year
		{Species: "Haddock", Year: intPtr(2020)},
	}

	yr := [2]int{2019, 2021}
	got := Filter(records, FilterOptions{YearRange: &yr})
	require.Len(t, got, 1)

	got = Filter(records, FilterOptions{Zones: []string{"A"}})
	assert.Empty(t, got, "records without a zone never match a zone constraint")
}

func TestFilter_NoConstraintsPassesThrough(t *testing.T) {
	records := []schema.Record{{Species: "Haddock"}, {}}
	got := Filter(records, FilterOptions{})
	assert.Len(t, got, 2)
}

func TestActivePorts(t *testing.T) {
	records := []schema.Record{
		{Port: "Portland", Quantity: floatPtr(10)},
		{Port: "Camden", Quantity: floatPtr(0)},
		{Port: "Stonington"}, // missing counts as zero
		{Port: "Camden", Quantity: floatPtr(3)},
	}

	got := ActivePorts(records, MetricQuantity)
	assert.Equal(t, []string{"Camden", "Portland"}, got)
}

func TestDropZeroPorts(t *testing.T) {
	records := []schema.Record{
		{Port: "Portland", Quantity: floatPtr(10)},
		{Port: "Stonington", Quantity: floatPtr(0)},
		{Port: "Portland"},
	}

	got := DropZeroPorts(records, MetricQuantity)
	require.Len(t, got, 2)
	for _, rec := range got {
		assert.Equal(t, "Portland", rec.Port)
	}
}

func TestLatestTotal(t *testing.T) {
	records := []schema.Record{
		{Year: intPtr(2020), Quantity: floatPtr(5)},
		{Year: intPtr(2021), Quantity: floatPtr(7)},
		{Year: intPtr(2021), Quantity: floatPtr(3)},
	}

	got := LatestTotal(records, MetricQuantity)
	require.NotNil(t, got)
	assert.Equal(t, 10.0, *got)

	assert.Nil(t, LatestTotal(nil, MetricQuantity))
	assert.Nil(t, LatestTotal([]schema.Record{{Year: intPtr(2021)}}, MetricQuantity),
		"year present but metric absent everywhere")
}

func TestYoYChangePct(t *testing.T) {
	records := []schema.Record{
		{Year: intPtr(2020), Quantity: floatPtr(100)},
		{Year: intPtr(2021), Quantity: floatPtr(120)},
	}

	got := YoYChangePct(records, MetricQuantity)
	require.NotNil(t, got)
	assert.InDelta(t, 20.0, *got, 1e-9)

	assert.Nil(t, YoYChangePct(records[:1], MetricQuantity), "single year")

	zeroPrior := []schema.Record{
		{Year: intPtr(2020), Quantity: floatPtr(0)},
		{Year: intPtr(2021), Quantity: floatPtr(5)},
	}
	assert.Nil(t, YoYChangePct(zeroPrior, MetricQuantity), "zero prior is undefined, not Inf")
}

func TestTopSpecies(t *testing.T) {
	records := []schema.Record{
		{Species: "Haddock", Quantity: floatPtr(50)},
		{Species: "Clam Soft", Quantity: floatPtr(80)},
		{Species: "Haddock", Quantity: floatPtr(40)},
	}

	species, total, ok := TopSpecies(records, MetricQuantity)
	require.True(t, ok)
	assert.Equal(t, "Haddock", species)
	assert.Equal(t, 90.0, total)

	_, _, ok = TopSpecies(nil, MetricQuantity)
	assert.False(t, ok)
}

func TestTopBy(t *testing.T) {
	records := []schema.Record{
		{Port: "Portland", County: "Cumberland", Quantity: floatPtr(50)},
		{Port: "Stonington", County: "Hancock", Quantity: floatPtr(80)},
		{Port: "Portland", County: "Cumberland", Quantity: floatPtr(40)},
		{Quantity: floatPtr(999)}, // no dimension label, excluded
	}

	port, total, ok := TopBy(records, DimensionPort, MetricQuantity)
	require.True(t, ok)
	assert.Equal(t, "Portland", port)
	assert.Equal(t, 90.0, total)

	county, total, ok := TopBy(records, DimensionCounty, MetricQuantity)
	require.True(t, ok)
	assert.Equal(t, "Cumberland", county)
	assert.Equal(t, 90.0, total)

	_, _, ok = TopBy(nil, DimensionPort, MetricQuantity)
	assert.False(t, ok)
}

func TestTopBy_TieBreaksLexically(t *testing.T) {
	records := []schema.Record{
		{Port: "Camden", Quantity: floatPtr(10)},
		{Port: "Belfast", Quantity: floatPtr(10)},
	}

	port, _, ok := TopBy(records, DimensionPort, MetricQuantity)
	require.True(t, ok)
	assert.Equal(t, "Belfast", port)
}
