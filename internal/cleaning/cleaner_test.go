package cleaning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/landings/internal/schema"
)

func TestClean_TextNormalization(t *testing.T) {
	c := NewCleaner(Config{}, nil)
	records := []schema.Record{
		{
			Species: "  lobster   american ",
			Gear:    " Pot  /  Trap ",
			Port:    "  Boothbay   Harbor ",
			County:  "LINCOLN",
		},
	}

	out := c.Clean(records)

	assert.Equal(t, "Lobster American", out[0].Species, "species is title-cased for display")
	assert.Equal(t, "Pot / Trap", out[0].Gear, "case preserved, whitespace collapsed")
	assert.Equal(t, "Boothbay Harbor", out[0].Port)
	assert.Equal(t, "LINCOLN", out[0].County, "case preserved for non-species text")
}

func TestClean_ZoneAlphabetFilter(t *testing.T) {
	c := NewCleaner(Config{}, nil)

	tests := []struct {
		raw  string
		want string
	}{
		{" a ", "A"},
		{"G", "G"},
		{"H", ""},   // outside alphabet
		{"3", ""},   // numeric encodings are a boundary-data concern, not tabular
		{"AB", ""},  // multi-letter
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			out := c.Clean([]schema.Record{{Zone: tt.raw}})
			assert.Equal(t, tt.want, out[0].Zone)
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	c := NewCleaner(Config{}, nil)
	records := []schema.Record{
		{Species: " lobster  american ", Zone: " c", Port: " Port  Clyde "},
		{Species: "haddock", Zone: "x", Gear: "Trawl"},
	}

	once := c.Clean(records)
	twice := c.Clean(once)
	assert.Equal(t, once, twice, "cleaning already-clean records is a no-op")
}

func TestClean_DoesNotMutateInput(t *testing.T) {
	c := NewCleaner(Config{}, nil)
	records := []schema.Record{{Species: " haddock ", Zone: "h"}}

	_ = c.Clean(records)

	assert.Equal(t, " haddock ", records[0].Species)
	assert.Equal(t, "h", records[0].Zone)
}

func TestClean_CustomAlphabet(t *testing.T) {
	c := NewCleaner(Config{ZoneAlphabet: "ABC"}, nil)

	out := c.Clean([]schema.Record{{Zone: "d"}, {Zone: "b"}})
	assert.Empty(t, out[0].Zone)
	assert.Equal(t, "B", out[1].Zone)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, "ABCDEFG", cfg.ZoneAlphabet)
}
