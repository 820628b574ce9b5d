package zonemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func prior(v float64) *float64 { return &v }

func TestCategorize(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		prior   *float64
		band    float64
		want    Category
	}{
		{"clear increase", 120, prior(100), 0.5, CategoryIncrease},
		{"clear decrease", 80, prior(100), 0.5, CategoryDecrease},
		{"inside band", 100.2, prior(100), 0.5, CategoryNoChange},
		{"band boundary is not no_change", 100.5, prior(100), 0.5, CategoryIncrease},
		{"zero prior", 50, prior(0), 0.5, CategoryNoBaseline},
		{"absent prior", 50, nil, 0.5, CategoryNoBaseline},
		{"negative change inside band", 99.9, prior(100), 0.5, CategoryNoChange},
		{"wider band swallows change", 110, prior(100), 15, CategoryNoChange},
		{"zero band uses default", 100.2, prior(100), 0, CategoryNoChange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.current, tt.prior, tt.band))
		})
	}
}

func TestCategorize_ExactPercentages(t *testing.T) {
	// current=120, prior=100 is +20%; well outside any sane band.
	assert.Equal(t, CategoryIncrease, Categorize(120, prior(100), DefaultBandPct))
	// current=100.2, prior=100 is +0.2%; inside the default 0.5 band.
	assert.Equal(t, CategoryNoChange, Categorize(100.2, prior(100), DefaultBandPct))
}
