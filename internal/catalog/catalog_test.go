package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_Sets(t *testing.T) {
	t.Parallel()

	p := NewProvider()
	assert.Len(t, p.Categories(), 5)
	assert.Len(t, p.Products(), 10)
}

func TestFindProduct(t *testing.T) {
	t.Parallel()

	p := NewProvider()

	prod, err := p.FindProduct("101")
	require.NoError(t, err)
	assert.Equal(t, "Maçã Fuji", prod.Name)
	assert.Equal(t, "1", prod.CategoryID)
	assert.InDelta(t, 8.90, prod.Price, 1e-9)

	_, err = p.FindProduct("999")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFindCategory(t *testing.T) {
	t.Parallel()

	p := NewProvider()

	cat, err := p.FindCategory("3")
	require.NoError(t, err)
	assert.Equal(t, "Bebidas", cat.Name)

	_, err = p.FindCategory("99")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFilter(t *testing.T) {
	t.Parallel()

	p := NewProvider()

	tests := []struct {
		name    string
		filter  Filter
		wantIDs []string
	}{
		{name: "empty filter matches all", filter: Filter{}, wantIDs: []string{"101", "102", "103", "201", "202", "301", "302", "401", "402", "501"}},
		{name: "by category", filter: Filter{CategoryID: "1"}, wantIDs: []string{"101", "102", "103"}},
		{name: "by name substring", filter: Filter{Query: "cerveja"}, wantIDs: []string{"302"}},
		{name: "case insensitive", filter: Filter{Query: "FRANGO"}, wantIDs: []string{"202"}},
		{name: "query and category", filter: Filter{Query: "pão", CategoryID: "4"}, wantIDs: []string{"401"}},
		{name: "query in wrong category", filter: Filter{Query: "pão", CategoryID: "1"}, wantIDs: nil},
		{name: "no match", filter: Filter{Query: "caviar"}, wantIDs: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := p.Filter(tt.filter)
			ids := make([]string, 0, len(got))
			for _, prod := range got {
				ids = append(ids, prod.ID)
			}
			if tt.wantIDs == nil {
				assert.Empty(t, ids)
				return
			}
			// Declaration order is preserved.
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilter_Restartable(t *testing.T) {
	t.Parallel()

	p := NewProvider()
	first := p.Filter(Filter{CategoryID: "2"})
	second := p.Filter(Filter{CategoryID: "2"})
	assert.Equal(t, first, second)
}
