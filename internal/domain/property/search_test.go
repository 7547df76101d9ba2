package property

import (
	"math"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boolbnb/internal/pkg/validator"
)

func TestParseSearchParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  SearchParams
	}{
		{"defaults", "", SearchParams{Page: 1, Limit: DefaultLimit}},
		{"all filters", "searchTerm=+Roma+&minRooms=2&minBeds=3&minBathrooms=1&propertyType=Villa&page=4&limit=10",
			SearchParams{SearchTerm: "Roma", MinRooms: 2, MinBeds: 3, MinBathrooms: 1, PropertyType: "Villa", Page: 4, Limit: 10}},
		{"non-numeric filters are ignored", "minRooms=many&minBeds=&page=x&limit=y",
			SearchParams{Page: 1, Limit: DefaultLimit}},
		{"page below one is clamped", "page=0", SearchParams{Page: 1, Limit: DefaultLimit}},
		{"negative page is clamped", "page=-3", SearchParams{Page: 1, Limit: DefaultLimit}},
		{"limit is capped", "limit=1000", SearchParams{Page: 1, Limit: MaxLimit}},
		{"zero limit falls back", "limit=0", SearchParams{Page: 1, Limit: DefaultLimit}},
		{"huge page is bounded", "page=4611686018427387905&limit=2", SearchParams{Page: math.MaxInt / 2, Limit: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			got, err := ParseSearchParams(q)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSearchParams_Rejects(t *testing.T) {
	for _, query := range []string{
		"searchTerm=a&searchTerm=b",
		"minRooms=-1",
		"minBathrooms=-2",
	} {
		q, _ := url.ParseQuery(query)
		_, err := ParseSearchParams(q)
		assert.True(t, validator.IsInvalid(err), query)
	}

	q, _ := url.ParseQuery("searchTerm=a&searchTerm=b")
	_, err := ParseSearchParams(q)
	assert.EqualError(t, err, "searchTerm must be a string")
}

func TestSearchParams_OffsetNeverOverflows(t *testing.T) {
	for _, p := range []SearchParams{
		{Page: 4611686018427387905, Limit: 2},
		{Page: 6148914691236517207, Limit: 3},
		{Page: math.MaxInt, Limit: MaxLimit},
	} {
		off := p.Offset()
		assert.GreaterOrEqual(t, off, 0, "page %d limit %d", p.Page, p.Limit)
		assert.Greater(t, off, (math.MaxInt/p.Limit-2)*p.Limit)

		q := BuildSearch(p)
		assert.Equal(t, off, q.PageArgs[len(q.PageArgs)-1])
	}
}

func TestBuildSearch_NoFilters(t *testing.T) {
	q := BuildSearch(SearchParams{})

	assert.NotContains(t, q.CountSQL, "WHERE")
	assert.NotContains(t, q.PageSQL, "WHERE")
	assert.Empty(t, q.CountArgs)
	assert.Equal(t, []any{DefaultLimit, 0}, q.PageArgs)
	assert.True(t, strings.HasPrefix(q.CountSQL, "SELECT COUNT(DISTINCT p.id) FROM properties p"))
	assert.True(t, strings.HasSuffix(q.PageSQL, searchOrder+" LIMIT ? OFFSET ?"))
}

func TestBuildSearch_AllFilters(t *testing.T) {
	q := BuildSearch(SearchParams{
		SearchTerm:   "MiLano",
		MinRooms:     2,
		MinBeds:      3,
		MinBathrooms: 1,
		PropertyType: "Loft",
		Page:         3,
		Limit:        5,
	})

	where := " WHERE (LOWER(p.address) LIKE ? OR LOWER(p.city) LIKE ?) AND p.num_rooms >= ? " +
		"AND p.num_beds >= ? AND p.num_bathrooms >= ? AND pt.name = ?"
	assert.Equal(t, "SELECT COUNT(DISTINCT p.id) "+listingFrom+where, q.CountSQL)
	assert.Equal(t, []any{"%milano%", "%milano%", 2, 3, 1, "Loft"}, q.CountArgs)

	assert.Contains(t, q.PageSQL, where+" "+listingGroup+" ")
	assert.Equal(t, []any{"%milano%", "%milano%", 2, 3, 1, "Loft", 5, 10}, q.PageArgs)
	assert.Equal(t, strings.Count(q.PageSQL, "?"), len(q.PageArgs))
	assert.Equal(t, strings.Count(q.CountSQL, "?"), len(q.CountArgs))
}

func TestBuildSearch_DoesNotShareArgs(t *testing.T) {
	q := BuildSearch(SearchParams{MinRooms: 2})
	q.PageArgs[0] = 99
	assert.Equal(t, []any{2}, q.CountArgs)
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		pages int
	}{
		{0, 3, 0},
		{1, 3, 1},
		{3, 3, 1},
		{7, 3, 3},
		{9, 3, 3},
		{10, 3, 4},
	}
	for _, tt := range tests {
		got := NewPagination(SearchParams{Page: 2, Limit: tt.limit}, tt.total)
		assert.Equal(t, tt.pages, got.TotalPages, "total=%d limit=%d", tt.total, tt.limit)
		assert.Equal(t, 2, got.Page)
		assert.Equal(t, tt.total, got.Total)
	}
}
