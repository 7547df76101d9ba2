package property

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"boolbnb/internal/pkg/validator"
)

const (
	DefaultLimit = 3
	MaxLimit     = 50
)

// SearchParams are the optional filters of a property search. Zero values
// mean "not filtered".
type SearchParams struct {
	SearchTerm   string
	MinRooms     int
	MinBeds      int
	MinBathrooms int
	PropertyType string
	Page         int
	Limit        int
}

// ParseSearchParams reads filters from a query string. Non-numeric numbers
// are treated as absent; a repeated searchTerm or a negative minimum is
// rejected.
func ParseSearchParams(q url.Values) (SearchParams, error) {
	p := SearchParams{Page: 1, Limit: DefaultLimit}

	if terms := q["searchTerm"]; len(terms) > 1 {
		return p, validator.Invalid("searchTerm", "searchTerm must be a string")
	} else if len(terms) == 1 {
		p.SearchTerm = strings.TrimSpace(terms[0])
	}
	p.PropertyType = strings.TrimSpace(q.Get("propertyType"))

	for _, m := range []struct {
		key string
		dst *int
	}{
		{"minRooms", &p.MinRooms},
		{"minBeds", &p.MinBeds},
		{"minBathrooms", &p.MinBathrooms},
	} {
		n, ok := atoi(q.Get(m.key))
		if !ok {
			continue
		}
		if n < 0 {
			return p, validator.Invalid(m.key, "%s must be a positive number", m.key)
		}
		*m.dst = n
	}

	if n, ok := atoi(q.Get("page")); ok && n > 1 {
		p.Page = n
	}
	if n, ok := atoi(q.Get("limit")); ok && n > 0 {
		p.Limit = min(n, MaxLimit)
	}
	return p.normalized(), nil
}

func atoi(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

func (p SearchParams) normalized() SearchParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	// keep (Page-1)*Limit within int
	if maxPage := math.MaxInt / p.Limit; p.Page > maxPage {
		p.Page = maxPage
	}
	return p
}

func (p SearchParams) Offset() int {
	p = p.normalized()
	return (p.Page - 1) * p.Limit
}

type predicate struct {
	clause string
	args   []any
}

// predicates returns the WHERE clauses for p in a fixed order. Every value is
// a bound parameter.
func (p SearchParams) predicates() []predicate {
	var out []predicate
	if p.SearchTerm != "" {
		like := "%" + strings.ToLower(p.SearchTerm) + "%"
		out = append(out, predicate{"(LOWER(p.address) LIKE ? OR LOWER(p.city) LIKE ?)", []any{like, like}})
	}
	if p.MinRooms > 0 {
		out = append(out, predicate{"p.num_rooms >= ?", []any{p.MinRooms}})
	}
	if p.MinBeds > 0 {
		out = append(out, predicate{"p.num_beds >= ?", []any{p.MinBeds}})
	}
	if p.MinBathrooms > 0 {
		out = append(out, predicate{"p.num_bathrooms >= ?", []any{p.MinBathrooms}})
	}
	if p.PropertyType != "" {
		out = append(out, predicate{"pt.name = ?", []any{p.PropertyType}})
	}
	return out
}

const (
	listingColumns = "p.id, p.slug, p.title, p.description, p.num_rooms, p.num_beds, p.num_bathrooms, " +
		"p.square_meters, p.address, p.city, p.user_name, p.user_email, p.likes, p.type_id, p.image, " +
		"p.created_at, p.updated_at, pt.name AS property_type, COUNT(r.id) AS num_reviews, SUM(r.rating) AS total_votes"

	listingFrom = "FROM properties p " +
		"LEFT JOIN property_types pt ON pt.id = p.type_id " +
		"LEFT JOIN reviews r ON r.property_id = p.id"

	listingGroup = "GROUP BY p.id, pt.name"

	// Ranking key: summed review rating, ties broken by id so pages never overlap.
	searchOrder = "ORDER BY COALESCE(SUM(r.rating), 0) DESC, p.id ASC"
)

// SearchQuery is a composed COUNT query and page query over the same filter.
type SearchQuery struct {
	CountSQL  string
	CountArgs []any
	PageSQL   string
	PageArgs  []any
}

// BuildSearch composes the search queries for p.
func BuildSearch(p SearchParams) SearchQuery {
	p = p.normalized()

	var (
		clauses []string
		args    []any
	)
	for _, pr := range p.predicates() {
		clauses = append(clauses, pr.clause)
		args = append(args, pr.args...)
	}
	where := ""
	if len(clauses) > 0 {
		where = " WHERE " + strings.Join(clauses, " AND ")
	}

	q := SearchQuery{
		CountSQL:  "SELECT COUNT(DISTINCT p.id) " + listingFrom + where,
		CountArgs: args,
		PageSQL:   "SELECT " + listingColumns + " " + listingFrom + where + " " + listingGroup + " " + searchOrder + " LIMIT ? OFFSET ?",
	}
	q.PageArgs = append(append([]any{}, args...), p.Limit, p.Offset())
	return q
}

// lookupSQL selects one listing by the given key column ("p.slug" or "p.id").
func lookupSQL(keyColumn string) string {
	return "SELECT " + listingColumns + " " + listingFrom + " WHERE " + keyColumn + " = ? " + listingGroup
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewPagination(p SearchParams, total int64) Pagination {
	p = p.normalized()
	return Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: int((total + int64(p.Limit) - 1) / int64(p.Limit)),
	}
}
