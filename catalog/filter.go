package catalog

import (
	"strings"

	"github.com/mytheresa/product-categories/models"
)

// AllOwners is the owner filter value that disables owner filtering.
const AllOwners = "All"

// Criteria is the active filter state.
type Criteria struct {
	Owner string
	Query string
}

// DefaultCriteria is the state after "reset all filters".
func DefaultCriteria() Criteria {
	return Criteria{Owner: AllOwners}
}

// NormalizeQuery trims surrounding whitespace and lowercases q.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// FilterProducts returns the rows owned by criteria.Owner whose name contains
// the normalized query. Owner matching is exact and case-sensitive; query
// matching is not.
func FilterProducts(rows []models.FullProduct, criteria Criteria) []models.FullProduct {
	query := NormalizeQuery(criteria.Query)

	filtered := make([]models.FullProduct, 0, len(rows))
	for _, r := range rows {
		if criteria.Owner != AllOwners && r.Owner.Name != criteria.Owner {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(r.Name), query) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}
