package query

import (
	"fmt"
	"strings"
)

// Sort is a validated ordering over a whitelisted column expression.
type Sort struct {
	// Expression is the SQL expression to order by, taken from the
	// whitelist, never from user input.
	Expression string
	Descending bool
}

// ParseSort resolves the two ordering forms the API accepts:
//
//   - split form: sortBy="likes" with sortOrder="asc"|"desc"
//   - combined form: sortOption="-likes" (leading '-' means descending)
//
// The combined form wins when both are present. allowed maps API field
// names to SQL expressions; anything outside it is rejected.
func ParseSort(sortBy, sortOrder, sortOption string, allowed map[string]string, fallback Sort) (Sort, error) {
	field := sortBy
	descending := strings.EqualFold(sortOrder, "desc")

	if sortOption != "" {
		field = sortOption
		descending = false
		if strings.HasPrefix(field, "-") {
			field = field[1:]
			descending = true
		}
	}

	if field == "" {
		return fallback, nil
	}

	expression, ok := allowed[field]
	if !ok {
		return Sort{}, fmt.Errorf("unknown sort field %q", field)
	}

	return Sort{Expression: expression, Descending: descending}, nil
}

// OrderBy renders the ORDER BY clause. A fixed tie-break on creation time
// and id keeps pagination stable when the primary key collides.
func (s Sort) OrderBy() string {
	direction := "ASC"
	if s.Descending {
		direction = "DESC"
	}

	if s.Expression == "created_at" {
		return fmt.Sprintf("ORDER BY created_at %s, id ASC", direction)
	}

	return fmt.Sprintf("ORDER BY %s %s, created_at ASC, id ASC", s.Expression, direction)
}
