package query

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Predicate is one condition of a WHERE clause. SQL renders the condition
// starting at the given positional placeholder index and returns the
// rendered fragment, its arguments, and the next free index.
type Predicate interface {
	SQL(argIndex int) (clause string, args []interface{}, next int)
}

// TimeWindow restricts a timestamp column to the half-open [Since, Until).
// Both bounds are optional.
type TimeWindow struct {
	Column string
	Since  *time.Time
	Until  *time.Time
}

func (p TimeWindow) SQL(argIndex int) (string, []interface{}, int) {
	var parts []string
	var args []interface{}

	if p.Since != nil {
		parts = append(parts, fmt.Sprintf("%s >= $%d", p.Column, argIndex))
		args = append(args, *p.Since)
		argIndex++
	}
	if p.Until != nil {
		parts = append(parts, fmt.Sprintf("%s < $%d", p.Column, argIndex))
		args = append(args, *p.Until)
		argIndex++
	}

	if len(parts) == 0 {
		return "", nil, argIndex
	}

	return strings.Join(parts, " AND "), args, argIndex
}

// AuthorEquals restricts rows to a single author.
type AuthorEquals struct {
	Column   string
	AuthorID uuid.UUID
}

func (p AuthorEquals) SQL(argIndex int) (string, []interface{}, int) {
	return fmt.Sprintf("%s = $%d", p.Column, argIndex),
		[]interface{}{p.AuthorID},
		argIndex + 1
}

// FollowingMembership restricts rows to authors the given user follows.
type FollowingMembership struct {
	Column     string
	FollowerID uuid.UUID
}

func (p FollowingMembership) SQL(argIndex int) (string, []interface{}, int) {
	clause := fmt.Sprintf(
		"%s IN (SELECT followee_id FROM follows WHERE follower_id = $%d)",
		p.Column, argIndex,
	)
	return clause, []interface{}{p.FollowerID}, argIndex + 1
}

// TextSearch matches a case-insensitive substring against any of the given
// columns. The needle is escaped so user input never acts as a pattern.
type TextSearch struct {
	Columns []string
	Needle  string
}

func (p TextSearch) SQL(argIndex int) (string, []interface{}, int) {
	if len(p.Columns) == 0 || p.Needle == "" {
		return "", nil, argIndex
	}

	parts := make([]string, len(p.Columns))
	for i, col := range p.Columns {
		parts[i] = fmt.Sprintf("%s ILIKE $%d", col, argIndex)
	}

	pattern := "%" + escapeLike(p.Needle) + "%"
	clause := "(" + strings.Join(parts, " OR ") + ")"

	return clause, []interface{}{pattern}, argIndex + 1
}

// escapeLike neutralizes LIKE metacharacters in user input.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// PrivacyClause hides private rows from everyone but their author. A nil
// Viewer is an anonymous request and sees public rows only.
type PrivacyClause struct {
	PrivateColumn string
	AuthorColumn  string
	Viewer        *uuid.UUID
}

func (p PrivacyClause) SQL(argIndex int) (string, []interface{}, int) {
	if p.Viewer == nil {
		return fmt.Sprintf("%s = FALSE", p.PrivateColumn), nil, argIndex
	}

	clause := fmt.Sprintf("(%s = FALSE OR %s = $%d)", p.PrivateColumn, p.AuthorColumn, argIndex)
	return clause, []interface{}{*p.Viewer}, argIndex + 1
}

// Conjunction joins predicates with AND. Predicates that render to the
// empty string contribute nothing. Order is preserved, so callers append
// the privacy clause last and it always constrains whatever the other
// predicates selected.
type Conjunction struct {
	predicates []Predicate
}

func And(predicates ...Predicate) Conjunction {
	return Conjunction{predicates: predicates}
}

// Append returns a conjunction extended with more predicates.
func (c Conjunction) Append(predicates ...Predicate) Conjunction {
	combined := make([]Predicate, 0, len(c.predicates)+len(predicates))
	combined = append(combined, c.predicates...)
	combined = append(combined, predicates...)
	return Conjunction{predicates: combined}
}

func (c Conjunction) SQL(argIndex int) (string, []interface{}, int) {
	var parts []string
	var args []interface{}

	for _, p := range c.predicates {
		clause, clauseArgs, next := p.SQL(argIndex)
		if clause == "" {
			continue
		}
		parts = append(parts, clause)
		args = append(args, clauseArgs...)
		argIndex = next
	}

	return strings.Join(parts, " AND "), args, argIndex
}

// Where renders the conjunction as a full WHERE clause, or the empty
// string when nothing filters.
func (c Conjunction) Where(argIndex int) (string, []interface{}, int) {
	clause, args, next := c.SQL(argIndex)
	if clause == "" {
		return "", nil, next
	}
	return "WHERE " + clause, args, next
}
