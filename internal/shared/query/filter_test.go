package query

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestTimeWindow(t *testing.T) {
	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)

	t.Run("half open on the upper bound", func(t *testing.T) {
		clause, args, next := TimeWindow{Column: "created_at", Since: timePtr(since), Until: timePtr(until)}.SQL(1)

		assert.Equal(t, "created_at >= $1 AND created_at < $2", clause)
		assert.Equal(t, []interface{}{since, until}, args)
		assert.Equal(t, 3, next)
	})

	t.Run("since only", func(t *testing.T) {
		clause, args, next := TimeWindow{Column: "created_at", Since: timePtr(since)}.SQL(4)

		assert.Equal(t, "created_at >= $4", clause)
		assert.Equal(t, []interface{}{since}, args)
		assert.Equal(t, 5, next)
	})

	t.Run("until only", func(t *testing.T) {
		clause, args, next := TimeWindow{Column: "created_at", Until: timePtr(until)}.SQL(1)

		assert.Equal(t, "created_at < $1", clause)
		assert.Equal(t, []interface{}{until}, args)
		assert.Equal(t, 2, next)
	})

	t.Run("no bounds renders nothing", func(t *testing.T) {
		clause, args, next := TimeWindow{Column: "created_at"}.SQL(1)

		assert.Empty(t, clause)
		assert.Empty(t, args)
		assert.Equal(t, 1, next)
	})
}

func TestAuthorEquals(t *testing.T) {
	authorID := uuid.New()
	clause, args, next := AuthorEquals{Column: "author_id", AuthorID: authorID}.SQL(2)

	assert.Equal(t, "author_id = $2", clause)
	assert.Equal(t, []interface{}{authorID}, args)
	assert.Equal(t, 3, next)
}

func TestFollowingMembership(t *testing.T) {
	followerID := uuid.New()
	clause, args, next := FollowingMembership{Column: "author_id", FollowerID: followerID}.SQL(1)

	assert.Equal(t, "author_id IN (SELECT followee_id FROM follows WHERE follower_id = $1)", clause)
	assert.Equal(t, []interface{}{followerID}, args)
	assert.Equal(t, 2, next)
}

func TestTextSearch(t *testing.T) {
	t.Run("single column", func(t *testing.T) {
		clause, args, next := TextSearch{Columns: []string{"title"}, Needle: "rain"}.SQL(1)

		assert.Equal(t, "(title ILIKE $1)", clause)
		assert.Equal(t, []interface{}{"%rain%"}, args)
		assert.Equal(t, 2, next)
	})

	t.Run("multiple columns share one placeholder", func(t *testing.T) {
		clause, args, next := TextSearch{Columns: []string{"title", "text"}, Needle: "rain"}.SQL(3)

		assert.Equal(t, "(title ILIKE $3 OR text ILIKE $3)", clause)
		assert.Equal(t, []interface{}{"%rain%"}, args)
		assert.Equal(t, 4, next)
	})

	t.Run("metacharacters are escaped", func(t *testing.T) {
		_, args, _ := TextSearch{Columns: []string{"title"}, Needle: `50%_off\`}.SQL(1)

		require.Len(t, args, 1)
		assert.Equal(t, `%50\%\_off\\%`, args[0])
	})

	t.Run("empty needle renders nothing", func(t *testing.T) {
		clause, args, next := TextSearch{Columns: []string{"title"}, Needle: ""}.SQL(1)

		assert.Empty(t, clause)
		assert.Empty(t, args)
		assert.Equal(t, 1, next)
	})
}

func TestPrivacyClause(t *testing.T) {
	viewer := uuid.New()

	t.Run("anonymous sees public only", func(t *testing.T) {
		clause, args, next := PrivacyClause{PrivateColumn: "is_private", AuthorColumn: "author_id"}.SQL(1)

		assert.Equal(t, "is_private = FALSE", clause)
		assert.Empty(t, args)
		assert.Equal(t, 1, next)
	})

	t.Run("authenticated viewer sees own private rows", func(t *testing.T) {
		clause, args, next := PrivacyClause{
			PrivateColumn: "is_private",
			AuthorColumn:  "author_id",
			Viewer:        &viewer,
		}.SQL(2)

		assert.Equal(t, "(is_private = FALSE OR author_id = $2)", clause)
		assert.Equal(t, []interface{}{viewer}, args)
		assert.Equal(t, 3, next)
	})
}

func TestConjunction(t *testing.T) {
	authorID := uuid.New()
	viewer := uuid.New()
	since := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("joins with AND and renumbers placeholders", func(t *testing.T) {
		c := And(
			TimeWindow{Column: "created_at", Since: timePtr(since)},
			AuthorEquals{Column: "author_id", AuthorID: authorID},
			PrivacyClause{PrivateColumn: "is_private", AuthorColumn: "author_id", Viewer: &viewer},
		)

		clause, args, next := c.SQL(1)

		assert.Equal(t,
			"created_at >= $1 AND author_id = $2 AND (is_private = FALSE OR author_id = $3)",
			clause)
		assert.Equal(t, []interface{}{since, authorID, viewer}, args)
		assert.Equal(t, 4, next)
	})

	t.Run("empty predicates are skipped", func(t *testing.T) {
		c := And(
			TimeWindow{Column: "created_at"},
			TextSearch{Columns: []string{"title"}, Needle: ""},
			AuthorEquals{Column: "author_id", AuthorID: authorID},
		)

		clause, args, next := c.SQL(1)

		assert.Equal(t, "author_id = $1", clause)
		assert.Equal(t, []interface{}{authorID}, args)
		assert.Equal(t, 2, next)
	})

	t.Run("privacy appended last stays last", func(t *testing.T) {
		c := And(AuthorEquals{Column: "author_id", AuthorID: authorID}).
			Append(PrivacyClause{PrivateColumn: "is_private", AuthorColumn: "author_id"})

		clause, _, _ := c.SQL(1)

		assert.Equal(t, "author_id = $1 AND is_private = FALSE", clause)
	})

	t.Run("Where on empty conjunction renders nothing", func(t *testing.T) {
		clause, args, next := And().Where(1)

		assert.Empty(t, clause)
		assert.Empty(t, args)
		assert.Equal(t, 1, next)
	})

	t.Run("Where prefixes the keyword", func(t *testing.T) {
		clause, _, _ := And(AuthorEquals{Column: "author_id", AuthorID: authorID}).Where(1)

		assert.Equal(t, "WHERE author_id = $1", clause)
	})
}
