package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_DollarPlaceholders(t *testing.T) {
	query, args, err := Select("id").From("bookings").Where(squirrel.Eq{"branch_id": 1}).ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM bookings WHERE branch_id = $1", query)
	assert.Equal(t, []interface{}{1}, args)
}

func TestSubquery_NumberedOnceByOuterStatement(t *testing.T) {
	inner := Subquery("id").
		From("waitlist_entries").
		Where(squirrel.Eq{"branch_id": int64(1)}).
		Where(squirrel.Eq{"status": "PENDING"}).
		Limit(1)

	query, args, err := Update("waitlist_entries").
		Set("status", "NOTIFIED").
		Where(squirrel.Expr("id = (?)", inner)).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t,
		"UPDATE waitlist_entries SET status = $1 WHERE id = (SELECT id FROM waitlist_entries WHERE branch_id = $2 AND status = $3 LIMIT 1)",
		query)
	assert.Equal(t, []interface{}{"NOTIFIED", int64(1), "PENDING"}, args)
}
