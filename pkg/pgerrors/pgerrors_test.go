package pgerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", &pq.Error{Code: "23P01", Constraint: "bookings_no_table_overlap"})

	assert.True(t, IsExclusionViolation(wrapped))
	assert.False(t, IsUniqueViolation(wrapped))
	assert.Equal(t, "bookings_no_table_overlap", Constraint(wrapped))
	assert.Equal(t, "", Code(errors.New("plain")))
}
