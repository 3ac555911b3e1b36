package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhereBuilder(t *testing.T) {
	var w whereBuilder
	assert.Equal(t, "", w.sql())

	w.add("p.rating >= ?", 4.5)
	w.add("lower(c.name) = lower(?)", "Wedding")
	limit := w.arg(20)

	assert.Equal(t, " WHERE p.rating >= $1 AND lower(c.name) = lower($2)", w.sql())
	assert.Equal(t, "$3", limit)
	assert.Equal(t, []any{4.5, "Wedding", 20}, w.args)
}
