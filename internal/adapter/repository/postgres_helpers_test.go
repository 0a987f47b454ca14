package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhereBuilder(t *testing.T) {
	var w whereBuilder
	assert.Empty(t, w.sql())

	w.add("store_id = ?", "s1")
	w.search("budi", "name", "email")
	w.addRaw("is_active")

	assert.Equal(t, " WHERE store_id = $1 AND (name ILIKE $2 OR email ILIKE $2) AND is_active", w.sql())

	suffix, args := w.page(10, 20)
	assert.Equal(t, " LIMIT $3 OFFSET $4", suffix)
	assert.Equal(t, []interface{}{"s1", "%budi%", 10, 20}, args)
	assert.Len(t, w.args, 2)
}
