package relation

import (
	"encoding/json"
	"testing"

	"github.com/hugohenrick/toko-digital/internal/domain/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInclude(t *testing.T) {
	inc := ParseInclude(" Owner,products,,unknown ")
	assert.True(t, inc.Has(Owner))
	assert.True(t, inc.Has(Products))
	assert.False(t, inc.Has("unknown"))
	assert.Len(t, inc, 2)

	assert.Empty(t, ParseInclude(""))
}

func TestStoreWithRelations_OmitsMissing(t *testing.T) {
	s := &StoreWithRelations{Store: &store.Store{ID: "s1", Name: "Toko Budi"}}

	raw, err := json.Marshal(s)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "s1", body["id"])
	assert.NotContains(t, body, "owner")
	assert.NotContains(t, body, "products")
	assert.NotContains(t, body, "subscription")

	assert.Empty(t, s.OwnerName())
	assert.Empty(t, s.PlanName())
}
