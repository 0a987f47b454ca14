package setting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	s := Defaults("idr", 14)
	s.SupportEmail = " Help@Toko.ID "
	s.DefaultCurrency = " idr"
	require.NoError(t, s.Validate())
	assert.Equal(t, "help@toko.id", s.SupportEmail)
	assert.Equal(t, "IDR", s.DefaultCurrency)

	s.TrialDays = 120
	assert.ErrorIs(t, s.Validate(), ErrInvalidTrialDays)

	s = Defaults("IDR", 14)
	s.PlatformName = "  "
	assert.ErrorIs(t, s.Validate(), ErrEmptyPlatform)
}
