package activitylog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	l := New("admin-1", ActionSuspend, TargetStore, "store-9", "motivo: fraude", "10.0.0.1")
	assert.NotEmpty(t, l.ID)
	assert.Equal(t, "suspend", l.Action)
	assert.False(t, l.CreatedAt.IsZero())
}
