package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
)

func TestStatusFromID(t *testing.T) {
	for _, s := range AllStatuses {
		got, err := StatusFromID(s.ID())
		require.NoError(t, err)
		assert.Equal(t, s, got)
		assert.NotEqual(t, "unknown", got.Name())
	}

	_, err := StatusFromID(0)
	assert.Error(t, err)
	_, err = StatusFromID(6)
	assert.Error(t, err)
}

func TestCanCancel(t *testing.T) {
	for _, s := range AllStatuses {
		err := CanCancel(s)
		if s == StatusPending {
			assert.NoError(t, err)
			continue
		}
		assert.True(t, httperr.IsBusiness(err, "invalid_state"), s.Name())
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
	assert.Equal(t, uint(1), InitialStatus().ID())
	assert.Equal(t, uint(5), StatusCancelled.ID())
}
