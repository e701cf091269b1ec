package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooseInt(t *testing.T) {
	cases := []struct {
		raw  string
		set  bool
		uint uint
	}{
		{`12`, true, 12},
		{`"12"`, true, 12},
		{`""`, false, 0},
		{`null`, false, 0},
		{`-3`, true, 0},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			var v struct {
				ID looseInt `json:"id"`
			}
			require.NoError(t, json.Unmarshal([]byte(`{"id":`+tc.raw+`}`), &v))
			assert.Equal(t, tc.set, v.ID.Set)
			assert.Equal(t, tc.uint, v.ID.Uint())
		})
	}

	var bad looseInt
	assert.Error(t, json.Unmarshal([]byte(`"twelve"`), &bad))

	var missing struct {
		ID looseInt `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &missing))
	assert.Nil(t, missing.ID.UintPtr())
	assert.Nil(t, missing.ID.IntPtr())

	zero := looseInt{Value: 0, Set: true}
	assert.Nil(t, zero.UintPtr())
	require.NotNil(t, zero.IntPtr())
	assert.Equal(t, 0, *zero.IntPtr())
}

func TestPercentChange(t *testing.T) {
	assert.Equal(t, 0, percentChange(0, 0))
	assert.Equal(t, 100, percentChange(5, 0))
	assert.Equal(t, 50, percentChange(150, 100))
	assert.Equal(t, -25, percentChange(75, 100))
	assert.Equal(t, 33, percentChange(4, 3))
}
