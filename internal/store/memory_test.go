package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryReadWrite(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, ok, err := m.Read(ctx, KeyBooks)
	require.NoError(t, err)
	assert.False(t, ok, "absent key reads as missing, not as an error")

	require.NoError(t, m.Write(ctx, KeyBooks, []byte(`[]`)))
	raw, ok, err := m.Read(ctx, KeyBooks)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[]`), raw)

	// Last write wins.
	require.NoError(t, m.Write(ctx, KeyBooks, []byte(`[{"id":"b1"}]`)))
	raw, _, err = m.Read(ctx, KeyBooks)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"b1"}]`), raw)

	// Readers get a copy, not the backing slice.
	raw[0] = 'X'
	again, _, err := m.Read(ctx, KeyBooks)
	require.NoError(t, err)
	assert.Equal(t, byte('['), again[0])
}
