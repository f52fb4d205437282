package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("p4ssword")
	require.NoError(t, err)
	assert.NotEqual(t, "p4ssword", hash)

	assert.True(t, CheckPassword("p4ssword", hash))
	assert.False(t, CheckPassword("wrong", hash))
}
