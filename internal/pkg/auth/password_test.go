package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("sekret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "sekret-pass", hashed)

	assert.True(t, CheckPassword(hashed, "sekret-pass"))
	assert.False(t, CheckPassword(hashed, "wrong-pass"))
}
