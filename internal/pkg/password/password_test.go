package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, Verify("correct horse battery staple", hash))
	assert.False(t, Verify("correct horse battery stapl", hash))
	assert.False(t, Verify("", hash))
}

func TestHashIsSalted(t *testing.T) {
	h1, err := Hash("same password")
	require.NoError(t, err)
	h2, err := Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, Verify("same password", h1))
	assert.True(t, Verify("same password", h2))
}

func TestLongPasswordsStaySignificant(t *testing.T) {
	// bcrypt truncates input at 72 bytes; the sha256 pre-digest keeps
	// the tail of a long password significant
	long := strings.Repeat("a", 100)
	hash, err := Hash(long)
	require.NoError(t, err)

	assert.True(t, Verify(long, hash))
	assert.False(t, Verify(long+"b", hash))
	assert.False(t, Verify(strings.Repeat("a", 99), hash))
}

func TestValidatePassword(t *testing.T) {
	assert.False(t, ValidatePassword("short"))
	assert.False(t, ValidatePassword("1234567"))
	assert.True(t, ValidatePassword("12345678"))
}
