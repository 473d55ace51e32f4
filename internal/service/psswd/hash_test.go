package psswd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	var hasher PasswordHash

	hash, err := hasher.HashPassword("s3cret")
	require.NoError(t, err)

	require.True(t, hasher.ComparePassword("s3cret", hash))
	require.False(t, hasher.ComparePassword("wrong", hash))

	// заглушка вместо bcrypt хеша (такую носит сидовый корневой профиль)
	// не совпадает ни с каким паролем.
	require.False(t, hasher.ComparePassword("s3cret", "*locked*"))
	require.False(t, hasher.ComparePassword("", "*locked*"))
}
