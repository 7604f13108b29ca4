// FILE: lixenwraith/devlog/crypt/aes_test.go
package crypt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAES(t *testing.T) {
	for _, size := range []int{16, 24, 32} {
		_, err := NewAES([]byte(strings.Repeat("k", size)))
		assert.NoError(t, err, "size %d", size)
	}

	for _, size := range []int{0, 8, 15, 17, 33} {
		_, err := NewAES([]byte(strings.Repeat("k", size)))
		assert.ErrorIs(t, err, ErrKeySize, "size %d", size)
	}
}

func TestAESRoundTrip(t *testing.T) {
	a, err := NewAES([]byte("0123456789abcdef"))
	require.NoError(t, err)

	inputs := []string{
		"",
		"hello",
		"exactly16bytes!!",
		"multi\nline\n\nentry with ║ border and 日本語",
		strings.Repeat("x", 10000),
	}

	for _, in := range inputs {
		enc, err := a.Encrypt(in)
		require.NoError(t, err)
		assert.NotContains(t, enc, "\n")
		if in != "" {
			assert.NotContains(t, enc, in)
		}

		dec, err := a.Decrypt(enc)
		require.NoError(t, err)
		assert.Equal(t, in, dec)
	}
}

func TestAESRandomIV(t *testing.T) {
	a, err := NewAES([]byte("0123456789abcdef"))
	require.NoError(t, err)

	first, err := a.Encrypt("same text")
	require.NoError(t, err)
	second, err := a.Encrypt("same text")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestAESDecryptErrors(t *testing.T) {
	a, err := NewAES([]byte("0123456789abcdef"))
	require.NoError(t, err)

	t.Run("not base64", func(t *testing.T) {
		_, err := a.Decrypt("%%%")
		assert.ErrorIs(t, err, ErrCiphertext)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := a.Decrypt("AAAA")
		assert.ErrorIs(t, err, ErrCiphertext)
	})

	t.Run("wrong key", func(t *testing.T) {
		enc, err := a.Encrypt("secret payload")
		require.NoError(t, err)

		other, err := NewAES([]byte("fedcba9876543210"))
		require.NoError(t, err)

		dec, err := other.Decrypt(enc)
		// A wrong key almost always breaks the padding; when it does not, the text differs
		if err == nil {
			assert.NotEqual(t, "secret payload", dec)
		}
	})
}
