package service

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func basicHeader(credentials string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(credentials))
}

func TestParseBasicAuth(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		email, password, ok := ParseBasicAuth(basicHeader("admin@email.com:secret1234"))

		assert.True(t, ok)
		assert.Equal(t, "admin@email.com", email)
		assert.Equal(t, "secret1234", password)
	})

	t.Run("password containing colons", func(t *testing.T) {
		email, password, ok := ParseBasicAuth(basicHeader("user@email.com:pa:ss:word"))

		assert.True(t, ok)
		assert.Equal(t, "user@email.com", email)
		assert.Equal(t, "pa:ss:word", password)
	})

	t.Run("empty header", func(t *testing.T) {
		_, _, ok := ParseBasicAuth("")
		assert.False(t, ok)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		_, _, ok := ParseBasicAuth("Bearer abcdef")
		assert.False(t, ok)
	})

	t.Run("scheme without space", func(t *testing.T) {
		_, _, ok := ParseBasicAuth("Basic" + base64.StdEncoding.EncodeToString([]byte("a:b")))
		assert.False(t, ok)
	})

	t.Run("invalid base64", func(t *testing.T) {
		_, _, ok := ParseBasicAuth("Basic not-base64!!!")
		assert.False(t, ok)
	})

	t.Run("missing separator", func(t *testing.T) {
		_, _, ok := ParseBasicAuth(basicHeader("no-separator"))
		assert.False(t, ok)
	})

	t.Run("empty password allowed by parser", func(t *testing.T) {
		email, password, ok := ParseBasicAuth(basicHeader("user@email.com:"))

		assert.True(t, ok)
		assert.Equal(t, "user@email.com", email)
		assert.Empty(t, password)
	})
}
