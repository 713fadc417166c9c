package convert_request

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePassword_SkipsBiasedBytes(t *testing.T) {
	src := make([]byte, 0, 2*passwordLength)
	// Первый блок целиком за порогом 210
	for i := 0; i < passwordLength; i++ {
		src = append(src, byte(210+i))
	}
	src = append(src, 209, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	p, err := generatePassword(bytes.NewReader(src))

	require.NoError(t, err)
	assert.Equal(t, "*abcdefghijk", p)
}

func TestGeneratePassword_SkipsWithinChunk(t *testing.T) {
	src := []byte{255, 0, 210, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21}

	p, err := generatePassword(bytes.NewReader(src))

	require.NoError(t, err)
	assert.Equal(t, "abcdefghijkl", p)
}

func TestGeneratePassword_ShortSourceFails(t *testing.T) {
	src := bytes.Repeat([]byte{250}, 3*passwordLength)

	_, err := generatePassword(bytes.NewReader(src))

	assert.Error(t, err)
}

func TestGeneratePassword_ByteLimitIsMultipleOfCharset(t *testing.T) {
	assert.Equal(t, 210, passwordByteLimit)
	assert.Zero(t, passwordByteLimit%len(passwordCharset))
}
