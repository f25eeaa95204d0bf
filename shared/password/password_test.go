package password_test

import (
	"nomad/shared/password"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("s3cret-Pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-Pass", hash)

	assert.NoError(t, password.Verify("s3cret-Pass", hash))
	assert.ErrorIs(t, password.Verify("wrong", hash), password.ErrInvalidPassword)
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("same")
	require.NoError(t, err)

	second, err := password.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestEmptyInputs(t *testing.T) {
	_, err := password.Hash("")
	assert.ErrorIs(t, err, password.ErrEmptyPassword)

	assert.ErrorIs(t, password.Verify("", "hash"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("pass", ""), password.ErrInvalidPassword)
}

func TestHashTooLong(t *testing.T) {
	_, err := password.Hash(strings.Repeat("a", password.MaxLength+1))
	assert.ErrorIs(t, err, password.ErrTooLong)

	_, err = password.Hash(strings.Repeat("a", password.MaxLength))
	assert.NoError(t, err)
}
