package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"carshare/shared/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("correct horse battery staple")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, password.Verify("correct horse battery staple", hash))
}

func TestHashEmptyPassword(t *testing.T) {
	_, err := password.Hash("")
	assert.Error(t, err)
}

func TestVerifyMismatch(t *testing.T) {
	hash, err := password.Hash("right password")
	assert.NoError(t, err)

	err = password.Verify("wrong password", hash)
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}

func TestVerifyEmptyInputs(t *testing.T) {
	assert.ErrorIs(t, password.Verify("", "hash"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("secret", ""), password.ErrInvalidPassword)
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("same password")
	assert.NoError(t, err)

	second, err := password.Hash("same password")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}
