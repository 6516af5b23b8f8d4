package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUsernameValid(t *testing.T) {
	assert.True(t, IsUsernameValid("jane"))
	assert.True(t, IsUsernameValid("jane_doe.99"))
	assert.False(t, IsUsernameValid("jo"))
	assert.False(t, IsUsernameValid("jane doe"))
	assert.False(t, IsUsernameValid(""))
}

func TestIsEmailValid(t *testing.T) {
	assert.True(t, IsEmailValid("j@x.com"))
	assert.True(t, IsEmailValid("jane.doe@mail.example.org"))
	assert.False(t, IsEmailValid("jane"))
	assert.False(t, IsEmailValid("jane@"))
	assert.False(t, IsEmailValid("@x.com"))
	assert.False(t, IsEmailValid("jane@localhost"))
	assert.False(t, IsEmailValid("jane doe@x.com"))
}
