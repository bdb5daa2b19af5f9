package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorf_CarriesFormattedMessage(t *testing.T) {
	err := Errorf("decode %s payload: %d bytes", "geocode", 42)
	assert.EqualError(t, err, "decode geocode payload: 42 bytes")
}

func TestCause_UnwindsWrapChain(t *testing.T) {
	root := New("connection refused")
	wrapped := Wrap(Wrap(root, "send email"), "register user")

	assert.Equal(t, root, Cause(wrapped))
	assert.True(t, Is(wrapped, root))
}
