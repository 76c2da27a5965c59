package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchRequest(t *testing.T) {
	req, err := NewSearchRequest(" apple ", WithKind(AssetKindFund), WithLimit(5))
	require.NoError(t, err)
	assert.Equal(t, "apple", req.Query())

	kind, ok := req.Kind()
	assert.True(t, ok)
	assert.Equal(t, AssetKindFund, kind)

	limit, ok := req.Limit()
	assert.True(t, ok)
	assert.Equal(t, 5, limit)
}

func TestNewSearchRequest_Defaults(t *testing.T) {
	req, err := NewSearchRequest("ibm")
	require.NoError(t, err)

	_, ok := req.Kind()
	assert.False(t, ok)
	_, ok = req.Limit()
	assert.False(t, ok)
}

func TestNewSearchRequest_Invalid(t *testing.T) {
	_, err := NewSearchRequest("   ")
	assert.True(t, errors.Is(err, ErrInvalidArg))

	_, err = NewSearchRequest("ibm", WithLimit(-1))
	assert.True(t, errors.Is(err, ErrInvalidArg))

	_, err = NewSearchRequest("ibm", WithLimit(0))
	assert.True(t, errors.Is(err, ErrInvalidArg))
}

func TestParseExchange(t *testing.T) {
	ex, ok := ParseExchange("US")
	assert.True(t, ok)
	assert.Equal(t, Exchange("US"), ex)

	ex, ok = ParseExchange("United Kingdom")
	assert.True(t, ok)
	assert.Equal(t, Exchange("LSE"), ex)

	_, ok = ParseExchange("Atlantis")
	assert.False(t, ok)
}
