package alphavantage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmanzanog/borsa-alphavantage/internal/domain"
)

func TestLooksLikeNotFound(t *testing.T) {
	tests := map[string]bool{
		"Invalid API call. Please retry or visit the documentation": true,
		"NO DATA for symbol":   true,
		"symbol not found":     true,
		"Unknown Symbol XYZ":   true,
		"No matches for query": true,
		"Thank you for using Alpha Vantage! Our standard API rate limit is 25 requests per day.": false,
		"connection reset by peer": false,
		"":                         false,
	}

	for msg, expected := range tests {
		t.Run(msg, func(t *testing.T) {
			assert.Equal(t, expected, looksLikeNotFound(msg))
		})
	}
}

func TestNormalizeError(t *testing.T) {
	const what = "quote for IBM"

	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, normalizeError(nil, what))
	})

	t.Run("opaque not found phrase", func(t *testing.T) {
		err := normalizeError(errors.New("No data returned"), what)
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.Equal(t, "not found: quote for IBM", err.Error())
	})

	t.Run("opaque other failure is tagged with connector name", func(t *testing.T) {
		err := normalizeError(errors.New("API returned status 503: busy"), what)
		require.ErrorIs(t, err, domain.ErrConnector)
		e, ok := domain.AsError(err)
		require.True(t, ok)
		assert.Equal(t, ConnectorName, e.Connector)
		assert.Equal(t, "API returned status 503: busy", e.Message)
	})

	t.Run("wrapped opaque failure", func(t *testing.T) {
		err := normalizeError(fmt.Errorf("failed to execute request: %w", errors.New("unknown symbol")), what)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("connector error with not found phrase", func(t *testing.T) {
		err := normalizeError(domain.ConnectorError("other-vendor", "Invalid API call"), what)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("connector error passes through with its identity", func(t *testing.T) {
		in := domain.ConnectorError("other-vendor", "rate limited")
		err := normalizeError(in, what)
		assert.Same(t, in, err)
	})

	t.Run("other kind with not found phrase", func(t *testing.T) {
		err := normalizeError(domain.OtherError("no matches"), what)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("other kind becomes connector error", func(t *testing.T) {
		err := normalizeError(domain.OtherError("boom"), what)
		e, ok := domain.AsError(err)
		require.True(t, ok)
		assert.Equal(t, domain.KindConnector, e.Kind)
		assert.Equal(t, ConnectorName, e.Connector)
		assert.Equal(t, "boom", e.Message)
	})

	t.Run("canonical kinds pass through", func(t *testing.T) {
		for _, in := range []*domain.Error{
			domain.InvalidArg("not found in input"),
			domain.Unsupported("no data for interval"),
			domain.DataError("unknown symbol shape"),
			domain.NotFound("x"),
		} {
			assert.Same(t, in, normalizeError(in, what))
		}
	})
}
