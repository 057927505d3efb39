package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSymbol(t *testing.T) {
	valid := []string{"XBTUSD", "XXBTZUSD", "ETH/USD", "DOT/EUR", "ethusd"}
	for _, s := range valid {
		assert.NoError(t, ValidateSymbol(s), s)
	}

	invalid := []string{"", " ", "\t\n", "BTC", "XBT-USD", "X/USD", "XBT USD"}
	for _, s := range invalid {
		err := ValidateSymbol(s)
		assert.Error(t, err, "%q", s)
		assert.True(t, errors.Is(err, ErrInvalidArgument), "%q", s)
	}
}

func TestValidateRequired(t *testing.T) {
	assert.NoError(t, ValidateRequired("asset", "XBT"))

	err := ValidateRequired("asset", "  ")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "asset")
}

func TestSameSymbol(t *testing.T) {
	assert.True(t, SameSymbol("XBT/USD", "xbtusd"))
	assert.False(t, SameSymbol("XBTUSD", "XXBTZUSD"))
}
