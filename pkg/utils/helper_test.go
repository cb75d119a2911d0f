package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound1(t *testing.T) {
	assert.Equal(t, 8.8, Round1(8.849))
	assert.Equal(t, 50.0, Round1(49.96))
	assert.Equal(t, 7.0, Round1(7.0))
	assert.Equal(t, 0.1, Round1(0.05))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "60", FormatMinutes(60))
	assert.Equal(t, "59.5", FormatMinutes(59.5))
	assert.Equal(t, "0.5", FormatMinutes(0.5))
}

func TestParseInt(t *testing.T) {
	id, ok := ParseInt("42")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	_, ok = ParseInt("abc")
	assert.False(t, ok)
}
