package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound1(t *testing.T) {
	assert.Equal(t, 66.7, Round1(66.666))
	assert.Equal(t, 33.3, Round1(33.333))
	assert.Equal(t, 50.0, Round1(50))
	assert.Equal(t, 0.0, Round1(0.04))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 50.0, Percent(2, 4))
	assert.Equal(t, 0.0, Percent(0, 0))
	assert.Equal(t, 100.0, Percent(3, 3))
}

func TestRoundScore(t *testing.T) {
	assert.Equal(t, 75, RoundScore(3, 4))
	assert.Equal(t, 33, RoundScore(1, 3))
	assert.Equal(t, 67, RoundScore(2, 3))
	assert.Equal(t, 0, RoundScore(0, 0))
}

func TestRandomToken(t *testing.T) {
	a, err := RandomToken(24)
	assert.NoError(t, err)
	assert.Len(t, a, 48)

	b, err := RandomToken(24)
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}
