package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	valid := []string{"abc", "user_01", "ABC_def_99", "a2345678901234567890"}
	for _, u := range valid {
		assert.True(t, ValidateUsername(u), u)
	}

	invalid := []string{"", "ab", "has space", "dash-ed", "über", "a234567890123456789012"}
	for _, u := range invalid {
		assert.False(t, ValidateUsername(u), u)
	}
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("password1"))
	assert.True(t, ValidatePassword("1Aabcdef"))

	assert.False(t, ValidatePassword("short1"))
	assert.False(t, ValidatePassword("onlyletters"))
	assert.False(t, ValidatePassword("12345678"))
}

func TestSessionValid(t *testing.T) {
	now := time.Now()
	s := &Session{IsActive: true, ExpiresAt: now.Add(time.Hour)}
	assert.True(t, s.Valid(now))
	assert.False(t, s.Valid(now.Add(2*time.Hour)))

	s.IsActive = false
	assert.False(t, s.Valid(now))
}

func TestLevelOrdering(t *testing.T) {
	assert.Equal(t, LevelIntermediate, NextLevel(LevelBeginner))
	assert.Equal(t, LevelAdvanced, NextLevel(LevelIntermediate))
	assert.Equal(t, LevelAdvanced, NextLevel(LevelAdvanced))

	assert.Equal(t, LevelBeginner, PrevLevel(LevelBeginner))
	assert.Equal(t, LevelIntermediate, PrevLevel(LevelAdvanced))

	assert.Equal(t, []string{LevelIntermediate}, AdjacentLevels(LevelBeginner))
	assert.Equal(t, []string{LevelAdvanced, LevelBeginner}, AdjacentLevels(LevelIntermediate))
	assert.Equal(t, []string{LevelIntermediate}, AdjacentLevels(LevelAdvanced))

	assert.True(t, IsValidLevel(LevelBeginner))
	assert.False(t, IsValidLevel("expert"))
}
