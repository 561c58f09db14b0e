package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorOpp(t *testing.T) {
	assert.Equal(t, Black, White.Opp())
	assert.Equal(t, White, Black.Opp())
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "w", White.String())
	assert.Equal(t, "b", Black.String())
	assert.Equal(t, "-", ColorNone.String())
}

func TestPawnDirection(t *testing.T) {
	assert.Equal(t, North, White.PawnDirection())
	assert.Equal(t, South, Black.PawnDirection())
}
