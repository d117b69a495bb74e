package wordsieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExactPosition(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c, err := NewExactPosition(2, 5, 'A')
		require.NoError(t, err)
		assert.Equal(t, 'a', c.Letter())
		assert.True(t, c.Matches("crane"))
		assert.False(t, c.Matches("slate"))
	})

	t.Run("index out of range", func(t *testing.T) {
		_, err := NewExactPosition(5, 5, 'a')
		assert.ErrorIs(t, err, ErrIndexOutOfRange)

		_, err = NewExactPosition(-1, 5, 'a')
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})

	t.Run("invalid letter", func(t *testing.T) {
		_, err := NewExactPosition(0, 5, '3')
		assert.ErrorIs(t, err, ErrInvalidLetter)

		_, err = NewExactPosition(0, 5, ' ')
		assert.ErrorIs(t, err, ErrInvalidLetter)
	})
}

func TestNewPresentElsewhere(t *testing.T) {
	c, err := NewPresentElsewhere(0, 5, 'e')
	require.NoError(t, err)

	assert.True(t, c.Matches("crane"), "contains e away from position 0")
	assert.False(t, c.Matches("eagle"), "e at the reported position")
	assert.False(t, c.Matches("court"), "no e at all")

	_, err = NewPresentElsewhere(9, 5, 'e')
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestNewAbsent(t *testing.T) {
	t.Run("no prior confirmation means fully absent", func(t *testing.T) {
		c, err := NewAbsent('z', nil)
		require.NoError(t, err)

		assert.False(t, c.Matches("zebra"))
		assert.True(t, c.Matches("crane"))
	})

	t.Run("prior exact match weakens to not-repeated", func(t *testing.T) {
		green, err := NewExactPosition(0, 5, 's')
		require.NoError(t, err)

		c, err := NewAbsent('s', []Constraint{green})
		require.NoError(t, err)

		assert.True(t, c.Matches("sonic"), "single s stays")
		assert.False(t, c.Matches("slots"), "double s is out")
	})

	t.Run("prior elsewhere match weakens to not-repeated", func(t *testing.T) {
		yellow, err := NewPresentElsewhere(1, 5, 's')
		require.NoError(t, err)

		c, err := NewAbsent('s', []Constraint{yellow})
		require.NoError(t, err)

		assert.True(t, c.Matches("sonic"))
		assert.False(t, c.Matches("slots"))
	})

	t.Run("prior absent for the same letter does not weaken", func(t *testing.T) {
		prev, err := NewAbsent('s', nil)
		require.NoError(t, err)

		c, err := NewAbsent('s', []Constraint{prev})
		require.NoError(t, err)

		assert.False(t, c.Matches("sonic"), "still fully absent")
	})

	t.Run("prior confirmation of another letter does not weaken", func(t *testing.T) {
		green, err := NewExactPosition(0, 5, 't')
		require.NoError(t, err)

		c, err := NewAbsent('s', []Constraint{green})
		require.NoError(t, err)

		assert.False(t, c.Matches("sonic"))
	})

	t.Run("invalid letter", func(t *testing.T) {
		_, err := NewAbsent('_', nil)
		assert.ErrorIs(t, err, ErrInvalidLetter)
	})
}

func TestConstraintEquality(t *testing.T) {
	a, err := NewExactPosition(1, 5, 'R')
	require.NoError(t, err)
	b, err := NewExactPosition(1, 5, 'r')
	require.NoError(t, err)
	assert.Equal(t, a, b)

	y, err := NewPresentElsewhere(1, 5, 'r')
	require.NoError(t, err)
	assert.NotEqual(t, a, y, "same index and letter, different variant")

	g1, err := NewAbsent('q', nil)
	require.NoError(t, err)
	g2, err := NewAbsent('q', nil)
	require.NoError(t, err)
	assert.Equal(t, g1, g2)
}

func TestConstraintString(t *testing.T) {
	green, err := NewExactPosition(0, 5, 'c')
	require.NoError(t, err)
	assert.Equal(t, "exact(0, c)", green.String())

	yellow, err := NewPresentElsewhere(3, 5, 'k')
	require.NoError(t, err)
	assert.Equal(t, "elsewhere(3, k)", yellow.String())

	grey, err := NewAbsent('z', nil)
	require.NoError(t, err)
	assert.Equal(t, "absent(z)", grey.String())

	weak, err := NewAbsent('c', []Constraint{green})
	require.NoError(t, err)
	assert.Equal(t, "not-repeated(c)", weak.String())
}
