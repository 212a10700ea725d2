package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/linsl/internal/common/failure"
	"github.com/michaelmacinnis/linsl/internal/common/interface/cell"
	"github.com/michaelmacinnis/linsl/internal/common/type/num"
	"github.com/michaelmacinnis/linsl/internal/common/type/sym"
)

func args(vs ...float64) []cell.I {
	cs := make([]cell.I, len(vs))
	for i, v := range vs {
		cs[i] = num.New(v)
	}

	return cs
}

func TestFixed(t *testing.T) {
	v, err := Fixed(args(1, 2), 2, 2)
	require.NoError(t, err)
	assert.Len(t, v, 2)

	_, err = Fixed(args(1), 2, 2)
	require.Error(t, err)
	assert.True(t, failure.IsSyntax(err))
	assert.Equal(t, "Syntax error: expected 2 arguments, passed 1", err.Error())

	_, err = Fixed(args(1, 2, 3), 0, 1)
	require.Error(t, err)
	assert.Equal(t, "Syntax error: expected at most 1 argument, passed 3", err.Error())
}

func TestVariadic(t *testing.T) {
	v, rest, err := Variadic(args(1, 2, 3), 1, 1)
	require.NoError(t, err)
	assert.Len(t, v, 1)
	assert.Len(t, rest, 2)

	v, rest, err = Variadic(args(), 0, 1)
	require.NoError(t, err)
	assert.Empty(t, v)
	assert.Empty(t, rest)
}

func TestNumbers(t *testing.T) {
	vs, err := Numbers(args(1, 2))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, vs)

	_, err = Numbers([]cell.I{num.New(1), sym.New("x")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "argument 2")
}

func TestCount(t *testing.T) {
	assert.Equal(t, "1 argument", Count(1, "argument", "s"))
	assert.Equal(t, "3 arguments", Count(3, "argument", "s"))
}
