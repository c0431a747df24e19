package label_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattix/core"
	"github.com/katalvlaran/lattix/label"
	"github.com/katalvlaran/lattix/poset"
)

// chain4 returns 0 < 1 < 2 < 3.
func chain4(t *testing.T) *poset.Poset[int] {
	t.Helper()
	p, err := poset.New([]int{0, 1, 2, 3}, [][]int{{1}, {2}, {3}})
	require.NoError(t, err)

	return p
}

// TestType_Names covers codes and names.
func TestType_Names(t *testing.T) {
	assert.Equal(t, "1", label.TypeUnary.String())
	assert.Equal(t, "5", label.TypeSemilattice.String())
	assert.Equal(t, "boolean", label.TypeBoolean.Name())
	assert.Equal(t, "invalid", label.Type(9).Name())
	assert.False(t, label.Type(0).Valid())
}

// TestApply_AllLabeled calls the function once per edge.
func TestApply_AllLabeled(t *testing.T) {
	p := chain4(t)
	calls := 0
	res := label.Apply(p, "alg", func(lo, up int, alg string) (label.Type, error) {
		calls++
		assert.Equal(t, "alg", alg)
		assert.Equal(t, lo+1, up)
		return label.TypeLattice, nil
	})

	assert.Equal(t, 3, calls)
	assert.Empty(t, res.Diagnostics)
	assert.Equal(t, label.TypeLattice, res.Labels[core.Edge{Lower: 1, Upper: 2}])
	assert.Equal(t, "4", res.Strings()[core.Edge{Lower: 0, Upper: 1}])
}

// TestApply_FailuresAreDiagnostics keeps going past errors, panics and bad codes.
func TestApply_FailuresAreDiagnostics(t *testing.T) {
	p := chain4(t)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	res := label.Apply(p, struct{}{}, func(lo, _ int, _ struct{}) (label.Type, error) {
		switch lo {
		case 0:
			return 0, label.ErrUnclassified
		case 1:
			panic("boom")
		default:
			return label.Type(7), nil
		}
	}, label.WithLogger(logger))

	assert.Empty(t, res.Labels)
	require.Len(t, res.Diagnostics, 3)
	assert.ErrorIs(t, res.Diagnostics[0].Err, label.ErrUnclassified)
	assert.ErrorIs(t, res.Diagnostics[1].Err, label.ErrPanic)
	assert.ErrorIs(t, res.Diagnostics[2].Err, label.ErrInvalidType)
	assert.Equal(t, core.Edge{Lower: 2, Upper: 3}, res.Diagnostics[2].Edge)
	assert.Contains(t, res.Diagnostics[1].String(), "1->2")
	assert.Contains(t, buf.String(), "edge left unlabeled")
}

// TestApply_Partial mixes labeled and unlabeled edges.
func TestApply_Partial(t *testing.T) {
	p := chain4(t)
	oops := errors.New("unsupported shape")
	res := label.Apply(p, 0, func(lo, _ int, _ int) (label.Type, error) {
		if lo == 1 {
			return 0, oops
		}
		return label.TypeAffine, nil
	})

	assert.Len(t, res.Labels, 2)
	require.Len(t, res.Diagnostics, 1)
	assert.ErrorIs(t, res.Diagnostics[0].Err, oops)
}

// TestApply_NilFunc labels nothing.
func TestApply_NilFunc(t *testing.T) {
	res := label.Apply[int, int](chain4(t), 0, nil)
	assert.Empty(t, res.Labels)
	assert.Empty(t, res.Diagnostics)
}
