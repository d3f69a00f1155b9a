package nonparametric

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hypotest/domain/core"
)

var (
	plantCtrl = []float64{4.17, 5.58, 5.18}
	plantTrt1 = []float64{4.81, 4.17, 4.41}
	plantTrt2 = []float64{5.31, 5.12, 5.54}
)

func TestKruskalWallis_PlantGrowth(t *testing.T) {
	kw, err := NewKruskalWallis(KruskalWallisOptions{}, plantCtrl, plantTrt1, plantTrt2)
	require.NoError(t, err)

	assert.Equal(t, 9, kw.N)
	assert.Equal(t, 3, kw.K)
	assert.Equal(t, 2, kw.DegreesOfFreedom)
	assert.InDelta(t, 3.1148459383753497, kw.H, 1e-10)
	assert.InDelta(t, 0.21067829669685478, kw.PValue, 1e-10)
	assert.InDelta(t, 2.4469118487916806, kw.TValue, 1e-8)
	assert.InDelta(t, 4.916428084371546, kw.LeastSignificantDifference, 1e-8)
}

func TestKruskalWallis_GroupVectorEquivalence(t *testing.T) {
	direct, err := NewKruskalWallis(KruskalWallisOptions{}, plantCtrl, plantTrt1, plantTrt2)
	require.NoError(t, err)

	// Same observations partitioned by label; sorted label order matches
	// the order the samples were passed in above.
	combined := append(append(append([]float64{}, plantCtrl...), plantTrt1...), plantTrt2...)
	labels := []string{
		"ctrl", "ctrl", "ctrl",
		"trt1", "trt1", "trt1",
		"trt2", "trt2", "trt2",
	}
	grouped, err := NewKruskalWallis(KruskalWallisOptions{Group: labels}, combined)
	require.NoError(t, err)

	assert.InDelta(t, direct.H, grouped.H, 1e-12)
	assert.InDelta(t, direct.PValue, grouped.PValue, 1e-12)
	assert.Equal(t, direct.K, grouped.K)
	assert.Equal(t, "ctrl", grouped.Groups[0].Label)
}

func TestKruskalWallis_RankSums(t *testing.T) {
	kw, err := NewKruskalWallis(KruskalWallisOptions{}, plantCtrl, plantTrt1, plantTrt2)
	require.NoError(t, err)

	// The rank sums across groups account for every rank 1..N.
	var total float64
	for _, g := range kw.Groups {
		total += g.RankSum
	}
	n := float64(kw.N)
	assert.InDelta(t, n*(n+1)/2, total, 1e-9)
}

func TestKruskalWallis_Validation(t *testing.T) {
	_, err := NewKruskalWallis(KruskalWallisOptions{})
	assert.True(t, errors.Is(err, core.ErrEmptyVector))

	_, err = NewKruskalWallis(KruskalWallisOptions{}, plantCtrl)
	assert.True(t, errors.Is(err, core.ErrInvalidParameter))

	_, err = NewKruskalWallis(KruskalWallisOptions{}, plantCtrl, nil)
	assert.True(t, errors.Is(err, core.ErrEmptyVector))

	// A group vector alongside multiple sample vectors is undecidable.
	labels := []string{"a", "a", "b"}
	_, err = NewKruskalWallis(KruskalWallisOptions{Group: labels}, plantCtrl, plantTrt1)
	assert.True(t, errors.Is(err, core.ErrAmbiguousInput))
}

func TestKruskalWallis_Summary(t *testing.T) {
	kw, err := NewKruskalWallis(KruskalWallisOptions{}, plantCtrl, plantTrt1, plantTrt2)
	require.NoError(t, err)

	summary := kw.Summary()
	assert.Equal(t, kw.H, summary["H-statistic"])
	assert.Equal(t, kw.PValue, summary["p-value"])
	assert.Equal(t, 2, summary["degrees of freedom"])
	assert.Contains(t, summary, "least significant difference")
}
