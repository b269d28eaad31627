package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edgescope/edgescope/market"
)

func TestComputeProfitMicroLong(t *testing.T) {
	t.Parallel()

	// (1050 - 1000 - 5) * 2 * 10 = 900
	got := ComputeProfit("nk225mc", market.Long, fp(1000), fp(1050), fp(5), fp(2))
	assert.NotNil(t, got)
	assert.InDelta(t, 900, *got, 1e-9)
}

func TestComputeProfitShort(t *testing.T) {
	t.Parallel()

	// (1000 - 950 - 5) * 3 * 100 = 13500
	got := ComputeProfit("nk225m", market.Short, fp(1000), fp(950), fp(5), fp(3))
	assert.NotNil(t, got)
	assert.InDelta(t, 13500, *got, 1e-9)
}

func TestComputeProfitUnknownSymbolFaceValue(t *testing.T) {
	t.Parallel()

	got := ComputeProfit("topix", market.Long, fp(100), fp(110), fp(1), fp(1))
	assert.NotNil(t, got)
	assert.InDelta(t, 9, *got, 1e-9)
}

func TestComputeProfitFlatIsZero(t *testing.T) {
	t.Parallel()

	got := ComputeProfit("nk225mc", market.Flat, fp(1000), fp(1050), fp(5), fp(2))
	assert.NotNil(t, got)
	assert.Zero(t, *got)
}

func TestComputeProfitIndeterminateInputs(t *testing.T) {
	t.Parallel()

	entry, exit, fee, size := fp(1000.0), fp(1050.0), fp(5.0), fp(2.0)

	assert.Nil(t, ComputeProfit("nk225mc", market.Long, nil, exit, fee, size))
	assert.Nil(t, ComputeProfit("nk225mc", market.Long, entry, nil, fee, size))
	assert.Nil(t, ComputeProfit("nk225mc", market.Long, entry, exit, nil, size))
	assert.Nil(t, ComputeProfit("nk225mc", market.Long, entry, exit, fee, nil))
	assert.Nil(t, ComputeProfit("nk225mc", market.Long, fp(math.NaN()), exit, fee, size))
	assert.Nil(t, ComputeProfit("nk225mc", market.Long, entry, fp(math.Inf(1)), fee, size))
}

func TestComputeProfitOverflowIsIndeterminate(t *testing.T) {
	t.Parallel()

	huge := fp(math.MaxFloat64)
	assert.Nil(t, ComputeProfit("nk225", market.Long, fp(-math.MaxFloat64), huge, fp(0), fp(1)))
}

func TestComputeProfitLinearInSize(t *testing.T) {
	t.Parallel()

	one := ComputeProfit("nk225mc", market.Long, fp(1000), fp(1050), fp(5), fp(1))
	five := ComputeProfit("nk225mc", market.Long, fp(1000), fp(1050), fp(5), fp(5))
	assert.NotNil(t, one)
	assert.NotNil(t, five)
	assert.InDelta(t, *one*5, *five, 1e-9)
}

func TestComputeProfitDirectionAntisymmetry(t *testing.T) {
	t.Parallel()

	// swapping long<->short together with entry<->exit keeps the result
	long := ComputeProfit("nk225m", market.Long, fp(980), fp(1030), fp(5), fp(2))
	short := ComputeProfit("nk225m", market.Short, fp(1030), fp(980), fp(5), fp(2))
	assert.NotNil(t, long)
	assert.NotNil(t, short)
	assert.InDelta(t, *long, *short, 1e-9)
}
