package mana

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan_ColoredExact(t *testing.T) {
	cost, _ := ParseCost("{R}{R}")
	pool := Pool{Red: 2}

	pay, err := Plan(cost, pool)
	require.NoError(t, err)
	assert.Equal(t, 2, pay.Red)
	assert.Equal(t, 2, pay.Total())
}

func TestPlan_InsufficientColored(t *testing.T) {
	cost, _ := ParseCost("{U}")
	pool := Pool{Red: 3}

	_, err := Plan(cost, pool)
	assert.Error(t, err)
	assert.False(t, CanPay(cost, pool))
}

func TestPlan_GenericPrefersColorless(t *testing.T) {
	// {2}{G} with {C}{C}{G}{R} available: generic must come from colorless,
	// leaving the red untouched.
	cost, _ := ParseCost("{2}{G}")
	pool := Pool{Green: 1, Red: 1, Colorless: 2}

	pay, err := Plan(cost, pool)
	require.NoError(t, err)
	assert.Equal(t, 1, pay.Green)
	assert.Equal(t, 2, pay.Colorless)
	assert.Equal(t, 0, pay.Red)
}

func TestPlan_GenericSpendsLargestSurplus(t *testing.T) {
	// {1}{R} with RRR + U available: the extra red is the cheapest mana to
	// spare, so generic comes from red, not blue.
	cost, _ := ParseCost("{1}{R}")
	pool := Pool{Red: 3, Blue: 1}

	pay, err := Plan(cost, pool)
	require.NoError(t, err)
	assert.Equal(t, 2, pay.Red)
	assert.Equal(t, 0, pay.Blue)
}

func TestPlan_GenericTieBreaksWUBRG(t *testing.T) {
	// Equal surpluses: white is consumed before blue.
	cost, _ := ParseCost("{1}")
	pool := Pool{White: 1, Blue: 1}

	pay, err := Plan(cost, pool)
	require.NoError(t, err)
	assert.Equal(t, 1, pay.White)
	assert.Equal(t, 0, pay.Blue)
}

func TestPlan_GenericAlternatesAcrossSurplus(t *testing.T) {
	// {3} against WW + U: two from white (largest surplus), then the
	// remaining one from white-exhausted pool picks blue.
	cost, _ := ParseCost("{3}")
	pool := Pool{White: 2, Blue: 1}

	pay, err := Plan(cost, pool)
	require.NoError(t, err)
	assert.Equal(t, 2, pay.White)
	assert.Equal(t, 1, pay.Blue)
}

func TestPlan_ColorlessRequirementIsNotGeneric(t *testing.T) {
	// {C} can only be paid with colorless mana.
	cost, _ := ParseCost("{C}")
	pool := Pool{White: 5}

	_, err := Plan(cost, pool)
	assert.Error(t, err)
}

func TestPlan_InsufficientGeneric(t *testing.T) {
	cost, _ := ParseCost("{4}")
	pool := Pool{Green: 3}

	_, err := Plan(cost, pool)
	assert.Error(t, err)
}

func TestPlan_Deterministic(t *testing.T) {
	cost, _ := ParseCost("{3}{B}")
	pool := Pool{White: 2, Black: 2, Green: 2, Colorless: 1}

	first, err := Plan(cost, pool)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Plan(cost, pool)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestExecute(t *testing.T) {
	cost, _ := ParseCost("{1}{G}{G}")
	pool := Pool{Green: 2, Colorless: 1}

	pay, err := Plan(cost, pool)
	require.NoError(t, err)
	require.True(t, Execute(&pool, pay))
	assert.True(t, pool.IsEmpty())
}

func TestExecute_FailureLeavesPoolIntact(t *testing.T) {
	pool := Pool{Red: 1}
	pay := Payment{Red: 2}

	assert.False(t, Execute(&pool, pay))
	assert.Equal(t, 1, pool.Get(Red))
}
