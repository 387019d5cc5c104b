package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salariedindividual/retirement-calculator/internal/domain"
)

func TestProjectCorpusDrawdownLedger(t *testing.T) {
	ledger := ProjectCorpusDrawdown(
		decimal.NewFromInt(1000000),
		decimal.NewFromInt(100000),
		decimal.NewFromFloat(0.07),
		decimal.NewFromFloat(0.05),
		decimal.NewFromFloat(0.08),
		50,
	)
	require.NotEmpty(t, ledger)

	first := ledger[0]
	assert.Equal(t, 1, first.Year)
	assert.True(t, first.OpeningBalance.Equal(decimal.NewFromInt(1000000)))
	assert.True(t, first.Growth.Equal(decimal.NewFromInt(80000)))
	assert.True(t, first.Withdrawal.Equal(decimal.NewFromInt(100000)),
		"first year withdraws the uninflated expense, got %s", first.Withdrawal)
	assert.True(t, first.ClosingBalance.Equal(decimal.NewFromInt(980000)))

	second := ledger[1]
	assert.True(t, second.OpeningBalance.Equal(first.ClosingBalance))
	assert.True(t, second.Growth.Equal(decimal.NewFromInt(78400)))
	assert.True(t, second.Withdrawal.Equal(decimal.NewFromInt(107000)),
		"second year inflates expenses once, got %s", second.Withdrawal)

	for i := 1; i < len(ledger); i++ {
		assert.True(t, ledger[i].OpeningBalance.Equal(ledger[i-1].ClosingBalance),
			"ledger must chain at year %d", ledger[i].Year)
	}
}

func TestProjectCorpusDrawdownExactDepletion(t *testing.T) {
	// No growth, no floor: 1000 funds exactly two 500-withdrawals.
	ledger := ProjectCorpusDrawdown(
		decimal.NewFromInt(1000),
		decimal.NewFromInt(500),
		decimal.Zero,
		decimal.NewFromFloat(0.05),
		decimal.Zero,
		50,
	)
	require.Len(t, ledger, 2)
	assert.True(t, ledger[0].ClosingBalance.Equal(decimal.NewFromInt(500)))
	assert.True(t, ledger[1].ClosingBalance.IsZero())
	assert.False(t, DrawdownCapped(ledger, 50))
}

func TestProjectCorpusDrawdownZeroCorpus(t *testing.T) {
	ledger := ProjectCorpusDrawdown(
		decimal.Zero,
		decimal.NewFromInt(100000),
		decimal.NewFromFloat(0.07),
		decimal.NewFromFloat(0.05),
		decimal.NewFromFloat(0.08),
		50,
	)
	assert.Empty(t, ledger, "nothing to draw down")
	assert.Equal(t, 0, CalculateCorpusDuration(
		decimal.Zero, decimal.NewFromInt(100000),
		decimal.NewFromFloat(0.07), decimal.NewFromFloat(0.05), decimal.NewFromFloat(0.08), 50))
}

func TestProjectCorpusDrawdownCapHit(t *testing.T) {
	// The floor withdraws 5% of a grown balance, which a 1% net drag never
	// exhausts: the ledger must stop at the cap with money left.
	ledger := ProjectCorpusDrawdown(
		decimal.NewFromInt(1000000000),
		decimal.NewFromInt(1000),
		decimal.NewFromFloat(0.07),
		decimal.NewFromFloat(0.05),
		decimal.NewFromFloat(0.08),
		10,
	)
	require.Len(t, ledger, 10)
	assert.True(t, ledger[9].ClosingBalance.GreaterThan(decimal.Zero))
	assert.True(t, DrawdownCapped(ledger, 10))
}

func TestProjectCorpusDrawdownDefaultCap(t *testing.T) {
	// Zero expenses and a zero rate floor never touch the corpus.
	ledger := ProjectCorpusDrawdown(
		decimal.NewFromInt(5000000),
		decimal.Zero,
		decimal.NewFromFloat(0.07),
		decimal.Zero,
		decimal.NewFromFloat(0.08),
		0,
	)
	require.Len(t, ledger, domain.DefaultMaxDrawdownYears)
	for _, row := range ledger {
		assert.True(t, row.Withdrawal.IsZero())
	}
	assert.True(t, DrawdownCapped(ledger, 0))
}

func TestProjectCorpusDrawdownExpenseGrowthShortensDuration(t *testing.T) {
	corpus := decimal.NewFromInt(3000000)
	expenses := decimal.NewFromInt(200000)
	wr := decimal.NewFromFloat(0.04)
	ret := decimal.NewFromFloat(0.06)

	flat := CalculateCorpusDuration(corpus, expenses, decimal.Zero, wr, ret, 50)
	growing := CalculateCorpusDuration(corpus, expenses, decimal.NewFromFloat(0.07), wr, ret, 50)

	assert.LessOrEqual(t, growing, flat,
		"growing expenses can never make the corpus last longer")
	assert.Greater(t, growing, 0)
}

func TestDrawdownCappedShortLedger(t *testing.T) {
	ledger := []domain.DrawdownYear{
		{Year: 1, ClosingBalance: decimal.NewFromInt(100)},
	}
	assert.False(t, DrawdownCapped(ledger, 50))
	assert.False(t, DrawdownCapped(nil, 50))
}
