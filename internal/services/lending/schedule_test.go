package lending

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lending-finance-backend/internal/models"
)

func TestBuildSchedule_Simple(t *testing.T) {
	loan := &models.Loan{
		Principal:           decimal.NewFromInt(1200),
		MonthlyInterestRate: decimal.RequireFromString("0.05"),
		TermMonths:          12,
		InterestType:        models.InterestSimple,
		DisbursementDate:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	schedule := BuildSchedule(loan)
	require.Len(t, schedule, 12)

	for i, inst := range schedule {
		assert.Equal(t, i+1, inst.Number)
		assert.Equal(t, "60", inst.Interest.String(), "installment %d", inst.Number)
		assert.Equal(t, "100", inst.PrincipalPart.String(), "installment %d", inst.Number)
		assert.Equal(t, "160", inst.Amount.String(), "installment %d", inst.Number)
		assert.Equal(t, models.InstallmentPending, inst.Status)
	}

	assert.Equal(t, time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC), schedule[0].DueDate)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), schedule[11].DueDate)
	assert.True(t, schedule[11].RemainingBalance.IsZero())
}

func TestBuildSchedule_SimpleRoundingRemainder(t *testing.T) {
	loan := &models.Loan{
		Principal:           decimal.NewFromInt(1000),
		MonthlyInterestRate: decimal.RequireFromString("0.10"),
		TermMonths:          3,
		InterestType:        models.InterestSimple,
		DisbursementDate:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	schedule := BuildSchedule(loan)
	require.Len(t, schedule, 3)

	assert.Equal(t, "333.33", schedule[0].PrincipalPart.String())
	assert.Equal(t, "333.33", schedule[1].PrincipalPart.String())
	// Last installment absorbs the rounding remainder.
	assert.Equal(t, "333.34", schedule[2].PrincipalPart.String())
	assert.True(t, schedule[2].RemainingBalance.IsZero())

	sum := decimal.Zero
	for _, inst := range schedule {
		sum = sum.Add(inst.PrincipalPart)
	}
	assert.True(t, sum.Equal(loan.Principal))
}

func TestBuildSchedule_French(t *testing.T) {
	loan := &models.Loan{
		Principal:           decimal.NewFromInt(1000),
		MonthlyInterestRate: decimal.RequireFromString("0.02"),
		TermMonths:          12,
		InterestType:        models.InterestFrench,
		DisbursementDate:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	schedule := BuildSchedule(loan)
	require.Len(t, schedule, 12)

	first := schedule[0]
	assert.Equal(t, "94.56", first.Amount.String())
	assert.Equal(t, "20", first.Interest.String())
	assert.Equal(t, "74.56", first.PrincipalPart.String())
	assert.Equal(t, "925.44", first.RemainingBalance.String())

	// The balance decreases monotonically to zero.
	prev := loan.Principal
	for _, inst := range schedule {
		assert.True(t, inst.RemainingBalance.LessThan(prev), "installment %d", inst.Number)
		prev = inst.RemainingBalance
	}
	assert.True(t, schedule[11].RemainingBalance.IsZero())

	// Principal parts sum to the principal exactly.
	sum := decimal.Zero
	for _, inst := range schedule {
		sum = sum.Add(inst.PrincipalPart)
	}
	assert.True(t, sum.Equal(loan.Principal))
}

func TestBuildSchedule_FrenchZeroRate(t *testing.T) {
	loan := &models.Loan{
		Principal:           decimal.NewFromInt(600),
		MonthlyInterestRate: decimal.Zero,
		TermMonths:          6,
		InterestType:        models.InterestFrench,
		DisbursementDate:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	schedule := BuildSchedule(loan)
	require.Len(t, schedule, 6)
	for _, inst := range schedule {
		assert.Equal(t, "100", inst.PrincipalPart.String())
		assert.True(t, inst.Interest.IsZero())
	}
	assert.True(t, schedule[5].RemainingBalance.IsZero())
}

func TestBuildSchedule_InvalidTerm(t *testing.T) {
	loan := &models.Loan{Principal: decimal.NewFromInt(100), TermMonths: 0}
	assert.Nil(t, BuildSchedule(loan))
}
