package lending

import (
	"time"

	"github.com/shopspring/decimal"

	"lending-finance-backend/internal/models"
)

var one = decimal.NewFromInt(1)

// BuildSchedule generates the installment schedule for a loan. SIMPLE
// charges flat interest on the full principal every month; FRENCH amortizes
// with a constant payment. The last installment absorbs rounding remainders
// so the principal parts always sum to the principal exactly.
func BuildSchedule(loan *models.Loan) []models.Installment {
	if loan.TermMonths <= 0 {
		return nil
	}

	switch loan.InterestType {
	case models.InterestFrench:
		return frenchSchedule(loan)
	default:
		return simpleSchedule(loan)
	}
}

func simpleSchedule(loan *models.Loan) []models.Installment {
	term := int64(loan.TermMonths)
	interest := loan.Principal.Mul(loan.MonthlyInterestRate).Round(2)
	principalPart := loan.Principal.Div(decimal.NewFromInt(term)).Round(2)

	installments := make([]models.Installment, 0, loan.TermMonths)
	balance := loan.Principal

	for n := 1; n <= loan.TermMonths; n++ {
		part := principalPart
		if n == loan.TermMonths {
			part = balance
		}
		balance = balance.Sub(part)

		installments = append(installments, models.Installment{
			Number:           n,
			DueDate:          dueDate(loan.DisbursementDate, n),
			Amount:           part.Add(interest),
			Interest:         interest,
			PrincipalPart:    part,
			RemainingBalance: balance,
			Status:           models.InstallmentPending,
		})
	}
	return installments
}

func frenchSchedule(loan *models.Loan) []models.Installment {
	rate := loan.MonthlyInterestRate
	term := int64(loan.TermMonths)

	var payment decimal.Decimal
	if rate.IsZero() {
		payment = loan.Principal.Div(decimal.NewFromInt(term)).Round(2)
	} else {
		factor := one.Add(rate).Pow(decimal.NewFromInt(term))
		payment = loan.Principal.Mul(rate).Mul(factor).Div(factor.Sub(one)).Round(2)
	}

	installments := make([]models.Installment, 0, loan.TermMonths)
	balance := loan.Principal

	for n := 1; n <= loan.TermMonths; n++ {
		interest := balance.Mul(rate).Round(2)
		part := payment.Sub(interest)
		amount := payment
		if n == loan.TermMonths {
			part = balance
			amount = part.Add(interest)
		}
		balance = balance.Sub(part)

		installments = append(installments, models.Installment{
			Number:           n,
			DueDate:          dueDate(loan.DisbursementDate, n),
			Amount:           amount,
			Interest:         interest,
			PrincipalPart:    part,
			RemainingBalance: balance,
			Status:           models.InstallmentPending,
		})
	}
	return installments
}

func dueDate(disbursement time.Time, monthsAhead int) time.Time {
	return disbursement.AddDate(0, monthsAhead, 0)
}
