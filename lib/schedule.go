package lib

import (
	"fmt"
	"math"
	"time"

	"github.com/teambition/rrule-go"
)

// Installment is one row of the indicative repayment schedule shown on the
// review page. The schedule is a preview only; the report service computes
// the authoritative one.
type Installment struct {
	Sequence  int
	DueDate   time.Time
	Payment   float64
	Principal float64
	Interest  float64
	Balance   float64
}

// RepaymentSchedule amortizes the requested loan into equated monthly
// installments, expanding the due dates as a monthly recurrence starting at
// the first repayment month ("YYYY-MM"; defaults to next month when blank).
// During the moratorium only interest falls due; the principal holiday ends
// after moratoriumMonths installments and amortization runs over the full
// tenure from there.
func RepaymentSchedule(principal, annualRatePct, tenureYears float64, moratoriumMonths int, firstDue string) ([]Installment, error) {
	if principal <= 0 {
		return nil, fmt.Errorf("principal must be positive, got %v", principal)
	}

	if tenureYears <= 0 {
		return nil, fmt.Errorf("tenure must be positive, got %v", tenureYears)
	}

	if moratoriumMonths < 0 {
		return nil, fmt.Errorf("moratorium cannot be negative, got %v", moratoriumMonths)
	}

	months := int(math.Round(tenureYears * 12))

	start, err := time.Parse("2006-01", firstDue)
	if err != nil {
		now := time.Now().UTC()
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	}

	installments := moratoriumMonths + months

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.MONTHLY,
		Count:   installments,
		Dtstart: start,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to construct rrule for repayment dates: %v", err.Error())
	}

	dueDates := r.All()

	monthlyRate := annualRatePct / 100 / 12
	payment := principal / float64(months)

	if monthlyRate > 0 {
		f := math.Pow(1+monthlyRate, float64(months))
		payment = principal * monthlyRate * f / (f - 1)
	}

	balance := principal
	schedule := make([]Installment, 0, installments)

	for i, due := range dueDates {
		interest := Round2(balance * monthlyRate)

		// principal holiday: the balance stands still while interest is
		// serviced
		if i < moratoriumMonths {
			schedule = append(schedule, Installment{
				Sequence: i + 1,
				DueDate:  due,
				Payment:  interest,
				Interest: interest,
				Balance:  balance,
			})

			continue
		}

		principalPart := Round2(payment - interest)

		// the final installment absorbs the rounding drift
		if i == installments-1 || principalPart > balance {
			principalPart = Round2(balance)
		}

		balance = Round2(balance - principalPart)

		schedule = append(schedule, Installment{
			Sequence:  i + 1,
			DueDate:   due,
			Payment:   Round2(principalPart + interest),
			Principal: principalPart,
			Interest:  interest,
			Balance:   balance,
		})
	}

	return schedule, nil
}
