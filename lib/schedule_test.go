package lib

import (
	"math"
	"testing"
	"time"
)

func TestRepaymentScheduleEMI(t *testing.T) {
	schedule, err := RepaymentSchedule(1000000, 12, 1, 0, "2026-04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(schedule) != 12 {
		t.Fatalf("installments = %v, want 12", len(schedule))
	}

	// 10L at 12% over 12 months amortizes at 88,848.79/month
	if got := schedule[0].Payment; math.Abs(got-88848.79) > 0.01 {
		t.Errorf("first payment = %v, want 88848.79", got)
	}

	// first month's interest is 1% of the opening balance
	if got := schedule[0].Interest; math.Abs(got-10000) > 0.01 {
		t.Errorf("first interest = %v, want 10000", got)
	}

	if got := schedule[len(schedule)-1].Balance; math.Abs(got) > 0.01 {
		t.Errorf("final balance = %v, want 0", got)
	}
}

func TestRepaymentScheduleDueDates(t *testing.T) {
	schedule, err := RepaymentSchedule(600000, 10, 0.5, 0, "2026-07")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(schedule) != 6 {
		t.Fatalf("installments = %v, want 6", len(schedule))
	}

	want := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)

	for i, in := range schedule {
		if !in.DueDate.Equal(want) {
			t.Errorf("installment %v due %v, want %v", i+1, in.DueDate, want)
		}

		want = want.AddDate(0, 1, 0)
	}
}

func TestRepaymentScheduleZeroRate(t *testing.T) {
	schedule, err := RepaymentSchedule(120000, 0, 1, 0, "2026-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, in := range schedule {
		if math.Abs(in.Payment-10000) > 0.01 {
			t.Errorf("installment %v payment = %v, want 10000", i+1, in.Payment)
		}

		if math.Abs(in.Interest) > 0.01 {
			t.Errorf("installment %v interest = %v, want 0", i+1, in.Interest)
		}
	}

	if got := schedule[len(schedule)-1].Balance; math.Abs(got) > 0.01 {
		t.Errorf("final balance = %v, want 0", got)
	}
}

func TestRepaymentScheduleMoratorium(t *testing.T) {
	schedule, err := RepaymentSchedule(1000000, 12, 1, 3, "2026-04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(schedule) != 15 {
		t.Fatalf("installments = %v, want 15", len(schedule))
	}

	// the principal holiday services interest only
	for i := 0; i < 3; i++ {
		if schedule[i].Principal != 0 {
			t.Errorf("installment %v principal = %v, want 0", i+1, schedule[i].Principal)
		}

		if math.Abs(schedule[i].Payment-10000) > 0.01 {
			t.Errorf("installment %v payment = %v, want 10000", i+1, schedule[i].Payment)
		}

		if math.Abs(schedule[i].Balance-1000000) > 0.01 {
			t.Errorf("installment %v balance = %v, want 1000000", i+1, schedule[i].Balance)
		}
	}

	// amortization starts from the untouched balance once the holiday ends
	if got := schedule[3].Payment; math.Abs(got-88848.79) > 0.01 {
		t.Errorf("first amortizing payment = %v, want 88848.79", got)
	}

	if got := schedule[len(schedule)-1].Balance; math.Abs(got) > 0.01 {
		t.Errorf("final balance = %v, want 0", got)
	}
}

func TestRepaymentScheduleRejectsBadInputs(t *testing.T) {
	if _, err := RepaymentSchedule(0, 12, 5, 0, "2026-01"); err == nil {
		t.Error("expected an error for a zero principal")
	}

	if _, err := RepaymentSchedule(1000000, 12, 0, 0, "2026-01"); err == nil {
		t.Error("expected an error for a zero tenure")
	}

	if _, err := RepaymentSchedule(1000000, 12, 5, -1, "2026-01"); err == nil {
		t.Error("expected an error for a negative moratorium")
	}
}
