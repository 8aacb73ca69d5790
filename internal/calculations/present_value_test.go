package calculations

import (
	"errors"
	"math"
	"testing"
)

func TestPresentValue(t *testing.T) {
	tests := []struct {
		name               string
		paymentAmount      float64
		discountRateAnnual float64
		paymentsPerYear    int
		termYears          float64
		want               float64
		tolerance          float64
		wantError          error
	}{
		{
			name:               "five annual payments at 5%",
			paymentAmount:      100000,
			discountRateAnnual: 0.05,
			paymentsPerYear:    1,
			termYears:          5,
			want:               432947.67,
			tolerance:          0.01,
		},
		{
			name:               "zero rate sums payments",
			paymentAmount:      100000,
			discountRateAnnual: 0,
			paymentsPerYear:    1,
			termYears:          5,
			want:               500000,
		},
		{
			name:               "zero rate quarterly",
			paymentAmount:      2500,
			discountRateAnnual: 0,
			paymentsPerYear:    4,
			termYears:          3,
			want:               30000,
		},
		{
			name:               "monthly payments at 6%",
			paymentAmount:      1000,
			discountRateAnnual: 0.06,
			paymentsPerYear:    12,
			termYears:          2,
			want:               22562.87,
			tolerance:          0.01,
		},
		{
			name:               "fractional period dropped",
			paymentAmount:      100000,
			discountRateAnnual: 0,
			paymentsPerYear:    1,
			termYears:          2.9,
			want:               200000,
		},
		{
			name:               "zero frequency",
			paymentAmount:      100000,
			discountRateAnnual: 0.05,
			paymentsPerYear:    0,
			termYears:          5,
			wantError:          ErrDivisionByZero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PresentValue(tt.paymentAmount, tt.discountRateAnnual, tt.paymentsPerYear, tt.termYears)
			if tt.wantError != nil {
				if !errors.Is(err, tt.wantError) {
					t.Fatalf("PresentValue() error = %v, want %v", err, tt.wantError)
				}
				return
			}
			if err != nil {
				t.Fatalf("PresentValue() error = %v", err)
			}
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("PresentValue() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestPresentValueTruncatesPeriods(t *testing.T) {
	whole, err := PresentValue(100000, 0.05, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	fractional, err := PresentValue(100000, 0.05, 1, 2.3)
	if err != nil {
		t.Fatal(err)
	}
	if whole != fractional {
		t.Errorf("expected 2.3 years to discount the same 2 periods as 2 years: %f != %f", fractional, whole)
	}
	if got := Periods(4, 2.6); got != 10 {
		t.Errorf("Periods(4, 2.6) = %d, want 10", got)
	}
}

func TestPresentValueDecreasesWithRate(t *testing.T) {
	for _, freq := range Frequencies() {
		prev := math.Inf(1)
		for i := 0; i <= 100; i++ {
			rate := float64(i) / 100
			pv, err := PresentValue(100000, rate, int(freq), 5)
			if err != nil {
				t.Fatal(err)
			}
			if pv >= prev {
				t.Fatalf("frequency %s: pv at rate %.2f = %f, not below %f", freq, rate, pv, prev)
			}
			prev = pv
		}
	}
}

func TestPresentValueZeroRateIsExact(t *testing.T) {
	for _, freq := range Frequencies() {
		for years := 1; years <= 30; years++ {
			pv, err := PresentValue(1234.5, 0, int(freq), float64(years))
			if err != nil {
				t.Fatal(err)
			}
			want := 1234.5 * float64(years) * float64(freq)
			if math.Abs(pv-want) > 1e-6 {
				t.Errorf("frequency %s, %d years: pv = %f, want %f", freq, years, pv, want)
			}
		}
	}
}
