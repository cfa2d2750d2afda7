package mortgage

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Kind
		expectErr bool
	}{
		{name: "Linear", input: "linear", expected: Linear},
		{name: "Annuity", input: "annuity", expected: Annuity},
		{name: "Unknown", input: "balloon", expectErr: true},
		{name: "Empty", input: "", expectErr: true},
		{name: "Uppercase is rejected", input: "Linear", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := ParseKind(tt.input)
			if tt.expectErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("ParseKind(%q) error = %v, expected ErrInvalidInput", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKind(%q) unexpected error: %v", tt.input, err)
			}
			if kind != tt.expected {
				t.Errorf("ParseKind(%q) = %v, expected %v", tt.input, kind, tt.expected)
			}
			if kind.String() != tt.input {
				t.Errorf("Kind.String() = %q, expected %q", kind.String(), tt.input)
			}
		})
	}
}

func TestMortgageDispatch(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
	}{
		{name: "Linear mortgage", kind: Linear},
		{name: "Annuity mortgage", kind: Annuity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.kind, 300000, 0.04, 30)
			if err != nil {
				t.Fatalf("New() unexpected error: %v", err)
			}

			if m.Months() != 360 {
				t.Errorf("Months() = %d, expected 360", m.Months())
			}

			payments, err := m.MonthlyPayments()
			if err != nil {
				t.Fatalf("MonthlyPayments() unexpected error: %v", err)
			}
			remaining, err := m.RemainingPrincipal()
			if err != nil {
				t.Fatalf("RemainingPrincipal() unexpected error: %v", err)
			}

			if len(payments) != 360 || len(remaining) != 360 {
				t.Fatalf("schedule lengths = %d, %d, expected 360", len(payments), len(remaining))
			}

			// Dispatch matches the underlying engine exactly.
			var expected []float64
			switch tt.kind {
			case Linear:
				expected, err = DefaultPolicy.LinearPayments(300000, 0.04, 30)
			case Annuity:
				expected, err = DefaultPolicy.AnnuityPayments(300000, 0.04, 30)
			}
			if err != nil {
				t.Fatalf("engine call unexpected error: %v", err)
			}
			for i := range expected {
				if payments[i] != expected[i] {
					t.Fatalf("payment %d = %v, engine returned %v", i, payments[i], expected[i])
				}
			}

			if remaining[0] != 300000 {
				t.Errorf("remaining[0] = %v, expected the full principal", remaining[0])
			}
		})
	}
}

func TestMortgageValidatesOnConstruction(t *testing.T) {
	if _, err := New(Annuity, -1, 0.04, 30); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("New() error = %v, expected ErrInvalidInput", err)
	}
	if _, err := New(Linear, 100000, 0.04, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("New() error = %v, expected ErrInvalidInput", err)
	}
}

func TestUnknownKindFailsAtDispatch(t *testing.T) {
	m := &Mortgage{Kind: Kind(99), Principal: 100000, InterestRate: 0.04, Years: 10, Policy: DefaultPolicy}

	if _, err := m.MonthlyPayments(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("MonthlyPayments() error = %v, expected ErrInvalidInput", err)
	}
	if _, err := m.RemainingPrincipal(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("RemainingPrincipal() error = %v, expected ErrInvalidInput", err)
	}
}
