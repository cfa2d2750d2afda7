package mortgage

import (
	"fmt"

	"github.com/hypotheca/mortgage-forecast/pkg/constants"
)

// Kind selects the repayment structure of a mortgage.
type Kind int

const (
	// Linear repays a constant principal amount each month; the total
	// payment declines over the term.
	Linear Kind = iota

	// Annuity repays a constant gross amount each month; the principal
	// portion grows as the interest portion shrinks.
	Annuity
)

// String returns the lowercase name used in configuration files.
func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Annuity:
		return "annuity"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind converts a configuration string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "linear":
		return Linear, nil
	case "annuity":
		return Annuity, nil
	default:
		return 0, fmt.Errorf("%w: expected mortgage type of linear or annuity, got %q", ErrInvalidInput, s)
	}
}

// Mortgage wraps an immutable set of loan terms with a repayment Kind and
// exposes a uniform schedule contract over both amortization engines.
// Schedules are recomputed on every call; instances hold no other state.
type Mortgage struct {
	Kind         Kind
	Principal    float64
	InterestRate float64
	Years        int
	Policy       Policy
}

// New validates the loan terms and constructs a Mortgage using the
// default interest deductibility policy.
func New(kind Kind, principal, interestRate float64, years int) (*Mortgage, error) {
	if err := validateTerms(principal, interestRate, years); err != nil {
		return nil, err
	}
	return &Mortgage{
		Kind:         kind,
		Principal:    principal,
		InterestRate: interestRate,
		Years:        years,
		Policy:       DefaultPolicy,
	}, nil
}

// Months returns the number of monthly periods in the term.
func (m *Mortgage) Months() int {
	return m.Years * constants.MonthsPerYear
}

// MonthlyPayments returns the net payment due for each month of the term.
func (m *Mortgage) MonthlyPayments() ([]float64, error) {
	switch m.Kind {
	case Linear:
		return m.Policy.LinearPayments(m.Principal, m.InterestRate, m.Years)
	case Annuity:
		return m.Policy.AnnuityPayments(m.Principal, m.InterestRate, m.Years)
	default:
		return nil, fmt.Errorf("%w: unknown mortgage kind %d", ErrInvalidInput, int(m.Kind))
	}
}

// RemainingPrincipal returns the balance entering each month of the term.
func (m *Mortgage) RemainingPrincipal() ([]float64, error) {
	switch m.Kind {
	case Linear:
		return LinearRemainingPrincipal(m.Principal, m.Years)
	case Annuity:
		return AnnuityRemainingPrincipal(m.Principal, m.InterestRate, m.Years)
	default:
		return nil, fmt.Errorf("%w: unknown mortgage kind %d", ErrInvalidInput, int(m.Kind))
	}
}
