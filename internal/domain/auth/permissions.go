package auth

const (
	ScopeTaxCalculate      = "tax.calculate"
	ScopeHousingCalculate  = "housing.calculate"
	ScopeMortgageCalculate = "mortgage.calculate"
	ScopeMortgageStatement = "mortgage.statement"
	ScopeMetricsRead       = "metrics.read"
)

// DefaultScopes covers the calculator API. ScopeMetricsRead is granted separately to operators.

var DefaultScopes = []string{
	ScopeTaxCalculate,
	ScopeHousingCalculate,
	ScopeMortgageCalculate,
	ScopeMortgageStatement,
}

// Caller is the authenticated client attached to a request.
type Caller struct {
	Subject string
	Scopes  []string
}

func (c Caller) HasScope(scope string) bool {
	for _, candidate := range c.Scopes {
		if candidate == scope {
			return true
		}
	}
	return false
}
