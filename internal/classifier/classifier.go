package classifier

import (
	"gdreport/internal/sheet"
	"gdreport/pkg/contracts/domain"
)

// Classifier recognizes and transforms rows of one project family.
type Classifier interface {
	// Name identifies the classifier in logs.
	Name() string

	// Matches is the cheap membership test. It must not mutate the row.
	Matches(row sheet.Row, ctx domain.Context) bool

	// Process transforms a matched row. Exactly one of the results is
	// non-nil: a canonical row, or the rejection explaining its exclusion.
	Process(row sheet.Row, ctx domain.Context) (*domain.BillingRow, *domain.Rejection)
}

// Chain is the ordered classifier set. Order is part of the contract: EGS
// carries exclusive columns that would also satisfy the standard matcher.
type Chain []Classifier

// NewChain returns the production classifier chain in priority order.
func NewChain() Chain {
	return Chain{
		NewEGS(),
		NewEraVerde(),
		NewStandard(),
	}
}

// Match returns the first classifier accepting the row, or false when none
// does.
func (c Chain) Match(row sheet.Row, ctx domain.Context) (Classifier, bool) {
	for _, cl := range c {
		if cl.Matches(row, ctx) {
			return cl, true
		}
	}
	return nil, false
}

// Dispatch runs the full match-then-process step as a pure function. When
// no classifier accepts the row both results are nil and ok is false.
func (c Chain) Dispatch(row sheet.Row, ctx domain.Context) (out *domain.BillingRow, rej *domain.Rejection, ok bool) {
	cl, ok := c.Match(row, ctx)
	if !ok {
		return nil, nil, false
	}
	out, rej = cl.Process(row, ctx)
	return out, rej, true
}
