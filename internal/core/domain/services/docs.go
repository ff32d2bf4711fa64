// Package services contains stateless domain services that implement business
// logic spanning the order aggregate. The only service is the PriceCalculator,
// the pure pricing engine of the workflow: every summary, invoice, and payment
// confirmation recomputes the total from the order's current fields through
// it, so a stale cached price can never be shown or charged.
package services
