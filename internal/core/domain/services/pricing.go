package services

import (
	"printery/internal/core/domain/model/order"
	"printery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PriceCalculator is the pricing engine of the workflow. It computes the total
// cost of an order from its priced attributes: color mode, side mode, page
// count, and paper format.
//
// Pricing policy (the format-aware one):
//   - base unit price is looked up by (color mode, side mode)
//   - the side mode of a single-page order defaults to single-sided
//   - total = base unit price x page count x format multiplier, in major
//     currency units
//
// All arithmetic runs on decimals; conversion to integer minor units happens
// only at the invoicing boundary via MinorUnits, so rounding error cannot
// compound through the calculation.
//
// The calculator has no side effects and is deterministic: quoting the same
// order twice yields the same result, which is what makes recompute-on-demand
// safe as the single pricing strategy.
//
// Example usage:
//
//	calculator := services.NewPriceCalculator()
//	quote, err := calculator.Quote(order)
//	if err != nil {
//	    // order is missing priced attributes
//	}
//	amount := services.MinorUnits(quote) // e.g. 1500 for 15.00
type PriceCalculator struct {
	baseRates         map[order.ColorMode]map[order.SideMode]decimal.Decimal
	formatMultipliers map[order.PaperFormat]decimal.Decimal
}

// NewPriceCalculator creates a calculator with the fixed print-shop rate table
// (major currency units per page):
//
//	black & white: 10 single-sided, 15 double-sided
//	color:         20 single-sided, 30 double-sided
//
// and format multipliers A5 x1, A4 x1.5, A3 x2, A2 x3.
func NewPriceCalculator() PriceCalculator {
	return PriceCalculator{
		baseRates: map[order.ColorMode]map[order.SideMode]decimal.Decimal{
			order.Monochrome: {
				order.SingleSided: decimal.NewFromInt(10),
				order.DoubleSided: decimal.NewFromInt(15),
			},
			order.Color: {
				order.SingleSided: decimal.NewFromInt(20),
				order.DoubleSided: decimal.NewFromInt(30),
			},
		},
		formatMultipliers: map[order.PaperFormat]decimal.Decimal{
			order.FormatA5: decimal.NewFromInt(1),
			order.FormatA4: decimal.RequireFromString("1.5"),
			order.FormatA3: decimal.NewFromInt(2),
			order.FormatA2: decimal.NewFromInt(3),
		},
	}
}

// Quote computes the order total in major currency units.
//
// Returns a pricing-incomplete error when a required attribute (color mode,
// page count, paper format) is missing. Correct stage sequencing never calls
// Quote before those stages completed, so such an error indicates a broken
// caller, not bad user input.
func (c PriceCalculator) Quote(o *order.Order) (decimal.Decimal, error) {
	if err := o.Validate(); err != nil {
		return decimal.Zero, err
	}

	sideRates, ok := c.baseRates[o.ColorMode()]
	if !ok {
		return decimal.Zero, errs.NewPricingIncompleteError("color mode")
	}

	if o.PageCount() < 1 {
		return decimal.Zero, errs.NewPricingIncompleteError("page count")
	}

	multiplier, ok := c.formatMultipliers[o.PaperFormat()]
	if !ok {
		return decimal.Zero, errs.NewPricingIncompleteError("paper format")
	}

	base, ok := sideRates[o.EffectiveSideMode()]
	if !ok {
		return decimal.Zero, errs.NewPricingIncompleteError("side mode")
	}

	pages := decimal.NewFromInt(int64(o.PageCount()))
	return base.Mul(pages).Mul(multiplier), nil
}

// MinorUnits converts a major-unit quote into integer minor currency units
// (x100), rounding half up. This is the only place where rounding happens.
func MinorUnits(quote decimal.Decimal) int64 {
	return quote.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
