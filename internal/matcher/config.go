// Package matcher implements the deterministic rule-based engine that
// reconciles Purchase Register invoices against GSTR-2B statement entries.
//
// Matching rules, in priority order:
//  1. Exact match: GSTIN + invoice number + all gating amounts
//  2. Amount mismatch: GSTIN + invoice number match, amounts differ
//  3. GSTIN mismatch: invoice number + amounts match, GSTIN differs
//  4. PR only / GSTR-2B only: no counterpart on the other side
//
// The engine is deterministic (same inputs, byte-identical outputs),
// auditable (every result names the rule that fired) and total (every input
// invoice appears in exactly one result).
package matcher

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Config holds the tolerance parameters for amount comparison.
type Config struct {
	// AbsoluteTolerance is the maximum absolute difference, in currency
	// units, under which two amounts are considered equal. Covers rounding.
	AbsoluteTolerance decimal.Decimal

	// RelativeTolerance is the maximum relative difference for amounts above
	// the materiality threshold, expressed as a fraction (0.01 = 1%).
	RelativeTolerance decimal.Decimal

	// MaterialityThreshold is the amount above which relative tolerance
	// applies instead of absolute tolerance, for fields that opt into it.
	MaterialityThreshold decimal.Decimal
}

// DefaultConfig returns the standard tolerances: 1.00 currency unit absolute,
// 1% relative above a 10,000 materiality threshold.
func DefaultConfig() Config {
	return Config{
		AbsoluteTolerance:    decimal.NewFromFloat(1.00),
		RelativeTolerance:    decimal.NewFromFloat(0.01),
		MaterialityThreshold: decimal.NewFromInt(10000),
	}
}

// Validate checks that the configuration values are usable.
func (c Config) Validate() error {
	if c.AbsoluteTolerance.IsNegative() {
		return fmt.Errorf("absolute tolerance cannot be negative: %s", c.AbsoluteTolerance)
	}
	if c.RelativeTolerance.IsNegative() || c.RelativeTolerance.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("relative tolerance must be within [0,1]: %s", c.RelativeTolerance)
	}
	if c.MaterialityThreshold.IsNegative() {
		return fmt.Errorf("materiality threshold cannot be negative: %s", c.MaterialityThreshold)
	}
	return nil
}

// AmountsEqual reports whether two amounts match within tolerance.
// With useRelative set and either amount above the materiality threshold,
// the relative tolerance applies; otherwise the absolute tolerance does.
func (c Config) AmountsEqual(a, b decimal.Decimal, useRelative bool) bool {
	diff := a.Sub(b).Abs()

	if useRelative && (a.GreaterThan(c.MaterialityThreshold) || b.GreaterThan(c.MaterialityThreshold)) {
		maxVal := decimal.Max(a, b)
		if maxVal.IsPositive() {
			return diff.Div(maxVal).LessThanOrEqual(c.RelativeTolerance)
		}
	}

	return diff.LessThanOrEqual(c.AbsoluteTolerance)
}
