package orgbook

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Launder converts the entire dirty-money balance into cash at the given
// percentage. The credited amount is floor(dirty * pct/100); the remainder
// above it is destroyed with the balance, not returned. Exactly one journal
// entry is recorded, and its amount is the full pre-conversion dirty
// balance (what was destroyed), not the amount credited.
func Launder(l *Ledger, j *Journal, pct Percent) (Money, error) {
	if err := ValidateLaunderingPercent(pct); err != nil {
		return Money{}, err
	}
	dirty := l.DirtyMoney
	if dirty.cur == "" {
		dirty.cur = BaseCurrency
	}
	if !dirty.IsPositive() {
		return Money{}, ErrNothingToLaunder
	}

	laundered := dirty.MulDec(pct.Fraction()).Floor()
	l.DirtyMoney = M(decimal.Zero, BaseCurrency)
	l.Cash = l.Cash.Add(laundered)

	reason := fmt.Sprintf("Laundered %s of %s dirty money", pct, dirty)
	e := newEntry(KindLaundering, OpAdd, string(FieldDirtyMoney), dirty, reason, dirty, l.DirtyMoney)
	j.Record(e)
	return laundered, nil
}

// LaunderPreview returns what a conversion at the given percentage would
// credit, without touching any state.
func LaunderPreview(l *Ledger, pct Percent) Money {
	return l.DirtyMoney.MulDec(pct.Fraction()).Floor()
}
