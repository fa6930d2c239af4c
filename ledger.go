package orgbook

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Field names one of the six ledger balances.
type Field string

const (
	FieldCash             Field = "cash"
	FieldBankAccount      Field = "bank_account"
	FieldDeposit          Field = "deposit"
	FieldDirtyMoney       Field = "dirty_money"
	FieldOrgAccount       Field = "org_account"
	FieldTerritoryAccount Field = "territory_account"
)

// Fields lists every ledger field, white side first.
var Fields = []Field{
	FieldCash, FieldBankAccount, FieldDeposit,
	FieldDirtyMoney, FieldOrgAccount, FieldTerritoryAccount,
}

// ParseField parses a wire/flag name into a Field.
func ParseField(s string) (Field, error) {
	for _, f := range Fields {
		if s == string(f) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown ledger field: %q", s)
}

// Kind returns the accounting side the field belongs to.
func (f Field) Kind() Kind {
	switch f {
	case FieldDirtyMoney, FieldOrgAccount, FieldTerritoryAccount:
		return KindBlack
	default:
		return KindWhite
	}
}

// DisplayName returns the human label used in reports.
func (f Field) DisplayName() string {
	switch f {
	case FieldCash:
		return "Cash"
	case FieldBankAccount:
		return "Bank account"
	case FieldDeposit:
		return "Deposit"
	case FieldDirtyMoney:
		return "Dirty money"
	case FieldOrgAccount:
		return "Org account"
	case FieldTerritoryAccount:
		return "Territory account"
	default:
		return string(f)
	}
}

// Operation is one of the three mutations a balance supports.
type Operation string

const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpEdit     Operation = "edit" // set the balance outright
)

// ParseOperation parses a wire/flag name into an Operation.
func ParseOperation(s string) (Operation, error) {
	switch Operation(s) {
	case OpAdd, OpSubtract, OpEdit:
		return Operation(s), nil
	default:
		return "", fmt.Errorf("unknown operation: %q", s)
	}
}

// Ledger holds the six balances of one account. The zero value is a valid
// fresh ledger with everything at zero. All fields stay >= 0 after any
// committed mutation.
type Ledger struct {
	Cash             Money `json:"cash"`
	BankAccount      Money `json:"bank_account"`
	Deposit          Money `json:"deposit"`
	DirtyMoney       Money `json:"dirty_money"`
	OrgAccount       Money `json:"org_account"`
	TerritoryAccount Money `json:"territory_account"`
}

// NewLedger creates an all-zero ledger.
func NewLedger() *Ledger { return &Ledger{} }

// Balance returns the current balance of a field.
func (l *Ledger) Balance(f Field) Money {
	switch f {
	case FieldCash:
		return l.Cash
	case FieldBankAccount:
		return l.BankAccount
	case FieldDeposit:
		return l.Deposit
	case FieldDirtyMoney:
		return l.DirtyMoney
	case FieldOrgAccount:
		return l.OrgAccount
	case FieldTerritoryAccount:
		return l.TerritoryAccount
	default:
		return Money{}
	}
}

func (l *Ledger) setBalance(f Field, m Money) {
	switch f {
	case FieldCash:
		l.Cash = m
	case FieldBankAccount:
		l.BankAccount = m
	case FieldDeposit:
		l.Deposit = m
	case FieldDirtyMoney:
		l.DirtyMoney = m
	case FieldOrgAccount:
		l.OrgAccount = m
	case FieldTerritoryAccount:
		l.TerritoryAccount = m
	}
}

// WhiteTotal sums the legitimate side of the book.
func (l *Ledger) WhiteTotal() Money {
	return l.Cash.Add(l.BankAccount).Add(l.Deposit)
}

// BlackTotal sums the illegitimate side of the book.
func (l *Ledger) BlackTotal() Money {
	return l.DirtyMoney.Add(l.OrgAccount).Add(l.TerritoryAccount)
}

// Total sums both sides.
func (l *Ledger) Total() Money { return l.WhiteTotal().Add(l.BlackTotal()) }

// nextBalance computes the post-mutation balance, validating the amount for
// the given operation. subtract clamps at zero: the overshoot is
// intentionally discarded, not reported.
func nextBalance(before Money, op Operation, amount decimal.Decimal) (Money, error) {
	switch op {
	case OpAdd:
		if !amount.IsPositive() {
			return Money{}, invalid("amount", "must be positive to %s, got %s", op, amount)
		}
		return before.Add(M(amount, before.cur)), nil
	case OpSubtract:
		if !amount.IsPositive() {
			return Money{}, invalid("amount", "must be positive to %s, got %s", op, amount)
		}
		after := before.Sub(M(amount, before.cur))
		if after.IsNegative() {
			after = M(decimal.Zero, before.cur)
		}
		return after, nil
	case OpEdit:
		if amount.IsNegative() {
			return Money{}, invalid("amount", "must not be negative to %s, got %s", op, amount)
		}
		return M(amount, before.cur), nil
	default:
		return Money{}, fmt.Errorf("unknown operation: %q", op)
	}
}

func validateReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return invalid("reason", "must not be empty")
	}
	return nil
}

// Apply mutates a single field and records exactly one journal entry
// capturing the pre/post balances. The reason is required and validated
// before anything changes; on error the ledger and journal are untouched.
func (l *Ledger) Apply(j *Journal, f Field, op Operation, amount decimal.Decimal, reason string) (Entry, error) {
	if err := validateReason(reason); err != nil {
		return Entry{}, err
	}
	before := l.Balance(f)
	if before.cur == "" {
		before.cur = BaseCurrency
	}
	after, err := nextBalance(before, op, amount)
	if err != nil {
		return Entry{}, err
	}
	l.setBalance(f, after)

	// An edit journals the new balance as its amount, the way the finance
	// page always displayed it.
	logged := M(amount, BaseCurrency)
	if op == OpEdit {
		logged = after
	}
	e := newEntry(f.Kind(), op, string(f), logged, reason, before, after)
	j.Record(e)
	return e, nil
}

// GrandTotal is the account's headline figure: both ledger sides plus the
// base value of all currency holdings.
func GrandTotal(l *Ledger, cs Currencies) Money {
	return l.Total().Add(cs.TotalValue())
}
