package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// swagger:enum AccountKind
type AccountKind string

const (
	KindAsset     AccountKind = "asset"
	KindLiability AccountKind = "liability"
)

// Valid reports if the kind is known.
func (k AccountKind) Valid() bool {
	return k == KindAsset || k == KindLiability
}

// Names of the accounts used by the cash-flow workflows.
const (
	AccountBank            = "Bank balance"
	AccountCash            = "Cash registers"
	AccountReceivables     = "Receivables"
	AccountChecksPortfolio = "Checks in portfolio"
	AccountChecksPending   = "Checks pending collection"
	AccountPayables        = "Payables"
	AccountChecksPayable   = "Checks payable"
)

// AccountKinds maps the workflow accounts to their kind.
var AccountKinds = map[string]AccountKind{
	AccountBank:            KindAsset,
	AccountCash:            KindAsset,
	AccountReceivables:     KindAsset,
	AccountChecksPortfolio: KindAsset,
	AccountChecksPending:   KindAsset,
	AccountPayables:        KindLiability,
	AccountChecksPayable:   KindLiability,
}

// Account is a named ledger bucket.
//
// The balance always equals the sum of the amounts of the account's
// transactions. It is only ever written by the ledger.
type Account struct {
	DefaultModel
	Name    string          `json:"name" gorm:"not null" example:"Bank balance"`
	NameKey string          `json:"-" gorm:"uniqueIndex;not null"`
	Kind    AccountKind     `json:"kind" gorm:"not null" example:"asset"`
	Balance decimal.Decimal `json:"balance" gorm:"<-:create;type:DECIMAL(20,8);not null;default:0" example:"1520.75"` // Sum of the amounts of all transactions of the account
}

func (a Account) Self() string {
	return "Account"
}

// BeforeSave normalizes the name key and validates the kind.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.Join(strings.Fields(a.Name), " ")
	if a.Name == "" {
		return ErrAccountNameEmpty
	}

	if !a.Kind.Valid() {
		return ErrAccountKindInvalid
	}

	a.NameKey = NameKey(a.Name)
	return nil
}

// NameKey returns the normalized form of an account name: surrounding
// whitespace trimmed, inner whitespace collapsed and lower case.
func NameKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
