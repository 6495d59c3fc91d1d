package models

import (
	"errors"
	"strings"
)

// Kind tags which collection a record comes from. It decides the category registry
// and the sign a record carries in a balance.
type Kind string

const (
	KindExpense Kind = "expense"
	KindEarning Kind = "earning"
)

var ErrInvalidKind = errors.New("kind must be expense or earning")

// AllKinds lists kinds in merge order.
func AllKinds() []Kind {
	return []Kind{KindExpense, KindEarning}
}

func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindExpense:
		return KindExpense, nil
	case KindEarning:
		return KindEarning, nil
	default:
		return "", ErrInvalidKind
	}
}

func (k Kind) IsValid() bool {
	return k == KindExpense || k == KindEarning
}

// TableName returns the store collection that holds records of this kind.
func (k Kind) TableName() string {
	switch k {
	case KindExpense:
		return "expenses"
	case KindEarning:
		return "earnings"
	default:
		return ""
	}
}

func (k Kind) String() string {
	return string(k)
}
