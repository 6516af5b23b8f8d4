package account

import (
	"strings"

	"github.com/Jeffry-N/Beiruti-Fade/internal/httperr"
)

// ===============================
// Account Kind
// ===============================

type Kind string

const (
	KindCustomer Kind = "customer"
	KindBarber   Kind = "barber"
)

// ParseKind validates a request-supplied account type against the closed
// enumeration. Anything else is rejected before it can reach a statement.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindCustomer:
		return KindCustomer, nil
	case KindBarber:
		return KindBarber, nil
	}
	return "", httperr.ErrBusiness("invalid_account_kind")
}

// Table returns the fixed table name for the kind. Identifiers only ever come
// from this closed set, never from request input.
func (k Kind) Table() string {
	if k == KindBarber {
		return "barbers"
	}
	return "customers"
}
