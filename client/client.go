// Package client defines the balance lookup performed against chain explorers.
// Implementations live in the provider subpackages.
package client

import (
	"context"

	ac "github.com/cordialsys/addrcheck"
)

// BalanceClient looks up the balance and transaction count of an address on one chain.
type BalanceClient interface {
	FetchBalance(ctx context.Context, address ac.Address) (*ac.Balance, error)
}
