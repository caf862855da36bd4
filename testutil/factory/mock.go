package testutil

import (
	"context"

	ac "github.com/cordialsys/addrcheck"
	"github.com/cordialsys/addrcheck/client"
	"github.com/stretchr/testify/mock"
)

// MockedClient is a BalanceClient driven by testify expectations
type MockedClient struct {
	mock.Mock
}

var _ client.BalanceClient = &MockedClient{}

// FetchBalance fetches balance, mocked
func (m *MockedClient) FetchBalance(ctx context.Context, address ac.Address) (*ac.Balance, error) {
	args := m.Called(ctx, address)
	balance, _ := args.Get(0).(*ac.Balance)
	return balance, args.Error(1)
}
