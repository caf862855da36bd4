package addrcheck

// Balance is what an explorer reports for an address.
type Balance struct {
	Address Address   `json:"address" yaml:"address" toml:"address"`
	Chain   ChainType `json:"chain" yaml:"chain" toml:"chain"`
	// In the chain's smallest unit
	Balance AmountBlockchain `json:"balance" yaml:"balance" toml:"balance"`
	// In whole coins
	BalanceHuman     AmountHumanReadable `json:"balance_human" yaml:"balance_human" toml:"balance_human"`
	TransactionCount uint64              `json:"transaction_count" yaml:"transaction_count" toml:"transaction_count"`
}

// NewBalance converts the raw amount to whole coins using the chain's decimals.
func NewBalance(address Address, chain ChainType, amount AmountBlockchain, txCount uint64) *Balance {
	decimals := int32(8)
	if info, ok := chain.Info(); ok {
		decimals = info.Decimals
	}
	return &Balance{
		Address:          address,
		Chain:            chain,
		Balance:          amount,
		BalanceHuman:     amount.ToHuman(decimals),
		TransactionCount: txCount,
	}
}

// ZeroBalance is reported when the explorer could not be reached.
func ZeroBalance(address Address, chain ChainType) *Balance {
	return NewBalance(address, chain, NewAmountBlockchainFromUint64(0), 0)
}
