package testutil

import (
	ac "github.com/cordialsys/addrcheck"
)

func HumanToBlockchain(amount string, decimals int) ac.AmountBlockchain {
	h, err := ac.NewAmountHumanReadableFromStr(amount)
	if err != nil {
		panic(err)
	}
	return h.ToBlockchain(int32(decimals))
}
