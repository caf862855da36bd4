package addrcheck_test

import (
	"encoding/json"

	. "github.com/cordialsys/addrcheck"
	"github.com/shopspring/decimal"
)

func (s *AddrcheckTestSuite) TestNewAmountBlockchainFromUint64() {
	require := s.Require()
	amount := NewAmountBlockchainFromUint64(123)
	require.Equal(amount.Uint64(), uint64(123))
	require.Equal(amount.String(), "123")
}

func (s *AddrcheckTestSuite) TestAmountHumanReadable() {
	require := s.Require()
	amountDec, _ := decimal.NewFromString("10.3")
	amount := AmountHumanReadable(amountDec)
	require.Equal(amount.String(), "10.3")
}

func (s *AddrcheckTestSuite) TestNewAmountHumanReadableFromStr() {
	require := s.Require()
	amount, err := NewAmountHumanReadableFromStr("10.3")
	require.NoError(err)
	require.Equal(amount.String(), "10.3")

	amount, err = NewAmountHumanReadableFromStr("")
	require.Error(err)
	require.Equal(amount.String(), "0")

	_, err = NewAmountHumanReadableFromStr("invalid")
	require.Error(err)
}

func (s *AddrcheckTestSuite) TestNewBlockchainAmountStr() {
	require := s.Require()
	amount := NewAmountBlockchainFromStr("10")
	require.EqualValues(amount.Uint64(), 10)

	amount = NewAmountBlockchainFromStr("10.1")
	require.EqualValues(amount.Uint64(), 0)

	amount = NewAmountBlockchainFromStr("0x10")
	require.EqualValues(amount.Uint64(), 16)
}

func (s *AddrcheckTestSuite) TestSatoshiToHuman() {
	require := s.Require()
	amount := NewAmountBlockchainFromUint64(6_891_201)
	require.Equal("0.06891201", amount.ToHuman(8).String())

	wei := NewAmountBlockchainFromStr("1500000000000000000")
	require.Equal("1.5", wei.ToHuman(18).String())

	human, _ := NewAmountHumanReadableFromStr("0.06891201")
	back := human.ToBlockchain(8)
	require.Equal("6891201", back.String())
}

func (s *AddrcheckTestSuite) TestAmountJson() {
	require := s.Require()
	amount := NewAmountBlockchainFromUint64(42)
	bz, err := json.Marshal(amount)
	require.NoError(err)
	require.Equal(`"42"`, string(bz))

	var decoded AmountBlockchain
	require.NoError(json.Unmarshal([]byte(`"0x2a"`), &decoded))
	require.EqualValues(42, decoded.Uint64())
	require.Error(json.Unmarshal([]byte(`"abc"`), &decoded))
}
