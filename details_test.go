package addrcheck_test

import (
	"encoding/json"
	"time"

	. "github.com/cordialsys/addrcheck"
	"gopkg.in/yaml.v3"
)

func (s *AddrcheckTestSuite) TestDetailsOrder() {
	require := s.Require()
	details := NewDetails(
		DetailEncoding, "bech32",
		DetailHrp, "bc",
		DetailType, "p2wpkh",
	)
	require.Equal([]string{"encoding", "hrp", "type"}, details.Keys())

	replaced := details.With(DetailHrp, "ltc")
	require.Equal([]string{"encoding", "hrp", "type"}, replaced.Keys())
	hrp, ok := replaced.Get(DetailHrp)
	require.True(ok)
	require.Equal("ltc", hrp)

	// original is untouched
	hrp, _ = details.Get(DetailHrp)
	require.Equal("bc", hrp)

	_, ok = details.Get("missing")
	require.False(ok)

	require.Panics(func() { NewDetails("odd") })
}

func (s *AddrcheckTestSuite) TestDetailsJson() {
	require := s.Require()
	details := NewDetails("type", "EOA", "format", "checksum")
	bz, err := json.Marshal(details)
	require.NoError(err)
	require.Equal(`{"type":"EOA","format":"checksum"}`, string(bz))

	var decoded Details
	require.NoError(json.Unmarshal([]byte(`{"z":"1","a":"2"}`), &decoded))
	require.Equal([]string{"z", "a"}, decoded.Keys())

	require.NoError(json.Unmarshal([]byte(`null`), &decoded))
	require.Nil(decoded)

	require.Error(json.Unmarshal([]byte(`["a"]`), &decoded))
	require.Error(json.Unmarshal([]byte(`{"a":1}`), &decoded))
}

func (s *AddrcheckTestSuite) TestDetailsYaml() {
	require := s.Require()
	details := NewDetails("encoding", "base58check", "type", "p2pkh")
	bz, err := yaml.Marshal(details)
	require.NoError(err)
	require.Equal("encoding: base58check\ntype: p2pkh\n", string(bz))

	var decoded Details
	require.NoError(yaml.Unmarshal([]byte("type: p2sh\nencoding: base58check\n"), &decoded))
	require.Equal([]string{"type", "encoding"}, decoded.Keys())
}

func (s *AddrcheckTestSuite) TestResultJson() {
	require := s.Require()
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	valid := NewValidResult(" 1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", Bitcoin, NewDetails("encoding", "base58check"), ts)
	bz, err := json.Marshal(valid)
	require.NoError(err)
	require.JSONEq(`{
		"isValid": true,
		"address": " 1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
		"chain": "bitcoin",
		"details": {"encoding": "base58check"},
		"timestamp": "2024-01-02T03:04:05Z"
	}`, string(bz))

	invalid := NewInvalidResult("", Bitcoin, "Empty", "Empty: address cannot be empty", ts)
	bz, err = json.Marshal(invalid)
	require.NoError(err)
	require.JSONEq(`{
		"isValid": false,
		"address": "",
		"chain": "bitcoin",
		"errorMessage": "Empty: address cannot be empty",
		"errorKind": "Empty",
		"timestamp": "2024-01-02T03:04:05Z"
	}`, string(bz))

	require.True(valid.Equivalent(NewValidResult(valid.Address, Bitcoin, NewDetails("encoding", "base58check"), time.Now())))
	require.False(valid.Equivalent(invalid))
	require.NotNil(NewValidResult("x", Bitcoin, nil, ts).Details)
}
