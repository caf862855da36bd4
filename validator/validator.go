// Package validator decides whether a string is a valid address of a chain.
//
// A Validator holds only configuration; every call is independent and a single
// Validator may be shared between goroutines.
package validator

import (
	"time"

	ac "github.com/cordialsys/addrcheck"
	"github.com/cordialsys/addrcheck/chain/bitcoin"
	"github.com/cordialsys/addrcheck/chain/bitcoin_cash"
	"github.com/cordialsys/addrcheck/chain/dogecoin"
	"github.com/cordialsys/addrcheck/chain/ethereum"
	"github.com/cordialsys/addrcheck/chain/litecoin"
	"github.com/cordialsys/addrcheck/codec/eip55"
	"github.com/cordialsys/addrcheck/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// MinAddressLength is the shortest address accepted for any chain.
const MinAddressLength = 25

type Validator struct {
	checksumHash eip55.Hash
	now          func() time.Time
	metrics      *metrics
}

type Option func(v *Validator)

// WithChecksumHash selects the hash used to report Ethereum checksum casing.
func WithChecksumHash(hash eip55.Hash) Option {
	return func(v *Validator) {
		v.checksumHash = hash
	}
}

// WithClock replaces time.Now for result timestamps.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

// WithMetrics counts validations and detections on the registerer.
func WithMetrics(registerer prometheus.Registerer) Option {
	return func(v *Validator) {
		v.metrics = newMetrics(registerer)
	}
}

func New(options ...Option) *Validator {
	v := &Validator{
		checksumHash: eip55.Keccak256,
		now:          time.Now,
	}
	for _, opt := range options {
		opt(v)
	}
	if !v.checksumHash.Valid() {
		panic("validator: invalid checksum hash " + string(v.checksumHash))
	}
	return v
}

func (v *Validator) ChecksumHash() eip55.Hash {
	return v.checksumHash
}

// ValidateAddress never fails: malformed input produces a result with IsValid=false
// and an error message. The result keeps the address as supplied, untrimmed.
func (v *Validator) ValidateAddress(address ac.Address, chain ac.ChainType) *ac.ValidationResult {
	details, err := v.validate(address.Normalize(), chain)

	var result *ac.ValidationResult
	if err != nil {
		kind := errors.KindOf(err)
		result = ac.NewInvalidResult(address, chain, string(kind), err.Error(), v.now())
		result.ErrorCategory = string(kind.Category())
	} else {
		result = ac.NewValidResult(address, chain, details, v.now())
	}

	logrus.WithFields(logrus.Fields{
		"chain": chain,
		"valid": result.IsValid,
		"kind":  result.ErrorKind,
	}).Debug("validated address")
	v.metrics.observeValidation(result)
	return result
}

func (v *Validator) validate(address ac.Address, chain ac.ChainType) (ac.Details, error) {
	if len(address) == 0 {
		return nil, errors.Errorf(errors.Empty, "address cannot be empty")
	}
	if len(address) < MinAddressLength {
		return nil, errors.Errorf(errors.TooShort, "address must be at least %d characters, got %d", MinAddressLength, len(address))
	}

	switch chain {
	case ac.Unknown:
		return nil, errors.Errorf(errors.UnsupportedChain, "could not detect chain of address")
	case ac.Bitcoin:
		return bitcoin.ValidateAddress(address)
	case ac.Ethereum:
		return ethereum.ValidateAddressWithHash(address, v.checksumHash)
	case ac.Litecoin:
		return litecoin.ValidateAddress(address)
	case ac.BitcoinCash:
		return bitcoin_cash.ValidateAddress(address)
	case ac.Dogecoin:
		return dogecoin.ValidateAddress(address)
	default:
		return nil, errors.Errorf(errors.UnsupportedChain, "unsupported chain: %q", chain)
	}
}

var defaultValidator = New()

// ValidateAddress validates with the default settings (Keccak-256 checksums, no metrics).
func ValidateAddress(address ac.Address, chain ac.ChainType) *ac.ValidationResult {
	return defaultValidator.ValidateAddress(address, chain)
}

// DetectChain guesses the chain with the default validator.
func DetectChain(address ac.Address) ac.ChainType {
	return defaultValidator.DetectChain(address)
}
