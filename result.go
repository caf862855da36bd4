package addrcheck

import (
	"time"
)

// Keys used in Details
const (
	DetailEncoding       = "encoding"
	DetailVariant        = "variant"
	DetailHrp            = "hrp"
	DetailType           = "type"
	DetailFormat         = "format"
	DetailVersion        = "version"
	DetailWitnessVersion = "witness_version"
	DetailChecksumHash   = "checksum_hash"
)

// ValidationResult is the outcome of validating one address for one chain.
// ErrorMessage, ErrorKind and ErrorCategory are set if and only if IsValid is false; Details only when it is true.
type ValidationResult struct {
	IsValid bool `json:"isValid" yaml:"is_valid" toml:"is_valid"`
	// The address exactly as it was supplied, before trimming
	Address       Address   `json:"address" yaml:"address" toml:"address"`
	Chain         ChainType `json:"chain" yaml:"chain" toml:"chain"`
	ErrorMessage  string    `json:"errorMessage,omitempty" yaml:"error_message,omitempty" toml:"error_message,omitempty"`
	ErrorKind     string    `json:"errorKind,omitempty" yaml:"error_kind,omitempty" toml:"error_kind,omitempty"`
	ErrorCategory string    `json:"errorCategory,omitempty" yaml:"error_category,omitempty" toml:"error_category,omitempty"`
	Details       Details   `json:"details,omitempty" yaml:"details,omitempty" toml:"details,omitempty"`
	Timestamp     time.Time `json:"timestamp" yaml:"timestamp" toml:"timestamp"`
}

func NewValidResult(address Address, chain ChainType, details Details, timestamp time.Time) *ValidationResult {
	if details == nil {
		details = Details{}
	}
	return &ValidationResult{
		IsValid:   true,
		Address:   address,
		Chain:     chain,
		Details:   details,
		Timestamp: timestamp,
	}
}

func NewInvalidResult(address Address, chain ChainType, kind string, message string, timestamp time.Time) *ValidationResult {
	return &ValidationResult{
		IsValid:      false,
		Address:      address,
		Chain:        chain,
		ErrorMessage: message,
		ErrorKind:    kind,
		Timestamp:    timestamp,
	}
}

// Equivalent compares two results ignoring the timestamp.
func (result *ValidationResult) Equivalent(other *ValidationResult) bool {
	if result == nil || other == nil {
		return result == other
	}
	if result.IsValid != other.IsValid ||
		result.Address != other.Address ||
		result.Chain != other.Chain ||
		result.ErrorMessage != other.ErrorMessage ||
		result.ErrorKind != other.ErrorKind ||
		result.ErrorCategory != other.ErrorCategory ||
		len(result.Details) != len(other.Details) {
		return false
	}
	for i := range result.Details {
		if result.Details[i] != other.Details[i] {
			return false
		}
	}
	return true
}
