package config

import (
	"strings"
)

// Secret references a credential instead of holding it, e.g. "env:ETHERSCAN_API_KEY".
// GetSecret lists the supported sources.
type Secret string

type SecretType string

const (
	Env   SecretType = "env"
	File  SecretType = "file"
	Vault SecretType = "vault"
	Raw   SecretType = "raw"
)

// Type is the source of the secret, or "" if the reference has no known source.
func (s Secret) Type() SecretType {
	source, _, _ := strings.Cut(string(s), ":")
	switch SecretType(source) {
	case Env, File, Vault, Raw:
		return SecretType(source)
	}
	return ""
}

// Redacted is the reference as it may be logged. Raw values and references
// without a known source are hidden.
func (s Secret) Redacted() string {
	if s == "" {
		return ""
	}
	switch s.Type() {
	case "", Raw:
		return "<REDACTED>"
	}
	return string(s)
}

func (s Secret) Load() (string, error) {
	return GetSecret(string(s))
}

func NewRawSecret(value string) Secret {
	return Secret(string(Raw) + ":" + value)
}
