package dogecoin_test

import (
	"testing"

	ac "github.com/cordialsys/addrcheck"
	"github.com/cordialsys/addrcheck/chain/dogecoin"
	"github.com/cordialsys/addrcheck/errors"
	"github.com/stretchr/testify/require"
)

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		name    string
		address ac.Address
		kind    errors.Kind
	}{
		{name: "p2pkh", address: "DH5yaieqoZN36fDVciNyRueRGvGLR3mr7L"},
		{name: "bitcoin address", address: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", kind: errors.InvalidPrefix},
		{name: "lowercase d", address: "dH5yaieqoZN36fDVciNyRueRGvGLR3mr7L", kind: errors.InvalidPrefix},
		{name: "too long", address: "DH5yaieqoZN36fDVciNyRueRGvGLR3mr7LL", kind: errors.InvalidLength},
		{name: "too short", address: "DH5yaieqoZN36fDVciNyRueRG", kind: errors.InvalidLength},
		{name: "checksum", address: "DH5yaieqoZN36fDVciNyRueRGvGLR3mr7M", kind: errors.ChecksumMismatch},
		{name: "invalid character", address: "DH5yaieqoZN36fDVciNyRueRGvGLR3mr7I", kind: errors.InvalidCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			details, err := dogecoin.ValidateAddress(tt.address)
			if tt.kind != "" {
				require.Error(err)
				require.Equal(tt.kind, errors.KindOf(err), err.Error())
				require.ErrorContains(err, "invalid dogecoin address")
				return
			}
			require.NoError(err)
			require.Equal(ac.NewDetails("encoding", "base58check", "type", "p2pkh", "version", "30"), details)
		})
	}
}
