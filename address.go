package addrcheck

import "strings"

// Address is a free-form address string as supplied by a caller
type Address string

// Normalize returns the address with surrounding whitespace removed.
func (address Address) Normalize() Address {
	return Address(strings.TrimSpace(string(address)))
}

func (address Address) String() string {
	return string(address)
}

// HasPrefix reports whether the address starts with prefix.
func (address Address) HasPrefix(prefix string) bool {
	return strings.HasPrefix(string(address), prefix)
}

// HasPrefixFold reports whether the address starts with prefix, ignoring case.
func (address Address) HasPrefixFold(prefix string) bool {
	return len(address) >= len(prefix) && strings.EqualFold(string(address[:len(prefix)]), prefix)
}
