package domain

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcutil/base58"
)

// AddressLength is the decoded size of a recipient public key.
const AddressLength = 32

// ValidateAddress checks that addr is a base58 encoded 32 byte public key.
func ValidateAddress(addr string) error {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return fmt.Errorf("%w: empty", ErrInvalidAddress)
	}
	decoded := base58.Decode(addr)
	if len(decoded) != AddressLength {
		return fmt.Errorf("%w: %q", ErrInvalidAddress, addr)
	}
	return nil
}
