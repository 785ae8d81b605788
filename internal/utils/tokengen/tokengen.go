package tokengen

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Retrieval tokens are 9-digit decimal strings drawn uniformly from
// [Min, Max]. The space holds 900 million values, so at realistic volumes a
// collision on any single draw stays astronomically unlikely and the caller's
// retry loop terminates after one or two iterations in practice.
const (
	Min = 100_000_000
	Max = 999_999_999

	// Space is the number of distinct tokens.
	Space = Max - Min + 1
)

var space = big.NewInt(Space)

// Draw returns one uniformly random candidate token. Uniqueness is not
// guaranteed here; the item store's primary-key constraint is the
// authoritative guard.
func Draw() (string, error) {
	n, err := rand.Int(rand.Reader, space)
	if err != nil {
		return "", fmt.Errorf("draw token candidate: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+Min), nil
}

// IsValid reports whether value has the shape of a retrieval token: exactly
// nine ASCII digits with a non-zero leading digit.
func IsValid(value string) bool {
	if len(value) != 9 {
		return false
	}
	if value[0] == '0' {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}
