// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

var (
	// ErrBadPair indicates a flag value that is not of the form "u:v".
	ErrBadPair = errors.New("cli: pair must look like u:v with integer u and v")

	// ErrNegativeCount indicates a negative size or vertex count flag.
	ErrNegativeCount = errors.New("cli: count must be non-negative")
)

// pair is one "u:v" flag value.
type pair struct {
	U, V int
}

// parsePairs converts every "u:v" value, reporting the first malformed one.
func parsePairs(values []string) ([]pair, error) {
	out := make([]pair, 0, len(values))
	for _, raw := range values {
		left, right, ok := strings.Cut(raw, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadPair, raw)
		}
		u, err := strconv.Atoi(strings.TrimSpace(left))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadPair, raw)
		}
		v, err := strconv.Atoi(strings.TrimSpace(right))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadPair, raw)
		}
		out = append(out, pair{U: u, V: v})
	}

	return out, nil
}

// joinInts renders xs space-separated.
func joinInts(xs []int) string {
	return strings.Join(lo.Map(xs, func(x int, _ int) string {
		return strconv.Itoa(x)
	}), " ")
}

// checkCount rejects negative values of the named count flag.
func checkCount(flag string, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: --%s=%d", ErrNegativeCount, flag, n)
	}

	return nil
}
