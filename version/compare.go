// Package version provides unified mechanisms for application version tracking, update discovery, and compatibility validation.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Compare performs a semantic comparison between two version strings.
// Returns 1 if a > b, -1 if a < b, and 0 if equal. A leading "v" is ignored.
func Compare(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, err
	}

	bv, err := parseSemver(b)
	if err != nil {
		return 0, err
	}

	for i := range av {
		if av[i] != bv[i] {
			if av[i] > bv[i] {
				return 1, nil
			}
			return -1, nil
		}
	}

	return 0, nil
}

func parseSemver(s string) (v [3]int, err error) {
	parts := strings.Split(strings.TrimPrefix(s, "v"), ".")
	if len(parts) != 3 {
		return v, fmt.Errorf("malformed version %q", s)
	}

	for i, part := range parts {
		v[i], err = strconv.Atoi(part)
		if err != nil {
			return v, fmt.Errorf("malformed version %q: %w", s, err)
		}
	}

	return v, nil
}
