package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// ContainsFold reports whether needle occurs in s under Unicode case folding.
// An empty needle matches everything.
func ContainsFold(s, needle string) bool {
	if needle == "" {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(needle))
}
