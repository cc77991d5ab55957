// Package util provides a collection of domain-agnostic utility functions and cross-platform helpers.
package util

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/anishere/SocialReels/filesystem"
	"golang.org/x/exp/constraints"
)

// filenameAllowed is the fixed set of punctuation characters preserved by SafeFilename.
const filenameAllowed = "-_.()[] {}"

// MaxFilenameLength is the maximum rune count applied by ShortenFilename.
// Keeps full destination paths comfortably below common filesystem limits.
const MaxFilenameLength = 50

// SafeFilename normalizes a string into a safe, cross-platform filesystem-compliant filename.
// Unicode letters and digits pass through unchanged, as does a small punctuation
// allow-list; every other character becomes an underscore. Leading and trailing
// underscores are stripped. The function is deterministic and idempotent.
func SafeFilename(name string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune(filenameAllowed, r) {
			return r
		}
		return '_'
	}, name)

	return strings.Trim(mapped, "_")
}

// ShortenFilename sanitizes a name and truncates it to the default maximum length.
func ShortenFilename(name string) string {
	return ShortenFilenameTo(name, MaxFilenameLength)
}

// ShortenFilenameTo sanitizes a name and truncates it to at most max characters.
// Truncation happens after sanitization so the cap applies to the final string.
func ShortenFilenameTo(name string, max int) string {
	safe := SafeFilename(name)
	runes := []rune(safe)
	if len(runes) > max {
		safe = string(runes[:max])
	}
	return safe
}

// Quantify returns a pluralized string representation of a count and its associated labels.
func Quantify(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// Capitalize transforms the first rune of a string to its uppercase equivalent.
func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// PrintErasable prints an ephemeral message to the terminal and returns a closure to clear it.
func PrintErasable(msg string) (eraser func()) {
	fmt.Fprintf(os.Stdout, "\r%s", msg)
	return func() {
		fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", len(msg)))
	}
}

// Ignore executes a function and explicitly discards its error return value.
func Ignore(f func() error) {
	_ = f()
}

// Max returns the maximum value among arguments.
func Max[T constraints.Ordered](items ...T) (max T) {
	if len(items) == 0 {
		return
	}
	max = items[0]
	for _, item := range items[1:] {
		if item > max {
			max = item
		}
	}
	return
}

// Min returns the minimum value among arguments.
func Min[T constraints.Ordered](items ...T) (min T) {
	if len(items) == 0 {
		return
	}
	min = items[0]
	for _, item := range items[1:] {
		if item < min {
			min = item
		}
	}
	return
}

// Delete recursively removes a file or directory using the virtualized filesystem API.
func Delete(path string) error {
	fs := filesystem.API()
	stat, err := fs.Stat(path)
	if err != nil {
		return err
	}

	if stat.IsDir() {
		return fs.RemoveAll(path)
	}
	return fs.Remove(path)
}
