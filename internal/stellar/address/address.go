// Package address checks the textual format of Stellar account and contract
// identifiers.
package address

import "regexp"

// Length is the size of an encoded account (G...) or contract (C...) identifier.
const Length = 56

// pattern matches a prefix byte followed by the RFC 4648 base32 alphabet.
var pattern = regexp.MustCompile(`^[GC][A-Z2-7]{55}$`)

// Kind identifies what an address refers to.
type Kind int

const (
	KindInvalid Kind = iota
	KindAccount
	KindContract
)

// IsValid reports whether s looks like an account or contract identifier.
// The strkey checksum is not verified here; the signing and encoding layers
// reject addresses whose checksum is wrong.
func IsValid(s string) bool {
	return len(s) == Length && pattern.MatchString(s)
}

// KindOf returns the identifier class of s, or KindInvalid.
func KindOf(s string) Kind {
	if !IsValid(s) {
		return KindInvalid
	}

	if s[0] == 'C' {
		return KindContract
	}

	return KindAccount
}
