package validation

import "strings"

const (
	// MinPasswordLength is the shortest accepted new password.
	MinPasswordLength = 6
	// SymbolSet lists the special characters a password may (and must) use.
	SymbolSet = "!@#$%^&*"
)

// IsStrongPassword reports whether candidate is at least MinPasswordLength
// characters long, uses only ASCII letters, digits and SymbolSet, and contains
// at least one of each class.
func IsStrongPassword(candidate string) bool {
	if len(candidate) < MinPasswordLength {
		return false
	}

	var hasLetter, hasDigit, hasSymbol bool
	for _, r := range candidate {
		switch {
		case isLetter(r):
			hasLetter = true
		case isDigit(r):
			hasDigit = true
		case isSymbol(r):
			hasSymbol = true
		default:
			return false
		}
	}
	return hasLetter && hasDigit && hasSymbol
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSymbol(r rune) bool {
	return strings.ContainsRune(SymbolSet, r)
}
