// Package textutils cleans up text extracted from PDF pages.
package textutils

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Form selects a Unicode normalization form applied to page text.
type Form string

const (
	FormNone Form = "none"
	FormNFC  Form = "nfc"
	// FormNFKC additionally folds compatibility characters such as the
	// "ﬁ" ligature that many PDF text layers emit.
	FormNFKC Form = "nfkc"
)

// ParseForm converts a configuration value into a Form.
func ParseForm(s string) (Form, error) {
	switch Form(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormNone:
		return FormNone, nil
	case FormNFC:
		return FormNFC, nil
	case FormNFKC:
		return FormNFKC, nil
	default:
		return "", fmt.Errorf("unsupported normalization form: %s. Supported forms are 'none', 'nfc', 'nfkc'", s)
	}
}

// Normalize applies the given normalization form to s.
func Normalize(s string, form Form) string {
	switch form {
	case FormNFC:
		return norm.NFC.String(s)
	case FormNFKC:
		return norm.NFKC.String(s)
	default:
		return s
	}
}

// CleanPageText converts line endings to LF, drops the form feeds that
// pdftotext emits at page boundaries and trims leading and trailing line
// breaks. The transcript format adds its own separator after each page.
func CleanPageText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\f", "")
	return strings.Trim(s, "\n")
}
