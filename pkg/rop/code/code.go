package code

import (
	"strings"

	"github.com/ib-77/railway/pkg/rop"
)

// Separator splits the code from the message. Only its first occurrence
// is significant.
const Separator = ':'

// Format produces the canonical "CODE: message" error text. Both
// arguments must be non-blank; a blank one panics with
// rop.InvalidArgumentError.
func Format(code, message string) string {
	rop.MustText("code", code)
	rop.MustText("message", message)

	return code + string(Separator) + " " + message
}

// Parse splits an error text into its code and message parts. The text
// must be non-blank. When the first separator sits at a position that is
// neither the first nor the last character, the left part (trimmed)
// becomes the code and everything after it (trimmed) becomes the
// message, later separators included. Otherwise the code is empty and
// the message is the input unchanged.
func Parse(errText string) (code string, message string) {
	rop.MustText("error text", errText)

	i := strings.IndexByte(errText, Separator)
	if i <= 0 || i == len(errText)-1 {
		return "", errText
	}
	return strings.TrimSpace(errText[:i]), strings.TrimSpace(errText[i+1:])
}

// HasCode reports whether the error text carries a non-empty code under
// the convention.
func HasCode(errText string) bool {
	c, _ := Parse(errText)
	return c != ""
}
