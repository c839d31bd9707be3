// Package slug genera identificadores legibles para URLs a partir de títulos.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLength longitud máxima de un slug (coincide con la columna slug VARCHAR(64)).
const MaxLength = 64

// Make convierte "Café con Leche 500g" en "cafe-con-leche-500g".
// Elimina diacríticos, pasa a minúsculas y colapsa cualquier separador en un guion.
func Make(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, s)
	if err != nil {
		plain = s
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(plain) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if len(out) > MaxLength {
		out = strings.TrimRight(out[:MaxLength], "-")
	}
	return out
}

// Valid indica si s ya tiene forma de slug (minúsculas ASCII, dígitos y guiones simples).
func Valid(s string) bool {
	if s == "" || len(s) > MaxLength {
		return false
	}
	return Make(s) == s
}
