package store

import (
	"regexp"
	"strings"
	"unicode"
)

var accentFolder = strings.NewReplacer(
	"Á", "A", "À", "A", "Â", "A", "Ã", "A",
	"É", "E", "Ê", "E",
	"Í", "I",
	"Ó", "O", "Ô", "O", "Õ", "O",
	"Ú", "U", "Ü", "U",
	"Ç", "C",
)

// placeholderPattern matches the generic labels cashiers type when the payer
// is unknown: a table, the counter, the till, optionally numbered.
var placeholderPattern = regexp.MustCompile(
	`^(MESA|BALCAO|CONSUMIDOR( FINAL)?|CLIENTE( BALCAO| AVULSO)?|COMANDA|CAIXA|AVULSO|DELIVERY|BAR|VENDA)( ?(N|NO|Nº|N°|#)\.?)? ?\d*$`,
)

// IsPlaceholderName reports whether a point-of-sale customer name is a
// placeholder rather than a person, e.g. "MESA", "Mesa 12", "Balcão",
// "CONSUMIDOR FINAL" or a bare number.
func IsPlaceholderName(name string) bool {
	folded := accentFolder.Replace(strings.ToUpper(strings.Join(strings.Fields(name), " ")))
	if folded == "" {
		return true
	}
	if !strings.ContainsFunc(folded, unicode.IsLetter) {
		return true
	}
	return placeholderPattern.MatchString(folded)
}
