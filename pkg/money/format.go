package money

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter presenta montos ya redondeados con separadores del locale. Los dígitos
// salen del decimal exacto; del locale solo se toman los separadores.
type Formatter struct {
	group  string
	point  string
	places int32
}

// NewFormatter construye el formatter. Un locale inválido cae a inglés.
func NewFormatter(locale string, places int) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	sample := message.NewPrinter(tag).Sprint(number.Decimal(1234567.5, number.Scale(1)))
	group, point := separators(sample)
	return &Formatter{group: group, point: point, places: int32(places)}
}

// separators extrae el separador de miles y el decimal de 1234567.5 formateado.
// Si el locale usa dígitos no latinos se usan los de inglés.
func separators(sample string) (group, point string) {
	var runs []string
	var cur strings.Builder
	for _, r := range sample {
		if r >= '0' && r <= '9' {
			if cur.Len() > 0 {
				runs = append(runs, cur.String())
				cur.Reset()
			}
			continue
		}
		if unicode.IsDigit(r) {
			return ",", "."
		}
		cur.WriteRune(r)
	}
	switch len(runs) {
	case 0:
		return ",", "."
	case 1:
		return "", runs[0]
	}
	return runs[0], runs[len(runs)-1]
}

// Format redondea a los decimales configurados y agrega separadores de miles en
// grupos de tres.
func (f *Formatter) Format(d decimal.Decimal) string {
	s := d.Round(f.places).StringFixed(f.places)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(f.group)
		}
		b.WriteRune(c)
	}
	if frac != "" {
		b.WriteString(f.point)
		b.WriteString(frac)
	}
	return b.String()
}
