// Package brformat concentra as conversões de moeda e data no padrão
// brasileiro usadas em toda a aplicação: "1.550,20" para valores e
// DD/MM/YYYY para exibição de datas, sempre no fuso de São Paulo.
package brformat

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency formata um valor com 2 casas decimais no padrão brasileiro:
// ponto como separador de milhar e vírgula como decimal (1550.2 -> "1.550,20").
func FormatCurrency(valor decimal.Decimal) string {
	fixed := valor.StringFixed(2) // ex: "-1550.20"

	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	parts := strings.SplitN(fixed, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}

// ParseCurrency converte uma string no formato brasileiro para decimal
// ("1.550,20" -> 1550.2). Vazio ou valor não numérico resulta em 0.
func ParseCurrency(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	// Remove pontos de milhar e troca vírgula por ponto
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
