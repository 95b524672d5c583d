package brformat

import (
	"fmt"
	"time"
)

// Meses por extenso para o nome do período ("Janeiro 2025").
var meses = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

var saoPaulo = loadSaoPaulo()

// loadSaoPaulo carrega America/Sao_Paulo; sem tzdata no container cai no
// offset fixo UTC-3 (o Brasil não observa horário de verão atualmente).
func loadSaoPaulo() *time.Location {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		return time.FixedZone("-03", -3*60*60)
	}
	return loc
}

// SaoPaulo devolve a Location de referência da aplicação.
func SaoPaulo() *time.Location {
	return saoPaulo
}

// Today devolve a data de hoje em São Paulo no formato ISO (YYYY-MM-DD).
func Today() string {
	return time.Now().In(saoPaulo).Format("2006-01-02")
}

// NormalizeDate aceita DD/MM/YYYY ou YYYY-MM-DD e devolve YYYY-MM-DD.
// Vazio ou formato não reconhecido resulta na data de hoje em São Paulo.
func NormalizeDate(s string) string {
	if s == "" {
		return Today()
	}
	if t, err := time.Parse("02/01/2006", s); err == nil {
		return t.Format("2006-01-02")
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("2006-01-02")
	}
	return Today()
}

// FormatDateBR converte YYYY-MM-DD para DD/MM/YYYY (exibição). A entrada
// inválida é devolvida como veio, para não esconder dados corrompidos.
func FormatDateBR(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02/01/2006")
}

// PeriodoAtual devolve nome ("Janeiro 2025"), mês e ano correntes em São Paulo.
func PeriodoAtual() (nome string, mes int, ano int) {
	now := time.Now().In(saoPaulo)
	mes = int(now.Month())
	ano = now.Year()
	nome = fmt.Sprintf("%s %d", meses[mes-1], ano)
	return nome, mes, ano
}

// AddDays soma dias a uma data ISO (YYYY-MM-DD) preservando o formato.
func AddDays(iso string, days int) (string, error) {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return "", fmt.Errorf("data inválida %q: %w", iso, err)
	}
	return t.AddDate(0, 0, days).Format("2006-01-02"), nil
}
