package extract_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"firmas/internal/extract"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"iso passthrough", "2023-03-10", "2023-03-10"},
		{"numeric slash", "10/03/2023", "2023-03-10"},
		{"numeric hyphen", "10-03-2023", "2023-03-10"},
		{"extended portuguese", "10 de março de 2023", "2023-03-10"},
		{"extended unaccented", "10 de marco de 2023", "2023-03-10"},
		{"invalid calendar day", "31/02/2023", ""},
		{"unknown month name", "10 de frevereiro de 2023", ""},
		{"garbage", "sem data", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extract.NormalizeDate(tt.input))
		})
	}
}

func TestExtractSignatureDateLevel0_CuePhrase(t *testing.T) {
	text := "O presente instrumento foi assinado em 10 de março de 2023 pelos sócios."

	assert.Equal(t, "2023-03-10", extract.ExtractSignatureDateLevel0(text))
}

func TestExtractSignatureDateLevel0_CityCue(t *testing.T) {
	text := "São Paulo, 15/05/2022.\nJOÃO DA SILVA"

	assert.Equal(t, "2022-05-15", extract.ExtractSignatureDateLevel0(text))
}

func TestExtractSignatureDateLevel0_NoCue(t *testing.T) {
	assert.Equal(t, "", extract.ExtractSignatureDateLevel0("registrado em 10/03/2023"))
}

func TestFindSignatureDateByProximity_DiscardsLawContext(t *testing.T) {
	filler := strings.Repeat("clausulas gerais sobre o funcionamento da empresa. ", 3)
	text := "Nos termos da Lei 10.406, de 10/01/2002, fica regulada a empresa.\n" +
		filler +
		"Local e data. Assinatura dos socios administradores: Joao Silva e Maria Souza, em 15/03/2023."

	assert.Equal(t, "2023-03-15", extract.FindSignatureDateByProximity(text))
}

func TestFindSignatureDateByProximity_PrefersSignatureSection(t *testing.T) {
	filler := strings.Repeat("o texto segue com disposicoes gerais do contrato. ", 12)
	text := "a empresa foi constituida em 05/06/2010 conforme arquivamento.\n" +
		filler +
		"Assinatura dos socios: Joao Silva, em 15/03/2023."

	assert.Equal(t, "2023-03-15", extract.FindSignatureDateByProximity(text))
}

func TestFindSignatureDateByProximity_Empty(t *testing.T) {
	assert.Equal(t, "", extract.FindSignatureDateByProximity("texto sem nenhuma data"))
	assert.Equal(t, "", extract.FindSignatureDateByProximity(""))
}

func TestExtractValidityDate(t *testing.T) {
	assert.Equal(t, "2025-12-31", extract.ExtractValidityDate("procuração válida até 31/12/2025"))
	assert.Equal(t, "2024-06-01", extract.ExtractValidityDate("vigência encerra em 01/06/2024"))
	assert.Equal(t, "", extract.ExtractValidityDate("procuração sem prazo definido"))
}

func TestExtractMandateValidityDate(t *testing.T) {
	assert.Equal(t, "2026-04-15", extract.ExtractMandateValidityDate("mandato vigente até 15/04/2026"))
	assert.Equal(t, "", extract.ExtractMandateValidityDate("diretoria sem mandato declarado"))
}

func TestExtractRegistrationDate(t *testing.T) {
	assert.Equal(t, "2021-07-20", extract.ExtractRegistrationDate("Registrado em 20/07/2021 sob NIRE 35000000000"))
	assert.Equal(t, "2021-08-02", extract.ExtractRegistrationDate("Arquivado em 02/08/2021"))
	assert.Equal(t, "", extract.ExtractRegistrationDate("sem registro"))
}

func TestFindMostRecentDate(t *testing.T) {
	text := "constituida em 01/01/2020, alterada em 15/08/2023 e registrada em 10 de maio de 2021"

	assert.Equal(t, "15/08/2023", extract.FindMostRecentDate(text))
}

func TestPriorityScore(t *testing.T) {
	reg := time.Date(2021, 7, 20, 0, 0, 0, 0, time.UTC).Unix()
	sig := time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC).Unix()

	assert.Equal(t, reg, extract.PriorityScore("2023-03-10", "2021-07-20"))
	assert.Equal(t, sig, extract.PriorityScore("2023-03-10", ""))
	assert.Equal(t, int64(0), extract.PriorityScore("", ""))
	assert.Equal(t, int64(0), extract.PriorityScore("data inválida", ""))
}
