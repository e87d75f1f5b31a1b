package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"firmas/internal/domain"
	"firmas/internal/extract"
)

func TestExtractRazaoSocial_LabelAnchored(t *testing.T) {
	text := "NOME EMPRESARIAL: COMERCIO DE ALIMENTOS BOA VISTA LTDA\nCNPJ: 12.345.678/0001-99"

	assert.Equal(t, "COMERCIO DE ALIMENTOS BOA VISTA LTDA", extract.ExtractRazaoSocial(text))
}

func TestExtractRazaoSocial_BareSuffixHeuristic(t *testing.T) {
	text := "pelo presente instrumento TRANSPORTES RAPIDOS DO SUL LTDA resolve alterar"

	assert.Equal(t, "TRANSPORTES RAPIDOS DO SUL LTDA", extract.ExtractRazaoSocial(text))
}

func TestExtractRazaoSocial_Empty(t *testing.T) {
	assert.Equal(t, "", extract.ExtractRazaoSocial(""))
	assert.Equal(t, "", extract.ExtractRazaoSocial("sem nome empresarial aqui"))
}

func TestExtractNaturezaJuridica(t *testing.T) {
	tests := []struct {
		name  string
		razao string
		want  string
	}{
		{"ltda", "COMERCIO BOA VISTA LTDA", "LTDA"},
		{"sa spaced", "BANCO NACIONAL S . A .", "S.A."},
		{"sa slash", "ENERGIA DO NORTE S/A", "S.A."},
		{"eireli", "CONSULTORIA PRIME EIRELI", "EIRELI"},
		{"spaced letters", "PADARIA CENTRAL L T D A", "LTDA"},
		{"none", "ASSOCIADOS REUNIDOS", domain.NotAvailable},
		{"empty", "", domain.NotAvailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extract.ExtractNaturezaJuridica(tt.razao))
		})
	}
}

func TestExtractJuntaComercial(t *testing.T) {
	text := "Certidao emitida pela JUCESP em 10/03/2023"

	assert.Equal(t, "Junta Comercial do Estado de São Paulo (JUCESP)", extract.ExtractJuntaComercial(text))
}

func TestExtractJuntaComercial_FullName(t *testing.T) {
	text := "registrado na Junta Comercial do Estado de Minas Gerais sob NIRE 3130000000"

	assert.Equal(t, "Junta Comercial do Estado de Minas Gerais (JUCEMG)", extract.ExtractJuntaComercial(text))
}

func TestExtractJuntaComercial_NoMatch(t *testing.T) {
	assert.Equal(t, "", extract.ExtractJuntaComercial("sem junta mencionada"))
}

func TestExtractEndereco(t *testing.T) {
	text := "ENDEREÇO: Rua das Flores, 123, Centro, São Paulo - SP, CEP 01000-000"

	got := extract.ExtractEndereco(text)
	assert.Contains(t, got, "Rua das Flores, 123")
}

func TestExtractEndereco_TooShortAfterCleanup(t *testing.T) {
	// Long enough raw capture, but mostly OCR space noise.
	assert.Equal(t, "", extract.ExtractEndereco("ENDEREÇO: Av.  X        12               "))
}
