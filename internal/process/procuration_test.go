package process_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"firmas/internal/domain"
	"firmas/internal/process"
)

func TestAugmentWithProcuration_NoProcuration(t *testing.T) {
	result := domain.ExtractionResult{RepresentantesLegais: "João da Silva"}

	process.AugmentWithProcuration(&result, "CONTRATO SOCIAL sem outorgas")

	assert.Equal(t, "João da Silva", result.RepresentantesLegais)
}

func TestAugmentWithProcuration_AppendsAttorneyToDisplay(t *testing.T) {
	ocr := "PROCURAÇÃO\nOutorgado: Carlos Pereira Santos, CPF 111.222.333-44."
	result := domain.ExtractionResult{RepresentantesLegais: "João da Silva"}

	process.AugmentWithProcuration(&result, ocr)

	assert.Equal(t, "João da Silva, Carlos Pereira Santos (Procurador)", result.RepresentantesLegais)
}

func TestAugmentWithProcuration_NewlineSeparator(t *testing.T) {
	ocr := "PROCURAÇÃO\nOutorgado: Carlos Pereira Santos, CPF 111.222.333-44."
	result := domain.ExtractionResult{RepresentantesLegais: "João da Silva\nMaria Souza"}

	process.AugmentWithProcuration(&result, ocr)

	assert.Equal(t, "João da Silva\nMaria Souza\nCarlos Pereira Santos (Procurador)", result.RepresentantesLegais)
}

func TestAugmentWithProcuration_EmptyDisplay(t *testing.T) {
	ocr := "PROCURAÇÃO\nOutorgado: Carlos Pereira Santos, CPF 111.222.333-44."
	result := domain.ExtractionResult{}

	process.AugmentWithProcuration(&result, ocr)

	assert.Equal(t, "Carlos Pereira Santos (Procurador)", result.RepresentantesLegais)
}

func TestAugmentWithProcuration_ValidityAppendedToPowers(t *testing.T) {
	ocr := "PROCURAÇÃO válida até 31/12/2025.\nOutorgado: Carlos Pereira Santos, CPF 111.222.333-44."
	result := domain.ExtractionResult{PoderesERepresentacao: "João da Silva: assina isoladamente"}

	process.AugmentWithProcuration(&result, ocr)

	assert.Equal(t,
		"João da Silva: assina isoladamente. Validade da procuração: 2025-12-31",
		result.PoderesERepresentacao)
}

func TestAugmentWithProcuration_ValidityReplacesSentinel(t *testing.T) {
	ocr := "PROCURAÇÃO válida até 31/12/2025"
	result := domain.ExtractionResult{PoderesERepresentacao: domain.NotAvailable}

	process.AugmentWithProcuration(&result, ocr)

	assert.Equal(t, "Validade da procuração: 2025-12-31", result.PoderesERepresentacao)
}

func TestAugmentWithProcuration_ShortNamesDiscarded(t *testing.T) {
	ocr := "PROCURAÇÃO\nOutorgado: Ana, CPF 111.222.333-44."
	result := domain.ExtractionResult{RepresentantesLegais: "João da Silva"}

	process.AugmentWithProcuration(&result, ocr)

	assert.Equal(t, "João da Silva", result.RepresentantesLegais)
}

func TestExtractProcurationDate(t *testing.T) {
	assert.Equal(t, "05/05/2023", process.ExtractProcurationDate("Procuração outorgada em 05/05/2023"))
	assert.Equal(t, "", process.ExtractProcurationDate("sem data de outorga"))
}

func TestExtractValidityFromRules(t *testing.T) {
	regras := "Mandato vigente até 31/12/2025. Assina isoladamente em operações ordinárias"

	assert.Equal(t, "Mandato vigente até 31/12/2025", process.ExtractValidityFromRules(regras))
}

func TestExtractValidityFromRules_NoKeyword(t *testing.T) {
	assert.Equal(t, "", process.ExtractValidityFromRules("assina isoladamente"))
	assert.Equal(t, "", process.ExtractValidityFromRules(domain.NotAvailable))
	assert.Equal(t, "", process.ExtractValidityFromRules(""))
}
