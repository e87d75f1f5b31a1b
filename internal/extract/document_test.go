package extract_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"firmas/internal/domain"
	"firmas/internal/extract"
)

func TestIdentifyDocumentType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.DocumentType
	}{
		{"alteracao contrato social", "INSTRUMENTO PARTICULAR DE TERCEIRA ALTERAÇÃO DO CONTRATO SOCIAL", domain.DocContratoSocial},
		{"ata de eleicao", "ATA DE ELEIÇÃO DA DIRETORIA", domain.DocAtaDeEleicao},
		{"procuracao", "INSTRUMENTO PÚBLICO DE PROCURAÇÃO", domain.DocProcuracao},
		{"estatuto", "ESTATUTO SOCIAL CONSOLIDADO", domain.DocEstatutoSocial},
		{"certidao", "CERTIDÃO SIMPLIFICADA DA JUNTA", domain.DocCertidao},
		{"generico", "DOCUMENTO QUALQUER SEM TITULO", domain.DocGenerico},
		{"empty", "", domain.DocGenerico},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extract.IdentifyDocumentType(tt.text))
		})
	}
}

func TestIdentifyDocumentType_IrregularSpacing(t *testing.T) {
	text := "ata   da\nassembleia geral   extraordinária"

	assert.Equal(t, domain.DocAtaDeAssembleia, extract.IdentifyDocumentType(text))
}

func TestExtractDocumentName_SpecificBeforeGeneric(t *testing.T) {
	text := "INSTRUMENTO PARTICULAR DE TERCEIRA ALTERAÇÃO DO CONTRATO SOCIAL DA EMPRESA X LTDA"

	assert.Equal(t, "Instrumento Particular de Alteração Contrato Social", extract.ExtractDocumentName(text))
}

func TestExtractDocumentName_SkipsProcuracao(t *testing.T) {
	// The type classifier still sees a power of attorney, but the display
	// name never surfaces it.
	text := "INSTRUMENTO PÚBLICO DE PROCURAÇÃO"

	assert.Equal(t, domain.DocProcuracao, extract.IdentifyDocumentType(text))
	assert.Equal(t, domain.NotAvailable, extract.ExtractDocumentName(text))
}

func TestExtractDocumentName_NoMatch(t *testing.T) {
	assert.Equal(t, domain.NotAvailable, extract.ExtractDocumentName("DOCUMENTO QUALQUER"))
	assert.Equal(t, domain.NotAvailable, extract.ExtractDocumentName(""))
}

func TestExtractDocumentNumber(t *testing.T) {
	assert.Equal(t, "35300000000", extract.ExtractDocumentNumber("NIRE: 35300000000"))
	assert.Equal(t, "123456", extract.ExtractDocumentNumber("Protocolo 123456 da junta"))
	assert.Equal(t, "", extract.ExtractDocumentNumber("sem numeração"))
}

func TestExtractDocumentMetadata(t *testing.T) {
	ocr := "CONTRATO SOCIAL DA EMPRESA X LTDA\n" +
		"NIRE: 35300000000\n" +
		"assinado em 10/03/2023\n" +
		"Arquivado em 02/08/2023"

	record := extract.ExtractDocumentMetadata(ocr, 2, "s3://bucket/docs/contrato.pdf")

	assert.Equal(t, 2, record.Index)
	assert.Equal(t, "contrato.pdf", record.FileName)
	assert.Equal(t, domain.DocContratoSocial, record.DocumentType)
	assert.Equal(t, "2023-03-10", record.SignatureDate)
	assert.Equal(t, "2023-08-02", record.RegistrationDate)
	assert.Equal(t, "35300000000", record.DocumentNumber)
	assert.Equal(t, time.Date(2023, 8, 2, 0, 0, 0, 0, time.UTC).Unix(), record.PriorityScore)
}
