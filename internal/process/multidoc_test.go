package process_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"firmas/internal/domain"
	"firmas/internal/process"
)

func score(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix()
}

func TestMarkedDocumentText(t *testing.T) {
	record := domain.DocumentRecord{
		Index:        1,
		FileName:     "contrato.pdf",
		DocumentType: domain.DocContratoSocial,
	}

	marked := process.MarkedDocumentText(record, 2, "texto do documento")

	assert.Contains(t, marked, "=== DOCUMENTO 1/2: contrato.pdf ===")
	assert.Contains(t, marked, "- Tipo: CONTRATO_SOCIAL")
	assert.Contains(t, marked, "Não identificado")
	assert.Contains(t, marked, "CORPORATIVO")
	assert.Contains(t, marked, "texto do documento")
	assert.Contains(t, marked, "=== FIM DO DOCUMENTO 1 ===")
	assert.NotContains(t, marked, "Score de Prioridade")
}

func TestMarkedDocumentTextWithPriority(t *testing.T) {
	record := domain.DocumentRecord{
		Index:         2,
		FileName:      "procuracao.pdf",
		DocumentType:  domain.DocProcuracao,
		PriorityScore: 100,
	}

	marked := process.MarkedDocumentTextWithPriority(record, 2, "texto")

	assert.Contains(t, marked, "Score de Prioridade: 100")
	assert.Contains(t, marked, "Data de Registro: Não identificada")
	assert.Contains(t, marked, "ACESSÓRIO")
	assert.Contains(t, marked, "não como fonte principal")
}

func TestAnalyzePriority(t *testing.T) {
	records := []domain.DocumentRecord{
		{Index: 1, FileName: "contrato.pdf", DocumentType: domain.DocContratoSocial,
			SignatureDate: "2020-01-10", PriorityScore: score(2020, 1, 10)},
		{Index: 2, FileName: "procuracao.pdf", DocumentType: domain.DocProcuracao,
			SignatureDate: "2023-05-02", PriorityScore: score(2023, 5, 2)},
	}

	analysis := process.AnalyzePriority(records)

	assert.Equal(t, "procuracao.pdf", analysis.MostRecentDocument.FileName)
	assert.True(t, analysis.ComplementationNeeded)
	assert.Equal(t, "contrato.pdf", analysis.CorporateDocumentRef.FileName)
	assert.Equal(t,
		"Documento mais recente é acessório - complementar dados do documento societário",
		analysis.ExtractionStrategy)
	assert.Equal(t, "procuracao.pdf", analysis.DocumentsByPriority[0].FileName)
	assert.Equal(t, "contrato.pdf", analysis.DocumentsByPriority[1].FileName)
	assert.Contains(t, analysis.PriorityRule, "TODOS analisados igualmente")
}

func TestAnalyzePriority_CorporateMostRecent(t *testing.T) {
	records := []domain.DocumentRecord{
		{FileName: "ata.pdf", DocumentType: domain.DocAtaDeEleicao, PriorityScore: score(2023, 5, 2)},
		{FileName: "contrato.pdf", DocumentType: domain.DocContratoSocial, PriorityScore: score(2020, 1, 10)},
	}

	analysis := process.AnalyzePriority(records)

	assert.False(t, analysis.ComplementationNeeded)
	assert.Equal(t, "Documento societário mais recente - usar como fonte principal", analysis.ExtractionStrategy)
}

func TestAnalyzePriority_Empty(t *testing.T) {
	assert.Nil(t, process.AnalyzePriority(nil))
}

func TestChangesSummary_SingleDocument(t *testing.T) {
	records := []domain.DocumentRecord{{DocumentType: domain.DocContratoSocial}}

	assert.Equal(t, "Documento único - sem mudanças a comparar", process.ChangesSummary(records, ""))
}

func TestChangesSummary_MultipleDocuments(t *testing.T) {
	records := []domain.DocumentRecord{
		{DocumentType: domain.DocContratoSocial, SignatureDate: "2020-01-10"},
		{DocumentType: domain.DocProcuracao},
	}

	summary := process.ChangesSummary(records, "foi deliberada a ALTERAÇÃO do contrato")

	assert.Contains(t, summary, "Procurações detectadas e IGNORADAS")
	assert.Contains(t, summary, "Documentos acessórios complementando dados")
	assert.Contains(t, summary, "Contrato Social/Alteração")
	assert.Contains(t, summary, "Alterações contratuais identificadas")
}

func TestChangesSummary_ElectionInResponse(t *testing.T) {
	records := []domain.DocumentRecord{
		{DocumentType: domain.DocAtaDeEleicao},
		{DocumentType: domain.DocAtaDeEleicao},
	}

	summary := process.ChangesSummary(records, "foram ELEITOS os novos diretores")

	assert.Contains(t, summary, "Ata de Eleição detectada")
	assert.Contains(t, summary, "Eleição/nomeação de novos representantes identificada")
}

func TestDetectConflicts_DivergentDatesSameType(t *testing.T) {
	records := []domain.DocumentRecord{
		{DocumentType: domain.DocAtaDeEleicao, SignatureDate: "2023-01-01"},
		{DocumentType: domain.DocAtaDeEleicao, SignatureDate: "2020-01-01"},
	}

	warnings := process.DetectConflicts(records)

	assert.Contains(t, warnings, "Múltiplas datas para ATA_DE_ELEICAO: 2020-01-01, 2023-01-01")
}

func TestDetectConflicts_TemporalSpread(t *testing.T) {
	records := []domain.DocumentRecord{
		{DocumentType: domain.DocContratoSocial, PriorityScore: score(2020, 1, 10)},
		{DocumentType: domain.DocAtaDeEleicao, PriorityScore: score(2023, 5, 2)},
	}

	warnings := process.DetectConflicts(records)

	assert.Contains(t, warnings, "Documentos com diferença temporal > 1 ano - verificar validade")
}

func TestDetectConflicts_NoConflict(t *testing.T) {
	records := []domain.DocumentRecord{
		{DocumentType: domain.DocContratoSocial, SignatureDate: "2023-01-01", PriorityScore: score(2023, 1, 1)},
		{DocumentType: domain.DocAtaDeEleicao, SignatureDate: "2023-02-01", PriorityScore: score(2023, 2, 1)},
	}

	assert.Empty(t, process.DetectConflicts(records))
}

func TestDetectConflicts_SingleDocument(t *testing.T) {
	assert.Nil(t, process.DetectConflicts([]domain.DocumentRecord{{DocumentType: domain.DocContratoSocial}}))
}
