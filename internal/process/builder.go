package process

import (
	"fmt"
	"strings"

	"firmas/internal/domain"
	"firmas/internal/extract"
)

// NormalizeOutput re-runs the canonical formatters over the result: the
// CNPJ through its normalizer and every date field through the date
// normalizer. Date fields keep their current value when normalization
// finds nothing; the CNPJ is blanked when structurally invalid, so the
// required-field pass that follows replaces it with the sentinel.
func NormalizeOutput(result *domain.ExtractionResult) {
	result.CNPJ = extract.NormalizeCNPJ(result.CNPJ)

	if normalized := extract.NormalizeDate(result.DataAssinatura); normalized != "" {
		result.DataAssinatura = normalized
	}
	for i := range result.RepresentantesDetalhados {
		rep := &result.RepresentantesDetalhados[i]
		if normalized := extract.NormalizeDate(rep.DataValidadeRegras); normalized != "" {
			rep.DataValidadeRegras = normalized
		}
	}
}

// ValidateRequiredFields fills every blank top-level string field with the
// sentinel and guarantees the representative list and count exist.
func ValidateRequiredFields(result *domain.ExtractionResult) {
	required := []*string{
		&result.JuntaComercial,
		&result.CNPJ,
		&result.RazaoSocial,
		&result.NaturezaJuridica,
		&result.Endereco,
		&result.CotasSocietarias,
		&result.RepresentantesLegais,
		&result.ReferenciaDaOrigem,
		&result.DataAssinatura,
		&result.PoderesERepresentacao,
	}
	for _, f := range required {
		if strings.TrimSpace(*f) == "" {
			*f = domain.NotAvailable
		}
	}

	if result.RepresentantesDetalhados == nil {
		result.RepresentantesDetalhados = []domain.Representative{}
	}
	if result.QuantidadeRepresentantes == 0 {
		result.QuantidadeRepresentantes = len(result.RepresentantesDetalhados)
	}
}

// CleanOutput collapses internal whitespace on every top-level string field.
func CleanOutput(result *domain.ExtractionResult) {
	fields := []*string{
		&result.JuntaComercial,
		&result.CNPJ,
		&result.RazaoSocial,
		&result.NaturezaJuridica,
		&result.Endereco,
		&result.CotasSocietarias,
		&result.RepresentantesLegais,
		&result.ReferenciaDaOrigem,
		&result.DataAssinatura,
		&result.PoderesERepresentacao,
	}
	for _, f := range fields {
		*f = strings.Join(strings.Fields(*f), " ")
	}
}

// FinalizeResult runs the closing passes in their fixed order: normalize,
// then required-field substitution, then whitespace cleanup.
func FinalizeResult(result *domain.ExtractionResult) {
	NormalizeOutput(result)
	ValidateRequiredFields(result)
	CleanOutput(result)
}

// BuildResponse assembles the final envelope. The metadata block is only
// emitted when document info is available; the priority, changes and
// conflict sub-blocks only when multi-document analysis ran.
func BuildResponse(requestID string, result domain.ExtractionResult,
	info *domain.DocumentInfo, priority *domain.PriorityAnalysis,
	changesSummary string, conflicts []string) *domain.Response {

	response := &domain.Response{
		ID:   requestID,
		Data: result,
	}
	if info == nil {
		return response
	}

	metadata := &domain.DocumentMetadata{
		TotalDocuments:      info.TotalDocuments,
		ProcessedDocuments:  info.ProcessedDocuments,
		IsMultipleDocuments: info.IsMultipleDocuments,
		ProcessingType:      domain.ProcessingSingle,
		ExceededLimit:       info.ExceededLimit,
	}
	if info.IsMultipleDocuments {
		metadata.ProcessingType = domain.ProcessingBatch
	}

	if info.ExceededLimit && len(info.IgnoredDocuments) > 0 {
		metadata.Warning = fmt.Sprintf(
			"Limite de %d documentos excedido. Total recebido: %d. Processados: %d. Ignorados: %d",
			domain.MaxDocumentsPerRequest, info.TotalDocuments, info.ProcessedDocuments, len(info.IgnoredDocuments))
		metadata.IgnoredDocuments = stripPaths(info.IgnoredDocuments)
	}

	metadata.PriorityAnalysis = priority
	metadata.ChangesSummary = changesSummary
	metadata.ConflictWarnings = conflicts

	response.DocumentMetadata = metadata
	return response
}

func stripPaths(uris []string) []string {
	names := make([]string, len(uris))
	for i, uri := range uris {
		if idx := strings.LastIndex(uri, "/"); idx >= 0 {
			names[i] = uri[idx+1:]
		} else {
			names[i] = uri
		}
	}
	return names
}
