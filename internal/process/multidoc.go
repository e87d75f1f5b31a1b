package process

import (
	"fmt"
	"sort"
	"strings"

	"firmas/internal/domain"
)

// Temporal spread above one year between documents triggers a warning.
const temporalSpreadLimit = 31536000

// MarkedDocumentText wraps one document's OCR text in a metadata header for
// the LLM prompt. Priority information is deliberately withheld here so
// every document carries equal weight; the scored variant exists only for
// the audit receipt.
func MarkedDocumentText(record domain.DocumentRecord, totalDocs int, pdfText string) string {
	classification, note := classificationNote(record.DocumentType, false)
	return fmt.Sprintf(`=== DOCUMENTO %d/%d: %s ===
METADADOS DO DOCUMENTO:
- Tipo: %s
- Número do Documento: %s
- Classificação: %s%s

CONTEÚDO:
%s

=== FIM DO DOCUMENTO %d ===
`,
		record.Index, totalDocs, record.FileName,
		record.DocumentType,
		orFallback(record.DocumentNumber, "Não identificado"),
		classification, note,
		pdfText,
		record.Index)
}

// MarkedDocumentTextWithPriority is the audit-side variant that includes
// the registration date and priority score. Never sent to the LLM.
func MarkedDocumentTextWithPriority(record domain.DocumentRecord, totalDocs int, pdfText string) string {
	classification, note := classificationNote(record.DocumentType, true)
	return fmt.Sprintf(`=== DOCUMENTO %d/%d: %s ===
METADADOS DO DOCUMENTO:
- Tipo: %s
- Data de Registro: %s
- Número do Documento: %s
- Score de Prioridade: %d (maior = mais recente)
- Classificação: %s%s

CONTEÚDO:
%s

=== FIM DO DOCUMENTO %d ===
`,
		record.Index, totalDocs, record.FileName,
		record.DocumentType,
		orFallback(record.RegistrationDate, "Não identificada"),
		orFallback(record.DocumentNumber, "Não identificado"),
		record.PriorityScore,
		classification, note,
		pdfText,
		record.Index)
}

func classificationNote(docType domain.DocumentType, withPriority bool) (string, string) {
	switch {
	case docType.IsAccessory():
		if withPriority {
			return "ACESSÓRIO", " - DOCUMENTO ACESSÓRIO: Use para complementar dados, não como fonte principal"
		}
		return "ACESSÓRIO", " - DOCUMENTO ACESSÓRIO: Use para complementar dados"
	case docType.IsCorporate():
		if withPriority {
			return "CORPORATIVO", " - DOCUMENTO SOCIETÁRIO: Fonte principal de dados estruturais"
		}
		return "CORPORATIVO", " - DOCUMENTO SOCIETÁRIO: Fonte principal de dados"
	default:
		return "GENÉRICO", ""
	}
}

func orFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// AnalyzePriority ranks documents by priority score, advisory only. It must
// never change which document's values are authoritative; all documents
// reach the LLM with equal weight.
func AnalyzePriority(records []domain.DocumentRecord) *domain.PriorityAnalysis {
	if len(records) == 0 {
		return nil
	}

	sorted := make([]domain.DocumentRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PriorityScore > sorted[j].PriorityScore
	})
	top := sorted[0]

	var corporateRef *domain.CorporateReference
	for _, rec := range records {
		if rec.DocumentType.IsCorporate() {
			corporateRef = &domain.CorporateReference{
				FileName:      rec.FileName,
				DocumentType:  rec.DocumentType,
				SignatureDate: rec.SignatureDate,
			}
			break
		}
	}

	byPriority := make([]domain.DocumentSummary, len(sorted))
	for i, rec := range sorted {
		byPriority[i] = summarize(rec, true)
	}

	return &domain.PriorityAnalysis{
		MostRecentDocument:    summarize(top, true),
		CorporateDocumentRef:  corporateRef,
		ExtractionStrategy:    extractionStrategy(top.DocumentType, corporateRef != nil),
		ComplementationNeeded: top.DocumentType.IsAccessory(),
		DocumentsByPriority:   byPriority,
		PriorityRule:          "INFORMAÇÃO APENAS: Documentos listados por data. Na extração, TODOS analisados igualmente.",
	}
}

func summarize(rec domain.DocumentRecord, withScore bool) domain.DocumentSummary {
	s := domain.DocumentSummary{
		FileName:      rec.FileName,
		DocumentType:  rec.DocumentType,
		SignatureDate: rec.SignatureDate,
		IsAccessory:   rec.DocumentType.IsAccessory(),
		IsCorporate:   rec.DocumentType.IsCorporate(),
	}
	if withScore {
		s.PriorityScore = rec.PriorityScore
	}
	return s
}

func extractionStrategy(topType domain.DocumentType, hasCorporate bool) string {
	switch {
	case topType.IsAccessory() && hasCorporate:
		return "Documento mais recente é acessório - complementar dados do documento societário"
	case topType.IsAccessory():
		return "Documento acessório sem documento societário - extrair o que for possível"
	case topType.IsCorporate():
		return "Documento societário mais recente - usar como fonte principal"
	default:
		return "Documento genérico - aplicar extração padrão"
	}
}

// ChangesSummary narrates what changed across documents for the metadata
// block. Procurations are noted and excluded from representative analysis.
func ChangesSummary(records []domain.DocumentRecord, llmResponse string) string {
	if len(records) < 2 {
		return "Documento único - sem mudanças a comparar"
	}

	var changes []string
	hasProcuracao, hasAccessory, hasCorporate := false, false, false
	typePresent := make(map[domain.DocumentType]bool)
	var corporateDates []string
	for _, rec := range records {
		typePresent[rec.DocumentType] = true
		if rec.DocumentType == domain.DocProcuracao {
			hasProcuracao = true
		}
		if rec.DocumentType.IsAccessory() {
			hasAccessory = true
		}
		if rec.DocumentType.IsCorporate() {
			hasCorporate = true
			if rec.SignatureDate != "" {
				corporateDates = append(corporateDates, rec.SignatureDate)
			}
		}
	}

	if hasProcuracao {
		changes = append(changes, "Procurações detectadas e IGNORADAS para fins de representantes")
	}
	if hasAccessory && hasCorporate {
		changes = append(changes, "Documentos acessórios complementando dados de documentos societários")
	}
	if typePresent[domain.DocAtaDeAssembleia] {
		changes = append(changes, "Ata de Assembleia detectada - possíveis mudanças em quotas ou representantes")
	}
	if typePresent[domain.DocAtaDeEleicao] {
		changes = append(changes, "Ata de Eleição detectada - mudança na diretoria/administração")
	}
	if typePresent[domain.DocContratoSocial] {
		changes = append(changes, "Contrato Social/Alteração - mudanças estruturais na sociedade")
	}
	if distinctCount(corporateDates) > 1 {
		changes = append(changes, "Múltiplas datas em documentos corporativos - evolução temporal")
	}

	if llmResponse != "" {
		upper := strings.ToUpper(llmResponse)
		if strings.Contains(upper, "ELEIÇÃO") || strings.Contains(upper, "ELEITO") {
			changes = append(changes, "Eleição/nomeação de novos representantes identificada")
		}
		if strings.Contains(upper, "ALTERAÇÃO") {
			changes = append(changes, "Alterações contratuais identificadas")
		}
	}

	if len(changes) == 0 {
		return "Múltiplos documentos sem mudanças significativas identificadas"
	}
	return strings.Join(changes, "\n")
}

// DetectConflicts flags same-type documents with divergent signature dates
// and a temporal spread above one year among scored documents.
func DetectConflicts(records []domain.DocumentRecord) []string {
	if len(records) < 2 {
		return nil
	}

	var warnings []string
	typeDates := make(map[domain.DocumentType][]string)
	var typeOrder []domain.DocumentType
	for _, rec := range records {
		if _, ok := typeDates[rec.DocumentType]; !ok {
			typeOrder = append(typeOrder, rec.DocumentType)
		}
		if rec.SignatureDate != "" {
			typeDates[rec.DocumentType] = append(typeDates[rec.DocumentType], rec.SignatureDate)
		}
	}
	for _, docType := range typeOrder {
		distinct := distinctSorted(typeDates[docType])
		if len(distinct) > 1 {
			warnings = append(warnings, fmt.Sprintf("Múltiplas datas para %s: %s", docType, strings.Join(distinct, ", ")))
		}
	}

	var minScore, maxScore int64
	scored := 0
	for _, rec := range records {
		if rec.PriorityScore <= 0 {
			continue
		}
		if scored == 0 || rec.PriorityScore < minScore {
			minScore = rec.PriorityScore
		}
		if scored == 0 || rec.PriorityScore > maxScore {
			maxScore = rec.PriorityScore
		}
		scored++
	}
	if scored > 1 && maxScore-minScore > temporalSpreadLimit {
		warnings = append(warnings, "Documentos com diferença temporal > 1 ano - verificar validade")
	}

	return warnings
}

func distinctCount(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}

func distinctSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
