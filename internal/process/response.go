package process

import (
	"encoding/json"
	"strings"

	"firmas/internal/domain"
	"firmas/internal/extract"
)

// ExtractJSONResponse parses the model output JSON-first. A markdown fence
// is stripped; if the trimmed text is not already a balanced object, the
// slice between the first "{" and the last "}" is tried. Any parse failure
// yields the all-empty default result.
func ExtractJSONResponse(responseText string) domain.ExtractionResult {
	var result domain.ExtractionResult
	if err := json.Unmarshal([]byte(extractFirstJSON(responseText)), &result); err != nil {
		return domain.ExtractionResult{}
	}
	return result
}

func extractFirstJSON(blob string) string {
	blob = strings.TrimSpace(blob)

	if strings.HasPrefix(blob, "```json") && strings.HasSuffix(blob, "```") {
		blob = strings.TrimSpace(blob[7 : len(blob)-3])
	} else if strings.HasPrefix(blob, "```") && strings.HasSuffix(blob, "```") {
		blob = strings.TrimSpace(blob[3 : len(blob)-3])
	}

	if strings.HasPrefix(blob, "{") && strings.HasSuffix(blob, "}") && json.Valid([]byte(blob)) {
		return blob
	}

	start := strings.Index(blob, "{")
	end := strings.LastIndex(blob, "}")
	if start != -1 && end > start {
		candidate := blob[start : end+1]
		if json.Valid([]byte(candidate)) {
			return candidate
		}
	}
	return blob
}

// ParseTextResponse recovers the result schema from free-text model output
// via the labeled line and block fields.
func ParseTextResponse(responseText string) domain.ExtractionResult {
	lines := strings.Split(responseText, "\n")

	var result domain.ExtractionResult
	result.CNPJ = extract.ExtractLineField("CNPJ:", lines)
	result.RazaoSocial = extract.ExtractLineField("Razão Social:", lines)
	result.JuntaComercial = extract.ExtractLineField("Junta Comercial:", lines)
	result.Endereco = extract.ExtractLineField("Endereço:", lines)
	result.NaturezaJuridica = extract.ExtractLineField("Natureza Jurídica:", lines)

	result.CotasSocietarias = extract.ExtractBlockField("Cotas societárias:", lines)
	if result.CotasSocietarias != "" {
		result.CotasSocietarias = strings.ReplaceAll(result.CotasSocietarias, "\n", ", ")
	}

	dataAssinatura := extract.ExtractLineField("Data de assinatura:", lines)
	if dataAssinatura == "" {
		dataAssinatura = extract.ExtractBlockField("Data de assinatura:", lines)
	}
	result.DataAssinatura = strings.ReplaceAll(dataAssinatura, "\n", ", ")

	result.ReferenciaDaOrigem = extract.ExtractLineField("Referência da origem:", lines)
	if result.ReferenciaDaOrigem == "" {
		result.ReferenciaDaOrigem = domain.NotAvailable
	}

	return result
}

// InterpretResponse applies the two-path parse: JSON when usable, text
// fallback when the JSON path produced no CNPJ.
func InterpretResponse(responseText string) domain.ExtractionResult {
	result := ExtractJSONResponse(responseText)
	if result.CNPJ == "" {
		result = ParseTextResponse(responseText)
	}
	return result
}

// ApplyOCRFallbacks substitutes values re-derived from raw OCR text for the
// identity fields the model left empty. Natureza jurídica additionally
// falls back when the model answered with the sentinel, since it can be
// re-derived from the razão social alone.
func ApplyOCRFallbacks(result *domain.ExtractionResult, ocrText string) {
	if result.JuntaComercial == "" {
		if junta := extract.ExtractJuntaComercial(ocrText); junta != "" {
			result.JuntaComercial = junta
		}
	}
	if result.CNPJ == "" {
		if cnpj := extract.ExtractCNPJ(ocrText); cnpj != "" {
			result.CNPJ = cnpj
		}
	}
	if result.RazaoSocial == "" {
		if razao := extract.ExtractRazaoSocial(ocrText); razao != "" {
			result.RazaoSocial = razao
		}
	}
	if result.NaturezaJuridica == "" || result.NaturezaJuridica == domain.NotAvailable {
		if natureza := extract.ExtractNaturezaJuridica(result.RazaoSocial); natureza != "" {
			result.NaturezaJuridica = natureza
		}
	}
}

// ValidateFinalFields substitutes the sentinel for the free-text fields
// that must never ship blank.
func ValidateFinalFields(result *domain.ExtractionResult) {
	if strings.TrimSpace(result.DataAssinatura) == "" {
		result.DataAssinatura = domain.NotAvailable
	}
	if result.ReferenciaDaOrigem == "" {
		result.ReferenciaDaOrigem = domain.NotAvailable
	}
	if result.CotasSocietarias == "" {
		result.CotasSocietarias = domain.NotAvailable
	}
}

// ConsolidatePowers builds the "name: rules" summary across representatives
// holding real representation rules, joined with "; ".
func ConsolidatePowers(reps []domain.Representative) string {
	var powers []string
	for _, rep := range reps {
		if rep.RegrasRepresentacao == "" || rep.RegrasRepresentacao == domain.NotAvailable {
			continue
		}
		nome := rep.Nome
		if nome == "" {
			nome = "Representante"
		}
		powers = append(powers, nome+": "+rep.RegrasRepresentacao)
	}
	if len(powers) == 0 {
		return domain.NotAvailable
	}
	return strings.Join(powers, "; ")
}
