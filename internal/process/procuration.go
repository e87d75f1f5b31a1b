package process

import (
	"regexp"
	"strings"

	"firmas/internal/domain"
	"firmas/internal/extract"
)

var procuracaoRe = regexp.MustCompile(`(?i)procura[çc][ãa]o`)

// Attorney names follow a grantee label. The label matches any case but the
// captured run must start uppercase, so sentence fragments are not taken
// for names.
var attorneyNameRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i:outorgado)[:\s]+([A-Z][a-zA-Z\s]+)`),
	regexp.MustCompile(`(?i:procurador)[:\s]+([A-Z][a-zA-Z\s]+)`),
	regexp.MustCompile(`(?i:mandat[áa]rio)[:\s]+([A-Z][a-zA-Z\s]+)`),
}

var procuracaoDateRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)procura[çc][ãa]o.*?(\d{1,2}[/-]\d{1,2}[/-]\d{4})`),
	regexp.MustCompile(`(?i)outorgada\s+em\s+(\d{1,2}[/-]\d{1,2}[/-]\d{4})`),
}

var validityKeywords = []string{"mandato", "prazo", "vigencia", "vigência", "validade", "duracao", "duração"}

var sentenceSplitRe = regexp.MustCompile(`[\n.]+`)

// AugmentWithProcuration folds power-of-attorney information into the
// result when the OCR text contains one. Attorney names go only into the
// plain-text representantes_legais display string, suffixed "(Procurador)";
// they are never added to the structured list, which excludes procurers. A
// validity date, when found, is appended to the consolidated powers text.
func AugmentWithProcuration(result *domain.ExtractionResult, ocrFull string) {
	if !procuracaoRe.MatchString(ocrFull) {
		return
	}

	nomes := extractAttorneyNames(ocrFull)
	validade := extract.ExtractValidityDate(ocrFull)

	if len(nomes) > 0 {
		appendAttorneysToDisplay(result, nomes)
	}
	if validade != "" {
		appendValidityToPowers(result, validade)
	}
}

func extractAttorneyNames(ocrFull string) []string {
	var nomes []string
	seen := make(map[string]struct{})
	for _, re := range attorneyNameRes {
		for _, m := range re.FindAllStringSubmatch(ocrFull, -1) {
			nome := extract.CollapseSpaces(m[1])
			if len(nome) <= 5 {
				continue
			}
			if _, ok := seen[nome]; ok {
				continue
			}
			seen[nome] = struct{}{}
			nomes = append(nomes, nome)
		}
	}
	return nomes
}

func appendAttorneysToDisplay(result *domain.ExtractionResult, nomes []string) {
	separator := ", "
	if strings.Contains(result.RepresentantesLegais, "\n") {
		separator = "\n"
	}

	suffixed := make([]string, len(nomes))
	for i, nome := range nomes {
		suffixed[i] = nome + " (Procurador)"
	}
	attorneys := strings.Join(suffixed, separator)

	if result.RepresentantesLegais != "" {
		result.RepresentantesLegais += separator + attorneys
	} else {
		result.RepresentantesLegais = attorneys
	}
}

func appendValidityToPowers(result *domain.ExtractionResult, validade string) {
	note := "Validade da procuração: " + validade
	if result.PoderesERepresentacao != "" && result.PoderesERepresentacao != domain.NotAvailable {
		result.PoderesERepresentacao += ". " + note
	} else {
		result.PoderesERepresentacao = note
	}
}

// ExtractProcurationDate finds the grant date of a power of attorney, as a
// raw numeric date string.
func ExtractProcurationDate(ocrFull string) string {
	for _, re := range procuracaoDateRes {
		if m := re.FindStringSubmatch(ocrFull); m != nil {
			return m[1]
		}
	}
	return ""
}

// ExtractValidityFromRules returns the first sentence of the rules text
// that mentions a validity keyword, or "" when none does.
func ExtractValidityFromRules(regras string) string {
	if strings.TrimSpace(regras) == "" || strings.TrimSpace(regras) == domain.NotAvailable {
		return ""
	}
	lower := strings.ToLower(regras)
	found := false
	for _, kw := range validityKeywords {
		if strings.Contains(lower, kw) {
			found = true
			break
		}
	}
	if !found {
		return ""
	}
	for _, trecho := range sentenceSplitRe.Split(regras, -1) {
		trechoLower := strings.ToLower(trecho)
		for _, kw := range validityKeywords {
			if strings.Contains(trechoLower, kw) {
				return strings.TrimSpace(trecho)
			}
		}
	}
	return ""
}
