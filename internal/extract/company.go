package extract

import (
	"regexp"
	"strings"

	"firmas/internal/domain"
)

// Corporate suffix tokens ordered longest first so the most specific legal
// form wins when several would match.
var companySuffixes = []string{
	"EMPRESA INDIVIDUAL DE RESPONSABILIDADE LIMITADA",
	"MICROEMPREENDEDOR INDIVIDUAL",
	"EMPRESA DE PEQUENO PORTE",
	"EMPRESARIO INDIVIDUAL",
	"SOCIEDADE SIMPLES",
	"MICROEMPRESA",
	"COOPERATIVA",
	"ASSOCIACAO",
	"FUNDACAO",
	"EIRELI",
	"LTDA.",
	"OSCIP",
	"LTDA",
	"COOP",
	"S.A.",
	"EPP",
	"MEI",
	"ONG",
	"S/A",
	"EI",
	"ME",
	"SA",
	"SS",
}

const suffixAlternation = `(?:LTDA|S\.A\.|SA|S/A|EIRELI|MEI|EI|LTDA\.|EPP|ME|SOCIEDADE SIMPLES|SS)`

// Razão social patterns: label-anchored first, then the bare heuristic of a
// long uppercase run ending in a corporate suffix.
var razaoSocialPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)NOME EMPRESARIAL[:\s\n]+([A-ZÀ-Ú][A-ZÀ-Ú\s&'\-.]+` + suffixAlternation + `\.?)`),
	regexp.MustCompile(`(?im)RAZ[AÃ]O SOCIAL[:\s\n]+([A-ZÀ-Ú][A-ZÀ-Ú\s&'\-.]+` + suffixAlternation + `\.?)`),
	regexp.MustCompile(`(?im)EMPRESA[:\s\n]+([A-ZÀ-Ú][A-ZÀ-Ú\s&'\-.]+` + suffixAlternation + `\.?)`),
	regexp.MustCompile(`(?m)\b([A-ZÀ-Ú][A-ZÀ-Ú\s&'\-.]{10,}` + suffixAlternation + `\.?)\b`),
}

// S.A. spelled with stray spaces or a slash, as OCR often renders it.
var saPatterns = []*regexp.Regexp{
	regexp.MustCompile(`S\s*\.\s*A\s*\.`),
	regexp.MustCompile(`S\s*\.\s*A\b`),
	regexp.MustCompile(`S\s*/\s*A\b`),
}

var juntasComerciais = []struct {
	re   *regexp.Regexp
	name string
}{
	{regexp.MustCompile(`(?i)JUCESP|JUNTA COMERCIAL DO ESTADO DE S[AÃ]O PAULO`), "Junta Comercial do Estado de São Paulo (JUCESP)"},
	{regexp.MustCompile(`(?i)JUCERJA|JUNTA COMERCIAL DO ESTADO DO RIO DE JANEIRO`), "Junta Comercial do Estado do Rio de Janeiro (JUCERJA)"},
	{regexp.MustCompile(`(?i)JUCEMG|JUNTA COMERCIAL DO ESTADO DE MINAS GERAIS`), "Junta Comercial do Estado de Minas Gerais (JUCEMG)"},
	{regexp.MustCompile(`(?i)JUCEPAR|JUNTA COMERCIAL DO ESTADO DO PARAN[AÁ]`), "Junta Comercial do Estado do Paraná (JUCEPAR)"},
	{regexp.MustCompile(`(?i)JUCERGS|JUNTA COMERCIAL DO ESTADO DO RIO GRANDE DO SUL`), "Junta Comercial do Estado do Rio Grande do Sul (JUCERGS)"},
	{regexp.MustCompile(`(?i)JUCESC|JUNTA COMERCIAL DO ESTADO DE SANTA CATARINA`), "Junta Comercial do Estado de Santa Catarina (JUCESC)"},
	{regexp.MustCompile(`(?i)JUCEB|JUNTA COMERCIAL DO ESTADO DA BAHIA`), "Junta Comercial do Estado da Bahia (JUCEB)"},
	{regexp.MustCompile(`(?i)JUCEPE|JUNTA COMERCIAL DO ESTADO DE PERNAMBUCO`), "Junta Comercial do Estado de Pernambuco (JUCEPE)"},
	{regexp.MustCompile(`(?i)JUCEC|JUNTA COMERCIAL DO ESTADO DO CEAR[AÁ]`), "Junta Comercial do Estado do Ceará (JUCEC)"},
	{regexp.MustCompile(`(?i)JCDF|JUNTA COMERCIAL DO DISTRITO FEDERAL`), "Junta Comercial do Distrito Federal (JCDF)"},
}

var enderecoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)ENDERE[ÇC]O[:\s\n]+([^\n]{20,100})`),
	regexp.MustCompile(`(?im)SEDE[:\s\n]+([^\n]{20,100})`),
	regexp.MustCompile(`(?im)LOCALIZADA?\s+(?:NA|NO|EM)\s+([^\n]{20,100})`),
}

// ExtractRazaoSocial finds the registered company name by label-anchored
// patterns or the bare corporate-suffix heuristic. Returns "" if no
// candidate longer than five characters exists.
func ExtractRazaoSocial(ocrText string) string {
	if ocrText == "" {
		return ""
	}
	for _, re := range razaoSocialPatterns {
		for _, m := range re.FindAllStringSubmatch(ocrText, -1) {
			razao := CollapseSpaces(m[1])
			if len(razao) > 5 {
				return razao
			}
		}
	}
	return ""
}

// ExtractNaturezaJuridica derives the legal-entity type from the razão
// social. S.A. spacing variants are probed first; otherwise whitespace
// between single letters is removed and the longest suffix token matching
// as a whole word wins. Returns the sentinel when nothing matches.
func ExtractNaturezaJuridica(razaoSocial string) string {
	if razaoSocial == "" {
		return domain.NotAvailable
	}
	upper := strings.ToUpper(razaoSocial)

	for _, re := range saPatterns {
		if re.MatchString(upper) {
			return "S.A."
		}
	}

	normalized := mergeSpacedLetters(upper)
	for i, re := range suffixWordRes {
		if re.MatchString(normalized) {
			return companySuffixes[i]
		}
	}
	return domain.NotAvailable
}

var suffixWordRes = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(companySuffixes))
	for i, suffix := range companySuffixes {
		res[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(suffix) + `\b`)
	}
	return res
}()

// mergeSpacedLetters joins runs of single-letter tokens ("L T D A" →
// "LTDA") without gluing ordinary words together.
func mergeSpacedLetters(text string) string {
	fields := strings.Fields(text)
	var out []string
	var run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			out = append(out, run.String())
			run.Reset()
		}
	}
	for _, f := range fields {
		if len([]rune(f)) == 1 {
			run.WriteString(f)
			continue
		}
		flush()
		out = append(out, f)
	}
	flush()
	return strings.Join(out, " ")
}

// ExtractJuntaComercial matches the fixed registry-board table and returns
// the canonical "Full Name (ABBR)" string, or "" when absent.
func ExtractJuntaComercial(ocrText string) string {
	if ocrText == "" {
		return ""
	}
	upper := strings.ToUpper(ocrText)
	for _, j := range juntasComerciais {
		if j.re.MatchString(upper) {
			return j.name
		}
	}
	return ""
}

// ExtractEndereco captures 20-100 characters after an address label.
// Matches shorter than 16 characters after cleanup are discarded as noise.
func ExtractEndereco(ocrText string) string {
	if ocrText == "" {
		return ""
	}
	for _, re := range enderecoPatterns {
		for _, m := range re.FindAllStringSubmatch(ocrText, -1) {
			endereco := CollapseSpaces(m[1])
			if len(endereco) > 15 {
				return endereco
			}
		}
	}
	return ""
}
