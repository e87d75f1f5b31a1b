package extract

import (
	"regexp"

	"firmas/internal/domain"
)

// CNPJ formatting block boundaries (DD.DDD.DDD/DDDD-DD).
const (
	cnpjFirstBlockEnd  = 2
	cnpjSecondBlockEnd = 5
	cnpjThirdBlockEnd  = 8
	cnpjFourthBlockEnd = 12
)

// Ordered CNPJ patterns: label-anchored first, bare scans after. The first
// match whose digit-only form has exactly 14 digits wins.
var cnpjPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)CNPJ[:\s-]*(\d{2}\.?\d{3}\.?\d{3}/?\d{4}-?\d{2})`),
	regexp.MustCompile(`(?i)SEDE[:\s-]*(\d{2}\.?\d{3}\.?\d{3}/?\d{4}-?\d{2})`),
	regexp.MustCompile(`\b(\d{2}\.?\d{3}\.?\d{3}/?\d{4}-?\d{2})\b`),
	regexp.MustCompile(`\b(\d{14})\b`),
}

var nonDigitRe = regexp.MustCompile(`\D`)

// ExtractCNPJ scans OCR text for a CNPJ and returns it formatted, or ""
// when no structurally valid candidate exists.
func ExtractCNPJ(ocrText string) string {
	if ocrText == "" {
		return ""
	}
	for _, re := range cnpjPatterns {
		for _, m := range re.FindAllStringSubmatch(ocrText, -1) {
			digits := nonDigitRe.ReplaceAllString(m[1], "")
			if len(digits) == domain.CNPJLength {
				return NormalizeCNPJ(digits)
			}
		}
	}
	return ""
}

// NormalizeCNPJ strips every non-digit and formats the result as
// DD.DDD.DDD/DDDD-DD. Inputs without exactly 14 digits yield "". Only the
// structural length is checked; verification digits are not validated.
func NormalizeCNPJ(raw string) string {
	if raw == "" {
		return ""
	}
	digits := nonDigitRe.ReplaceAllString(raw, "")
	if len(digits) != domain.CNPJLength {
		return ""
	}
	return digits[:cnpjFirstBlockEnd] + "." +
		digits[cnpjFirstBlockEnd:cnpjSecondBlockEnd] + "." +
		digits[cnpjSecondBlockEnd:cnpjThirdBlockEnd] + "/" +
		digits[cnpjThirdBlockEnd:cnpjFourthBlockEnd] + "-" +
		digits[cnpjFourthBlockEnd:]
}

// IsStructurallyValidCNPJ reports whether the value holds exactly 14 digits
// once separators are removed.
func IsStructurallyValidCNPJ(value string) bool {
	if value == "" {
		return false
	}
	return len(nonDigitRe.ReplaceAllString(value, "")) == domain.CNPJLength
}
