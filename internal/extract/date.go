package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoDateRe     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	numericDateRe = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{4})\b`)
	// Scan forms used when walking a whole document for candidates.
	simpleDateScanRe   = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`)
	extendedDateScanRe = regexp.MustCompile(`(?i)\d+\s+de\s+[\p{L}]+\s+de\s+\d{4}`)
	extendedDateRe     = regexp.MustCompile(`(?i)(\d{1,2})\s+de\s+([\p{L}]+)\s+de\s+(\d{4})`)

	nameTokenRe = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)+\b`)
)

// Month-name table covering accented and unaccented OCR spellings.
var monthNames = map[string]string{
	"janeiro": "01", "fevereiro": "02", "março": "03", "marco": "03",
	"abril": "04", "maio": "05", "junho": "06", "julho": "07",
	"agosto": "08", "setembro": "09", "outubro": "10",
	"novembro": "11", "dezembro": "12",
}

// Explicit signature cue phrases, tried against accent-folded lowercase
// text. First normalized hit wins.
var signatureCueRes = []*regexp.Regexp{
	regexp.MustCompile(`assinado\s+em\s+(\d{1,2}[/-]\d{1,2}[/-]\d{4})`),
	regexp.MustCompile(`firmado\s+em\s+(\d{1,2}[/-]\d{1,2}[/-]\d{4})`),
	regexp.MustCompile(`subscrito\s+em\s+(\d{1,2}[/-]\d{1,2}[/-]\d{4})`),
	regexp.MustCompile(`datado\s+de\s+(\d{1,2}[/-]\d{1,2}[/-]\d{4})`),
	regexp.MustCompile(`sao\s+paulo,?\s*(\d{1,2}[/-]\d{1,2}[/-]\d{4})`),
	regexp.MustCompile(`assinado\s+em\s+(\d{1,2}\s+de\s+[a-z]+\s+de\s+\d{4})`),
	regexp.MustCompile(`firmado\s+em\s+(\d{1,2}\s+de\s+[a-z]+\s+de\s+\d{4})`),
}

// Dates preceded by a statute citation are never signature dates.
var lawContextKeywords = []string{"lei", "decreto", "portaria", "resolucao", "medida provisoria"}

// Keywords that mark a signature section when found near a candidate date.
var signatureSectionKeywords = []string{
	"assinatura", "assina", "testemunha", "socio", "administrador",
	"diretor", "presidente", "outorgante", "outorgado",
}

var validityDateRes = []*regexp.Regexp{
	regexp.MustCompile(`valid[ao].*?(\d{1,2}[/-]\d{1,2}[/-]\d{4})`),
	regexp.MustCompile(`vigencia.*?(\d{1,2}[/-]\d{1,2}[/-]\d{4})`),
	regexp.MustCompile(`prazo.*?(\d{1,2}[/-]\d{1,2}[/-]\d{4})`),
	regexp.MustCompile(`\bate\s+(\d{1,2}[/-]\d{1,2}[/-]\d{4})`),
}

var mandateValidityRes = []*regexp.Regexp{
	regexp.MustCompile(`mandato.*?\bate\s+(\d{1,2}[/-]\d{1,2}[/-]\d{4})`),
	regexp.MustCompile(`mandato.*?vigente\s+ate\s+(\d{1,2}[/-]\d{1,2}[/-]\d{4})`),
	regexp.MustCompile(`eleitos?\s+para\s+mandato.*?(\d{1,2}[/-]\d{1,2}[/-]\d{4})`),
	regexp.MustCompile(`mandato.*?encerra.*?em\s+(\d{1,2}[/-]\d{1,2}[/-]\d{4})`),
}

var registrationDateRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)registrado em (\d{1,2}[/-]\d{1,2}[/-]\d{4})`),
	regexp.MustCompile(`(?i)arquivado em (\d{1,2}[/-]\d{1,2}[/-]\d{4})`),
	regexp.MustCompile(`(?i)protocolado em (\d{1,2}[/-]\d{1,2}[/-]\d{4})`),
	regexp.MustCompile(`(?i)NIRE.*(\d{1,2}[/-]\d{1,2}[/-]\d{4})`),
}

// NormalizeDate converts any recognized lexical date form to ISO
// YYYY-MM-DD: ISO passes through, numeric D/M/YYYY (slash or hyphen) and
// extended Portuguese "D de MÊS de YYYY" are validated against real
// calendar rules. Returns "" when no valid date is present.
func NormalizeDate(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if isoDateRe.MatchString(text) {
		return text
	}

	if m := numericDateRe.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if isValidDate(year, month, day) {
			return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		}
	}

	if m := extendedDateRe.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[3])
		monthName := strings.ToLower(FoldAccents(m[2]))
		if mm, ok := monthNames[monthName]; ok {
			month, _ := strconv.Atoi(mm)
			if isValidDate(year, month, day) {
				return fmt.Sprintf("%04d-%s-%02d", year, mm, day)
			}
		}
	}

	return ""
}

func isValidDate(year, month, day int) bool {
	if year < 1 || month < 1 || month > 12 || day < 1 {
		return false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return d.Year() == year && int(d.Month()) == month && d.Day() == day
}

// ExtractSignatureDateLevel0 scans accent-folded lowercase text for
// explicit signature cue phrases and returns the first normalized date.
func ExtractSignatureDateLevel0(ocrText string) string {
	if ocrText == "" {
		return ""
	}
	folded := strings.ToLower(FoldAccents(ocrText))
	for _, re := range signatureCueRes {
		for _, m := range re.FindAllStringSubmatch(folded, -1) {
			if normalized := NormalizeDate(m[1]); normalized != "" {
				return normalized
			}
		}
	}
	return ""
}

type dateCandidate struct {
	normalized string
	score      int
}

// FindSignatureDateByProximity is the level-1 resolver, used only when no
// explicit cue phrase exists. Every numeric and extended date occurrence is
// collected; candidates preceded (within 100 chars) by a statute citation
// are discarded; survivors are scored by signature-section keywords and
// name-like tokens within ±500 chars. The highest score wins and ties keep
// document scan order.
func FindSignatureDateByProximity(ocrText string) string {
	if ocrText == "" {
		return ""
	}
	folded := FoldAccents(ocrText)

	var candidates []dateCandidate
	collect := func(re *regexp.Regexp) {
		for _, loc := range re.FindAllStringIndex(folded, -1) {
			raw := folded[loc[0]:loc[1]]
			normalized := NormalizeDate(raw)
			if normalized == "" {
				continue
			}
			if inLawContext(folded, loc[0]) {
				continue
			}
			score := signatureSectionScore(folded, loc[0]) + 10*countNamesNear(folded, loc[0])
			candidates = append(candidates, dateCandidate{normalized: normalized, score: score})
		}
	}
	collect(simpleDateScanRe)
	collect(extendedDateScanRe)

	if len(candidates) == 0 {
		return ""
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.score > best.score {
			best = c
		}
	}
	return best.normalized
}

func inLawContext(text string, position int) bool {
	start := position - 100
	if start < 0 {
		start = 0
	}
	window := strings.ToLower(text[start:position])
	for _, kw := range lawContextKeywords {
		if strings.Contains(window, kw) {
			return true
		}
	}
	return false
}

func signatureSectionScore(text string, position int) int {
	window := strings.ToLower(contextWindow(text, position, 500))
	score := 0
	for _, kw := range signatureSectionKeywords {
		if strings.Contains(window, kw) {
			score += 10
		}
	}
	return score
}

func countNamesNear(text string, position int) int {
	return len(nameTokenRe.FindAllString(contextWindow(text, position, 500), -1))
}

func contextWindow(text string, position, size int) string {
	start := position - size
	if start < 0 {
		start = 0
	}
	end := position + size
	if end > len(text) {
		end = len(text)
	}
	return text[start:end]
}

// ExtractValidityDate finds a power-of-attorney validity date via its
// label-anchored pattern set and returns the first normalized match.
func ExtractValidityDate(ocrFull string) string {
	return firstNormalizedMatch(ocrFull, validityDateRes)
}

// ExtractMandateValidityDate finds a board-mandate expiry date in LLM
// response text.
func ExtractMandateValidityDate(responseText string) string {
	return firstNormalizedMatch(responseText, mandateValidityRes)
}

func firstNormalizedMatch(text string, res []*regexp.Regexp) string {
	if text == "" {
		return ""
	}
	folded := strings.ToLower(FoldAccents(text))
	for _, re := range res {
		if m := re.FindStringSubmatch(folded); m != nil {
			if normalized := NormalizeDate(m[1]); normalized != "" {
				return normalized
			}
		}
	}
	return ""
}

// ExtractRegistrationDate finds the trade-board filing date.
func ExtractRegistrationDate(text string) string {
	if text == "" {
		return ""
	}
	for _, re := range registrationDateRes {
		if m := re.FindStringSubmatch(text); m != nil {
			if normalized := NormalizeDate(m[1]); normalized != "" {
				return normalized
			}
		}
	}
	return ""
}

// FindMostRecentDate returns the display form of the most recent date
// found in the text, or "" when none exists.
func FindMostRecentDate(text string) string {
	type found struct{ normalized, display string }
	var dates []found
	for _, raw := range simpleDateScanRe.FindAllString(text, -1) {
		if n := NormalizeDate(raw); n != "" {
			dates = append(dates, found{n, raw})
		}
	}
	for _, raw := range extendedDateScanRe.FindAllString(text, -1) {
		if n := NormalizeDate(raw); n != "" {
			dates = append(dates, found{n, raw})
		}
	}
	if len(dates) == 0 {
		return ""
	}
	best := dates[0]
	for _, d := range dates[1:] {
		if d.normalized > best.normalized {
			best = d
		}
	}
	return best.display
}

// PriorityScore converts a document's dates to its advisory ranking score:
// epoch seconds of the registration date when present, else the signature
// date, else 0.
func PriorityScore(signatureDate, registrationDate string) int64 {
	dateStr := registrationDate
	if dateStr == "" {
		dateStr = signatureDate
	}
	if dateStr == "" {
		return 0
	}
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return 0
	}
	return t.Unix()
}
