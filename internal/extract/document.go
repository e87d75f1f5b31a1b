package extract

import (
	"regexp"
	"strings"

	"firmas/internal/domain"
)

type classificationRule struct {
	re          *regexp.Regexp
	displayName string
	typeCode    domain.DocumentType
}

// Classification rules in evaluation order: the most specific pattern must
// come before the generic one it specializes. The list is read-only after
// init and safe to share across concurrent runs.
var classificationRules = []classificationRule{
	{regexp.MustCompile(`INSTRUMENTO\s+PARTICULAR\s+DE\s+(?:PRIMEIRA|SEGUNDA|TERCEIRA|QUARTA|QUINTA)?\s*ALTERA[ÇC][ÃA]O\s+(?:DO\s+)?CONTRATO\s+SOCIAL`),
		"Instrumento Particular de Alteração Contrato Social", domain.DocContratoSocial},
	{regexp.MustCompile(`INSTRUMENTO\s+PARTICULAR\s+DE\s+ALTERA[ÇC][ÃA]O`),
		"Instrumento Particular de Alteração", domain.DocContratoSocial},
	{regexp.MustCompile(`INSTRUMENTO\s+PARTICULAR`),
		"Instrumento Particular", domain.DocContratoSocial},
	{regexp.MustCompile(`CONSTITUI[ÇC][ÃA]O\s+(?:POR\s+)?(?:TRANSFORMA[ÇC][ÃA]O)?`),
		"Constituição por Transformação de Empresário em Sociedade", domain.DocContratoSocial},
	{regexp.MustCompile(`ALTERA[ÇC][ÃA]O\s+CONTRATUAL`),
		"Alteração Contratual", domain.DocContratoSocial},
	{regexp.MustCompile(`ALTERA[ÇC][ÃA]O\s+(?:DO\s+)?CONTRATO\s+SOCIAL`),
		"Alteração Contrato Social", domain.DocContratoSocial},
	{regexp.MustCompile(`ADITAMENTO\s+(?:AO\s+)?CONTRATO`),
		"Aditamento ao Contrato Social", domain.DocAditamento},
	{regexp.MustCompile(`TERMO\s+ADITIVO`),
		"Termo Aditivo", domain.DocAditamento},
	{regexp.MustCompile(`ADITAMENTO`),
		"Aditamento", domain.DocAditamento},
	{regexp.MustCompile(`ATA\s+(?:DA\s+)?ASSEMBLEIA\s+GERAL\s+ORDIN[AÁ]RIA\s+E\s+EXTRAORDIN[AÁ]RIA`),
		"Ata de Assembleia Geral Ordinária e Extraordinária", domain.DocAtaDeAssembleia},
	{regexp.MustCompile(`ATA\s+(?:DA\s+)?ASSEMBLEIA\s+GERAL\s+EXTRAORDIN[AÁ]RIA`),
		"Ata de Assembleia Geral Extraordinária", domain.DocAtaDeAssembleia},
	{regexp.MustCompile(`ATA\s+(?:DA\s+)?ASSEMBLEIA\s+GERAL\s+ORDIN[AÁ]RIA`),
		"Ata de Assembleia Geral Ordinária", domain.DocAtaDeAssembleia},
	{regexp.MustCompile(`ATA\s+(?:DA\s+)?ASSEMBLEIA\s+GERAL`),
		"Ata de Assembleia Geral", domain.DocAtaDeAssembleia},
	{regexp.MustCompile(`ATA\s+(?:DE\s+)?ELEI[ÇC][ÃA]O`),
		"Ata de Eleição", domain.DocAtaDeEleicao},
	{regexp.MustCompile(`ATA\s+(?:DE\s+)?REUNI[ÃA]O`),
		"Ata de Reunião", domain.DocAtaDeAssembleia},
	{regexp.MustCompile(`ESTATUTO\s+SOCIAL(?:\s+CONSOLIDADO)?`),
		"Estatuto Social", domain.DocEstatutoSocial},
	{regexp.MustCompile(`CONTRATO\s+SOCIAL`),
		"Contrato Social", domain.DocContratoSocial},
	{regexp.MustCompile(`(?:INSTRUMENTO\s+(?:P[UÚ]BLICO\s+)?(?:DE\s+)?)?PROCURA[ÇC][ÃA]O`),
		"Procuração", domain.DocProcuracao},
	{regexp.MustCompile(`CERTID[ÃA]O`),
		"Certidão Simplificada", domain.DocCertidao},
	{regexp.MustCompile(`FICHA\s+CADASTRAL`),
		"Ficha Cadastral", domain.DocFichaCadastral},
}

var documentNumberRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)NIRE\s*:?\s*(\d+)`),
	regexp.MustCompile(`(?i)Protocolo\s*:?\s*(\d+)`),
	regexp.MustCompile(`(?i)Registro\s*:?\s*(\d+)`),
}

// IdentifyDocumentType returns the type code of the first matching rule,
// or DocGenerico when no rule matches.
func IdentifyDocumentType(text string) domain.DocumentType {
	if text == "" {
		return domain.DocGenerico
	}
	normalized := CollapseSpaces(strings.ToUpper(text))
	for _, rule := range classificationRules {
		if rule.re.MatchString(normalized) {
			return rule.typeCode
		}
	}
	return domain.DocGenerico
}

// ExtractDocumentName walks the same ordered rule list as
// IdentifyDocumentType but unconditionally skips any rule whose display
// name denotes a power of attorney, so the display name is never
// "Procuração" even when that is the only match. IdentifyDocumentType is
// deliberately not affected and may still classify the type code as
// PROCURACAO.
func ExtractDocumentName(ocrText string) string {
	if ocrText == "" {
		return domain.NotAvailable
	}
	normalized := CollapseSpaces(strings.ToUpper(ocrText))
	for _, rule := range classificationRules {
		if !rule.re.MatchString(normalized) {
			continue
		}
		if strings.Contains(strings.ToUpper(rule.displayName), "PROCURAÇÃO") {
			continue
		}
		return rule.displayName
	}
	return domain.NotAvailable
}

// ExtractDocumentNumber finds a registry number (NIRE, protocol, filing).
func ExtractDocumentNumber(text string) string {
	if text == "" {
		return ""
	}
	for _, re := range documentNumberRes {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

// ExtractDocumentMetadata builds the immutable per-document record consumed
// by the multi-document analyzer and the marked-text generation. The
// signature date here comes from the level-0 resolver only; proximity
// scoring is reserved for the aggregate result.
func ExtractDocumentMetadata(ocrText string, index int, uri string) domain.DocumentRecord {
	fileName := uri
	if i := strings.LastIndex(uri, "/"); i >= 0 {
		fileName = uri[i+1:]
	}
	signatureDate := ExtractSignatureDateLevel0(ocrText)
	registrationDate := ExtractRegistrationDate(ocrText)
	return domain.DocumentRecord{
		Index:            index,
		FileName:         fileName,
		DocumentType:     IdentifyDocumentType(ocrText),
		SignatureDate:    signatureDate,
		RegistrationDate: registrationDate,
		DocumentNumber:   ExtractDocumentNumber(ocrText),
		PriorityScore:    PriorityScore(signatureDate, registrationDate),
	}
}
