package domain

// NotAvailable is the sentinel emitted for every field that could not be
// determined from the source documents. Consumers must treat it as
// equivalent to empty, never as literal data. The byte sequence is part of
// the output contract and must not change.
const NotAvailable = "Dado não disponível no documento"

// DocumentType is the classification code assigned to a source document.
type DocumentType string

const (
	DocContratoSocial  DocumentType = "CONTRATO_SOCIAL"
	DocEstatutoSocial  DocumentType = "ESTATUTO_SOCIAL"
	DocAtaDeAssembleia DocumentType = "ATA_DE_ASSEMBLEIA"
	DocAtaDeEleicao    DocumentType = "ATA_DE_ELEICAO"
	DocAditamento      DocumentType = "ADITAMENTO"
	DocProcuracao      DocumentType = "PROCURACAO"
	DocCertidao        DocumentType = "CERTIDAO"
	DocFichaCadastral  DocumentType = "FICHA_CADASTRAL"
	DocGenerico        DocumentType = "DOCUMENTO_GENERICO"
)

// DocumentTypeNames maps type codes to display names.
var DocumentTypeNames = map[DocumentType]string{
	DocContratoSocial:  "Contrato Social",
	DocEstatutoSocial:  "Estatuto Social",
	DocAtaDeAssembleia: "Ata de Assembleia Geral",
	DocAtaDeEleicao:    "Ata de Eleição",
	DocAditamento:      "Aditamento",
	DocProcuracao:      "Procuração",
	DocCertidao:        "Certidão",
	DocFichaCadastral:  "Ficha Cadastral",
	DocGenerico:        "Documento Genérico",
}

// AccessoryTypes are documents that complement corporate data but are not
// an authoritative source (powers of attorney, amendments, certificates).
var AccessoryTypes = map[DocumentType]bool{
	DocProcuracao:     true,
	DocAditamento:     true,
	DocCertidao:       true,
	DocFichaCadastral: true,
}

// CorporateTypes are the primary corporate-structure documents.
var CorporateTypes = map[DocumentType]bool{
	DocEstatutoSocial:  true,
	DocAtaDeAssembleia: true,
	DocAtaDeEleicao:    true,
	DocContratoSocial:  true,
}

// IsAccessory reports whether t belongs to the accessory document set.
func (t DocumentType) IsAccessory() bool { return AccessoryTypes[t] }

// IsCorporate reports whether t belongs to the corporate document set.
func (t DocumentType) IsCorporate() bool { return CorporateTypes[t] }

// MaxDocumentsPerRequest caps how many documents a single request may carry.
// Documents beyond the cap are recorded as ignored, never processed.
const MaxDocumentsPerRequest = 3

// CNPJLength is the number of digits of a structurally valid CNPJ.
const CNPJLength = 14

// Processing-type labels used in the output metadata block.
const (
	ProcessingBatch  = "LOTE"
	ProcessingSingle = "ÚNICO"
)
