package domain

// Representative is one legal representative extracted from the LLM
// analysis. Every field defaults to NotAvailable when the source text does
// not determine it. When a principal field (signature type, representation
// rules, rules-validity date) holds a real value its paired origin field
// must hold one too; violations are surfaced as anomalies by the validator.
type Representative struct {
	Nome                      string `json:"nome"`
	CPF                       string `json:"cpf"`
	Cargo                     string `json:"cargo"`
	EnderecoResidencia        string `json:"endereco_residencia"`
	TipoAssinatura            string `json:"tipo_assinatura"`
	OrigemAssinatura          string `json:"origem_assinatura"`
	RegrasRepresentacao       string `json:"regras_representacao"`
	OrigemRegrasRepresentacao string `json:"origem_regras_representacao"`
	DataValidadeRegras        string `json:"data_validade_regras"`
	OrigemDataValidade        string `json:"origem_data_validade"`
}

// ExtractionResult is the aggregate "data" block of the final response.
// It is built incrementally across the pipeline and finalized by the
// response builder; field names are part of the output contract.
type ExtractionResult struct {
	JuntaComercial            string           `json:"junta_comercial"`
	CNPJ                      string           `json:"cnpj"`
	RazaoSocial               string           `json:"razao_social"`
	NaturezaJuridica          string           `json:"natureza_juridica"`
	Endereco                  string           `json:"endereco"`
	CotasSocietarias          string           `json:"cotas_societarias"`
	RepresentantesLegais      string           `json:"representantes_legais"`
	RepresentantesDetalhados  []Representative `json:"representantes_detalhados"`
	QuantidadeRepresentantes  int              `json:"quantidade_representantes"`
	ReferenciaDaOrigem        string           `json:"referencia_da_origem"`
	DataAssinatura            string           `json:"data_assinatura"`
	PoderesERepresentacao     string           `json:"poderes_e_representacao"`
}

// DocumentRecord holds the per-document metadata extracted before the LLM
// call. It is created once during metadata extraction and never mutated.
type DocumentRecord struct {
	Index            int          `json:"document_index"`
	FileName         string       `json:"file_name"`
	DocumentType     DocumentType `json:"document_type"`
	SignatureDate    string       `json:"signature_date"`
	RegistrationDate string       `json:"registration_date"`
	DocumentNumber   string       `json:"document_number"`
	// PriorityScore is epoch seconds of the registration date, else the
	// signature date, else 0. Documents without a usable date rank last.
	PriorityScore int64 `json:"priority_score"`
}

// DocumentSummary is the short form of a DocumentRecord used inside the
// advisory priority analysis.
type DocumentSummary struct {
	FileName      string       `json:"file_name"`
	DocumentType  DocumentType `json:"document_type"`
	SignatureDate string       `json:"signature_date"`
	PriorityScore int64        `json:"priority_score,omitempty"`
	IsAccessory   bool         `json:"is_accessory"`
	IsCorporate   bool         `json:"is_corporate"`
}

// CorporateReference points at the first corporate-type document of a batch.
type CorporateReference struct {
	FileName      string       `json:"file_name"`
	DocumentType  DocumentType `json:"document_type"`
	SignatureDate string       `json:"signature_date"`
}

// PriorityAnalysis is the advisory multi-document ranking. It never changes
// which document's values are authoritative; all documents are presented to
// the LLM with equal weight.
type PriorityAnalysis struct {
	MostRecentDocument     DocumentSummary     `json:"most_recent_document"`
	CorporateDocumentRef   *CorporateReference `json:"corporate_document_reference"`
	ExtractionStrategy     string              `json:"extraction_strategy"`
	ComplementationNeeded  bool                `json:"complementation_needed"`
	DocumentsByPriority    []DocumentSummary   `json:"documents_by_priority"`
	PriorityRule           string              `json:"priority_rule"`
}

// DocumentInfo summarizes how many documents a request carried and how many
// were actually processed.
type DocumentInfo struct {
	TotalDocuments      int      `json:"total_documents"`
	ProcessedDocuments  int      `json:"processed_documents"`
	IsMultipleDocuments bool     `json:"is_multiple_documents"`
	ExceededLimit       bool     `json:"exceeded_limit"`
	IgnoredDocuments    []string `json:"ignored_documents,omitempty"`
}

// DocumentMetadata is the optional metadata block of the final response.
type DocumentMetadata struct {
	TotalDocuments      int               `json:"total_documents"`
	ProcessedDocuments  int               `json:"processed_documents"`
	IsMultipleDocuments bool              `json:"is_multiple_documents"`
	ProcessingType      string            `json:"processing_type"`
	ExceededLimit       bool              `json:"exceeded_limit"`
	Warning             string            `json:"warning,omitempty"`
	IgnoredDocuments    []string          `json:"ignored_documents,omitempty"`
	PriorityAnalysis    *PriorityAnalysis `json:"priority_analysis,omitempty"`
	ChangesSummary      string            `json:"changes_summary,omitempty"`
	ConflictWarnings    []string          `json:"conflict_warnings,omitempty"`
}

// Response is the final output envelope, one per input request.
type Response struct {
	ID               string            `json:"id"`
	Data             ExtractionResult  `json:"data"`
	DocumentMetadata *DocumentMetadata `json:"document_metadata,omitempty"`
}

// WorkRequest is the inbound message body naming the documents to process.
type WorkRequest struct {
	ID      string   `json:"id"`
	PDFURIs []string `json:"pdf_uris"`
	CNPJ    string   `json:"cnpj"`
}

// OCRRecord captures the OCR output of a single document for auditing.
type OCRRecord struct {
	DocumentIndex   int    `json:"document_index"`
	FileName        string `json:"file_name"`
	OCRText         string `json:"ocr_text"`
	TotalPages      int    `json:"total_pages"`
	ChunksProcessed int    `json:"chunks_processed"`
}

// GenAIMetadata records which model answered and its token usage.
type GenAIMetadata struct {
	Model            string `json:"model"`
	PromptTokens     int    `json:"prompt_tokens"`
	CandidateTokens  int    `json:"candidate_tokens"`
	TotalTokens      int    `json:"total_tokens"`
	FinishReason     string `json:"finish_reason,omitempty"`
}

// Receipt is the processing audit record uploaded to object storage after
// each request, successful or not.
type Receipt struct {
	RequestID      string         `json:"request_id"`
	OCRData        []OCRRecord    `json:"ocr_data"`
	GenAIData      *GenAIMetadata `json:"genai_data,omitempty"`
	OutputResponse string         `json:"output_response,omitempty"`
	StartTime      string         `json:"start_time"`
	EndTime        string         `json:"end_time,omitempty"`
	DocumentInfo   *DocumentInfo  `json:"document_info,omitempty"`
}
