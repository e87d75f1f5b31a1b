package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"firmas/internal/domain"
	"firmas/internal/extract"
	"firmas/internal/port"
	"firmas/internal/process"
	"firmas/internal/validate"
)

// ProcessorConfig holds the processing settings for one Processor.
type ProcessorConfig struct {
	ReceiptBucket    string
	PromptURI        string
	MaxPagesPerChunk int
}

// Processor runs the full extraction pipeline for one work request:
// download, split, OCR, LLM call, interpretation, representative handling,
// procuration augmentation, multi-document analysis and response assembly.
type Processor struct {
	queue      port.MessageQueue
	storage    port.ObjectStorage
	ocr        port.OCREngine
	llm        port.TextGenerator
	splitter   port.PageSplitter
	anomalies  port.AnomalySink
	cfg        ProcessorConfig
	basePrompt string

	processed atomic.Int64
	failed    atomic.Int64
}

// NewProcessor creates a new Processor.
func NewProcessor(queue port.MessageQueue, storage port.ObjectStorage,
	ocr port.OCREngine, llm port.TextGenerator, splitter port.PageSplitter,
	anomalies port.AnomalySink, cfg ProcessorConfig) *Processor {
	return &Processor{
		queue:     queue,
		storage:   storage,
		ocr:       ocr,
		llm:       llm,
		splitter:  splitter,
		anomalies: anomalies,
		cfg:       cfg,
	}
}

// LoadBasePrompt fetches the base prompt from object storage. A missing
// prompt is not fatal; the OCR text is then sent as-is.
func (p *Processor) LoadBasePrompt(ctx context.Context) {
	if p.cfg.PromptURI == "" {
		return
	}
	uri := p.cfg.PromptURI
	if !strings.HasPrefix(uri, "s3://") {
		uri = fmt.Sprintf("s3://%s/%s", p.cfg.ReceiptBucket, uri)
	}
	data, err := p.storage.Download(ctx, uri)
	if err != nil {
		log.Printf("service.Processor: base prompt not loaded from %s: %v", uri, err)
		return
	}
	p.basePrompt = string(data)
}

// Stats reports how many messages this processor completed and failed.
func (p *Processor) Stats() (processed, failed int64) {
	return p.processed.Load(), p.failed.Load()
}

// ProcessMessage handles one queue message end to end. The returned bool
// says whether the message should be deleted from the input queue.
func (p *Processor) ProcessMessage(ctx context.Context, msg port.InboundMessage) bool {
	receipt := &domain.Receipt{StartTime: time.Now().Format(time.RFC3339)}

	req, err := validate.ParseWorkRequest(msg.Body)
	if err != nil {
		log.Printf("service.Processor: invalid message, sending to DLQ: %v", err)
		if dlqErr := p.queue.SendToDLQ(ctx, msg.Body); dlqErr != nil {
			log.Printf("service.Processor: DLQ send failed: %v", dlqErr)
		}
		// Invalid messages are deleted from the main queue regardless.
		return true
	}
	receipt.RequestID = req.ID

	ocrText, records, info, err := p.processDocuments(ctx, req, receipt)
	if err != nil {
		log.Printf("service.Processor: document processing failed for %s: %v", req.ID, err)
		p.failed.Add(1)
		return false
	}

	llmOutput, err := p.llm.Generate(ctx, p.buildPrompt(ocrText))
	if err != nil {
		log.Printf("service.Processor: LLM call failed for %s: %v", req.ID, err)
		p.failed.Add(1)
		return false
	}
	receipt.GenAIData = &domain.GenAIMetadata{
		Model:           llmOutput.ModelUsed,
		PromptTokens:    llmOutput.InputTokens,
		CandidateTokens: llmOutput.OutputTokens,
		TotalTokens:     llmOutput.InputTokens + llmOutput.OutputTokens,
	}

	result := p.interpretResponse(llmOutput.Text, ocrText)
	p.attachRepresentatives(&result, llmOutput.Text)
	process.AugmentWithProcuration(&result, ocrText)
	process.FinalizeResult(&result)

	var priority *domain.PriorityAnalysis
	var changesSummary string
	var conflicts []string
	if len(records) > 1 {
		priority = process.AnalyzePriority(records)
		changesSummary = process.ChangesSummary(records, llmOutput.Text)
		conflicts = process.DetectConflicts(records)
	}

	response := process.BuildResponse(req.ID, result, info, priority, changesSummary, conflicts)

	if err := p.queue.SendResponse(ctx, response); err != nil {
		log.Printf("service.Processor: sending response failed for %s: %v", req.ID, err)
		p.failed.Add(1)
		return false
	}

	p.finishReceipt(ctx, receipt, response, info)
	p.processed.Add(1)
	return true
}

// processDocuments downloads, splits and OCRs every requested PDF, capped
// at the per-request document limit. Returns the concatenated LLM-facing
// text, the per-document metadata records and the document info block.
func (p *Processor) processDocuments(ctx context.Context, req *domain.WorkRequest,
	receipt *domain.Receipt) (string, []domain.DocumentRecord, *domain.DocumentInfo, error) {

	uris := req.PDFURIs
	total := len(uris)
	var ignored []string
	if total > domain.MaxDocumentsPerRequest {
		log.Printf("service.Processor: %d documents received, processing only %d",
			total, domain.MaxDocumentsPerRequest)
		ignored = uris[domain.MaxDocumentsPerRequest:]
		uris = uris[:domain.MaxDocumentsPerRequest]
	}

	info := &domain.DocumentInfo{
		TotalDocuments:      total,
		ProcessedDocuments:  len(uris),
		IsMultipleDocuments: len(uris) > 1,
		ExceededLimit:       total > domain.MaxDocumentsPerRequest,
		IgnoredDocuments:    ignored,
	}
	receipt.DocumentInfo = info

	var texts []string
	var records []domain.DocumentRecord
	for i, uri := range uris {
		index := i + 1
		log.Printf("service.Processor: processing document %d/%d: %s", index, len(uris), uri)

		pdfBytes, err := p.storage.Download(ctx, uri)
		if err != nil {
			return "", nil, nil, fmt.Errorf("downloading %s: %w", uri, err)
		}

		chunks, totalPages, err := p.splitter.Split(pdfBytes, p.cfg.MaxPagesPerChunk)
		if err != nil {
			return "", nil, nil, fmt.Errorf("splitting %s: %w", uri, err)
		}

		var chunkTexts []string
		for j, chunk := range chunks {
			text, err := p.ocr.RecognizeText(ctx, chunk)
			if err != nil {
				return "", nil, nil, fmt.Errorf("ocr chunk %d of %s: %w", j+1, uri, err)
			}
			if text != "" {
				chunkTexts = append(chunkTexts, text)
			}
		}
		pdfText := strings.Join(chunkTexts, "\n")

		record := extract.ExtractDocumentMetadata(pdfText, index, uri)
		records = append(records, record)

		if len(uris) > 1 {
			texts = append(texts, process.MarkedDocumentText(record, len(uris), pdfText))
		} else {
			texts = append(texts, pdfText)
		}

		receipt.OCRData = append(receipt.OCRData, domain.OCRRecord{
			DocumentIndex:   index,
			FileName:        record.FileName,
			OCRText:         pdfText,
			TotalPages:      totalPages,
			ChunksProcessed: len(chunks),
		})
	}

	return strings.Join(texts, "\n\n"), records, info, nil
}

func (p *Processor) buildPrompt(ocrText string) string {
	if p.basePrompt == "" {
		return ocrText
	}
	if strings.Contains(p.basePrompt, "{OCR_TEXT_AQUI}") {
		return strings.Replace(p.basePrompt, "{OCR_TEXT_AQUI}", ocrText, 1)
	}
	return p.basePrompt + "\n\n" + ocrText
}

func (p *Processor) interpretResponse(llmText, ocrText string) domain.ExtractionResult {
	result := process.InterpretResponse(llmText)
	process.ApplyOCRFallbacks(&result, ocrText)
	process.ValidateFinalFields(&result)
	return result
}

// attachRepresentatives parses the representative blocks from the LLM text,
// normalizes and filters them, and derives the count, names display string
// and consolidated powers.
func (p *Processor) attachRepresentatives(result *domain.ExtractionResult, llmText string) {
	reps := extract.ParseRepresentativeBlocks(strings.Split(llmText, "\n"))
	reps = validate.Representatives(reps, p.anomalies)

	result.RepresentantesDetalhados = reps
	result.QuantidadeRepresentantes = extract.CountRepresentatives(reps)
	result.PoderesERepresentacao = process.ConsolidatePowers(reps)
	result.RepresentantesLegais = extract.RepresentativeNames(reps)
}

func (p *Processor) finishReceipt(ctx context.Context, receipt *domain.Receipt,
	response *domain.Response, info *domain.DocumentInfo) {

	if body, err := json.Marshal(response); err == nil {
		receipt.OutputResponse = string(body)
	}
	receipt.EndTime = time.Now().Format(time.RFC3339)
	receipt.DocumentInfo = info

	data, err := json.MarshalIndent(receipt, "", "  ")
	if err != nil {
		log.Printf("service.Processor: marshaling receipt failed: %v", err)
		return
	}
	// uuid suffix disambiguates retries of the same request.
	key := fmt.Sprintf("receipts/%s_%s_%s.json",
		receipt.RequestID, time.Now().Format("20060102_150405"), uuid.NewString()[:8])
	err = p.storage.Upload(ctx, port.UploadInput{
		Bucket:      p.cfg.ReceiptBucket,
		Key:         key,
		Body:        strings.NewReader(string(data)),
		ContentType: "application/json",
	})
	if err != nil {
		log.Printf("service.Processor: uploading receipt failed: %v", err)
		return
	}
	log.Printf("service.Processor: receipt uploaded to s3://%s/%s", p.cfg.ReceiptBucket, key)
}
