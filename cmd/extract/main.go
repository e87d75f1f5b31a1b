// Command extract runs the extraction pipeline offline over local text
// files: one or more OCR dumps plus an optional LLM response. It prints the
// final response JSON to stdout, which makes prompt and parser changes easy
// to inspect without queue infrastructure.
// Usage: go run ./cmd/extract -ocr doc1.txt -ocr doc2.txt [-llm response.txt] [-id req-1]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"

	"firmas/internal/domain"
	"firmas/internal/extract"
	"firmas/internal/process"
	"firmas/internal/validate"
)

type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

type logSink struct{}

func (logSink) Anomaly(kind, subject, detail string) {
	log.Printf("anomaly: %s: %s - %s", kind, subject, detail)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var ocrPaths stringList
	flag.Var(&ocrPaths, "ocr", "OCR text file (repeatable, max 3 used)")
	llmPath := flag.String("llm", "", "LLM response text file")
	requestID := flag.String("id", uuid.NewString(), "request id for the output envelope")
	flag.Parse()

	if len(ocrPaths) == 0 {
		return fmt.Errorf("at least one -ocr file is required")
	}

	total := len(ocrPaths)
	var ignored []string
	if total > domain.MaxDocumentsPerRequest {
		ignored = ocrPaths[domain.MaxDocumentsPerRequest:]
		ocrPaths = ocrPaths[:domain.MaxDocumentsPerRequest]
	}

	var texts []string
	var records []domain.DocumentRecord
	for i, path := range ocrPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		record := extract.ExtractDocumentMetadata(string(data), i+1, path)
		records = append(records, record)
		if len(ocrPaths) > 1 {
			texts = append(texts, process.MarkedDocumentText(record, len(ocrPaths), string(data)))
		} else {
			texts = append(texts, string(data))
		}
	}
	ocrText := strings.Join(texts, "\n\n")

	llmText := ocrText
	if *llmPath != "" {
		data, err := os.ReadFile(*llmPath)
		if err != nil {
			return fmt.Errorf("reading %s: %w", *llmPath, err)
		}
		llmText = string(data)
	}

	result := process.InterpretResponse(llmText)
	process.ApplyOCRFallbacks(&result, ocrText)
	process.ValidateFinalFields(&result)

	reps := extract.ParseRepresentativeBlocks(strings.Split(llmText, "\n"))
	reps = validate.Representatives(reps, logSink{})
	result.RepresentantesDetalhados = reps
	result.QuantidadeRepresentantes = extract.CountRepresentatives(reps)
	result.PoderesERepresentacao = process.ConsolidatePowers(reps)
	result.RepresentantesLegais = extract.RepresentativeNames(reps)

	process.AugmentWithProcuration(&result, ocrText)
	process.FinalizeResult(&result)

	info := &domain.DocumentInfo{
		TotalDocuments:      total,
		ProcessedDocuments:  len(ocrPaths),
		IsMultipleDocuments: len(ocrPaths) > 1,
		ExceededLimit:       total > domain.MaxDocumentsPerRequest,
		IgnoredDocuments:    ignored,
	}

	var priority *domain.PriorityAnalysis
	var changesSummary string
	var conflicts []string
	if len(records) > 1 {
		priority = process.AnalyzePriority(records)
		changesSummary = process.ChangesSummary(records, llmText)
		conflicts = process.DetectConflicts(records)
	}

	response := process.BuildResponse(*requestID, result, info, priority, changesSummary, conflicts)

	out, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling response: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
