package port

// PageSplitter abstracts splitting a PDF into page-bounded chunks that fit
// the OCR engine's page limit. Split also reports the total page count.
type PageSplitter interface {
	Split(pdfBytes []byte, maxPages int) ([][]byte, int, error)
}
