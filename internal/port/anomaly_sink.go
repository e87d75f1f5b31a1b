package port

// AnomalySink receives structured anomaly events raised during validation,
// decoupled from control flow. Implementations must not fail the pipeline.
type AnomalySink interface {
	Anomaly(kind, subject, detail string)
}
