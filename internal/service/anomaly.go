package service

import "log"

// LogAnomalySink writes validation anomalies to the process log.
type LogAnomalySink struct{}

// Anomaly implements port.AnomalySink.
func (LogAnomalySink) Anomaly(kind, subject, detail string) {
	log.Printf("service.LogAnomalySink: %s: %s - %s", kind, subject, detail)
}
