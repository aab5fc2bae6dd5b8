package metrics

import (
	"fmt"
	"net/http"
	"sync/atomic"
)

// Registry holds the engine's process counters. The zero value is ready to use.
type Registry struct {
	symptomAnalyses    atomic.Int64
	reportAnalyses     atomic.Int64
	datasetUnavailable atomic.Int64
	invalidInputs      atomic.Int64
	internalErrors     atomic.Int64
	datasetRecords     atomic.Int64
}

func New() *Registry { return &Registry{} }

func (r *Registry) IncSymptomAnalyses() { r.symptomAnalyses.Add(1) }
func (r *Registry) IncReportAnalyses() { r.reportAnalyses.Add(1) }
func (r *Registry) IncDatasetUnavailable() { r.datasetUnavailable.Add(1) }
func (r *Registry) IncInvalidInputs() { r.invalidInputs.Add(1) }
func (r *Registry) IncInternalErrors() { r.internalErrors.Add(1) }

// ObserveDataset records how many rows the aggregate was built from.
func (r *Registry) ObserveDataset(records int) {
	r.datasetRecords.Store(int64(records))
}

// Snapshot is a point-in-time copy, mainly for tests and logs.
type Snapshot struct {
	SymptomAnalyses    int64
	ReportAnalyses     int64
	DatasetUnavailable int64
	InvalidInputs      int64
	InternalErrors     int64
	DatasetRecords     int64
}

func (r *Registry) Snapshot() Snapshot {
	return Snapshot{
		SymptomAnalyses:    r.symptomAnalyses.Load(),
		ReportAnalyses:     r.reportAnalyses.Load(),
		DatasetUnavailable: r.datasetUnavailable.Load(),
		InvalidInputs:      r.invalidInputs.Load(),
		InternalErrors:     r.internalErrors.Load(),
		DatasetRecords:     r.datasetRecords.Load(),
	}
}

func (r *Registry) WritePrometheus(w http.ResponseWriter) {
	s := r.Snapshot()
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	fmt.Fprintf(w, "# HELP clinical_risk_symptom_analyses_total Number of completed free-text symptom analyses.\n")
	fmt.Fprintf(w, "# TYPE clinical_risk_symptom_analyses_total counter\n")
	fmt.Fprintf(w, "clinical_risk_symptom_analyses_total %d\n", s.SymptomAnalyses)

	fmt.Fprintf(w, "# HELP clinical_risk_report_analyses_total Number of completed structured report analyses.\n")
	fmt.Fprintf(w, "# TYPE clinical_risk_report_analyses_total counter\n")
	fmt.Fprintf(w, "clinical_risk_report_analyses_total %d\n", s.ReportAnalyses)

	fmt.Fprintf(w, "# HELP clinical_risk_dataset_unavailable_total Number of requests refused because no dataset is loaded.\n")
	fmt.Fprintf(w, "# TYPE clinical_risk_dataset_unavailable_total counter\n")
	fmt.Fprintf(w, "clinical_risk_dataset_unavailable_total %d\n", s.DatasetUnavailable)

	fmt.Fprintf(w, "# HELP clinical_risk_invalid_input_total Number of requests rejected as invalid input.\n")
	fmt.Fprintf(w, "# TYPE clinical_risk_invalid_input_total counter\n")
	fmt.Fprintf(w, "clinical_risk_invalid_input_total %d\n", s.InvalidInputs)

	fmt.Fprintf(w, "# HELP clinical_risk_internal_errors_total Number of requests that failed with an internal error.\n")
	fmt.Fprintf(w, "# TYPE clinical_risk_internal_errors_total counter\n")
	fmt.Fprintf(w, "clinical_risk_internal_errors_total %d\n", s.InternalErrors)

	fmt.Fprintf(w, "# HELP clinical_risk_dataset_records Number of patient records in the loaded aggregate.\n")
	fmt.Fprintf(w, "# TYPE clinical_risk_dataset_records gauge\n")
	fmt.Fprintf(w, "clinical_risk_dataset_records %d\n", s.DatasetRecords)
}
