package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"clinical-risk-go/internal/catalog"
	"clinical-risk-go/internal/logger"
	"clinical-risk-go/internal/metrics"
	"clinical-risk-go/internal/types"
)

// Engine is the analysis surface the handlers need.
type Engine interface {
	AnalyzeSymptoms(text string, user types.UserContext) (types.SymptomAnalysis, error)
	AnalyzeReport(in types.ReportInput) (types.AnalysisResult, error)
	DiseaseInfo() ([]types.DiseaseInfo, error)
	MedicalKnowledge(query string) []catalog.Entry
	Health() types.HealthStatus
}

type Server struct {
	engine  Engine
	metrics *metrics.Registry
	log     *logger.Logger
}

// NewRouter mounts the API and its middleware. maxBody <= 0 disables the body limit.
func NewRouter(engine Engine, m *metrics.Registry, log *logger.Logger, maxBody int64) *mux.Router {
	if m == nil {
		m = metrics.New()
	}
	if log == nil {
		log = logger.Discard()
	}
	s := &Server{engine: engine, metrics: m, log: log.Component("httpapi")}

	router := mux.NewRouter()
	router.Use(Logging(s.log))
	router.Use(Recovery(s.log))
	router.Use(CORS)
	router.Use(BodyLimit(maxBody))

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/analyze-symptoms", s.handleAnalyzeSymptoms).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/analyze-report", s.handleAnalyzeReport).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/disease-info", s.handleDiseaseInfo).Methods(http.MethodGet)
	api.HandleFunc("/medical-knowledge", s.handleMedicalKnowledge).Methods(http.MethodGet)

	router.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
		s.metrics.WritePrometheus(w)
	}).Methods(http.MethodGet)

	return router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Health())
}

func (s *Server) handleAnalyzeSymptoms(w http.ResponseWriter, r *http.Request) {
	var req types.SymptomRequest
	if err := decodeBody(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	res, err := s.engine.AnalyzeSymptoms(req.Symptoms, req.UserInfo)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.metrics.IncSymptomAnalyses()
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleAnalyzeReport(w http.ResponseWriter, r *http.Request) {
	var req types.ReportInput
	if err := decodeBody(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	res, err := s.engine.AnalyzeReport(req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.metrics.IncReportAnalyses()
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleDiseaseInfo(w http.ResponseWriter, r *http.Request) {
	info, err := s.engine.DiseaseInfo()
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *Server) handleMedicalKnowledge(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.MedicalKnowledge(r.URL.Query().Get("query")))
}

// fail logs err, counts it by kind and writes the error object.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	entry := s.log.WithRequest(r).WithField("status", status).WithField("error", err.Error())
	switch types.KindOf(err) {
	case types.KindDatasetUnavailable:
		s.metrics.IncDatasetUnavailable()
		entry.Warn("dataset unavailable")
	case types.KindInvalidInput:
		s.metrics.IncInvalidInputs()
		entry.Info("invalid request")
	default:
		s.metrics.IncInternalErrors()
		entry.Error("request failed")
	}
	writeJSON(w, status, types.NewErrorResult(err))
}
