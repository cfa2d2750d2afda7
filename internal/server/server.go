// Package server exposes the schedule engines over an HTTP JSON API.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/hypotheca/mortgage-forecast/internal/config"
	"github.com/hypotheca/mortgage-forecast/internal/schedule"
	"github.com/hypotheca/mortgage-forecast/pkg/constants"
	"github.com/hypotheca/mortgage-forecast/pkg/mortgage"
	"github.com/hypotheca/mortgage-forecast/pkg/output"
	"github.com/hypotheca/mortgage-forecast/pkg/property"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the schedule API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		// Schedule API endpoint (JSON scenarios in the request body)
		r.Post("/schedule", h.handleSchedule)

		// Schedule API endpoint for YAML config uploads
		r.Post("/schedule/upload", h.handleScheduleUpload)

		// Version endpoint for client metadata
		r.Get("/version", h.handleVersion)
	})

	r.Get("/healthz", h.handleHealth)

	return r
}

type scheduleRequest struct {
	StartDate string            `json:"startDate,omitempty"`
	Scenarios []scenarioRequest `json:"scenarios"`
}

type scenarioRequest struct {
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	Principal        float64 `json:"principal"`
	InterestRate     float64 `json:"interestRate"`
	Years            int     `json:"years"`
	PropertyValue    float64 `json:"propertyValue,omitempty"`
	AppreciationRate float64 `json:"appreciationRate,omitempty"`
}

type scheduleResponse struct {
	Scenarios []scenarioSchedule `json:"scenarios"`
	CSV       string             `json:"csv"`
	Warnings  []string           `json:"warnings,omitempty"`
	Duration  string             `json:"duration"`
}

type scenarioSchedule struct {
	Name string        `json:"name"`
	Rows []scheduleRow `json:"rows"`
}

type scheduleRow struct {
	Date               string  `json:"date"`
	Payment            float64 `json:"payment"`
	RemainingPrincipal float64 `json:"remainingPrincipal"`
	AssetValue         float64 `json:"assetValue,omitempty"`
	Overhead           float64 `json:"overhead,omitempty"`
	Total              float64 `json:"total"`
}

func (h *handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), "server.handleSchedule")
		return
	}
	if len(req.Scenarios) == 0 {
		h.respondError(w, http.StatusBadRequest, "no scenarios provided", "server.handleSchedule")
		return
	}

	conf := config.Configuration{StartDate: req.StartDate}
	for _, scenario := range req.Scenarios {
		conf.Scenarios = append(conf.Scenarios, config.Scenario{
			Name:   scenario.Name,
			Active: true,
			Mortgage: config.MortgageConfig{
				Type:         scenario.Type,
				Principal:    scenario.Principal,
				InterestRate: scenario.InterestRate,
				Years:        scenario.Years,
			},
			Property: config.PropertyConfig{
				Value:            scenario.PropertyValue,
				AppreciationRate: scenario.AppreciationRate,
			},
		})
	}

	h.runSchedules(w, conf, start, "server.handleSchedule")
}

func (h *handler) handleScheduleUpload(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), "server.handleScheduleUpload")
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err), "server.handleScheduleUpload")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "missing configuration file", "server.handleScheduleUpload")
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", "server.handleScheduleUpload"),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read configuration: %v", err), "server.handleScheduleUpload")
		return
	}

	if err := validateYAML(buf.Bytes()); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("error reading config data, %v", err), "server.handleScheduleUpload")
		return
	}

	conf, err := config.LoadConfigurationFromReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleScheduleUpload")
		return
	}

	h.runSchedules(w, *conf, start, "server.handleScheduleUpload")
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func (h *handler) runSchedules(w http.ResponseWriter, conf config.Configuration, start time.Time, op string) {
	warnings := conf.ValidateConfiguration()

	results, err := schedule.ComputeAll(h.logger, conf)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, mortgage.ErrInvalidInput) || errors.Is(err, property.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		h.respondError(w, status, fmt.Sprintf("failed to compute schedules: %v", err), op)
		return
	}

	elapsed := time.Since(start)

	response := scheduleResponse{
		Scenarios: buildScenarioSchedules(results),
		CSV:       output.CsvString(results),
		Warnings:  warnings,
		Duration:  elapsed.String(),
	}

	h.logger.Info("schedules computed",
		zap.String("op", op),
		zap.Int("scenarios", len(response.Scenarios)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

// validateYAML rejects uploads that are not a YAML mapping before they
// reach the config loader.
func validateYAML(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return errors.New("empty configuration")
	}

	var result map[string]interface{}
	if err := yaml.Unmarshal(trimmed, &result); err != nil {
		return err
	}
	if result == nil {
		return errors.New("expected a YAML mapping")
	}
	return nil
}

func buildScenarioSchedules(results []schedule.Schedule) []scenarioSchedule {
	scenarios := make([]scenarioSchedule, 0, len(results))
	for _, result := range results {
		rows := make([]scheduleRow, 0, len(result.Rows))
		for _, row := range result.Rows {
			rows = append(rows, scheduleRow{
				Date:               row.Date,
				Payment:            row.Payment,
				RemainingPrincipal: row.RemainingPrincipal,
				AssetValue:         row.AssetValue,
				Overhead:           row.OverheadCosts,
				Total:              row.Total,
			})
		}
		scenarios = append(scenarios, scenarioSchedule{Name: result.Name, Rows: rows})
	}
	return scenarios
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("schedule request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
