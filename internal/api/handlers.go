// WhenTo - Collaborative event calendar for self-hosted environments
// Copyright (C) 2025 WhenTo Contributors
// SPDX-License-Identifier: BSL-1.1

// Package api exposes the scheduler, brief-parsing, and ICS-export
// functionality over HTTP, in the ambient style of the rest of the
// service: chi routing, the shared JSON envelope for peripheral endpoints,
// go-playground/validator struct tags, and one structured log line per
// request outcome.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/eventsched/pkg/cache"
	"github.com/eventsched/pkg/httputil"
	"github.com/eventsched/pkg/logger"
	"github.com/eventsched/pkg/validator"
	"github.com/eventsched/eventsched/internal/brief"
	"github.com/eventsched/eventsched/internal/config"
	"github.com/eventsched/eventsched/internal/export"
	"github.com/eventsched/eventsched/internal/scheduler"
)

// Handler bundles the dependencies every endpoint in this package needs.
type Handler struct {
	cfg   *config.Config
	cache cache.Cache
}

func NewHandler(cfg *config.Config, c cache.Cache) *Handler {
	return &Handler{cfg: cfg, cache: c}
}

// Health handles GET /health. The {status, model} pair the original_source
// NLP service returns travels in the data field of the shared envelope.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, HealthResponseDTO{Status: "ok", Model: h.cfg.SpacyModel})
}

// ScheduleEvent handles POST /schedule-event. The response never uses the
// shared envelope: {success,message,assignments} is the wire contract for
// this one endpoint.
func (h *Handler) ScheduleEvent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	// A panic while scheduling is reported like any other internal
	// failure: 200 with success=false and the panic value in the message.
	defer func() {
		if rec := recover(); rec != nil {
			writeScheduleFailure(w, http.StatusOK, fmt.Sprintf("Error generating schedule: %v", rec))
		}
	}()

	var dto ScheduleRequestDTO
	if err := httputil.DecodeJSON(r, &dto); err != nil {
		writeScheduleFailure(w, http.StatusBadRequest, "request body is not valid JSON")
		return
	}

	if err := validator.Validate(dto); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			httputil.ValidationError(w, verrs)
			return
		}
		writeScheduleFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	req, err := dto.ToDomain(h.cfg.DefaultGapMinutes)
	if err != nil {
		var fieldErr *FieldError
		if errors.As(err, &fieldErr) {
			writeScheduleFailure(w, http.StatusBadRequest, fieldErr.Error())
			return
		}
		writeScheduleFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	budget := h.cfg.SolverTimeBudget
	resp := scheduler.Schedule(r.Context(), req, budget)

	log.Info("schedule-event",
		"eventId", req.EventID,
		"sessions", len(req.Sessions),
		"rooms", len(req.Rooms),
		"success", resp.Success,
	)

	// A solver failure (no sessions, no rooms, infeasible horizon, internal
	// exception) is a normal outcome of this endpoint's contract, not an
	// HTTP error: it always comes back 200 with success=false and an empty
	// assignments list. Only the pre-solve decode/validation/ToDomain
	// failures above are HTTP errors.
	writeJSON(w, http.StatusOK, toResponseDTO(resp))
}

func writeScheduleFailure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ScheduleResponseDTO{Success: false, Message: message, Assignments: []scheduler.Assignment{}})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// ParseBrief handles POST /parse-brief. Results are cached by content hash
// for a short TTL - scheduling results are never cached, but a brief's
// extraction is a pure function of its text and safe to memoize.
func (h *Handler) ParseBrief(w http.ResponseWriter, r *http.Request) {
	var dto BriefRequestDTO
	if err := httputil.DecodeJSON(r, &dto); err != nil {
		httputil.Error(w, http.StatusBadRequest, httputil.ErrCodeBadRequest, "request body is not valid JSON")
		return
	}
	if err := validator.Validate(dto); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			httputil.ValidationError(w, verrs)
			return
		}
		httputil.Error(w, http.StatusBadRequest, httputil.ErrCodeBadRequest, err.Error())
		return
	}

	key := cache.BriefKey(dto.Text)
	result, err := cache.GetWithFallback(r.Context(), h.cache, key, cache.TTLBrief, func() (brief.Result, error) {
		return brief.ParseBrief(dto.Text), nil
	})
	if err != nil {
		httputil.Error(w, http.StatusInternalServerError, httputil.ErrCodeInternal, "failed to parse brief")
		return
	}

	httputil.JSON(w, http.StatusOK, result)
}

// NLPEntities handles POST /nlp/entities. Unlike ParseBrief, entity
// extraction is cheap enough (no proximity scan) that it is not cached.
func (h *Handler) NLPEntities(w http.ResponseWriter, r *http.Request) {
	var dto BriefRequestDTO
	if err := httputil.DecodeJSON(r, &dto); err != nil {
		httputil.Error(w, http.StatusBadRequest, httputil.ErrCodeBadRequest, "request body is not valid JSON")
		return
	}
	if err := validator.Validate(dto); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			httputil.ValidationError(w, verrs)
			return
		}
		httputil.Error(w, http.StatusBadRequest, httputil.ErrCodeBadRequest, err.Error())
		return
	}

	entities := brief.ExtractEntities(dto.Text)
	httputil.JSON(w, http.StatusOK, entities)
}

// ScheduleEventICS handles POST /schedule-event.ics: it runs the same
// solve as ScheduleEvent and renders the result as an iCalendar document
// instead of JSON, purely as a transform of the already-computed response.
func (h *Handler) ScheduleEventICS(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var dto ScheduleRequestDTO
	if err := httputil.DecodeJSON(r, &dto); err != nil {
		http.Error(w, "request body is not valid JSON", http.StatusBadRequest)
		return
	}
	if err := validator.Validate(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req, err := dto.ToDomain(h.cfg.DefaultGapMinutes)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := scheduler.Schedule(r.Context(), req, h.cfg.SolverTimeBudget)
	if !resp.Success {
		http.Error(w, resp.Message, http.StatusUnprocessableEntity)
		return
	}

	meta := export.Meta{
		Sessions: make(map[int]export.SessionMeta, len(dto.Sessions)),
		Rooms:    make(map[int]string, len(dto.Rooms)),
	}
	for _, s := range dto.Sessions {
		meta.Sessions[s.ID] = export.SessionMeta{Title: s.Title, Speaker: s.Speaker, DurationMin: s.DurationMin}
	}
	for _, rm := range dto.Rooms {
		meta.Rooms[rm.ID] = rm.Name
	}

	icsContent, err := export.ToICS(resp, meta)
	if err != nil {
		log.Error("failed to render ICS", "error", err)
		http.Error(w, "failed to render calendar", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", "inline; filename=\"schedule-event.ics\"")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(icsContent))
}
