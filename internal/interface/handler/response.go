package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"recharge-travels-service/internal/domain/repository"
	"recharge-travels-service/internal/usecase"
	"recharge-travels-service/pkg/logger"
)

const maxBodyBytes = 1 << 20

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorEnvelope is the body of every error response
type ErrorEnvelope struct {
	Error  APIError          `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteJSON(w, status, ErrorEnvelope{Error: APIError{Code: code, Message: message}})
}

// classify maps a service error onto a status and envelope
func classify(err error) (int, ErrorEnvelope) {
	var ve *usecase.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusUnprocessableEntity, ErrorEnvelope{
			Error:  APIError{Code: "validation_failed", Message: "Please correct the highlighted fields"},
			Fields: ve.Fields,
		}
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, envelope("not_found", "resource not found")
	case errors.Is(err, usecase.ErrInvalidTransition):
		return http.StatusConflict, envelope("invalid_transition", err.Error())
	case errors.Is(err, usecase.ErrInvalidState):
		return http.StatusConflict, envelope("invalid_state", err.Error())
	case errors.Is(err, usecase.ErrReasonRequired):
		return http.StatusUnprocessableEntity, envelope("reason_required", err.Error())
	case errors.Is(err, usecase.ErrNoteRequired):
		return http.StatusUnprocessableEntity, envelope("note_required", err.Error())
	case errors.Is(err, usecase.ErrInvalidStatus):
		return http.StatusUnprocessableEntity, envelope("invalid_status", err.Error())
	case errors.Is(err, usecase.ErrInvalidFolder):
		return http.StatusUnprocessableEntity, envelope("invalid_folder", err.Error())
	case errors.Is(err, usecase.ErrSubmissionFailed):
		return http.StatusBadGateway, envelope("submission_failed", "We could not complete your booking. Please try again.")
	}
	return http.StatusInternalServerError, envelope("internal", "internal error")
}

func envelope(code, message string) ErrorEnvelope {
	return ErrorEnvelope{Error: APIError{Code: code, Message: message}}
}

// writeServiceError logs unexpected failures and writes the mapped envelope
func writeServiceError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, body := classify(err)
	if status >= http.StatusInternalServerError {
		log.Error("Request failed",
			"requestId", RequestIDFromContext(r.Context()),
			"path", r.URL.Path,
			"error", err)
	}
	WriteJSON(w, status, body)
}

// decodeJSON reads a bounded JSON body into v
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_json", "invalid json")
		return false
	}
	return true
}
