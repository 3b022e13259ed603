package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pkordes/staylog/internal/domain"
	"github.com/pkordes/staylog/internal/handler/gen"
)

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "entry not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "not_found", Message: message}}
}

// validationBody returns an ErrorResponse for a domain validation failure.
func validationBody(err error) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: unwrapMessage(err, domain.ErrValidation)}}
}

// conflictBody returns an ErrorResponse for a stay that would overlap another.
func conflictBody(err error) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "overlap", Message: unwrapMessage(err, domain.ErrOverlap)}}
}

// unauthenticatedBody is returned by writes attempted without a token.
func unauthenticatedBody() gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "unauthenticated", Message: "sign in to change entries"}}
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer (e.g. missing or malformed body).
func requestBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: message}}
}

// malformedBody returns an ErrorResponse for a payload that could not be decoded.
func malformedBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "malformed", Message: message}}
}

// unwrapMessage extracts the human-readable part after the sentinel from a
// wrapped error.
// e.g. "service.EntryService.Create: timeline.Collection.Add: validation error: city is required" → "city is required"
func unwrapMessage(err, sentinel error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	if strings.HasSuffix(msg, sentinel.Error()) {
		return sentinel.Error()
	}
	return msg
}

// statusFor maps a service error to an HTTP status and body. ok is false for
// errors with no client-facing meaning.
func statusFor(err error) (status int, body gen.ErrorResponse, ok bool) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, validationBody(err), true
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, notFoundBody("entry not found"), true
	case errors.Is(err, domain.ErrOverlap):
		return http.StatusConflict, conflictBody(err), true
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, unauthenticatedBody(), true
	case errors.Is(err, domain.ErrMalformed):
		return http.StatusBadRequest, malformedBody(unwrapMessage(err, domain.ErrMalformed)), true
	}
	return http.StatusInternalServerError, gen.ErrorResponse{}, false
}

// RequestErrorHandler answers requests the generated layer could not decode:
// bad parameters, an unreadable body or one over the size limit.
func RequestErrorHandler(logger *slog.Logger) func(w http.ResponseWriter, r *http.Request, err error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, gen.ErrorResponse{Error: gen.ErrorDetail{
				Code: "too_large", Message: "request body too large",
			}})
			return
		}
		logger.Debug("bad request", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusBadRequest, malformedBody(err.Error()))
	}
}

// ResponseErrorHandler answers errors a handler returned instead of a typed
// response. Known sentinels keep their status; anything else is logged and
// answered with a generic 500.
func ResponseErrorHandler(logger *slog.Logger) func(w http.ResponseWriter, r *http.Request, err error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		if status, body, ok := statusFor(err); ok {
			writeError(w, status, body)
			return
		}
		logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, gen.ErrorResponse{Error: gen.ErrorDetail{
			Code: "internal", Message: "internal server error",
		}})
	}
}

func writeError(w http.ResponseWriter, status int, body gen.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
