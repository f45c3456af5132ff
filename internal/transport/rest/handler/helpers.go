package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"videosurvey/internal/editor"
	"videosurvey/internal/flow"
	"videosurvey/internal/service"
	"videosurvey/internal/survey"
)

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeServiceError maps service errors to status codes
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *editor.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error": verr.Error(),
			"index": verr.Index,
			"field": verr.Field,
		})
	case errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, flow.ErrInvalidTransition),
		errors.Is(err, service.ErrEditorUnavailable),
		errors.Is(err, service.ErrEditorClosed),
		errors.Is(err, service.ErrExportUnavailable):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrUnknownEditor),
		errors.Is(err, service.ErrNotQuestionEditor),
		errors.Is(err, editor.ErrUnknownField),
		errors.Is(err, editor.ErrUnsupportedType),
		errors.Is(err, survey.ErrUnknownOption):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func decode(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// pathInt reads an integer route variable
func pathInt(r *http.Request, name string) (int, error) {
	return strconv.Atoi(mux.Vars(r)[name])
}
