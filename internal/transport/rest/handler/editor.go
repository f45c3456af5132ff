package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"videosurvey/internal/model"
	"videosurvey/internal/service"
	"videosurvey/internal/transport/rest/middleware"
)

// EditorHandler handles the administrator editor endpoints
type EditorHandler struct {
	editorSvc *service.EditorService
	configSvc *service.ConfigService
}

// NewEditorHandler creates a new editor handler
func NewEditorHandler(editorSvc *service.EditorService, configSvc *service.ConfigService) *EditorHandler {
	return &EditorHandler{
		editorSvc: editorSvc,
		configSvc: configSvc,
	}
}

// FieldRequest sets one field of a record
type FieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// MoveRequest moves a record or option
type MoveRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// OptionRequest sets the text of an option
type OptionRequest struct {
	Value string `json:"value"`
}

// Config handles GET /v1/config
func (h *EditorHandler) Config(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.configSvc.Current())
}

// Open handles POST /v1/editor/{kind}/open
func (h *EditorHandler) Open(w http.ResponseWriter, r *http.Request) {
	kind := model.EditorKind(mux.Vars(r)["kind"])
	d, err := h.editorSvc.Open(r.Context(), middleware.GetSessionID(r.Context()), kind)
	respondDraft(w, d, err)
}

// Draft handles GET /v1/editor
func (h *EditorHandler) Draft(w http.ResponseWriter, r *http.Request) {
	d, err := h.editorSvc.Draft(r.Context(), middleware.GetSessionID(r.Context()))
	respondDraft(w, d, err)
}

// AddRecord handles POST /v1/editor/records
func (h *EditorHandler) AddRecord(w http.ResponseWriter, r *http.Request) {
	d, err := h.editorSvc.AddRecord(r.Context(), middleware.GetSessionID(r.Context()))
	respondDraft(w, d, err)
}

// UpdateField handles PATCH /v1/editor/records/{index}
func (h *EditorHandler) UpdateField(w http.ResponseWriter, r *http.Request) {
	i, err := pathInt(r, "index")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid record index")
		return
	}
	var req FieldRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	d, err := h.editorSvc.UpdateField(r.Context(), middleware.GetSessionID(r.Context()), i, req.Field, req.Value)
	respondDraft(w, d, err)
}

// RemoveRecord handles DELETE /v1/editor/records/{index}
func (h *EditorHandler) RemoveRecord(w http.ResponseWriter, r *http.Request) {
	i, err := pathInt(r, "index")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid record index")
		return
	}
	d, err := h.editorSvc.RemoveRecord(r.Context(), middleware.GetSessionID(r.Context()), i)
	respondDraft(w, d, err)
}

// MoveRecord handles POST /v1/editor/records/move
func (h *EditorHandler) MoveRecord(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	d, err := h.editorSvc.MoveRecord(r.Context(), middleware.GetSessionID(r.Context()), req.From, req.To)
	respondDraft(w, d, err)
}

// AddOption handles POST /v1/editor/records/{index}/options
func (h *EditorHandler) AddOption(w http.ResponseWriter, r *http.Request) {
	i, err := pathInt(r, "index")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid record index")
		return
	}
	d, err := h.editorSvc.AddOption(r.Context(), middleware.GetSessionID(r.Context()), i)
	respondDraft(w, d, err)
}

// UpdateOption handles PUT /v1/editor/records/{index}/options/{option}
func (h *EditorHandler) UpdateOption(w http.ResponseWriter, r *http.Request) {
	i, o, ok := recordAndOption(w, r)
	if !ok {
		return
	}
	var req OptionRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	d, err := h.editorSvc.UpdateOption(r.Context(), middleware.GetSessionID(r.Context()), i, o, req.Value)
	respondDraft(w, d, err)
}

// RemoveOption handles DELETE /v1/editor/records/{index}/options/{option}
func (h *EditorHandler) RemoveOption(w http.ResponseWriter, r *http.Request) {
	i, o, ok := recordAndOption(w, r)
	if !ok {
		return
	}
	d, err := h.editorSvc.RemoveOption(r.Context(), middleware.GetSessionID(r.Context()), i, o)
	respondDraft(w, d, err)
}

// MoveOption handles POST /v1/editor/records/{index}/options/move
func (h *EditorHandler) MoveOption(w http.ResponseWriter, r *http.Request) {
	i, err := pathInt(r, "index")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid record index")
		return
	}
	var req MoveRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	d, err := h.editorSvc.MoveOption(r.Context(), middleware.GetSessionID(r.Context()), i, req.From, req.To)
	respondDraft(w, d, err)
}

// Save handles POST /v1/editor/save
func (h *EditorHandler) Save(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.editorSvc.Save(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// Cancel handles POST /v1/editor/cancel
func (h *EditorHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.editorSvc.Cancel(r.Context(), middleware.GetSessionID(r.Context())); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func recordAndOption(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	i, err := pathInt(r, "index")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid record index")
		return 0, 0, false
	}
	o, err := pathInt(r, "option")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid option index")
		return 0, 0, false
	}
	return i, o, true
}

func respondDraft(w http.ResponseWriter, d *model.EditorDraft, err error) {
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}
