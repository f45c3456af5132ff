package handler

import (
	"net/http"

	"videosurvey/internal/model"
	"videosurvey/internal/platform/logger"
	"videosurvey/internal/service"
	"videosurvey/internal/transport/rest/middleware"
)

// SessionHandler handles session and flow endpoints
type SessionHandler struct {
	flowSvc *service.FlowService
	tokens  *service.TokenService
	log     *logger.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(flowSvc *service.FlowService, tokens *service.TokenService, log *logger.Logger) *SessionHandler {
	return &SessionHandler{
		flowSvc: flowSvc,
		tokens:  tokens,
		log:     log,
	}
}

// NameRequest is the request body for submitting the respondent name
type NameRequest struct {
	Name string `json:"name"`
}

// VideoEndedRequest reports the end of a playback load
type VideoEndedRequest struct {
	LoadID string `json:"loadId"`
}

// AnswerRequest selects an option of a survey question
type AnswerRequest struct {
	Value string `json:"value"`
}

// Begin handles POST /v1/sessions
func (h *SessionHandler) Begin(w http.ResponseWriter, r *http.Request) {
	sess, err := h.flowSvc.Begin(r.Context())
	if err != nil {
		h.log.Error("Failed to begin session", "error", err)
		writeServiceError(w, err)
		return
	}

	token, err := h.tokens.IssueSessionToken(sess.ID)
	if err != nil {
		h.log.Error("Failed to issue session token", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	writeJSON(w, http.StatusCreated, model.BeginResponse{
		Token:   token,
		Session: model.NewSessionView(sess),
	})
}

// Get handles GET /v1/session
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.flowSvc.View(r.Context(), middleware.GetSessionID(r.Context()))
	h.respond(w, view, err)
}

// SubmitName handles POST /v1/flow/name
func (h *SessionHandler) SubmitName(w http.ResponseWriter, r *http.Request) {
	var req NameRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	view, err := h.flowSvc.SubmitName(r.Context(), middleware.GetSessionID(r.Context()), req.Name)
	h.respond(w, view, err)
}

// Start handles POST /v1/flow/start
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	view, err := h.flowSvc.Start(r.Context(), middleware.GetSessionID(r.Context()))
	h.respond(w, view, err)
}

// Next handles POST /v1/flow/next
func (h *SessionHandler) Next(w http.ResponseWriter, r *http.Request) {
	view, err := h.flowSvc.Next(r.Context(), middleware.GetSessionID(r.Context()))
	h.respond(w, view, err)
}

// Previous handles POST /v1/flow/previous
func (h *SessionHandler) Previous(w http.ResponseWriter, r *http.Request) {
	view, err := h.flowSvc.Previous(r.Context(), middleware.GetSessionID(r.Context()))
	h.respond(w, view, err)
}

// Top handles POST /v1/flow/top
func (h *SessionHandler) Top(w http.ResponseWriter, r *http.Request) {
	view, err := h.flowSvc.Top(r.Context(), middleware.GetSessionID(r.Context()))
	h.respond(w, view, err)
}

// Restart handles POST /v1/flow/restart
func (h *SessionHandler) Restart(w http.ResponseWriter, r *http.Request) {
	view, err := h.flowSvc.Restart(r.Context(), middleware.GetSessionID(r.Context()))
	h.respond(w, view, err)
}

// VideoEnded handles POST /v1/flow/video/ended
func (h *SessionHandler) VideoEnded(w http.ResponseWriter, r *http.Request) {
	var req VideoEndedRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	view, err := h.flowSvc.VideoEnded(r.Context(), middleware.GetSessionID(r.Context()), req.LoadID)
	h.respond(w, view, err)
}

// SelectAnswer handles PUT /v1/flow/survey/answers/{question}
func (h *SessionHandler) SelectAnswer(w http.ResponseWriter, r *http.Request) {
	q, err := pathInt(r, "question")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid question index")
		return
	}
	var req AnswerRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	view, err := h.flowSvc.SelectAnswer(r.Context(), middleware.GetSessionID(r.Context()), q, req.Value)
	h.respond(w, view, err)
}

// SubmitSurvey handles POST /v1/flow/survey/submit
func (h *SessionHandler) SubmitSurvey(w http.ResponseWriter, r *http.Request) {
	view, err := h.flowSvc.SubmitSurvey(r.Context(), middleware.GetSessionID(r.Context()))
	h.respond(w, view, err)
}

func (h *SessionHandler) respond(w http.ResponseWriter, view *model.SessionView, err error) {
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
