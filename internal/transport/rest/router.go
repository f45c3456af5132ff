package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"videosurvey/internal/config"
	"videosurvey/internal/platform/logger"
	"videosurvey/internal/service"
	"videosurvey/internal/transport/rest/handler"
	"videosurvey/internal/transport/rest/middleware"
	"videosurvey/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	Config        *config.Config
	Log           *logger.Logger
	TokenService  *service.TokenService
	ConfigService *service.ConfigService
	FlowService   *service.FlowService
	EditorService *service.EditorService
	ExportService *service.ExportService
	WSHub         *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	sessionHandler := handler.NewSessionHandler(c.FlowService, c.TokenService, c.Log)
	editorHandler := handler.NewEditorHandler(c.EditorService, c.ConfigService)
	exportHandler := handler.NewExportHandler(c.ExportService)
	wsHandler := ws.NewHandler(c.WSHub, c.TokenService, c.FlowService, c.Log)

	// Initialize middleware
	sessionMW := middleware.NewSessionMiddleware(c.TokenService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware(c.Config))
	r.Use(middleware.RequestLogger(c.Log))

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/sessions", sessionHandler.Begin).Methods("POST", "OPTIONS")
	v1.HandleFunc("/config", editorHandler.Config).Methods("GET", "OPTIONS")

	// WebSocket routes (token in query param)
	v1.HandleFunc("/ws/session", wsHandler.SessionWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Session routes (require session token)
	sessionRoutes := v1.NewRoute().Subrouter()
	sessionRoutes.Use(sessionMW.RequireSession)

	sessionRoutes.HandleFunc("/session", sessionHandler.Get).Methods("GET", "OPTIONS")
	sessionRoutes.HandleFunc("/flow/name", sessionHandler.SubmitName).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/flow/start", sessionHandler.Start).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/flow/next", sessionHandler.Next).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/flow/previous", sessionHandler.Previous).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/flow/top", sessionHandler.Top).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/flow/restart", sessionHandler.Restart).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/flow/video/ended", sessionHandler.VideoEnded).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/flow/survey/answers/{question:-?[0-9]+}", sessionHandler.SelectAnswer).Methods("PUT", "OPTIONS")
	sessionRoutes.HandleFunc("/flow/survey/submit", sessionHandler.SubmitSurvey).Methods("POST", "OPTIONS")

	// Editor routes
	sessionRoutes.HandleFunc("/editor", editorHandler.Draft).Methods("GET", "OPTIONS")
	sessionRoutes.HandleFunc("/editor/{kind}/open", editorHandler.Open).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/editor/save", editorHandler.Save).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/editor/cancel", editorHandler.Cancel).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/editor/records", editorHandler.AddRecord).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/editor/records/move", editorHandler.MoveRecord).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/editor/records/{index:-?[0-9]+}", editorHandler.UpdateField).Methods("PATCH", "OPTIONS")
	sessionRoutes.HandleFunc("/editor/records/{index:-?[0-9]+}", editorHandler.RemoveRecord).Methods("DELETE", "OPTIONS")
	sessionRoutes.HandleFunc("/editor/records/{index:-?[0-9]+}/options", editorHandler.AddOption).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/editor/records/{index:-?[0-9]+}/options/move", editorHandler.MoveOption).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/editor/records/{index:-?[0-9]+}/options/{option:-?[0-9]+}", editorHandler.UpdateOption).Methods("PUT", "OPTIONS")
	sessionRoutes.HandleFunc("/editor/records/{index:-?[0-9]+}/options/{option:-?[0-9]+}", editorHandler.RemoveOption).Methods("DELETE", "OPTIONS")

	// Export routes
	sessionRoutes.HandleFunc("/export/csv", exportHandler.CSV).Methods("GET", "OPTIONS")
	sessionRoutes.HandleFunc("/export/xlsx", exportHandler.XLSX).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(cfg *config.Config) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", cfg.CORSAllowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", cfg.CORSAllowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", cfg.CORSAllowedHeaders)

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
