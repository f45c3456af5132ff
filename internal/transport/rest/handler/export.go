package handler

import (
	"mime"
	"net/http"
	"strconv"

	"videosurvey/internal/service"
	"videosurvey/internal/transport/rest/middleware"
)

// ExportHandler serves result downloads
type ExportHandler struct {
	exportSvc *service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportSvc *service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// CSV handles GET /v1/export/csv
func (h *ExportHandler) CSV(w http.ResponseWriter, r *http.Request) {
	dl, err := h.exportSvc.CSV(r.Context(), middleware.GetSessionID(r.Context()))
	writeDownload(w, dl, err)
}

// XLSX handles GET /v1/export/xlsx
func (h *ExportHandler) XLSX(w http.ResponseWriter, r *http.Request) {
	dl, err := h.exportSvc.XLSX(r.Context(), middleware.GetSessionID(r.Context()))
	writeDownload(w, dl, err)
}

func writeDownload(w http.ResponseWriter, dl *service.Download, err error) {
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", dl.ContentType)
	// Names may carry non-ASCII text; FormatMediaType encodes it per RFC 2231
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": dl.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(dl.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(dl.Data)
}
