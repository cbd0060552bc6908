// Package handler provides HTTP handlers for the API.
package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"resume-filter/internal/domain"
	apperrors "resume-filter/pkg/errors"
)

const (
	keywordsField = "keywords"
	resumesField  = "resumes"

	msgProcessingFailed = "Error processing PDFs"
	msgDatabaseError    = "Database error"
	msgInternalError    = "Internal server error"
)

// ResumeHandler serves the upload and listing endpoints
type ResumeHandler struct {
	ingestionService domain.IngestionService
	resumeService    domain.ResumeService
	maxMemory        int64
	logger           domain.Logger
}

// NewResumeHandler creates a new resume handler. maxMemory bounds the
// multipart parts held in memory; larger parts spill to temporary files.
func NewResumeHandler(
	ingestionService domain.IngestionService,
	resumeService domain.ResumeService,
	maxMemory int64,
	logger domain.Logger,
) *ResumeHandler {
	return &ResumeHandler{
		ingestionService: ingestionService,
		resumeService:    resumeService,
		maxMemory:        maxMemory,
		logger:           logger,
	}
}

// Upload handles POST /upload
func (h *ResumeHandler) Upload(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(h.maxMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.writeInternalError(w, apperrors.NewInternalError(msgProcessingFailed, fmt.Errorf("parse multipart form: %w", err)))
		return
	}

	keywords := r.FormValue(keywordsField)
	files := uploadedFiles(r.MultipartForm)

	// the batch must finish once started, even if the client goes away
	ctx := context.WithoutCancel(r.Context())

	result, err := h.ingestionService.Ingest(ctx, files, keywords)
	if err != nil {
		if appErr, ok := apperrors.As(err); ok && appErr.Type == apperrors.ErrorTypeValidation {
			writeError(w, apperrors.GetStatusCode(err), appErr.Message)
			return
		}
		h.writeInternalError(w, apperrors.NewInternalError(msgProcessingFailed, err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("%d matching resumes uploaded!", result.InsertedCount),
	})
}

// List handles GET /resumes
func (h *ResumeHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.resumeService.ListResumes(r.Context())
	if err != nil {
		h.writeInternalError(w, apperrors.NewInternalError(msgDatabaseError, err))
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// writeInternalError logs the cause and answers with the error's status and
// public message only.
func (h *ResumeHandler) writeInternalError(w http.ResponseWriter, appErr *apperrors.AppError) {
	h.logger.Error(appErr.Message, appErr.Cause)
	writeError(w, appErr.StatusCode, appErr.Message)
}

func uploadedFiles(form *multipart.Form) []domain.UploadedFile {
	if form == nil {
		return nil
	}

	headers := form.File[resumesField]
	files := make([]domain.UploadedFile, 0, len(headers))
	for _, fh := range headers {
		fh := fh // per-iteration copy; go.mod targets go1.21 loop semantics
		files = append(files, domain.UploadedFile{
			Filename:    sanitizeFilename(fh.Filename),
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		})
	}
	return files
}

// sanitizeFilename strips any client-supplied path components.
func sanitizeFilename(name string) string {
	base := strings.TrimSpace(filepath.Base(filepath.ToSlash(name)))
	if i := strings.LastIndex(base, "\\"); i >= 0 {
		base = base[i+1:]
	}
	if base == "" || base == "." || base == "/" {
		return "resume"
	}
	return base
}
