package server

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"docreview/constants"
	"docreview/internal/common"
)

// handleReview accepts one multipart document upload and runs the review
// pipeline over it. The temp file holding the upload is removed on every
// exit path.
func (s *Service) handleReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rid := common.RequestIDFromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		s.log.Warn("review.bad_multipart", "req_id", rid, "error", err)
		writeError(w, http.StatusBadRequest, "upload is too large or malformed")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		writeError(w, http.StatusBadRequest, "empty filename")
		return
	}
	ext := filepath.Ext(header.Filename)
	if constants.MapExtToFormat(ext) == "" {
		writeError(w, http.StatusUnsupportedMediaType,
			fmt.Sprintf("unsupported file type: %s, only .txt/.pdf/.docx are accepted", ext))
		return
	}

	tmpPath, err := s.saveUpload(file, ext)
	if err != nil {
		s.log.Error("review.tmpfile_error", "req_id", rid, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	defer func() {
		if err := os.Remove(tmpPath); err != nil && !os.IsNotExist(err) {
			s.log.Warn("review.tmpfile_remove_failed", "req_id", rid, "path", tmpPath, "error", err)
		}
	}()

	s.log.Info("review.upload",
		"req_id", rid,
		"filename", header.Filename,
		"bytes", header.Size,
	)

	result, err := s.pipeline.Run(ctx, tmpPath)
	if err != nil {
		s.log.Warn("review.failed", "req_id", rid, "error", err)
		writeError(w, statusFor(err), clientMessage(err))
		return
	}

	writeSuccess(w, result)
}

func (s *Service) saveUpload(src io.Reader, ext string) (string, error) {
	tmp, err := os.CreateTemp("", "review-*"+strings.ToLower(ext))
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	path := tmp.Name()
	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(path)
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close temp file: %w", err)
	}
	return path, nil
}
