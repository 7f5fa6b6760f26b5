package http

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// UploadHandler stores project and submission images on the local
// filesystem under opaque uuid keys and serves them back.
type UploadHandler struct {
	uploadDir string
}

func NewUploadHandler(uploadDir string) (*UploadHandler, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &UploadHandler{uploadDir: uploadDir}, nil
}

func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, "missing image file", nil)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif":
	default:
		writeJSON(w, http.StatusBadRequest, "unsupported image type", nil)
		return
	}

	ref := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(h.uploadDir, ref))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, "failed to store image", nil)
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		writeJSON(w, http.StatusInternalServerError, "failed to store image", nil)
		return
	}

	writeJSON(w, http.StatusCreated, "image uploaded", map[string]string{"image_ref": ref})
}

func (h *UploadHandler) Download(w http.ResponseWriter, r *http.Request) {
	ref := r.URL.Query().Get("ref")
	// Reject path traversal; refs are uuid-based names we issued.
	if ref == "" || ref != filepath.Base(ref) {
		writeJSON(w, http.StatusBadRequest, "malformed image ref", nil)
		return
	}
	http.ServeFile(w, r, filepath.Join(h.uploadDir, ref))
}
