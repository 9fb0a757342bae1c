package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/yoonsol/coffee-franchise-site/internal/storage"
)

// Upload handles POST /api/admin/uploads/:bucket. Accepts multipart form
// data with one or more "files" parts; each file is validated locally and
// uploaded individually so one bad file does not sink the batch.
func (h *AdminHandler) Upload(c echo.Context) error {
	bucket := c.Param("bucket")
	if !storage.ValidBucket(bucket) {
		return fail(c, http.StatusBadRequest, "unknown upload bucket")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return fail(c, http.StatusBadRequest, "multipart form expected")
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		return fail(c, http.StatusBadRequest, "no files provided")
	}

	files := make([]storage.File, 0, len(headers))
	for _, fh := range headers {
		data, err := readPart(fh)
		if err != nil {
			return fail(c, http.StatusBadRequest, "could not read uploaded file")
		}
		files = append(files, storage.File{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	results := h.Uploader.UploadBatch(c.Request().Context(), bucket, files)
	for _, r := range results {
		if r.Error != "" {
			h.Logger.Warn("upload rejected", zap.String("file", r.Filename), zap.String("reason", r.Error))
		}
	}
	return ok(c, http.StatusOK, results)
}

// DeleteUpload handles DELETE /api/admin/uploads. Body carries the public
// URL of the object to remove.
func (h *AdminHandler) DeleteUpload(c echo.Context) error {
	var req struct {
		URL string `json:"url"`
	}
	if err := c.Bind(&req); err != nil || req.URL == "" {
		return fail(c, http.StatusBadRequest, "url required")
	}
	if err := h.Uploader.Delete(c.Request().Context(), req.URL); err != nil {
		var verr *storage.ValidationError
		if errors.As(err, &verr) {
			return fail(c, http.StatusBadRequest, verr.Msg)
		}
		return fail(c, http.StatusInternalServerError, "delete failed")
	}
	return ok(c, http.StatusOK, echo.Map{"deleted": true})
}

// readPart slurps one multipart file, bounded a little above the storage
// limit so oversized files still reach the validator and get its message.
func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, storage.MaxUploadBytes+1))
}
