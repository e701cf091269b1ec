package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
	"github.com/BruksfildServices01/cleaning-booking/internal/storage"
)

const (
	uploadField = "file"
	// room for the multipart envelope around the file itself
	multipartSlack = 1 << 20
)

// UploadHandler accepts service images. Every upload is re-encoded, so
// the stored object is never the raw client bytes.
type UploadHandler struct {
	uploader *storage.Uploader
	maxBytes int64
}

func NewUploadHandler(uploader *storage.Uploader, maxBytes int64) *UploadHandler {
	return &UploadHandler{uploader: uploader, maxBytes: maxBytes}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartSlack)
	}

	fh, err := c.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.BadRequest(c, "file_too_large")
			return
		}
		httperr.BadRequest(c, "file_required")
		return
	}
	if h.maxBytes > 0 && fh.Size > h.maxBytes {
		httperr.BadRequest(c, "file_too_large")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	defer f.Close()

	url, err := h.uploader.Upload(c.Request.Context(), f)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupported) {
			httperr.BadRequest(c, "unsupported_file_type")
			return
		}
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}
