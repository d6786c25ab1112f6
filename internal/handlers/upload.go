package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/famoussince/storefront/internal/upload"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Upload destinations, selected by the uploadType form field.
var uploadFolders = map[string]string{
	"product-type":  "product-types",
	"tshirt-design": "tshirt-designs",
}

type UploadHandler struct {
	uploader upload.Uploader
	maxSize  int64
}

func NewUploadHandler(uploader upload.Uploader, maxSize int64) *UploadHandler {
	return &UploadHandler{uploader: uploader, maxSize: maxSize}
}

// Upload accepts a multipart image and forwards it to the hosted image
// service, returning the public URL.
func (h *UploadHandler) Upload(c echo.Context) error {
	folder, ok := uploadFolders[c.FormValue("uploadType")]
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown uploadType")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing file")
	}
	if h.maxSize > 0 && fileHeader.Size > h.maxSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "File too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to read file")
	}
	defer file.Close()

	url, err := h.uploader.Upload(c.Request().Context(), folder, uuid.NewString(), file)
	switch {
	case errors.Is(err, upload.ErrEmptyFile):
		return echo.NewHTTPError(http.StatusBadRequest, "File is empty")
	case errors.Is(err, upload.ErrNotImage):
		return echo.NewHTTPError(http.StatusUnsupportedMediaType, "File is not an image")
	case err != nil:
		slog.Error("upload failed", "error", err, "folder", folder)
		return echo.NewHTTPError(http.StatusBadGateway, "Upload failed")
	}

	return c.JSON(http.StatusOK, map[string]string{"url": url})
}
