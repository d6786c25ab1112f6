// Package upload stores shopper and admin supplied images on Cloudinary.
package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var (
	ErrEmptyFile = errors.New("upload: file is empty")
	ErrNotImage  = errors.New("upload: file is not an image")
)

// Uploader stores an image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, folder, name string, r io.Reader) (string, error)
}

// Cloudinary uploads through the Cloudinary API.
type Cloudinary struct {
	client *cloudinary.Cloudinary
}

// NewCloudinary builds an uploader from a cloudinary:// connection URL.
func NewCloudinary(cloudURL string) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromURL(cloudURL)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary: %w", err)
	}
	return &Cloudinary{client: cld}, nil
}

// Upload validates the payload is an image and stores it, returning the
// HTTPS delivery URL.
func (c *Cloudinary) Upload(ctx context.Context, folder, name string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if err := ValidateImage(data); err != nil {
		return "", err
	}

	result, err := c.client.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:   folder,
		PublicID: name,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return result.SecureURL, nil
}

// Disk stores images on the local filesystem for development, serving
// them from the public uploads path.
type Disk struct {
	dir     string
	baseURL string
}

func NewDisk(dir, baseURL string) *Disk {
	return &Disk{dir: dir, baseURL: baseURL}
}

func (d *Disk) Upload(ctx context.Context, folder, name string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if err := ValidateImage(data); err != nil {
		return "", err
	}

	dir := filepath.Join(d.dir, folder)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".png"), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	return d.baseURL + "/" + folder + "/" + name + ".png", nil
}

// ValidateImage checks the payload is non-empty and sniffs as an image.
func ValidateImage(data []byte) error {
	if len(data) == 0 {
		return ErrEmptyFile
	}
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotImage
	}
	return nil
}
