package service

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/google/uuid"

	"travelo-api/internal/model"
	"travelo-api/pkg/apierror"
)

const thumbnailSize = 400

// extensionByMIME doubles as the allow-list: uploads with any other sniffed
// content type are rejected.
var extensionByMIME = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// UploadService stores uploaded images under a local root and generates a
// JPEG thumbnail next to each. Files are named by UUID; the client-supplied
// filename is never used on disk.
type UploadService struct {
	root string
}

func NewUploadService(root string) (*UploadService, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("upload root is required")
	}

	if err := os.MkdirAll(filepath.Join(root, "thumbs"), 0o755); err != nil {
		return nil, fmt.Errorf("create upload root: %w", err)
	}

	return &UploadService{root: root}, nil
}

// Save sniffs the real content type from the first bytes, writes the image
// and its thumbnail, and returns the public URLs for both.
func (s *UploadService) Save(reader io.Reader) (model.UploadResult, error) {
	sniffBuffer := make([]byte, 512)
	n, readErr := io.ReadFull(reader, sniffBuffer)
	if readErr != nil && readErr != io.ErrUnexpectedEOF && readErr != io.EOF {
		return model.UploadResult{}, readErr
	}

	detectedMIME := http.DetectContentType(sniffBuffer[:n])
	ext, allowed := extensionByMIME[detectedMIME]
	if !allowed {
		return model.UploadResult{}, apierror.New("UNSUPPORTED_TYPE",
			"Only JPEG, PNG and WebP images are accepted", http.StatusUnsupportedMediaType)
	}

	name := uuid.NewString() + ext
	imagePath := filepath.Join(s.root, name)

	file, err := os.OpenFile(imagePath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return model.UploadResult{}, err
	}

	contentReader := io.MultiReader(bytes.NewReader(sniffBuffer[:n]), reader)
	_, copyErr := io.Copy(file, contentReader)
	closeErr := file.Close()
	if copyErr != nil {
		_ = os.Remove(imagePath)
		return model.UploadResult{}, copyErr
	}
	if closeErr != nil {
		_ = os.Remove(imagePath)
		return model.UploadResult{}, closeErr
	}

	thumbName := strings.TrimSuffix(name, ext) + ".jpg"
	if err := s.generateThumbnail(imagePath, filepath.Join(s.root, "thumbs", thumbName)); err != nil {
		_ = os.Remove(imagePath)
		return model.UploadResult{}, err
	}

	return model.UploadResult{
		URL:          "/uploads/" + name,
		ThumbnailURL: "/uploads/thumbs/" + thumbName,
	}, nil
}

// generateThumbnail decodes the stored image, scales its longest side down
// to thumbnailSize and writes a JPEG.
func (s *UploadService) generateThumbnail(imagePath string, thumbPath string) error {
	file, err := os.Open(imagePath)
	if err != nil {
		return err
	}
	defer file.Close()

	src, _, err := image.Decode(file)
	if err != nil {
		return apierror.New("UNSUPPORTED_TYPE", "Cannot decode image", http.StatusUnsupportedMediaType)
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return apierror.New("UNSUPPORTED_TYPE", "Invalid image dimensions", http.StatusUnsupportedMediaType)
	}

	maxDim := width
	if height > maxDim {
		maxDim = height
	}

	scale := float64(thumbnailSize) / float64(maxDim)
	if scale > 1 {
		scale = 1
	}

	targetWidth := int(math.Round(float64(width) * scale))
	targetHeight := int(math.Round(float64(height) * scale))
	if targetWidth < 1 {
		targetWidth = 1
	}
	if targetHeight < 1 {
		targetHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	thumbWriter, err := os.OpenFile(thumbPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	encodeErr := jpeg.Encode(thumbWriter, dst, &jpeg.Options{Quality: 90})
	closeErr := thumbWriter.Close()
	if encodeErr != nil {
		return encodeErr
	}

	return closeErr
}
