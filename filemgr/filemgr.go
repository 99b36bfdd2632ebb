// Package filemgr stores uploaded images on local disk under a
// per-resource directory and produces jpeg thumbnails.
package filemgr

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

type EntityType string

const (
	EntityProduct  EntityType = "product"
	EntitySlider   EntityType = "slider"
	EntityUser     EntityType = "user"
	EntityCategory EntityType = "category"
)

const maxUploadSize = 10 << 20 // 10 MB

var (
	allowedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
	allowedMIMEs      = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

	ErrInvalidExtension = errors.New("invalid file extension")
	ErrInvalidMIME      = errors.New("invalid MIME type")
	ErrFileTooLarge     = errors.New("file size exceeds limit")
)

func uploadDir(entity EntityType) string {
	return filepath.Join("static", "uploads", string(entity))
}

func contains(list []string, v string) bool {
	for _, a := range list {
		if a == v {
			return true
		}
	}
	return false
}

// SaveFormFile validates and stores one multipart image, returning the
// stored filename. A missing file is only an error when required.
func SaveFormFile(form *multipart.Form, formKey string, entity EntityType, required bool) (string, error) {
	files := form.File[formKey]
	if len(files) == 0 {
		if required {
			return "", fmt.Errorf("missing file %q", formKey)
		}
		return "", nil
	}

	file, err := files[0].Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	return SaveFile(file, files[0], entity)
}

// SaveFormFiles stores every file under formKey (product galleries).
func SaveFormFiles(form *multipart.Form, formKey string, entity EntityType) ([]string, error) {
	var names []string
	for _, header := range form.File[formKey] {
		file, err := header.Open()
		if err != nil {
			return nil, err
		}
		name, err := SaveFile(file, header, entity)
		file.Close()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// SaveFile validates extension, sniffed MIME and size, then writes the
// image plus a 150px jpeg thumbnail next to it.
func SaveFile(file multipart.File, header *multipart.FileHeader, entity EntityType) (string, error) {
	if header.Size > maxUploadSize {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !contains(allowedExtensions, ext) {
		return "", fmt.Errorf("%w: %s", ErrInvalidExtension, ext)
	}

	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read header: %w", err)
	}
	mimeType := http.DetectContentType(buf[:n])
	if !contains(allowedMIMEs, mimeType) {
		return "", fmt.Errorf("%w: %s", ErrInvalidMIME, mimeType)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	dir := uploadDir(entity)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	filename := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}

	if _, err := file.Seek(0, io.SeekStart); err == nil {
		if err := createThumb(file, dir, filename); err != nil {
			// thumbnails are best effort; the original is already saved
			fmt.Println("thumb generation failed:", err)
		}
	}

	return filename, nil
}

func createThumb(file io.Reader, dir, filename string) error {
	img, _, err := image.Decode(file)
	if err != nil {
		return err
	}

	thumb := imaging.Resize(img, 150, 0, imaging.Lanczos)
	thumbDir := filepath.Join(dir, "thumb")
	if err := os.MkdirAll(thumbDir, 0755); err != nil {
		return err
	}

	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	out, err := os.Create(filepath.Join(thumbDir, base+".jpg"))
	if err != nil {
		return err
	}
	defer out.Close()

	return jpeg.Encode(out, thumb, &jpeg.Options{Quality: 85})
}
