package services

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/datatypes"

	"spothotel-backend/models"
)

// SaveBase64Image decodes a base64 payload (optionally a data: URI) and
// writes it under uploads/<subdir>. Returns the path relative to uploads/.
func SaveBase64Image(b64 string, subdir string) (string, error) {
	if idx := strings.Index(b64, "base64,"); idx >= 0 {
		b64 = b64[idx+7:]
	}

	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	dir := filepath.Join("uploads", subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	filename := fmt.Sprintf("%d.jpg", time.Now().UnixNano())
	fullpath := filepath.Join(dir, filename)

	if err := os.WriteFile(fullpath, data, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(subdir, filename)), nil
}

// SavePictures stores each base64 image and returns picture records pointing
// at the public /uploads path.
func SavePictures(b64s []string, subdir string) ([]models.Picture, error) {
	pictures := make([]models.Picture, 0, len(b64s))
	for _, b64 := range b64s {
		rel, err := SaveBase64Image(b64, subdir)
		if err != nil {
			// clean up what was already written
			RemovePictures(pictures)
			return nil, err
		}
		pictures = append(pictures, models.Picture{ID: rel, URL: "/uploads/" + rel})
	}
	return pictures, nil
}

// RemovePictures deletes stored picture files, best-effort.
func RemovePictures(pics []models.Picture) {
	for _, p := range pics {
		if p.ID == "" {
			continue
		}
		if err := os.Remove(filepath.Join("uploads", filepath.FromSlash(p.ID))); err != nil && !os.IsNotExist(err) {
			log.Printf("warning: failed to remove picture %s: %v", p.ID, err)
		}
	}
}

// DecodePictures reads a Pictures JSON column; malformed content yields nil.
func DecodePictures(raw datatypes.JSON) []models.Picture {
	if len(raw) == 0 {
		return nil
	}
	var pics []models.Picture
	if err := json.Unmarshal(raw, &pics); err != nil {
		return nil
	}
	return pics
}

// EncodePictures marshals picture records for storage.
func EncodePictures(pics []models.Picture) (datatypes.JSON, error) {
	raw, err := json.Marshal(pics)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
