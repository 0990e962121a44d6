package constants

import (
	"path/filepath"
	"strings"
)

// Ekstensi gambar yang diterima untuk avatar, soal, dan feed.
var ImageExtensions = []string{".jpeg", ".png", ".jpg"}

var imageMIMEs = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
}

func IsImageFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range ImageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

func IsImageMIME(mime string) bool {
	_, ok := imageMIMEs[mime]
	return ok
}
