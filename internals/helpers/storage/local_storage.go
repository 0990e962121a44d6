package storage

import (
	"errors"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	DirAvatar = "assets/images/avatar"
	DirQuiz   = "assets/images/quiz"
	DirFeed   = "assets/images/feed"

	stagingDir = ".staging"
)

// LocalStorage menyimpan berkas publik di bawah Root (mis. "public").
// Yang disimpan di DB hanya nama berkas; path publiknya "/<dir>/<nama>".
type LocalStorage struct {
	Root         string
	MaxDimension int
}

func NewLocalStorage(root string, maxDimension int) *LocalStorage {
	return &LocalStorage{Root: root, MaxDimension: maxDimension}
}

// RandomName nama acak, dipakai untuk avatar.
func RandomName(ext string) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "") + ext
}

// TimeName nama berbasis waktu + suffix acak pendek supaya
// dua upload di detik yang sama tidak bentrok.
func TimeName(ext string) string {
	return fmt.Sprintf("%d_%s%s", time.Now().Unix(), uuid.NewString()[:8], ext)
}

// ExtOf ekstensi (lowercase, dengan titik) dari nama berkas upload.
func ExtOf(fh *multipart.FileHeader) string {
	if fh == nil {
		return ""
	}
	return strings.ToLower(filepath.Ext(fh.Filename))
}

func (s *LocalStorage) FullPath(dir, name string) string {
	return filepath.Join(s.Root, filepath.FromSlash(dir), filepath.Base(name))
}

func (s *LocalStorage) Exists(dir, name string) bool {
	_, err := os.Stat(s.FullPath(dir, name))
	return err == nil
}

// Save menyalin berkas upload apa adanya.
func (s *LocalStorage) Save(dir, name string, fh *multipart.FileHeader) error {
	return s.writeTo(s.FullPath(dir, name), fh, false)
}

// SaveImage decode lalu encode ulang gambar, di-fit ke MaxDimension.
func (s *LocalStorage) SaveImage(dir, name string, fh *multipart.FileHeader) error {
	return s.writeTo(s.FullPath(dir, name), fh, true)
}

// Delete idempoten: berkas yang sudah tidak ada bukan error.
func (s *LocalStorage) Delete(dir, name string) error {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	err := os.Remove(s.FullPath(dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *LocalStorage) writeTo(dst string, fh *multipart.FileHeader, reencode bool) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("gagal membuat folder: %w", err)
	}
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("gagal membuka file: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("gagal membuat file: %w", err)
	}

	if reencode {
		err = s.encodeImage(out, src, ExtOf(fh))
	} else {
		_, err = io.Copy(out, src)
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dst)
		return err
	}
	return nil
}

func (s *LocalStorage) encodeImage(w io.Writer, r io.Reader, ext string) error {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("gagal decode gambar: %w", err)
	}
	img = s.fit(img)

	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		format = imaging.JPEG
	}
	return imaging.Encode(w, img, format, imaging.JPEGQuality(85))
}

func (s *LocalStorage) fit(img image.Image) image.Image {
	if s.MaxDimension <= 0 {
		return img
	}
	b := img.Bounds()
	if b.Dx() <= s.MaxDimension && b.Dy() <= s.MaxDimension {
		return img
	}
	return imaging.Fit(img, s.MaxDimension, s.MaxDimension, imaging.Lanczos)
}

// PublicURL path relatif yang dilayani static mount "/assets".
// Kosong kalau name nil / kosong.
func PublicURL(dir string, name *string) string {
	if name == nil || *name == "" {
		return ""
	}
	return "/" + path.Join(dir, *name)
}
