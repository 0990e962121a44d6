package storage

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type stagedFile struct {
	tmp  string
	dir  string
	name string
}

type fileRef struct {
	dir  string
	name string
}

// Batch mengumpulkan perubahan berkas selama satu transaksi DB.
// Berkas baru ditulis ke area staging dulu; Commit memindahkannya ke
// lokasi final dan menghapus berkas yang di-Retire. Discard membuang staging.
// Panggil Commit hanya setelah transaksi DB sukses.
type Batch struct {
	store   *LocalStorage
	staged  []stagedFile
	retired []fileRef
	done    bool
}

func (s *LocalStorage) NewBatch() *Batch {
	return &Batch{store: s}
}

// Stage menulis upload ke staging. reencode=true untuk gambar yang harus di-decode ulang.
func (b *Batch) Stage(dir, name string, fh *multipart.FileHeader, reencode bool) error {
	tmp := filepath.Join(b.store.Root, stagingDir, uuid.NewString())
	if err := b.store.writeTo(tmp, fh, reencode); err != nil {
		return err
	}
	b.staged = append(b.staged, stagedFile{tmp: tmp, dir: dir, name: name})
	return nil
}

// Retire menandai berkas lama untuk dihapus saat Commit.
func (b *Batch) Retire(dir, name string) {
	if name == "" {
		return
	}
	b.retired = append(b.retired, fileRef{dir: dir, name: name})
}

func (b *Batch) Staged() int  { return len(b.staged) }
func (b *Batch) Retired() int { return len(b.retired) }

// Commit best-effort: semua langkah dicoba, error digabung.
func (b *Batch) Commit() error {
	if b.done {
		return nil
	}
	b.done = true

	var errs []error
	for _, f := range b.staged {
		dst := b.store.FullPath(f.dir, f.name)
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			errs = append(errs, err)
			continue
		}
		if err := os.Rename(f.tmp, dst); err != nil {
			_ = os.Remove(f.tmp)
			errs = append(errs, fmt.Errorf("pindah %s: %w", f.name, err))
		}
	}
	for _, r := range b.retired {
		if err := b.store.Delete(r.dir, r.name); err != nil {
			errs = append(errs, fmt.Errorf("hapus %s: %w", r.name, err))
		}
	}
	return errors.Join(errs...)
}

// Discard aman dipanggil via defer; no-op setelah Commit.
func (b *Batch) Discard() {
	if b.done {
		return
	}
	b.done = true
	for _, f := range b.staged {
		if err := os.Remove(f.tmp); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("[WARN] gagal hapus staging %s: %v", f.tmp, err)
		}
	}
}
