package helper

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Slugify teks bebas jadi slug [a-z0-9-], transliterasi non-ASCII,
// enforce maxLen (default 100 jika <=0), fallback "item".
func Slugify(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = 100
	}
	out := slug.Make(strings.TrimSpace(s))
	if utf8.RuneCountInString(out) > maxLen {
		out = strings.Trim(string([]rune(out)[:maxLen]), "-")
	}
	if out == "" {
		out = "item"
	}
	return out
}

// EnsureUniqueSlugCI memastikan slug unik (case-insensitive) di satu tabel/kolom.
// scopeFn boleh nil. maxLen menjaga total panjang saat menambah suffix "-2", "-3", dst.
func EnsureUniqueSlugCI(
	ctx context.Context,
	db *gorm.DB,
	table string,
	column string,
	baseSlug string,
	scopeFn func(*gorm.DB) *gorm.DB,
	maxLen int,
) (string, error) {
	if maxLen <= 0 {
		maxLen = 100
	}
	candidate := baseSlug

	for i := 0; i < 25; i++ {
		q := db.WithContext(ctx).Table(table)
		if scopeFn != nil {
			q = scopeFn(q)
		}

		var count int64
		if err := q.Where(fmt.Sprintf("LOWER(%s) = ?", column), strings.ToLower(candidate)).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}

		suffix := fmt.Sprintf("-%d", i+2)
		candidate = trimForSuffix(baseSlug, suffix, maxLen) + suffix
	}

	r := fmt.Sprintf("-%x", time.Now().UnixNano()&0xffff)
	return trimForSuffix(baseSlug, r, maxLen) + r, nil
}

func trimForSuffix(base, suffix string, maxLen int) string {
	need := len(suffix)
	if need >= maxLen {
		return "x"
	}
	rs := []rune(base)
	if keep := maxLen - need; len(rs) > keep {
		rs = rs[:keep]
	}
	out := strings.Trim(string(rs), "-")
	if out == "" {
		out = "x"
	}
	return out
}
