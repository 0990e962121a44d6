package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"quizapp_backend/internals/constants"
	database "quizapp_backend/internals/databases"
	authModel "quizapp_backend/internals/features/users/auth/model"
)

// SetupTestDB database SQLite in-memory yang terisolasi per test, skema lewat AutoMigrate.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

// CreateUser menyimpan user langsung ke DB dengan password ter-hash (cost minimum).
func CreateUser(t *testing.T, db *gorm.DB, name, email, password string, role constants.Role) *authModel.UserModel {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	user := &authModel.UserModel{Name: name, Email: email, Password: string(hashed), Role: role}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return user
}

// PNGBytes gambar PNG valid berukuran w x h.
func PNGBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode png: %v", err)
	}
	return buf.Bytes()
}

// FileHeader membungkus bytes jadi *multipart.FileHeader seperti hasil parsing request.
func FileHeader(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	form := NewForm().File(field, filename, content)
	req := form.Request(http.MethodPost, "/")
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("Failed to parse multipart: %v", err)
	}
	return req.MultipartForm.File[field][0]
}

// ===================== MULTIPART BUILDER =====================

type Form struct {
	buf bytes.Buffer
	w   *multipart.Writer
}

func NewForm() *Form {
	f := &Form{}
	f.w = multipart.NewWriter(&f.buf)
	return f
}

func (f *Form) Field(key, value string) *Form {
	_ = f.w.WriteField(key, value)
	return f
}

func (f *Form) File(field, filename string, content []byte) *Form {
	part, err := f.w.CreateFormFile(field, filename)
	if err == nil {
		_, _ = part.Write(content)
	}
	return f
}

func (f *Form) Request(method, target string) *http.Request {
	_ = f.w.Close()
	req := httptest.NewRequest(method, target, bytes.NewReader(f.buf.Bytes()))
	req.Header.Set(fiber.HeaderContentType, f.w.FormDataContentType())
	return req
}

// ===================== HTTP =====================

// Envelope bentuk respons standar, data dibiarkan mentah.
type Envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func JSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal body: %v", err)
		}
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	return req
}

// Do menjalankan request lewat app.Test lalu decode envelope.
func Do(t *testing.T, app *fiber.App, req *http.Request, token string) (int, Envelope) {
	t.Helper()

	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Request %s %s failed: %v", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}
	var env Envelope
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		if err := json.Unmarshal(raw, &env); err != nil {
			t.Fatalf("Failed to decode envelope %q: %v", raw, err)
		}
	}
	return resp.StatusCode, env
}

// DecodeData decode env.Data ke dst.
func DecodeData(t *testing.T, env Envelope, dst any) {
	t.Helper()

	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("Failed to decode data %s: %v", env.Data, err)
	}
}

// AssertStatus gagal kalau status tidak sesuai, sertakan pesan envelope.
func AssertStatus(t *testing.T, got, want int, env Envelope) {
	t.Helper()

	if got != want {
		t.Fatalf("status = %d, want %d (message=%q data=%s)", got, want, env.Message, env.Data)
	}
}
