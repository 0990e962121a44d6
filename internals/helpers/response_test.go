package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestSuccessBodyDefaults(t *testing.T) {
	got := SuccessBody("", nil)
	if !got.Status || got.Message != "Sukses" || got.Data != nil {
		t.Fatalf("SuccessBody(\"\", nil) = %+v", got)
	}

	got = SuccessBody("Data", []int{1})
	if got.Message != "Data" || got.Data == nil {
		t.Fatalf("SuccessBody with data = %+v", got)
	}
}

func TestFailedBodyDropsEmptyData(t *testing.T) {
	got := FailedBody("", "")
	if got.Status || got.Message != "Gagal" || got.Data != nil {
		t.Fatalf("FailedBody(\"\", \"\") = %+v", got)
	}

	raw, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"status":false,"message":"Gagal"}` {
		t.Fatalf("json = %s", raw)
	}
}

func TestResponseStatusDefaults(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c *fiber.Ctx) error { return ResponseSuccess(c, "", nil, 0) })
	app.Get("/fail", func(c *fiber.Ctx) error { return ResponseFailed(c, "", nil, 0) })
	app.Get("/created", func(c *fiber.Ctx) error { return JsonCreated(c, "Data berhasil dibuat", fiber.Map{"id": 1}) })

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/ok", 200, `{"status":true,"message":"Sukses"}`},
		{"/fail", 500, `{"status":false,"message":"Gagal"}`},
		{"/created", 201, `{"status":true,"message":"Data berhasil dibuat","data":{"id":1}}`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil), -1)
			if err != nil {
				t.Fatalf("request: %v", err)
			}
			raw, _ := io.ReadAll(resp.Body)
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			if string(raw) != tt.body {
				t.Fatalf("body = %s, want %s", raw, tt.body)
			}
		})
	}
}
