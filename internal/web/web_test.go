package web

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jsvensson/colorweave/internal/color"
	"github.com/jsvensson/colorweave/internal/config"
	"golang.org/x/image/bmp"
)

func newTestApp() *App {
	cfg := config.Default()
	cfg.Field = config.Field{Width: 36, Height: 10, Workers: 2}
	cfg.Palette["brand"] = color.Hex("#ff8800")
	return New(cfg)
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return got
}

func TestConvert(t *testing.T) {
	h := newTestApp().Handler()

	tests := []struct {
		name   string
		target string
		want   map[string]any
	}{
		{
			name:   "to rgb",
			target: "/api/convert?color=%23ff0000&to=rgb",
			want: map[string]any{
				"input": "#ff0000",
				"type":  "rgb",
				"color": map[string]any{"r": 255.0, "g": 0.0, "b": 0.0},
			},
		},
		{
			name:   "default mode is hex",
			target: "/api/convert?color=rgb(255,0,0)",
			want: map[string]any{
				"input": "rgb(255,0,0)",
				"type":  "hex",
				"color": map[string]any{"hex": "#ff0000"},
			},
		},
		{
			name:   "palette reference",
			target: "/api/convert?color=palette.brand&to=cmyk",
			want: map[string]any{
				"input": "palette.brand",
				"type":  "cmyk",
				"color": map[string]any{"c": 0.0, "m": 47.0, "y": 100.0, "k": 0.0},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, h, tt.target)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			if diff := cmp.Diff(tt.want, decodeJSON(t, rec)); diff != "" {
				t.Errorf("response mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvertErrors(t *testing.T) {
	h := newTestApp().Handler()

	tests := []struct {
		name    string
		target  string
		wantMsg string
	}{
		{"missing color", "/api/convert", "missing color"},
		{"bad color", "/api/convert?color=rgb(300,0,0)", "0..255"},
		{"bad mode", "/api/convert?color=%23fff&to=oklab", "unknown color mode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, h, tt.target)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			msg, _ := decodeJSON(t, rec)["error"].(string)
			if !strings.Contains(msg, tt.wantMsg) {
				t.Errorf("error = %q, want it to mention %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestPick(t *testing.T) {
	h := newTestApp().Handler()

	rec := get(t, h, "/api/pick?x=0&y=5&to=rgb")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	got := decodeJSON(t, rec)
	want := map[string]any{
		"type":  "rgb",
		"color": map[string]any{"r": 255.0, "g": 0.0, "b": 0.0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pick mismatch (-want +got):\n%s", diff)
	}

	for _, target := range []string{
		"/api/pick?y=1",
		"/api/pick?x=36&y=1",
		"/api/pick?x=1&y=-1",
		"/api/pick?x=a&y=1",
		"/api/pick?x=1&y=1&width=5000",
	} {
		if rec := get(t, h, target); rec.Code != http.StatusBadRequest {
			t.Errorf("GET %s status = %d, want 400", target, rec.Code)
		}
	}
}

func TestFieldImage(t *testing.T) {
	h := newTestApp().Handler()

	rec := get(t, h, "/field.png")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q", ct)
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 36, 10) {
		t.Errorf("bounds = %v, want 36x10", got)
	}

	rec = get(t, h, "/field.bmp?width=8&height=4")
	img, err = bmp.Decode(rec.Body)
	if err != nil {
		t.Fatalf("bmp.Decode: %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 8, 4) {
		t.Errorf("bounds = %v, want 8x4", got)
	}

	if rec := get(t, h, "/field.gif"); rec.Code != http.StatusNotFound {
		t.Errorf("field.gif status = %d, want 404", rec.Code)
	}
	if rec := get(t, h, "/field.png?width=0"); rec.Code != http.StatusBadRequest {
		t.Errorf("width=0 status = %d, want 400", rec.Code)
	}
}

func TestSliderImage(t *testing.T) {
	h := newTestApp().Handler()

	rec := get(t, h, "/slider.png?color=%23ff0000&mode=rgb&channel=g&width=256&height=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	r, g, b, _ := img.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("left edge = (%d, %d, %d), want (255, 0, 0)", r>>8, g>>8, b>>8)
	}

	for _, target := range []string{
		"/slider.png?color=%23ff0000&mode=rgb&channel=q",
		"/slider.png?color=%23ff0000&mode=oklab&channel=l",
		"/slider.png?mode=rgb&channel=r",
	} {
		if rec := get(t, h, target); rec.Code != http.StatusBadRequest {
			t.Errorf("GET %s status = %d, want 400", target, rec.Code)
		}
	}
}

func TestIndex(t *testing.T) {
	h := newTestApp().Handler()

	rec := get(t, h, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	body := rec.Body.String()
	for _, want := range []string{`width="36"`, "<option selected>hex</option>", "<option>xyz</option>"} {
		if !strings.Contains(body, want) {
			t.Errorf("index missing %q", want)
		}
	}

	if rec := get(t, h, "/nope"); rec.Code != http.StatusNotFound {
		t.Errorf("/nope status = %d, want 404", rec.Code)
	}
}

func TestServe(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	urls := make(chan string, 1)
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, "127.0.0.1:0", newTestApp().Handler(), func(url string) { urls <- url })
	}()

	var base string
	select {
	case base = <-urls:
	case err := <-done:
		t.Fatalf("Serve returned early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not become ready")
	}

	resp, err := http.Get(base + "/api/convert?color=%23000&to=rgb")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !bytes.Contains(body, []byte(`"type":"rgb"`)) {
		t.Errorf("body = %s", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve error after cancel: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not shut down")
	}
}
