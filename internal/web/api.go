package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jsvensson/colorweave/internal/color"
	"github.com/jsvensson/colorweave/internal/convert"
	"github.com/jsvensson/colorweave/internal/field"
	"github.com/jsvensson/colorweave/internal/format"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func badRequest(w http.ResponseWriter, err error) {
	log.Debugf("bad request: %s", err)
	writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
}

// targetMode reads the "to" parameter, defaulting to the configured mode.
func (a *App) targetMode(q url.Values) (color.Mode, error) {
	if to := q.Get("to"); to != "" {
		return color.ParseMode(to)
	}
	return a.mode, nil
}

func (a *App) convertHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	src := q.Get("color")
	if src == "" {
		badRequest(w, fmt.Errorf("missing color parameter"))
		return
	}
	c, err := a.parser.Parse(src)
	if err != nil {
		badRequest(w, err)
		return
	}
	mode, err := a.targetMode(q)
	if err != nil {
		badRequest(w, err)
		return
	}
	writeJSON(w, http.StatusOK, format.NewRecord(src, convert.To(c, mode)))
}

func (a *App) pickHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	width, height, err := a.size(q)
	if err != nil {
		badRequest(w, err)
		return
	}
	x, err := intParam(q, "x", -1)
	if err != nil {
		badRequest(w, err)
		return
	}
	y, err := intParam(q, "y", -1)
	if err != nil {
		badRequest(w, err)
		return
	}
	if x < 0 || x >= width || y < 0 || y >= height {
		badRequest(w, fmt.Errorf("point (%d, %d) is outside the %dx%d field", x, y, width, height))
		return
	}
	mode, err := a.targetMode(q)
	if err != nil {
		badRequest(w, err)
		return
	}
	picked := field.Sample(x, y, width, height)
	writeJSON(w, http.StatusOK, format.NewRecord("", convert.To(picked, mode)))
}

func (a *App) fieldHandler(f field.Format) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		width, height, err := a.size(r.URL.Query())
		if err != nil {
			badRequest(w, err)
			return
		}
		img, err := field.Render(r.Context(), width, height, a.field.Workers)
		if err != nil {
			badRequest(w, err)
			return
		}
		writeImage(w, img, f)
	}
}

func (a *App) sliderHandler(f field.Format) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		c, err := a.parser.Parse(q.Get("color"))
		if err != nil {
			badRequest(w, err)
			return
		}
		mode, err := color.ParseMode(q.Get("mode"))
		if err != nil {
			badRequest(w, err)
			return
		}
		width, err := intParam(q, "width", a.field.Width)
		if err != nil {
			badRequest(w, err)
			return
		}
		height, err := intParam(q, "height", 16)
		if err != nil {
			badRequest(w, err)
			return
		}
		if err := checkSize(width, height); err != nil {
			badRequest(w, err)
			return
		}
		img, err := field.Slider(c, mode, q.Get("channel"), width, height)
		if err != nil {
			badRequest(w, err)
			return
		}
		writeImage(w, img, f)
	}
}

// size reads width and height, falling back to the configured field size.
func (a *App) size(q url.Values) (width, height int, err error) {
	if width, err = intParam(q, "width", a.field.Width); err != nil {
		return 0, 0, err
	}
	if height, err = intParam(q, "height", a.field.Height); err != nil {
		return 0, 0, err
	}
	return width, height, checkSize(width, height)
}

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 || width > maxSide || height > maxSide {
		return fmt.Errorf("size %dx%d must be within 1..%d on each side", width, height, maxSide)
	}
	return nil
}

func intParam(q url.Values, name string, fallback int) (int, error) {
	s := q.Get(name)
	if s == "" {
		if fallback < 0 {
			return 0, fmt.Errorf("missing %s parameter", name)
		}
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return n, nil
}

// writeImage encodes into a buffer first so encoder failures still produce a 500.
func writeImage(w http.ResponseWriter, img image.Image, f field.Format) {
	var buf bytes.Buffer
	if err := field.Encode(&buf, img, f); err != nil {
		log.Errorf("encoding %s: %s", f, err)
		http.Error(w, "image encoding failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", f.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = buf.WriteTo(w)
}
