// Package web serves the converter, the picker field and slider strips over HTTP.
package web

import (
	_ "embed"
	"html/template"
	"net/http"

	"github.com/jsvensson/colorweave/internal/color"
	"github.com/jsvensson/colorweave/internal/config"
	"github.com/jsvensson/colorweave/internal/field"
	"github.com/jsvensson/colorweave/internal/notation"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("colorweave.web")

var (
	//go:embed templates/index.html
	indexHTML string
	indexTmpl = template.Must(template.New("index").Parse(indexHTML))
)

// maxSide caps rendered image dimensions.
const maxSide = 4096

// App holds what the handlers need from the configuration.
type App struct {
	parser *notation.Parser
	mode   color.Mode
	field  config.Field
}

// New creates an App from cfg.
func New(cfg *config.Config) *App {
	return &App{
		parser: cfg.Parser(),
		mode:   cfg.Mode,
		field:  cfg.Field,
	}
}

// Register attaches every route to mux.
func (a *App) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", a.indexHandler)
	mux.HandleFunc("GET /api/convert", a.convertHandler)
	mux.HandleFunc("GET /api/pick", a.pickHandler)
	for _, ext := range []string{"png", "bmp", "tif", "tiff"} {
		f, _ := field.ParseFormat(ext)
		mux.HandleFunc("GET /field."+ext, a.fieldHandler(f))
		mux.HandleFunc("GET /slider."+ext, a.sliderHandler(f))
	}
}

// Handler returns a mux with every route registered.
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()
	a.Register(mux)
	return mux
}

type indexData struct {
	Width, Height int
	Mode          color.Mode
	Modes         []color.Mode
}

func (a *App) indexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Referrer-Policy", "no-referrer")
	w.Header().Set("X-Frame-Options", "DENY")
	data := indexData{
		Width:  a.field.Width,
		Height: a.field.Height,
		Mode:   a.mode,
		Modes:  color.Modes,
	}
	if err := indexTmpl.Execute(w, data); err != nil {
		http.Error(w, "template rendering failed", http.StatusInternalServerError)
	}
}
