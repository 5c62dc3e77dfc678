package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"wayfare.openjourney.org/internal/app"
)

// WebUI serves the HTML debug pages.
type WebUI struct {
	*app.Application
}

func NewWebUI(app *app.Application) *WebUI {
	return &WebUI{Application: app}
}

// SetRoutes mounts the debug pages on the mux under /debug/.
func (webUI *WebUI) SetRoutes(mux *http.ServeMux) {
	router := httprouter.New()
	router.HandlerFunc("GET", "/debug/:dataType", webUI.debugIndexHandler)
	mux.Handle("GET /debug/", router)
}
