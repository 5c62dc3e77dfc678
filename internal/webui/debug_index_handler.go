package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"wayfare.openjourney.org/internal/utils"
)

//go:embed debug_index.html
var templateFS embed.FS

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html")
	tmpl, err := template.ParseFS(templateFS, "debug_index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type providerInfo struct {
	Name string
	Mode string
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := utils.ExtractIDFromParams(r, "dataType")

	var data interface{}
	var title string

	switch dataType {
	case "gazetteer":
		data = webUI.Gazetteer
		title = "Gazetteer - Entries"
	case "providers":
		var infos []providerInfo
		if webUI.Providers != nil {
			for _, p := range webUI.Providers.Providers() {
				infos = append(infos, providerInfo{Name: p.Name(), Mode: string(p.Mode())})
			}
		}
		data = infos
		title = "Providers - Registered"
	case "config":
		data = webUI.Config
		title = "Application - Config"
	case "stops", "routes", "services", "trips":
		if webUI.GtfsManager == nil {
			data = map[string]string{"error": "no GTFS feed is loaded"}
			title = "GTFS Static"
			break
		}
		staticData := webUI.GtfsManager.GetStaticData()
		switch dataType {
		case "stops":
			data = staticData.Stops
			title = "GTFS Static - Stops"
		case "routes":
			data = staticData.Routes
			title = "GTFS Static - Routes"
		case "services":
			data = staticData.Services
			title = "GTFS Static - Services"
		case "trips":
			data = staticData.Trips
			title = "GTFS Static - Trips"
		}
	default:
		data = map[string]string{
			"error": "Please use one of the following: gazetteer, providers, config, stops, routes, services, trips.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
