package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractIDFromParams reads a named httprouter path parameter, stripping a
// ".json" suffix so routes like /debug/stops.json resolve to "stops".
func ExtractIDFromParams(r *http.Request, paramName string) string {
	params := httprouter.ParamsFromContext(r.Context())
	rawID := params.ByName(paramName)
	id, _, _ := strings.Cut(rawID, ".json")
	return id
}
