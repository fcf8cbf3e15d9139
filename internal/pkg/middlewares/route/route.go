package route

import (
	"net/http"

	"github.com/gorilla/mux"
)

const unmatched = "unmatched"

// Template возвращает шаблон роута mux (/driver/{name}), чтобы метки метрик не зависели от параметров пути.
func Template(r *http.Request) string {
	current := mux.CurrentRoute(r)
	if current == nil {
		return unmatched
	}
	template, err := current.GetPathTemplate()
	if err != nil {
		return unmatched
	}
	return template
}
