package route

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Template возвращает шаблон mux-маршрута ("/orders/get-order-by-id/{orderId}"),
// а если маршрут не найден, то путь запроса.
func Template(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return r.URL.Path
	}
	template, err := route.GetPathTemplate()
	if err != nil {
		return r.URL.Path
	}
	return template
}
