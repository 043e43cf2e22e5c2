package transport

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/raywall/fast-items-service/pkg/handler"
)

// NewRouter registra as rotas de item e de health.
// /items e /items/ são equivalentes.
func NewRouter(h *handler.ItemsHandler) *mux.Router {
	r := mux.NewRouter()

	for _, path := range []string{"/items/", "/items"} {
		r.HandleFunc(path, h.Create).Methods(http.MethodPost)
		r.HandleFunc(path, h.List).Methods(http.MethodGet)
	}
	r.HandleFunc("/items/{"+handler.PathItemID+"}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/health", health).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handler.WriteDetail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handler.WriteDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	return r
}

// NewHandler devolve o router envolvido pelo middleware de observabilidade.
// É o mesmo http.Handler servido pelo servidor HTTP e pelo adaptador Lambda.
func NewHandler(h *handler.ItemsHandler) http.Handler {
	return ObservabilityMiddleware(NewRouter(h))
}

func health(w http.ResponseWriter, _ *http.Request) {
	handler.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
