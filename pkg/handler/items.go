package handler

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/raywall/fast-items-service/easyrepo"
	"github.com/raywall/fast-items-service/pkg/metrics"
	"github.com/raywall/fast-items-service/pkg/models"
)

// PathItemID é o nome da variável de rota com o id do item.
const PathItemID = "item_id"

// ItemsHandler expõe as operações de item sobre HTTP.
type ItemsHandler struct {
	service  *ItemsService
	recorder *metrics.Recorder
}

// NewItemsHandler cria o handler. recorder pode ser nil.
func NewItemsHandler(service *ItemsService, recorder *metrics.Recorder) *ItemsHandler {
	return &ItemsHandler{service: service, recorder: recorder}
}

// Create trata POST /items/.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	item, err := models.DecodeItem(r.Body)
	if err == nil {
		err = h.service.Create(r.Context(), &item)
	}
	if err != nil {
		h.recorder.Observe("create", writeError(w, r, "failed to save item", err), start)
		return
	}

	log.Ctx(r.Context()).Info().Str("item_id", item.ID).Msg("item criado")
	WriteJSON(w, http.StatusOK, item)
	h.recorder.Observe("create", metrics.OutcomeSuccess, start)
}

// Get trata GET /items/{item_id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := mux.Vars(r)[PathItemID]

	item, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.recorder.Observe("get", writeError(w, r, "failed to read item", err), start)
		return
	}

	WriteJSON(w, http.StatusOK, item)
	h.recorder.Observe("get", metrics.OutcomeSuccess, start)
}

// List trata GET /items/?limit=N.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err == nil {
		var items []models.Item
		items, err = h.service.List(r.Context(), limit)
		if err == nil {
			WriteJSON(w, http.StatusOK, items)
			h.recorder.Observe("list", metrics.OutcomeSuccess, start)
			return
		}
	}
	h.recorder.Observe("list", writeError(w, r, "failed to list items", err), start)
}

// parseLimit interpreta o parâmetro limit. Ausente vale DefaultListLimit;
// valores acima do teto de int32 são truncados.
func parseLimit(raw string) (int32, error) {
	if raw == "" {
		return easyrepo.DefaultListLimit, nil
	}
	loc := []string{"query", "limit"}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, models.NewValidationError(loc, "value is not a valid integer", "type_error.integer")
	}
	if n < 1 {
		return 0, models.NewValidationError(loc, "ensure this value is greater than or equal to 1", "value_error.number.not_ge")
	}
	if n > math.MaxInt32 {
		n = math.MaxInt32
	}
	return int32(n), nil
}
