package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/raywall/fast-items-service/dyndb"
	"github.com/raywall/fast-items-service/pkg/metrics"
	"github.com/raywall/fast-items-service/pkg/models"
)

// MsgItemNotFound é o detalhe devolvido no 404 de item.
const MsgItemNotFound = "Item not found"

// detailResponse é o envelope de erro: detail é uma string ou a lista de FieldError.
type detailResponse struct {
	Detail interface{} `json:"detail"`
}

// WriteJSON serializa body com o status informado.
func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("falha ao serializar resposta")
	}
}

// WriteDetail responde {"detail": detail}.
func WriteDetail(w http.ResponseWriter, status int, detail interface{}) {
	WriteJSON(w, status, detailResponse{Detail: detail})
}

// writeError traduz o erro da operação em resposta HTTP e devolve o outcome
// para as métricas. StoreError é testado antes de ValidationError porque um
// registro inválido lido do store chega como StoreError envolvendo a validação.
func writeError(w http.ResponseWriter, r *http.Request, failMsg string, err error) metrics.Outcome {
	var storeErr *dyndb.StoreError
	var validationErr *models.ValidationError

	switch {
	case errors.As(err, &storeErr):
		log.Ctx(r.Context()).Error().Err(err).Str("op", storeErr.Op).Msg(failMsg)
		WriteDetail(w, http.StatusInternalServerError, failMsg+": "+err.Error())
		return metrics.OutcomeError

	case errors.As(err, &validationErr):
		log.Ctx(r.Context()).Debug().Err(err).Msg("entrada inválida")
		WriteDetail(w, http.StatusUnprocessableEntity, validationErr.Fields)
		return metrics.OutcomeInvalid

	case errors.Is(err, dyndb.ErrNotFound):
		WriteDetail(w, http.StatusNotFound, MsgItemNotFound)
		return metrics.OutcomeNotFound

	default:
		log.Ctx(r.Context()).Error().Err(err).Msg(failMsg)
		WriteDetail(w, http.StatusInternalServerError, failMsg+": "+err.Error())
		return metrics.OutcomeError
	}
}
