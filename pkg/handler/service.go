package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/raywall/fast-items-service/dyndb"
	"github.com/raywall/fast-items-service/easyrepo"
	"github.com/raywall/fast-items-service/pkg/models"
)

// ItemsService é o serviço genérico especializado para Item.
type ItemsService = easyrepo.EasyService[models.Item]

// ServiceOption customiza as fontes de id e relógio usadas na criação.
type ServiceOption func(*identity)

type identity struct {
	now   func() time.Time
	newID func() string
}

// WithClock substitui time.Now (testes).
func WithClock(now func() time.Time) ServiceOption {
	return func(i *identity) { i.now = now }
}

// WithIDGenerator substitui uuid.NewString (testes).
func WithIDGenerator(newID func() string) ServiceOption {
	return func(i *identity) { i.newID = newID }
}

// NewItemsService monta o serviço de itens sobre o store: validação pelo
// schema do Item, projeção dos atributos persistidos no Scan e geração de
// id/timestamp antes de gravar.
func NewItemsService(store dyndb.Store[models.Item], opts ...ServiceOption) *ItemsService {
	id := &identity{now: time.Now, newID: uuid.NewString}
	for _, opt := range opts {
		opt(id)
	}

	svc := easyrepo.NewService(store,
		easyrepo.WithValidation[models.Item](models.Validate),
		easyrepo.WithProjection[models.Item](models.Fields...),
	)
	svc.RegisterHook(easyrepo.BeforeCreate, func(_ context.Context, item *models.Item) error {
		models.AssignIdentity(item, id.now, id.newID)
		return nil
	})
	return svc
}
