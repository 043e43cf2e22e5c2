package easyrepo

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/raywall/fast-items-service/dyndb"
)

type HookType int

const (
	BeforeCreate HookType = iota
)

// DefaultListLimit is used by List when the caller does not provide a limit
const DefaultListLimit int32 = 100

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidLimit = errors.New("limit must be greater than zero")
)

// EasyService centralizes business logic and data validation
// It encapsulates the repository and validates every item that enters or
// leaves the store
type EasyService[T any] struct {
	valid    *validator.Validate
	validate ValidateFunc[T]
	repo     *EasyRepository[T]
	hooks    *Hooks[T]
}

// Hooks stores the transformations registered for execution before creates
type Hooks[T any] struct {
	BeforeCreate []BeforeSaveHook[T]
}

// BeforeSaveHook allows you to create custom transformation functions
// which are applied after validation and before the item is persisted
type BeforeSaveHook[T any] func(ctx context.Context, item *T) error

// ValidateFunc replaces the default struct-tag validation
type ValidateFunc[T any] func(ctx context.Context, item *T) error

// Option configures an EasyService
type Option[T any] func(*EasyService[T])

// WithValidation replaces the default validator with a schema-specific one
func WithValidation[T any](fn ValidateFunc[T]) Option[T] {
	return func(s *EasyService[T]) {
		s.validate = fn
	}
}

// WithProjection restricts the attributes read by List
func WithProjection[T any](fields ...string) Option[T] {
	return func(s *EasyService[T]) {
		s.repo.Projection = fields
	}
}

// NewService creates a new EasyService over store with a default validator
func NewService[T any](store dyndb.Store[T], opts ...Option[T]) *EasyService[T] {
	s := &EasyService[T]{
		valid: newValidator(),
		repo:  NewRepository(store),
		hooks: &Hooks[T]{
			BeforeCreate: make([]BeforeSaveHook[T], 0),
		},
	}
	s.validate = s.structValidation
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

func (s *EasyService[T]) structValidation(ctx context.Context, item *T) error {
	return s.valid.StructCtx(ctx, item)
}

// RegisterHook allows the injection of custom logic before the item is saved
func (s *EasyService[T]) RegisterHook(hookType HookType, fn BeforeSaveHook[T]) {
	switch hookType {
	case BeforeCreate:
		s.hooks.BeforeCreate = append(s.hooks.BeforeCreate, fn)
	default:
		return
	}
}

// RegisterValidation allows adding custom validation rules to the default validator
func (s *EasyService[T]) RegisterValidation(name string, fn validator.Func) error {
	return s.valid.RegisterValidation(name, fn)
}

// Create validates the item, runs the BeforeCreate hooks and persists it.
// Validation always runs before any store call, so invalid input never
// produces a partial write.
func (s *EasyService[T]) Create(ctx context.Context, item *T) error {
	if item == nil {
		return ErrInvalidInput
	}
	if err := s.validate(ctx, item); err != nil {
		return err
	}
	for _, hook := range s.hooks.BeforeCreate {
		if err := hook(ctx, item); err != nil {
			return err
		}
	}
	return s.repo.create(ctx, item)
}

// Get retrieves an item by its hash key and reshapes it through the schema.
// Returns dyndb.ErrNotFound when the item does not exist
func (s *EasyService[T]) Get(ctx context.Context, pk any) (*T, error) {
	if pk == nil {
		return nil, ErrInvalidInput
	}
	item, err := s.repo.get(ctx, pk)
	if err != nil {
		return nil, err
	}
	if err := s.reshape(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// List returns up to limit items (single Scan page, no ordering)
func (s *EasyService[T]) List(ctx context.Context, limit int32) ([]T, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	items, err := s.repo.list(ctx, limit)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if err := s.reshape(ctx, &items[i]); err != nil {
			return nil, err
		}
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// reshape validates a record read from the store. A stored record that
// breaks the schema is a server-side fault, reported as *dyndb.StoreError.
func (s *EasyService[T]) reshape(ctx context.Context, item *T) error {
	if err := s.validate(ctx, item); err != nil {
		return &dyndb.StoreError{Op: "reshape", Err: err}
	}
	return nil
}
