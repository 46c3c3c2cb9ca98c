package queries

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/menu"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetMenuQueryIsNotConstructed = errors.New(
		"GetMenuQuery must be created via NewGetMenuQuery constructor",
	)
	ErrMenuIsNotLoaded = errors.New("menu catalog is not loaded")
)

// GetMenuQuery returns the whole catalog. It has no parameters.
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// GetMenuQueryHandler serves the catalog loaded at startup.
type GetMenuQueryHandler struct {
	catalog *menu.Catalog
}

func NewGetMenuQueryHandler(catalog *menu.Catalog) GetMenuQueryHandler {
	return GetMenuQueryHandler{catalog: catalog}
}

// Handle returns a copy; callers may modify it freely.
func (h GetMenuQueryHandler) Handle(_ context.Context, query GetMenuQuery) (*menu.Catalog, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if h.catalog == nil {
		return nil, ErrMenuIsNotLoaded
	}

	return h.catalog.Clone(), nil
}
