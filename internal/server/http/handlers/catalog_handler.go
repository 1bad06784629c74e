package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/suitopia/internal/domain/errors"
)

// QueryFilter narrows a catalog listing by a query parameter.
type QueryFilter[T any] struct {
	Param string
	Match func(item *T, value string) bool
}

// CatalogHandler serves CRUD endpoints for one catalog collection.
type CatalogHandler[T any] struct {
	catalog CatalogFacade[T]
	filters []QueryFilter[T]
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler[T any](catalog CatalogFacade[T], filters ...QueryFilter[T]) *CatalogHandler[T] {
	return &CatalogHandler[T]{catalog: catalog, filters: filters}
}

// List returns the collection. ?name= looks up a single record by exact
// name; other registered filters are combined.
func (h *CatalogHandler[T]) List(c *gin.Context) {
	ctx := c.Request.Context()

	if name, ok := c.GetQuery("name"); ok {
		item, err := h.catalog.FindByName(ctx, name)
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusOK, []T{})
		case err != nil:
			respondError(c, err)
		default:
			c.JSON(http.StatusOK, []T{*item})
		}
		return
	}

	var checks []func(*T) bool
	for _, f := range h.filters {
		if value, ok := c.GetQuery(f.Param); ok {
			match := f.Match
			checks = append(checks, func(item *T) bool { return match(item, value) })
		}
	}

	var (
		items []T
		err   error
	)
	if len(checks) == 0 {
		items, err = h.catalog.List(ctx)
	} else {
		items, err = h.catalog.Filter(ctx, func(item *T) bool {
			for _, check := range checks {
				if !check(item) {
					return false
				}
			}
			return true
		})
	}
	if err != nil {
		respondError(c, err)
		return
	}
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, items)
}

// Get returns one record.
func (h *CatalogHandler[T]) Get(c *gin.Context) {
	item, err := h.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create stores a new record and replies 201.
func (h *CatalogHandler[T]) Create(c *gin.Context) {
	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		badRequest(c, err)
		return
	}
	created, err := h.catalog.Create(c.Request.Context(), item)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update replaces a record.
func (h *CatalogHandler[T]) Update(c *gin.Context) {
	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		badRequest(c, err)
		return
	}
	updated, err := h.catalog.Update(c.Request.Context(), c.Param("id"), item)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes a record and replies 204.
func (h *CatalogHandler[T]) Delete(c *gin.Context) {
	if err := h.catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Register mounts the handler's routes on group; writes go through guard.
func (h *CatalogHandler[T]) Register(group *gin.RouterGroup, guard gin.HandlerFunc) {
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.POST("", guard, h.Create)
	group.PUT("/:id", guard, h.Update)
	group.DELETE("/:id", guard, h.Delete)
}
