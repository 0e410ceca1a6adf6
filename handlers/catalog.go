package handlers

import (
	"errors"
	"net/http"

	"elysium/models"
	"elysium/store"
	"elysium/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the service catalog and its admin mutations.
type CatalogHandler struct {
	Catalog store.CatalogStore
}

func NewCatalogHandler(catalog store.CatalogStore) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog}
}

// ListServices returns the current catalog snapshot.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.List())
}

// AddService appends a new offering (admin).
func (h *CatalogHandler) AddService(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if err := h.Catalog.Add(svc); err != nil {
		if errors.Is(err, store.ErrDuplicateID) {
			utils.JSONError(c, http.StatusConflict, "Service id already exists", svc.ID)
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "Failed to add service", err.Error())
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateService replaces an existing offering (admin).
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	svc.ID = c.Param("id")
	if err := h.Catalog.Update(svc); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Service not found", svc.ID)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// RemoveService drops an offering from the catalog (admin).
func (h *CatalogHandler) RemoveService(c *gin.Context) {
	id := c.Param("id")
	if err := h.Catalog.Remove(id); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Service not found", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": id})
}
