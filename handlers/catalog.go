package handlers

import (
	"errors"
	"net/http"

	"quickscan/services/catalog"
	"quickscan/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler exposes the browsable service and lab catalog.
type CatalogHandler struct {
	Svc    catalog.CatalogService
	Logger *zap.Logger
}

func NewCatalogHandler(svc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Logger: logger}
}

// ListServices handles GET /api/services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.Svc.ListServices(c.Query("category"))
	if err != nil {
		h.Logger.Error("failed to list services", zap.Error(err))
		utils.JSONFailure(c, http.StatusInternalServerError, "Failed to fetch services", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": services, "count": len(services)})
}

// GetService handles GET /api/services/:slug.
func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.Svc.GetServiceBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Service not found"})
			return
		}
		h.Logger.Error("failed to fetch service", zap.Error(err))
		utils.JSONFailure(c, http.StatusInternalServerError, "Failed to fetch service", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": svc})
}

// ListLabs handles GET /api/labs.
func (h *CatalogHandler) ListLabs(c *gin.Context) {
	labs, err := h.Svc.ListLabs(c.Query("city"))
	if err != nil {
		h.Logger.Error("failed to list labs", zap.Error(err))
		utils.JSONFailure(c, http.StatusInternalServerError, "Failed to fetch labs", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": labs, "count": len(labs)})
}

// GetLab handles GET /api/labs/:id.
func (h *CatalogHandler) GetLab(c *gin.Context) {
	lab, err := h.Svc.GetLabByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Lab not found"})
			return
		}
		h.Logger.Error("failed to fetch lab", zap.Error(err))
		utils.JSONFailure(c, http.StatusInternalServerError, "Failed to fetch lab", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": lab})
}
