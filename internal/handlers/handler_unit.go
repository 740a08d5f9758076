package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type unitHandler struct {
	unitService portssvc.UnitSvcFacade
}

func registerUnitRoutes(rg *gin.RouterGroup, unitService portssvc.UnitSvcFacade) {
	h := &unitHandler{unitService: unitService}

	units := rg.Group("/units")
	{
		units.POST("", h.createUnit)
		units.GET("", h.listUnits)
		units.GET("/:unit_id", h.getUnit)
		units.PUT("/:unit_id", h.updateUnit)
		units.DELETE("/:unit_id", h.deleteUnit)
	}
}

// createUnit godoc
// @Summary Create a unit
// @Tags units
// @Accept json
// @Produce json
// @Param body body dto.CreateUnitRequest true "Unit details"
// @Success 201 {object} dto.UnitResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Building not found"
// @Security BearerAuth
// @Router /units [post]
func (h *unitHandler) createUnit(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateUnitRequest
	if !bindJSON(c, &req) {
		return
	}
	unit, err := h.unitService.CreateUnit(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to create unit")
		return
	}
	c.JSON(http.StatusCreated, dto.ToUnitResponse(unit))
}

// listUnits godoc
// @Summary List units
// @Tags units
// @Produce json
// @Param buildingId query string false "Restrict to one building"
// @Success 200 {array} dto.UnitResponse
// @Security BearerAuth
// @Router /units [get]
func (h *unitHandler) listUnits(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var params dto.ListUnitsParams
	if !bindQuery(c, &params) {
		return
	}
	units, err := h.unitService.ListUnits(c.Request.Context(), userID, params.BuildingID)
	if err != nil {
		respondError(c, err, "Failed to list units")
		return
	}
	c.JSON(http.StatusOK, dto.ToListUnitResponse(units))
}

// getUnit godoc
// @Summary Get a unit
// @Tags units
// @Produce json
// @Param unit_id path string true "Unit ID"
// @Success 200 {object} dto.UnitResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /units/{unit_id} [get]
func (h *unitHandler) getUnit(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	unit, err := h.unitService.GetUnit(c.Request.Context(), userID, c.Param("unit_id"))
	if err != nil {
		respondError(c, err, "Failed to get unit")
		return
	}
	c.JSON(http.StatusOK, dto.ToUnitResponse(unit))
}

// updateUnit godoc
// @Summary Update a unit
// @Tags units
// @Accept json
// @Produce json
// @Param unit_id path string true "Unit ID"
// @Param body body dto.UpdateUnitRequest true "Fields to change"
// @Success 200 {object} dto.UnitResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /units/{unit_id} [put]
func (h *unitHandler) updateUnit(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.UpdateUnitRequest
	if !bindJSON(c, &req) {
		return
	}
	unit, err := h.unitService.UpdateUnit(c.Request.Context(), userID, c.Param("unit_id"), req)
	if err != nil {
		respondError(c, err, "Failed to update unit")
		return
	}
	c.JSON(http.StatusOK, dto.ToUnitResponse(unit))
}

// deleteUnit godoc
// @Summary Delete a unit
// @Description Fails with 409 while tenants are assigned to the unit.
// @Tags units
// @Param unit_id path string true "Unit ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /units/{unit_id} [delete]
func (h *unitHandler) deleteUnit(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.unitService.DeleteUnit(c.Request.Context(), userID, c.Param("unit_id")); err != nil {
		respondError(c, err, "Failed to delete unit")
		return
	}
	c.Status(http.StatusNoContent)
}
