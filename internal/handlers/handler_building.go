package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// buildingHandler handles building requests.
type buildingHandler struct {
	buildingService    portssvc.BuildingSvcFacade
	unitService        portssvc.UnitSvcFacade
	transactionService portssvc.TransactionSvcFacade
}

func newBuildingHandler(services *portssvc.ServiceContainer) *buildingHandler {
	return &buildingHandler{
		buildingService:    services.Building,
		unitService:        services.Unit,
		transactionService: services.Transaction,
	}
}

// registerBuildingRoutes registers building routes, including the units and
// transactions nested under a building.
func registerBuildingRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newBuildingHandler(services)

	buildings := rg.Group("/buildings")
	{
		buildings.POST("", h.createBuilding)
		buildings.GET("", h.listBuildings)
		buildings.GET("/:building_id", h.getBuilding)
		buildings.PUT("/:building_id", h.updateBuilding)
		buildings.DELETE("/:building_id", h.deleteBuilding)
		buildings.GET("/:building_id/overview", h.getBuildingOverview)
		buildings.GET("/:building_id/units", h.listBuildingUnits)
		buildings.GET("/:building_id/transactions", h.listBuildingTransactions)
	}
}

// createBuilding godoc
// @Summary Create a building
// @Tags buildings
// @Accept json
// @Produce json
// @Param body body dto.CreateBuildingRequest true "Building details"
// @Success 201 {object} dto.BuildingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /buildings [post]
func (h *buildingHandler) createBuilding(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateBuildingRequest
	if !bindJSON(c, &req) {
		return
	}
	building, err := h.buildingService.CreateBuilding(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to create building")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBuildingResponse(building))
}

// listBuildings godoc
// @Summary List buildings
// @Tags buildings
// @Produce json
// @Success 200 {array} dto.BuildingResponse
// @Security BearerAuth
// @Router /buildings [get]
func (h *buildingHandler) listBuildings(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	buildings, err := h.buildingService.ListBuildings(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list buildings")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBuildingResponse(buildings))
}

// getBuilding godoc
// @Summary Get a building
// @Tags buildings
// @Produce json
// @Param building_id path string true "Building ID"
// @Success 200 {object} dto.BuildingResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /buildings/{building_id} [get]
func (h *buildingHandler) getBuilding(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	building, err := h.buildingService.GetBuilding(c.Request.Context(), userID, c.Param("building_id"))
	if err != nil {
		respondError(c, err, "Failed to get building")
		return
	}
	c.JSON(http.StatusOK, dto.ToBuildingResponse(building))
}

// updateBuilding godoc
// @Summary Update a building
// @Description Only the fields present in the body are changed.
// @Tags buildings
// @Accept json
// @Produce json
// @Param building_id path string true "Building ID"
// @Param body body dto.UpdateBuildingRequest true "Fields to change"
// @Success 200 {object} dto.BuildingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /buildings/{building_id} [put]
func (h *buildingHandler) updateBuilding(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.UpdateBuildingRequest
	if !bindJSON(c, &req) {
		return
	}
	building, err := h.buildingService.UpdateBuilding(c.Request.Context(), userID, c.Param("building_id"), req)
	if err != nil {
		respondError(c, err, "Failed to update building")
		return
	}
	c.JSON(http.StatusOK, dto.ToBuildingResponse(building))
}

// deleteBuilding godoc
// @Summary Delete a building
// @Description Fails with 409 while the building still has units.
// @Tags buildings
// @Param building_id path string true "Building ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /buildings/{building_id} [delete]
func (h *buildingHandler) deleteBuilding(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.buildingService.DeleteBuilding(c.Request.Context(), userID, c.Param("building_id")); err != nil {
		respondError(c, err, "Failed to delete building")
		return
	}
	c.Status(http.StatusNoContent)
}

// getBuildingOverview godoc
// @Summary Building overview
// @Description Unit occupancy, active leases and the rent they bring in this month.
// @Tags buildings
// @Produce json
// @Param building_id path string true "Building ID"
// @Success 200 {object} dto.BuildingOverviewResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /buildings/{building_id}/overview [get]
func (h *buildingHandler) getBuildingOverview(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	overview, err := h.buildingService.GetBuildingOverview(c.Request.Context(), userID, c.Param("building_id"))
	if err != nil {
		respondError(c, err, "Failed to get building overview")
		return
	}
	c.JSON(http.StatusOK, dto.ToBuildingOverviewResponse(overview))
}

// listBuildingUnits godoc
// @Summary List the units of a building
// @Tags buildings
// @Produce json
// @Param building_id path string true "Building ID"
// @Success 200 {array} dto.UnitResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /buildings/{building_id}/units [get]
func (h *buildingHandler) listBuildingUnits(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	units, err := h.unitService.ListUnits(c.Request.Context(), userID, c.Param("building_id"))
	if err != nil {
		respondError(c, err, "Failed to list units")
		return
	}
	c.JSON(http.StatusOK, dto.ToListUnitResponse(units))
}

// listBuildingTransactions godoc
// @Summary List the transactions of a building
// @Tags buildings
// @Produce json
// @Param building_id path string true "Building ID"
// @Param category query string false "REVENUE or EXPENSE"
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /buildings/{building_id}/transactions [get]
func (h *buildingHandler) listBuildingTransactions(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var params dto.ListTransactionsParams
	if !bindQuery(c, &params) {
		return
	}
	params.BuildingID = c.Param("building_id")
	txns, nextToken, err := h.transactionService.ListTransactions(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns, nextToken))
}
