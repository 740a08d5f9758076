package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type tenantHandler struct {
	tenantService portssvc.TenantSvcFacade
}

func registerTenantRoutes(rg *gin.RouterGroup, tenantService portssvc.TenantSvcFacade) {
	h := &tenantHandler{tenantService: tenantService}

	tenants := rg.Group("/tenants")
	{
		tenants.POST("", h.createTenant)
		tenants.GET("", h.listTenants)
		tenants.GET("/:tenant_id", h.getTenant)
		tenants.PUT("/:tenant_id", h.updateTenant)
		tenants.DELETE("/:tenant_id", h.deleteTenant)
		tenants.PUT("/:tenant_id/unit", h.assignUnit)
	}
}

// createTenant godoc
// @Summary Create a tenant
// @Tags tenants
// @Accept json
// @Produce json
// @Param body body dto.CreateTenantRequest true "Tenant details"
// @Success 201 {object} dto.TenantResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tenants [post]
func (h *tenantHandler) createTenant(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateTenantRequest
	if !bindJSON(c, &req) {
		return
	}
	tenant, err := h.tenantService.CreateTenant(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to create tenant")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTenantResponse(tenant))
}

// listTenants godoc
// @Summary List tenants
// @Tags tenants
// @Produce json
// @Param unitId query string false "Restrict to one unit"
// @Success 200 {array} dto.TenantResponse
// @Security BearerAuth
// @Router /tenants [get]
func (h *tenantHandler) listTenants(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var params dto.ListTenantsParams
	if !bindQuery(c, &params) {
		return
	}
	tenants, err := h.tenantService.ListTenants(c.Request.Context(), userID, params.UnitID)
	if err != nil {
		respondError(c, err, "Failed to list tenants")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTenantResponse(tenants))
}

// getTenant godoc
// @Summary Get a tenant
// @Tags tenants
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {object} dto.TenantResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id} [get]
func (h *tenantHandler) getTenant(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	tenant, err := h.tenantService.GetTenant(c.Request.Context(), userID, c.Param("tenant_id"))
	if err != nil {
		respondError(c, err, "Failed to get tenant")
		return
	}
	c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
}

// updateTenant godoc
// @Summary Update a tenant
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param body body dto.UpdateTenantRequest true "Fields to change"
// @Success 200 {object} dto.TenantResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id} [put]
func (h *tenantHandler) updateTenant(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.UpdateTenantRequest
	if !bindJSON(c, &req) {
		return
	}
	tenant, err := h.tenantService.UpdateTenant(c.Request.Context(), userID, c.Param("tenant_id"), req)
	if err != nil {
		respondError(c, err, "Failed to update tenant")
		return
	}
	c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
}

// deleteTenant godoc
// @Summary Delete a tenant
// @Tags tenants
// @Param tenant_id path string true "Tenant ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id} [delete]
func (h *tenantHandler) deleteTenant(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.tenantService.DeleteTenant(c.Request.Context(), userID, c.Param("tenant_id")); err != nil {
		respondError(c, err, "Failed to delete tenant")
		return
	}
	c.Status(http.StatusNoContent)
}

// assignUnit godoc
// @Summary Move a tenant to a unit
// @Description A null unitID unassigns the tenant.
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param body body dto.AssignUnitRequest true "Target unit"
// @Success 200 {object} dto.TenantResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/unit [put]
func (h *tenantHandler) assignUnit(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.AssignUnitRequest
	if !bindJSON(c, &req) {
		return
	}
	tenant, err := h.tenantService.AssignUnit(c.Request.Context(), userID, c.Param("tenant_id"), req.UnitID)
	if err != nil {
		respondError(c, err, "Failed to assign unit")
		return
	}
	c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
}
