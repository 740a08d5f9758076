package handlers

import (
	"net/http"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// companyHandler handles company administration requests.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

func newCompanyHandler(cs portssvc.CompanySvcFacade) *companyHandler {
	return &companyHandler{companyService: cs}
}

// registerCompanyRoutes registers the caller's company routes.
func registerCompanyRoutes(rg *gin.RouterGroup, companyService portssvc.CompanySvcFacade) {
	h := newCompanyHandler(companyService)

	company := rg.Group("/company")
	{
		company.GET("", h.getCompany)
		company.GET("/users", h.listUsers)
		company.PUT("/users/:user_id/role", h.updateUserRole)
		company.GET("/access-requests", h.listAccessRequests)
		company.POST("/access-requests/:request_id/approve", h.approveAccessRequest)
		company.POST("/access-requests/:request_id/reject", h.rejectAccessRequest)
		company.POST("/access-code", h.regenerateAccessCode)
	}
}

// getCompany godoc
// @Summary Get the caller's company
// @Description The access code is only included for admins.
// @Tags company
// @Produce json
// @Success 200 {object} dto.CompanyResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /company [get]
func (h *companyHandler) getCompany(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	company, err := h.companyService.GetCompany(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to get company")
		return
	}
	// Only admins see the access code.
	_, adminErr := h.companyService.AuthorizeUserAction(c.Request.Context(), userID, domain.RoleAdmin)
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company, adminErr == nil))
}

// listUsers godoc
// @Summary List company users
// @Tags company
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Security BearerAuth
// @Router /company/users [get]
func (h *companyHandler) listUsers(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	users, err := h.companyService.ListCompanyUsers(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, dto.ToListUserResponse(users))
}

// updateUserRole godoc
// @Summary Change a user's role
// @Tags company
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param body body dto.UpdateUserRoleRequest true "New role"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /company/users/{user_id}/role [put]
func (h *companyHandler) updateUserRole(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.UpdateUserRoleRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.companyService.UpdateUserRole(c.Request.Context(), userID, c.Param("user_id"), req.Role)
	if err != nil {
		respondError(c, err, "Failed to update user role")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// listAccessRequests godoc
// @Summary List access requests
// @Tags company
// @Produce json
// @Param status query string false "PENDING, APPROVED or REJECTED"
// @Success 200 {array} dto.AccessRequestResponse
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Security BearerAuth
// @Router /company/access-requests [get]
func (h *companyHandler) listAccessRequests(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var params dto.ListAccessRequestsParams
	if !bindQuery(c, &params) {
		return
	}
	var status *domain.AccessRequestStatus
	if params.Status != "" {
		s := domain.AccessRequestStatus(params.Status)
		status = &s
	}
	requests, err := h.companyService.ListAccessRequests(c.Request.Context(), userID, status)
	if err != nil {
		respondError(c, err, "Failed to list access requests")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccessRequestResponse(requests))
}

// approveAccessRequest godoc
// @Summary Approve an access request
// @Description Approves the requesting user with the given role, MEMBER by default.
// @Tags company
// @Accept json
// @Produce json
// @Param request_id path string true "Access request ID"
// @Param body body dto.ApproveAccessRequestRequest false "Role to grant"
// @Success 200 {object} dto.AccessRequestResponse
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Request already decided"
// @Security BearerAuth
// @Router /company/access-requests/{request_id}/approve [post]
func (h *companyHandler) approveAccessRequest(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.ApproveAccessRequestRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	request, err := h.companyService.ApproveAccessRequest(c.Request.Context(), userID, c.Param("request_id"), req.Role)
	if err != nil {
		respondError(c, err, "Failed to approve access request")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccessRequestResponse(request))
}

// rejectAccessRequest godoc
// @Summary Reject an access request
// @Tags company
// @Produce json
// @Param request_id path string true "Access request ID"
// @Success 200 {object} dto.AccessRequestResponse
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Request already decided"
// @Security BearerAuth
// @Router /company/access-requests/{request_id}/reject [post]
func (h *companyHandler) rejectAccessRequest(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	request, err := h.companyService.RejectAccessRequest(c.Request.Context(), userID, c.Param("request_id"))
	if err != nil {
		respondError(c, err, "Failed to reject access request")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccessRequestResponse(request))
}

// regenerateAccessCode godoc
// @Summary Regenerate the company access code
// @Description The previous code stops working immediately.
// @Tags company
// @Produce json
// @Success 200 {object} dto.CompanyResponse
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Security BearerAuth
// @Router /company/access-code [post]
func (h *companyHandler) regenerateAccessCode(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	company, err := h.companyService.RegenerateAccessCode(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to regenerate access code")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company, true))
}
