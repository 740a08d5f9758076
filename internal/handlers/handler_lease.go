package handlers

import (
	"net/http"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// leaseHandler handles leases and the rent payments recorded against them.
type leaseHandler struct {
	leaseService   portssvc.LeaseSvcFacade
	paymentService portssvc.RentPaymentSvcFacade
}

func newLeaseHandler(ls portssvc.LeaseSvcFacade, ps portssvc.RentPaymentSvcFacade) *leaseHandler {
	return &leaseHandler{leaseService: ls, paymentService: ps}
}

// registerLeaseRoutes registers lease routes and the payment routes nested under them.
func registerLeaseRoutes(rg *gin.RouterGroup, leaseService portssvc.LeaseSvcFacade, paymentService portssvc.RentPaymentSvcFacade) {
	h := newLeaseHandler(leaseService, paymentService)

	leases := rg.Group("/leases")
	{
		leases.POST("", h.createLease)
		leases.GET("", h.listLeases)
		leases.GET("/:lease_id", h.getLease)
		leases.PUT("/:lease_id", h.updateLease)
		leases.DELETE("/:lease_id", h.deleteLease)

		leases.GET("/:lease_id/payments", h.listPayments)
		leases.POST("/:lease_id/payments", h.createPayment)
		leases.POST("/:lease_id/payments/generate", h.generateSchedule)
	}

	payments := rg.Group("/payments")
	{
		payments.DELETE("/:payment_id", h.deletePayment)
		payments.POST("/:payment_id/confirm", h.confirmPayment)
		payments.DELETE("/:payment_id/confirm", h.unconfirmPayment)
	}
}

// createLease godoc
// @Summary Create a lease
// @Description Fails with 409 when the tenant already has a lease overlapping the new dates.
// @Tags leases
// @Accept json
// @Produce json
// @Param body body dto.CreateLeaseRequest true "Lease details"
// @Success 201 {object} dto.LeaseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Tenant not found"
// @Failure 409 {object} dto.ErrorResponse "Overlapping lease"
// @Security BearerAuth
// @Router /leases [post]
func (h *leaseHandler) createLease(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateLeaseRequest
	if !bindJSON(c, &req) {
		return
	}
	lease, err := h.leaseService.CreateLease(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to create lease")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLeaseResponse(lease))
}

// listLeases godoc
// @Summary List leases
// @Description Either tenantId or buildingId is required.
// @Tags leases
// @Produce json
// @Param tenantId query string false "Tenant ID"
// @Param buildingId query string false "Building ID"
// @Success 200 {array} dto.LeaseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /leases [get]
func (h *leaseHandler) listLeases(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var params dto.ListLeasesParams
	if !bindQuery(c, &params) {
		return
	}
	leases, err := h.leaseService.ListLeases(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list leases")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLeaseResponse(leases))
}

// getLease godoc
// @Summary Get a lease
// @Tags leases
// @Produce json
// @Param lease_id path string true "Lease ID"
// @Success 200 {object} dto.LeaseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /leases/{lease_id} [get]
func (h *leaseHandler) getLease(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	lease, err := h.leaseService.GetLease(c.Request.Context(), userID, c.Param("lease_id"))
	if err != nil {
		respondError(c, err, "Failed to get lease")
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaseResponse(lease))
}

// updateLease godoc
// @Summary Update a lease
// @Tags leases
// @Accept json
// @Produce json
// @Param lease_id path string true "Lease ID"
// @Param body body dto.UpdateLeaseRequest true "Fields to change"
// @Success 200 {object} dto.LeaseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Overlapping lease"
// @Security BearerAuth
// @Router /leases/{lease_id} [put]
func (h *leaseHandler) updateLease(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.UpdateLeaseRequest
	if !bindJSON(c, &req) {
		return
	}
	lease, err := h.leaseService.UpdateLease(c.Request.Context(), userID, c.Param("lease_id"), req)
	if err != nil {
		respondError(c, err, "Failed to update lease")
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaseResponse(lease))
}

// deleteLease godoc
// @Summary Delete a lease
// @Description Its rent payments are deleted with it.
// @Tags leases
// @Param lease_id path string true "Lease ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /leases/{lease_id} [delete]
func (h *leaseHandler) deleteLease(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.leaseService.DeleteLease(c.Request.Context(), userID, c.Param("lease_id")); err != nil {
		respondError(c, err, "Failed to delete lease")
		return
	}
	c.Status(http.StatusNoContent)
}

// listPayments godoc
// @Summary List a lease's rent payments
// @Tags payments
// @Produce json
// @Param lease_id path string true "Lease ID"
// @Success 200 {array} dto.RentPaymentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /leases/{lease_id}/payments [get]
func (h *leaseHandler) listPayments(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	payments, err := h.paymentService.ListRentPayments(c.Request.Context(), userID, c.Param("lease_id"))
	if err != nil {
		respondError(c, err, "Failed to list rent payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRentPaymentResponse(payments))
}

// createPayment godoc
// @Summary Record one month's rent
// @Tags payments
// @Accept json
// @Produce json
// @Param lease_id path string true "Lease ID"
// @Param body body dto.CreateRentPaymentRequest true "Payment details"
// @Success 201 {object} dto.RentPaymentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Month already recorded"
// @Security BearerAuth
// @Router /leases/{lease_id}/payments [post]
func (h *leaseHandler) createPayment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateRentPaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	payment, err := h.paymentService.CreateRentPayment(c.Request.Context(), userID, c.Param("lease_id"), req)
	if err != nil {
		respondError(c, err, "Failed to record rent payment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToRentPaymentResponse(payment))
}

// generateSchedule godoc
// @Summary Generate the rent schedule
// @Description Creates one unconfirmed payment per lease month that has none yet, and returns the new rows.
// @Tags payments
// @Accept json
// @Produce json
// @Param lease_id path string true "Lease ID"
// @Param body body dto.GenerateRentScheduleRequest false "Last month to generate"
// @Success 201 {array} dto.RentPaymentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /leases/{lease_id}/payments/generate [post]
func (h *leaseHandler) generateSchedule(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.GenerateRentScheduleRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	var through *domain.YearMonth
	if req.Through != "" {
		ym, err := domain.ParseYearMonth(req.Through)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		through = &ym
	}
	payments, err := h.paymentService.GenerateRentSchedule(c.Request.Context(), userID, c.Param("lease_id"), through)
	if err != nil {
		respondError(c, err, "Failed to generate rent schedule")
		return
	}
	c.JSON(http.StatusCreated, dto.ToListRentPaymentResponse(payments))
}

// confirmPayment godoc
// @Summary Confirm a rent payment
// @Tags payments
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Success 200 {object} dto.RentPaymentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /payments/{payment_id}/confirm [post]
func (h *leaseHandler) confirmPayment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	payment, err := h.paymentService.ConfirmRentPayment(c.Request.Context(), userID, c.Param("payment_id"))
	if err != nil {
		respondError(c, err, "Failed to confirm rent payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToRentPaymentResponse(payment))
}

// unconfirmPayment godoc
// @Summary Withdraw a rent payment confirmation
// @Tags payments
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Success 200 {object} dto.RentPaymentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /payments/{payment_id}/confirm [delete]
func (h *leaseHandler) unconfirmPayment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	payment, err := h.paymentService.UnconfirmRentPayment(c.Request.Context(), userID, c.Param("payment_id"))
	if err != nil {
		respondError(c, err, "Failed to unconfirm rent payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToRentPaymentResponse(payment))
}

// deletePayment godoc
// @Summary Delete a rent payment
// @Tags payments
// @Param payment_id path string true "Payment ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /payments/{payment_id} [delete]
func (h *leaseHandler) deletePayment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.paymentService.DeleteRentPayment(c.Request.Context(), userID, c.Param("payment_id")); err != nil {
		respondError(c, err, "Failed to delete rent payment")
		return
	}
	c.Status(http.StatusNoContent)
}
