package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// constructionHandler handles projects, employees and punches.
type constructionHandler struct {
	projectService  portssvc.ProjectSvcFacade
	employeeService portssvc.EmployeeSvcFacade
	punchService    portssvc.PunchSvcFacade
}

func newConstructionHandler(ps portssvc.ProjectSvcFacade, es portssvc.EmployeeSvcFacade, pu portssvc.PunchSvcFacade) *constructionHandler {
	return &constructionHandler{projectService: ps, employeeService: es, punchService: pu}
}

// registerConstructionRoutes registers project, employee and punch routes.
func registerConstructionRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newConstructionHandler(services.Project, services.Employee, services.Punch)

	construction := rg.Group("/construction")
	projects := construction.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("", h.listProjects)
		projects.GET("/:project_id", h.getProject)
		projects.PUT("/:project_id", h.updateProject)
		projects.DELETE("/:project_id", h.deleteProject)
		projects.GET("/:project_id/labor", h.getProjectLabor)
	}

	employees := construction.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.GET("/:employee_id", h.getEmployee)
		employees.PUT("/:employee_id", h.updateEmployee)
		employees.DELETE("/:employee_id", h.deleteEmployee)
	}

	punches := construction.Group("/punches")
	{
		punches.POST("", h.createPunch)
		punches.GET("", h.listPunches)
		punches.GET("/:punch_id", h.getPunch)
		punches.PUT("/:punch_id", h.updatePunch)
		punches.DELETE("/:punch_id", h.deletePunch)
	}
}

// createProject godoc
// @Summary Create a construction project
// @Tags projects
// @Accept json
// @Produce json
// @Param body body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /construction/projects [post]
func (h *constructionHandler) createProject(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}
	project, err := h.projectService.CreateProject(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to create project")
		return
	}
	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

// listProjects godoc
// @Summary List construction projects
// @Tags projects
// @Produce json
// @Success 200 {array} dto.ProjectResponse
// @Security BearerAuth
// @Router /construction/projects [get]
func (h *constructionHandler) listProjects(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projects, err := h.projectService.ListProjects(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list projects")
		return
	}
	c.JSON(http.StatusOK, dto.ToListProjectResponse(projects))
}

// getProject godoc
// @Summary Get a construction project
// @Tags projects
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /construction/projects/{project_id} [get]
func (h *constructionHandler) getProject(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	project, err := h.projectService.GetProject(c.Request.Context(), userID, c.Param("project_id"))
	if err != nil {
		respondError(c, err, "Failed to get project")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// updateProject godoc
// @Summary Update a construction project
// @Tags projects
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param body body dto.UpdateProjectRequest true "Fields to change"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /construction/projects/{project_id} [put]
func (h *constructionHandler) updateProject(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.UpdateProjectRequest
	if !bindJSON(c, &req) {
		return
	}
	project, err := h.projectService.UpdateProject(c.Request.Context(), userID, c.Param("project_id"), req)
	if err != nil {
		respondError(c, err, "Failed to update project")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// deleteProject godoc
// @Summary Delete a construction project
// @Description Its punches are deleted with it.
// @Tags projects
// @Param project_id path string true "Project ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /construction/projects/{project_id} [delete]
func (h *constructionHandler) deleteProject(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.projectService.DeleteProject(c.Request.Context(), userID, c.Param("project_id")); err != nil {
		respondError(c, err, "Failed to delete project")
		return
	}
	c.Status(http.StatusNoContent)
}

// getProjectLabor godoc
// @Summary Project labor report
// @Description Hours and labor cost per employee against the project budget.
// @Tags projects
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {object} dto.ProjectLaborReportResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /construction/projects/{project_id}/labor [get]
func (h *constructionHandler) getProjectLabor(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	report, err := h.projectService.GetProjectLaborReport(c.Request.Context(), userID, c.Param("project_id"))
	if err != nil {
		respondError(c, err, "Failed to build labor report")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectLaborReportResponse(report))
}

// createEmployee godoc
// @Summary Create an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param body body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /construction/employees [post]
func (h *constructionHandler) createEmployee(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}
	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to create employee")
		return
	}
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// listEmployees godoc
// @Summary List employees
// @Tags employees
// @Produce json
// @Success 200 {array} dto.EmployeeResponse
// @Security BearerAuth
// @Router /construction/employees [get]
func (h *constructionHandler) listEmployees(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	employees, err := h.employeeService.ListEmployees(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list employees")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEmployeeResponse(employees))
}

// getEmployee godoc
// @Summary Get an employee
// @Tags employees
// @Produce json
// @Param employee_id path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /construction/employees/{employee_id} [get]
func (h *constructionHandler) getEmployee(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	employee, err := h.employeeService.GetEmployee(c.Request.Context(), userID, c.Param("employee_id"))
	if err != nil {
		respondError(c, err, "Failed to get employee")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// updateEmployee godoc
// @Summary Update an employee
// @Description A rate change does not affect punches already recorded.
// @Tags employees
// @Accept json
// @Produce json
// @Param employee_id path string true "Employee ID"
// @Param body body dto.UpdateEmployeeRequest true "Fields to change"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /construction/employees/{employee_id} [put]
func (h *constructionHandler) updateEmployee(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.UpdateEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}
	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), userID, c.Param("employee_id"), req)
	if err != nil {
		respondError(c, err, "Failed to update employee")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// deleteEmployee godoc
// @Summary Delete an employee
// @Tags employees
// @Param employee_id path string true "Employee ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /construction/employees/{employee_id} [delete]
func (h *constructionHandler) deleteEmployee(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.employeeService.DeleteEmployee(c.Request.Context(), userID, c.Param("employee_id")); err != nil {
		respondError(c, err, "Failed to delete employee")
		return
	}
	c.Status(http.StatusNoContent)
}

// createPunch godoc
// @Summary Record hours worked
// @Description The employee's current hourly rate is stored on the punch.
// @Tags punches
// @Accept json
// @Produce json
// @Param body body dto.CreatePunchRequest true "Punch details"
// @Success 201 {object} dto.PunchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /construction/punches [post]
func (h *constructionHandler) createPunch(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreatePunchRequest
	if !bindJSON(c, &req) {
		return
	}
	punch, err := h.punchService.CreatePunch(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to record punch")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPunchResponse(punch))
}

// listPunches godoc
// @Summary List punches
// @Tags punches
// @Produce json
// @Param projectId query string false "Project ID"
// @Param employeeId query string false "Employee ID"
// @Param from query string false "First work date (YYYY-MM-DD)"
// @Param to query string false "Last work date (YYYY-MM-DD)"
// @Success 200 {array} dto.PunchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /construction/punches [get]
func (h *constructionHandler) listPunches(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var params dto.ListPunchesParams
	if !bindQuery(c, &params) {
		return
	}
	punches, err := h.punchService.ListPunches(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list punches")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPunchResponse(punches))
}

// getPunch godoc
// @Summary Get a punch
// @Tags punches
// @Produce json
// @Param punch_id path string true "Punch ID"
// @Success 200 {object} dto.PunchResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /construction/punches/{punch_id} [get]
func (h *constructionHandler) getPunch(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	punch, err := h.punchService.GetPunch(c.Request.Context(), userID, c.Param("punch_id"))
	if err != nil {
		respondError(c, err, "Failed to get punch")
		return
	}
	c.JSON(http.StatusOK, dto.ToPunchResponse(punch))
}

// updatePunch godoc
// @Summary Update a punch
// @Tags punches
// @Accept json
// @Produce json
// @Param punch_id path string true "Punch ID"
// @Param body body dto.UpdatePunchRequest true "Fields to change"
// @Success 200 {object} dto.PunchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /construction/punches/{punch_id} [put]
func (h *constructionHandler) updatePunch(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.UpdatePunchRequest
	if !bindJSON(c, &req) {
		return
	}
	punch, err := h.punchService.UpdatePunch(c.Request.Context(), userID, c.Param("punch_id"), req)
	if err != nil {
		respondError(c, err, "Failed to update punch")
		return
	}
	c.JSON(http.StatusOK, dto.ToPunchResponse(punch))
}

// deletePunch godoc
// @Summary Delete a punch
// @Tags punches
// @Param punch_id path string true "Punch ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /construction/punches/{punch_id} [delete]
func (h *constructionHandler) deletePunch(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.punchService.DeletePunch(c.Request.Context(), userID, c.Param("punch_id")); err != nil {
		respondError(c, err, "Failed to delete punch")
		return
	}
	c.Status(http.StatusNoContent)
}
