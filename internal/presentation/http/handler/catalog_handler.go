package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/medantra/hospital-api/internal/application/service"
	"github.com/medantra/hospital-api/internal/presentation/http/dto/request"
	"github.com/medantra/hospital-api/internal/presentation/http/dto/response"
)

// CatalogHandler handles charge master endpoints
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(v), true
}

// CreateDepartment handles POST /catalog/departments
func (h *CatalogHandler) CreateDepartment(c *gin.Context) {
	var req request.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	department, err := h.catalogService.CreateDepartment(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Department created successfully", department)
}

// ListDepartments handles GET /catalog/departments
func (h *CatalogHandler) ListDepartments(c *gin.Context) {
	departments, err := h.catalogService.ListDepartments(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Departments retrieved", departments)
}

// DeleteDepartment handles DELETE /catalog/departments/:id
func (h *CatalogHandler) DeleteDepartment(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteDepartment(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Department deleted successfully", nil)
}

// CreateParticular handles POST /catalog/particulars
func (h *CatalogHandler) CreateParticular(c *gin.Context) {
	var req request.CreateParticularRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	particular, err := h.catalogService.CreateParticular(c.Request.Context(), &service.CreateParticularInput{
		Name:         req.Name,
		DepartmentID: req.DepartmentID,
		Rate:         req.Rate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Particular created successfully", particular)
}

// ListParticulars handles GET /catalog/particulars
func (h *CatalogHandler) ListParticulars(c *gin.Context) {
	var departmentID *uint
	if raw := c.Query("department_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.BadRequest(c, "Invalid department_id")
			return
		}
		id := uint(v)
		departmentID = &id
	}

	particulars, err := h.catalogService.ListParticulars(c.Request.Context(), departmentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Particulars retrieved", particulars)
}

// DeleteParticular handles DELETE /catalog/particulars/:id
func (h *CatalogHandler) DeleteParticular(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteParticular(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Particular deleted successfully", nil)
}

// Stats handles GET /catalog/stats
func (h *CatalogHandler) Stats(c *gin.Context) {
	stats, err := h.catalogService.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Catalog stats retrieved", stats)
}
