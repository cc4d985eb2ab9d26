package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medantra/hospital-api/internal/application/service"
	"github.com/medantra/hospital-api/internal/presentation/http/dto/response"
)

// ReportHandler handles the front-desk report endpoints
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter
func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		response.BadRequest(c, "Invalid "+name+", expected YYYY-MM-DD")
		return nil, false
	}
	return &d, true
}

// DailyOP handles GET /reports/daily-op
func (h *ReportHandler) DailyOP(c *gin.Context) {
	day, ok := parseDateQuery(c, "report_date")
	if !ok {
		return
	}

	bills, err := h.reportService.DailyOPReport(c.Request.Context(), day)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily OP report retrieved", bills)
}

// BillSummary handles GET /reports/bill-summary
func (h *ReportHandler) BillSummary(c *gin.Context) {
	start, ok := parseDateQuery(c, "start_date")
	if !ok {
		return
	}
	end, ok := parseDateQuery(c, "end_date")
	if !ok {
		return
	}

	summary, err := h.reportService.GetBillSummary(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill summary retrieved", summary)
}

// PatientList handles GET /reports/patient-list
func (h *ReportHandler) PatientList(c *gin.Context) {
	start, ok := parseDateQuery(c, "start_date")
	if !ok {
		return
	}
	end, ok := parseDateQuery(c, "end_date")
	if !ok {
		return
	}

	var isIP *bool
	if raw := c.Query("is_ip"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			response.BadRequest(c, "Invalid is_ip, expected true or false")
			return
		}
		isIP = &v
	}

	patients, err := h.reportService.GetPatientList(c.Request.Context(), start, end, isIP)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Patient list retrieved", patients)
}

// Particulars handles GET /reports/particulars. The matched particular comes
// either from particular= (substring, case-insensitive) or particular_id=
// (exact charge-master entry).
func (h *ReportHandler) Particulars(c *gin.Context) {
	query := &service.ParticularsQuery{
		Name:           c.Query("particular"),
		IncludeOP:      c.DefaultQuery("include_op", "true") == "true",
		IncludeIP:      c.DefaultQuery("include_ip", "true") == "true",
		GroupByPatient: c.Query("group_by_patient") == "true",
	}

	if raw := c.Query("particular_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.BadRequest(c, "Invalid particular_id")
			return
		}
		particularID := uint(id)
		query.ParticularID = &particularID
	} else if query.Name == "" {
		response.BadRequest(c, "Either particular or particular_id is required")
		return
	}

	start, ok := parseDateQuery(c, "start_date")
	if !ok {
		return
	}
	end, ok := parseDateQuery(c, "end_date")
	if !ok {
		return
	}
	query.Start = start
	query.End = end

	report, err := h.reportService.GetParticularsReport(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Particulars report retrieved", report)
}

// ParticularsList handles GET /reports/particulars-list
func (h *ReportHandler) ParticularsList(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			response.BadRequest(c, "Invalid limit")
			return
		}
		limit = v
	}

	list, err := h.reportService.GetParticularsList(c.Request.Context(), c.Query("search"), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Particulars retrieved", list)
}
