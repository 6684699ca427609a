package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yatraflow/yatraflow/internal/api/dto"
	"github.com/yatraflow/yatraflow/internal/auth"
	"github.com/yatraflow/yatraflow/internal/domain"
	"github.com/yatraflow/yatraflow/internal/service"
	"github.com/yatraflow/yatraflow/pkg/util"
)

// ReportsHandler exposes the report collection, aggregates and CSV export.
type ReportsHandler struct {
	reports *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reports *service.ReportService) *ReportsHandler {
	return &ReportsHandler{reports: reports}
}

// List handles GET /reports with filter, sort and pagination params.
func (h *ReportsHandler) List(c *fiber.Ctx) error {
	filter := parseFilter(c)
	spec := service.SortSpec{
		Field:      service.SortField(c.Query("sortBy")),
		Descending: c.Query("sortDir") == "desc",
	}
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", service.DefaultPageSize)

	result := service.QueryReports(h.reports.List(), filter, spec, page, pageSize)
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"items":      dto.NewReportResponses(result.Items),
			"totalItems": result.TotalItems,
			"page":       result.Page,
			"pageSize":   result.PageSize,
			"pageCount":  result.PageCount,
		},
	})
}

// Get handles GET /reports/:id.
func (h *ReportsHandler) Get(c *fiber.Ctx) error {
	report, err := h.reports.Get(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewReportResponse(*report)})
}

// Create handles POST /reports.
func (h *ReportsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}

	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	report, err := h.reports.Create(c.Context(), principal.User, service.ReportCreateInput{
		Zone:         req.Zone,
		LocationName: req.LocationName,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Type:         req.Type,
		Severity:     req.Severity,
		Description:  req.Description,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewReportResponse(*report)})
}

// Update handles PATCH /reports/:id.
func (h *ReportsHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}

	var req dto.UpdateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	report, err := h.reports.Update(c.Context(), principal.User, c.Params("id"), service.ReportUpdateInput{
		Zone:         req.Zone,
		LocationName: req.LocationName,
		Type:         req.Type,
		Severity:     req.Severity,
		Description:  req.Description,
		Status:       req.Status,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": dto.NewReportResponse(*report)})
}

// Delete handles DELETE /reports/:id.
func (h *ReportsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}
	if err := h.reports.Delete(c.Context(), principal.User, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Stats handles GET /reports/stats. Aggregates always derive from the
// unfiltered collection.
func (h *ReportsHandler) Stats(c *fiber.Ctx) error {
	snapshot := h.reports.List()
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"stats": service.ComputeStats(snapshot),
			"trend": service.ComputeTrend(snapshot, time.Now()),
		},
	})
}

// Export handles GET /reports/export, honoring the same filter params as
// List and serving the CSV as a dated attachment.
func (h *ReportsHandler) Export(c *fiber.Ctx) error {
	filtered := service.FilterReports(h.reports.List(), parseFilter(c))
	csv := service.ExportCSV(filtered)

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+service.ExportFileName(time.Now())+`"`)
	return c.SendString(csv)
}

func parseFilter(c *fiber.Ctx) service.ReportFilter {
	filter := service.ReportFilter{Search: c.Query("search")}
	if v := c.Query("type"); v != "" {
		t := domain.ReportType(v)
		filter.Type = &t
	}
	if v := c.Query("severity"); v != "" {
		s := domain.Severity(v)
		filter.Severity = &s
	}
	if v := c.Query("status"); v != "" {
		s := domain.ReportStatus(v)
		filter.Status = &s
	}
	return filter
}
