package integrity

import (
	"errors"

	"property-engine/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/dataset", h.HandleDatasetCheck)
	group.Get("/stores", h.HandleStoresCheck)
}

func section(result any, err error) any {
	switch {
	case errors.Is(err, ErrNotApplicable):
		return fiber.Map{"status": "skipped", "reason": err.Error()}
	case err != nil:
		return fiber.Map{"status": "error", "error": err.Error()}
	}
	return result
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs all integrity checks (Structure, Dataset, Stores). Checks that do not apply to the configured backends are reported as skipped.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	missing, err := h.service.CheckStructure(ctx)
	report["structure"] = section(fiber.Map{"status": "checked", "missing": missing}, err)

	dsReport, err := h.service.CheckDataset(ctx)
	report["dataset"] = section(dsReport, err)

	storesReport, err := h.service.CheckStores()
	report["stores"] = section(storesReport, err)

	return c.JSON(report)
}

// HandleStructureCheck checks the bucket for dataset objects.
// @Summary Check Structure
// @Description Checks that the country index, store file and every country shard exist in the storage bucket.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	missing, err := h.service.CheckStructure(c.Context())
	if errors.Is(err, ErrNotApplicable) {
		return c.JSON(section(nil, err))
	}
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Missing dataset objects detected", zap.Strings("missing", missing))
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleDatasetCheck checks the records of every shard.
// @Summary Check Dataset
// @Description Reports records without slug or id, slugs that are not URL-safe, and slugs shadowed by an earlier record.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.DatasetReport "Dataset Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/dataset [get]
func (h *Handler) HandleDatasetCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting dataset check")

	report, err := h.service.CheckDataset(c.Context())
	if err != nil {
		l.Error("Dataset check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	l.Info("Dataset check completed",
		zap.Int("records", report.Records),
		zap.Int("duplicates", len(report.Duplicates)))

	return c.JSON(report)
}

// HandleStoresCheck checks the stores table schema.
// @Summary Check Stores Schema
// @Description Checks that the stores table has the columns the store directory queries.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.SchemaReport "Stores Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/stores [get]
func (h *Handler) HandleStoresCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckStores()
	if errors.Is(err, ErrNotApplicable) {
		return c.JSON(section(nil, err))
	}
	if err != nil {
		l.Error("Stores schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}
