package blog

import (
	"blog-sync/core/logger"
	"blog-sync/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles the sync trigger endpoints.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Post("/bootstrap", h.HandleBootstrap)
	group.Post("/reconcile", h.HandleReconcile)
	group.Get("/status", h.HandleStatus)
	group.Get("/reports/:run", h.HandleReports)
}

// HandleBootstrap imports the remote posts and comments into the empty store.
// @Summary Bootstrap
// @Description Import every remote post and its comments. Refused when the store is not empty.
// @Tags sync
// @Produce json
// @Success 200 {object} bootstrap.Report "Import report"
// @Failure 409 {object} map[string]string "Store not empty"
// @Failure 502 {object} map[string]string "Remote API failure"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/bootstrap [post]
func (h *Handler) HandleBootstrap(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Bootstrap(c.UserContext())
	if err != nil {
		l.Error("Bootstrap failed", zap.Error(err))
		return c.Status(StatusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}

// HandleReconcile pushes local changes to the remote API.
// @Summary Synchronize
// @Description Create, update and delete remote records so the remote API mirrors the local store.
// @Tags sync
// @Produce json
// @Param dry_run query bool false "Plan only, issue no remote call"
// @Success 200 {object} SyncReport "Per-kind plans and results"
// @Failure 502 {object} map[string]string "Remote API failure"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	opts := reconcile.ReconcileOptions{DryRun: c.QueryBool("dry_run", false)}

	report, err := h.service.Synchronize(c.UserContext(), opts)
	if err != nil {
		l.Error("Synchronize failed", zap.Error(err))
		return c.Status(StatusFor(err)).JSON(fiber.Map{
			"error":  err.Error(),
			"report": report,
		})
	}

	return c.JSON(report)
}

// HandleStatus returns local counts and the last runs.
// @Summary Sync status
// @Tags sync
// @Produce json
// @Success 200 {object} Status "Status"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	status, err := h.service.Status(c.UserContext())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Status failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(status)
}

// HandleReports lists the archived reports of a run.
// @Summary Archived reports
// @Tags sync
// @Produce json
// @Param run path string true "bootstrap or synchronize"
// @Success 200 {array} storage.Entry "Reports, oldest first"
// @Failure 400 {object} map[string]string "Unknown run"
// @Failure 404 {object} map[string]string "Archive disabled"
// @Router /sync/reports/{run} [get]
func (h *Handler) HandleReports(c *fiber.Ctx) error {
	entries, err := h.service.Reports(c.UserContext(), c.Params("run"))
	if err != nil {
		return c.Status(StatusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(entries)
}
