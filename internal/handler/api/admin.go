package api

import (
	"log/slog"
	"net/http"

	resdto "smart-parking/internal/handler/dto/response"
	"smart-parking/internal/handler/middleware"
	"smart-parking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	reconciler commands.ReconcileCommands
}

func NewAdminHandler(reconciler commands.ReconcileCommands) *AdminHandler {
	return &AdminHandler{reconciler: reconciler}
}

// @Summary Reconcile occupancy
// @Description Repair spot occupancy from open tickets
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ReconcileResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/admin/reconcile [post]
func (h *AdminHandler) Reconcile(c *gin.Context) {
	subject, _ := middleware.GetSubject(c)

	report, err := h.reconciler.Reconcile(c.Request.Context())
	if err != nil {
		abortWithMapped(c, err, admissionErrors)
		return
	}

	slog.Info("reconciliation requested",
		"subject", subject,
		"reoccupied", len(report.Reoccupied),
		"released", len(report.Released))
	c.JSON(http.StatusOK, resdto.FromReconcileReport(report))
}
