package handlers

import (
	"net/http"

	portssvc "github.com/Yeizermarrugo/BankSystem/internal/core/ports/services"
	"github.com/Yeizermarrugo/BankSystem/internal/dto"
	"github.com/gin-gonic/gin"
)

// logHandler handles HTTP requests related to the audit log.
type logHandler struct {
	logService portssvc.LogSvcFacade
}

// newLogHandler creates a new logHandler.
func newLogHandler(ls portssvc.LogSvcFacade) *logHandler {
	return &logHandler{logService: ls}
}

// registerLogRoutes registers routes related to audit logs.
func registerLogRoutes(rg *gin.RouterGroup, logService portssvc.LogSvcFacade) {
	h := newLogHandler(logService)

	logs := rg.Group("/logs")
	{
		logs.GET("", h.listLogs)
		logs.GET("/recent", h.listRecentLogs)
		logs.GET("/entity/:id", h.listLogsByEntity)
	}
}

// listLogs retrieves a paginated list of audit entries, optionally filtered
// by service, action, and a from/to date range.
func (h *logHandler) listLogs(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	var params dto.ListLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	entries, err := h.logService.ListLogs(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondList(c, http.StatusOK, "Logs retrieved", len(entries), dto.ToListLogResponse(entries))
}

// listRecentLogs retrieves every audit entry of the last seven days.
func (h *logHandler) listRecentLogs(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	entries, err := h.logService.ListRecentLogs(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondList(c, http.StatusOK, "Logs retrieved", len(entries), dto.ToListLogResponse(entries))
}

// listLogsByEntity retrieves every audit entry for one entity.
func (h *logHandler) listLogsByEntity(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	entries, err := h.logService.ListLogsByEntity(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondList(c, http.StatusOK, "Logs retrieved", len(entries), dto.ToListLogResponse(entries))
}
