package handlers

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/awsrest/internal/stub/models"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/process"
)

// Health godoc
// @Summary Health check
// @Description Returns stub health, uptime and resident memory
// @Tags system
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} models.HealthResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	uptime := time.Since(h.startTime)
	resp := models.HealthResponse{
		Status:        "ok",
		Database:      "ok",
		StartTime:     h.startTime,
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		GoRoutines:    runtime.NumGoroutine(),
	}

	// Resource figures are best effort; some platforms do not expose them.
	if p, err := process.NewProcessWithContext(c.Request.Context(), int32(os.Getpid())); err == nil {
		if mem, err := p.MemoryInfoWithContext(c.Request.Context()); err == nil {
			resp.RSSBytes = mem.RSS
		}
	}
	if up, err := host.UptimeWithContext(c.Request.Context()); err == nil {
		resp.HostUptimeSecs = up
	}

	status := http.StatusOK
	if h.store == nil {
		resp.Database = "absent"
	} else if err := h.store.Health(); err != nil {
		h.logger.Warn("stub database unhealthy", "err", err)
		resp.Status = "degraded"
		resp.Database = err.Error()
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}
