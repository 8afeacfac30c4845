package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tnqbao/gau-dam-service/utils"
)

// HealthCheck reports liveness plus per-dependency reachability.
func (ctrl *Controller) HealthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	checks := gin.H{}
	healthy := true

	if err := ctrl.Infra.Postgres.Ping(ctx); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Health] Postgres ping failed")
		checks["postgres"] = "unreachable"
		healthy = false
	} else {
		checks["postgres"] = "ok"
	}

	if err := ctrl.Infra.Redis.Ping(ctx); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Health] Redis ping failed")
		checks["redis"] = "unreachable"
		healthy = false
	} else {
		checks["redis"] = "ok"
	}

	if _, err := ctrl.Infra.Minio.ServerInfo(ctx); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Health] MinIO server info failed")
		checks["minio"] = "unreachable"
		healthy = false
	} else {
		checks["minio"] = "ok"
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": http.StatusServiceUnavailable,
			"checks": checks,
		})
		return
	}

	utils.JSON200(c, gin.H{
		"checks": checks,
	})
}
