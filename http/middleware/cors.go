package middlewares

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-dam-service/config"
)

// CORSMiddleware builds the CORS policy from ALLOWED_DOMAINS, a comma
// separated list of origins. An empty list allows every origin without
// credentials.
func CORSMiddleware(config *config.EnvConfig) gin.HandlerFunc {
	var origins []string
	for _, domain := range strings.Split(config.CORS.AllowDomains, ",") {
		domain = strings.TrimSpace(domain)
		if domain == "" {
			continue
		}
		origins = append(origins, domain)
	}

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: true,
	}

	if len(origins) == 0 {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = origins
	}

	return cors.New(corsConfig)
}
