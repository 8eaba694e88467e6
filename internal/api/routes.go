package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *Handler, allowCORS bool) {
	if allowCORS {
		r.Use(cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowMethods:    []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:    []string{"Origin", "Content-Type"},
			ExposeHeaders:   []string{"Content-Disposition", "X-Card-ID"},
		}))
	}

	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/presets", h.listPresets)
		api.GET("/presets/:name", h.getPreset)
		api.GET("/pools", h.listPools)
		api.GET("/pools/:kind/pick", h.pickHandler)
		api.POST("/pools/filter", h.filterHandler)
		api.POST("/card", h.cardHandler)
		api.POST("/caption", captionHandler)
		api.GET("/qr", qrHandler)
		api.GET("/portraits/:name", h.portraitHandler)
	}
}
