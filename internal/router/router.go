package router

import (
	"shrinkit_go/internal/handler"

	"github.com/gin-gonic/gin"
)

type Dependencies struct {
	ArchiveHandler *handler.ArchiveHandler
}

func Register(r *gin.Engine, d Dependencies) {
	// 공용 라우트
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	// v1 그룹
	v1 := r.Group("/api/v1")
	{
		v1.POST("/compress", d.ArchiveHandler.Compress)
		v1.POST("/decompress", d.ArchiveHandler.Decompress)

		archives := v1.Group("/archives")
		{
			archives.POST("", d.ArchiveHandler.Create)
			archives.GET("", d.ArchiveHandler.List)
			archives.GET("/:id", d.ArchiveHandler.GetByID)
			archives.GET("/:id/raw", d.ArchiveHandler.Raw)
			archives.GET("/:id/content", d.ArchiveHandler.Content)
			archives.DELETE("/:id", d.ArchiveHandler.Delete)
		}
	}
}
