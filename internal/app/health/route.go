package health

import "github.com/gin-gonic/gin"

func RegisterRoutes(public gin.IRoutes, handler Handler) {
	public.GET("/health", handler.Check)
}
