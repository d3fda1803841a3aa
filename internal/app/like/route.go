package like

import "github.com/gin-gonic/gin"

func RegisterRoutes(authed gin.IRoutes, handler Handler) {
	authed.POST("/boards/:id/likes", handler.Toggle)
}
