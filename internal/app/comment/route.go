package comment

import "github.com/gin-gonic/gin"

func RegisterRoutes(public gin.IRoutes, authed gin.IRoutes, handler Handler) {
	public.GET("/boards/:id/comments", handler.ListByBoard)
	authed.POST("/boards/:id/comments", handler.CreateComment)
	authed.DELETE("/comments/:id", handler.DeleteComment)
}
