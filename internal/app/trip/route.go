package trip

import "github.com/gin-gonic/gin"

func RegisterRoutes(public gin.IRoutes, authed gin.IRoutes, handler Handler) {
	public.GET("/boards/:id/trip", handler.GetByBoard)
	authed.POST("/trips/:id/join", handler.Join)
	authed.DELETE("/trips/:id/join", handler.Leave)
}
