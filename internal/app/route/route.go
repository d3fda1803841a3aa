package route

import "github.com/gin-gonic/gin"

func RegisterRoutes(public gin.IRoutes, authed gin.IRoutes, handler Handler) {
	public.GET("/routes/:id", handler.GetRoute)
	authed.POST("/routes", handler.CreateRoute)
	authed.GET("/routes", handler.ListMyRoutes)
}
