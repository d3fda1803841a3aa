package board

import "github.com/gin-gonic/gin"

func RegisterRoutes(public gin.IRoutes, authed gin.IRoutes, handler Handler) {
	public.GET("/main", handler.MainPage)
	public.GET("/boards", handler.ListBoards)
	public.GET("/boards/:id", handler.GetBoard)

	authed.POST("/boards", handler.CreateBoard)
	authed.PUT("/boards/:id", handler.UpdateBoard)
	authed.DELETE("/boards/:id", handler.DeleteBoard)
	authed.GET("/users/me/boards", handler.MyBoards)
	authed.GET("/users/me/likes", handler.LikedBoards)
	authed.GET("/users/me/trips", handler.ParticipatedTrips)
}
