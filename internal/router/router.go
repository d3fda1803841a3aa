package router

import (
	"backend/internal/app/board"
	"backend/internal/app/comment"
	"backend/internal/app/health"
	"backend/internal/app/like"
	"backend/internal/app/route"
	"backend/internal/app/trip"
	"backend/internal/app/user"
	"backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Router owns the gin engine and the two /api groups: one open, one behind
// bearer-token auth.
type Router struct {
	Engine *gin.Engine
	public *gin.RouterGroup
	authed *gin.RouterGroup
}

func NewRouter(logger *zap.Logger, tokens middleware.TokenStore, corsOrigins []string) *Router {
	engine := gin.New()
	engine.Use(middleware.CORSMiddleware(corsOrigins))
	engine.Use(middleware.LoggerMiddleware(logger))
	engine.Use(gin.Recovery())

	public := engine.Group("/api")
	authed := engine.Group("/api")
	authed.Use(middleware.AuthRequired(tokens, logger))

	return &Router{Engine: engine, public: public, authed: authed}
}

func (r *Router) RegisterHealthRoutes(handler health.Handler) {
	health.RegisterRoutes(r.public, handler)
}

func (r *Router) RegisterUserRoutes(handler user.Handler) {
	user.RegisterRoutes(r.authed, handler)
}

func (r *Router) RegisterRouteRoutes(handler route.Handler) {
	route.RegisterRoutes(r.public, r.authed, handler)
}

func (r *Router) RegisterBoardRoutes(handler board.Handler) {
	board.RegisterRoutes(r.public, r.authed, handler)
}

func (r *Router) RegisterLikeRoutes(handler like.Handler) {
	like.RegisterRoutes(r.authed, handler)
}

func (r *Router) RegisterCommentRoutes(handler comment.Handler) {
	comment.RegisterRoutes(r.public, r.authed, handler)
}

func (r *Router) RegisterTripRoutes(handler trip.Handler) {
	trip.RegisterRoutes(r.public, r.authed, handler)
}

func (r *Router) Serve(addr string) error {
	return r.Engine.Run(addr)
}
