// Package routes assembles the gin engine: middleware order, the API
// routes and the not-found fallback.
package routes

import (
	"fmt"

	"news-api/handlers"
	"news-api/helper"
	"news-api/middleware"
	"news-api/repositories"
	"news-api/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handlers struct {
	API     *handlers.APIHandler
	Article *handlers.ArticleHandler
	Comment *handlers.CommentHandler
	Topic   *handlers.TopicHandler
	User    *handlers.UserHandler
}

type Options struct {
	Logger      *zap.Logger
	Metrics     *middleware.Metrics
	CORSOrigins []string
}

// NewHandlers wires repositories, services and handlers over one pool.
func NewHandlers(db *gorm.DB, h *helper.HTTPHelper) (Handlers, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return Handlers{}, fmt.Errorf("database handle: %w", err)
	}

	// Initialize repositories
	articleRepo := repositories.NewArticleRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	topicRepo := repositories.NewTopicRepository(db)
	userRepo := repositories.NewUserRepository(db)

	// Initialize services
	articleService := services.NewArticleService(articleRepo, topicRepo, userRepo)
	commentService := services.NewCommentService(commentRepo, articleRepo, userRepo)
	topicService := services.NewTopicService(topicRepo)
	userService := services.NewUserService(userRepo)

	return Handlers{
		API:     handlers.NewAPIHandler(sqlDB, h),
		Article: handlers.NewArticleHandler(articleService, h),
		Comment: handlers.NewCommentHandler(commentService, h),
		Topic:   handlers.NewTopicHandler(topicService, h),
		User:    handlers.NewUserHandler(userService, h),
	}, nil
}

func NewRouter(hs Handlers, h *helper.HTTPHelper, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = middleware.NewMetrics()
	}

	router := gin.New()
	// "/api/topics/" is an unknown route, not a redirect to "/api/topics"
	router.RedirectTrailingSlash = false
	router.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		metrics.Middleware(),
		middleware.CORS(opts.CORSOrigins),
		middleware.ErrorHandler(h, logger),
		middleware.Recovery(),
	)

	router.GET("/health", h.Handle(hs.API.Health))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api")
	{
		api.GET("", h.Handle(hs.API.GetAPI))

		topics := api.Group("/topics")
		{
			topics.GET("", h.Handle(hs.Topic.GetTopics))
			topics.POST("", h.Handle(hs.Topic.CreateTopic))
		}

		articles := api.Group("/articles")
		{
			articles.GET("", h.Handle(hs.Article.GetArticles))
			articles.POST("", h.Handle(hs.Article.CreateArticle))
			articles.GET("/:id", h.Handle(hs.Article.GetArticle))
			articles.PATCH("/:id", h.Handle(hs.Article.UpdateArticleVotes))
			articles.DELETE("/:id", h.Handle(hs.Article.DeleteArticle))
			articles.GET("/:id/comments", h.Handle(hs.Comment.GetArticleComments))
			articles.POST("/:id/comments", h.Handle(hs.Comment.CreateArticleComment))
		}

		comments := api.Group("/comments")
		{
			comments.PATCH("/:id", h.Handle(hs.Comment.UpdateCommentVotes))
			comments.DELETE("/:id", h.Handle(hs.Comment.DeleteComment))
		}

		users := api.Group("/users")
		{
			users.GET("", h.Handle(hs.User.GetUsers))
			users.GET("/:username", h.Handle(hs.User.GetUser))
		}
	}

	router.NoRoute(middleware.NotFound)

	return router
}
