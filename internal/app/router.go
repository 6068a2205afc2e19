package app

import (
	"github.com/KINGAKWO/lingoRoots-sub000/docs"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/config"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/middleware"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/model"
	"github.com/KINGAKWO/lingoRoots-sub000/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c, cfg)
	a.registerLearnerRoutes(router, c, repos, cfg)
	a.registerCreatorRoutes(router, c, repos, cfg)
	a.registerAdminRoutes(router, c, repos, cfg)
}

// Public catalog routes. TryAuthMiddleware lets a logged-in content
// creator see drafts and answer keys while keeping the routes open to
// guests.
func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		catalog := public.Group("/")
		catalog.Use(middleware.TryAuthMiddleware(cfg))
		{
			catalog.GET("/languages", c.language.GetLanguages)
			catalog.GET("/languages/:languageId", c.language.GetLanguage)
			catalog.GET("/languages/:languageId/lessons", c.lesson.GetLessons)
			catalog.GET("/languages/:languageId/lessons/:lessonId", c.lesson.GetLesson)
			catalog.GET("/languages/:languageId/lessons/:lessonId/flashcards", c.flashcard.GetFlashcards)
			catalog.GET("/languages/:languageId/quizzes", c.quiz.GetQuizzes)
			catalog.GET("/languages/:languageId/quizzes/:quizId", c.quiz.GetQuiz)
		}
	}
}

func (a *App) registerLearnerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.PUT("/user/profile", c.user.UpdateProfile)
		authGroup.PUT("/user/languages", c.user.SelectLanguages)

		authGroup.GET("/dashboard", c.dashboard.GetDashboard)
		authGroup.GET("/progress", c.dashboard.GetProgress)

		authGroup.POST("/languages/:languageId/quizzes/:quizId/submit", c.quiz.SubmitQuiz)
		authGroup.POST("/languages/:languageId/lessons/:lessonId/steps/:stepIndex/submit", c.quiz.SubmitLessonStepQuiz)
		authGroup.POST("/languages/:languageId/lessons/:lessonId/complete", c.lesson.CompleteLesson)

		authGroup.POST("/languages/:languageId/lessons/:lessonId/flashcards/session", c.flashcard.StartSession)
		authGroup.GET("/flashcards/session/:sessionId", c.flashcard.GetSession)
		authGroup.POST("/flashcards/session/:sessionId/answer", c.flashcard.AnswerCard)
	}
}

func (a *App) registerCreatorRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	creator := router.Group("/api")
	creator.Use(
		middleware.AuthMiddleware(cfg),
		middleware.ActivityMiddleware(repos.user),
		middleware.RoleMiddleware(model.ContentCreator),
	)
	{
		creator.POST("/languages", c.language.CreateLanguage)
		creator.PUT("/languages/:languageId", c.language.UpdateLanguage)
		creator.DELETE("/languages/:languageId", c.language.DeleteLanguage)

		creator.POST("/languages/:languageId/lessons", c.lesson.CreateLesson)
		creator.PUT("/languages/:languageId/lessons/:lessonId", c.lesson.UpdateLesson)
		creator.DELETE("/languages/:languageId/lessons/:lessonId", c.lesson.DeleteLesson)

		creator.POST("/languages/:languageId/quizzes", c.quiz.CreateQuiz)
		creator.PUT("/languages/:languageId/quizzes/:quizId", c.quiz.UpdateQuiz)
		creator.DELETE("/languages/:languageId/quizzes/:quizId", c.quiz.DeleteQuiz)
		creator.POST("/languages/:languageId/quizzes/:quizId/questions", c.quiz.AddQuestion)
		creator.PUT("/languages/:languageId/quizzes/:quizId/questions/:questionId", c.quiz.UpdateQuestion)
		creator.DELETE("/languages/:languageId/quizzes/:quizId/questions/:questionId", c.quiz.DeleteQuestion)

		creator.POST("/languages/:languageId/lessons/:lessonId/flashcards", c.flashcard.CreateFlashcard)
		creator.PUT("/languages/:languageId/lessons/:lessonId/flashcards/:cardId", c.flashcard.UpdateFlashcard)
		creator.DELETE("/languages/:languageId/lessons/:lessonId/flashcards/:cardId", c.flashcard.DeleteFlashcard)

		creator.POST("/upload/media", c.media.Upload)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(
		middleware.AuthMiddleware(cfg),
		middleware.ActivityMiddleware(repos.user),
		middleware.RoleMiddleware(model.Administrator),
	)
	{
		admin.GET("/users", c.user.ListUsers)
		admin.PUT("/users/:id/role", c.user.SetRole)
	}
}
