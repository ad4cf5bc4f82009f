package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// api routes
	UsersCreateUser     = "/users"
	UsersLoginUser      = "/users/login"
	UsersGetMe          = "/users/me"
	UsersListMyResults  = "/users/me/results"
	QuizzesParse        = "/quizzes/parse"
	QuizzesImport       = "/quizzes/import"
	QuizzesGetQuiz      = "/quizzes/:quiz_id"
	QuizzesDeleteQuiz   = "/quizzes/:quiz_id"
	QuizzesExportQuiz   = "/quizzes/:quiz_id/export"
	QuizzesSubmitResult = "/quizzes/:quiz_id/results"
	ResultsSubmitInline = "/results"
	ResultsGetResult    = "/results/:result_id"
	StudyPlansParse     = "/study-plans/parse"
)

// Establishes HTTP router.
func (service *Service) setupRouter(server *http.Server) {
	router := gin.Default()

	router.Use(service.corsMiddleware())

	router.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	router.POST(UsersCreateUser, service.createUser)
	router.POST(UsersLoginUser, service.loginUser)

	router.POST(StudyPlansParse, service.parseStudyPlan)

	router.POST(QuizzesParse, service.parseQuiz)
	router.POST(QuizzesImport, service.importQuiz)

	// routes where quiz id is checked
	quizGroup := router.Group("/").Use(service.quizIDMiddleware())
	quizGroup.GET(QuizzesGetQuiz, service.getQuiz)
	quizGroup.GET(QuizzesExportQuiz, service.exportQuiz)
	quizGroup.DELETE(QuizzesDeleteQuiz, service.deleteQuiz)

	// results may be submitted anonymously, a valid token attributes them to the user
	optionalAuthGroup := router.Group("/").Use(optionalAuthMiddleware(service.tokenMaker))
	optionalAuthGroup.POST(ResultsSubmitInline, service.submitInlineResult)

	optionalAuthQuizGroup := optionalAuthGroup.Use(service.quizIDMiddleware())
	optionalAuthQuizGroup.POST(QuizzesSubmitResult, service.submitQuizResult)

	resultGroup := router.Group("/").Use(service.resultIDMiddleware())
	resultGroup.GET(ResultsGetResult, service.getResult)

	// protected routes
	authGroup := router.Group("/").Use(authMiddleware(service.tokenMaker))
	authGroup.GET(UsersGetMe, service.getMe)
	authGroup.GET(UsersListMyResults, service.listMyResults)

	server.Handler = router
	service.router = router
}
