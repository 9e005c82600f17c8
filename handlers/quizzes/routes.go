package quizzes

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to quizzes
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	quiz := r.Group("/quiz")
	{
		quiz.GET("/", GetQuizzes)
		quiz.GET("/categories", GetCategories)
		quiz.POST("/submit", SubmitAnswer)
		quiz.PATCH("/attempt", SaveAttempt)
		quiz.GET("/attempt", GetAttempt)
		quiz.PATCH("/bookmark", SaveBookmark)
		quiz.GET("/bookmark", GetBookmark)
		quiz.GET("/resume", ResumeQuiz)

		quiz.POST("/", CreateQuiz)
		quiz.PUT("/:id", UpdateQuiz)
		quiz.DELETE("/:id", DeleteQuiz)
	}
}
