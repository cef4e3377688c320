// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tayari_backend/internals/configs"
	"tayari_backend/internals/constants"
	attemptroute "tayari_backend/internals/features/exams/attempts/route"
	quizroute "tayari_backend/internals/features/exams/quizzes/route"
	submissionroute "tayari_backend/internals/features/testseries/submissions/route"
	middleware "tayari_backend/internals/middlewares/auth"
)

// SetupRoutes wires the two API surfaces:
//
//	/api/u  : any authenticated user (students taking quizzes, uploading sheets)
//	/api/a  : graders and admins (authoring, review queue)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// 👤 User surface
	user := api.Group("/u",
		middleware.AuthJWT(middleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)
	quizroute.QuizUserRoutes(user, db)
	attemptroute.QuizAttemptUserRoutes(user, db)
	submissionroute.SubmissionUserRoutes(user, db)

	// 🛡️ Grader/admin surface
	admin := api.Group("/a",
		middleware.AuthJWT(middleware.AuthJWTOpts{
			Secret: configs.JWTSecret,
		}),
		middleware.RequireRoles("exam management", constants.GraderAndAbove...),
	)
	quizroute.QuizAdminRoutes(admin, db)
	submissionroute.SubmissionAdminRoutes(admin, db)
}
