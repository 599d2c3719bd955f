package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/VersaceXcodes/todo-app/controllers"
	"github.com/VersaceXcodes/todo-app/middleware"
	"github.com/VersaceXcodes/todo-app/services"
	"github.com/VersaceXcodes/todo-app/store"
	"github.com/VersaceXcodes/todo-app/utils"
)

// Deps carries everything the handlers need. Built once in main, or by a
// test with its own database.
type Deps struct {
	DB       *store.Gateway
	Tokens   *utils.TokenManager
	Notifier services.Notifier
}

// RegisterRoutes wires every endpoint to its handler.
func RegisterRoutes(r *gin.Engine, deps Deps) {
	authController := controllers.NewAuthController(deps.DB, deps.Tokens, deps.Notifier)
	userController := controllers.NewUserController(deps.DB)
	taskController := controllers.NewTaskController(deps.DB)
	listController := controllers.NewTaskListController(deps.DB)
	tagController := controllers.NewTagController(deps.DB)
	collabController := controllers.NewCollaborationController(deps.DB)
	commentController := controllers.NewCommentController(deps.DB)
	reminderController := controllers.NewReminderController(deps.DB, deps.Notifier)
	healthController := &controllers.HealthController{}

	api := r.Group("/api")
	{
		api.GET("/health", healthController.Health)

		api.POST("/auth/register", authController.Register)
		api.POST("/auth/login", authController.Login)
		api.POST("/auth/password-recovery", authController.PasswordRecovery)

		api.GET("/users", userController.SearchUsers)
		api.GET("/users/:user_id", userController.GetUser)
		api.PUT("/users/:user_id", userController.UpdateUser)

		api.GET("/tasks", taskController.SearchTasks)
		api.POST("/tasks", taskController.CreateTask)
		api.GET("/tasks/:task_id", taskController.GetTask)
		api.PUT("/tasks/:task_id", taskController.UpdateTask)
		api.DELETE("/tasks/:task_id", taskController.DeleteTask)
		api.GET("/tasks/:task_id/tags", tagController.TagsForTask)
		api.GET("/tasks/:task_id/collaborations", collabController.CollaborationsForTask)
		api.GET("/tasks/:task_id/comments", commentController.CommentsForTask)
		api.GET("/tasks/:task_id/reminders", reminderController.RemindersForTask)

		api.GET("/task-lists", listController.SearchTaskLists)
		api.POST("/task-lists", listController.CreateTaskList)
		api.GET("/task-lists/:list_id", listController.GetTaskList)
		api.PUT("/task-lists/:list_id", listController.UpdateTaskList)
		api.DELETE("/task-lists/:list_id", listController.DeleteTaskList)
		api.GET("/task-lists/:list_id/tasks", listController.TasksInList)

		api.POST("/task-list-relations", listController.CreateTaskListRelation)
		api.DELETE("/task-list-relations/:list_id/:task_id", listController.DeleteTaskListRelation)

		api.GET("/tags", tagController.SearchTags)
		api.POST("/tags", tagController.CreateTag)
		api.PUT("/tags/:tag_id", tagController.UpdateTag)
		api.DELETE("/tags/:tag_id", tagController.DeleteTag)

		api.POST("/task-tags", tagController.CreateTaskTag)
		api.DELETE("/task-tags/:task_id/:tag_id", tagController.DeleteTaskTag)

		api.POST("/task-collaborations", collabController.CreateCollaboration)
		api.DELETE("/task-collaborations/:task_id/:collaborator_email", collabController.DeleteCollaboration)

		api.POST("/task-comments", commentController.CreateComment)

		api.POST("/reminders", reminderController.CreateReminder)
		api.DELETE("/reminders/:reminder_id", reminderController.DeleteReminder)
	}

	// The only bearer-gated endpoint. Everything else scopes rows by the
	// caller-supplied user_id filter.
	protected := r.Group("/api")
	protected.Use(middleware.AuthRequired(deps.Tokens, deps.DB))
	{
		protected.POST("/auth/logout", authController.Logout)
	}
}
