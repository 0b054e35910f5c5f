package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	plan := api.Group("/plan", handler.AuthRequired)
	plan.Get("", handler.GetPlan)
	plan.Put("", handler.PutPlan)
	plan.Get("/day/:day", handler.GetPlanDay)

	days := api.Group("/days", handler.AuthRequired)
	days.Get("", handler.ListLockedDays)
	days.Post("/unlock-all", handler.UnlockAllDays)
	days.Get("/:day", handler.GetDay)
	days.Post("/:day/lock", handler.LockDay)
	days.Post("/:day/unlock", handler.UnlockDay)
	days.Put("/:day/exercises/:exercise/sets/:set", handler.SaveSetDetails)
	days.Delete("/:day/exercises/:exercise/sets/:set", handler.DeleteSetDetails)

	api.Get("/performance", handler.AuthRequired, handler.GetPerformance)
	api.Get("/exercises/match", handler.AuthRequired, handler.MatchExercise)

	creatine := api.Group("/creatine", handler.AuthRequired)
	creatine.Get("/settings", handler.GetCreatineSettings)
	creatine.Put("/settings", handler.SaveCreatineSettings)
	creatine.Put("/location", handler.SaveReminderLocation)
	creatine.Post("/intake", handler.LogCreatineIntake)
	creatine.Get("/intake", handler.ListCreatineIntakes)
	creatine.Post("/evaluate", handler.EvaluateCreatineReminder)

	sessions := api.Group("/sessions", handler.AuthRequired)
	sessions.Post("/start", handler.StartSession)
	sessions.Post("/:id/activity", handler.SessionActivity)
	sessions.Post("/:id/end", handler.EndSession)
	sessions.Get("", handler.ListSessions)
	sessions.Delete("", handler.DeleteSessions)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Get("/server-url", handler.GetServerURL)
	settings.Put("/server-url", handler.PutServerURL)
	settings.Put("/profile", handler.UpdateProfile)

	api.Delete("/account", handler.AuthRequired, handler.DeleteAccount)

	api.Post("/sync", handler.AuthRequired, handler.SyncNow)
}
