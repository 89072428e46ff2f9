package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vbncursed/skillscan/api/http/handlers"
)

// Register wires all HTTP routes onto the given Fiber app. Routes added
// after the auth middleware require a valid bearer token; probes and the
// auth endpoints stay public.
func Register(
	app *fiber.App,
	authMW fiber.Handler,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	jobRoles *handlers.JobRoleHandler,
	applicants *handlers.ApplicantsHandler,
	upload *handlers.UploadHandler,
	files *handlers.FilesHandler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	v1.Use(authMW)

	jr := v1.Group("/job-roles")
	jr.Post("/", jobRoles.Create)
	jr.Get("/", jobRoles.List)
	jr.Patch("/:id", jobRoles.Update)
	jr.Delete("/:id", jobRoles.Delete)

	ap := v1.Group("/applicants")
	ap.Post("/", applicants.Create)
	ap.Get("/", applicants.List)
	ap.Get("/:id", applicants.Get)
	ap.Delete("/:id", applicants.Delete)

	v1.Post("/upload-resume", upload.Upload)
	v1.Get("/uploads/:filename", files.Download)
}
