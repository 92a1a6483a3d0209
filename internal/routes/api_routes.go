package routes

import (
	"github.com/go-chi/chi/v5"

	"redline-garage/pitwall/internal/api"
	"redline-garage/pitwall/internal/config"
	"redline-garage/pitwall/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers.
// Reads are public; a token, when present, only personalises them.
// Everything under /me and every mutation requires a signed-in user, and
// mutations are additionally rate limited per client IP.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies, cfg *config.Config) {

	r.Route("/api/v1", func(v1 chi.Router) {

		// Public reads
		v1.Group(func(public chi.Router) {
			public.Use(middleware.OptionalUser(deps.Tokens, deps.Services.User))

			public.Get("/options", api.GetOptionsHandler(deps))
			public.Get("/vehicles", api.ListPublicVehiclesHandler(deps))
			public.Get("/vehicles/{vehicleID}", api.GetVehicleHandler(deps))
			public.Get("/vehicles/{vehicleID}/maintenance", api.GetMaintenanceHandler(deps))
			public.Get("/vehicles/{vehicleID}/service-records", api.ListServiceRecordsHandler(deps))
			public.Get("/vehicles/{vehicleID}/service-records/export", api.ExportServiceRecordsHandler(deps))
			public.Get("/service-records/{recordID}", api.GetServiceRecordHandler(deps))
			public.Get("/vehicles/{vehicleID}/interactions", api.GetInteractionsHandler(deps))
		})

		// Signed-in users
		v1.Group(func(user chi.Router) {
			user.Use(middleware.RequireUser(deps.Tokens, deps.Services.User))

			user.Get("/me", api.GetMeHandler(deps))
			user.Get("/me/vehicles", api.ListMyVehiclesHandler(deps))
			user.Get("/me/garage/stats", api.GarageStatsHandler(deps))
			user.Get("/me/garage/alerts", api.FleetAlertsHandler(deps))
			user.Get("/me/garage/activity", api.RecentActivityHandler(deps))
			user.Get("/me/notifications", api.ListNotificationsHandler(deps))
			user.Get("/me/notifications/unread-count", api.UnreadCountHandler(deps))

			// Mutations
			user.Group(func(write chi.Router) {
				write.Use(middleware.RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

				write.Post("/me/notifications/read", api.MarkNotificationsReadHandler(deps))

				write.Post("/vehicles", api.CreateVehicleHandler(deps))
				write.Put("/vehicles/{vehicleID}", api.UpdateVehicleHandler(deps))
				write.Delete("/vehicles/{vehicleID}", api.DeleteVehicleHandler(deps))
				write.Post("/vehicles/{vehicleID}/photos", api.AddPhotosHandler(deps))
				write.Delete("/photos/{photoID}", api.DeletePhotoHandler(deps))

				write.Post("/vehicles/{vehicleID}/maintenance/seed", api.SeedScheduleHandler(deps))
				write.Post("/vehicles/{vehicleID}/maintenance/setup", api.SetupScheduleHandler(deps))
				write.Patch("/vehicles/{vehicleID}/maintenance", api.UpdateScheduleHandler(deps))
				write.Post("/vehicles/{vehicleID}/maintenance/items", api.AddScheduleItemHandler(deps))
				write.Post("/vehicles/{vehicleID}/maintenance/conservative", api.ConservativePresetHandler(deps))
				write.Post("/vehicles/{vehicleID}/maintenance/reset", api.ResetScheduleHandler(deps))
				write.Patch("/maintenance/{itemID}", api.EditIntervalHandler(deps))
				write.Post("/maintenance/{itemID}/toggle", api.ToggleScheduleItemHandler(deps))
				write.Delete("/maintenance/{itemID}", api.DeleteScheduleItemHandler(deps))

				write.Post("/vehicles/{vehicleID}/service-records", api.AddServiceRecordHandler(deps))
				write.Put("/service-records/{recordID}", api.UpdateServiceRecordHandler(deps))
				write.Delete("/service-records/{recordID}", api.DeleteServiceRecordHandler(deps))

				write.Post("/vehicles/{vehicleID}/like", api.ToggleLikeHandler(deps))
				write.Post("/vehicles/{vehicleID}/comments", api.AddCommentHandler(deps))
				write.Delete("/comments/{commentID}", api.DeleteCommentHandler(deps))
			})
		})
	})
}
