package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hotel-booking-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Amenities *handlers.AmenitiesHandler
	Rooms     *handlers.RoomsHandler
	RoomTypes *handlers.RoomTypesHandler
	Users     *handlers.UsersHandler
	Identity  fiber.Handler
}

// RegisterRoutes wires HTTP routes. Paths mirror the published API surface
// exactly, including the misspelled /UpdatRoom segment consumers already
// depend on.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	if cfg.Identity != nil {
		app.Use(cfg.Identity)
	}

	amenity := app.Group("/api/Amenity")
	amenity.Get("/Fetch", cfg.Amenities.Fetch)
	amenity.Get("/Fetch/:id", cfg.Amenities.FetchByID)
	amenity.Post("/Add", cfg.Amenities.Add)
	amenity.Put("/Update/:id", cfg.Amenities.Update)
	amenity.Delete("/Delete/:id", cfg.Amenities.Delete)
	amenity.Post("/BulkInsert", cfg.Amenities.BulkInsert)
	amenity.Post("/BulkUpdate", cfg.Amenities.BulkUpdate)
	amenity.Put("/BulkUpdateStatus", cfg.Amenities.BulkUpdateStatus)

	room := app.Group("/Room")
	room.Get("/GetAllRooms", cfg.Rooms.GetAll)
	room.Get("/GetRoomById/:id", cfg.Rooms.GetByID)
	room.Post("/CreateRoom", cfg.Rooms.Create)
	room.Put("/UpdatRoom/:id", cfg.Rooms.Update)
	room.Delete("/DeleteRoom/:id", cfg.Rooms.Delete)

	roomType := app.Group("/RoomType")
	roomType.Get("/GetAllRoomTypes", cfg.RoomTypes.GetAll)
	roomType.Get("/GetRoomType/:RoomTypeID", cfg.RoomTypes.GetByID)
	roomType.Post("/AddRoomType", cfg.RoomTypes.Create)
	roomType.Put("/UpdateRoomType/:RoomTypeId", cfg.RoomTypes.Update)
	roomType.Delete("/DeleteRoomType/:RoomTypeId", cfg.RoomTypes.Delete)
	roomType.Post("/ActiveInActive", cfg.RoomTypes.ToggleActive)

	user := app.Group("/User")
	user.Post("/AddUser", cfg.Users.Add)
	user.Post("/AssignRole", cfg.Users.AssignRole)
	user.Get("/GetAllUsers", cfg.Users.GetAll)
	user.Get("/GetUserById/:userId", cfg.Users.GetByID)
	user.Put("/UpdateUser/:userId", cfg.Users.Update)
	user.Delete("/DeleteUser/:userId", cfg.Users.Delete)
	user.Post("/Login", cfg.Users.Login)
	user.Post("/ToggleActive", cfg.Users.ToggleActive)
}
