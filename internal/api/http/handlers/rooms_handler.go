package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/hotel-booking-service/internal/api/dto"
	"github.com/spec-kit/hotel-booking-service/internal/auth"
	"github.com/spec-kit/hotel-booking-service/internal/events"
	"github.com/spec-kit/hotel-booking-service/internal/repository"
)

// RoomsHandler exposes the room CRUD endpoints.
type RoomsHandler struct {
	rooms      repository.RoomRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewRoomsHandler constructs the handler.
func NewRoomsHandler(rooms repository.RoomRepository, dispatcher events.Dispatcher, logger *zap.Logger) *RoomsHandler {
	return &RoomsHandler{rooms: rooms, dispatcher: dispatcher, logger: logger}
}

// GetAll handles GET /GetAllRooms?RoomTypeID=&Status=.
func (h *RoomsHandler) GetAll(c *fiber.Ctx) error {
	roomTypeID, valid := optionalIntQuery(c, "RoomTypeID")
	if !valid {
		return badRequest(c, "Invalid Data in the Query String")
	}
	filter := dto.RoomListFilter{
		RoomTypeID: roomTypeID,
		Status:     optionalStringQuery(c, "Status"),
	}
	if err := filter.Validate(); err != nil {
		return badRequest(c, "Invalid Data in the Query String")
	}

	rooms, err := h.rooms.GetAll(c.UserContext(), filter)
	if err != nil {
		h.logger.Error("get all rooms", zap.Error(err))
		return internalError(c, "Internal server error", err)
	}
	return ok(c, rooms, "Retrieved all Room Successfully.")
}

// GetByID handles GET /GetRoomById/{id}.
func (h *RoomsHandler) GetByID(c *fiber.Ctx) error {
	id, valid := pathID(c, "id")
	if !valid {
		return badRequest(c, "Invalid Room ID")
	}

	room, err := h.rooms.GetByID(c.UserContext(), id)
	if err != nil {
		h.logger.Error("get room by id", zap.Int("room_id", id), zap.Error(err))
		return internalError(c, "Error fetching Room.", err)
	}
	if room == nil {
		return notFound(c, "Room ID not found")
	}
	return ok(c, room, "Room fetched successfully.")
}

// Create handles POST /CreateRoom.
func (h *RoomsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid Data in the Request Body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, "Invalid Data in the Request Body")
	}

	result, err := h.rooms.Create(c.UserContext(), req, auth.Actor(c))
	if err != nil {
		h.logger.Error("create room", zap.Error(err))
		return internalError(c, "Room Creation Failed.", err)
	}
	if !result.IsCreated {
		return badRequest(c, result.Message)
	}

	_ = h.dispatcher.Publish(c.UserContext(), events.NewEvent(events.EventEntityCreated, "Room", result.RoomID, auth.Actor(c)))
	return ok(c, result, result.Message)
}

// Update handles PUT /UpdatRoom/{id}. The misspelled path is part of the
// public surface and kept for compatibility.
func (h *RoomsHandler) Update(c *fiber.Ctx) error {
	id, valid := pathID(c, "id")
	if !valid {
		return badRequest(c, "Invalid Room ID")
	}

	var req dto.UpdateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid Request Body")
	}
	if id != req.RoomID {
		return badRequest(c, "Mismatched Room ID.")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, "Invalid Request Body")
	}

	result, err := h.rooms.Update(c.UserContext(), req, auth.Actor(c))
	if err != nil {
		h.logger.Error("update room", zap.Int("room_id", id), zap.Error(err))
		return internalError(c, "Update Room Failed.", err)
	}
	if !result.IsUpdated {
		return badRequest(c, result.Message)
	}

	_ = h.dispatcher.Publish(c.UserContext(), events.NewEvent(events.EventEntityUpdated, "Room", id, auth.Actor(c)))
	return ok(c, result, result.Message)
}

// Delete handles DELETE /DeleteRoom/{id}. Rooms are deactivated, not removed.
func (h *RoomsHandler) Delete(c *fiber.Ctx) error {
	id, valid := pathID(c, "id")
	if !valid {
		return badRequest(c, "Invalid Room ID")
	}

	room, err := h.rooms.GetByID(c.UserContext(), id)
	if err != nil {
		h.logger.Error("delete room lookup", zap.Int("room_id", id), zap.Error(err))
		return internalError(c, "Internal server error", err)
	}
	if room == nil {
		return notFound(c, "Room not found.")
	}

	result, err := h.rooms.Delete(c.UserContext(), id)
	if err != nil {
		h.logger.Error("delete room", zap.Int("room_id", id), zap.Error(err))
		return internalError(c, "Internal server error", err)
	}
	if !result.IsDeleted {
		return badRequest(c, result.Message)
	}

	_ = h.dispatcher.Publish(c.UserContext(), events.NewEvent(events.EventEntityDeleted, "Room", id, auth.Actor(c)))
	return ok(c, result, result.Message)
}
