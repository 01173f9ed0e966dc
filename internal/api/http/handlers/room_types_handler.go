package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/hotel-booking-service/internal/api/dto"
	"github.com/spec-kit/hotel-booking-service/internal/auth"
	"github.com/spec-kit/hotel-booking-service/internal/events"
	"github.com/spec-kit/hotel-booking-service/internal/repository"
)

// RoomTypesHandler exposes the room type CRUD endpoints plus the
// activation toggle.
type RoomTypesHandler struct {
	roomTypes  repository.RoomTypeRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewRoomTypesHandler constructs the handler.
func NewRoomTypesHandler(roomTypes repository.RoomTypeRepository, dispatcher events.Dispatcher, logger *zap.Logger) *RoomTypesHandler {
	return &RoomTypesHandler{roomTypes: roomTypes, dispatcher: dispatcher, logger: logger}
}

// GetAll handles GET /GetAllRoomTypes?IsActive=.
func (h *RoomTypesHandler) GetAll(c *fiber.Ctx) error {
	isActive, valid := optionalBoolQuery(c, "IsActive")
	if !valid {
		return badRequest(c, "Invalid Data in the Query String")
	}

	roomTypes, err := h.roomTypes.GetAll(c.UserContext(), isActive)
	if err != nil {
		h.logger.Error("get all room types", zap.Error(err))
		return internalError(c, "Error Occurred", err)
	}
	return ok(c, roomTypes, "Retrieved all Room Types Successfully.")
}

// GetByID handles GET /GetRoomType/{RoomTypeID}.
func (h *RoomTypesHandler) GetByID(c *fiber.Ctx) error {
	id, valid := pathID(c, "RoomTypeID")
	if !valid {
		return badRequest(c, "Invalid Room Type ID")
	}

	roomType, err := h.roomTypes.GetByID(c.UserContext(), id)
	if err != nil {
		h.logger.Error("get room type by id", zap.Int("room_type_id", id), zap.Error(err))
		return internalError(c, "Error fetching Room Type.", err)
	}
	if roomType == nil {
		return notFound(c, "RoomTypeID not found.")
	}
	return ok(c, roomType, "RoomType fetched successfully.")
}

// Create handles POST /AddRoomType.
func (h *RoomTypesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateRoomTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid Data in the Request Body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, "Invalid Data in the Request Body")
	}

	result, err := h.roomTypes.Create(c.UserContext(), req, auth.Actor(c))
	if err != nil {
		h.logger.Error("create room type", zap.Error(err))
		return internalError(c, "Room Type Creation Failed.", err)
	}
	if !result.IsCreated {
		return badRequest(c, result.Message)
	}

	_ = h.dispatcher.Publish(c.UserContext(), events.NewEvent(events.EventEntityCreated, "RoomType", result.RoomTypeID, auth.Actor(c)))
	return ok(c, result, result.Message)
}

// Update handles PUT /UpdateRoomType/{RoomTypeId}.
func (h *RoomTypesHandler) Update(c *fiber.Ctx) error {
	id, valid := pathID(c, "RoomTypeId")
	if !valid {
		return badRequest(c, "Invalid Room Type ID")
	}

	var req dto.UpdateRoomTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid Request Body")
	}
	if id != req.RoomTypeID {
		return badRequest(c, "Mismatched Room Type ID.")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, "Invalid Request Body")
	}

	result, err := h.roomTypes.Update(c.UserContext(), req, auth.Actor(c))
	if err != nil {
		h.logger.Error("update room type", zap.Int("room_type_id", id), zap.Error(err))
		return internalError(c, "Update Room Type Failed.", err)
	}
	if !result.IsUpdated {
		return badRequest(c, result.Message)
	}

	_ = h.dispatcher.Publish(c.UserContext(), events.NewEvent(events.EventEntityUpdated, "RoomType", id, auth.Actor(c)))
	return ok(c, result, result.Message)
}

// Delete handles DELETE /DeleteRoomType/{RoomTypeId}. Room types are
// deactivated, not removed, so repeating a delete still succeeds.
func (h *RoomTypesHandler) Delete(c *fiber.Ctx) error {
	id, valid := pathID(c, "RoomTypeId")
	if !valid {
		return badRequest(c, "Invalid Room Type ID")
	}

	roomType, err := h.roomTypes.GetByID(c.UserContext(), id)
	if err != nil {
		h.logger.Error("delete room type lookup", zap.Int("room_type_id", id), zap.Error(err))
		return internalError(c, "Internal server error", err)
	}
	if roomType == nil {
		return notFound(c, "RoomType not found.")
	}

	result, err := h.roomTypes.Delete(c.UserContext(), id)
	if err != nil {
		h.logger.Error("delete room type", zap.Int("room_type_id", id), zap.Error(err))
		return internalError(c, "Internal server error", err)
	}
	if !result.IsDeleted {
		return badRequest(c, result.Message)
	}

	_ = h.dispatcher.Publish(c.UserContext(), events.NewEvent(events.EventEntityDeleted, "RoomType", id, auth.Actor(c)))
	return ok(c, result, result.Message)
}

// ToggleActive handles POST /ActiveInActive?RoomTypeId=&IsActive=. This
// endpoint returns a bare message body rather than the response envelope.
func (h *RoomTypesHandler) ToggleActive(c *fiber.Ctx) error {
	id, valid := optionalIntQuery(c, "RoomTypeId")
	if !valid || id == nil || *id < 1 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"Message": "Invalid Room Type ID"})
	}
	isActive, valid := optionalBoolQuery(c, "IsActive")
	if !valid || isActive == nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"Message": "Invalid IsActive value"})
	}

	success, message, err := h.roomTypes.ToggleActive(c.UserContext(), *id, *isActive)
	if err != nil {
		h.logger.Error("toggle room type active", zap.Int("room_type_id", *id), zap.Error(err))
		return c.Status(http.StatusInternalServerError).SendString(genericErrorMessage)
	}
	if !success {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"Message": message})
	}

	_ = h.dispatcher.Publish(c.UserContext(), events.NewEvent(events.EventEntityStatusToggled, "RoomType", *id, auth.Actor(c)))
	return c.JSON(fiber.Map{"Message": "RoomType activation status updated successfully."})
}
