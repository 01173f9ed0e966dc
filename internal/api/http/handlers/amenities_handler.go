package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/hotel-booking-service/internal/api/dto"
	"github.com/spec-kit/hotel-booking-service/internal/auth"
	"github.com/spec-kit/hotel-booking-service/internal/events"
	"github.com/spec-kit/hotel-booking-service/internal/repository"
)

// AmenitiesHandler exposes the amenity CRUD and bulk endpoints.
type AmenitiesHandler struct {
	amenities  repository.AmenityRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAmenitiesHandler constructs the handler.
func NewAmenitiesHandler(amenities repository.AmenityRepository, dispatcher events.Dispatcher, logger *zap.Logger) *AmenitiesHandler {
	return &AmenitiesHandler{amenities: amenities, dispatcher: dispatcher, logger: logger}
}

// Fetch handles GET /api/Amenity/Fetch?isActive=.
func (h *AmenitiesHandler) Fetch(c *fiber.Ctx) error {
	isActive, valid := optionalBoolQuery(c, "isActive")
	if !valid {
		return badRequest(c, "Invalid Data in the Query String")
	}

	result, err := h.amenities.Fetch(c.UserContext(), isActive)
	if err != nil {
		h.logger.Error("fetch amenities", zap.Error(err))
		return internalError(c, genericErrorMessage, err)
	}
	if !result.IsSuccess {
		return badRequest(c, result.Message)
	}
	return ok(c, result, "Retrieved all Room Amenity Successfully.")
}

// FetchByID handles GET /api/Amenity/Fetch/{id}.
func (h *AmenitiesHandler) FetchByID(c *fiber.Ctx) error {
	id, valid := pathID(c, "id")
	if !valid {
		return badRequest(c, "Invalid Amenity ID")
	}

	amenity, err := h.amenities.FetchByID(c.UserContext(), id)
	if err != nil {
		h.logger.Error("fetch amenity by id", zap.Int("amenity_id", id), zap.Error(err))
		return internalError(c, genericErrorMessage, err)
	}
	if amenity == nil {
		return notFound(c, "Amenity ID not found.")
	}
	return ok(c, amenity, "Retrieved Room Amenity Successfully.")
}

// Add handles POST /api/Amenity/Add.
func (h *AmenitiesHandler) Add(c *fiber.Ctx) error {
	var req dto.AmenityInsertRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid Data in the Request Body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, "Invalid Data in the Request Body")
	}

	result, err := h.amenities.Add(c.UserContext(), req, auth.Actor(c))
	if err != nil {
		h.logger.Error("add amenity", zap.Error(err))
		return internalError(c, "Amenity Creation Failed.", err)
	}
	if !result.IsCreated {
		return badRequest(c, result.Message)
	}

	_ = h.dispatcher.Publish(c.UserContext(), events.NewEvent(events.EventEntityCreated, "Amenity", result.AmenityID, auth.Actor(c)))
	return ok(c, result, result.Message)
}

// Update handles PUT /api/Amenity/Update/{id}.
func (h *AmenitiesHandler) Update(c *fiber.Ctx) error {
	id, valid := pathID(c, "id")
	if !valid {
		return badRequest(c, "Invalid Amenity ID")
	}

	var req dto.AmenityUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid Request Body")
	}
	if id != req.AmenityID {
		return badRequest(c, "Mismatched Amenity ID.")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, "Invalid Request Body")
	}

	result, err := h.amenities.Update(c.UserContext(), req, auth.Actor(c))
	if err != nil {
		h.logger.Error("update amenity", zap.Int("amenity_id", id), zap.Error(err))
		return internalError(c, genericErrorMessage, err)
	}
	if !result.IsUpdated {
		return badRequest(c, result.Message)
	}

	_ = h.dispatcher.Publish(c.UserContext(), events.NewEvent(events.EventEntityUpdated, "Amenity", id, auth.Actor(c)))
	return ok(c, result, result.Message)
}

// Delete handles DELETE /api/Amenity/Delete/{id}. Amenity delete removes the
// row; an existence check runs first so a missing id maps to 404.
func (h *AmenitiesHandler) Delete(c *fiber.Ctx) error {
	id, valid := pathID(c, "id")
	if !valid {
		return badRequest(c, "Invalid Amenity ID")
	}

	amenity, err := h.amenities.FetchByID(c.UserContext(), id)
	if err != nil {
		h.logger.Error("delete amenity lookup", zap.Int("amenity_id", id), zap.Error(err))
		return internalError(c, genericErrorMessage, err)
	}
	if amenity == nil {
		return notFound(c, "Amenity not found.")
	}

	result, err := h.amenities.Delete(c.UserContext(), id)
	if err != nil {
		h.logger.Error("delete amenity", zap.Int("amenity_id", id), zap.Error(err))
		return internalError(c, genericErrorMessage, err)
	}
	if !result.IsDeleted {
		return badRequest(c, result.Message)
	}

	_ = h.dispatcher.Publish(c.UserContext(), events.NewEvent(events.EventEntityDeleted, "Amenity", id, auth.Actor(c)))
	return ok(c, result, result.Message)
}

// BulkInsert handles POST /api/Amenity/BulkInsert.
func (h *AmenitiesHandler) BulkInsert(c *fiber.Ctx) error {
	var reqs []dto.AmenityInsertRequest
	if err := c.BodyParser(&reqs); err != nil {
		return badRequest(c, "Invalid Data in the Request Body")
	}
	for _, req := range reqs {
		if err := req.Validate(); err != nil {
			return badRequest(c, "Invalid Data in the Request Body")
		}
	}

	result, err := h.amenities.BulkInsert(c.UserContext(), reqs, auth.Actor(c))
	if err != nil {
		h.logger.Error("bulk insert amenities", zap.Int("count", len(reqs)), zap.Error(err))
		return internalError(c, genericErrorMessage, err)
	}
	if !result.IsSuccess {
		return badRequest(c, result.Message)
	}

	_ = h.dispatcher.Publish(c.UserContext(), events.NewEvent(events.EventEntityCreated, "Amenity", 0, auth.Actor(c)))
	return ok(c, result, result.Message)
}

// BulkUpdate handles POST /api/Amenity/BulkUpdate.
func (h *AmenitiesHandler) BulkUpdate(c *fiber.Ctx) error {
	var reqs []dto.AmenityUpdateRequest
	if err := c.BodyParser(&reqs); err != nil {
		return badRequest(c, "Invalid Data in the Request Body")
	}
	for _, req := range reqs {
		if err := req.Validate(); err != nil {
			return badRequest(c, "Invalid Data in the Request Body")
		}
	}

	result, err := h.amenities.BulkUpdate(c.UserContext(), reqs)
	if err != nil {
		h.logger.Error("bulk update amenities", zap.Int("count", len(reqs)), zap.Error(err))
		return internalError(c, genericErrorMessage, err)
	}
	if !result.IsSuccess {
		return badRequest(c, result.Message)
	}

	_ = h.dispatcher.Publish(c.UserContext(), events.NewEvent(events.EventEntityUpdated, "Amenity", 0, auth.Actor(c)))
	return ok(c, result, result.Message)
}

// BulkUpdateStatus handles PUT /api/Amenity/BulkUpdateStatus.
func (h *AmenitiesHandler) BulkUpdateStatus(c *fiber.Ctx) error {
	var reqs []dto.AmenityStatusRequest
	if err := c.BodyParser(&reqs); err != nil {
		return badRequest(c, "Invalid Data in the Request Body")
	}
	for _, req := range reqs {
		if err := req.Validate(); err != nil {
			return badRequest(c, "Invalid Data in the Request Body")
		}
	}

	result, err := h.amenities.BulkUpdateStatus(c.UserContext(), reqs)
	if err != nil {
		h.logger.Error("bulk update amenity status", zap.Int("count", len(reqs)), zap.Error(err))
		return internalError(c, genericErrorMessage, err)
	}
	if !result.IsSuccess {
		return badRequest(c, result.Message)
	}

	_ = h.dispatcher.Publish(c.UserContext(), events.NewEvent(events.EventEntityStatusToggled, "Amenity", 0, auth.Actor(c)))
	return ok(c, result, result.Message)
}
