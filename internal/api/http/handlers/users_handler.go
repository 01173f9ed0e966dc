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

// UsersHandler exposes user management, login and the activation toggle.
type UsersHandler struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewUsersHandler constructs the handler.
func NewUsersHandler(users repository.UserRepository, tokens *auth.TokenManager, dispatcher events.Dispatcher, logger *zap.Logger) *UsersHandler {
	return &UsersHandler{users: users, tokens: tokens, dispatcher: dispatcher, logger: logger}
}

// Add handles POST /AddUser.
func (h *UsersHandler) Add(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid Data in Request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, "Invalid Data in Request body")
	}

	result, err := h.users.Add(c.UserContext(), req, auth.Actor(c))
	if err != nil {
		h.logger.Error("add user", zap.String("email", req.Email), zap.Error(err))
		return internalError(c, "Internal Server Error", err)
	}
	if !result.IsCreated {
		return badRequest(c, result.Message)
	}

	_ = h.dispatcher.Publish(c.UserContext(), events.NewEvent(events.EventEntityCreated, "User", result.UserID, auth.Actor(c)))
	return ok(c, result, result.Message)
}

// AssignRole handles POST /AssignRole. Repeated assignment replaces the
// user's role; last write wins.
func (h *UsersHandler) AssignRole(c *fiber.Ctx) error {
	var req dto.UserRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid Data in Request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, "Invalid Data in Request body")
	}

	result, err := h.users.AssignRole(c.UserContext(), req)
	if err != nil {
		h.logger.Error("assign role", zap.Int("user_id", req.UserID), zap.Int("role_id", req.RoleID), zap.Error(err))
		return internalError(c, "Role Assigned Failed.", err)
	}
	if !result.IsAssigned {
		return badRequest(c, result.Message)
	}

	_ = h.dispatcher.Publish(c.UserContext(), events.NewEvent(events.EventRoleAssigned, "User", req.UserID, auth.Actor(c)))
	return ok(c, result, result.Message)
}

// GetAll handles GET /GetAllUsers?isActive=.
func (h *UsersHandler) GetAll(c *fiber.Ctx) error {
	isActive, valid := optionalBoolQuery(c, "isActive")
	if !valid {
		return badRequest(c, "Invalid Data in the Query String")
	}

	users, err := h.users.ListAll(c.UserContext(), isActive)
	if err != nil {
		h.logger.Error("get all users", zap.Error(err))
		return internalError(c, "Internal Server Error", err)
	}
	return ok(c, users, "Retrieved all Users Successfully.")
}

// GetByID handles GET /GetUserById/{userId}.
func (h *UsersHandler) GetByID(c *fiber.Ctx) error {
	id, valid := pathID(c, "userId")
	if !valid {
		return badRequest(c, "Invalid User ID")
	}

	user, err := h.users.GetByID(c.UserContext(), id)
	if err != nil {
		h.logger.Error("get user by id", zap.Int("user_id", id), zap.Error(err))
		return internalError(c, "Internal Server Error", err)
	}
	if user == nil {
		return notFound(c, "User Not Found")
	}
	return ok(c, user, "Retrieved User Successfully.")
}

// Update handles PUT /UpdateUser/{userId}.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	id, valid := pathID(c, "userId")
	if !valid {
		return badRequest(c, "Invalid User ID")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid Request Body")
	}
	if id != req.UserID {
		return badRequest(c, "Mismatch userId")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, "Invalid Request Body")
	}

	result, err := h.users.Update(c.UserContext(), req, auth.Actor(c))
	if err != nil {
		h.logger.Error("update user", zap.Int("user_id", id), zap.Error(err))
		return internalError(c, "Internal Server Error", err)
	}
	if !result.IsUpdated {
		return badRequest(c, result.Message)
	}

	_ = h.dispatcher.Publish(c.UserContext(), events.NewEvent(events.EventEntityUpdated, "User", id, auth.Actor(c)))
	return ok(c, result, result.Message)
}

// Delete handles DELETE /DeleteUser/{userId}. Users are deactivated, not
// removed, so repeating a delete still succeeds.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	id, valid := pathID(c, "userId")
	if !valid {
		return badRequest(c, "Invalid User ID")
	}

	user, err := h.users.GetByID(c.UserContext(), id)
	if err != nil {
		h.logger.Error("delete user lookup", zap.Int("user_id", id), zap.Error(err))
		return internalError(c, "Internal Server Error", err)
	}
	if user == nil {
		return notFound(c, "User Not Found")
	}

	result, err := h.users.Delete(c.UserContext(), id)
	if err != nil {
		h.logger.Error("delete user", zap.Int("user_id", id), zap.Error(err))
		return internalError(c, "Internal Server Error", err)
	}
	if !result.IsDeleted {
		return badRequest(c, result.Message)
	}

	_ = h.dispatcher.Publish(c.UserContext(), events.NewEvent(events.EventEntityDeleted, "User", id, auth.Actor(c)))
	return ok(c, result, result.Message)
}

// Login handles POST /Login. On success the response carries an identity
// token the caller can present on later write requests.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid Data in the Request Body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, "Invalid Data in the Request Body")
	}

	result, err := h.users.Login(c.UserContext(), req)
	if err != nil {
		h.logger.Error("login user", zap.String("email", req.Email), zap.Error(err))
		return internalError(c, "Login failed", err)
	}
	if !result.IsLogin {
		return badRequest(c, result.Message)
	}

	token, _, err := h.tokens.GenerateToken(result.UserID, req.Email)
	if err != nil {
		h.logger.Error("issue token", zap.Int("user_id", result.UserID), zap.Error(err))
		return internalError(c, "Login failed", err)
	}
	result.Token = token
	return ok(c, result, result.Message)
}

// ToggleActive handles POST /ToggleActive?userId=&isActive=. This endpoint
// returns a bare message body rather than the response envelope.
func (h *UsersHandler) ToggleActive(c *fiber.Ctx) error {
	id, valid := optionalIntQuery(c, "userId")
	if !valid || id == nil || *id < 1 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"Message": "Invalid User ID"})
	}
	isActive, valid := optionalBoolQuery(c, "isActive")
	if !valid || isActive == nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"Message": "Invalid isActive value"})
	}

	success, message, err := h.users.ToggleActive(c.UserContext(), *id, *isActive)
	if err != nil {
		h.logger.Error("toggle user active", zap.Int("user_id", *id), zap.Error(err))
		return c.Status(http.StatusInternalServerError).SendString(genericErrorMessage)
	}
	if !success {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"Message": message})
	}

	_ = h.dispatcher.Publish(c.UserContext(), events.NewEvent(events.EventEntityStatusToggled, "User", *id, auth.Actor(c)))
	return c.JSON(fiber.Map{"Message": "User activation status updated successfully."})
}
