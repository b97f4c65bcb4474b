package handler

import (
	"errors"

	"github.com/dityarw/auth-service/internal/auth/dto"
	"github.com/dityarw/auth-service/internal/auth/middleware"
	"github.com/dityarw/auth-service/internal/auth/service"
	autherror "github.com/dityarw/auth-service/internal/errors"
	authconstant "github.com/dityarw/auth-service/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	user, err := h.userService.Register(c.UserContext(), input)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	tokenPair, err := h.userService.Login(c.UserContext(), input)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(tokenPair)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	tokens, err := h.userService.Refresh(c.UserContext(), input)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(tokens)
}

// Logout always answers 200: the operation is idempotent and must not leak
// whether the presented token was ever valid.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err == nil && input.RefreshToken != "" {
		_ = h.userService.Logout(c.UserContext(), input.RefreshToken)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "logged out"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": middleware.ReasonNoToken})
	}

	return c.Status(fiber.StatusOK).JSON(identity)
}

func (h *AuthHandler) GetAllUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.Status(fiber.StatusOK).JSON(users)
}

// GetUserSessions lists a user's active refresh sessions. Users may only view
// their own; admins may view anyone's.
func (h *AuthHandler) GetUserSessions(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": middleware.ReasonNoToken})
	}
	if identity.ID != c.Params("id") && identity.Role != authconstant.AdminRole {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "insufficient role"})
	}

	sessions, err := h.userService.GetSessions(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(sessions)
}

func (h *AuthHandler) UpdateUserRole(c *fiber.Ctx) error {
	var input dto.UpdateRoleInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	user, err := h.userService.UpdateUserRole(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *AuthHandler) ForceLogout(c *fiber.Ctx) error {
	if err := h.userService.ForceLogout(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "sessions revoked"})
}

// statusForError maps core error kinds to HTTP status codes. This is the only
// place the taxonomy meets transport.
func statusForError(err error) int {
	switch {
	case errors.Is(err, autherror.ErrInvalidUsername),
		errors.Is(err, autherror.ErrInvalidPassword),
		errors.Is(err, autherror.ErrInvalidEmail),
		errors.Is(err, autherror.ErrInvalidRole),
		errors.Is(err, autherror.ErrUserAlreadyExists):
		return fiber.StatusBadRequest
	case errors.Is(err, autherror.ErrInvalidCredentials),
		errors.Is(err, autherror.ErrRefreshTokenInvalid),
		errors.Is(err, autherror.ErrRefreshTokenExpired),
		errors.Is(err, autherror.ErrRefreshTokenRevoked):
		return fiber.StatusUnauthorized
	case errors.Is(err, autherror.ErrUserNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
