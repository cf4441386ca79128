package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/sekolah-go-api/internal/dto"
	"github.com/noah-isme/sekolah-go-api/internal/service"
	"github.com/noah-isme/sekolah-go-api/internal/utils"
)

// NotificationHandler exposes publishing and reading notifications.
type NotificationHandler struct {
	notifications service.NotificationService
	logger        zerolog.Logger
}

// NewNotificationHandler constructs the handler.
func NewNotificationHandler(notifications service.NotificationService, logger zerolog.Logger) *NotificationHandler {
	return &NotificationHandler{
		notifications: notifications,
		logger:        logger.With().Str("component", "notification_handler").Logger(),
	}
}

// Register attaches the read endpoints. The create endpoint is registered
// separately so the router can gate it by role.
func (h *NotificationHandler) Register(router fiber.Router) {
	router.Get("/me", h.feed)
	router.Post("/:id/read", h.markRead)
}

// RegisterCreate attaches the publish endpoint with the role gate the router
// passes in.
func (h *NotificationHandler) RegisterCreate(router fiber.Router, middlewares ...fiber.Handler) {
	handlers := append(middlewares, h.create)
	router.Post("/", handlers...)
}

func (h *NotificationHandler) create(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	var payload dto.NotificationCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	notification, err := h.notifications.Create(c.Context(), user, payload)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendCreated(c, "notification published", notification)
}

func (h *NotificationHandler) feed(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	notifications, err := h.notifications.ListVisible(c.Context(), user)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendSuccess(c, "notifications retrieved", notifications)
}

func (h *NotificationHandler) markRead(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	notificationID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	receipt, err := h.notifications.MarkRead(c.Context(), notificationID, user.ID)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendSuccess(c, "notification marked as read", receipt)
}

func (h *NotificationHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotificationForbidden),
		errors.Is(err, service.ErrNotAssignedToClass):
		return utils.SendError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNotificationNotFound),
		errors.Is(err, service.ErrTeacherNotFound):
		return utils.SendError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrMessageEmpty):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
