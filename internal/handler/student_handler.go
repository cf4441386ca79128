package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/sekolah-go-api/internal/service"
	"github.com/noah-isme/sekolah-go-api/internal/utils"
)

// StudentHandler wires the self-view endpoints of a logged-in student.
type StudentHandler struct {
	students      service.StudentService
	notifications service.NotificationService
	summary       service.SummaryService
	logger        zerolog.Logger
}

// NewStudentHandler constructs the handler.
func NewStudentHandler(students service.StudentService, notifications service.NotificationService, summary service.SummaryService, logger zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		students:      students,
		notifications: notifications,
		summary:       summary,
		logger:        logger.With().Str("component", "student_handler").Logger(),
	}
}

// Register attaches student endpoints to the router group.
func (h *StudentHandler) Register(router fiber.Router) {
	router.Get("/me", h.profile)
	router.Get("/marks", h.marks)
	router.Get("/attendance", h.attendance)
	router.Get("/behavior", h.behavior)
	router.Get("/notifications", h.notificationFeed)
	router.Get("/summary", h.summarize)
}

func (h *StudentHandler) profile(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	profile, err := h.students.Profile(c.Context(), user)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendSuccess(c, "profile retrieved", profile)
}

func (h *StudentHandler) marks(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	marks, err := h.students.Marks(c.Context(), user)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendSuccess(c, "marks retrieved", marks)
}

func (h *StudentHandler) attendance(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	records, err := h.students.Attendance(c.Context(), user)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendSuccess(c, "attendance retrieved", records)
}

func (h *StudentHandler) behavior(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	records, err := h.students.Behavior(c.Context(), user)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendSuccess(c, "behavior retrieved", records)
}

func (h *StudentHandler) notificationFeed(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	notifications, err := h.notifications.ListVisible(c.Context(), user)
	if err != nil {
		return h.internalError(c, err)
	}
	return utils.SendSuccess(c, "notifications retrieved", notifications)
}

func (h *StudentHandler) summarize(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	summary, err := h.summary.GetSummary(c.Context(), user)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendSuccess(c, "summary retrieved", summary)
}

func (h *StudentHandler) handleError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrStudentNotFound) {
		return utils.SendError(c, fiber.StatusNotFound, err.Error())
	}
	return h.internalError(c, err)
}

func (h *StudentHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
