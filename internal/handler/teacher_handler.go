package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/sekolah-go-api/internal/dto"
	"github.com/noah-isme/sekolah-go-api/internal/service"
	"github.com/noah-isme/sekolah-go-api/internal/utils"
)

// TeacherHandler wires the endpoints used by logged-in teachers: their own
// profile and assignments, class rosters, and record entry.
type TeacherHandler struct {
	teachers      service.TeacherService
	records       service.RecordService
	notifications service.NotificationService
	logger        zerolog.Logger
}

// NewTeacherHandler constructs the handler.
func NewTeacherHandler(teachers service.TeacherService, records service.RecordService, notifications service.NotificationService, logger zerolog.Logger) *TeacherHandler {
	return &TeacherHandler{
		teachers:      teachers,
		records:       records,
		notifications: notifications,
		logger:        logger.With().Str("component", "teacher_handler").Logger(),
	}
}

// Register attaches teacher endpoints to the router group.
func (h *TeacherHandler) Register(router fiber.Router) {
	router.Get("/me", h.profile)
	router.Get("/assignments", h.assignments)
	router.Get("/classes/:id/students", h.classRoster)
	router.Post("/marks", h.addMark)
	router.Post("/attendance", h.recordAttendance)
	router.Post("/behavior", h.addBehavior)
	router.Get("/notifications", h.notificationFeed)
}

func (h *TeacherHandler) profile(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	profile, err := h.teachers.Profile(c.Context(), user)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendSuccess(c, "profile retrieved", profile)
}

func (h *TeacherHandler) assignments(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	assignments, err := h.teachers.Assignments(c.Context(), user)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendSuccess(c, "assignments retrieved", assignments)
}

func (h *TeacherHandler) classRoster(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	classID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	students, err := h.teachers.ClassRoster(c.Context(), user, classID)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendSuccess(c, "students retrieved", students)
}

func (h *TeacherHandler) addMark(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	var payload dto.MarkCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	mark, err := h.records.AddMark(c.Context(), user, payload)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendCreated(c, "mark recorded", mark)
}

func (h *TeacherHandler) recordAttendance(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	var payload dto.AttendanceCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	attendance, err := h.records.RecordAttendance(c.Context(), user, payload)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendCreated(c, "attendance recorded", attendance)
}

func (h *TeacherHandler) addBehavior(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	var payload dto.BehaviorCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	behavior, err := h.records.AddBehavior(c.Context(), user, payload)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendCreated(c, "behavior recorded", behavior)
}

func (h *TeacherHandler) notificationFeed(c *fiber.Ctx) error {
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

func (h *TeacherHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotAssignedToClass):
		return utils.SendError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrTeacherNotFound),
		errors.Is(err, service.ErrStudentNotFound):
		return utils.SendError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDuplicateRecord):
		return utils.SendError(c, fiber.StatusConflict, err.Error())
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	default:
		return h.internalError(c, err)
	}
}

func (h *TeacherHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
