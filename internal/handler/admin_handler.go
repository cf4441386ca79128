package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/sekolah-go-api/internal/dto"
	"github.com/noah-isme/sekolah-go-api/internal/service"
	"github.com/noah-isme/sekolah-go-api/internal/utils"
)

// AdminHandler wires the administrative setup endpoints.
type AdminHandler struct {
	service service.AdminService
	logger  zerolog.Logger
}

// NewAdminHandler constructs the handler.
func NewAdminHandler(service service.AdminService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger.With().Str("component", "admin_handler").Logger(),
	}
}

// Register attaches admin endpoints to the router group.
func (h *AdminHandler) Register(router fiber.Router) {
	router.Get("/users", h.listUsers)
	router.Get("/users/:id", h.getUser)
	router.Post("/students", h.createStudent)
	router.Get("/students", h.listStudents)
	router.Post("/teachers", h.createTeacher)
	router.Post("/classes", h.createClass)
	router.Get("/classes", h.listClasses)
	router.Post("/subjects", h.createSubject)
	router.Get("/subjects", h.listSubjects)
	router.Post("/assignments", h.createAssignment)
}

func (h *AdminHandler) listUsers(c *fiber.Ctx) error {
	users, err := h.service.ListUsers(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}
	return utils.SendSuccess(c, "users retrieved", users)
}

func (h *AdminHandler) getUser(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := h.service.GetUser(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, err.Error())
		}
		return h.internalError(c, err)
	}
	return utils.SendSuccess(c, "user retrieved", user)
}

func (h *AdminHandler) createStudent(c *fiber.Ctx) error {
	var payload dto.StudentCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	student, err := h.service.CreateStudent(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendCreated(c, "student created", student)
}

func (h *AdminHandler) listStudents(c *fiber.Ctx) error {
	students, err := h.service.ListStudents(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}
	return utils.SendSuccess(c, "students retrieved", students)
}

func (h *AdminHandler) createTeacher(c *fiber.Ctx) error {
	var payload dto.TeacherCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	teacher, err := h.service.CreateTeacher(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendCreated(c, "teacher created", teacher)
}

func (h *AdminHandler) createClass(c *fiber.Ctx) error {
	var payload dto.ClassCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	class, err := h.service.CreateClass(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendCreated(c, "class created", class)
}

func (h *AdminHandler) listClasses(c *fiber.Ctx) error {
	classes, err := h.service.ListClasses(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}
	return utils.SendSuccess(c, "classes retrieved", classes)
}

func (h *AdminHandler) createSubject(c *fiber.Ctx) error {
	var payload dto.SubjectCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	subject, err := h.service.CreateSubject(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendCreated(c, "subject created", subject)
}

func (h *AdminHandler) listSubjects(c *fiber.Ctx) error {
	subjects, err := h.service.ListSubjects(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}
	return utils.SendSuccess(c, "subjects retrieved", subjects)
}

func (h *AdminHandler) createAssignment(c *fiber.Ctx) error {
	var payload dto.ClassAssignmentCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	assignment, err := h.service.CreateAssignment(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendCreated(c, "assignment created", assignment)
}

func (h *AdminHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrTeacherNotFound),
		errors.Is(err, service.ErrClassNotFound),
		errors.Is(err, service.ErrSubjectNotFound):
		return utils.SendError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrProfileExists),
		errors.Is(err, service.ErrNameTaken):
		return utils.SendError(c, fiber.StatusConflict, err.Error())
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	default:
		return h.internalError(c, err)
	}
}

func (h *AdminHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
