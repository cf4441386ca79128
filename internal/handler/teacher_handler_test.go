package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sekolah-go-api/internal/dto"
	"github.com/noah-isme/sekolah-go-api/internal/handler"
	"github.com/noah-isme/sekolah-go-api/internal/models"
	"github.com/noah-isme/sekolah-go-api/internal/service"
)

type mockTeacherService struct {
	profile     dto.TeacherResponse
	assignments []dto.ClassAssignmentResponse
	roster      []dto.StudentResponse
	err         error
}

func (m *mockTeacherService) Profile(context.Context, models.User) (dto.TeacherResponse, error) {
	if m.err != nil {
		return dto.TeacherResponse{}, m.err
	}
	return m.profile, nil
}

func (m *mockTeacherService) Assignments(context.Context, models.User) ([]dto.ClassAssignmentResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.assignments, nil
}

func (m *mockTeacherService) ClassRoster(context.Context, models.User, uint) ([]dto.StudentResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.roster, nil
}

type mockRecordService struct {
	mark       dto.MarkResponse
	attendance dto.AttendanceResponse
	behavior   dto.BehaviorResponse
	err        error
}

func (m *mockRecordService) AddMark(context.Context, models.User, dto.MarkCreateRequest) (dto.MarkResponse, error) {
	if m.err != nil {
		return dto.MarkResponse{}, m.err
	}
	return m.mark, nil
}

func (m *mockRecordService) RecordAttendance(context.Context, models.User, dto.AttendanceCreateRequest) (dto.AttendanceResponse, error) {
	if m.err != nil {
		return dto.AttendanceResponse{}, m.err
	}
	return m.attendance, nil
}

func (m *mockRecordService) AddBehavior(context.Context, models.User, dto.BehaviorCreateRequest) (dto.BehaviorResponse, error) {
	if m.err != nil {
		return dto.BehaviorResponse{}, m.err
	}
	return m.behavior, nil
}

func newTeacherApp(teachers *mockTeacherService, records *mockRecordService) *fiber.App {
	app := fiber.New()
	group := app.Group("/api/v1/teachers", func(c *fiber.Ctx) error {
		c.Locals("user", models.User{ID: 5, Role: models.RoleTeacher, IsActive: true})
		c.Locals("user_id", uint(5))
		c.Locals("user_role", models.RoleTeacher)
		return c.Next()
	})

	handler.NewTeacherHandler(teachers, records, &mockNotificationService{}, zerolog.New(io.Discard)).Register(group)
	return app
}

func TestTeacherHandlerAddMark(t *testing.T) {
	records := &mockRecordService{mark: dto.MarkResponse{ID: 1, StudentID: 4, Score: 91}}
	app := newTeacherApp(&mockTeacherService{}, records)

	resp := postJSON(t, app, "/api/v1/teachers/marks", dto.MarkCreateRequest{StudentID: 4, SubjectID: 2, Score: 91})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body struct {
		Data dto.MarkResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, 91, body.Data.Score)
}

func TestTeacherHandlerRecordErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not assigned", service.ErrNotAssignedToClass, fiber.StatusForbidden},
		{"no teacher profile", service.ErrTeacherNotFound, fiber.StatusNotFound},
		{"unknown student", service.ErrStudentNotFound, fiber.StatusNotFound},
		{"duplicate", service.ErrDuplicateRecord, fiber.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTeacherApp(&mockTeacherService{}, &mockRecordService{err: tc.err})

			resp := postJSON(t, app, "/api/v1/teachers/marks", dto.MarkCreateRequest{StudentID: 4, SubjectID: 2, Score: 50})
			require.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestTeacherHandlerClassRoster(t *testing.T) {
	teachers := &mockTeacherService{roster: []dto.StudentResponse{{ID: 4}, {ID: 5}}}
	app := newTeacherApp(teachers, &mockRecordService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/teachers/classes/3/students", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []dto.StudentResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 2)
}

func TestTeacherHandlerClassRosterForbidden(t *testing.T) {
	teachers := &mockTeacherService{err: service.ErrNotAssignedToClass}
	app := newTeacherApp(teachers, &mockRecordService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/teachers/classes/8/students", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "not assigned to this class", body.Message)
}

func TestTeacherHandlerBadClassID(t *testing.T) {
	app := newTeacherApp(&mockTeacherService{}, &mockRecordService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/teachers/classes/abc/students", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
