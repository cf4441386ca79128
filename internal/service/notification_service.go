package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/noah-isme/sekolah-go-api/internal/dto"
	"github.com/noah-isme/sekolah-go-api/internal/models"
	"github.com/noah-isme/sekolah-go-api/internal/observability"
	"github.com/noah-isme/sekolah-go-api/internal/repository"
)

// ErrNotificationForbidden is returned when the actor's role may not publish
// notifications at all.
var ErrNotificationForbidden = errors.New("only staff can publish notifications")

// ErrNotAssignedToClass is returned when a teacher targets a class they hold no
// active assignment for. The reason string is preserved for audit.
var ErrNotAssignedToClass = errors.New("not assigned to this class")

// ErrTeacherNotFound is returned when a teacher-role user has no teacher profile.
var ErrTeacherNotFound = errors.New("teacher profile not found")

// ErrNotificationNotFound is returned when the referenced notification does not exist.
var ErrNotificationNotFound = errors.New("notification not found")

// ErrMessageEmpty is returned when sanitization strips the whole message.
var ErrMessageEmpty = errors.New("notification message empty after sanitization")

// NotificationService decides who may publish a notification and what a viewer
// may see.
//
// Targeting policy: admins may target any class or everyone; teachers may target
// everyone, or a class they hold an active assignment for. This is the looser of
// the two historical policies and is applied deliberately.
type NotificationService interface {
	Create(ctx context.Context, actor models.User, payload dto.NotificationCreateRequest) (dto.NotificationResponse, error)
	ListVisible(ctx context.Context, viewer models.User) ([]dto.NotificationResponse, error)
	MarkRead(ctx context.Context, notificationID, userID uint) (dto.NotificationReadResponse, error)
}

type notificationService struct {
	notifications repository.NotificationRepository
	students      repository.StudentRepository
	teachers      repository.TeacherRepository
	assignments   repository.ClassAssignmentRepository
	validator     *validator.Validate
	sanitizer     *bluemonday.Policy
	nats          *nats.Conn
	natsSubject   string
	logger        zerolog.Logger
	tracer        trace.Tracer
}

type notificationEvent struct {
	Notification dto.NotificationResponse `json:"notification"`
	SentAt       time.Time                `json:"sent_at"`
}

// NewNotificationService constructs the notification service. The NATS
// connection is optional; when present, created notifications are published for
// downstream delivery workers.
func NewNotificationService(notifications repository.NotificationRepository, students repository.StudentRepository, teachers repository.TeacherRepository, assignments repository.ClassAssignmentRepository, natsConn *nats.Conn, natsSubject string, validate *validator.Validate, logger zerolog.Logger) NotificationService {
	return &notificationService{
		notifications: notifications,
		students:      students,
		teachers:      teachers,
		assignments:   assignments,
		validator:     validate,
		sanitizer:     bluemonday.StrictPolicy(),
		nats:          natsConn,
		natsSubject:   natsSubject,
		logger:        logger.With().Str("component", "notification_service").Logger(),
		tracer:        otel.Tracer("github.com/noah-isme/sekolah-go-api/internal/service/notification"),
	}
}

func (s *notificationService) Create(ctx context.Context, actor models.User, payload dto.NotificationCreateRequest) (dto.NotificationResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.NotificationResponse{}, err
	}

	cleanMessage := strings.TrimSpace(s.sanitizer.Sanitize(payload.Message))
	if cleanMessage == "" {
		return dto.NotificationResponse{}, ErrMessageEmpty
	}

	attrs := []attribute.KeyValue{
		attribute.Int64("notification.actor_id", int64(actor.ID)),
		attribute.String("notification.actor_role", actor.Role),
		attribute.String("notification.type", payload.Type),
	}
	spanCtx, span := s.tracer.Start(ctx, "notifications.create", trace.WithAttributes(attrs...))
	defer span.End()

	if err := s.authorizeCreate(spanCtx, actor, payload.TargetClassID); err != nil {
		span.RecordError(err)
		return dto.NotificationResponse{}, err
	}

	notification := models.Notification{
		Title:         strings.TrimSpace(payload.Title),
		Message:       cleanMessage,
		Type:          payload.Type,
		TargetClassID: payload.TargetClassID,
		IsActive:      true,
	}

	if err := s.notifications.Create(spanCtx, &notification); err != nil {
		span.RecordError(err)
		return dto.NotificationResponse{}, err
	}

	response := dto.NewNotificationResponse(notification)
	s.publish(response)

	observability.NotificationsPublishedTotal().WithLabelValues(response.Type, targetLabel(response.TargetClassID)).Inc()

	return response, nil
}

// authorizeCreate enforces the targeting policy. Admins pass unconditionally;
// teachers need an active assignment when a class is targeted; every other role
// is rejected.
func (s *notificationService) authorizeCreate(ctx context.Context, actor models.User, targetClassID *uint) error {
	switch actor.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleTeacher:
		if targetClassID == nil {
			return nil
		}

		teacher, err := s.teachers.FindByUserID(ctx, actor.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTeacherNotFound
			}
			return err
		}

		assigned, err := s.assignments.ExistsForClass(ctx, teacher.ID, *targetClassID)
		if err != nil {
			return err
		}
		if !assigned {
			return ErrNotAssignedToClass
		}
		return nil
	default:
		return ErrNotificationForbidden
	}
}

// ListVisible is a read-only projection; it never touches read state.
//
// Students see notifications targeted at their class plus global ones; a student
// without a class (or without a profile yet) sees only global notifications.
// Staff see the unfiltered feed, orphaned class targets included.
func (s *notificationService) ListVisible(ctx context.Context, viewer models.User) ([]dto.NotificationResponse, error) {
	if viewer.Role != models.RoleStudent {
		notifications, err := s.notifications.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return dto.NewNotificationResponseSlice(notifications), nil
	}

	var classID *uint
	student, err := s.students.FindByUserID(ctx, viewer.ID)
	switch {
	case err == nil:
		classID = student.ClassID
	case errors.Is(err, gorm.ErrRecordNotFound):
		// No profile yet: scope narrows to global notifications.
	default:
		return nil, err
	}

	notifications, err := s.notifications.ListForClass(ctx, classID)
	if err != nil {
		return nil, err
	}

	return dto.NewNotificationResponseSlice(notifications), nil
}

func (s *notificationService) MarkRead(ctx context.Context, notificationID, userID uint) (dto.NotificationReadResponse, error) {
	if _, err := s.notifications.FindByID(ctx, notificationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.NotificationReadResponse{}, ErrNotificationNotFound
		}
		return dto.NotificationReadResponse{}, err
	}

	recipient, err := s.notifications.MarkRead(ctx, notificationID, userID)
	if err != nil {
		return dto.NotificationReadResponse{}, err
	}

	return dto.NewNotificationReadResponse(recipient), nil
}

func (s *notificationService) publish(notification dto.NotificationResponse) {
	if s.nats == nil || s.natsSubject == "" {
		return
	}

	event := notificationEvent{
		Notification: notification,
		SentAt:       time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to encode notification event")
		return
	}

	if err := s.nats.Publish(s.natsSubject, payload); err != nil {
		s.logger.Warn().Err(err).Msg("failed to publish notification event")
	}
}

func targetLabel(classID *uint) string {
	if classID == nil {
		return "global"
	}
	return "class"
}
