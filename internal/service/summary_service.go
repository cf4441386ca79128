package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/noah-isme/sekolah-go-api/internal/dto"
	"github.com/noah-isme/sekolah-go-api/internal/models"
	"github.com/noah-isme/sekolah-go-api/internal/observability"
	"github.com/noah-isme/sekolah-go-api/internal/repository"
)

// ErrStudentNotFound is returned when the requesting user has no student profile.
var ErrStudentNotFound = errors.New("student profile not found")

// SummaryService assembles the aggregated snapshot for one student.
//
// The five sub-reads are independent and side-effect-free, so they run
// concurrently; the first failure cancels the rest and aborts the whole
// aggregation. The snapshot is not transactional: concurrent writers may be
// observed at different points across the five reads. That trade-off is
// deliberate (latency over snapshot isolation).
type SummaryService interface {
	GetSummary(ctx context.Context, user models.User) (dto.StudentSummaryResponse, error)
}

type summaryService struct {
	students      repository.StudentRepository
	records       repository.RecordRepository
	notifications NotificationService
	cache         *redis.Client
	cacheTTL      time.Duration
	logger        zerolog.Logger
}

// NewSummaryService builds the summary aggregator. The cache client is optional.
func NewSummaryService(students repository.StudentRepository, records repository.RecordRepository, notifications NotificationService, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) SummaryService {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}

	return &summaryService{
		students:      students,
		records:       records,
		notifications: notifications,
		cache:         cache,
		cacheTTL:      ttl,
		logger:        logger.With().Str("component", "summary_service").Logger(),
	}
}

func (s *summaryService) GetSummary(ctx context.Context, user models.User) (dto.StudentSummaryResponse, error) {
	start := time.Now()
	defer func() {
		observability.SummaryLatency().Observe(time.Since(start).Seconds())
	}()

	// Profile existence is checked before any fan-out happens.
	student, err := s.students.FindByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StudentSummaryResponse{}, ErrStudentNotFound
		}
		return dto.StudentSummaryResponse{}, err
	}

	cacheKey := fmt.Sprintf("summary:student:%d", student.ID)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var response dto.StudentSummaryResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				s.logger.Debug().Uint("student_id", student.ID).Msg("summary cache hit")
				return response, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn().Err(err).Msg("failed to read summary cache")
		}
	}

	var (
		profile       models.Student
		marks         []models.Mark
		attendance    []models.Attendance
		behavior      []models.Behavior
		notifications []dto.NotificationResponse
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		profile, err = s.students.FindByID(gctx, student.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Profile deleted between the precondition check and the fetch.
			return ErrStudentNotFound
		}
		return err
	})

	g.Go(func() error {
		var err error
		marks, err = s.records.ListMarksByStudent(gctx, student.ID)
		return err
	})

	g.Go(func() error {
		var err error
		attendance, err = s.records.ListAttendanceByStudent(gctx, student.ID)
		return err
	})

	g.Go(func() error {
		var err error
		behavior, err = s.records.ListBehaviorByStudent(gctx, student.ID)
		return err
	})

	g.Go(func() error {
		var err error
		notifications, err = s.notifications.ListVisible(gctx, user)
		return err
	})

	if err := g.Wait(); err != nil {
		return dto.StudentSummaryResponse{}, err
	}

	response := dto.StudentSummaryResponse{
		Profile:       dto.NewStudentResponse(profile),
		Marks:         dto.NewMarkResponseSlice(marks),
		Attendance:    dto.NewAttendanceResponseSlice(attendance),
		Behavior:      dto.NewBehaviorResponseSlice(behavior),
		Notifications: notifications,
	}

	if s.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store summary cache")
			}
		}
	}

	return response, nil
}
