package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/noah-isme/sekolah-go-api/internal/models"
)

func TestMarkDuplicateStudentSubjectDate(t *testing.T) {
	db := setupTestDB(t, &models.Mark{})
	repo := NewRecordRepository(db)

	date := datatypes.Date(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	first := models.Mark{StudentID: 4, SubjectID: 2, TeacherID: 9, Score: 80, Date: date, IsActive: true}
	require.NoError(t, repo.CreateMark(context.Background(), &first))

	duplicate := models.Mark{StudentID: 4, SubjectID: 2, TeacherID: 9, Score: 95, Date: date, IsActive: true}
	err := repo.CreateMark(context.Background(), &duplicate)
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// A different date for the same pair is fine.
	other := models.Mark{StudentID: 4, SubjectID: 2, TeacherID: 9, Score: 95, Date: datatypes.Date(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)), IsActive: true}
	require.NoError(t, repo.CreateMark(context.Background(), &other))
}

func TestAttendanceDuplicateStudentSubjectDate(t *testing.T) {
	db := setupTestDB(t, &models.Attendance{})
	repo := NewRecordRepository(db)

	date := datatypes.Date(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	first := models.Attendance{StudentID: 4, SubjectID: 2, TeacherID: 9, Status: models.AttendancePresent, Date: date, IsActive: true}
	require.NoError(t, repo.CreateAttendance(context.Background(), &first))

	duplicate := models.Attendance{StudentID: 4, SubjectID: 2, TeacherID: 9, Status: models.AttendanceAbsent, Date: date, IsActive: true}
	err := repo.CreateAttendance(context.Background(), &duplicate)
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestListMarksByStudentNewestFirst(t *testing.T) {
	db := setupTestDB(t, &models.Mark{})
	repo := NewRecordRepository(db)

	older := models.Mark{StudentID: 4, SubjectID: 2, TeacherID: 9, Score: 70, Date: datatypes.Date(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)), IsActive: true}
	newer := models.Mark{StudentID: 4, SubjectID: 2, TeacherID: 9, Score: 90, Date: datatypes.Date(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)), IsActive: true}
	stranger := models.Mark{StudentID: 5, SubjectID: 2, TeacherID: 9, Score: 50, Date: datatypes.Date(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)), IsActive: true}
	require.NoError(t, repo.CreateMark(context.Background(), &older))
	require.NoError(t, repo.CreateMark(context.Background(), &newer))
	require.NoError(t, repo.CreateMark(context.Background(), &stranger))

	marks, err := repo.ListMarksByStudent(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, marks, 2)
	require.Equal(t, 90, marks[0].Score)
	require.Equal(t, 70, marks[1].Score)
}

func TestBehaviorAllowsRepeatedEntries(t *testing.T) {
	db := setupTestDB(t, &models.Behavior{})
	repo := NewRecordRepository(db)

	date := datatypes.Date(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	first := models.Behavior{StudentID: 4, TeacherID: 9, Remarks: "talkative", Date: date, IsActive: true}
	second := models.Behavior{StudentID: 4, TeacherID: 9, Remarks: "improved", Date: date, IsActive: true}
	require.NoError(t, repo.CreateBehavior(context.Background(), &first))
	require.NoError(t, repo.CreateBehavior(context.Background(), &second))

	records, err := repo.ListBehaviorByStudent(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, records, 2)
}
