package service

import (
	"context"
	"io"
	"sort"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/sekolah-go-api/internal/models"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

type userRepoStub struct {
	users     map[uint]models.User
	createErr error
	nextID    uint
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{users: make(map[uint]models.User), nextID: 1}
}

func (s *userRepoStub) Create(_ context.Context, user *models.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = s.nextID
	s.nextID++
	s.users[user.ID] = *user
	return nil
}

func (s *userRepoStub) FindByID(_ context.Context, id uint) (models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (s *userRepoStub) FindByEmail(_ context.Context, email string) (models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (s *userRepoStub) List(_ context.Context) ([]models.User, error) {
	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	return users, nil
}

type studentRepoStub struct {
	byUserID map[uint]models.Student
	byID     map[uint]models.Student
	findErr  error
}

func newStudentRepoStub(students ...models.Student) *studentRepoStub {
	stub := &studentRepoStub{
		byUserID: make(map[uint]models.Student),
		byID:     make(map[uint]models.Student),
	}
	for _, student := range students {
		stub.byUserID[student.UserID] = student
		stub.byID[student.ID] = student
	}
	return stub
}

func (s *studentRepoStub) Create(_ context.Context, student *models.Student) error {
	if _, exists := s.byUserID[student.UserID]; exists {
		return gorm.ErrDuplicatedKey
	}
	s.byUserID[student.UserID] = *student
	s.byID[student.ID] = *student
	return nil
}

func (s *studentRepoStub) FindByID(_ context.Context, id uint) (models.Student, error) {
	if s.findErr != nil {
		return models.Student{}, s.findErr
	}
	student, ok := s.byID[id]
	if !ok {
		return models.Student{}, gorm.ErrRecordNotFound
	}
	return student, nil
}

func (s *studentRepoStub) FindByUserID(_ context.Context, userID uint) (models.Student, error) {
	student, ok := s.byUserID[userID]
	if !ok {
		return models.Student{}, gorm.ErrRecordNotFound
	}
	return student, nil
}

func (s *studentRepoStub) List(_ context.Context) ([]models.Student, error) {
	students := make([]models.Student, 0, len(s.byID))
	for _, student := range s.byID {
		students = append(students, student)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })
	return students, nil
}

func (s *studentRepoStub) ListByClass(_ context.Context, classID uint) ([]models.Student, error) {
	var students []models.Student
	for _, student := range s.byID {
		if student.ClassID != nil && *student.ClassID == classID {
			students = append(students, student)
		}
	}
	return students, nil
}

type teacherRepoStub struct {
	byUserID map[uint]models.Teacher
	byID     map[uint]models.Teacher
}

func newTeacherRepoStub(teachers ...models.Teacher) *teacherRepoStub {
	stub := &teacherRepoStub{
		byUserID: make(map[uint]models.Teacher),
		byID:     make(map[uint]models.Teacher),
	}
	for _, teacher := range teachers {
		stub.byUserID[teacher.UserID] = teacher
		stub.byID[teacher.ID] = teacher
	}
	return stub
}

func (s *teacherRepoStub) Create(_ context.Context, teacher *models.Teacher) error {
	if _, exists := s.byUserID[teacher.UserID]; exists {
		return gorm.ErrDuplicatedKey
	}
	s.byUserID[teacher.UserID] = *teacher
	s.byID[teacher.ID] = *teacher
	return nil
}

func (s *teacherRepoStub) FindByID(_ context.Context, id uint) (models.Teacher, error) {
	teacher, ok := s.byID[id]
	if !ok {
		return models.Teacher{}, gorm.ErrRecordNotFound
	}
	return teacher, nil
}

func (s *teacherRepoStub) FindByUserID(_ context.Context, userID uint) (models.Teacher, error) {
	teacher, ok := s.byUserID[userID]
	if !ok {
		return models.Teacher{}, gorm.ErrRecordNotFound
	}
	return teacher, nil
}

type classRepoStub struct {
	classes map[uint]models.Class
	nextID  uint
}

func newClassRepoStub(classes ...models.Class) *classRepoStub {
	stub := &classRepoStub{classes: make(map[uint]models.Class), nextID: 1}
	for _, class := range classes {
		stub.classes[class.ID] = class
		if class.ID >= stub.nextID {
			stub.nextID = class.ID + 1
		}
	}
	return stub
}

func (s *classRepoStub) Create(_ context.Context, class *models.Class) error {
	for _, existing := range s.classes {
		if existing.Name == class.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	class.ID = s.nextID
	s.nextID++
	s.classes[class.ID] = *class
	return nil
}

func (s *classRepoStub) FindByID(_ context.Context, id uint) (models.Class, error) {
	class, ok := s.classes[id]
	if !ok {
		return models.Class{}, gorm.ErrRecordNotFound
	}
	return class, nil
}

func (s *classRepoStub) List(_ context.Context) ([]models.Class, error) {
	classes := make([]models.Class, 0, len(s.classes))
	for _, class := range s.classes {
		classes = append(classes, class)
	}
	return classes, nil
}

type subjectRepoStub struct {
	subjects map[uint]models.Subject
	nextID   uint
}

func newSubjectRepoStub(subjects ...models.Subject) *subjectRepoStub {
	stub := &subjectRepoStub{subjects: make(map[uint]models.Subject), nextID: 1}
	for _, subject := range subjects {
		stub.subjects[subject.ID] = subject
		if subject.ID >= stub.nextID {
			stub.nextID = subject.ID + 1
		}
	}
	return stub
}

func (s *subjectRepoStub) Create(_ context.Context, subject *models.Subject) error {
	for _, existing := range s.subjects {
		if existing.Name == subject.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	subject.ID = s.nextID
	s.nextID++
	s.subjects[subject.ID] = *subject
	return nil
}

func (s *subjectRepoStub) List(_ context.Context) ([]models.Subject, error) {
	subjects := make([]models.Subject, 0, len(s.subjects))
	for _, subject := range s.subjects {
		subjects = append(subjects, subject)
	}
	return subjects, nil
}

func (s *subjectRepoStub) FindByIDs(_ context.Context, ids []uint) ([]models.Subject, error) {
	var out []models.Subject
	for _, id := range ids {
		if subject, ok := s.subjects[id]; ok {
			out = append(out, subject)
		}
	}
	return out, nil
}

type assignmentRepoStub struct {
	assignments []models.ClassAssignment
}

func (s *assignmentRepoStub) Create(_ context.Context, assignment *models.ClassAssignment) error {
	s.assignments = append(s.assignments, *assignment)
	return nil
}

func (s *assignmentRepoStub) ListByTeacher(_ context.Context, teacherID uint) ([]models.ClassAssignment, error) {
	var out []models.ClassAssignment
	for _, assignment := range s.assignments {
		if assignment.TeacherID == teacherID && assignment.IsActive {
			out = append(out, assignment)
		}
	}
	return out, nil
}

func (s *assignmentRepoStub) ExistsForClass(_ context.Context, teacherID, classID uint) (bool, error) {
	for _, assignment := range s.assignments {
		if assignment.TeacherID == teacherID && assignment.ClassID == classID && assignment.IsActive {
			return true, nil
		}
	}
	return false, nil
}

func (s *assignmentRepoStub) ExistsForClassSubject(_ context.Context, teacherID, classID, subjectID uint) (bool, error) {
	for _, assignment := range s.assignments {
		if assignment.TeacherID == teacherID && assignment.ClassID == classID && assignment.SubjectID == subjectID && assignment.IsActive {
			return true, nil
		}
	}
	return false, nil
}

type recordRepoStub struct {
	marks      []models.Mark
	attendance []models.Attendance
	behavior   []models.Behavior

	marksErr      error
	attendanceErr error
	behaviorErr   error
	createMarkErr error
}

func (s *recordRepoStub) CreateMark(_ context.Context, mark *models.Mark) error {
	if s.createMarkErr != nil {
		return s.createMarkErr
	}
	mark.ID = uint(len(s.marks) + 1)
	s.marks = append(s.marks, *mark)
	return nil
}

func (s *recordRepoStub) ListMarksByStudent(_ context.Context, studentID uint) ([]models.Mark, error) {
	if s.marksErr != nil {
		return nil, s.marksErr
	}
	var out []models.Mark
	for _, mark := range s.marks {
		if mark.StudentID == studentID {
			out = append(out, mark)
		}
	}
	return out, nil
}

func (s *recordRepoStub) CreateAttendance(_ context.Context, attendance *models.Attendance) error {
	attendance.ID = uint(len(s.attendance) + 1)
	s.attendance = append(s.attendance, *attendance)
	return nil
}

func (s *recordRepoStub) ListAttendanceByStudent(_ context.Context, studentID uint) ([]models.Attendance, error) {
	if s.attendanceErr != nil {
		return nil, s.attendanceErr
	}
	var out []models.Attendance
	for _, record := range s.attendance {
		if record.StudentID == studentID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (s *recordRepoStub) CreateBehavior(_ context.Context, behavior *models.Behavior) error {
	behavior.ID = uint(len(s.behavior) + 1)
	s.behavior = append(s.behavior, *behavior)
	return nil
}

func (s *recordRepoStub) ListBehaviorByStudent(_ context.Context, studentID uint) ([]models.Behavior, error) {
	if s.behaviorErr != nil {
		return nil, s.behaviorErr
	}
	var out []models.Behavior
	for _, record := range s.behavior {
		if record.StudentID == studentID {
			out = append(out, record)
		}
	}
	return out, nil
}

type notificationRepoStub struct {
	notifications []models.Notification
	recipients    []models.NotificationRecipient
	listErr       error
}

func (s *notificationRepoStub) Create(_ context.Context, notification *models.Notification) error {
	notification.ID = uint(len(s.notifications) + 1)
	s.notifications = append(s.notifications, *notification)
	return nil
}

func (s *notificationRepoStub) FindByID(_ context.Context, id uint) (models.Notification, error) {
	for _, notification := range s.notifications {
		if notification.ID == id {
			return notification, nil
		}
	}
	return models.Notification{}, gorm.ErrRecordNotFound
}

func (s *notificationRepoStub) ListAll(_ context.Context) ([]models.Notification, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.notifications, nil
}

func (s *notificationRepoStub) ListForClass(_ context.Context, classID *uint) ([]models.Notification, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []models.Notification
	for _, notification := range s.notifications {
		if notification.TargetClassID == nil {
			out = append(out, notification)
			continue
		}
		if classID != nil && *notification.TargetClassID == *classID {
			out = append(out, notification)
		}
	}
	return out, nil
}

func (s *notificationRepoStub) MarkRead(_ context.Context, notificationID, userID uint) (models.NotificationRecipient, error) {
	for i, recipient := range s.recipients {
		if recipient.NotificationID == notificationID && recipient.UserID == userID {
			s.recipients[i].IsRead = true
			return s.recipients[i], nil
		}
	}
	recipient := models.NotificationRecipient{
		ID:             uint(len(s.recipients) + 1),
		NotificationID: notificationID,
		UserID:         userID,
		IsRead:         true,
		IsActive:       true,
	}
	s.recipients = append(s.recipients, recipient)
	return recipient, nil
}
