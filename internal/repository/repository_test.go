package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/noah-isme/sekolah-go-api/internal/models"
)

// setupTestDB opens a per-test in-memory database. TranslateError mirrors the
// production connection so constraint violations surface as gorm.ErrDuplicatedKey.
func setupTestDB(t *testing.T, entities ...interface{}) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(entities...))
	return db
}

func uintPtr(v uint) *uint { return &v }

var allModels = []interface{}{
	&models.User{},
	&models.Class{},
	&models.Subject{},
	&models.Student{},
	&models.Teacher{},
	&models.ClassAssignment{},
	&models.Mark{},
	&models.Attendance{},
	&models.Behavior{},
	&models.Notification{},
	&models.NotificationRecipient{},
}
