package identity_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/staff-records-api/internal/config"
	"github.com/staff-records-api/internal/domain"
	"github.com/staff-records-api/internal/identity"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDirectory(t *testing.T) (identity.Directory, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&domain.Department{},
		&domain.JobTitle{},
		&domain.Role{},
		&domain.UserRecord{},
	)
	require.NoError(t, err)

	return identity.NewDirectory(db, config.DefaultRules()), db
}

func seedReferences(t *testing.T, db *gorm.DB) (uuid.UUID, uuid.UUID) {
	t.Helper()

	dept := domain.Department{Name: "Engineering"}
	require.NoError(t, db.Create(&dept).Error)

	title := domain.JobTitle{Name: "Engineer"}
	require.NoError(t, db.Create(&title).Error)

	return dept.ID, title.ID
}

func newAccount(deptID, titleID uuid.UUID) *domain.UserRecord {
	return &domain.UserRecord{
		FirstName:    "Ana",
		LastName:     "Lee",
		Username:     "ana.lee",
		Email:        "ana.lee@example.com",
		Salary:       decimal.NewFromInt(1000),
		DepartmentID: deptID,
		JobTitleID:   titleID,
	}
}

func TestCreateAccount(t *testing.T) {
	dir, db := setupDirectory(t)
	deptID, titleID := seedReferences(t, db)

	user := newAccount(deptID, titleID)
	require.NoError(t, dir.CreateAccount(context.Background(), user, "secret1"))
	require.NotEqual(t, uuid.Nil, user.ID)

	// пароль хранится как bcrypt-хэш
	require.NotEqual(t, "secret1", user.PasswordHash)
	require.True(t, dir.CheckPassword(user, "secret1"))
	require.False(t, dir.CheckPassword(user, "wrong"))

	found, err := dir.FindByEmail(context.Background(), "ana.lee@example.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, found.ID)
}

func TestCreateAccount_ShortPassword(t *testing.T) {
	dir, db := setupDirectory(t)
	deptID, titleID := seedReferences(t, db)

	err := dir.CreateAccount(context.Background(), newAccount(deptID, titleID), "123")
	require.ErrorIs(t, err, domain.ErrDirectoryRejected)
}

func TestCreateAccount_DuplicateUsername(t *testing.T) {
	dir, db := setupDirectory(t)
	deptID, titleID := seedReferences(t, db)

	require.NoError(t, dir.CreateAccount(context.Background(), newAccount(deptID, titleID), "secret1"))

	dup := newAccount(deptID, titleID)
	dup.FirstName = "Bob"
	dup.Email = "bob@example.com"

	err := dir.CreateAccount(context.Background(), dup, "secret1")
	require.ErrorIs(t, err, domain.ErrDirectoryRejected)
}

func TestCreateAccount_DuplicateEmail(t *testing.T) {
	dir, db := setupDirectory(t)
	deptID, titleID := seedReferences(t, db)

	require.NoError(t, dir.CreateAccount(context.Background(), newAccount(deptID, titleID), "secret1"))

	dup := newAccount(deptID, titleID)
	dup.Username = "bob.ray"

	err := dir.CreateAccount(context.Background(), dup, "secret1")
	require.ErrorIs(t, err, domain.ErrDirectoryRejected)
}

func TestRoleMembership(t *testing.T) {
	dir, db := setupDirectory(t)
	deptID, titleID := seedReferences(t, db)

	require.NoError(t, dir.CreateRole(context.Background(), "Manager"))

	user := newAccount(deptID, titleID)
	require.NoError(t, dir.CreateAccount(context.Background(), user, "secret1"))

	require.NoError(t, dir.AssignRole(context.Background(), user.ID, "Manager"))

	inRole, err := dir.IsInRole(context.Background(), user.ID, "Manager")
	require.NoError(t, err)
	require.True(t, inRole)

	names, err := dir.RolesOf(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"Manager"}, names)

	require.NoError(t, dir.RemoveRole(context.Background(), user.ID, "Manager"))

	inRole, err = dir.IsInRole(context.Background(), user.ID, "Manager")
	require.NoError(t, err)
	require.False(t, inRole)
}

func TestAssignRole_UnknownRole(t *testing.T) {
	dir, db := setupDirectory(t)
	deptID, titleID := seedReferences(t, db)

	user := newAccount(deptID, titleID)
	require.NoError(t, dir.CreateAccount(context.Background(), user, "secret1"))

	err := dir.AssignRole(context.Background(), user.ID, "Director")
	require.ErrorIs(t, err, domain.ErrRoleNotFound)
}

func TestSeedRoles(t *testing.T) {
	dir, _ := setupDirectory(t)

	names := config.DefaultRules().RoleNames()
	require.NoError(t, identity.SeedRoles(context.Background(), dir, names))

	roles, err := dir.Roles(context.Background())
	require.NoError(t, err)
	require.Len(t, roles, 3)

	// повторный запуск не создаёт дубликатов
	require.NoError(t, identity.SeedRoles(context.Background(), dir, names))

	roles, err = dir.Roles(context.Background())
	require.NoError(t, err)
	require.Len(t, roles, 3)
}
