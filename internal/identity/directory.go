package identity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/staff-records-api/internal/config"
	"github.com/staff-records-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Directory определяет интерфейс справочника учётных записей и ролей
type Directory interface {
	CreateAccount(ctx context.Context, user *domain.UserRecord, password string) error
	AssignRole(ctx context.Context, userID uuid.UUID, roleName string) error
	RemoveRole(ctx context.Context, userID uuid.UUID, roleName string) error
	RolesOf(ctx context.Context, userID uuid.UUID) ([]string, error)
	IsInRole(ctx context.Context, userID uuid.UUID, roleName string) (bool, error)
	FindByID(ctx context.Context, userID uuid.UUID) (*domain.UserRecord, error)
	FindByEmail(ctx context.Context, email string) (*domain.UserRecord, error)
	RoleExists(ctx context.Context, name string) (bool, error)
	CreateRole(ctx context.Context, name string) error
	Roles(ctx context.Context) ([]domain.Role, error)
	CheckPassword(user *domain.UserRecord, password string) bool
}

type gormDirectory struct {
	db    *gorm.DB
	rules config.Rules
}

// NewDirectory создаёт справочник поверх общей БД
func NewDirectory(db *gorm.DB, rules config.Rules) Directory {
	return &gormDirectory{db: db, rules: rules}
}

// CreateAccount регистрирует учётную запись: проверяет уникальность логина и
// почты, политику пароля, хэширует пароль и сохраняет карточку
func (d *gormDirectory) CreateAccount(ctx context.Context, user *domain.UserRecord, password string) error {
	if len(password) < d.rules.PasswordMinLength || len(password) > d.rules.PasswordMaxLength {
		return fmt.Errorf("%w: password must be between %d and %d characters",
			domain.ErrDirectoryRejected, d.rules.PasswordMinLength, d.rules.PasswordMaxLength)
	}

	var count int64
	err := d.db.WithContext(ctx).
		Model(&domain.UserRecord{}).
		Where("username = ?", user.Username).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: username %q is already taken", domain.ErrDirectoryRejected, user.Username)
	}

	err = d.db.WithContext(ctx).
		Model(&domain.UserRecord{}).
		Where("email = ?", user.Email).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: email %q is already taken", domain.ErrDirectoryRejected, user.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)

	return d.db.WithContext(ctx).Create(user).Error
}

func (d *gormDirectory) AssignRole(ctx context.Context, userID uuid.UUID, roleName string) error {
	role, err := d.findRole(ctx, roleName)
	if err != nil {
		return err
	}

	user := domain.UserRecord{ID: userID}
	return d.db.WithContext(ctx).Model(&user).Association("Roles").Append(role)
}

func (d *gormDirectory) RemoveRole(ctx context.Context, userID uuid.UUID, roleName string) error {
	role, err := d.findRole(ctx, roleName)
	if err != nil {
		return err
	}

	user := domain.UserRecord{ID: userID}
	return d.db.WithContext(ctx).Model(&user).Association("Roles").Delete(role)
}

func (d *gormDirectory) RolesOf(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var names []string
	err := d.db.WithContext(ctx).
		Model(&domain.Role{}).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID).
		Pluck("roles.name", &names).Error
	return names, err
}

func (d *gormDirectory) IsInRole(ctx context.Context, userID uuid.UUID, roleName string) (bool, error) {
	var count int64
	err := d.db.WithContext(ctx).
		Model(&domain.Role{}).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ? AND roles.name = ?", userID, roleName).
		Count(&count).Error
	return count > 0, err
}

func (d *gormDirectory) FindByID(ctx context.Context, userID uuid.UUID) (*domain.UserRecord, error) {
	var user domain.UserRecord
	err := d.db.WithContext(ctx).First(&user, "id = ?", userID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (d *gormDirectory) FindByEmail(ctx context.Context, email string) (*domain.UserRecord, error) {
	var user domain.UserRecord
	err := d.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (d *gormDirectory) RoleExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := d.db.WithContext(ctx).
		Model(&domain.Role{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

func (d *gormDirectory) CreateRole(ctx context.Context, name string) error {
	role := domain.Role{Name: name}
	return d.db.WithContext(ctx).Create(&role).Error
}

func (d *gormDirectory) Roles(ctx context.Context) ([]domain.Role, error) {
	var roles []domain.Role
	err := d.db.WithContext(ctx).Order("name ASC").Find(&roles).Error
	return roles, err
}

func (d *gormDirectory) CheckPassword(user *domain.UserRecord, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

func (d *gormDirectory) findRole(ctx context.Context, name string) (*domain.Role, error) {
	var role domain.Role
	err := d.db.WithContext(ctx).First(&role, "name = ?", name).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrRoleNotFound
		}
		return nil, err
	}
	return &role, nil
}

// SeedRoles создаёт недостающие роли из списка
func SeedRoles(ctx context.Context, dir Directory, names []string) error {
	for _, name := range names {
		exists, err := dir.RoleExists(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to check role %s: %w", name, err)
		}
		if exists {
			continue
		}
		if err := dir.CreateRole(ctx, name); err != nil {
			return fmt.Errorf("failed to create role %s: %w", name, err)
		}
	}
	return nil
}
