package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/staff-records-api/internal/domain"
	"gorm.io/gorm"
)

// UserRepository определяет интерфейс для работы с карточками сотрудников.
// Создание карточек идёт через справочник учётных записей (identity.Directory).
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.UserRecord, error)
	GetAllActive(ctx context.Context, excludeID uuid.UUID) ([]domain.UserRecord, error)
	ExistsByFullName(ctx context.Context, firstName, lastName string) (bool, error)
	Update(ctx context.Context, user *domain.UserRecord) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository создаёт новый экземпляр репозитория
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.UserRecord, error) {
	var user domain.UserRecord
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("JobTitle").
		First(&user, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetAllActive(ctx context.Context, excludeID uuid.UUID) ([]domain.UserRecord, error) {
	var users []domain.UserRecord
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("JobTitle").
		Where("is_deleted = ?", false).
		Where("id != ?", excludeID).
		Find(&users).Error
	return users, err
}

func (r *userRepository) ExistsByFullName(ctx context.Context, firstName, lastName string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.UserRecord{}).
		Where("first_name = ? AND last_name = ?", firstName, lastName).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) Update(ctx context.Context, user *domain.UserRecord) error {
	return r.db.WithContext(ctx).Save(user).Error
}
