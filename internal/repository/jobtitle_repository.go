package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/staff-records-api/internal/domain"
	"gorm.io/gorm"
)

// JobTitleRepository определяет интерфейс для работы с должностями
type JobTitleRepository interface {
	Create(ctx context.Context, title *domain.JobTitle) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.JobTitle, error)
	GetByIDWithUsers(ctx context.Context, id uuid.UUID) (*domain.JobTitle, error)
	GetAllWithUsers(ctx context.Context) ([]domain.JobTitle, error)
	GetSelectable(ctx context.Context, departmentName string) ([]domain.JobTitle, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Update(ctx context.Context, title *domain.JobTitle) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type jobTitleRepository struct {
	db *gorm.DB
}

// NewJobTitleRepository создаёт новый экземпляр репозитория
func NewJobTitleRepository(db *gorm.DB) JobTitleRepository {
	return &jobTitleRepository{db: db}
}

func (r *jobTitleRepository) Create(ctx context.Context, title *domain.JobTitle) error {
	return r.db.WithContext(ctx).Create(title).Error
}

func (r *jobTitleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobTitle, error) {
	var title domain.JobTitle
	err := r.db.WithContext(ctx).First(&title, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrJobTitleNotFound
		}
		return nil, err
	}
	return &title, nil
}

func (r *jobTitleRepository) GetByIDWithUsers(ctx context.Context, id uuid.UUID) (*domain.JobTitle, error) {
	var title domain.JobTitle
	err := r.db.WithContext(ctx).
		Preload("Users").
		First(&title, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrJobTitleNotFound
		}
		return nil, err
	}
	return &title, nil
}

func (r *jobTitleRepository) GetAllWithUsers(ctx context.Context) ([]domain.JobTitle, error) {
	var titles []domain.JobTitle
	err := r.db.WithContext(ctx).
		Preload("Users").
		Order("name ASC").
		Find(&titles).Error
	return titles, err
}

// GetSelectable возвращает неудалённые должности; при непустом departmentName
// остаются только должности, занимаемые хотя бы одним сотрудником этого
// подразделения
func (r *jobTitleRepository) GetSelectable(ctx context.Context, departmentName string) ([]domain.JobTitle, error) {
	query := r.db.WithContext(ctx).
		Model(&domain.JobTitle{}).
		Where("job_titles.is_deleted = ?", false)

	if departmentName != "" {
		query = query.
			Joins("JOIN users ON users.job_title_id = job_titles.id").
			Joins("JOIN departments ON departments.id = users.department_id").
			Where("departments.name = ?", departmentName).
			Distinct()
	}

	var titles []domain.JobTitle
	err := query.Order("name ASC").Find(&titles).Error
	return titles, err
}

func (r *jobTitleRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.JobTitle{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

func (r *jobTitleRepository) Update(ctx context.Context, title *domain.JobTitle) error {
	return r.db.WithContext(ctx).Save(title).Error
}

func (r *jobTitleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.JobTitle{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrJobTitleNotFound
	}
	return nil
}
