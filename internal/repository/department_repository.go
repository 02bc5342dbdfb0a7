package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/staff-records-api/internal/domain"
	"gorm.io/gorm"
)

// DepartmentRepository определяет интерфейс для работы с подразделениями
type DepartmentRepository interface {
	Create(ctx context.Context, dept *domain.Department) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Department, error)
	GetByIDWithUsers(ctx context.Context, id uuid.UUID) (*domain.Department, error)
	GetAllWithUsers(ctx context.Context) ([]domain.Department, error)
	GetAllActive(ctx context.Context) ([]domain.Department, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Update(ctx context.Context, dept *domain.Department) error
}

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository создаёт новый экземпляр репозитория
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *departmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Department, error) {
	var dept domain.Department
	err := r.db.WithContext(ctx).First(&dept, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepository) GetByIDWithUsers(ctx context.Context, id uuid.UUID) (*domain.Department, error) {
	var dept domain.Department
	err := r.db.WithContext(ctx).
		Preload("Users").
		First(&dept, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepository) GetAllWithUsers(ctx context.Context) ([]domain.Department, error) {
	var departments []domain.Department
	err := r.db.WithContext(ctx).
		Preload("Users").
		Find(&departments).Error
	return departments, err
}

func (r *departmentRepository) GetAllActive(ctx context.Context) ([]domain.Department, error) {
	var departments []domain.Department
	err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Find(&departments).Error
	return departments, err
}

func (r *departmentRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Department{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

func (r *departmentRepository) Update(ctx context.Context, dept *domain.Department) error {
	return r.db.WithContext(ctx).Save(dept).Error
}
