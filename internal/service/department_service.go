package service

import (
	"context"
	"strings"

	"github.com/staff-records-api/internal/domain"
	"github.com/staff-records-api/internal/dto"
	"github.com/staff-records-api/internal/repository"
)

// DepartmentService определяет интерфейс бизнес-логики для подразделений
type DepartmentService interface {
	Index(ctx context.Context) ([]dto.DepartmentView, error)
	Add(ctx context.Context, req *dto.AddDepartmentInput) error
	Edit(ctx context.Context, id string, req *dto.EditDepartmentInput) error
	Delete(ctx context.Context, id string) (bool, error)
	Include(ctx context.Context, id string) (bool, error)
	GenerateEditModel(ctx context.Context, id string) (*dto.DepartmentEditModel, error)
	Selectable(ctx context.Context) ([]dto.SelectOption, error)
}

type departmentService struct {
	deptRepo repository.DepartmentRepository
}

// NewDepartmentService создаёт новый экземпляр сервиса
func NewDepartmentService(deptRepo repository.DepartmentRepository) DepartmentService {
	return &departmentService{deptRepo: deptRepo}
}

// hasAttachedEmployees - правило, запрещающее удаление подразделения:
// считаются ВСЕ привязанные сотрудники, включая удалённых
func hasAttachedEmployees(dept *domain.Department) bool {
	return len(dept.Users) > 0
}

// Index возвращает все подразделения, включая удалённые, со счётчиком
// сотрудников
func (s *departmentService) Index(ctx context.Context) ([]dto.DepartmentView, error) {
	departments, err := s.deptRepo.GetAllWithUsers(ctx)
	if err != nil {
		return nil, err
	}

	model := make([]dto.DepartmentView, 0, len(departments))
	for _, dept := range departments {
		model = append(model, dto.DepartmentView{
			ID:             dept.ID.String(),
			Name:           dept.Name,
			EmployeesCount: len(dept.Users),
			IsDeleted:      dept.IsDeleted,
		})
	}

	return model, nil
}

func (s *departmentService) Add(ctx context.Context, req *dto.AddDepartmentInput) error {
	name := strings.TrimSpace(req.Name)

	// Имя уникально среди всех подразделений, включая удалённые
	exists, err := s.deptRepo.ExistsByName(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrDuplicateDepartmentName
	}

	dept := &domain.Department{Name: name}

	return s.deptRepo.Create(ctx, dept)
}

func (s *departmentService) Edit(ctx context.Context, id string, req *dto.EditDepartmentInput) error {
	deptID, ok := parseID(id)
	if !ok {
		return domain.ErrInvalidIdentifier
	}

	dept, err := s.deptRepo.GetByID(ctx, deptID)
	if err != nil {
		return err
	}

	// Имя перезаписывается без повторной проверки уникальности
	dept.Name = strings.TrimSpace(req.Name)

	return s.deptRepo.Update(ctx, dept)
}

// Delete помечает подразделение удалённым. Повторное удаление - мягкий отказ
// (false), наличие сотрудников - ошибка.
func (s *departmentService) Delete(ctx context.Context, id string) (bool, error) {
	deptID, ok := parseID(id)
	if !ok {
		return false, domain.ErrInvalidIdentifier
	}

	dept, err := s.deptRepo.GetByIDWithUsers(ctx, deptID)
	if err != nil {
		return false, err
	}

	if dept.IsDeleted {
		return false, nil
	}

	if hasAttachedEmployees(dept) {
		return false, domain.ErrDepartmentHasEmployees
	}

	dept.IsDeleted = true
	if err := s.deptRepo.Update(ctx, dept); err != nil {
		return false, err
	}

	return true, nil
}

// Include восстанавливает удалённое подразделение; зависимости не проверяются
func (s *departmentService) Include(ctx context.Context, id string) (bool, error) {
	deptID, ok := parseID(id)
	if !ok {
		return false, domain.ErrInvalidIdentifier
	}

	dept, err := s.deptRepo.GetByID(ctx, deptID)
	if err != nil {
		return false, err
	}

	if !dept.IsDeleted {
		return false, nil
	}

	dept.IsDeleted = false
	if err := s.deptRepo.Update(ctx, dept); err != nil {
		return false, err
	}

	return true, nil
}

func (s *departmentService) GenerateEditModel(ctx context.Context, id string) (*dto.DepartmentEditModel, error) {
	deptID, ok := parseID(id)
	if !ok {
		return nil, domain.ErrInvalidIdentifier
	}

	dept, err := s.deptRepo.GetByID(ctx, deptID)
	if err != nil {
		return nil, err
	}
	if dept.IsDeleted {
		return nil, domain.ErrDepartmentNotFound
	}

	return &dto.DepartmentEditModel{
		ID:   dept.ID.String(),
		Name: dept.Name,
	}, nil
}

// Selectable возвращает неудалённые подразделения для выпадающих списков
func (s *departmentService) Selectable(ctx context.Context) ([]dto.SelectOption, error) {
	departments, err := s.deptRepo.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	model := make([]dto.SelectOption, 0, len(departments))
	for _, dept := range departments {
		model = append(model, dto.SelectOption{
			ID:   dept.ID.String(),
			Name: dept.Name,
		})
	}

	return model, nil
}
