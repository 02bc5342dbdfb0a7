package service

import (
	"context"
	"strings"

	"github.com/staff-records-api/internal/domain"
	"github.com/staff-records-api/internal/dto"
	"github.com/staff-records-api/internal/repository"
)

// JobTitleService определяет интерфейс бизнес-логики для должностей
type JobTitleService interface {
	Index(ctx context.Context) ([]dto.JobTitleView, error)
	Add(ctx context.Context, req *dto.AddJobTitleInput) error
	Edit(ctx context.Context, id string, req *dto.EditJobTitleInput) error
	SoftDelete(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Include(ctx context.Context, id string) (bool, error)
	GenerateEditModel(ctx context.Context, id string) (*dto.JobTitleEditModel, error)
	Selectable(ctx context.Context, departmentName string) ([]dto.SelectOption, error)
}

type jobTitleService struct {
	titleRepo repository.JobTitleRepository
}

// NewJobTitleService создаёт новый экземпляр сервиса
func NewJobTitleService(titleRepo repository.JobTitleRepository) JobTitleService {
	return &jobTitleService{titleRepo: titleRepo}
}

// hasActiveEmployees - правило, запрещающее удаление должности: считаются
// только неудалённые сотрудники
func hasActiveEmployees(title *domain.JobTitle) bool {
	for _, user := range title.Users {
		if !user.IsDeleted {
			return true
		}
	}
	return false
}

// Index возвращает все должности, включая удалённые, по имени по возрастанию
func (s *jobTitleService) Index(ctx context.Context) ([]dto.JobTitleView, error) {
	titles, err := s.titleRepo.GetAllWithUsers(ctx)
	if err != nil {
		return nil, err
	}

	model := make([]dto.JobTitleView, 0, len(titles))
	for _, title := range titles {
		model = append(model, dto.JobTitleView{
			ID:             title.ID.String(),
			Name:           title.Name,
			EmployeesCount: len(title.Users),
			IsDeleted:      title.IsDeleted,
		})
	}

	return model, nil
}

func (s *jobTitleService) Add(ctx context.Context, req *dto.AddJobTitleInput) error {
	name := strings.TrimSpace(req.Name)

	// Имя уникально среди всех должностей, включая удалённые
	exists, err := s.titleRepo.ExistsByName(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrDuplicateJobTitleName
	}

	title := &domain.JobTitle{Name: name}

	return s.titleRepo.Create(ctx, title)
}

func (s *jobTitleService) Edit(ctx context.Context, id string, req *dto.EditJobTitleInput) error {
	titleID, ok := parseID(id)
	if !ok {
		return domain.ErrInvalidIdentifier
	}

	title, err := s.titleRepo.GetByID(ctx, titleID)
	if err != nil {
		return err
	}

	title.Name = strings.TrimSpace(req.Name)

	return s.titleRepo.Update(ctx, title)
}

// SoftDelete помечает должность удалённой. Повторное удаление - мягкий отказ
// (false), наличие действующих сотрудников - ошибка.
func (s *jobTitleService) SoftDelete(ctx context.Context, id string) (bool, error) {
	titleID, ok := parseID(id)
	if !ok {
		return false, domain.ErrInvalidIdentifier
	}

	title, err := s.titleRepo.GetByIDWithUsers(ctx, titleID)
	if err != nil {
		return false, err
	}

	if title.IsDeleted {
		return false, nil
	}

	if hasActiveEmployees(title) {
		return false, domain.ErrJobTitleHasEmployees
	}

	title.IsDeleted = true
	if err := s.titleRepo.Update(ctx, title); err != nil {
		return false, err
	}

	return true, nil
}

// Delete окончательно удаляет должность. Любое нарушение предусловий
// (не найдена, ещё не помечена удалённой, есть действующие сотрудники)
// возвращает false без ошибки.
func (s *jobTitleService) Delete(ctx context.Context, id string) (bool, error) {
	titleID, ok := parseID(id)
	if !ok {
		return false, domain.ErrInvalidIdentifier
	}

	title, err := s.titleRepo.GetByIDWithUsers(ctx, titleID)
	if err != nil {
		if err == domain.ErrJobTitleNotFound {
			return false, nil
		}
		return false, err
	}

	if !title.IsDeleted {
		return false, nil
	}

	if hasActiveEmployees(title) {
		return false, nil
	}

	if err := s.titleRepo.Delete(ctx, titleID); err != nil {
		return false, err
	}

	return true, nil
}

// Include восстанавливает удалённую должность
func (s *jobTitleService) Include(ctx context.Context, id string) (bool, error) {
	titleID, ok := parseID(id)
	if !ok {
		return false, domain.ErrInvalidIdentifier
	}

	title, err := s.titleRepo.GetByID(ctx, titleID)
	if err != nil {
		return false, err
	}

	if !title.IsDeleted {
		return false, nil
	}

	title.IsDeleted = false
	if err := s.titleRepo.Update(ctx, title); err != nil {
		return false, err
	}

	return true, nil
}

func (s *jobTitleService) GenerateEditModel(ctx context.Context, id string) (*dto.JobTitleEditModel, error) {
	titleID, ok := parseID(id)
	if !ok {
		return nil, domain.ErrInvalidIdentifier
	}

	title, err := s.titleRepo.GetByID(ctx, titleID)
	if err != nil {
		return nil, err
	}
	if title.IsDeleted {
		return nil, domain.ErrJobTitleNotFound
	}

	return &dto.JobTitleEditModel{
		ID:   title.ID.String(),
		Name: title.Name,
	}, nil
}

// Selectable возвращает неудалённые должности для выпадающих списков;
// при непустом departmentName - только должности сотрудников этого
// подразделения. Результат отсортирован по имени.
func (s *jobTitleService) Selectable(ctx context.Context, departmentName string) ([]dto.SelectOption, error) {
	titles, err := s.titleRepo.GetSelectable(ctx, strings.TrimSpace(departmentName))
	if err != nil {
		return nil, err
	}

	model := make([]dto.SelectOption, 0, len(titles))
	for _, title := range titles {
		model = append(model, dto.SelectOption{
			ID:   title.ID.String(),
			Name: title.Name,
		})
	}

	return model, nil
}
