package service

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/staff-records-api/internal/config"
	"github.com/staff-records-api/internal/domain"
	"github.com/staff-records-api/internal/dto"
	"github.com/staff-records-api/internal/identity"
	"github.com/staff-records-api/internal/repository"
)

// RecordService определяет интерфейс бизнес-логики для карточек сотрудников
type RecordService interface {
	Index(ctx context.Context, callerID string, filter *dto.RecordFilter) ([]dto.RecordView, error)
	ByManager(ctx context.Context, managerID string, filter *dto.RecordFilter) ([]dto.RecordView, error)
	GetByID(ctx context.Context, userID string) (*dto.RecordView, error)
	Add(ctx context.Context, req *dto.AddRecordInput) error
	EditByAdmin(ctx context.Context, userID string, req *dto.EditRecordInput) error
	EditByManager(ctx context.Context, userID string, req *dto.ManagerEditRecordInput) error
	Delete(ctx context.Context, userID string) (bool, error)
	GenerateEditModel(ctx context.Context, userID string) (*dto.RecordEditModel, error)
	GenerateManagerEditModel(ctx context.Context, userID string) (*dto.ManagerRecordEditModel, error)
	DepartmentNameByUserID(ctx context.Context, userID string) (string, error)
	Roles(ctx context.Context) ([]dto.SelectOption, error)
}

type recordService struct {
	userRepo  repository.UserRepository
	directory identity.Directory
	rules     config.Rules
}

// NewRecordService создаёт новый экземпляр сервиса
func NewRecordService(userRepo repository.UserRepository, directory identity.Directory, rules config.Rules) RecordService {
	return &recordService{
		userRepo:  userRepo,
		directory: directory,
		rules:     rules,
	}
}

// matchesName - правило текстового поиска: подстрока имени или фамилии без
// учёта регистра
func matchesName(view dto.RecordView, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(view.FirstName), needle) ||
		strings.Contains(strings.ToLower(view.LastName), needle)
}

// salaryInRange - правило допустимого размера зарплаты
func (s *recordService) salaryInRange(salary decimal.Decimal) bool {
	return !salary.LessThan(s.rules.SalaryMin) && !salary.GreaterThan(s.rules.SalaryMax)
}

// Index возвращает неудалённые карточки, кроме карточки самого вызывающего,
// с ролями из справочника. Фильтры применяются по порядку: поиск по имени
// (только если даёт хотя бы одно совпадение, иначе список остаётся как есть),
// точное совпадение подразделения, точное совпадение должности.
func (s *recordService) Index(ctx context.Context, callerID string, filter *dto.RecordFilter) ([]dto.RecordView, error) {
	// некорректный идентификатор вызывающего никого не исключает из списка
	excludeID, ok := parseID(callerID)
	if !ok {
		excludeID = uuid.Nil
	}

	users, err := s.userRepo.GetAllActive(ctx, excludeID)
	if err != nil {
		return nil, err
	}

	model := make([]dto.RecordView, 0, len(users))
	for _, user := range users {
		roles, err := s.directory.RolesOf(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		model = append(model, toRecordView(&user, roles))
	}

	if filter != nil {
		model = applyFilters(model, filter)
	}

	sort.Slice(model, func(i, j int) bool {
		if model[i].FirstName != model[j].FirstName {
			return model[i].FirstName < model[j].FirstName
		}
		return model[i].LastName < model[j].LastName
	})

	return model, nil
}

func applyFilters(model []dto.RecordView, filter *dto.RecordFilter) []dto.RecordView {
	if search := strings.TrimSpace(filter.Search); search != "" {
		anyMatch := false
		for _, view := range model {
			if matchesName(view, search) {
				anyMatch = true
				break
			}
		}
		// фильтр применяется только при наличии хотя бы одного совпадения,
		// иначе список возвращается без изменений
		if anyMatch {
			filtered := model[:0:0]
			for _, view := range model {
				if matchesName(view, search) {
					filtered = append(filtered, view)
				}
			}
			model = filtered
		}
	}

	if filter.Department != "" {
		filtered := model[:0:0]
		for _, view := range model {
			if view.Department == filter.Department {
				filtered = append(filtered, view)
			}
		}
		model = filtered
	}

	if filter.JobTitle != "" {
		filtered := model[:0:0]
		for _, view := range model {
			if view.JobTitle == filter.JobTitle {
				filtered = append(filtered, view)
			}
		}
		model = filtered
	}

	return model
}

// ByManager сводит список к подразделению руководителя: фильтр по
// подразделению принудительно заменяется на его собственное
func (s *recordService) ByManager(ctx context.Context, managerID string, filter *dto.RecordFilter) ([]dto.RecordView, error) {
	id, ok := parseID(managerID)
	if !ok {
		return nil, domain.ErrInvalidIdentifier
	}

	manager, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	isManager, err := s.directory.IsInRole(ctx, manager.ID, s.rules.ManagerRole)
	if err != nil {
		return nil, err
	}
	if !isManager {
		return nil, domain.ErrNotManager
	}

	if filter == nil {
		filter = &dto.RecordFilter{}
	}
	filter.Department = manager.Department.Name

	return s.Index(ctx, managerID, filter)
}

func (s *recordService) GetByID(ctx context.Context, userID string) (*dto.RecordView, error) {
	id, ok := parseID(userID)
	if !ok {
		return nil, domain.ErrInvalidIdentifier
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	roles, err := s.directory.RolesOf(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	view := toRecordView(user, roles)
	return &view, nil
}

// Add создаёт карточку: проверяет идентификаторы, роль, уникальность пары
// имя+фамилия и зарплату, регистрирует учётную запись и назначает роль
func (s *recordService) Add(ctx context.Context, req *dto.AddRecordInput) error {
	departmentID, ok := parseID(req.DepartmentID)
	if !ok {
		return domain.ErrInvalidIdentifier
	}
	jobTitleID, ok := parseID(req.JobTitleID)
	if !ok {
		return domain.ErrInvalidIdentifier
	}

	roleExists, err := s.directory.RoleExists(ctx, req.RoleName)
	if err != nil {
		return err
	}
	if !roleExists {
		return domain.ErrRoleNotFound
	}

	exists, err := s.userRepo.ExistsByFullName(ctx, req.FirstName, req.LastName)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrDuplicateUserRecord
	}

	if !s.salaryInRange(req.Salary) {
		return domain.ErrInvalidSalary
	}

	user := &domain.UserRecord{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Username:     req.Username,
		Salary:       req.Salary,
		DepartmentID: departmentID,
		JobTitleID:   jobTitleID,
	}

	if err := s.directory.CreateAccount(ctx, user, req.Password); err != nil {
		return err
	}

	return s.directory.AssignRole(ctx, user.ID, req.RoleName)
}

// EditByAdmin перезаписывает все поля профиля; роли не меняются
func (s *recordService) EditByAdmin(ctx context.Context, userID string, req *dto.EditRecordInput) error {
	id, ok := parseID(userID)
	if !ok {
		return domain.ErrInvalidIdentifier
	}
	departmentID, ok := parseID(req.DepartmentID)
	if !ok {
		return domain.ErrInvalidIdentifier
	}
	jobTitleID, ok := parseID(req.JobTitleID)
	if !ok {
		return domain.ErrInvalidIdentifier
	}

	if !s.salaryInRange(req.Salary) {
		return domain.ErrInvalidSalary
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Salary = req.Salary
	user.DepartmentID = departmentID
	user.JobTitleID = jobTitleID

	return s.userRepo.Update(ctx, user)
}

// EditByManager перезаписывает только зарплату и должность; имя и
// подразделение для этого уровня прав неизменяемы
func (s *recordService) EditByManager(ctx context.Context, userID string, req *dto.ManagerEditRecordInput) error {
	id, ok := parseID(userID)
	if !ok {
		return domain.ErrInvalidIdentifier
	}
	jobTitleID, ok := parseID(req.JobTitleID)
	if !ok {
		return domain.ErrInvalidIdentifier
	}

	if !s.salaryInRange(req.Salary) {
		return domain.ErrInvalidSalary
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	user.Salary = req.Salary
	user.JobTitleID = jobTitleID

	return s.userRepo.Update(ctx, user)
}

// Delete помечает карточку удалённой; учётная запись остаётся в справочнике.
// Повторное удаление - мягкий отказ (false).
func (s *recordService) Delete(ctx context.Context, userID string) (bool, error) {
	id, ok := parseID(userID)
	if !ok {
		return false, domain.ErrInvalidIdentifier
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}

	if user.IsDeleted {
		return false, nil
	}

	user.IsDeleted = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return false, err
	}

	return true, nil
}

func (s *recordService) GenerateEditModel(ctx context.Context, userID string) (*dto.RecordEditModel, error) {
	user, err := s.activeUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.RecordEditModel{
		ID:           user.ID.String(),
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Salary:       user.Salary,
		DepartmentID: user.DepartmentID.String(),
		JobTitleID:   user.JobTitleID.String(),
	}, nil
}

func (s *recordService) GenerateManagerEditModel(ctx context.Context, userID string) (*dto.ManagerRecordEditModel, error) {
	user, err := s.activeUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.ManagerRecordEditModel{
		ID:         user.ID.String(),
		Salary:     user.Salary,
		JobTitleID: user.JobTitleID.String(),
	}, nil
}

func (s *recordService) DepartmentNameByUserID(ctx context.Context, userID string) (string, error) {
	id, ok := parseID(userID)
	if !ok {
		return "", domain.ErrInvalidIdentifier
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	return user.Department.Name, nil
}

// Roles возвращает роли справочника по имени по возрастанию
func (s *recordService) Roles(ctx context.Context) ([]dto.SelectOption, error) {
	roles, err := s.directory.Roles(ctx)
	if err != nil {
		return nil, err
	}

	model := make([]dto.SelectOption, 0, len(roles))
	for _, role := range roles {
		model = append(model, dto.SelectOption{
			ID:   role.ID.String(),
			Name: role.Name,
		})
	}

	return model, nil
}

func (s *recordService) activeUser(ctx context.Context, userID string) (*domain.UserRecord, error) {
	id, ok := parseID(userID)
	if !ok {
		return nil, domain.ErrInvalidIdentifier
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.IsDeleted {
		return nil, domain.ErrUserNotFound
	}

	return user, nil
}

func toRecordView(user *domain.UserRecord, roles []string) dto.RecordView {
	view := dto.RecordView{
		ID:        user.ID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Salary:    user.Salary,
		RoleNames: roles,
	}

	if user.Department != nil {
		view.Department = user.Department.Name
		view.DepartmentID = user.Department.ID.String()
	}
	if user.JobTitle != nil {
		view.JobTitle = user.JobTitle.Name
		view.JobTitleID = user.JobTitle.ID.String()
	}

	return view
}
