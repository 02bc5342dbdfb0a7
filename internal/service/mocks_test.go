package service_test

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/staff-records-api/internal/config"
	"github.com/staff-records-api/internal/domain"
)

// memStore - общее in-memory хранилище для моков: карточки, справочники и
// связи ролей живут в одном месте, как в настоящей БД
type memStore struct {
	departments map[uuid.UUID]*domain.Department
	titles      map[uuid.UUID]*domain.JobTitle
	users       map[uuid.UUID]*domain.UserRecord
	roles       map[uuid.UUID]*domain.Role
	userRoles   map[uuid.UUID][]uuid.UUID
}

func newMemStore() *memStore {
	return &memStore{
		departments: make(map[uuid.UUID]*domain.Department),
		titles:      make(map[uuid.UUID]*domain.JobTitle),
		users:       make(map[uuid.UUID]*domain.UserRecord),
		roles:       make(map[uuid.UUID]*domain.Role),
		userRoles:   make(map[uuid.UUID][]uuid.UUID),
	}
}

func (s *memStore) usersOfDepartment(deptID uuid.UUID) []domain.UserRecord {
	var result []domain.UserRecord
	for _, user := range s.users {
		if user.DepartmentID == deptID {
			result = append(result, *user)
		}
	}
	return result
}

func (s *memStore) usersOfJobTitle(titleID uuid.UUID) []domain.UserRecord {
	var result []domain.UserRecord
	for _, user := range s.users {
		if user.JobTitleID == titleID {
			result = append(result, *user)
		}
	}
	return result
}

func (s *memStore) attachRefs(user *domain.UserRecord) {
	if dept, ok := s.departments[user.DepartmentID]; ok {
		user.Department = dept
	}
	if title, ok := s.titles[user.JobTitleID]; ok {
		user.JobTitle = title
	}
}

type mockDepartmentRepo struct {
	store *memStore
}

func (m *mockDepartmentRepo) Create(ctx context.Context, dept *domain.Department) error {
	if dept.ID == uuid.Nil {
		dept.ID = uuid.New()
	}
	m.store.departments[dept.ID] = dept
	return nil
}

func (m *mockDepartmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Department, error) {
	if dept, ok := m.store.departments[id]; ok {
		return dept, nil
	}
	return nil, domain.ErrDepartmentNotFound
}

func (m *mockDepartmentRepo) GetByIDWithUsers(ctx context.Context, id uuid.UUID) (*domain.Department, error) {
	dept, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dept.Users = m.store.usersOfDepartment(id)
	return dept, nil
}

func (m *mockDepartmentRepo) GetAllWithUsers(ctx context.Context) ([]domain.Department, error) {
	var result []domain.Department
	for id, dept := range m.store.departments {
		copied := *dept
		copied.Users = m.store.usersOfDepartment(id)
		result = append(result, copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockDepartmentRepo) GetAllActive(ctx context.Context) ([]domain.Department, error) {
	var result []domain.Department
	for _, dept := range m.store.departments {
		if !dept.IsDeleted {
			result = append(result, *dept)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockDepartmentRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	for _, dept := range m.store.departments {
		if dept.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockDepartmentRepo) Update(ctx context.Context, dept *domain.Department) error {
	m.store.departments[dept.ID] = dept
	return nil
}

type mockJobTitleRepo struct {
	store *memStore
}

func (m *mockJobTitleRepo) Create(ctx context.Context, title *domain.JobTitle) error {
	if title.ID == uuid.Nil {
		title.ID = uuid.New()
	}
	m.store.titles[title.ID] = title
	return nil
}

func (m *mockJobTitleRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobTitle, error) {
	if title, ok := m.store.titles[id]; ok {
		return title, nil
	}
	return nil, domain.ErrJobTitleNotFound
}

func (m *mockJobTitleRepo) GetByIDWithUsers(ctx context.Context, id uuid.UUID) (*domain.JobTitle, error) {
	title, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	title.Users = m.store.usersOfJobTitle(id)
	return title, nil
}

func (m *mockJobTitleRepo) GetAllWithUsers(ctx context.Context) ([]domain.JobTitle, error) {
	var result []domain.JobTitle
	for id, title := range m.store.titles {
		copied := *title
		copied.Users = m.store.usersOfJobTitle(id)
		result = append(result, copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockJobTitleRepo) GetSelectable(ctx context.Context, departmentName string) ([]domain.JobTitle, error) {
	var result []domain.JobTitle
	for id, title := range m.store.titles {
		if title.IsDeleted {
			continue
		}
		if departmentName != "" {
			held := false
			for _, user := range m.store.usersOfJobTitle(id) {
				if dept, ok := m.store.departments[user.DepartmentID]; ok && dept.Name == departmentName {
					held = true
					break
				}
			}
			if !held {
				continue
			}
		}
		result = append(result, *title)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockJobTitleRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	for _, title := range m.store.titles {
		if title.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockJobTitleRepo) Update(ctx context.Context, title *domain.JobTitle) error {
	m.store.titles[title.ID] = title
	return nil
}

func (m *mockJobTitleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.store.titles[id]; !ok {
		return domain.ErrJobTitleNotFound
	}
	delete(m.store.titles, id)
	return nil
}

type mockUserRepo struct {
	store *memStore
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.UserRecord, error) {
	user, ok := m.store.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	m.store.attachRefs(user)
	return user, nil
}

func (m *mockUserRepo) GetAllActive(ctx context.Context, excludeID uuid.UUID) ([]domain.UserRecord, error) {
	var result []domain.UserRecord
	for _, user := range m.store.users {
		if user.IsDeleted || user.ID == excludeID {
			continue
		}
		copied := *user
		m.store.attachRefs(&copied)
		result = append(result, copied)
	}
	return result, nil
}

func (m *mockUserRepo) ExistsByFullName(ctx context.Context, firstName, lastName string) (bool, error) {
	for _, user := range m.store.users {
		if user.FirstName == firstName && user.LastName == lastName {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *domain.UserRecord) error {
	m.store.users[user.ID] = user
	return nil
}

// mockDirectory повторяет контракт справочника учётных записей без bcrypt
type mockDirectory struct {
	store *memStore
	rules config.Rules
}

func (d *mockDirectory) CreateAccount(ctx context.Context, user *domain.UserRecord, password string) error {
	if len(password) < d.rules.PasswordMinLength || len(password) > d.rules.PasswordMaxLength {
		return fmt.Errorf("%w: password length", domain.ErrDirectoryRejected)
	}
	for _, existing := range d.store.users {
		if existing.Username == user.Username {
			return fmt.Errorf("%w: username taken", domain.ErrDirectoryRejected)
		}
		if existing.Email == user.Email {
			return fmt.Errorf("%w: email taken", domain.ErrDirectoryRejected)
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.PasswordHash = "hashed:" + password
	d.store.users[user.ID] = user
	return nil
}

func (d *mockDirectory) AssignRole(ctx context.Context, userID uuid.UUID, roleName string) error {
	role, err := d.findRole(roleName)
	if err != nil {
		return err
	}
	d.store.userRoles[userID] = append(d.store.userRoles[userID], role.ID)
	return nil
}

func (d *mockDirectory) RemoveRole(ctx context.Context, userID uuid.UUID, roleName string) error {
	role, err := d.findRole(roleName)
	if err != nil {
		return err
	}
	assigned := d.store.userRoles[userID]
	kept := assigned[:0]
	for _, id := range assigned {
		if id != role.ID {
			kept = append(kept, id)
		}
	}
	d.store.userRoles[userID] = kept
	return nil
}

func (d *mockDirectory) RolesOf(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var names []string
	for _, roleID := range d.store.userRoles[userID] {
		if role, ok := d.store.roles[roleID]; ok {
			names = append(names, role.Name)
		}
	}
	return names, nil
}

func (d *mockDirectory) IsInRole(ctx context.Context, userID uuid.UUID, roleName string) (bool, error) {
	names, _ := d.RolesOf(ctx, userID)
	for _, name := range names {
		if name == roleName {
			return true, nil
		}
	}
	return false, nil
}

func (d *mockDirectory) FindByID(ctx context.Context, userID uuid.UUID) (*domain.UserRecord, error) {
	if user, ok := d.store.users[userID]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

func (d *mockDirectory) FindByEmail(ctx context.Context, email string) (*domain.UserRecord, error) {
	for _, user := range d.store.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (d *mockDirectory) RoleExists(ctx context.Context, name string) (bool, error) {
	_, err := d.findRole(name)
	return err == nil, nil
}

func (d *mockDirectory) CreateRole(ctx context.Context, name string) error {
	role := &domain.Role{ID: uuid.New(), Name: name}
	d.store.roles[role.ID] = role
	return nil
}

func (d *mockDirectory) Roles(ctx context.Context) ([]domain.Role, error) {
	var result []domain.Role
	for _, role := range d.store.roles {
		result = append(result, *role)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (d *mockDirectory) CheckPassword(user *domain.UserRecord, password string) bool {
	return strings.TrimPrefix(user.PasswordHash, "hashed:") == password
}

func (d *mockDirectory) findRole(name string) (*domain.Role, error) {
	for _, role := range d.store.roles {
		if role.Name == name {
			return role, nil
		}
	}
	return nil, domain.ErrRoleNotFound
}
