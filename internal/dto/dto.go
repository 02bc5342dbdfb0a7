package dto

import (
	"github.com/shopspring/decimal"
)

// AddDepartmentInput - запрос на создание подразделения
type AddDepartmentInput struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

// EditDepartmentInput - запрос на переименование подразделения
type EditDepartmentInput struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

// DepartmentView - строка списка подразделений
type DepartmentView struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	EmployeesCount int    `json:"employees_count"`
	IsDeleted      bool   `json:"is_deleted"`
}

// DepartmentEditModel - данные для формы редактирования подразделения
type DepartmentEditModel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AddJobTitleInput - запрос на создание должности
type AddJobTitleInput struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}

// EditJobTitleInput - запрос на переименование должности
type EditJobTitleInput struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}

// JobTitleView - строка списка должностей
type JobTitleView struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	EmployeesCount int    `json:"employees_count"`
	IsDeleted      bool   `json:"is_deleted"`
}

// JobTitleEditModel - данные для формы редактирования должности
type JobTitleEditModel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SelectOption - элемент выпадающего списка
type SelectOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AddRecordInput - запрос на создание карточки сотрудника
type AddRecordInput struct {
	FirstName    string          `json:"first_name" validate:"required,min=2,max=50"`
	LastName     string          `json:"last_name" validate:"required,min=2,max=50"`
	Username     string          `json:"username" validate:"required,min=3,max=50"`
	Password     string          `json:"password" validate:"required,min=6,max=20"`
	Email        string          `json:"email" validate:"required,email,max=50"`
	Salary       decimal.Decimal `json:"salary"`
	DepartmentID string          `json:"department_id" validate:"required"`
	JobTitleID   string          `json:"job_title_id" validate:"required"`
	RoleName     string          `json:"role_name" validate:"required"`
}

// EditRecordInput - правка карточки с правами HR Admin: все поля профиля
type EditRecordInput struct {
	FirstName    string          `json:"first_name" validate:"required,min=2,max=50"`
	LastName     string          `json:"last_name" validate:"required,min=2,max=50"`
	Salary       decimal.Decimal `json:"salary"`
	DepartmentID string          `json:"department_id" validate:"required"`
	JobTitleID   string          `json:"job_title_id" validate:"required"`
}

// ManagerEditRecordInput - правка карточки с правами Manager: только
// зарплата и должность
type ManagerEditRecordInput struct {
	Salary     decimal.Decimal `json:"salary"`
	JobTitleID string          `json:"job_title_id" validate:"required"`
}

// RecordView - карточка сотрудника с подразделением, должностью и ролями
type RecordView struct {
	ID           string          `json:"id"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Department   string          `json:"department"`
	DepartmentID string          `json:"department_id"`
	JobTitle     string          `json:"job_title"`
	JobTitleID   string          `json:"job_title_id"`
	Salary       decimal.Decimal `json:"salary"`
	RoleNames    []string        `json:"role_names"`
}

// RecordFilter - фильтры списка сотрудников
type RecordFilter struct {
	Search     string `json:"search"`
	Department string `json:"department"`
	JobTitle   string `json:"job_title"`
}

// RecordEditModel - данные для формы редактирования с правами HR Admin
type RecordEditModel struct {
	ID           string          `json:"id"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Salary       decimal.Decimal `json:"salary"`
	DepartmentID string          `json:"department_id"`
	JobTitleID   string          `json:"job_title_id"`
}

// ManagerRecordEditModel - данные для формы редактирования с правами Manager
type ManagerRecordEditModel struct {
	ID         string          `json:"id"`
	Salary     decimal.Decimal `json:"salary"`
	JobTitleID string          `json:"job_title_id"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
