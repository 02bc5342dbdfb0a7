package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrInvalidIdentifier = errors.New("identifier is missing or malformed")

	ErrDepartmentNotFound = errors.New("department not found")
	ErrJobTitleNotFound   = errors.New("job title not found")
	ErrUserNotFound       = errors.New("user record not found")
	ErrRoleNotFound       = errors.New("role not found")

	ErrDuplicateDepartmentName = errors.New("department with this name already exists")
	ErrDuplicateJobTitleName   = errors.New("job title with this name already exists")
	ErrDuplicateUserRecord     = errors.New("user record with this first and last name already exists")

	ErrDepartmentHasEmployees = errors.New("department still has employees attached")
	ErrJobTitleHasEmployees   = errors.New("job title still has employees attached")

	ErrNotManager    = errors.New("user is not in the Manager role")
	ErrInvalidSalary = errors.New("salary is out of the allowed range")

	// ErrDirectoryRejected - отказ справочника учётных записей (дубликат
	// логина, слабый пароль); причина оборачивается через fmt.Errorf("%w: ...")
	ErrDirectoryRejected = errors.New("directory rejected the operation")
)
