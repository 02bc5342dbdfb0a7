package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/staff-records-api/internal/domain"
	"github.com/staff-records-api/internal/dto"
	"github.com/staff-records-api/internal/service"
	"github.com/stretchr/testify/require"
)

func newDepartmentService(store *memStore) service.DepartmentService {
	return service.NewDepartmentService(&mockDepartmentRepo{store: store})
}

func addDepartment(t *testing.T, store *memStore, name string, deleted bool) uuid.UUID {
	t.Helper()
	dept := &domain.Department{ID: uuid.New(), Name: name, IsDeleted: deleted}
	store.departments[dept.ID] = dept
	return dept.ID
}

func TestDepartmentAdd(t *testing.T) {
	store := newMemStore()
	svc := newDepartmentService(store)

	err := svc.Add(context.Background(), &dto.AddDepartmentInput{Name: "  Engineering  "})
	require.NoError(t, err)

	model, err := svc.Index(context.Background())
	require.NoError(t, err)
	require.Len(t, model, 1)
	require.Equal(t, "Engineering", model[0].Name)
	require.False(t, model[0].IsDeleted)
}

func TestDepartmentAdd_DuplicateName(t *testing.T) {
	store := newMemStore()
	svc := newDepartmentService(store)

	// имя занято даже удалённым подразделением
	addDepartment(t, store, "Engineering", true)

	err := svc.Add(context.Background(), &dto.AddDepartmentInput{Name: "Engineering"})
	require.ErrorIs(t, err, domain.ErrDuplicateDepartmentName)
}

func TestDepartmentIndex_CountsAllEmployees(t *testing.T) {
	store := newMemStore()
	svc := newDepartmentService(store)

	deptID := addDepartment(t, store, "Sales", false)
	addDepartment(t, store, "Archive", true)

	active := &domain.UserRecord{ID: uuid.New(), DepartmentID: deptID}
	deleted := &domain.UserRecord{ID: uuid.New(), DepartmentID: deptID, IsDeleted: true}
	store.users[active.ID] = active
	store.users[deleted.ID] = deleted

	model, err := svc.Index(context.Background())
	require.NoError(t, err)
	require.Len(t, model, 2)

	// удалённые подразделения остаются в списке, удалённые сотрудники
	// входят в счётчик
	require.Equal(t, "Archive", model[0].Name)
	require.True(t, model[0].IsDeleted)
	require.Equal(t, "Sales", model[1].Name)
	require.Equal(t, 2, model[1].EmployeesCount)
}

func TestDepartmentEdit(t *testing.T) {
	store := newMemStore()
	svc := newDepartmentService(store)

	deptID := addDepartment(t, store, "Old Name", false)

	err := svc.Edit(context.Background(), deptID.String(), &dto.EditDepartmentInput{Name: "New Name"})
	require.NoError(t, err)
	require.Equal(t, "New Name", store.departments[deptID].Name)
}

func TestDepartmentEdit_InvalidID(t *testing.T) {
	svc := newDepartmentService(newMemStore())

	err := svc.Edit(context.Background(), "not-a-uuid", &dto.EditDepartmentInput{Name: "New Name"})
	require.ErrorIs(t, err, domain.ErrInvalidIdentifier)
}

func TestDepartmentDelete(t *testing.T) {
	store := newMemStore()
	svc := newDepartmentService(store)

	deptID := addDepartment(t, store, "Empty", false)

	ok, err := svc.Delete(context.Background(), deptID.String())
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, store.departments[deptID].IsDeleted)

	// повторное удаление - мягкий отказ без ошибки
	ok, err = svc.Delete(context.Background(), deptID.String())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDepartmentDelete_WithAttachedEmployees(t *testing.T) {
	store := newMemStore()
	svc := newDepartmentService(store)

	deptID := addDepartment(t, store, "Busy", false)

	// блокирует даже удалённый сотрудник
	user := &domain.UserRecord{ID: uuid.New(), DepartmentID: deptID, IsDeleted: true}
	store.users[user.ID] = user

	ok, err := svc.Delete(context.Background(), deptID.String())
	require.ErrorIs(t, err, domain.ErrDepartmentHasEmployees)
	require.False(t, ok)
	require.False(t, store.departments[deptID].IsDeleted)
}

func TestDepartmentDelete_NotFound(t *testing.T) {
	svc := newDepartmentService(newMemStore())

	_, err := svc.Delete(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, domain.ErrDepartmentNotFound)
}

func TestDepartmentInclude(t *testing.T) {
	store := newMemStore()
	svc := newDepartmentService(store)

	deptID := addDepartment(t, store, "Archived", true)

	ok, err := svc.Include(context.Background(), deptID.String())
	require.NoError(t, err)
	require.True(t, ok)
	require.False(t, store.departments[deptID].IsDeleted)

	// восстановление действующего подразделения - мягкий отказ
	ok, err = svc.Include(context.Background(), deptID.String())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDepartmentGenerateEditModel(t *testing.T) {
	store := newMemStore()
	svc := newDepartmentService(store)

	deptID := addDepartment(t, store, "Finance", false)

	model, err := svc.GenerateEditModel(context.Background(), deptID.String())
	require.NoError(t, err)
	require.Equal(t, deptID.String(), model.ID)
	require.Equal(t, "Finance", model.Name)
}

func TestDepartmentGenerateEditModel_Deleted(t *testing.T) {
	store := newMemStore()
	svc := newDepartmentService(store)

	deptID := addDepartment(t, store, "Archived", true)

	_, err := svc.GenerateEditModel(context.Background(), deptID.String())
	require.ErrorIs(t, err, domain.ErrDepartmentNotFound)
}

func TestDepartmentSelectable(t *testing.T) {
	store := newMemStore()
	svc := newDepartmentService(store)

	addDepartment(t, store, "Active", false)
	addDepartment(t, store, "Archived", true)

	model, err := svc.Selectable(context.Background())
	require.NoError(t, err)
	require.Len(t, model, 1)
	require.Equal(t, "Active", model[0].Name)
}
