package service

import (
	"context"
	"testing"

	"github.com/medantra/hospital-api/internal/domain/entity"
	"github.com/medantra/hospital-api/pkg/apperror"
	"github.com/stretchr/testify/require"
)

type fakeDepartmentRepo struct {
	departments map[uint]*entity.Department
	nextID      uint
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{departments: make(map[uint]*entity.Department)}
}

func (r *fakeDepartmentRepo) Create(ctx context.Context, department *entity.Department) error {
	r.nextID++
	department.ID = r.nextID
	r.departments[department.ID] = department
	return nil
}

func (r *fakeDepartmentRepo) GetByID(ctx context.Context, id uint) (*entity.Department, error) {
	return r.departments[id], nil
}

func (r *fakeDepartmentRepo) GetByName(ctx context.Context, name string) (*entity.Department, error) {
	for _, d := range r.departments {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, nil
}

func (r *fakeDepartmentRepo) List(ctx context.Context) ([]entity.Department, error) {
	out := make([]entity.Department, 0, len(r.departments))
	for _, d := range r.departments {
		out = append(out, *d)
	}
	return out, nil
}

func (r *fakeDepartmentRepo) Delete(ctx context.Context, id uint) error {
	delete(r.departments, id)
	return nil
}

func (r *fakeDepartmentRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.departments)), nil
}

type fakeParticularRepo struct {
	particulars map[uint]*entity.Particular
	nextID      uint
}

func newFakeParticularRepo() *fakeParticularRepo {
	return &fakeParticularRepo{particulars: make(map[uint]*entity.Particular)}
}

func (r *fakeParticularRepo) Create(ctx context.Context, particular *entity.Particular) error {
	r.nextID++
	particular.ID = r.nextID
	r.particulars[particular.ID] = particular
	return nil
}

func (r *fakeParticularRepo) GetByID(ctx context.Context, id uint) (*entity.Particular, error) {
	return r.particulars[id], nil
}

func (r *fakeParticularRepo) GetByName(ctx context.Context, departmentID uint, name string) (*entity.Particular, error) {
	for _, p := range r.particulars {
		if p.DepartmentID == departmentID && p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeParticularRepo) List(ctx context.Context, departmentID *uint) ([]entity.Particular, error) {
	out := make([]entity.Particular, 0, len(r.particulars))
	for _, p := range r.particulars {
		if departmentID != nil && p.DepartmentID != *departmentID {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeParticularRepo) Delete(ctx context.Context, id uint) error {
	delete(r.particulars, id)
	return nil
}

func (r *fakeParticularRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.particulars)), nil
}

func (r *fakeParticularRepo) CountByDepartment(ctx context.Context, departmentID uint) (int64, error) {
	var n int64
	for _, p := range r.particulars {
		if p.DepartmentID == departmentID {
			n++
		}
	}
	return n, nil
}

func TestCreateDepartmentDuplicateConflicts(t *testing.T) {
	svc := NewCatalogService(newFakeDepartmentRepo(), newFakeParticularRepo())

	_, err := svc.CreateDepartment(context.Background(), "RADIOLOGY")
	require.NoError(t, err)

	_, err = svc.CreateDepartment(context.Background(), "RADIOLOGY")
	require.Error(t, err)
	require.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestDeleteDepartmentWithParticularsBlocked(t *testing.T) {
	departmentRepo := newFakeDepartmentRepo()
	particularRepo := newFakeParticularRepo()
	svc := NewCatalogService(departmentRepo, particularRepo)

	department, err := svc.CreateDepartment(context.Background(), "LABORATORY")
	require.NoError(t, err)

	_, err = svc.CreateParticular(context.Background(), &CreateParticularInput{
		Name:         "CBC",
		DepartmentID: department.ID,
		Rate:         250,
	})
	require.NoError(t, err)

	err = svc.DeleteDepartment(context.Background(), department.ID)
	require.Error(t, err)
	require.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateParticularDuplicatePerDepartment(t *testing.T) {
	departmentRepo := newFakeDepartmentRepo()
	svc := NewCatalogService(departmentRepo, newFakeParticularRepo())

	lab, err := svc.CreateDepartment(context.Background(), "LABORATORY")
	require.NoError(t, err)
	radiology, err := svc.CreateDepartment(context.Background(), "RADIOLOGY")
	require.NoError(t, err)

	_, err = svc.CreateParticular(context.Background(), &CreateParticularInput{Name: "CBC", DepartmentID: lab.ID})
	require.NoError(t, err)

	_, err = svc.CreateParticular(context.Background(), &CreateParticularInput{Name: "CBC", DepartmentID: lab.ID})
	require.Error(t, err)
	require.Equal(t, 409, apperror.GetAppError(err).Code)

	// Same name in another department is allowed
	_, err = svc.CreateParticular(context.Background(), &CreateParticularInput{Name: "CBC", DepartmentID: radiology.ID})
	require.NoError(t, err)
}

func TestCreateParticularUnknownDepartment(t *testing.T) {
	svc := NewCatalogService(newFakeDepartmentRepo(), newFakeParticularRepo())

	_, err := svc.CreateParticular(context.Background(), &CreateParticularInput{Name: "CBC", DepartmentID: 99})
	require.Error(t, err)
	require.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCatalogStats(t *testing.T) {
	departmentRepo := newFakeDepartmentRepo()
	particularRepo := newFakeParticularRepo()
	svc := NewCatalogService(departmentRepo, particularRepo)

	lab, err := svc.CreateDepartment(context.Background(), "LABORATORY")
	require.NoError(t, err)
	_, err = svc.CreateParticular(context.Background(), &CreateParticularInput{Name: "CBC", DepartmentID: lab.ID})
	require.NoError(t, err)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 1, stats.Departments)
	require.EqualValues(t, 1, stats.Particulars)
}
