package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/waritk/gradtrack-api/internal/dto"
	"github.com/waritk/gradtrack-api/internal/models"
	"github.com/waritk/gradtrack-api/internal/patch"
	"github.com/waritk/gradtrack-api/internal/repository"
)

type fakeStudentRepo struct {
	students map[string]models.Student
	updates  map[string]interface{}
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: map[string]models.Student{}}
}

func (f *fakeStudentRepo) List(ctx context.Context) ([]models.Student, error) {
	out := make([]models.Student, 0, len(f.students))
	for _, s := range f.students {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStudentRepo) Get(ctx context.Context, studentID string) (models.Student, error) {
	student, ok := f.students[studentID]
	if !ok {
		return models.Student{}, gorm.ErrRecordNotFound
	}
	return student, nil
}

func (f *fakeStudentRepo) Create(ctx context.Context, student *models.Student) error {
	f.students[student.StudentID] = *student
	return nil
}

func (f *fakeStudentRepo) Update(ctx context.Context, studentID string, updates map[string]interface{}) (int64, error) {
	if _, ok := f.students[studentID]; !ok {
		return 0, nil
	}
	f.updates = updates
	return 1, nil
}

func (f *fakeStudentRepo) Delete(ctx context.Context, studentID string) (int64, error) {
	if _, ok := f.students[studentID]; !ok {
		return 0, nil
	}
	delete(f.students, studentID)
	return 1, nil
}

var _ repository.StudentRepository = (*fakeStudentRepo)(nil)

func newStudentService(repo repository.StudentRepository) StudentService {
	return NewStudentService(repo, validator.New(validator.WithRequiredStructEnabled()), zerolog.Nop())
}

func TestStudentCreateRequiresKeyAndName(t *testing.T) {
	svc := newStudentService(newFakeStudentRepo())

	_, err := svc.Create(context.Background(), dto.StudentCreateRequest{FullName: "A"})
	require.Error(t, err)

	_, err = svc.Create(context.Background(), dto.StudentCreateRequest{StudentID: "X1"})
	require.Error(t, err)

	id, err := svc.Create(context.Background(), dto.StudentCreateRequest{StudentID: "X1", FullName: "A"})
	require.NoError(t, err)
	require.Equal(t, "X1", id)
}

func TestStudentUpdateAbsentDoesNotAutoCreate(t *testing.T) {
	repo := newFakeStudentRepo()
	svc := newStudentService(repo)

	err := svc.Update(context.Background(), "missing", []byte(`{"full_name": "B"}`))
	require.ErrorIs(t, err, ErrStudentNotFound)
	require.Empty(t, repo.students)
}

func TestStudentUpdateEmptyPatchIsNoOp(t *testing.T) {
	repo := newFakeStudentRepo()
	repo.students["X1"] = models.Student{StudentID: "X1", FullName: "A"}
	svc := newStudentService(repo)

	require.NoError(t, svc.Update(context.Background(), "X1", []byte(`{}`)))
	require.Nil(t, repo.updates)

	err := svc.Update(context.Background(), "missing", []byte(`{}`))
	require.ErrorIs(t, err, ErrStudentNotFound)
}

func TestStudentUpdateRejectsUnknownField(t *testing.T) {
	repo := newFakeStudentRepo()
	repo.students["X1"] = models.Student{StudentID: "X1", FullName: "A"}
	svc := newStudentService(repo)

	err := svc.Update(context.Background(), "X1", []byte(`{"nickname": "x"}`))
	require.Error(t, err)
	require.True(t, patch.IsFieldError(err))
}

func TestStudentDeleteIsIdempotent(t *testing.T) {
	repo := newFakeStudentRepo()
	repo.students["X1"] = models.Student{StudentID: "X1", FullName: "A"}
	svc := newStudentService(repo)

	require.NoError(t, svc.Delete(context.Background(), "X1"))
	require.NoError(t, svc.Delete(context.Background(), "X1"))
}
