package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/waritk/gradtrack-api/internal/models"
)

func TestCourseListOrderedByCode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCourseRepository(db)

	require.NoError(t, db.Create(&models.Student{StudentID: "X1", FullName: "A"}).Error)
	require.NoError(t, db.Create(&models.CourseEnrollment{StudentID: "X1", CourseCode: strPtr("MNS623")}).Error)
	require.NoError(t, db.Create(&models.CourseEnrollment{StudentID: "X1", CourseCode: strPtr("MAT604")}).Error)

	enrollments, err := repo.ListByStudent(context.Background(), "X1")
	require.NoError(t, err)
	require.Len(t, enrollments, 2)
	require.Equal(t, "MAT604", *enrollments[0].CourseCode)
}

func TestCourseCreateRequiresExistingStudent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCourseRepository(db)

	err := repo.Create(context.Background(), &models.CourseEnrollment{StudentID: "nobody"})
	require.Error(t, err, "foreign key must reject orphan enrollments")
}

func TestCourseUpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCourseRepository(db)

	require.NoError(t, db.Create(&models.Student{StudentID: "X1", FullName: "A"}).Error)
	enrollment := models.CourseEnrollment{StudentID: "X1", CourseCode: strPtr("MAT604"), Grade: strPtr("B")}
	require.NoError(t, repo.Create(context.Background(), &enrollment))

	rows, err := repo.Update(context.Background(), enrollment.ID, map[string]interface{}{
		"grade": strPtr("A"),
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), rows)

	enrollments, err := repo.ListByStudent(context.Background(), "X1")
	require.NoError(t, err)
	require.Equal(t, "A", *enrollments[0].Grade)
	require.Equal(t, "MAT604", *enrollments[0].CourseCode)

	rows, err = repo.Delete(context.Background(), enrollment.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), rows)
}
