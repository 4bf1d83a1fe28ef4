package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/waritk/gradtrack-api/internal/models"
)

func TestThesisUpsertCreatesThenPatches(t *testing.T) {
	db := setupTestDB(t)
	repo := NewThesisRepository(db)

	require.NoError(t, db.Create(&models.Student{StudentID: "X1", FullName: "A"}).Error)

	created, err := repo.Upsert(context.Background(), "X1", map[string]interface{}{
		"proposal_status": strPtr("ผ่าน"),
	})
	require.NoError(t, err)
	require.True(t, created)

	created, err = repo.Upsert(context.Background(), "X1", map[string]interface{}{
		"defense_status": strPtr("ผ่าน"),
	})
	require.NoError(t, err)
	require.False(t, created)

	var count int64
	require.NoError(t, db.Model(&models.ThesisProgress{}).Count(&count).Error)
	require.Equal(t, int64(1), count)

	progress, err := repo.GetByStudent(context.Background(), "X1")
	require.NoError(t, err)
	require.NotNil(t, progress.ProposalStatus)
	require.Equal(t, "ผ่าน", *progress.ProposalStatus, "earlier patch must survive later ones")
	require.NotNil(t, progress.DefenseStatus)
	require.Nil(t, progress.ProposalExamDate)
}

func TestThesisUpsertIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewThesisRepository(db)

	require.NoError(t, db.Create(&models.Student{StudentID: "X1", FullName: "A"}).Error)

	payload := map[string]interface{}{
		"proposal_exam_date": strPtr("29 พ.ค.65"),
		"proposal_status":    strPtr("ผ่าน"),
	}

	created, err := repo.Upsert(context.Background(), "X1", payload)
	require.NoError(t, err)
	require.True(t, created)

	created, err = repo.Upsert(context.Background(), "X1", payload)
	require.NoError(t, err)
	require.False(t, created)

	var rows []models.ThesisProgress
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	require.Equal(t, "29 พ.ค.65", *rows[0].ProposalExamDate)
}

func TestThesisUpsertNullOverwrites(t *testing.T) {
	db := setupTestDB(t)
	repo := NewThesisRepository(db)

	require.NoError(t, db.Create(&models.Student{StudentID: "X1", FullName: "A"}).Error)

	_, err := repo.Upsert(context.Background(), "X1", map[string]interface{}{
		"proposal_status": strPtr("ผ่าน"),
	})
	require.NoError(t, err)

	_, err = repo.Upsert(context.Background(), "X1", map[string]interface{}{
		"proposal_status": (*string)(nil),
	})
	require.NoError(t, err)

	progress, err := repo.GetByStudent(context.Background(), "X1")
	require.NoError(t, err)
	require.Nil(t, progress.ProposalStatus)
}

func TestThesisUpsertEmptyPatch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewThesisRepository(db)

	require.NoError(t, db.Create(&models.Student{StudentID: "X1", FullName: "A"}).Error)

	// First touch with no fields still creates the record.
	created, err := repo.Upsert(context.Background(), "X1", nil)
	require.NoError(t, err)
	require.True(t, created)

	before, err := repo.GetByStudent(context.Background(), "X1")
	require.NoError(t, err)

	// Second empty patch changes nothing.
	created, err = repo.Upsert(context.Background(), "X1", nil)
	require.NoError(t, err)
	require.False(t, created)

	after, err := repo.GetByStudent(context.Background(), "X1")
	require.NoError(t, err)
	require.Equal(t, before.UpdatedAt, after.UpdatedAt)
}
