package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"projectportal/internal/domain"
	"projectportal/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCascadeRemovesEverything(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT to_regclass\('submissions'\) IS NOT NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec(`DELETE FROM likes WHERE submission_id IN`).
		WithArgs(int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec(`DELETE FROM memberships WHERE project_id`).
		WithArgs(int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM submissions WHERE project_id`).
		WithArgs(int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM projects WHERE id`).
		WithArgs(int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := postgres.NewProjectRepository(db)
	err = repo.DeleteCascade(context.Background(), 1)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCascadeRollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT to_regclass\('submissions'\) IS NOT NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec(`DELETE FROM likes WHERE submission_id IN`).
		WithArgs(int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec(`DELETE FROM memberships WHERE project_id`).
		WithArgs(int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM submissions WHERE project_id`).
		WithArgs(int32(1)).
		WillReturnError(errors.New("disk failure"))
	mock.ExpectRollback()

	repo := postgres.NewProjectRepository(db)
	err = repo.DeleteCascade(context.Background(), 1)

	assert.True(t, errors.Is(err, domain.ErrDeletionFailed))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCascadeToleratesMissingSubmissionsTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT to_regclass\('submissions'\) IS NOT NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(`DELETE FROM memberships WHERE project_id`).
		WithArgs(int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM projects WHERE id`).
		WithArgs(int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := postgres.NewProjectRepository(db)
	err = repo.DeleteCascade(context.Background(), 1)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCascadeUnknownProject(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT to_regclass\('submissions'\) IS NOT NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec(`DELETE FROM likes WHERE submission_id IN`).
		WithArgs(int32(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM memberships WHERE project_id`).
		WithArgs(int32(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM submissions WHERE project_id`).
		WithArgs(int32(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM projects WHERE id`).
		WithArgs(int32(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	repo := postgres.NewProjectRepository(db)
	err = repo.DeleteCascade(context.Background(), 99)

	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchAnnotatesViewerStatusAndCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	columns := []string{
		"id", "title", "description", "head_account_id", "start_date", "end_date",
		"status", "image_ref", "created_on", "status", "count",
	}
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(columns).
		AddRow(2, "Solar Car v2", "", 3, start, end, "UPCOMING", nil, "2026-08-01", "APPROVED", 3).
		AddRow(1, "Solar Car", "", 2, start, end, "ONGOING", nil, "2026-07-01", nil, 0)

	// The membership join must be scoped to the viewer, newest project first.
	mock.ExpectQuery(`LEFT JOIN memberships m ON m.project_id = p.id AND m.account_id = \$1 .* ORDER BY p.id DESC`).
		WithArgs(int32(10), "solar").
		WillReturnRows(rows)

	repo := postgres.NewProjectRepository(db)
	summaries, err := repo.Search(context.Background(), 10, "solar")

	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, int32(2), summaries[0].ID)
	require.NotNil(t, summaries[0].ViewerStatus)
	assert.Equal(t, domain.MembershipStatusApproved, *summaries[0].ViewerStatus)
	assert.Equal(t, int32(3), summaries[0].ApprovedCount)

	assert.Equal(t, int32(1), summaries[1].ID)
	assert.Nil(t, summaries[1].ViewerStatus)
	assert.Equal(t, int32(0), summaries[1].ApprovedCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePreservesHead(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	project := &domain.Project{
		ID:            1,
		Title:         "Solar Car",
		Description:   "desc",
		HeadAccountID: 2,
		StartDate:     time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
		Status:        domain.ProjectStatusUpcoming,
	}

	// head_account_id is not among the update args.
	mock.ExpectExec(`UPDATE projects SET title = \$1, description = \$2, start_date = \$3, end_date = \$4, status = \$5, image_ref = \$6\s+WHERE id = \$7`).
		WithArgs(project.Title, project.Description, project.StartDate, project.EndDate,
			string(project.Status), nil, project.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := postgres.NewProjectRepository(db)
	err = repo.Update(context.Background(), project)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUnknownProject(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE projects SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := postgres.NewProjectRepository(db)
	err = repo.Update(context.Background(), &domain.Project{ID: 99, Title: "x"})

	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestMarkCompletedBefore(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cutoff := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(`UPDATE projects SET status = 'COMPLETED' WHERE end_date < \$1 AND status <> 'COMPLETED'`).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 4))

	repo := postgres.NewProjectRepository(db)
	rows, err := repo.MarkCompletedBefore(context.Background(), cutoff)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), rows)
}

func TestGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, title, description, head_account_id`).
		WithArgs(int32(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := postgres.NewProjectRepository(db)
	_, err = repo.GetByID(context.Background(), 99)

	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
