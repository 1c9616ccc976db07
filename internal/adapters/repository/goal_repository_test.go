package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayershov777/todos/internal/domain/entities"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func goalColumns() []string {
	return []string{"id", "user_id", "title", "description", "target_date", "completed", "milestones", "created_at", "updated_at"}
}

func TestGoalRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGoalRepository(db)

	userID := entities.NewID()
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO goals`).
		WithArgs(sqlmock.AnyArg(), userID, "Learn piano", "", sqlmock.AnyArg(), false, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	goal := &entities.Goal{
		UserID: userID,
		Title:  "Learn piano",
	}
	err := repo.Create(context.Background(), goal)

	require.NoError(t, err)
	assert.True(t, entities.IsValidID(goal.ID), "create assigns a store id")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGoalRepository(db)

	userID := entities.NewID()
	goalID := entities.NewID()

	t.Run("found", func(t *testing.T) {
		milestones, err := entities.Milestones{{ID: entities.NewID(), Title: "Scales"}}.Value()
		require.NoError(t, err)

		mock.ExpectQuery(`SELECT (.+) FROM goals WHERE id = \$1 AND user_id = \$2`).
			WithArgs(goalID, userID).
			WillReturnRows(sqlmock.NewRows(goalColumns()).
				AddRow(goalID, userID, "Learn piano", "", nil, false, milestones, time.Now(), time.Now()))

		goal, err := repo.GetByID(context.Background(), userID, goalID)
		require.NoError(t, err)
		assert.Equal(t, goalID, goal.ID)
		require.Len(t, goal.Milestones, 1)
		assert.Equal(t, "Scales", goal.Milestones[0].Title)
	})

	t.Run("wrong owner reads as not found", func(t *testing.T) {
		otherUser := entities.NewID()

		mock.ExpectQuery(`SELECT (.+) FROM goals WHERE id = \$1 AND user_id = \$2`).
			WithArgs(goalID, otherUser).
			WillReturnRows(sqlmock.NewRows(goalColumns()))

		_, err := repo.GetByID(context.Background(), otherUser, goalID)
		assert.ErrorIs(t, err, entities.ErrGoalNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalRepository_GetByMilestone(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGoalRepository(db)

	userID := entities.NewID()
	goalID := entities.NewID()
	milestoneID := entities.NewID()

	t.Run("containment match", func(t *testing.T) {
		milestones, err := entities.Milestones{{ID: milestoneID, Title: "Scales"}}.Value()
		require.NoError(t, err)

		mock.ExpectQuery(`FROM goals\s+WHERE user_id = \$1\s+AND milestones @>`).
			WithArgs(userID, milestoneID).
			WillReturnRows(sqlmock.NewRows(goalColumns()).
				AddRow(goalID, userID, "Learn piano", "", nil, false, milestones, time.Now(), time.Now()))

		goal, err := repo.GetByMilestone(context.Background(), userID, milestoneID)
		require.NoError(t, err)
		assert.Equal(t, goalID, goal.ID)
	})

	t.Run("no goal contains the milestone", func(t *testing.T) {
		mock.ExpectQuery(`FROM goals\s+WHERE user_id = \$1\s+AND milestones @>`).
			WithArgs(userID, milestoneID).
			WillReturnRows(sqlmock.NewRows(goalColumns()))

		_, err := repo.GetByMilestone(context.Background(), userID, milestoneID)
		assert.ErrorIs(t, err, entities.ErrMilestoneNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGoalRepository(db)

	goal := &entities.Goal{
		ID:     entities.NewID(),
		UserID: entities.NewID(),
		Title:  "Learn piano",
	}

	t.Run("updates matching row", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE goals`).
			WithArgs(goal.ID, goal.UserID, goal.Title, goal.Description, sqlmock.AnyArg(), goal.Completed, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(time.Now()))

		require.NoError(t, repo.Update(context.Background(), goal))
	})

	t.Run("vanished row reads as not found", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE goals`).
			WithArgs(goal.ID, goal.UserID, goal.Title, goal.Description, sqlmock.AnyArg(), goal.Completed, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

		err := repo.Update(context.Background(), goal)
		assert.ErrorIs(t, err, entities.ErrGoalNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalRepository_Delete(t *testing.T) {
	userID := entities.NewID()
	goalID := entities.NewID()

	t.Run("clears task references and deletes in one transaction", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGoalRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE tasks SET goal_id = NULL, milestone_id = NULL`).
			WithArgs(userID, goalID).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`DELETE FROM goals WHERE id = \$1 AND user_id = \$2`).
			WithArgs(goalID, userID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Delete(context.Background(), userID, goalID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing goal rolls back without deleting", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGoalRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE tasks SET goal_id = NULL, milestone_id = NULL`).
			WithArgs(userID, goalID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM goals WHERE id = \$1 AND user_id = \$2`).
			WithArgs(goalID, userID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Delete(context.Background(), userID, goalID)
		assert.ErrorIs(t, err, entities.ErrGoalNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
