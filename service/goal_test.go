package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goalColumns() []string {
	return []string{"id", "user_id", "title", "target_amount", "current_amount", "category", "deadline", "created_at", "updated_at", "deleted_at"}
}

func contributionColumns() []string {
	return []string{"id", "saving_goal_id", "amount", "contribution_date", "description", "created_at"}
}

func TestGoalServiceAddContribution(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `saving_goals`").
		WithArgs(3, 1).
		WillReturnRows(sqlmockRows(goalColumns()).
			AddRow(3, 1, "tatil", "6000", "1000", "vacation", time.Now(), time.Now(), time.Now(), nil))
	mock.ExpectQuery("SELECT .* FROM `user_settings` .*FOR UPDATE").
		WithArgs(1).
		WillReturnRows(settingsRow(sqlmockRows(settingsColumns()), "0", "0", "800"))
	// savings fund 800 - 500
	mock.ExpectExec("UPDATE `user_settings`").
		WithArgs("0", "0", "300", sqlmock.AnyArg(), 1).
		WillReturnResult(resultOK(1))
	mock.ExpectExec("INSERT INTO `saving_contributions`").
		WillReturnResult(resultOK(1))
	// goal advances to 1500
	mock.ExpectExec("UPDATE `saving_goals`").
		WithArgs("1500", sqlmock.AnyArg(), 3).
		WillReturnResult(resultOK(1))
	mock.ExpectCommit()

	contribution, err := NewGoalService(db).AddContribution(1, 3, mustDecimal("500"), time.Now(), "maaştan")
	require.NoError(t, err)
	assert.True(t, contribution.Amount.Equal(mustDecimal("500")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalServiceAddContribution_NonPositive(t *testing.T) {
	db, _, cleanup := newMockDB(t)
	defer cleanup()

	_, err := NewGoalService(db).AddContribution(1, 3, mustDecimal("-5"), time.Now(), "")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestGoalServiceAddContribution_GoalNotFound(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `saving_goals`").
		WithArgs(99, 1).
		WillReturnRows(sqlmockRows([]string{}))
	mock.ExpectRollback()

	_, err := NewGoalService(db).AddContribution(1, 99, mustDecimal("500"), time.Now(), "")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalServiceDeleteContribution(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `saving_goals`").
		WithArgs(3, 1).
		WillReturnRows(sqlmockRows(goalColumns()).
			AddRow(3, 1, "tatil", "6000", "1500", "vacation", time.Now(), time.Now(), time.Now(), nil))
	mock.ExpectQuery("SELECT .* FROM `saving_contributions`").
		WithArgs(9, 3).
		WillReturnRows(sqlmockRows(contributionColumns()).
			AddRow(9, 3, "500", time.Now(), "", time.Now()))
	mock.ExpectQuery("SELECT .* FROM `user_settings` .*FOR UPDATE").
		WithArgs(1).
		WillReturnRows(settingsRow(sqlmockRows(settingsColumns()), "0", "0", "300"))
	// the savings fund gets the amount back
	mock.ExpectExec("UPDATE `user_settings`").
		WithArgs("0", "0", "800", sqlmock.AnyArg(), 1).
		WillReturnResult(resultOK(1))
	// the goal rolls back to 1000
	mock.ExpectExec("UPDATE `saving_goals`").
		WithArgs("1000", sqlmock.AnyArg(), 3).
		WillReturnResult(resultOK(1))
	mock.ExpectExec("DELETE FROM `saving_contributions`").
		WillReturnResult(resultOK(1))
	mock.ExpectCommit()

	err := NewGoalService(db).DeleteContribution(1, 3, 9)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalServiceDeleteContribution_FloorsAtZero(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `saving_goals`").
		WithArgs(3, 1).
		WillReturnRows(sqlmockRows(goalColumns()).
			AddRow(3, 1, "tatil", "6000", "200", "vacation", time.Now(), time.Now(), time.Now(), nil))
	mock.ExpectQuery("SELECT .* FROM `saving_contributions`").
		WithArgs(9, 3).
		WillReturnRows(sqlmockRows(contributionColumns()).
			AddRow(9, 3, "500", time.Now(), "", time.Now()))
	mock.ExpectQuery("SELECT .* FROM `user_settings` .*FOR UPDATE").
		WithArgs(1).
		WillReturnRows(settingsRow(sqlmockRows(settingsColumns()), "0", "0", "0"))
	mock.ExpectExec("UPDATE `user_settings`").
		WithArgs("0", "0", "500", sqlmock.AnyArg(), 1).
		WillReturnResult(resultOK(1))
	mock.ExpectExec("UPDATE `saving_goals`").
		WithArgs("0", sqlmock.AnyArg(), 3).
		WillReturnResult(resultOK(1))
	mock.ExpectExec("DELETE FROM `saving_contributions`").
		WillReturnResult(resultOK(1))
	mock.ExpectCommit()

	err := NewGoalService(db).DeleteContribution(1, 3, 9)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
