package service

import (
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock, func() { sqlDB.Close() }
}

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sqlmockRows(columns []string) *sqlmock.Rows {
	return sqlmock.NewRows(columns)
}

func resultOK(rowsAffected int64) driver.Result {
	return sqlmock.NewResult(1, rowsAffected)
}

func settingsColumns() []string {
	return []string{
		"id", "user_id", "debt_percentage", "savings_percentage", "debt_strategy",
		"balance", "debt_fund", "savings_fund", "created_at", "updated_at",
	}
}

func settingsRow(mockRows *sqlmock.Rows, balance, debtFund, savingsFund string) *sqlmock.Rows {
	return mockRows.AddRow(
		1, 1, "30.00", "20.00", "snowball",
		balance, debtFund, savingsFund, time.Now(), time.Now(),
	)
}
