package loyalty

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/pkg/dbmetrics"
)

func TestRepository_GetByCustomer_LocksInsideTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM loyalty_accounts WHERE customer_id = $1 FOR UPDATE")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(accountColumns).AddRow(int64(1), int64(7), 15, "GOLD", 2, now, now))

	tx, err := db.Begin()
	require.NoError(t, err)

	account, err := repo.GetByCustomer(dbmetrics.WithTx(context.Background(), tx), 7)

	require.NoError(t, err)
	assert.Equal(t, 15, account.PointsBalance)
	assert.Equal(t, domain.LoyaltyGold, account.Tier)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByCustomer_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectQuery("FROM loyalty_accounts").WillReturnRows(sqlmock.NewRows(accountColumns))

	_, err = repo.GetByCustomer(context.Background(), 7)

	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestRepository_CreateIfMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO loyalty_accounts (customer_id,points_balance,tier) VALUES ($1,$2,$3) ON CONFLICT (customer_id) DO NOTHING")).
		WithArgs(int64(7), 0, "REGULAR").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.CreateIfMissing(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}
