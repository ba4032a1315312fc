package notification

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TableBookingService/internal/domain"
)

func TestRepository_Create_DefaultsToPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notifications")).
		WithArgs("CUSTOMER", int64(7), "EMAIL", "Booking confirmed", "See you soon", []byte("{}"), "PENDING", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), time.Now()))

	n, err := repo.Create(context.Background(), &domain.Notification{
		RecipientType: domain.RecipientCustomer,
		RecipientID:   7,
		Channel:       domain.ChannelEmail,
		Title:         "Booking confirmed",
		Message:       "See you soon",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), n.ID)
	assert.Equal(t, domain.NotificationPending, n.Status)
}

func TestRepository_UpdateStatus_Sent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	at := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE notifications SET status = $1, sent_at = $2 WHERE id = $3")).
		WithArgs("SENT", at, int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), 11, domain.NotificationSent, at))
	assert.NoError(t, mock.ExpectationsWereMet())
}
