package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var conversationColumns = []string{
	"id", "patient_id", "dentist_id", "dentist_user_id",
	"dentist_name", "patient_name", "last_message_at", "created_at",
}

func setupMessageRepoTest(t *testing.T) (*MessageRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "postgres")
	t.Cleanup(func() { sqlxDB.Close() })

	return NewMessageRepository(&models.Config{}, sqlxDB), mock
}

func TestDentistAvailable(t *testing.T) {
	repo, mock := setupMessageRepoTest(t)
	dentistID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 AND status = 'verified'")).
		WithArgs(dentistID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.DentistAvailable(context.Background(), dentistID)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrCreateConversation(t *testing.T) {
	repo, mock := setupMessageRepoTest(t)
	patientID, dentistID, convID := uuid.New(), uuid.New(), uuid.New()
	created := time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (patient_id, dentist_id) DO NOTHING")).
		WithArgs(sqlmock.AnyArg(), patientID, dentistID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE c.patient_id = $1 AND c.dentist_id = $2")).
		WithArgs(patientID, dentistID).
		WillReturnRows(sqlmock.NewRows(conversationColumns).
			AddRow(convID, patientID, dentistID, nil, "drg. Sari", "Budi", nil, created))

	conv, err := repo.GetOrCreateConversation(context.Background(), patientID, dentistID)
	require.NoError(t, err)
	assert.Equal(t, convID, conv.ID)
	assert.Nil(t, conv.DentistUserID)
	assert.Equal(t, "drg. Sari", conv.DentistName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetConversation(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock, id uuid.UUID)
		assertFunc func(t *testing.T, conv *models.Conversation, err error)
	}{
		{
			name: "Found",
			mockSetup: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				owner := uuid.New()
				mock.ExpectQuery(regexp.QuoteMeta("WHERE c.id = $1")).
					WithArgs(id).
					WillReturnRows(sqlmock.NewRows(conversationColumns).
						AddRow(id, uuid.New(), uuid.New(), owner, "drg. Sari", "Budi", time.Now(), time.Now()))
			},
			assertFunc: func(t *testing.T, conv *models.Conversation, err error) {
				require.NoError(t, err)
				assert.NotNil(t, conv.DentistUserID)
				assert.NotNil(t, conv.LastMessageAt)
			},
		},
		{
			name: "NotFound",
			mockSetup: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE c.id = $1")).
					WithArgs(id).
					WillReturnRows(sqlmock.NewRows(conversationColumns))
			},
			assertFunc: func(t *testing.T, conv *models.Conversation, err error) {
				assert.ErrorIs(t, err, models.ErrNotFound)
				assert.Nil(t, conv)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := setupMessageRepoTest(t)
			id := uuid.New()
			tc.mockSetup(mock, id)

			conv, err := repo.GetConversation(context.Background(), id)
			tc.assertFunc(t, conv, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListConversations(t *testing.T) {
	repo, mock := setupMessageRepoTest(t)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE c.patient_id = $1 OR d.user_id = $1")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(conversationColumns).
			AddRow(uuid.New(), userID, uuid.New(), nil, "drg. Sari", "Budi", nil, time.Now()).
			AddRow(uuid.New(), userID, uuid.New(), uuid.New(), "drg. Andi", "Budi", time.Now(), time.Now()))

	items, err := repo.ListConversations(context.Background(), userID)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMessages(t *testing.T) {
	repo, mock := setupMessageRepoTest(t)
	convID := uuid.New()
	before := time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("created_at < $2")).
		WithArgs(convID, sqlmock.AnyArg(), 20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "sender_id", "body", "created_at"}).
			AddRow(uuid.New(), convID, uuid.New(), "hello", before.Add(-time.Minute)))

	items, err := repo.ListMessages(context.Background(), convID, &before, 20)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "hello", items[0].Body)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMessage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock := setupMessageRepoTest(t)
		msg := &models.Message{ConversationID: uuid.New(), SenderID: uuid.New(), Body: "hi"}

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO messages")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE conversations SET last_message_at = $2 WHERE id = $1")).
			WithArgs(msg.ConversationID, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.CreateMessage(context.Background(), msg))
		assert.NotEqual(t, uuid.Nil, msg.ID)
		assert.False(t, msg.CreatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InsertFails", func(t *testing.T) {
		repo, mock := setupMessageRepoTest(t)
		msg := &models.Message{ConversationID: uuid.New(), SenderID: uuid.New(), Body: "hi"}

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO messages")).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err := repo.CreateMessage(context.Background(), msg)
		assert.ErrorContains(t, err, "failed to insert message")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
