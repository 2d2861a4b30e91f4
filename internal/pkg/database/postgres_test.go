package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	dsn := DSN(models.DatabaseConfig{
		Host:     "db",
		Port:     5432,
		Username: "senyum",
		Password: "secret",
		Database: "directory",
		SSLMode:  "disable",
	})

	assert.Equal(t, "postgres://senyum:secret@db:5432/directory?sslmode=disable", dsn)
}

func TestPostgresClient_Ping(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	client := NewPostgresClientFromDB(sqlx.NewDb(mockDB, "sqlmock"))

	mock.ExpectPing()
	assert.NoError(t, client.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	assert.Error(t, client.Ping(context.Background()))

	mock.ExpectClose()
	assert.NoError(t, client.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewPostgresClient_ConnectionError(t *testing.T) {
	client, err := NewPostgresClient(models.DatabaseConfig{
		Driver:   "pgx",
		Host:     "127.0.0.1",
		Port:     1,
		Username: "nobody",
		Database: "none",
		SSLMode:  "disable",
	})

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to ping postgres")
}
