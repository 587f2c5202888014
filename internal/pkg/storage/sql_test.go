package storage

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackmarvels/platform/internal/pkg/database"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLAdapter(t *testing.T) (*SQL, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	client := database.NewPostgresClientFromDB(sqlx.NewDb(mockDB, "sqlmock"))
	return NewSQL(client, "kv_store"), mock
}

func TestSQL_Get(t *testing.T) {
	adapter, mock := newSQLAdapter(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv_store WHERE key = $1`)).
		WithArgs("app_state").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{"theme":"dark"}`)))

	got, err := adapter.Get(context.Background(), "app_state")

	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":"dark"}`, string(got))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_GetMissing(t *testing.T) {
	adapter, mock := newSQLAdapter(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv_store WHERE key = $1`)).
		WithArgs("app_state").
		WillReturnError(sql.ErrNoRows)

	_, err := adapter.Get(context.Background(), "app_state")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_SetAndDelete(t *testing.T) {
	adapter, mock := newSQLAdapter(t)

	mock.ExpectExec(`INSERT INTO kv_store`).
		WithArgs("auth_tokens", []byte("v")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM kv_store WHERE key = $1`)).
		WithArgs("auth_tokens").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, adapter.Set(context.Background(), "auth_tokens", []byte("v")))
	require.NoError(t, adapter.Delete(context.Background(), "auth_tokens"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_Migrate(t *testing.T) {
	adapter, mock := newSQLAdapter(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS kv_store`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, adapter.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
