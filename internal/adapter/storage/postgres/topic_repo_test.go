package postgres

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTopicRepo(mock)

	mock.ExpectQuery("SELECT name FROM webhook_topics").
		WillReturnRows(pgxmock.NewRows([]string{"name"}).
			AddRow("order.created").
			AddRow("order.updated"))

	names, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"order.created", "order.updated"}, names)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopicRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTopicRepo(mock)

	mock.ExpectExec("INSERT INTO webhook_topics").
		WithArgs("order.created").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), "order.created")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopicRepo_Create_AlreadyExists(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTopicRepo(mock)

	// ON CONFLICT DO NOTHING reports zero rows, not an error
	mock.ExpectExec("INSERT INTO webhook_topics").
		WithArgs("order.created").
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	err = repo.Create(context.Background(), "order.created")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopicRepo_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTopicRepo(mock)

	mock.ExpectExec("DELETE FROM webhook_topics").
		WithArgs("order.deleted").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err = repo.Delete(context.Background(), "order.deleted")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
