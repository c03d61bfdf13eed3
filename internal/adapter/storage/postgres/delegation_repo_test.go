package postgres

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelegationRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDelegationRepo(mock)

	mock.ExpectQuery("SELECT delegate FROM delegations WHERE delegator").
		WithArgs("jane").
		WillReturnRows(pgxmock.NewRows([]string{"delegate"}).AddRow("john"))

	delegate, err := repo.Get(context.Background(), "jane")
	require.NoError(t, err)
	assert.Equal(t, "john", delegate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelegationRepo_Get_NoEdgeIsEmpty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDelegationRepo(mock)

	mock.ExpectQuery("SELECT delegate FROM delegations WHERE delegator").
		WithArgs("john").
		WillReturnRows(pgxmock.NewRows([]string{"delegate"}))

	delegate, err := repo.Get(context.Background(), "john")
	require.NoError(t, err)
	assert.Equal(t, "", delegate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelegationRepo_Set_Upserts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDelegationRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO delegations .+ ON CONFLICT").
		WithArgs("jane", "john").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	assert.NoError(t, repo.Set(context.Background(), tx, "jane", "john"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelegationRepo_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDelegationRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM delegations").
		WithArgs("jane").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	assert.NoError(t, repo.Delete(context.Background(), tx, "jane"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelegationRepo_ListDelegators(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDelegationRepo(mock)

	mock.ExpectQuery("SELECT delegator FROM delegations WHERE delegate").
		WithArgs("john").
		WillReturnRows(pgxmock.NewRows([]string{"delegator"}).AddRow("jane").AddRow("mark"))

	delegators, err := repo.ListDelegators(context.Background(), "john")
	require.NoError(t, err)
	assert.Equal(t, []string{"jane", "mark"}, delegators)
	assert.NoError(t, mock.ExpectationsWereMet())
}
