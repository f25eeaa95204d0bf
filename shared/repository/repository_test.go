package repository_test

import (
	"context"
	"errors"
	"nomad/infras/otel/mocks"
	"nomad/infras/postgres"
	"nomad/shared"
	"nomad/shared/dto"
	"nomad/shared/repository"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	Owner  string `db:"owner_name" column:"first_name" table:"users"`
	UserID string `db:"user_id"`
}

func (item) GetJoinQuery() string {
	return "INNER JOIN users ON users.id = items.user_id"
}

func newRepo(t *testing.T) (repository.Repository[item], sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	conn := &postgres.Connection{
		Read:  sqlx.NewDb(db, "postgres"),
		Write: sqlx.NewDb(db, "postgres"),
	}

	return repository.NewRepository[item]("item", "items", "id", conn, mocks.NewOtel()), mock
}

func TestRepository_InsertColumnsSkipJoinedFields(t *testing.T) {
	repo, _ := newRepo(t)

	assert.Equal(t, []string{"id", "name", "user_id"}, repo.InsertColumns)
}

func TestRepository_Insert(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO items (id, name, user_id) VALUES ($1, $2, $3)")).
		WithArgs("i-1", "first", "u-1").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Insert(context.Background(), item{ID: "i-1", Name: "first", UserID: "u-1"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Get(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT items.id, items.name, users.first_name AS owner_name, items.user_id FROM items INNER JOIN users ON users.id = items.user_id")).
		ExpectQuery().
		WithArgs("i-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "owner_name", "user_id"}).AddRow("i-1", "first", "Jane", "u-1"))

	got, err := repo.Get(context.Background(), shared.FilterByID("i-1", "id", "items"))
	require.NoError(t, err)
	assert.Equal(t, item{ID: "i-1", Name: "first", Owner: "Jane", UserID: "u-1"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetNoRowsReturnsZero(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectPrepare("SELECT (.+) FROM items").
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "owner_name", "user_id"}))

	got, err := repo.Get(context.Background(), shared.FilterByID("missing", "id", "items"))
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestRepository_GetAllOrdersAndPaginates(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectPrepare(regexp.QuoteMeta("ORDER BY items.name ASC LIMIT $2 OFFSET $3")).
		ExpectQuery().
		WithArgs("u-1", 10, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "owner_name", "user_id"}).
			AddRow("i-1", "a", "Jane", "u-1").
			AddRow("i-2", "b", "Jane", "u-1"))

	params := dto.QueryParams{Page: 2, Limit: 10, SortBy: "items.name", SortDir: dto.SortDirAsc}

	got, err := repo.GetAll(context.Background(), params, shared.FilterByID("u-1", "user_id", "items"))
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Count(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT COUNT(items.id) FROM items")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.Count(context.Background(), shared.FilterByID("u-1", "user_id", "items"))
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestRepository_DeleteRequiresFilter(t *testing.T) {
	repo, _ := newRepo(t)

	err := repo.Delete(context.Background(), dto.FilterGroup{})
	assert.Error(t, err)
}

func TestRepository_WithTxCommits(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE items SET name = (.+) WHERE").
		WithArgs("renamed", "i-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.WithTx(context.Background(), func(tx *sqlx.Tx) error {
		return repo.UpdateTx(context.Background(), tx, map[string]any{"name": "renamed"}, shared.FilterByID("i-1", "id", "items"))
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_WithTxRollsBack(t *testing.T) {
	repo, mock := newRepo(t)

	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := repo.WithTx(context.Background(), func(*sqlx.Tx) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateAffectedReportsMatchedRows(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
	}{
		{name: "row still in expected state", affected: 1},
		{name: "row moved on", affected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)

			mock.ExpectExec(regexp.QuoteMeta("UPDATE items SET name = $1 WHERE")).
				WithArgs("renamed", "i-1", "first").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			filter := shared.FilterByID("i-1", "id", "items")
			filter.Filters = append(filter.Filters, dto.Filter{Field: "name", ArgName: "current_name", Value: "first", Operator: dto.FilterOperatorEq, Table: "items"})

			got, err := repo.UpdateAffected(context.Background(), map[string]any{"name": "renamed"}, filter)
			require.NoError(t, err)
			assert.Equal(t, tt.affected, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
