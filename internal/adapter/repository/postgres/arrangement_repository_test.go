package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/srgjo27/openspace/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return db, mock
}

func strPtr(s string) *string { return &s }

func sampleArrangement() *domain.Arrangement {
	return &domain.Arrangement{
		ID:        uuid.New(),
		CreatedAt: time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC),
		Layout: domain.Layout{
			TableCount:   2,
			Capacity:     4,
			LeftCapacity: 1,
			Tables: []domain.TableLayout{
				{Capacity: 2, LeftCapacity: 0, Seats: []*string{strPtr("A"), strPtr("B")}},
				{Capacity: 2, LeftCapacity: 1, Seats: []*string{strPtr("C"), nil}},
			},
		},
		Unseated: []string{"Zed"},
	}
}

func TestSave_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewArrangementRepository(db)
	a := sampleArrangement()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO arrangements").
		WithArgs(a.ID, a.CreatedAt, 2, 4, 1, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	prep := mock.ExpectPrepare("INSERT INTO arrangement_tables")
	prep.ExpectExec().WithArgs(a.ID, 0, 2, 0, sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WithArgs(a.ID, 1, 2, 1, sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Save(context.Background(), a)

	assert.NoError(t, err)
}

func TestSave_Fail_RollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewArrangementRepository(db)
	a := sampleArrangement()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO arrangements").WillReturnError(errors.New("duplicate key"))
	mock.ExpectRollback()

	err := repo.Save(context.Background(), a)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert arrangement header")
}

func TestSave_Fail_TableInsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewArrangementRepository(db)
	a := sampleArrangement()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO arrangements").WillReturnResult(sqlmock.NewResult(0, 1))
	prep := mock.ExpectPrepare("INSERT INTO arrangement_tables")
	prep.ExpectExec().WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	err := repo.Save(context.Background(), a)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert table 0")
}

func TestGetByID_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewArrangementRepository(db)
	want := sampleArrangement()

	mock.ExpectQuery("SELECT (.+) FROM arrangements WHERE id = \\$1").
		WithArgs(want.ID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "table_count", "capacity", "left_capacity", "unseated"}).
			AddRow(want.ID.String(), want.CreatedAt, 2, 4, 1, "{Zed}"))
	mock.ExpectQuery("SELECT (.+) FROM arrangement_tables WHERE arrangement_id = \\$1 ORDER BY position").
		WithArgs(want.ID).
		WillReturnRows(sqlmock.NewRows([]string{"capacity", "left_capacity", "seats"}).
			AddRow(2, 0, "{A,B}").
			AddRow(2, 1, `{C,""}`))

	got, err := repo.GetByID(context.Background(), want.ID)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetByID_Fail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewArrangementRepository(db)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM arrangements").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "table_count", "capacity", "left_capacity", "unseated"}))

	got, err := repo.GetByID(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrArrangementNotFound)
	assert.Nil(t, got)
}
