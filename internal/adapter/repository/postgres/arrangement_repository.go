package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/srgjo27/openspace/internal/core/domain"
)

type ArrangementRepository struct {
	db *sql.DB
}

func NewArrangementRepository(db *sql.DB) *ArrangementRepository {
	return &ArrangementRepository{db: db}
}

func (r *ArrangementRepository) Save(ctx context.Context, a *domain.Arrangement) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	queryHeader := `
	INSERT INTO arrangements (id, created_at, table_count, capacity, left_capacity, unseated)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = tx.ExecContext(ctx, queryHeader, a.ID, a.CreatedAt, a.TableCount, a.Capacity, a.LeftCapacity, pq.StringArray(a.Unseated))
	if err != nil {
		return fmt.Errorf("failed to insert arrangement header: %w", err)
	}

	queryTable := `
	INSERT INTO arrangement_tables (arrangement_id, position, capacity, left_capacity, seats)
	VALUES ($1, $2, $3, $4, $5)
	`

	stmt, err := tx.PrepareContext(ctx, queryTable)
	if err != nil {
		return fmt.Errorf("failed to prepare table statement: %w", err)
	}

	defer stmt.Close()

	for i, t := range a.Tables {
		_, err := stmt.ExecContext(ctx, a.ID, i, t.Capacity, t.LeftCapacity, toSeatArray(t.Seats))
		if err != nil {
			return fmt.Errorf("failed to insert table %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *ArrangementRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Arrangement, error) {
	queryHeader := `
	SELECT id, created_at, table_count, capacity, left_capacity, unseated
	FROM arrangements
	WHERE id = $1
	`

	var a domain.Arrangement
	err := r.db.QueryRowContext(ctx, queryHeader, id).Scan(
		&a.ID,
		&a.CreatedAt,
		&a.TableCount,
		&a.Capacity,
		&a.LeftCapacity,
		pq.Array(&a.Unseated),
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrArrangementNotFound
		}

		return nil, err
	}

	if a.Unseated == nil {
		a.Unseated = []string{}
	}

	queryTables := `
	SELECT capacity, left_capacity, seats
	FROM arrangement_tables
	WHERE arrangement_id = $1
	ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, queryTables, id)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	a.Tables = make([]domain.TableLayout, 0, a.TableCount)
	for rows.Next() {
		var t domain.TableLayout
		var seats pq.StringArray
		if err := rows.Scan(&t.Capacity, &t.LeftCapacity, &seats); err != nil {
			return nil, err
		}

		t.Seats = fromSeatArray(seats)
		a.Tables = append(a.Tables, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &a, nil
}

// Free seats are stored as empty strings; occupants are never blank.
func toSeatArray(seats []*string) pq.StringArray {
	out := make(pq.StringArray, len(seats))
	for i, s := range seats {
		if s != nil {
			out[i] = *s
		}
	}

	return out
}

func fromSeatArray(seats pq.StringArray) []*string {
	out := make([]*string, len(seats))
	for i, s := range seats {
		if s != "" {
			name := s
			out[i] = &name
		}
	}

	return out
}
