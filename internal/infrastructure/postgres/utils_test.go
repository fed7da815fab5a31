package postgres

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/controle-estoque/internal/domain/entity"
)

func TestPgErrorCodes(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}

	assert.True(t, isUniqueViolation(unique))
	assert.False(t, isForeignKeyViolation(unique))
	assert.True(t, isForeignKeyViolation(fk))
	assert.False(t, isUniqueViolation(errors.New("timeout")))
}

func TestNullableID(t *testing.T) {
	assert.Nil(t, nullableID(0))
	assert.Equal(t, int64(3), *nullableID(3))
	assert.Equal(t, int64(0), derefID(nil))
	v := int64(9)
	assert.Equal(t, int64(9), derefID(&v))
}

func TestMigrateURL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@db:5432/estoque?sslmode=disable", migrateURL("postgres://u:p@db:5432/estoque?sslmode=disable"))
	assert.Equal(t, "pgx5://h/db", migrateURL("postgresql://h/db"))
	assert.Equal(t, "pgx5://h/db", migrateURL("pgx5://h/db"))
}

func TestMigrationsEmbebidas(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestNearMinimumWhere_EnNumeric(t *testing.T) {
	assert.Contains(t, nearMinimumWhere, "quantidade::numeric * 100")
	assert.Contains(t, nearMinimumWhere, "estoque_minimo::numeric * 120")
}

func TestClampChronology(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	movs := []*entity.Movement{
		{ID: 1, CreatedAt: t0},
		{ID: 2, CreatedAt: t0.Add(-time.Millisecond)},
		{ID: 3, CreatedAt: t0.Add(time.Second)},
	}

	out := clampChronology(movs)
	assert.Equal(t, t0, out[1].CreatedAt, "una fecha anterior se iguala a la previa")
	assert.Equal(t, t0.Add(time.Second), out[2].CreatedAt)
	for i := 1; i < len(out); i++ {
		assert.False(t, out[i].CreatedAt.Before(out[i-1].CreatedAt))
	}
	assert.Empty(t, clampChronology(nil))
}
