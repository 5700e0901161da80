package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolations(t *testing.T) {
	pgErr := func(code string) error {
		return errors.Wrap(&pgconn.PgError{Code: code, Message: "violation"}, "failed to create review")
	}

	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		notNull    bool
		check      bool
	}{
		{name: "unique violation", err: pgErr("23505"), unique: true},
		{name: "foreign key violation", err: pgErr("23503"), foreignKey: true},
		{name: "not null violation", err: pgErr("23502"), notNull: true},
		{name: "check violation", err: pgErr("23514"), check: true},
		{name: "translated duplicate key", err: gorm.ErrDuplicatedKey, unique: true},
		{name: "translated foreign key", err: gorm.ErrForeignKeyViolated, foreignKey: true},
		{name: "translated check", err: gorm.ErrCheckConstraintViolated, check: true},
		{name: "serialization failure", err: pgErr("40001")},
		{name: "plain error", err: errors.New("duplicate key value violates unique constraint")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err))
			assert.Equal(t, tt.check, isCheckConstraintViolation(tt.err))
		})
	}
}
