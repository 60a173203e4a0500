package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintClassification(t *testing.T) {
	t.Parallel()

	fk := &pgconn.PgError{Code: "23503", Message: "insert or update on table \"claim_data\" violates foreign key constraint"}
	check := &pgconn.PgError{Code: "23514", Message: "new row for relation \"food_data\" violates check constraint"}
	notNull := &pgconn.PgError{Code: "23502", Message: "null value in column \"name\""}
	unique := &pgconn.PgError{Code: "23505", Message: "duplicate key value"}

	tests := []struct {
		name    string
		err     error
		fk      bool
		check   bool
		notNull bool
		unique  bool
	}{
		{name: "foreign key pg error", err: fk, fk: true},
		{name: "wrapped foreign key pg error", err: fmt.Errorf("exec: %w", fk), fk: true},
		{name: "gorm translated foreign key", err: gorm.ErrForeignKeyViolated, fk: true},
		{name: "check pg error", err: check, check: true},
		{name: "gorm translated check", err: gorm.ErrCheckConstraintViolated, check: true},
		{name: "not null pg error", err: notNull, notNull: true},
		{name: "unique pg error", err: unique, unique: true},
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, unique: true},
		{name: "connectivity", err: errors.New("dial tcp: connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fk, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.check, isCheckConstraintViolation(tt.err))
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err))
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
		})
	}
}
