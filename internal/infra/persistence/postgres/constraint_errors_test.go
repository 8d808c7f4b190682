package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationHelpers(t *testing.T) {
	fk := errors.New(`ERROR: update or delete on table "categories" violates foreign key constraint (SQLSTATE 23503)`)
	unique := errors.New(`ERROR: duplicate key value violates unique constraint "categories_name_key" (SQLSTATE 23505)`)
	notNull := errors.New(`ERROR: null value in column "name" violates not-null constraint (SQLSTATE 23502)`)
	other := errors.New("connection refused")

	assert.True(t, isForeignKeyConstraintViolation(fk))
	assert.True(t, isForeignKeyConstraintViolation(errors.Wrap(gorm.ErrForeignKeyViolated, "delete")))
	assert.False(t, isForeignKeyConstraintViolation(unique))

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(other))

	assert.True(t, isNotNullConstraintViolation(notNull))
	assert.False(t, isNotNullConstraintViolation(other))

	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.False(t, isCheckConstraintViolation(other))
}
