package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/enroll-api/internal/store"
)

func pgError(code, constraint string) *pgconn.PgError {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil error", nil, nil},
		{"no rows", sql.ErrNoRows, store.ErrNotFound},
		{"student email taken", pgError("23505", "students_email_key"), store.ErrEmailExists},
		{"teacher email taken", pgError("23505", "teachers_email_key"), store.ErrEmailExists},
		{"product name taken", pgError("23505", "products_name_key"), store.ErrProductNameExists},
		{"group name taken", pgError("23505", "groups_name_key"), store.ErrGroupNameExists},
		{"access already granted", pgError("23505", "student_products_pkey"), store.ErrAccessExists},
		{
			"second membership for product",
			pgError("23505", "group_members_product_id_student_id_key"),
			store.ErrMembershipExists,
		},
		{"unknown unique constraint", pgError("23505", "somewhere_else"), store.ErrDuplicate},
		{"foreign key violation", pgError("23503", "products_teacher_id_fkey"), store.ErrInvalidEntity},
		{"check violation", pgError("23514", "products_group_size_check"), store.ErrInvalidEntity},
		{"serialization failure", pgError("40001", ""), store.ErrConflict},
		{"deadlock", pgError("40P01", ""), store.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.True(t, errors.Is(got, tt.want),
				"expected %v to wrap %v", got, tt.want)
		})
	}

	// Errors without a specific mapping pass through unchanged.
	opaque := errors.New("connection reset")
	assert.Equal(t, opaque, MapError(opaque))

	// Wrapped driver errors still map.
	wrapped := fmt.Errorf("exec: %w", pgError("40001", ""))
	assert.True(t, errors.Is(MapError(wrapped), store.ErrConflict))
}

func TestIsSerializationFailure(t *testing.T) {
	assert.True(t, IsSerializationFailure(pgError("40001", "")))
	assert.True(t, IsSerializationFailure(pgError("40P01", "")))
	assert.False(t, IsSerializationFailure(pgError("23505", "groups_name_key")))
	assert.False(t, IsSerializationFailure(errors.New("other")))
}
