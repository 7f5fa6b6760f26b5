package postgres

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"projectportal/internal/domain"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil passes through", nil, nil},
		{"no rows is not found", sql.ErrNoRows, domain.ErrNotFound},
		{"bad conn is store unavailable", driver.ErrBadConn, domain.ErrStoreUnavailable},
		{"conn done is store unavailable", sql.ErrConnDone, domain.ErrStoreUnavailable},
		{"unique violation is conflict", &pq.Error{Code: "23505", Constraint: "memberships_project_id_account_id_key"}, domain.ErrConflict},
		{"fk violation is conflict", &pq.Error{Code: "23503"}, domain.ErrConflict},
		{"connection exception is store unavailable", &pq.Error{Code: "08006"}, domain.ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.True(t, errors.Is(got, tt.want), "got %v", got)
		})
	}
}

func TestTranslateErrorLeavesOthersAlone(t *testing.T) {
	original := fmt.Errorf("syntax error at or near")
	assert.Equal(t, original, translateError(original))
}
