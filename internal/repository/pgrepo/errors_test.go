package pgrepo

import (
	"errors"
	"testing"

	"github.com/fsdevblog/groph-invest/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
)

type ConvertErrTestSuite struct {
	suite.Suite
}

func TestConvertErrSuite(t *testing.T) {
	suite.Run(t, new(ConvertErrTestSuite))
}

func (s *ConvertErrTestSuite) TestConvertErr() {
	cases := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "no rows",
			err:     pgx.ErrNoRows,
			wantErr: domain.ErrRecordNotFound,
		}, {
			name:    "no rows affected",
			err:     errNoRowsAffected,
			wantErr: domain.ErrRecordNotFound,
		}, {
			name:    "unique violation",
			err:     &pgconn.PgError{Code: uniqueViolationCode},
			wantErr: domain.ErrDuplicateKey,
		}, {
			name:    "other pg error",
			err:     &pgconn.PgError{Code: "42703"},
			wantErr: domain.ErrUnknown,
		}, {
			name:    "plain error",
			err:     errors.New("connection reset"),
			wantErr: domain.ErrUnknown,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			got := convertErr(t.err, "finding record by id %d", 7)

			s.Require().ErrorIs(got, t.wantErr)
			s.Contains(got.Error(), "finding record by id 7")
		})
	}
}

func (s *ConvertErrTestSuite) TestConvertErrNil() {
	s.NoError(convertErr(nil, "whatever"))
}

// TestConvertErrPercentInMessage сообщение контекста, уже содержащее спецсимволы printf,
// не должно искажаться при передаче через "%s".
func (s *ConvertErrTestSuite) TestConvertErrPercentInMessage() {
	msg := "collecting rows matched by code LIKE '%PROMO%'"

	got := convertErr(pgx.ErrNoRows, "%s", msg)

	s.Require().ErrorIs(got, domain.ErrRecordNotFound)
	s.Contains(got.Error(), msg)
}
