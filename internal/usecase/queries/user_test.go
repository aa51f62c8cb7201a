//go:build unit

package queries_test

import (
	"context"
	"testing"

	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/queries"
	queriesmock "hotel-backoffice/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserQueriesTestSuite struct {
	suite.Suite
	users *queriesmock.MockUserReadStore
	sut   queries.UserQueries
}

func (s *UserQueriesTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.users = queriesmock.NewMockUserReadStore(ctrl)
	s.sut = queries.NewUserQueries(s.users)
}

func (s *UserQueriesTestSuite) TestGetCurrentUser() {
	id := uuid.New()

	s.Run("active", func() {
		s.users.EXPECT().FindByID(gomock.Any(), id).
			Return(&queries.AuthorizedUserView{ID: id, Email: "a@example.com", IsActive: true}, nil)

		got, err := s.sut.GetCurrentUser(context.Background(), id)

		s.Require().NoError(err)
		s.Equal("a@example.com", got.Email)
	})

	s.Run("inactive", func() {
		s.users.EXPECT().FindByID(gomock.Any(), id).
			Return(&queries.AuthorizedUserView{ID: id, IsActive: false}, nil)

		_, err := s.sut.GetCurrentUser(context.Background(), id)

		s.True(errs.Is(err, queries.ErrUserInactive))
	})

	s.Run("not found", func() {
		s.users.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

		_, err := s.sut.GetCurrentUser(context.Background(), id)

		s.True(errs.Is(err, queries.ErrUserNotFound))
	})
}

func (s *UserQueriesTestSuite) TestListUsers_ClampsLimit() {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{name: "unset uses default", in: 0, want: queries.DefaultListLimit},
		{name: "within range kept", in: 20, want: 20},
		{name: "above max capped", in: 10_000, want: queries.MaxListLimit},
	}

	role := "operator"
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.users.EXPECT().List(gomock.Any(), queries.UserFilter{Role: &role, Limit: tt.want}).Return(nil, nil)

			_, err := s.sut.ListUsers(context.Background(), queries.UserFilter{Role: &role, Limit: tt.in})

			s.Require().NoError(err)
		})
	}
}

func TestUserQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(UserQueriesTestSuite))
}
