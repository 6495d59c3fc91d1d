package repositories

import (
	"context"
	"strings"
	"testing"
	"time"

	"finance-tracker/internal/database"
	"finance-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type UserRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo UserRepositoryInterface
}

func TestUserRepository(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}

func (s *UserRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewUserRepository(s.db.DB)
}

func (s *UserRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *UserRepositorySuite) newUser() *models.User {
	return &models.User{
		Email:        gofakeit.Email(),
		PasswordHash: "hashed_password",
		FullName:     gofakeit.Name(),
	}
}

func (s *UserRepositorySuite) TestCreate() {
	user := s.newUser()

	s.Require().NoError(s.repo.Create(user))
	s.NotEqual(uuid.Nil, user.ID)
	s.NotZero(user.CreatedAt)
}

func (s *UserRepositorySuite) TestCreate_DuplicateEmail() {
	user := s.newUser()
	s.Require().NoError(s.repo.Create(user))

	dup := s.newUser()
	dup.Email = user.Email

	s.ErrorIs(s.repo.Create(dup), ErrEmailAlreadyExists)
}

func (s *UserRepositorySuite) TestGetByEmail_IsCaseInsensitive() {
	user := s.newUser()
	user.Email = "Asha.Rao@Example.com"
	s.Require().NoError(s.repo.Create(user))

	found, err := s.repo.GetByEmail("ASHA.RAO@example.COM")
	s.Require().NoError(err)
	s.Equal(user.ID, found.ID)
	s.Equal("asha.rao@example.com", found.Email)

	_, err = s.repo.GetByEmail("nobody@example.com")
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserRepositorySuite) TestGetByID() {
	user := s.newUser()
	s.Require().NoError(s.repo.Create(user))

	found, err := s.repo.GetByID(user.ID)
	s.Require().NoError(err)
	s.Equal(user.Email, found.Email)

	_, err = s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserRepositorySuite) TestUpdateLoginState() {
	user := s.newUser()
	s.Require().NoError(s.repo.Create(user))

	now := time.Now().UTC()
	user.RegisterFailedAttempt(now, 1, time.Hour)
	s.Require().NoError(s.repo.UpdateLoginState(user))

	found, err := s.repo.GetByID(user.ID)
	s.Require().NoError(err)
	s.True(found.IsLocked(now))

	found.RegisterSuccessfulLogin(now)
	s.Require().NoError(s.repo.UpdateLoginState(found))

	again, err := s.repo.GetByID(user.ID)
	s.Require().NoError(err)
	s.False(again.IsLocked(now))
	s.NotNil(again.LastLoginAt)

	s.ErrorIs(s.repo.UpdateLoginState(&models.User{ID: uuid.New()}), ErrUserNotFound)
}

func (s *UserRepositorySuite) TestUpdate() {
	user := s.newUser()
	s.Require().NoError(s.repo.Create(user))

	user.FullName = "Priya Natarajan"
	s.Require().NoError(s.repo.Update(context.Background(), user))

	found, err := s.repo.GetByID(user.ID)
	s.Require().NoError(err)
	s.Equal("Priya Natarajan", found.FullName)
	s.Equal(user.Email, found.Email)
	s.Equal("hashed_password", found.PasswordHash)
}

func (s *UserRepositorySuite) TestUpdate_Errors() {
	user := s.newUser()
	s.Require().NoError(s.repo.Create(user))

	user.FullName = strings.Repeat("a", 201)
	s.ErrorIs(s.repo.Update(context.Background(), user), models.ErrFullNameTooLong)

	ghost := &models.User{ID: uuid.New(), Email: "ghost@example.com"}
	s.ErrorIs(s.repo.Update(context.Background(), ghost), ErrUserNotFound)
}
