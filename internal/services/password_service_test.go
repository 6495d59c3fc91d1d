package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

// PasswordServiceTestSuite defines the test suite for PasswordService
type PasswordServiceTestSuite struct {
	suite.Suite
	service PasswordServiceInterface
}

func (s *PasswordServiceTestSuite) SetupTest() {
	s.service = NewPasswordService(bcrypt.MinCost, 8)
}

func TestPasswordServiceSuite(t *testing.T) {
	suite.Run(t, new(PasswordServiceTestSuite))
}

// Test ValidatePassword
func (s *PasswordServiceTestSuite) TestValidatePassword_Valid() {
	s.NoError(s.service.ValidatePassword("budget2025"))
	s.NoError(s.service.ValidatePassword("Str0ng&Long!"))
}

func (s *PasswordServiceTestSuite) TestValidatePassword_Rules() {
	testCases := []struct {
		name     string
		password string
		expected error
	}{
		{"empty", "", ErrPasswordEmpty},
		{"too short", "ab12", ErrPasswordTooShort},
		{"too long", strings.Repeat("a1", 40), ErrPasswordTooLong},
		{"no letter", "12345678", ErrPasswordNoLetter},
		{"no number", "abcdefgh", ErrPasswordNoNumber},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.ErrorIs(s.service.ValidatePassword(tc.password), tc.expected)
		})
	}
}

func (s *PasswordServiceTestSuite) TestValidatePassword_TooShortMentionsMinimum() {
	err := s.service.ValidatePassword("a1")
	s.Error(err)
	s.Contains(err.Error(), "at least 8 characters")
}

// Test HashPassword
func (s *PasswordServiceTestSuite) TestHashPassword_RoundTrip() {
	hash, err := s.service.HashPassword("budget2025")
	s.Require().NoError(err)
	s.NotEqual("budget2025", hash)

	s.True(s.service.ComparePassword("budget2025", hash))
	s.False(s.service.ComparePassword("budget2026", hash))
}

func (s *PasswordServiceTestSuite) TestHashPassword_RejectsWeakPassword() {
	hash, err := s.service.HashPassword("short")
	s.Empty(hash)
	s.ErrorIs(err, ErrPasswordTooShort)
}

func (s *PasswordServiceTestSuite) TestHashPassword_UniqueSalts() {
	first, err := s.service.HashPassword("budget2025")
	s.Require().NoError(err)
	second, err := s.service.HashPassword("budget2025")
	s.Require().NoError(err)

	s.NotEqual(first, second)
}

func (s *PasswordServiceTestSuite) TestComparePassword_InvalidHash() {
	s.False(s.service.ComparePassword("budget2025", "not-a-hash"))
}

func (s *PasswordServiceTestSuite) TestNewPasswordService_Defaults() {
	ps := NewPasswordService(0, 0).(*PasswordService)
	s.Equal(DefaultBCryptCost, ps.cost)
	s.Equal(DefaultMinPasswordLength, ps.minLength)
}
