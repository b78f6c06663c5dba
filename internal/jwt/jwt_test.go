package jwt

import (
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

type JWTTestSuite struct {
	suite.Suite
	auth    Auth
	secret  string
	subject string
	role    string
}

func TestJWTSuite(t *testing.T) {
	suite.Run(t, new(JWTTestSuite))
}

func (s *JWTTestSuite) SetupTest() {
	s.secret = "test-secret"
	s.subject = "operator123"
	s.role = "admin"
	s.auth = NewAuth(s.secret)
}

func (s *JWTTestSuite) TestNewAuth() {
	auth := NewAuth(s.secret).(*jwtAuthImpl)
	s.NotNil(auth)
	s.Equal(jwt.SigningMethodHS256, auth.signingMethod)
	s.True(auth.allowedMethods["HS256"])
}

func (s *JWTTestSuite) TestNewAuthWithAlgorithm() {
	testCases := []struct {
		name   string
		method jwt.SigningMethod
		alg    string
	}{
		{"HS256", jwt.SigningMethodHS256, "HS256"},
		{"HS384", jwt.SigningMethodHS384, "HS384"},
		{"HS512", jwt.SigningMethodHS512, "HS512"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			auth := NewAuthWithAlgorithm(s.secret, tc.method).(*jwtAuthImpl)
			s.NotNil(auth)
			s.Equal(tc.method, auth.signingMethod)
			s.True(auth.allowedMethods[tc.alg])
			s.Len(auth.allowedMethods, 1)
		})
	}
}

func (s *JWTTestSuite) TestSign_Successful() {
	token, err := s.auth.Sign(s.subject, s.role)
	s.Require().NoError(err)
	s.NotEmpty(token)
	s.True(strings.HasPrefix(token, "eyJ"))
}

func (s *JWTTestSuite) TestSign_EmptySubject() {
	token, err := s.auth.Sign("", s.role)
	s.Require().ErrorIs(err, ErrInvalidRequest)
	s.Empty(token)
	s.Contains(err.Error(), "required")
}

func (s *JWTTestSuite) TestSign_EmptyRole() {
	token, err := s.auth.Sign(s.subject, "")
	s.Require().ErrorIs(err, ErrInvalidRequest)
	s.Empty(token)
	s.Contains(err.Error(), "required")
}

func (s *JWTTestSuite) TestVerify_Successful() {
	token, err := s.auth.Sign(s.subject, s.role)
	s.Require().NoError(err)

	payload, err := s.auth.Verify(token)
	s.Require().NoError(err)
	s.Equal(s.subject, payload.Subject)
	s.Equal(s.role, payload.Role)
}

func (s *JWTTestSuite) TestVerify_EmptyToken() {
	payload, err := s.auth.Verify("")
	s.Require().ErrorIs(err, ErrNoToken)
	s.Nil(payload)
}

func (s *JWTTestSuite) TestVerify_GarbageToken() {
	payload, err := s.auth.Verify("not-a-jwt")
	s.Require().ErrorIs(err, ErrInvalidToken)
	s.Nil(payload)
}

func (s *JWTTestSuite) TestVerify_WrongSecret() {
	other := NewAuth("another-secret")
	token, err := other.Sign(s.subject, s.role)
	s.Require().NoError(err)

	payload, err := s.auth.Verify(token)
	s.Require().ErrorIs(err, ErrInvalidToken)
	s.Nil(payload)
}

func (s *JWTTestSuite) TestVerify_AlgorithmMismatch() {
	other := NewAuthWithAlgorithm(s.secret, jwt.SigningMethodHS512)
	token, err := other.Sign(s.subject, s.role)
	s.Require().NoError(err)

	payload, err := s.auth.Verify(token)
	s.Require().ErrorIs(err, ErrInvalidToken)
	s.Nil(payload)
}

func (s *JWTTestSuite) TestVerify_MissingClaims() {
	// token signed with the right secret but without subject/role
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Payload{})
	signed, err := token.SignedString([]byte(s.secret))
	s.Require().NoError(err)

	payload, err := s.auth.Verify(signed)
	s.Require().ErrorIs(err, ErrInvalidToken)
	s.Nil(payload)
}
