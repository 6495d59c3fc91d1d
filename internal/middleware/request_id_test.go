package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "finance-tracker/internal/errors"
	"finance-tracker/internal/handlers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

// serve runs next behind RequestID with the given request headers and returns the
// trace id the handler saw.
func (s *RequestIDTestSuite) serve(headers map[string]string, next echo.HandlerFunc) (string, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/expenses", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	var seen string
	err := RequestID()(func(c echo.Context) error {
		seen = GetTraceID(c)
		if next != nil {
			return next(c)
		}
		return c.NoContent(http.StatusOK)
	})(c)
	s.Require().NoError(err)

	return seen, rec
}

func (s *RequestIDTestSuite) TestRequestID_GeneratesUUIDWhenNoneSent() {
	seen, rec := s.serve(nil, nil)

	_, err := uuid.Parse(seen)
	s.NoError(err)
	s.Equal(seen, rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestRequestID_IncomingHeaders() {
	maxLength := strings.Repeat("z", 64)

	testCases := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"trace header", map[string]string{TraceIDHeader: "trace-a"}, "trace-a"},
		{"request id header", map[string]string{RequestIDHeader: "proxy-id-42"}, "proxy-id-42"},
		{"trace header wins", map[string]string{TraceIDHeader: "trace-a", RequestIDHeader: "request-b"}, "trace-a"},
		{"bad trace header falls back", map[string]string{TraceIDHeader: "bad value", RequestIDHeader: "lb:7f.01"}, "lb:7f.01"},
		{"longest accepted", map[string]string{TraceIDHeader: maxLength}, maxLength},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			seen, rec := s.serve(tc.headers, nil)

			s.Equal(tc.want, seen)
			s.Equal(tc.want, rec.Header().Get(TraceIDHeader))
		})
	}
}

func (s *RequestIDTestSuite) TestRequestID_RejectsUnsafeIncomingID() {
	testCases := []string{
		"has spaces",
		"<script>",
		"semi;colon",
		strings.Repeat("a", 65),
	}

	for _, incoming := range testCases {
		s.Run(incoming, func() {
			seen, rec := s.serve(map[string]string{TraceIDHeader: incoming, RequestIDHeader: incoming}, nil)

			s.NotEqual(incoming, seen)
			_, err := uuid.Parse(rec.Header().Get(TraceIDHeader))
			s.NoError(err)
		})
	}
}

func (s *RequestIDTestSuite) TestRequestID_ErrorBodyCarriesSameID() {
	s.Equal(handlers.TraceIDContextKey, TraceIDContextKey)

	_, rec := s.serve(map[string]string{RequestIDHeader: "edge-9"}, func(c echo.Context) error {
		return handlers.SendError(c, apperrors.RecordNotFound)
	})

	var body apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("edge-9", body.Error.TraceID)
	s.Equal(string(apperrors.RecordNotFound), body.Error.Code)
}

func (s *RequestIDTestSuite) TestGetTraceID_Unset() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	s.Empty(GetTraceID(c))

	c.Set(TraceIDContextKey, 42)
	s.Empty(GetTraceID(c))
}
