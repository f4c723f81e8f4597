package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/cardforge/forge-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid rarity: Artifact",
			expected: "INVALID_ARGUMENT: invalid rarity: Artifact",
		},
		{
			name:     "validation violation",
			code:     errors.CodeValidationViolation,
			message:  "unit budget outside range",
			expected: "VALIDATION_VIOLATION: unit budget outside range",
		},
		{
			name:     "rules unavailable",
			code:     errors.CodeRulesUnavailable,
			message:  "rules document not found",
			expected: "RULES_UNAVAILABLE: rules document not found",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.ValidationViolation("stat exceeds cap").
		WithMeta("key", "magic").
		WithMeta("cap", 12)

	s.Assert().Equal("magic", err.Meta["key"])
	s.Assert().Equal(12, err.Meta["cap"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to reach model")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to reach model", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.RulesUnavailable("rules document not found")
	wrapped := errors.Wrap(baseErr, "cannot build instruction")

	s.Assert().Equal(errors.CodeRulesUnavailable, wrapped.Code)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeGenerationFailure, "should be nil"))
}

func (s *ErrorsTestSuite) TestGenerationFailureWrapsCause() {
	cause := errors.ValidationViolation("unit budget outside range").
		WithMeta("budget", 40.0)
	err := errors.GenerationFailure(cause, "unit generation failed")

	s.Assert().Equal(errors.CodeGenerationFailure, err.Code)
	s.Assert().Equal(cause, err.Unwrap())
	s.Assert().Equal(40.0, err.Meta["budget"], "cause metadata is carried up")
	s.Assert().True(errors.IsGenerationFailure(err))
	s.Assert().False(errors.IsValidationViolation(err), "the collapsed code wins")
}

func (s *ErrorsTestSuite) TestCheckers() {
	s.Assert().True(errors.IsInvalidArgument(errors.InvalidArgument("bad input")))
	s.Assert().True(errors.IsNotFound(errors.NotFound("missing")))
	s.Assert().True(errors.IsRulesUnavailable(errors.RulesUnavailablef("no rules at %s", "/etc/rules")))
	s.Assert().True(errors.IsValidationViolation(errors.ValidationViolationf("bad key: %s", "luck")))
	s.Assert().True(errors.IsUnavailable(errors.Unavailable("endpoint down")))
	s.Assert().False(errors.IsInvalidArgument(fmt.Errorf("plain error")))
	s.Assert().False(errors.IsGenerationFailure(nil))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeValidationViolation, errors.GetCode(errors.ValidationViolation("x")))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	s.Assert().Equal(http.StatusBadRequest, errors.CodeInvalidArgument.HTTPStatus())
	s.Assert().Equal(http.StatusUnprocessableEntity, errors.CodeValidationViolation.HTTPStatus())
	s.Assert().Equal(http.StatusBadGateway, errors.CodeGenerationFailure.HTTPStatus())
	s.Assert().Equal(http.StatusInternalServerError, errors.CodeRulesUnavailable.HTTPStatus())
	s.Assert().Equal(http.StatusInternalServerError, errors.Code("SOMETHING_ELSE").HTTPStatus())
}
