package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (suite *ErrorTestSuite) TestNewError() {
	err := New(ErrCodeInvalidPeriod, "Period must be greater than 0.")
	suite.NotNil(err)
	suite.Equal(ErrCodeInvalidPeriod, err.Code)
	suite.Equal("Period must be greater than 0.", err.Message)
	suite.Nil(err.Cause)
}

func (suite *ErrorTestSuite) TestNewfError() {
	err := Newf(ErrCodeInvalidParameter, "invalid parameter: %s", "test")
	suite.NotNil(err)
	suite.Equal(ErrCodeInvalidParameter, err.Code)
	suite.Equal("invalid parameter: test", err.Message)
	suite.Nil(err.Cause)
}

func (suite *ErrorTestSuite) TestWrapError() {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeDataNotFound, "data not found", cause)
	suite.NotNil(err)
	suite.Equal(ErrCodeDataNotFound, err.Code)
	suite.Equal("data not found", err.Message)
	suite.Equal(cause, err.Cause)
}

func (suite *ErrorTestSuite) TestWrapfError() {
	cause := errors.New("underlying error")
	err := Wrapf(ErrCodeDataNotFound, cause, "data not found for symbol: %s", "AAPL")
	suite.NotNil(err)
	suite.Equal("data not found for symbol: AAPL", err.Message)
	suite.Equal(cause, err.Cause)
}

func (suite *ErrorTestSuite) TestErrorStringIsVerbatim() {
	err := New(ErrCodeEmptyInput, "Prices vector must not be empty.")
	suite.Equal("Prices vector must not be empty.", err.Error())
}

func (suite *ErrorTestSuite) TestErrorStringWithCause() {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeDataNotFound, "data not found", cause)
	suite.Equal("data not found: underlying error", err.Error())
}

func (suite *ErrorTestSuite) TestUnwrap() {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeQueryFailed, "query failed", cause)
	suite.Equal(cause, err.Unwrap())
	suite.True(Is(err, cause))
}

func (suite *ErrorTestSuite) TestGetCode() {
	suite.Equal(ErrCodeInvalidWindow, GetCode(New(ErrCodeInvalidWindow, "bad")))
	suite.Equal(ErrCodeUnknown, GetCode(errors.New("plain")))
}

func (suite *ErrorTestSuite) TestGetCodeFromWrapped() {
	inner := New(ErrCodeInvalidBrickSize, "Brick size must be greater than 0.")
	outer := Wrap(ErrCodeIndicatorCalculation, "renko failed", inner)

	var target *Error
	suite.True(As(outer, &target))
	suite.Equal(ErrCodeIndicatorCalculation, target.Code)
	suite.True(HasCode(outer, ErrCodeIndicatorCalculation))
}

func (suite *ErrorTestSuite) TestFamilies() {
	tests := []struct {
		code      ErrorCode
		parameter bool
		input     bool
	}{
		{ErrCodeInvalidParameter, true, false},
		{ErrCodeInvalidPeriod, true, false},
		{ErrCodeInvalidReversalAmount, true, false},
		{ErrCodeInvalidPriceField, true, false},
		{ErrCodeInvalidInput, false, true},
		{ErrCodeEmptyInput, false, true},
		{ErrCodeMismatchedLength, false, true},
		{ErrCodeDataNotFound, false, false},
		{ErrCodeWriteFailed, false, false},
	}

	for _, tt := range tests {
		err := New(tt.code, "x")
		suite.Equal(tt.parameter, IsInvalidParameter(err), "code %d", tt.code)
		suite.Equal(tt.input, IsInvalidInput(err), "code %d", tt.code)
	}

	suite.False(IsInvalidParameter(errors.New("plain")))
	suite.False(IsInvalidInput(nil))
}
