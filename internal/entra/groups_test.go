package entra

import (
	"errors"
	"testing"

	"github.com/microsoftgraph/msgraph-sdk-go/models/odataerrors"
	"github.com/stretchr/testify/assert"
)

func TestGraphErrorMessagePlainError(t *testing.T) {
	err := errors.New("connection refused")
	assert.Equal(t, "connection refused", graphErrorMessage(err))
}

func TestGraphErrorMessageODataError(t *testing.T) {
	msg := "Another object with the same value for property mailNickname already exists."
	mainErr := odataerrors.NewMainError()
	mainErr.SetMessage(&msg)

	oErr := odataerrors.NewODataError()
	oErr.SetErrorEscaped(mainErr)

	assert.Equal(t, msg, graphErrorMessage(oErr))
}
