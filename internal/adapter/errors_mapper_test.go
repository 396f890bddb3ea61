package adapter

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

func TestMapHTTPStatus(t *testing.T) {
	assert.NoError(t, mapHTTPStatus(http.StatusOK, ""))
	assert.NoError(t, mapHTTPStatus(http.StatusCreated, "{}"))

	err := mapHTTPStatus(http.StatusNotFound, " missing \n")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "missing")

	err = mapHTTPStatus(http.StatusTeapot, "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "418")
	assert.Contains(t, err.Error(), http.StatusText(http.StatusTeapot))
}

func TestMapS3Error(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"no such key type", &types.NoSuchKey{}, ErrNotFound},
		{"not found code", &smithy.GenericAPIError{Code: "NotFound"}, ErrNotFound},
		{"no such bucket", &smithy.GenericAPIError{Code: "NoSuchBucket"}, ErrNotFound},
		{"access denied", &smithy.GenericAPIError{Code: "AccessDenied"}, ErrForbidden},
		{"bad signature", &smithy.GenericAPIError{Code: "SignatureDoesNotMatch"}, ErrUnauthorized},
		{"invalid argument", &smithy.GenericAPIError{Code: "InvalidArgument"}, ErrBadRequest},
		{"internal", &smithy.GenericAPIError{Code: "InternalError"}, ErrInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapS3Error(tt.err)
			assert.ErrorIs(t, got, tt.wantErr)
			assert.ErrorIs(t, got, tt.err)
		})
	}

	assert.NoError(t, mapS3Error(nil))
	assert.Same(t, context.Canceled, mapS3Error(context.Canceled))

	unknown := &smithy.GenericAPIError{Code: "SlowDown"}
	assert.True(t, errors.Is(mapS3Error(unknown), unknown))
}
