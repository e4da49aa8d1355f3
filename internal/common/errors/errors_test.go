package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.messages = append(l.messages, msg)
}

func TestStandardError_Unwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewPlaceLookupFailedError(cause)

	assert.True(t, stderrors.Is(err, cause))
	assert.True(t, err.Retryable)
	assert.Equal(t, "connection refused", err.Details)
	assert.Contains(t, err.Error(), "PLACE_LOOKUP_FAILED")
}

func TestNewPlaceStatusNotOKError(t *testing.T) {
	err := NewPlaceStatusNotOKError("REQUEST_DENIED", "bad key")
	assert.Equal(t, "status: REQUEST_DENIED, message: bad key", err.Details)
	assert.Equal(t, "status: NOT_FOUND", NewPlaceStatusNotOKError("NOT_FOUND", "").Details)
}

func TestNewContactValidationError(t *testing.T) {
	err := NewContactValidationError([]string{"a", "b"})
	assert.Equal(t, "a; b", err.Details)
	assert.Equal(t, []string{"a", "b"}, err.Metadata["errors"])
}

func TestAsStandard(t *testing.T) {
	assert.Nil(t, AsStandard(nil))

	std := NewMessageStoreFailedError(stderrors.New("disk full"))
	assert.Same(t, std, AsStandard(std))

	wrapped := AsStandard(stderrors.New("boom"))
	assert.Equal(t, ErrCodeInternal, wrapped.Code)
	assert.Equal(t, "boom", wrapped.Details)
}

func TestGetErrorCategory(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrCodePlaceLookupTimeout, "UPSTREAM"},
		{ErrCodePlacePayload, "UPSTREAM"},
		{ErrCodeCacheWriteFailed, "CACHE"},
		{ErrCodeNotificationSendFailed, "NOTIFICATION"},
		{ErrCodeMessageStoreFailed, "NOTIFICATION"},
		{ErrCodeContactValidation, "VALIDATION"},
		{ErrCodeBadRequest, "VALIDATION"},
		{ErrCodeConfigInvalid, "CONFIG"},
		{ErrCodeInternal, "OTHER"},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, GetErrorCategory(tt.code))
		})
	}
}

func TestWriteHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantLogged bool
	}{
		{name: "bad request", err: NewBadRequestError("unexpected EOF"), wantStatus: http.StatusBadRequest},
		{name: "upstream", err: NewPlaceLookupTimeoutError(nil), wantStatus: http.StatusServiceUnavailable, wantLogged: true},
		{name: "plain error", err: stderrors.New("boom"), wantStatus: http.StatusInternalServerError, wantLogged: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &recordingLogger{}
			rec := httptest.NewRecorder()

			WriteHTTP(rec, log, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLogged, len(log.messages) > 0)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, string(AsStandard(tt.err).Code), body["code"])
		})
	}
}
