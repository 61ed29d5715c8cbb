package tests

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"tasktrio/pkg/apierrors"
	"tasktrio/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func requireAPIError(t *testing.T, rec *httptest.ResponseRecorder, code int, key, message string) {
	t.Helper()
	require.Equal(t, code, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, code, got.ErrDetails.Code)
	require.Equal(t, key, got.ErrDetails.Key)
	require.Equal(t, message, got.ErrDetails.Message)
}

func ptr[T any](v T) *T {
	return &v
}
