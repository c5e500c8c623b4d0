package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "req-1")
	return c, w
}

func TestSuccess_WritesEnvelope(t *testing.T) {
	c, w := newContext()
	Success(c, 0, []string{}, "ok", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "req-1", body["request_id"])
	assert.Equal(t, []any{}, body["data"])
}

func TestSuccess_NilCollectionIsNull(t *testing.T) {
	c, w := newContext()
	var users []string
	Success(c, http.StatusOK, users, "ok", nil)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	v, present := body["data"]
	assert.True(t, present)
	assert.Nil(t, v)
}

func TestError_DefaultsTo400(t *testing.T) {
	c, w := newContext()
	Error[any](c, 0, "invalid payload", map[string]string{"name": "is required"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "invalid payload", body["message"])
	assert.Equal(t, map[string]any{"name": "is required"}, body["error"])
}
