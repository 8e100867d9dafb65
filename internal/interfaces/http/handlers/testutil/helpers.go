package testutil

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// NewTestContext creates a test gin.Context with the given method, path, and optional body.
func NewTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()

	var req *http.Request
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBytes))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	return c, w
}

// SetAuthContext sets user_id and user_role in gin context (simulating auth middleware).
func SetAuthContext(c *gin.Context, userID uint, role ...string) {
	c.Set(constants.ContextKeyUserID, userID)
	r := "USER"
	if len(role) > 0 {
		r = role[0]
	}
	c.Set(constants.ContextKeyUserRole, r)
}

// SetURLParam sets a URL parameter on the gin context.
func SetURLParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

// SetQueryParams sets query parameters on the gin context.
func SetQueryParams(c *gin.Context, params map[string]string) {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	c.Request.URL.RawQuery = q.Encode()
}

// NewMultipartContext creates a test gin.Context carrying a multipart body
// with one part per file under field.
func NewMultipartContext(path, field string, files map[string][]byte) (*gin.Context, *httptest.ResponseRecorder) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		part, _ := mw.CreateFormFile(field, name)
		_, _ = part.Write(files[name])
	}
	_ = mw.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	return c, w
}

// ParseResponse parses the JSON response body into the target struct.
func ParseResponse(w *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(w.Body.Bytes(), target)
}

// APIResponse mirrors utils.APIResponse for test assertions.
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

// ErrorInfo mirrors utils.ErrorInfo for test assertions.
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// NewMockLogger returns a no-op logger.Interface for tests.
func NewMockLogger() logger.Interface {
	return &mockLogger{}
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                    {}
func (m *mockLogger) Info(msg string, args ...any)                     {}
func (m *mockLogger) Warn(msg string, args ...any)                     {}
func (m *mockLogger) Error(msg string, args ...any)                    {}
func (m *mockLogger) Fatal(msg string, args ...any)                    {}
func (m *mockLogger) With(args ...any) logger.Interface                { return m }
func (m *mockLogger) Named(name string) logger.Interface               { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{})  {}
