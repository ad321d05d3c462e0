package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a test request with a buffer-backed logger in context,
// the same way withTraceID attaches one.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "status 200",
			path:            "/status",
			handlerStatus:   http.StatusOK,
			handlerResponse: `{"state":"running"}`,
			checkLogContains: []string{
				`"level":"info"`,
				`"method":"GET"`,
				`"uri":"/status"`,
				`"status":200`,
				`"size":19`,
				`"duration":`,
			},
		},
		{
			name:          "probe logged at debug",
			path:          "/healthz",
			handlerStatus: http.StatusOK,
			checkLogContains: []string{
				`"level":"debug"`,
				`"uri":"/healthz"`,
			},
		},
		{
			name:            "server error logged at error",
			path:            "/status",
			handlerStatus:   http.StatusInternalServerError,
			handlerResponse: "boom",
			checkLogContains: []string{
				`"level":"error"`,
				`"status":500`,
			},
		},
		{
			name:            "query preserved",
			path:            "/status?verbose=1",
			handlerStatus:   http.StatusOK,
			handlerResponse: "{}",
			checkLogContains: []string{
				`"uri":"/status?verbose=1"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			withLogging(next).ServeHTTP(rr, makeRequest(http.MethodGet, tt.path, &logBuf))

			assert.Equal(t, tt.handlerStatus, rr.Code)
			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logBuf.String(), expected)
			}
		})
	}
}

func TestWithLogging_NoWrite(t *testing.T) {
	var logBuf bytes.Buffer
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/version", &logBuf))

	assert.Contains(t, logBuf.String(), `"status":200`)
	assert.Contains(t, logBuf.String(), `"size":0`)
}
