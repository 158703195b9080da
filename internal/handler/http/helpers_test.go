package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"github.com/rs/zerolog"

	"github.com/akgarhwal/vault/internal/logger"
)

const (
	testUser     = "sync"
	testPassword = "s3cret"
)

// newTestHandler returns a handler with a nop logger and no storage.
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop(), user: testUser, password: testPassword, maxBody: 1 << 20}
}

// requestWithLogger puts a buffer-backed logger into the request context the
// way withTraceID does.
func requestWithLogger(method, target string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}
