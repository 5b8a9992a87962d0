package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	std := logrus.StandardLogger()
	prevOut, prevFormatter := std.Out, std.Formatter
	std.SetOutput(buf)
	std.SetFormatter(&logrus.JSONFormatter{})
	t.Cleanup(func() {
		std.SetOutput(prevOut)
		std.SetFormatter(prevFormatter)
	})
	return buf
}

func TestWithContext(t *testing.T) {
	t.Run("student and request id are attached", func(t *testing.T) {
		buf := captureOutput(t)
		ctx := ContextWithStudent(context.Background(), "stu-1")
		ctx = ContextWithRequestID(ctx, "req-9")

		WithContext(ctx).Infof("joined %s", "ABC")

		out := buf.String()
		assert.Contains(t, out, `"student":"stu-1"`)
		assert.Contains(t, out, `"request_id":"req-9"`)
		assert.Contains(t, out, `"msg":"joined ABC"`)
	})

	t.Run("anonymous student without context values", func(t *testing.T) {
		buf := captureOutput(t)

		WithContext(context.Background()).Warnf("anonymous")

		assert.Contains(t, buf.String(), `"student":"anonymous"`)
		assert.NotContains(t, buf.String(), "request_id")
	})
}

func TestWithErrorAndFields(t *testing.T) {
	buf := captureOutput(t)

	New().WithFields(map[string]interface{}{"invite_code": "X1"}).WithError(errors.New("boom")).Errorf("sync failed")

	out := buf.String()
	assert.Contains(t, out, `"invite_code":"X1"`)
	assert.Contains(t, out, `"error":"boom"`)
}
