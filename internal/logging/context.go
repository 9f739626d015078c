package logging

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

type logDataKey struct{}

// WithLogData attaches logData to ctx.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataKey{}, logData)
}

// GetLogData returns the request's LogData. Outside a request it returns a
// detached LogData on the standard logger so callers never need a nil check.
func GetLogData(ctx context.Context) *LogData {
	if logData, ok := ctx.Value(logDataKey{}).(*LogData); ok && logData != nil {
		return logData
	}
	return NewLogData(logrus.StandardLogger())
}

// startRequest builds the per-request LogData shared by LoggingWrapper and
// HumaMiddleware, logs the Start line and starts the duration timer.
func startRequest(log *logrus.Logger, name, method, path string) (*LogData, func()) {
	logData := NewLogData(log)
	logData.AddData("requestID", newRequestID())
	logData.AddData("method", method)
	logData.AddData("path", path)

	logData.Log().Infof("Handler.%v.Start", name)
	return logData, logData.AddTiming("duration")
}

func newRequestID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return ""
	}
	return id.String()
}
