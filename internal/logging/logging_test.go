package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger() (*logrus.Logger, *bytes.Buffer) {
	logger := SetupLogging()
	buf := &bytes.Buffer{}
	logger.Out = buf
	return logger, buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, raw := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		line := map[string]any{}
		require.NoError(t, json.Unmarshal(raw, &line))
		lines = append(lines, line)
	}
	return lines
}

func TestLogData_CollectsFieldsAndTimings(t *testing.T) {
	logger, buf := newBufferedLogger()
	logData := NewLogData(logger)

	logData.AddData("userID", "user-1")
	logData.AddTiming("storage")()
	logData.Log().Info("done")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "user-1", lines[0]["userID"])
	assert.Contains(t, lines[0], "storage")
	assert.Equal(t, "info", lines[0]["loglevel"])
}

func TestLogData_AccumulatesTimings(t *testing.T) {
	logger, buf := newBufferedLogger()
	logData := NewLogData(logger)

	for i := 0; i < 3; i++ {
		stop := logData.AddToExistingTiming("storage")
		time.Sleep(2 * time.Millisecond)
		stop()
	}
	logData.Log().Info("done")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.GreaterOrEqual(t, lines[0]["storage"], float64(6))
}

func TestGetLogData_Detached(t *testing.T) {
	assert.NotNil(t, GetLogData(context.Background()))

	logData := NewLogData(logrus.New())
	assert.Same(t, logData, GetLogData(WithLogData(context.Background(), logData)))
}

func TestSetLevel(t *testing.T) {
	logger, _ := newBufferedLogger()

	SetLevel(logger, "debug")
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	SetLevel(logger, "chatty")
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
}

func TestLoggingWrapper_LogsError(t *testing.T) {
	logger, buf := newBufferedLogger()

	handler := LoggingWrapper("Status", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		assert.Same(t, logData, GetLogData(req.Context()))
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("bad method")
	})
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/status", nil))

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "Handler.Status.Start", lines[0]["msg"])
	assert.Equal(t, "Handler.Status.Error", lines[1]["msg"])
	assert.Contains(t, lines[1], "duration")
	assert.Contains(t, lines[1], "requestID")
	assert.Equal(t, float64(http.StatusBadRequest), lines[1]["status"])
}

func TestLoggingWrapper_SharesRequestFieldsWithHumaMiddleware(t *testing.T) {
	logger, buf := newBufferedLogger()

	handler := LoggingWrapper("Status", logger, func(w http.ResponseWriter, _ *http.Request, _ *LogData) error {
		_, err := w.Write([]byte("ok"))
		return err
	})
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/status", nil))

	_, api := humatest.New(t)
	api.UseMiddleware(HumaMiddleware(logger))
	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
	}, func(ctx context.Context, _ *struct{}) (*pingOutput, error) {
		return &pingOutput{}, nil
	})
	api.Get("/ping")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 4)
	wrapperStart, wrapperDone := lines[0], lines[1]
	humaStart, humaDone := lines[2], lines[3]

	for _, line := range lines {
		assert.NotEmpty(t, line["requestID"])
		assert.Equal(t, http.MethodGet, line["method"])
	}
	assert.Equal(t, "/status", wrapperStart["path"])
	assert.Equal(t, "/ping", humaStart["path"])
	assert.Equal(t, wrapperStart["requestID"], wrapperDone["requestID"])
	assert.Equal(t, humaStart["requestID"], humaDone["requestID"])
	assert.NotEqual(t, wrapperStart["requestID"], humaStart["requestID"])
	assert.Equal(t, float64(http.StatusOK), wrapperDone["status"])
	assert.Equal(t, float64(http.StatusOK), humaDone["status"])
}

type pingOutput struct {
	Body struct {
		Message string `json:"message"`
	}
}

func TestHumaMiddleware_PerRequestLogData(t *testing.T) {
	logger, buf := newBufferedLogger()
	_, api := humatest.New(t)
	api.UseMiddleware(HumaMiddleware(logger))

	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
	}, func(ctx context.Context, _ *struct{}) (*pingOutput, error) {
		GetLogData(ctx).AddData("handled", true)
		out := &pingOutput{}
		out.Body.Message = "pong"
		return out, nil
	})

	resp := api.Get("/ping")
	assert.Equal(t, http.StatusOK, resp.Code)

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "Handler.ping.Start", lines[0]["msg"])
	assert.Equal(t, "Handler.ping.Complete", lines[1]["msg"])
	assert.Equal(t, true, lines[1]["handled"])
	assert.Equal(t, float64(http.StatusOK), lines[1]["status"])
}
