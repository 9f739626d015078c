package logging

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// statusRecorder remembers the status code written by a plain handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LoggingWrapper serves non-huma routes with the same per-request fields as
// HumaMiddleware. A returned error is logged at error level.
func LoggingWrapper(
	loggingName string,
	log *logrus.Logger,
	handler func(http.ResponseWriter, *http.Request, *LogData) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		logData, endTimer := startRequest(log, loggingName, req.Method, req.URL.Path)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		err := handler(rec, req.WithContext(WithLogData(req.Context(), logData)), logData)
		endTimer()
		logData.AddData("status", rec.status)
		if err != nil {
			logData.Log().WithError(err).Errorf("Handler.%v.Error", loggingName)
			return
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}
