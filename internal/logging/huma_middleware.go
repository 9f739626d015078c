package logging

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// HumaMiddleware gives each huma request its own LogData. Responses with a
// 5xx status are logged at error level.
func HumaMiddleware(log *logrus.Logger) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		name := "unknown"
		if op := ctx.Operation(); op != nil {
			name = op.OperationID
		}

		logData, endTimer := startRequest(log, name, ctx.Method(), ctx.URL().Path)

		next(huma.WithValue(ctx, logDataKey{}, logData))

		endTimer()
		status := ctx.Status()
		logData.AddData("status", status)
		if status >= 500 {
			logData.Log().Errorf("Handler.%v.Error", name)
			return
		}
		logData.Log().Infof("Handler.%v.Complete", name)
	}
}
