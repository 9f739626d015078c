package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/credential"
	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/handlers/v1/category"
	"github.com/carson-networks/finance-server/internal/handlers/v1/status"
	"github.com/carson-networks/finance-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-server/internal/handlers/v1/user"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/metrics"
	"github.com/carson-networks/finance-server/internal/service"
)

const bearerScheme = "bearer"

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Tokens  *credential.TokenIssuer
	Storage status.Pinger
	Metrics *metrics.Metrics
}

// Handler builds the HTTP routing tree.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Storage)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	if r.Metrics != nil {
		mux.Handle("/metrics", r.Metrics.Handler())
	}

	config := huma.DefaultConfig("Finance Server", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		bearerScheme: {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
	}
	config.Security = []map[string][]string{{bearerScheme: {}}}

	humaAPI := humago.New(mux, config)
	if r.Metrics != nil {
		humaAPI.UseMiddleware(r.Metrics.HumaMiddleware)
	}
	humaAPI.UseMiddleware(
		logging.HumaMiddleware(r.Logger),
		apiutil.Authenticate(humaAPI, r.Tokens),
	)

	category.NewReadCategoryHandler(r.Service.Category).Register(humaAPI)
	category.NewCreateCategoryHandler(r.Service.Category).Register(humaAPI)
	category.NewUpdateCategoryHandler(r.Service.Category).Register(humaAPI)
	category.NewDeleteCategoryHandler(r.Service.Category).Register(humaAPI)

	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewUpdateTransactionHandler(r.Service.Transaction).Register(humaAPI)

	user.NewRegisterHandler(r.Service.User).Register(humaAPI)
	user.NewLoginHandler(r.Service.User).Register(humaAPI)
	user.NewAccountHandler(r.Service.User).Register(humaAPI)

	return mux
}

func (r *Rest) Serve() {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
