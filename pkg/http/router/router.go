package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/lintang-b-s/navigatorx-astar/pkg/http/router/controllers"
	router_helper "github.com/lintang-b-s/navigatorx-astar/pkg/http/router/routerhelper"
	http_server "github.com/lintang-b-s/navigatorx-astar/pkg/http/server"
	"github.com/lintang-b-s/navigatorx-astar/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/rs/cors"
	"go.uber.org/zap"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "net/http/pprof"
)

const shutdownTimeout = 10 * time.Second

type API struct {
	log *zap.Logger
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log}
}

type Options struct {
	UseRateLimit   bool
	RateLimitRPS   float64
	RateLimitBurst int

	Metrics  *metrics.Metrics    // optional
	Gatherer prometheus.Gatherer // served on /metrics when set
}

//	@title			Navigatorx A* API
//	@version		1.0
//	@description	Shortest path queries over an openstreetmap road network.

//	@contact.name	Lintang Birda Saputra
//	@contact.url	_
//	@contact.email	lintang.birda.saputra@mail.ugm.ac.id

//	@license.name	BSD License
//	@license.url	https://opensource.org/license/bsd-2-clause

// @host		localhost
// @BasePath	/api
func (api *API) Handler(routingService controllers.RoutingService, opts Options) http.Handler {
	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore

	})

	root := router_helper.NewRouteGroup(router, "")

	root.GET("/doc/*any", swaggerHandler)

	root.Handler(http.MethodGet, "/debug/pprof/*item", http.DefaultServeMux)

	if opts.Gatherer != nil {
		root.Handler(http.MethodGet, "/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	group := root.Group("/api")

	navigatorRoutes := controllers.New(routingService, api.log)

	navigatorRoutes.Routes(group)

	mwChain := []alice.Constructor{corsHandler.Handler, EnforceJSONHandler, api.recoverPanic,
		RealIP, Heartbeat("healthz"), Logger(api.log), Labels}
	if opts.Metrics != nil {
		mwChain = append(mwChain, PromeHttpMiddleware(opts.Metrics, root.Patterns()))
	}
	if opts.UseRateLimit {
		mwChain = append(mwChain, Limit(opts.RateLimitRPS, opts.RateLimitBurst))
	}

	return alice.New(mwChain...).Then(router)
}

// Run. serve the api until ctx is canceled or the server fails
func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	routingService controllers.RoutingService,
	opts Options,
) error {
	api.log.Info("Run httprouter API")

	srv := http_server.New(ctx, api.Handler(routingService, opts), config)
	api.log.Info(fmt.Sprintf("API run on port %d", config.Port))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		api.log.Error("HTTP server stopped", zap.Error(err))
		return err
	case <-ctx.Done():
		api.log.Info("Context canceled, shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}

func swaggerHandler(res http.ResponseWriter, req *http.Request, p httprouter.Params) {
	httpSwagger.WrapHandler(res, req)
}
