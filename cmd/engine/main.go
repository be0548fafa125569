package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/lintang-b-s/navigatorx-astar/pkg/engine"
	"github.com/lintang-b-s/navigatorx-astar/pkg/http"
	http_router "github.com/lintang-b-s/navigatorx-astar/pkg/http/router"
	"github.com/lintang-b-s/navigatorx-astar/pkg/http/usecases"
	"github.com/lintang-b-s/navigatorx-astar/pkg/logger"
	"github.com/lintang-b-s/navigatorx-astar/pkg/metrics"
	"github.com/lintang-b-s/navigatorx-astar/pkg/osmparser"
	"github.com/lintang-b-s/navigatorx-astar/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	mapFile      = flag.String("f", "", "openstreetmap file (.osm, .osm.bz2, .osm.pbf). overrides MAP_FILE")
	configDir    = flag.String("config", "./data/", "directory containing config.yaml")
	showProgress = flag.Bool("progress", true, "show a progress spinner while reading the map file")
)

func main() {
	flag.Parse()

	if err := util.ReadConfig(*configDir); err != nil {
		panic(err)
	}

	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	viper.SetDefault("MAP_FILE", "./data/map.osm.pbf")
	viper.SetDefault("USE_RATE_LIMIT", false)
	viper.SetDefault("RATE_LIMIT_RPS", 50.0)
	viper.SetDefault("RATE_LIMIT_BURST", 100)
	viper.SetDefault("ROUTING_WORKERS", runtime.NumCPU())

	if *mapFile == "" {
		*mapFile = viper.GetString("MAP_FILE")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewMetrics(reg)

	routingEngine, err := engine.NewEngine(ctx, *mapFile, engine.NewConfigFromViper(), logger,
		engine.WithSearchObserver(m),
		engine.WithParserOptions(osmparser.WithProgress(*showProgress)),
	)
	if err != nil {
		logger.Fatal("failed to build routing engine", zap.Error(err))
	}

	status := routingEngine.Status()
	logger.Info("road graph loaded",
		zap.Int("nodes", status.Nodes),
		zap.Int("routableNodes", status.RoutableNodes),
		zap.Int("edges", status.Edges))

	routingService := usecases.NewRoutingService(logger, routingEngine, viper.GetInt("ROUTING_WORKERS"))

	api := http.NewServer(logger)
	err = api.Use(ctx, logger, routingService, http_router.Options{
		UseRateLimit:   viper.GetBool("USE_RATE_LIMIT"),
		RateLimitRPS:   viper.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst: viper.GetInt("RATE_LIMIT_BURST"),
		Metrics:        m,
		Gatherer:       reg,
	})
	if err != nil {
		logger.Error("http server error", zap.Error(err))
	}

	logger.Info("Navigatorx A* Routing Engine Server Stopped")
}
