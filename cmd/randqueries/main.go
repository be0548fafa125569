package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/lintang-b-s/navigatorx-astar/pkg"
	"github.com/lintang-b-s/navigatorx-astar/pkg/concurrent"
	da "github.com/lintang-b-s/navigatorx-astar/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-astar/pkg/engine"
	"github.com/lintang-b-s/navigatorx-astar/pkg/engine/routing"
	log "github.com/lintang-b-s/navigatorx-astar/pkg/logger"
	"github.com/lintang-b-s/navigatorx-astar/pkg/osmparser"
	"github.com/lintang-b-s/navigatorx-astar/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	mapFile    = flag.String("f", "./data/map.osm.pbf", "openstreetmap file (.osm, .osm.bz2, .osm.pbf)")
	configDir  = flag.String("config", "./data/", "directory containing config.yaml")
	numQueries = flag.Int("n", 10000, "number of random queries")
	outFile    = flag.String("o", "rand_queries_result.csv", "output csv file")
	numWorkers = flag.Int("workers", runtime.NumCPU(), "number of query workers")
	seed       = flag.Uint64("seed", 42, "random seed for query sampling")
	verify     = flag.Bool("verify", false, "check every A* cost against a dijkstra search from the same source")
)

type spParam struct {
	row int
	s   da.Index
	t   da.Index
}

func newSPParam(row int, s, t da.Index) spParam {
	return spParam{row, s, t}
}

func main() {
	flag.Parse()

	if err := util.ReadConfig(*configDir); err != nil {
		panic(err)
	}
	logger, err := log.New()
	if err != nil {
		panic(err)
	}

	cfg := engine.NewConfigFromViper()
	re, err := engine.NewEngine(context.Background(), *mapFile, cfg, logger,
		engine.WithParserOptions(osmparser.WithProgress(true)))
	if err != nil {
		panic(err)
	}

	g := re.GetGraph()

	routable := make([]da.Index, 0, g.NumberOfRoutableVertices())
	g.ForRoutableVertices(func(v *da.Vertex) {
		routable = append(routable, v.GetID())
	})
	if len(routable) == 0 {
		logger.Fatal("map has no routable node", zap.String("mapFile", *mapFile))
	}

	rd := rand.New(rand.NewSource(*seed))
	queries := make([]spParam, *numQueries)
	for i := range queries {
		queries[i] = newSPParam(i, routable[rd.Intn(len(routable))], routable[rd.Intn(len(routable))])
	}

	fout, err := os.Create(*outFile)
	if err != nil {
		panic(err)
	}
	defer fout.Close()
	w := bufio.NewWriter(fout)
	defer w.Flush()

	if _, err := fmt.Fprintln(w, "start,goal,found,expansions,distance_km,duration_ms,dijkstra_km"); err != nil {
		panic(err)
	}

	lock := sync.Mutex{}
	astar := routing.NewAStar(g, cfg.MaxSearchIterations)

	calcsSP := func(p spParam) any {
		before := time.Now()
		res, err := astar.ShortestPath(p.s, p.t)
		duration := time.Since(before)

		found := err == nil
		if err != nil && !errors.Is(err, routing.ErrPathNotFound) {
			logger.Error("query failed", zap.Int("row", p.row), zap.Error(err))
		}

		distance := 0.0
		if found {
			_, distance, err = routing.AssemblePath(g, res.Path)
			if err != nil {
				logger.Error("assemble path", zap.Int("row", p.row), zap.Error(err))
			}
		}

		exact := ""
		if *verify {
			dist := routing.NewDijkstra(g).ShortestPath(p.s)[p.t]
			if dist != pkg.INF_WEIGHT {
				exact = strconv.FormatFloat(dist, 'f', -1, 64)
			}
			if found && math.Abs(dist-res.Cost) > 1e-9 {
				logger.Warn("a* cost differs from dijkstra", zap.Int("row", p.row),
					zap.Float64("astar", res.Cost), zap.Float64("dijkstra", dist))
			}
		}

		lock.Lock()
		fmt.Fprintf(w, "%s,%s,%t,%d,%s,%d,%s\n", g.GetID(p.s), g.GetID(p.t), found, res.Expansions,
			strconv.FormatFloat(distance, 'f', -1, 64), duration.Milliseconds(), exact)
		lock.Unlock()

		if (p.row+1)%1000 == 0 {
			logger.Sugar().Infof("done query %v", p.row+1)
		}
		return nil
	}

	workers := concurrent.NewWorkerPool[spParam, any](*numWorkers, len(queries))

	for _, q := range queries {
		workers.AddJob(q)
	}

	workers.Close()
	workers.Start(calcsSP)
	workers.Wait()

	logger.Info("random queries done", zap.Int("queries", len(queries)), zap.String("output", *outFile))
}
