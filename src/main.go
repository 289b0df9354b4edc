package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"

	"liftsim/src/building"
	"liftsim/src/config"
	"liftsim/src/logging"
	"liftsim/src/metrics"
)

// Demo configuration modelled on the DC Tower in Vienna.
const (
	dcTowerName     = "DC Tower"
	dcTowerFloors   = 55
	dcTowerLifts    = 7
	dcTowerCapacity = 6
	dcTowerSpeed    = 10
)

func main() {
	name := pflag.String("name", dcTowerName, "name of the simulated building")
	floors := pflag.Int("floors", dcTowerFloors, "number of floors")
	elevators := pflag.Int("elevators", dcTowerLifts, "number of elevators")
	capacity := pflag.Int("capacity", dcTowerCapacity, "passengers per elevator")
	speed := pflag.Float64("speed", dcTowerSpeed, "elevator speed in floors per second")
	requests := pflag.Int("requests", 30, "number of random transport requests to submit")
	seed := pflag.Int64("seed", 0, "random seed, 0 means time-based")
	debug := pflag.Bool("debug", false, "log every elevator tick")
	metricsAddr := pflag.String("metrics-addr", ":9090", "listen address for the /metrics endpoint")
	pflag.Parse()

	verbosity := logging.DEFAULT
	if *debug {
		verbosity = logging.DEBUG
	}
	log := logging.NewLogger(verbosity)

	metrics.Register(prometheus.DefaultRegisterer)
	go serveMetrics(*metricsAddr, log)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))
	log.Info("starting simulation", "seed", *seed)

	factory := building.NewFactory(log)
	factory.SetBuildingName(*name)
	factory.SetNumberOfFloors(*floors)
	factory.SetNumberOfElevators(*elevators)
	factory.SetElevatorCapacity(*capacity)
	factory.SetElevatorSpeed(*speed)
	factory.SetDebug(*debug)
	factory.SetRandomSource(rng)
	b := factory.Create()

	for _, direction := range []string{"up", "down", "random"} {
		makeRandomRequests(b, *requests/3, direction, rng)
	}

	monitor(b, log, *debug)
}

// makeRandomRequests submits a batch of requests in one of three
// shapes: ground floor up to a random floor, a random floor down to the
// ground floor, or fully random.
func makeRandomRequests(b *building.Building, count int, direction string, rng *rand.Rand) {
	for request := 0; request < count; request++ {
		name := fmt.Sprintf("<Passenger going %s %d>", direction, request)
		from, to := 0, 0
		switch direction {
		case "up":
			to = rng.Intn(b.NumberOfFloors())
		case "down":
			from = rng.Intn(b.NumberOfFloors())
		default:
			from = rng.Intn(b.NumberOfFloors())
			to = rng.Intn(b.NumberOfFloors())
		}
		b.AddRequest(name, from, to)
	}
}

// monitor polls the building until the fleet is quiescent, then stops
// operation and waits for the elevators to drain. An interrupt stops
// the fleet early.
func monitor(b *building.Building, log logr.Logger, debug bool) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(config.MonitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			occupied := b.NumberOfOccupiedElevators()
			waiting := b.NumberOfWaitingRequests()
			metrics.SetOccupiedElevators(occupied)
			log.Info("still processing requests", "occupiedElevators", occupied, "waitingRequests", waiting)
			if debug {
				logStatuses(b, log)
			}
			if occupied == 0 && waiting == 0 {
				shutDown(b, log)
				return
			}
		case <-interrupt:
			log.Info("interrupted")
			shutDown(b, log)
			return
		}
	}
}

func logStatuses(b *building.Building, log logr.Logger) {
	statuses, err := b.ElevatorStatuses()
	if err != nil {
		log.Error(err, "could not snapshot elevators")
		return
	}
	for _, status := range statuses {
		log.V(logging.DEBUG).Info("elevator status",
			"elevator", status.Number,
			"floor", status.Floor,
			"destination", status.Destination,
			"state", status.State.String(),
			"onboard", status.Onboard)
	}
}

func shutDown(b *building.Building, log logr.Logger) {
	log.Info("shutting down the elevators")
	b.StopOperation()
	if err := b.Wait(); err != nil {
		log.Error(err, "elevators stopped with an error")
	}
	metrics.SetOccupiedElevators(0)
}

func serveMetrics(addr string, log logr.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error(err, "metrics endpoint stopped", "addr", addr)
	}
}
