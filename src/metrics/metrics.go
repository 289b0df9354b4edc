// Package metrics exposes the simulator's Prometheus instrumentation.
// All recorders are safe to call whether or not Register has run.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const subsystem = "liftsim"

var ElevatorLabels = []string{"elevator"}

var (
	requestsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "Counter of accepted transport requests.",
		},
	)

	requestsRejectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "requests_rejected_total",
			Help:      "Counter of requests rejected for referencing a floor outside the building.",
		},
	)

	waitingPassengers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Subsystem: subsystem,
			Name:      "waiting_passengers",
			Help:      "Number of passengers currently waiting on any floor.",
		},
	)

	passengersBoarded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "passengers_boarded_total",
			Help:      "Counter of passengers boarded, broken out per elevator.",
		},
		ElevatorLabels,
	)

	passengersDelivered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "passengers_delivered_total",
			Help:      "Counter of passengers delivered to their destination, broken out per elevator.",
		},
		ElevatorLabels,
	)

	ticksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "ticks_total",
			Help:      "Counter of completed movement-loop iterations, broken out per elevator.",
		},
		ElevatorLabels,
	)

	occupiedElevators = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Subsystem: subsystem,
			Name:      "occupied_elevators",
			Help:      "Number of elevators currently transporting or fetching passengers.",
		},
	)
)

var registerOnce sync.Once

// Register registers all simulator metrics with the given registerer.
func Register(r prometheus.Registerer) {
	registerOnce.Do(func() {
		r.MustRegister(
			requestsTotal,
			requestsRejectedTotal,
			waitingPassengers,
			passengersBoarded,
			passengersDelivered,
			ticksTotal,
			occupiedElevators,
		)
	})
}

func RecordRequest() {
	requestsTotal.Inc()
}

func RecordRejectedRequest() {
	requestsRejectedTotal.Inc()
}

func IncWaitingPassengers() {
	waitingPassengers.Inc()
}

func SubWaitingPassengers(n int) {
	waitingPassengers.Sub(float64(n))
}

func RecordBoardings(elevator string, n int) {
	passengersBoarded.WithLabelValues(elevator).Add(float64(n))
}

func RecordDeliveries(elevator string, n int) {
	passengersDelivered.WithLabelValues(elevator).Add(float64(n))
}

func RecordTick(elevator string) {
	ticksTotal.WithLabelValues(elevator).Inc()
}

func SetOccupiedElevators(n int) {
	occupiedElevators.Set(float64(n))
}
