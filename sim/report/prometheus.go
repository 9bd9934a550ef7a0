package report

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tandem-sim/tandem-sim/sim"
)

const namespace = "tandem"

// NewRegistry builds a registry holding the final statistics of res.
// A fresh registry per run keeps repeated runs in one process independent.
func NewRegistry(res *sim.Result) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()

	globalTime := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "global_time",
		Help:      "Simulated time at which the run stopped",
	})
	events := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_processed_total",
		Help:      "Number of calendar events processed",
	})
	draws := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "random_draws_total",
		Help:      "Number of pseudorandom draws consumed",
	})
	losses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "station_losses_total",
		Help:      "Arrivals rejected because the station was full",
	}, []string{"station"})
	stateTime := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "station_state_time",
		Help:      "Simulated time spent at each occupancy level",
	}, []string{"station", "level"})
	stateProb := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "station_state_probability_percent",
		Help:      "Share of observed time spent at each occupancy level",
	}, []string{"station", "level"})

	for _, c := range []prometheus.Collector{globalTime, events, draws, losses, stateTime, stateProb} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering collector: %w", err)
		}
	}

	globalTime.Set(res.GlobalTime)
	events.Add(float64(res.EventsProcessed))
	draws.Add(float64(res.DrawsUsed))
	for _, st := range res.Stations {
		losses.WithLabelValues(st.Name).Add(float64(st.Losses))
		for lvl, t := range st.Times {
			level := strconv.Itoa(lvl)
			stateTime.WithLabelValues(st.Name, level).Set(t)
			stateProb.WithLabelValues(st.Name, level).Set(st.Probabilities[lvl])
		}
	}
	return reg, nil
}

// WriteTextfile writes the run statistics in the Prometheus text format,
// suitable for the node exporter textfile collector.
func WriteTextfile(path string, res *sim.Result) error {
	reg, err := NewRegistry(res)
	if err != nil {
		return err
	}
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}
