package app

import (
	"context"
	"fmt"
	"os"

	"github.com/SimranYelave/Car-Rental-System/config"
	"github.com/SimranYelave/Car-Rental-System/core/fleet"
	coremetrics "github.com/SimranYelave/Car-Rental-System/core/metrics"
	"github.com/SimranYelave/Car-Rental-System/infra/logger"
	"github.com/SimranYelave/Car-Rental-System/infra/metrics"
	"github.com/SimranYelave/Car-Rental-System/internal/eventbus"
)

// Service wires the catalog, ledger, metrics sinks and menu together.
type Service struct {
	Manager *fleet.Manager
	bus     eventbus.EventBus
	log     logger.Logger

	promEnabled bool
	promAddr    string
}

// New creates a Service from the configuration and seeds the catalog.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.MetricsSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(nil)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sink := metrics.NewInfluxSinkWithFallback(cfg.Metrics.InfluxURL, cfg.Metrics.InfluxToken, cfg.Metrics.InfluxOrg, cfg.Metrics.InfluxBucket)
		sinks = append(sinks, sink)
	}
	var sink coremetrics.MetricsSink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	bus := eventbus.New()
	manager := fleet.NewManager(logg, sink, bus)
	for _, vc := range cfg.Catalog.Vehicles {
		if err := manager.AddVehicle(vc.Vehicle()); err != nil {
			bus.Close()
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
	}
	logg.Infof("catalog loaded with %d vehicles", len(cfg.Catalog.Vehicles))

	return &Service{
		Manager:     manager,
		bus:         bus,
		log:         logg,
		promEnabled: cfg.Metrics.PrometheusEnabled,
		promAddr:    cfg.Metrics.PrometheusAddr,
	}, nil
}

// Run serves the interactive menu on stdin/stdout until the user exits or
// the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	if s.promEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	menu := NewMenu(s.Manager, os.Stdin, os.Stdout)
	done := make(chan error, 1)
	go func() { done <- menu.Run() }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return nil
	}
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	if s.bus != nil {
		s.bus.Close()
	}
	return nil
}
