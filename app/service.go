// Package app wires the configuration into a running dispatch service: the
// plant store, classifier, resolver, alert channel, metrics sinks and the
// HTTP API.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	apidispatch "github.com/kilianp07/maintdispatch/api/dispatch"
	"github.com/kilianp07/maintdispatch/config"
	"github.com/kilianp07/maintdispatch/core/classify"
	"github.com/kilianp07/maintdispatch/core/dispatch"
	coremetrics "github.com/kilianp07/maintdispatch/core/metrics"
	corenotify "github.com/kilianp07/maintdispatch/core/notify"
	"github.com/kilianp07/maintdispatch/core/prediction"
	"github.com/kilianp07/maintdispatch/infra/logger"
	"github.com/kilianp07/maintdispatch/infra/metrics"
	"github.com/kilianp07/maintdispatch/infra/notify"
	"github.com/kilianp07/maintdispatch/infra/store"
	"github.com/kilianp07/maintdispatch/internal/eventbus"
)

// Service holds the wired dispatch pipeline.
type Service struct {
	Resolver *dispatch.Resolver
	Store    *store.MemoryStore

	bus         eventbus.EventBus
	log         logger.Logger
	apiAddr     string
	promEnabled bool
	promAddr    string
	closers     []func()
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	st := store.NewSampleStore()
	if len(cfg.Plant.Contacts) > 0 || cfg.Plant.DefaultContact != "" {
		st.SetContacts(cfg.Plant.Contacts, cfg.Plant.DefaultContact)
	}

	svc := &Service{
		Store:       st,
		log:         logg,
		apiAddr:     cfg.API.Addr,
		promEnabled: cfg.Metrics.PrometheusEnabled,
		promAddr:    cfg.Metrics.PrometheusAddr,
	}

	notifier, err := svc.buildNotifier(cfg.Notify)
	if err != nil {
		return nil, err
	}

	var sinks []coremetrics.OutcomeSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(nil)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics, logger.New("influx-sink")))
	}
	var sink coremetrics.OutcomeSink = metrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	bus := eventbus.New()
	svc.bus = bus

	classifier := classify.New(prediction.NewLogisticPredictor(), nil)
	resolver, err := dispatch.NewResolver(st, classifier, notifier, st, logg, sink, bus)
	if err != nil {
		return nil, fmt.Errorf("resolver: %w", err)
	}
	svc.Resolver = resolver
	return svc, nil
}

func (s *Service) buildNotifier(cfg config.NotifyConfig) (corenotify.Notifier, error) {
	switch cfg.Channel {
	case "mqtt":
		n, err := notify.NewMQTTNotifier(cfg.MQTT, logger.New("mqtt-notifier"))
		if err != nil {
			return nil, fmt.Errorf("mqtt notifier: %w", err)
		}
		s.closers = append(s.closers, n.Close)
		return n, nil
	case "nats":
		n, err := notify.NewNATSNotifier(cfg.NATS, logger.New("nats-notifier"))
		if err != nil {
			return nil, fmt.Errorf("nats notifier: %w", err)
		}
		s.closers = append(s.closers, n.Close)
		return n, nil
	case "smtp":
		return notify.NewSMTPNotifier(cfg.SMTP, logger.New("smtp-notifier"))
	default:
		return notify.NewLogNotifier(logger.New("log-notifier")), nil
	}
}

// Run starts the HTTP API (and the Prometheus server when enabled) and
// blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	go s.watchEvents(ctx)
	if s.promEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	mux := http.NewServeMux()
	mux.Handle("/api/dispatch", apidispatch.NewDispatchHandler(s.Resolver, s.log))
	mux.Handle("/api/dispatch/history", apidispatch.NewHistoryHandler(s.Resolver))
	mux.Handle("/api/machines", apidispatch.NewMachinesHandler(s.Store, s.Store))
	srv := &http.Server{Addr: s.apiAddr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("api shutdown: %v", err)
		}
	}()

	s.log.Infof("api listening on %s", s.apiAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() {
	for _, c := range s.closers {
		c()
	}
	if s.bus != nil {
		s.bus.Close()
	}
}
