package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pmaojo/ontos/internal/config"
	"github.com/pmaojo/ontos/internal/platform/logger"
	"github.com/pmaojo/ontos/internal/platform/metrics"
	"github.com/pmaojo/ontos/internal/service"
	"github.com/pmaojo/ontos/internal/service/knowledge"
	"github.com/pmaojo/ontos/internal/store"
)

// application holds the wired components of the running server.
type application struct {
	config     *config.Config
	logger     *slog.Logger
	metrics    *metrics.Metrics
	repository store.OntologyRepository
	reasoner   store.Reasoner
	assistant  knowledge.Assistant
}

// newApplication loads configuration and wires logging, metrics, the
// ontology service and the optional knowledge assistant.
func newApplication(configPath string) (*application, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)
	log.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"ontology_backend", cfg.Ontology.Backend,
		"reasoner_backend", cfg.Reasoner.Backend)

	svc, err := service.NewFromConfig(cfg.Ontology, cfg.Reasoner)
	if err != nil {
		return nil, fmt.Errorf("failed to build ontology service: %w", err)
	}

	assistant, err := knowledge.NewAssistant(cfg.Assistant)
	if err != nil {
		return nil, fmt.Errorf("failed to build knowledge assistant: %w", err)
	}
	if assistant == nil {
		log.Info("knowledge assistant not configured, /api/knowledge disabled")
	}

	m := metrics.New()
	return &application{
		config:     cfg,
		logger:     log,
		metrics:    m,
		repository: metrics.InstrumentRepository(svc.Repository(), m),
		reasoner:   metrics.InstrumentReasoner(svc.Reasoner(), m),
		assistant:  assistant,
	}, nil
}

// run serves HTTP until the context is canceled or a shutdown signal
// arrives.
func (app *application) run(ctx context.Context) error {
	return app.startHTTPServer(ctx, app.setupRouter())
}
