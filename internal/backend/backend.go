// Package backend builds the configured ledger store and the optional
// event publisher.
package backend

import (
	"context"
	"fmt"

	"fintrack/internal/amqp"
	"fintrack/internal/config"
	"fintrack/internal/ledger"
	"fintrack/internal/ledger/csvfile"
	"fintrack/internal/ledger/gsheet"
	"fintrack/internal/ledger/memory"
	"fintrack/internal/ledger/sqlite"
	"fintrack/internal/log"
	"fintrack/internal/recorder"
)

// Result bundles the wired components with their cleanup.
type Result struct {
	Store    ledger.Store
	Recorder *recorder.Recorder
	Cleanup  func() error
}

// New builds the store selected by cfg.DataBackend, attaches the AMQP
// publisher when one is configured, and returns the recorder on top.
func New(ctx context.Context, cfg *config.Config, logger *log.Logger) (*Result, error) {
	logger = logger.WithComponent(log.ComponentLedger)

	var (
		store   ledger.Store
		cleanup func() error
	)

	switch cfg.DataBackend {
	case config.BackendCSV:
		store = csvfile.New(cfg.DataDir)
		logger.Info("Initialized CSV backend", "data_dir", cfg.DataDir)

	case config.BackendMemory:
		store = memory.New()
		logger.Info("Initialized memory backend")

	case config.BackendSQLite:
		sqliteStore, err := sqlite.New(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		store = sqliteStore
		cleanup = sqliteStore.Close
		logger.Info("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)

	case config.BackendSheets:
		client, err := gsheet.NewFromEnv(ctx)
		if err != nil {
			return nil, fmt.Errorf("initialize sheets backend: %w", err)
		}
		store = client
		logger.Info("Initialized Google Sheets backend")

	default:
		return nil, fmt.Errorf("unsupported data backend: %s", cfg.DataBackend)
	}

	// The publisher is optional; a broker that is down at startup only
	// disables events, it never blocks the tracker.
	var events recorder.EventPublisher
	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without events", "error", err)
		} else {
			events = client
			logger.Info("Initialized AMQP publisher",
				"exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
			closeStore := cleanup
			cleanup = func() error {
				err := client.Close()
				if closeStore != nil {
					if storeErr := closeStore(); err == nil {
						err = storeErr
					}
				}
				return err
			}
		}
	}

	if cleanup == nil {
		cleanup = func() error { return nil }
	}

	return &Result{
		Store:    store,
		Recorder: recorder.New(store, events),
		Cleanup:  cleanup,
	}, nil
}
