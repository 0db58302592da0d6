package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go-chi-calculator/internal/calculator"
	"go-chi-calculator/internal/config"
	"go-chi-calculator/internal/history"
)

// app holds what every front end shares: configuration, the history store
// and the calculator service on top of it.
type app struct {
	cfg       *config.Config
	persister history.Persister
	store     *history.Store
	svc       *calculator.Service
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	persister, err := history.NewPersister(cfg.History.Backend, cfg.History.Path)
	if err != nil {
		return nil, err
	}

	store := history.NewStore(persister)
	a := &app{
		cfg:       cfg,
		persister: persister,
		store:     store,
		svc:       calculator.NewService(store),
	}

	if cfg.History.LoadOnStart {
		if _, err := a.svc.LoadHistory(ctx); err != nil {
			closePersister(persister)
			return nil, fmt.Errorf("load history on start: %w", err)
		}
	}

	return a, nil
}

// close saves the history when configured to and releases the persister.
func (a *app) close(ctx context.Context) error {
	var errs []error
	if a.cfg.History.SaveOnExit {
		errs = append(errs, a.svc.SaveHistory(ctx))
	}
	errs = append(errs, closePersister(a.persister))
	return errors.Join(errs...)
}

func closePersister(p history.Persister) error {
	if c, ok := p.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
