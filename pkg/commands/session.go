package commands

import (
	"context"

	"tableflip.dev/serenitas/pkg/app"
	"tableflip.dev/serenitas/pkg/library"
	"tableflip.dev/serenitas/pkg/logger"
	"tableflip.dev/serenitas/pkg/store"
)

// session is a hydrated service plus the config and logger it was built from.
type session struct {
	cfg store.Config
	log logger.Logger
	svc *app.Service
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.LogLevel(), cfg.LogFile())
	if err != nil {
		return nil, err
	}
	gw, err := store.Load(cfg)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}
	svc := &app.Service{
		Gateway:  gw,
		Provider: library.NewProvider(nil),
		Log:      log,
	}
	if err := svc.Hydrate(ctx); err != nil {
		_ = log.Sync()
		return nil, err
	}
	return &session{cfg: cfg, log: log, svc: svc}, nil
}

func (s *session) Close() {
	_ = s.log.Sync()
}
