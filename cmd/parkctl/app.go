package main

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/parkctl/apiclient"
	"github.com/jrsteele09/parkctl/auth"
	"github.com/jrsteele09/parkctl/dashboard"
	"github.com/jrsteele09/parkctl/internal/config"
	"github.com/jrsteele09/parkctl/payments"
	"github.com/jrsteele09/parkctl/registers"
	"github.com/jrsteele09/parkctl/reports"
	"github.com/jrsteele09/parkctl/session"
	"github.com/jrsteele09/parkctl/users"
	"github.com/jrsteele09/parkctl/vehicles"
)

// app is the composition root: every service shares the one session store
// and the one API client.
type app struct {
	cfg       config.Config
	store     *session.FileStore
	validator *auth.Validator
	auth      *auth.Service
	guard     *auth.Guard
	vehicles  *vehicles.Service
	registers *registers.Service
	users     *users.Service
	reports   *reports.Service
	payments  *payments.Service
	publicPay *payments.PublicService
	dashboard *dashboard.Service
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "[newApp] config.Load")
	}
	setupLogging(cfg.LogLevel)

	store, err := session.NewFileStore(cfg.DataDir)
	if err != nil {
		return nil, errors.Wrap(err, "[newApp] session.NewFileStore")
	}

	// Forced expiry: any 401 tears the session down before the failing call
	// returns, then points the operator back at the login flow.
	client, err := apiclient.New(cfg.BaseURL, store, apiclient.WithOnSessionExpired(func() {
		if err := store.Clear(); err != nil {
			log.Warn().Err(err).Msg("failed to clear expired session")
		}
		fail("Session expired. Run 'parkctl login' to sign in again.")
	}))
	if err != nil {
		return nil, errors.Wrap(err, "[newApp] apiclient.New")
	}

	authService, err := auth.NewService(client, store)
	if err != nil {
		return nil, errors.Wrap(err, "[newApp] auth.NewService")
	}

	vehicleService := vehicles.NewService(client)
	registerService := registers.NewService(client)

	return &app{
		cfg:       cfg,
		store:     store,
		validator: auth.NewValidator(),
		auth:      authService,
		guard: auth.NewGuard(store, func() {
			info("Run 'parkctl login' to sign in.")
		}),
		vehicles:  vehicleService,
		registers: registerService,
		users:     users.NewService(client),
		reports:   reports.NewService(client),
		payments:  payments.NewService(client),
		publicPay: payments.NewPublicService(apiclient.NewPublic(cfg.BaseURL)),
		dashboard: dashboard.NewService(vehicleService, registerService),
	}, nil
}

// requireAuth gates a protected command on the session store's state.
func (a *app) requireAuth() error {
	return a.guard.Require()
}
