package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/createrainforest/bosweb/modules/donation"
	"github.com/createrainforest/bosweb/pkg/clientip"
	"github.com/createrainforest/bosweb/pkg/config"
	"github.com/createrainforest/bosweb/pkg/email"
	"github.com/createrainforest/bosweb/pkg/httpserver"
	"github.com/createrainforest/bosweb/pkg/logger"
	"github.com/createrainforest/bosweb/pkg/ratelimiter"
	"github.com/createrainforest/bosweb/pkg/redis"
	"github.com/createrainforest/bosweb/pkg/requestid"
)

type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"bosweb"`
}

func main() {
	var app appConfig
	config.MustLoad(&app)

	log := logger.New(
		logger.WithEnvironment(app.Env, app.ServiceName),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	if err := run(context.Background(), log); err != nil {
		log.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger) error {
	var (
		serverCfg   httpserver.Config
		emailCfg    email.Config
		limitCfg    ratelimiter.Config
		redisCfg    redis.Config
		donationCfg donation.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&serverCfg) },
		func() error { return config.Load(&emailCfg) },
		func() error { return config.Load(&limitCfg) },
		func() error { return config.Load(&redisCfg) },
		func() error { return config.Load(&donationCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	var healthChecks []func(context.Context) error
	var store ratelimiter.Store
	if redisCfg.Enabled() {
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer client.Close()
		healthChecks = append(healthChecks, redis.Healthcheck(client))
		store = ratelimiter.NewRedisStore(client)
		log.Info("rate limits shared through redis", logger.Component("ratelimiter"))
	} else {
		mem := ratelimiter.NewMemoryStore()
		defer mem.Close()
		store = mem
	}

	limiter, err := ratelimiter.NewBucket(store, limitCfg)
	if err != nil {
		return err
	}

	sender, err := email.NewSender(emailCfg)
	if err != nil {
		return err
	}

	donations, err := donation.New(donationCfg, sender,
		donation.WithLogger(log),
		donation.WithLimiter(limiter),
	)
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware(nil),
		httpserver.AccessLog(log, "/health"),
	)
	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, healthChecks...))
	r.Mount("/", donations.Router())

	return httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(log)).Run(ctx, r)
}
