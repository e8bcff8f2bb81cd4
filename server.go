// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"lacak-server/commons"
	"lacak-server/db"
	"lacak-server/events"
	"lacak-server/handlers"
	"lacak-server/migrations"
	"lacak-server/routes"
	"lacak-server/tracking"
	"lacak-server/validator"
	"os"
	"slices"
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	commons.LoadEnvFile()

	e := echo.New()
	e.HideBanner = true

	e.Logger.SetLevel(commons.Logger.Level())
	e.Logger.SetHeader("${time_rfc3339} ${level} ${short_file}:${line} -")
	e.HTTPErrorHandler = handlers.ErrorEnvelopeHandler

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logMsg := func(format string, args ...any) {
				switch {
				case v.Status >= 500:
					e.Logger.Errorf(format, args...)
				case v.Status >= 400:
					e.Logger.Warnf(format, args...)
				default:
					e.Logger.Infof(format, args...)
				}
			}
			logMsg("%s %s - %d - %.2fms - %s",
				v.Method,
				v.URI,
				v.Status,
				float64(v.Latency.Microseconds())/1000.0,
				v.RemoteIP,
			)
			return nil
		},
	}))
	debugMode := slices.Contains(os.Args[1:], "--debug")
	if debugMode {
		e.Logger.Warn("Debug mode is enabled.")
		e.Debug = true
		e.Logger.SetLevel(log.DEBUG)
	}

	e.Use(middleware.Recover())

	db.InitDB()
	if slices.Contains(os.Args[1:], "--migrate-db") {
		commons.Logger.Debug("--migrate-db flag detected, running migrations")
		db.MigrateDB()
		m := gormigrate.New(db.Conn, gormigrate.DefaultOptions, migrations.List())
		if err := m.Migrate(); err != nil {
			commons.Logger.Error("Data migrations failed:", err)
			os.Exit(1)
		}
		commons.Logger.Info("Data migrations completed")
	}

	commons.InitTables()

	enrichTimeout := time.Duration(commons.GetEnvInt("ENRICH_TIMEOUT_SECONDS", 5)) * time.Second
	enricher := &tracking.ExternalEnricher{Timeout: enrichTimeout}
	if key := commons.GetEnv("NUMVERIFY_API_KEY"); key != "" {
		enricher.Numverify = tracking.NewNumverifyClient(key, enrichTimeout, 1)
	}
	if key := commons.GetEnv("OPENCAGE_API_KEY"); key != "" {
		enricher.Opencage = tracking.NewOpencageClient(key, enrichTimeout, 1)
	}

	cacheTTL := time.Duration(commons.GetEnvInt("CACHE_TTL_SECONDS", 3600)) * time.Second
	tracker := &tracking.Orchestrator{
		Validator: validator.NewValidator(),
		Tables:    commons.Tables,
		Blacklist: &tracking.GormBlacklist{DB: db.Conn},
		Porting:   &tracking.GormPorting{DB: db.Conn},
		Cache:     tracking.NewResultCache(cacheTTL, commons.GetEnvInt("CACHE_MAX_ENTRIES", 0)),
		Limiter:   tracking.NewRateLimiter(db.Conn, commons.GetEnvInt("RATE_LIMIT_PER_DAY", 100)),
		Enricher:  enricher,
		Scorer:    tracking.NewScorer(time.Now().UnixNano()),

		RequireAPIKey: commons.GetEnvBool("API_KEY_REQUIRED", true),
	}

	publisher, err := events.NewPublisher(events.PublisherConfig{})
	if err != nil {
		commons.Logger.Warn("Event publishing disabled, broker unreachable")
	}
	defer publisher.Close()

	handlers.Init(tracker, publisher)
	routes.RegisterRoutes(e)

	port := commons.GetEnv("PORT")
	if port == "" {
		port = ":8080"
	}
	if port[0] != ':' {
		port = ":" + port
	}
	e.Logger.Fatal(e.Start(port))
}
