package main

import (
	"context"
	"flag"
	"strings"

	"butce/api"
	"butce/config"
	"butce/database"
	"butce/middleware"
	"butce/router"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// @title Bütçe API
// @version 1.0
// @description Kişisel bütçe yönetimi: gelir dağıtımı, borç takibi, birikim hedefleri ve fon transferleri
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "external config file path (optional)")
	flag.StringVar(&configFile, "c", "", "external config file path (shorthand)")
	flag.StringVar(&port, "port", "", "listen port, e.g. 8080 or :8080")
	flag.StringVar(&port, "p", "", "listen port (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&showVersion, "v", false, "print version (shorthand)")
}

func main() {
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if showVersion {
		log.Info("butce v1.0.0")
		return
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.WithError(err).Fatal("load config failed")
	}

	// command line port overrides config
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.WithField("port", port).Info("port set from command line")
	}

	if err := database.Init(cfg); err != nil {
		log.WithError(err).Fatal("database init failed")
	}

	middleware.InitJWT(cfg)

	// in-process milestone schedule, next to the HTTP trigger
	if cfg.Jobs.CronEnabled {
		c := cron.New()
		_, err := c.AddFunc(cfg.Jobs.CronSchedule, func() {
			result, err := api.NewMilestoneDetector(log).Run(context.Background())
			if err != nil {
				log.WithError(err).Error("scheduled milestone run failed")
				return
			}
			log.WithFields(logrus.Fields{
				"newly_paid_off":     result.NewlyPaidOff,
				"newly_halfway":      result.NewlyHalfway,
				"notifications_sent": result.NotificationsSent,
			}).Info("scheduled milestone run completed")
		})
		if err != nil {
			log.WithError(err).Fatal("invalid cron schedule")
		}
		c.Start()
		defer c.Stop()
		log.WithField("schedule", cfg.Jobs.CronSchedule).Info("milestone cron registered")
	}

	r := router.SetupRouter(cfg, log)

	log.WithFields(logrus.Fields{
		"port":    cfg.Server.Port,
		"swagger": "/swagger/index.html",
		"api":     "/api/v1/",
	}).Info("butce started")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.WithError(err).Fatal("server failed")
	}
}
