package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ashpect/ttlstore/pkg/config"
	"github.com/ashpect/ttlstore/pkg/store"
	"github.com/ashpect/ttlstore/pkg/utils"
)

func main() {
	configFile := flag.String("config", "config.toml", "location of config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		utils.Logger.Fatalf("load config: %v", err)
	}
	if err := utils.ConfigureLogger(cfg.Log.Level, cfg.Log.Format); err != nil {
		utils.Logger.Fatalf("configure logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := utils.Logger.WithField("component", "demo")
	s := store.New(
		store.WithOnSet(func(key, value string) {
			events.WithFields(logrus.Fields{"key": key, "value": value}).Info("set")
		}),
		store.WithOnDelete[string, string](func(key string) {
			events.WithField("key", key).Info("deleted")
		}),
		store.WithOnExpire(func(key, value string) {
			events.WithFields(logrus.Fields{"key": key, "value": value}).Info("expired")
		}),
		store.WithOnClear[string, string](func() {
			events.Info("cleared")
		}),
	)
	defer s.Stop()

	for _, e := range cfg.Demo.Entries {
		s.SetWithTTL(e.Key, e.Value, e.TTL)
	}
	utils.PrintSnapshot("=== Entries after load ===", s.GetAll())

	utils.Log("waiting %s for expirations", cfg.Demo.RunFor)
	wait := time.NewTimer(cfg.Demo.RunFor)
	defer wait.Stop()

	select {
	case <-ctx.Done():
		utils.Log("received shutdown signal")
	case <-wait.C:
	}

	utils.PrintSnapshot("=== Entries still live ===", s.GetAll())
	utils.Debug("stored entries including overdue: %d", s.Len())
}
