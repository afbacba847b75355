package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/anthanhphan/go-stamp-generator/internal/stampgen/config"
	"github.com/anthanhphan/go-stamp-generator/pkg/stamp"
	"github.com/anthanhphan/gosdk/logger"
	"github.com/redis/go-redis/v9"
)

type App struct {
	cfg      *config.Config
	issuer   *stamp.Issuer
	fallback *stamp.FallbackClock
	redis    *redis.Client
}

func New(configPath string) (*App, error) {
	// 1. Load Config
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Initialize Logger
	logger.InitLogger(&cfg.Logger)

	// 3. Time source per config
	a := &App{cfg: cfg}
	source, err := a.buildSource()
	if err != nil {
		return nil, fmt.Errorf("failed to init time source: %w", err)
	}

	// 4. Issuer
	issuer, err := stamp.NewIssuer(source)
	if err != nil {
		return nil, fmt.Errorf("failed to init issuer: %w", err)
	}
	a.issuer = issuer

	return a, nil
}

func (a *App) buildSource() (stamp.TimeSource, error) {
	switch a.cfg.Generator.Source {
	case "", config.SourceMonotonic:
		return stamp.NewMonotonicClock()

	case config.SourceWall:
		return stamp.NewWallClock(), nil

	case config.SourceRedis:
		a.redis = redis.NewClient(&redis.Options{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})
		var source stamp.TimeSource = stamp.NewRedisClock(a.redis)
		if a.cfg.Generator.FallbackToWall {
			a.fallback = stamp.NewFallbackClock(
				source,
				stamp.NewWallClock(),
				a.cfg.Generator.FailureThreshold,
				time.Duration(a.cfg.Generator.ReopenTimeoutMS)*time.Millisecond,
			)
			source = a.fallback
		}
		return source, nil

	default:
		return nil, fmt.Errorf("unknown time source %q", a.cfg.Generator.Source)
	}
}

func (a *App) Run() error {
	count := a.cfg.Generator.Count
	if count <= 0 {
		count = 10
	}
	workers := a.cfg.Generator.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > count {
		workers = count
	}

	logger.Infow("Stamp generation starting",
		"source", a.cfg.Generator.Source,
		"generation", stamp.CurrentGeneration,
		"count", count,
		"workers", workers)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)
	go func() {
		select {
		case sig := <-stop:
			logger.Infow("Shutdown signal received", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	stamps := make(chan stamp.Stamp, count)
	errCh := make(chan error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		share := count / workers
		if w < count%workers {
			share++
		}
		wg.Add(1)
		go func(share int) {
			defer wg.Done()
			for i := 0; i < share; i++ {
				select {
				case <-ctx.Done():
					return
				default:
				}
				s, err := a.issuer.Next()
				if err != nil {
					errCh <- err
					cancel()
					return
				}
				stamps <- s
			}
		}(share)
	}

	go func() {
		wg.Wait()
		close(stamps)
	}()

	issued := 0
	for s := range stamps {
		issued++
		logger.Debugw("Issued stamp",
			"stamp", s.String(),
			"time_field", s.TimeField(),
			"counter", s.Counter())
	}

	select {
	case err := <-errCh:
		logger.Errorw("Stamp generation failed", "issued", issued, "error", err.Error())
		return err
	default:
	}

	if a.fallback != nil && a.fallback.Degraded() {
		logger.Warnw("Primary time source degraded, stamps came from standby")
	}

	logger.Infow("Stamp generation complete", "issued", issued)
	return a.Close()
}

func (a *App) Close() error {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			logger.Warnw("Redis close failed", "error", err.Error())
			return err
		}
	}
	return nil
}
