package app

import (
	"context"
	"errors"
	"time"

	"github.com/robfig/cron/v3"

	"postboard/internal/domain/ports"
)

const refreshTimeout = 2 * time.Minute

// Pass renders the publications once.
type Pass interface {
	Run(ctx context.Context) error
}

// Server serves the rendered page until ctx is cancelled.
type Server interface {
	ListenAndServe(ctx context.Context, addr string) error
}

// Options controls what the App does after the first render.
type Options struct {
	ListenAddr  string
	RefreshCron string
}

// App manages the lifecycle of the publication board.
type App struct {
	cron   *cron.Cron
	pass   Pass
	server Server
	logger ports.Logger
	opts   Options
}

// New constructs an App instance.
func New(pass Pass, server Server, logger ports.Logger, opts Options) *App {
	return &App{
		cron:   cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLogger{logger}))),
		pass:   pass,
		server: server,
		logger: logger,
		opts:   opts,
	}
}

// Run renders the board once and, when configured, keeps serving and refreshing it
// until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a.opts.RefreshCron != "" {
		if err := a.scheduleJob(); err != nil {
			return err
		}
	}

	a.logger.Info(ctx, "initial render")
	if err := a.pass.Run(ctx); err != nil {
		return err
	}

	if a.opts.ListenAddr == "" && a.opts.RefreshCron == "" {
		return nil
	}

	if a.opts.RefreshCron != "" {
		a.logger.Info(ctx, "starting scheduler", "cron", a.opts.RefreshCron)
		a.cron.Start()
		defer a.stopScheduler()
	}

	if a.opts.ListenAddr != "" && a.server != nil {
		if err := a.server.ListenAndServe(ctx, a.opts.ListenAddr); err != nil {
			return err
		}
		return nil
	}

	<-ctx.Done()
	return nil
}

// cronLogger routes scheduler messages to ports.Logger.
type cronLogger struct {
	logger ports.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	if l.logger != nil {
		l.logger.Info(context.Background(), "cron: "+msg, keysAndValues...)
	}
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	if l.logger != nil {
		l.logger.Error(context.Background(), "cron: "+msg, append([]interface{}{"error", err}, keysAndValues...)...)
	}
}

func (a *App) stopScheduler() {
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
	}
	a.logger.Info(context.Background(), "scheduler stopped")
}

func (a *App) scheduleJob() error {
	if a.pass == nil {
		return errors.New("no render pass configured")
	}
	_, err := a.cron.AddFunc(a.opts.RefreshCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		if err := a.pass.Run(ctx); err != nil {
			a.logger.Error(ctx, "scheduled render failed", "error", err)
		}
	})
	if err != nil {
		return err
	}
	return nil
}
