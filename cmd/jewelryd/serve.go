package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	_ "jewelry-production-service/docs"
	"jewelry-production-service/internal/auth"
	"jewelry-production-service/internal/entity"
	"jewelry-production-service/internal/ratelimit"
	"jewelry-production-service/internal/service"
	httptransport "jewelry-production-service/internal/transport/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()
		return serve(ctx, a, cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, a *app, stderr io.Writer) error {
	cfg, log := a.cfg, a.log
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	if a.memDB != nil {
		if err := seedOwner(a, tokens, stderr); err != nil {
			return err
		}
	}

	var limit func(http.Handler) http.Handler
	if cfg.RateLimitEnabled() {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable, requests will not be limited until it is", "addr", cfg.RedisAddr, "err", err)
		}
		limit = ratelimit.Middleware(ratelimit.NewLimiter(rdb, cfg.RateLimitPerMinute, time.Minute), log)
	}

	// DI
	ledger := service.NewLedger(a.store)
	h := httptransport.NewHandler(
		service.NewJobService(a.store, ledger, log),
		service.NewCoordinator(a.store, ledger, log),
		service.NewReportService(a.store),
		service.NewUserService(a.store),
		log,
	)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httptransport.Routes(h, auth.Middleware(tokens, a.store.Users(), log), limit, cfg.CORSAllowedOrigins),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server started",
			"addr", cfg.HTTPAddr,
			"storage", cfg.Storage,
			"rate_limit_per_minute", cfg.RateLimitPerMinute,
			"rate_limit_enabled", cfg.RateLimitEnabled(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down", "timeout", cfg.ShutdownTimeout.String())
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("http server stopped")
	return nil
}

// seedOwner creates an owner account on an empty in-memory store and prints a token for it to w.
// The token itself never goes to the log.
func seedOwner(a *app, tokens *auth.TokenService, w io.Writer) error {
	u := a.memDB.AddUser(entity.User{Username: "owner", FullName: "Workshop Owner", Role: entity.RoleOwner, IsActive: true})
	tok, exp, err := tokens.Issue(&u)
	if err != nil {
		return err
	}
	a.log.Info("seeded owner account", "user_id", u.ID, "expires_at", exp.Format(time.RFC3339))
	fmt.Fprintf(w, "%s owner token (expires %s):\n%s\n", color.YellowString("!"), exp.Format(time.RFC3339), tok)
	return nil
}
