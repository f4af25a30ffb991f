package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"gymguru/cmd/fx/account_fx"
	"gymguru/cmd/fx/controllers_fx"
	"gymguru/cmd/fx/db_fx"
	"gymguru/cmd/fx/interest_fx"
	"gymguru/cmd/fx/logger_fx"
	"gymguru/cmd/fx/member_fx"
	"gymguru/cmd/fx/skill_fx"
	"gymguru/cmd/fx/subscription_fx"
	"gymguru/internal/api"
	"gymguru/internal/api/controllers"
	"gymguru/internal/config"
)

const (
	envFileFlag = "env-file"
	portFlag    = "port"
)

var serveFlags = map[string]cobraflags.Flag{
	envFileFlag: &cobraflags.StringFlag{
		Name:  envFileFlag,
		Value: ".env",
		Usage: "Dotenv file loaded before reading the environment (ignored when missing)",
	},
	portFlag: &cobraflags.StringFlag{
		Name:  portFlag,
		Value: "",
		Usage: "HTTP port, overrides $PORT",
	},
}

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE:  serveCommand,
	}
	cobraflags.RegisterMap(cmd, serveFlags)
	return cmd
}

func serveCommand(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveFlags[envFileFlag].GetString())
	if err != nil {
		return err
	}
	withPort := cfg.WithPort(serveFlags[portFlag].GetString())

	app := fx.New(appOptions(&withPort))
	app.Run()
	return app.Err()
}

func appOptions(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.StopTimeout(cfg.ShutdownTimeout),
		logger_fx.Module,
		db_fx.Module,
		account_fx.Module,
		member_fx.Module,
		subscription_fx.Module,
		skill_fx.Module,
		interest_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)
}

type RouterParams struct {
	fx.In

	Config       *config.Config
	Logger       *zap.Logger
	Account      *controllers.AccountController
	Member       *controllers.MemberController
	Subscription *controllers.SubscriptionController
	Skill        *controllers.SkillController
	Interest     *controllers.InterestController
	Health       *controllers.HealthController
}

func ProvideRouter(p RouterParams) *gin.Engine {
	if p.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	return api.NewRouter(p.Logger.Named("http"), p.Config.AllowedOrigins, api.Controllers{
		Account:      p.Account,
		Member:       p.Member,
		Subscription: p.Subscription,
		Skill:        p.Skill,
		Interest:     p.Interest,
		Health:       p.Health,
	})
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger, shutdowner fx.Shutdowner) {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("HTTP server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
