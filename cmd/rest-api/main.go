package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/tendant/chi-demo/app"
	dbutils "github.com/tendant/db-utils/db"

	"github.com/tendant/simple-todo/pkg/account"
	accountapi "github.com/tendant/simple-todo/pkg/account/api"
	"github.com/tendant/simple-todo/pkg/auth"
	"github.com/tendant/simple-todo/pkg/config"
	"github.com/tendant/simple-todo/pkg/notification"
	"github.com/tendant/simple-todo/pkg/todo"
)

type Config struct {
	DbConfig             config.DatabaseConfig
	AppConfig            app.AppConfig
	SystemIdentityConfig config.SystemIdentityConfig
	EmailConfig          config.EmailConfig
}

func main() {
	// .env is optional; real environments set variables directly
	godotenv.Load()

	cfg := Config{}
	cleanenv.ReadEnv(&cfg)

	server := app.DefaultApp()

	app.RoutesHealthz(server.R)
	app.RoutesHealthzReady(server.R)

	dbConfig := cfg.DbConfig.ToDbConfig()
	pool, err := dbutils.NewDbPool(context.Background(), dbConfig)
	if err != nil {
		slog.Error("Failed creating dbpool", "db", dbConfig.Database, "host", dbConfig.Host, "port", dbConfig.Port, "user", dbConfig.User)
		os.Exit(-1)
	}

	accountRepo := account.NewPostgresAccountRepository(pool)
	accountService := account.NewAccountService(accountRepo)

	if cfg.EmailConfig.Enabled {
		notifier, err := notification.NewEmailNotifier(notification.SMTPConfig{
			Host:     cfg.EmailConfig.Host,
			Port:     cfg.EmailConfig.Port,
			TLS:      cfg.EmailConfig.TLS,
			Username: cfg.EmailConfig.Username,
			Password: cfg.EmailConfig.Password,
			From:     cfg.EmailConfig.From,
		})
		if err != nil {
			slog.Error("Failed creating email notifier", "err", err)
			os.Exit(-1)
		}
		accountService = accountService.WithNotifier(notifier)
	}

	resolver := auth.NewResolverWithSystemIdentity(accountRepo, auth.SystemIdentity{
		Token: cfg.SystemIdentityConfig.Token,
		Email: cfg.SystemIdentityConfig.Email,
	})

	todoRepo := todo.NewPostgresTodoRepository(pool)
	todoService := todo.NewTodoService(todoRepo)

	accountHandle := accountapi.NewHandle(accountService, resolver)
	todoHandle := todo.NewHandle(todoService)

	server.R.Route("/api/auth/accounts", accountHandle.Routes)
	server.R.Route("/api/todos", todoHandle.Routes)

	server.Run()
}
