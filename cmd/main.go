package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crm-web-server/config"
	_ "crm-web-server/docs"
	"crm-web-server/internal/repository/migrations"
	"crm-web-server/internal/scheduler"
	"crm-web-server/internal/util"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title CRM-web-server
// @version 1.0
// @description REST API CRM: клиенты, лиды, ссылки для просмотра и загрузки документов

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var configPath string

var rootCmd = &cobra.Command{
	Use:           "crm",
	Short:         "CRM: клиенты, лиды и ссылки на документы",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить HTTP-сервер",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		app, err := newApplication(ctx, cfg, true)
		if err != nil {
			return err
		}
		defer app.Close()

		srv, router := config.SetupServer(cfg.ServerAddr)
		app.registerRoutes(router)

		purger := scheduler.NewSchedulerService(map[string]scheduler.Purger{
			"share":   app.shareLinkService,
			"upload":  app.uploadLinkService,
			"refresh": app.authService,
		})
		if err := purger.RegisterPurge(cfg.Links.PurgeCron); err != nil {
			return err
		}
		purger.Start()
		defer purger.Stop()

		return runServer(ctx, srv)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Применить миграции схемы PostgreSQL",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
		if err != nil {
			return fmt.Errorf("не удалось подключиться к БД: %w", err)
		}
		defer db.Close()

		if err := migrations.MigrateUp(db.DB.DB); err != nil {
			return err
		}

		version, dirty, err := migrations.Version(db.DB.DB)
		if err != nil {
			return err
		}
		fmt.Printf("Версия схемы: %d (dirty: %t)\n", version, dirty)
		return nil
	},
}

var purgeCmd = &cobra.Command{
	Use:   "purge-links",
	Short: "Однократно удалить истёкшие ссылки и refresh-токены",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		app, err := newApplication(cmd.Context(), cfg, false)
		if err != nil {
			return err
		}
		defer app.Close()

		purger := scheduler.NewSchedulerService(map[string]scheduler.Purger{
			"share":   app.shareLinkService,
			"upload":  app.uploadLinkService,
			"refresh": app.authService,
		})
		defer purger.Stop()
		for kind, n := range purger.PurgeAll(cmd.Context()) {
			fmt.Printf("%s: удалено %d\n", kind, n)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "путь к файлу конфигурации")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(purgeCmd)
}

// loadConfig : конфигурация и логгер, общие для всех команд
func loadConfig() (*config.AppConfig, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}
	if err := util.InitLogger(cfg.Log); err != nil {
		return nil, fmt.Errorf("ошибка инициализации логгера: %w", err)
	}
	return cfg, nil
}

func runServer(ctx context.Context, server *http.Server) error {
	serverErrors := make(chan error, 1)
	go func() {
		util.Logger.Info("сервер запущен", zap.String("addr", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signalChannel)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("ошибка работы сервера: %w", err)
		}
		return nil
	case sig := <-signalChannel:
		util.Logger.Info("получен сигнал остановки работы сервера", zap.String("signal", sig.String()))
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		return fmt.Errorf("ошибка при остановке сервера: %w", err)
	}
	util.Logger.Info("сервер успешно остановлен")
	return nil
}
