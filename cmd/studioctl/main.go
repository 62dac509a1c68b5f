package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-StudioSchedule/internal/config"
	bookingRepo "github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/booking"
	classTypeRepo "github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/classtype"
	fixedSlotRepo "github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/fixedslot"
	rescheduleRepo "github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/reschedule"
	sessionRepo "github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/session"
	studentRepo "github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/student"
	"github.com/m04kA/SMC-StudioSchedule/internal/integrations/holidays"
	"github.com/m04kA/SMC-StudioSchedule/internal/service/snapshot"
	"github.com/m04kA/SMC-StudioSchedule/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioSchedule/pkg/logger"
	"github.com/m04kA/SMC-StudioSchedule/pkg/txmanager"
)

// App зависимости CLI
type App struct {
	cfg   *config.Config
	log   *logger.Logger
	rawDB *sql.DB
	db    *dbmetrics.DB
	tx    *txmanager.TransactionManager
	redis *redis.Client
	ctx   context.Context
}

// studioClock текущее время в часовом поясе студии
type studioClock struct {
	loc *time.Location
}

func (c studioClock) Now() time.Time {
	return time.Now().In(c.loc)
}

var (
	configPath string
	verbose    bool
	app        *App
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "studioctl",
		Short: "Studio schedule operator CLI",
		Long:  `Утилита персонала студии: миграции, импорт учеников и просмотр недельной сетки.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			closeApp()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "Путь к файлу конфигурации")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Подробные логи")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(importStudentsCmd())
	rootCmd.AddCommand(gridCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp загружает конфиг, поднимает логгер и подключение к базе
func initApp() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// В CLI логи не должны мешать выводу команд
	level := "warn"
	if verbose {
		level = cfg.Logs.Level
	}
	log, err := logger.New(cfg.Logs.File, level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	wrapped := dbmetrics.Wrap(db, nil, cfg.Metrics.ServiceName)
	app = &App{
		cfg:   cfg,
		log:   log,
		rawDB: db,
		db:    wrapped,
		tx:    txmanager.NewTransactionManager(wrapped),
		ctx:   ctx,
	}
	return nil
}

func closeApp() {
	if app == nil {
		return
	}
	if app.redis != nil {
		app.redis.Close()
	}
	app.rawDB.Close()
	app.log.Close()
}

// holidayProvider собственные праздники плюс внешний календарь (с redis кешем, если настроен)
func (a *App) holidayProvider() holidays.Provider {
	providers := []holidays.Provider{holidays.NewStatic(a.cfg.Holidays.CustomHolidays())}
	if a.cfg.Holidays.URL != "" {
		var calendar holidays.Provider = holidays.NewClient(a.cfg.Holidays.URL, a.cfg.Holidays.TimeoutDuration(), a.log)
		if a.cfg.Redis.Addr != "" {
			a.redis = redis.NewClient(&redis.Options{
				Addr:     a.cfg.Redis.Addr,
				Password: a.cfg.Redis.Password,
				DB:       a.cfg.Redis.DB,
			})
			calendar = holidays.NewCache(calendar, a.redis, a.cfg.Holidays.CacheTTLDuration(), a.log)
		}
		providers = append(providers, calendar)
	}
	return holidays.NewComposite(a.log, providers...)
}

// loader загрузчик снимков поверх postgres
func (a *App) loader() *snapshot.Loader {
	return snapshot.NewLoader(snapshot.Repositories{
		ClassTypes:  classTypeRepo.NewRepository(a.db),
		FixedSlots:  fixedSlotRepo.NewRepository(a.db),
		Students:    studentRepo.NewRepository(a.db),
		Reschedules: rescheduleRepo.NewRepository(a.db),
		Bookings:    bookingRepo.NewRepository(a.db),
		Sessions:    sessionRepo.NewRepository(a.db),
	}, a.holidayProvider(), a.cfg.Holidays.Policy(), a.log)
}
