package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/chosundeveloper/rollbook/internal/auth"
	"github.com/chosundeveloper/rollbook/internal/config"
	"github.com/chosundeveloper/rollbook/internal/handler"
	"github.com/chosundeveloper/rollbook/internal/handler/server"
	"github.com/chosundeveloper/rollbook/internal/logger"
	"github.com/chosundeveloper/rollbook/internal/repository/document"
	"github.com/chosundeveloper/rollbook/internal/service"
	"github.com/chosundeveloper/rollbook/internal/store"
	"github.com/chosundeveloper/rollbook/internal/store/file"
	"github.com/chosundeveloper/rollbook/internal/store/postgres"
)

func main() {
	cfg := config.Load()

	zapLog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zapLog.Sync()

	var backend store.Store
	switch cfg.StorageDriver {
	case "postgres":
		db, err := postgres.Open(cfg.Database.DSN())
		if err != nil {
			zapLog.Fatal("failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		pgStore := postgres.NewStore(db)
		if err := pgStore.EnsureSchema(context.Background()); err != nil {
			zapLog.Fatal("failed to ensure schema", zap.Error(err))
		}
		backend = pgStore
		zapLog.Info("using postgres storage")
	default:
		backend = file.NewStore(cfg.DataDir)
		zapLog.Info("using file storage", zap.String("dir", cfg.DataDir))
	}

	memberRepo := document.NewMemberRepository(backend)
	cellRepo := document.NewCellRepository(backend)
	sessionRepo := document.NewSessionRepository(backend)
	attendanceRepo := document.NewAttendanceRepository(backend)
	scheduleRepo := document.NewPrayerScheduleRepository(backend)
	checkRepo := document.NewPrayerCheckRepository(backend)
	accountRepo := document.NewAccountRepository(backend)
	reportRepo := document.NewReportRepository(backend)

	memberService := service.NewMemberService(memberRepo)
	cellService := service.NewCellService(cellRepo, memberRepo)
	attendanceService := service.NewAttendanceService(sessionRepo, attendanceRepo, memberRepo)
	prayerService := service.NewPrayerService(scheduleRepo, checkRepo, cellRepo)
	accountService := service.NewAccountService(accountRepo)
	reportService := service.NewReportService(reportRepo)

	authority := auth.NewAuthority(cfg.SessionSecret, cfg.SessionMaxAge)

	h := handler.NewHandler(
		memberService,
		cellService,
		attendanceService,
		prayerService,
		accountService,
		reportService,
		authority,
		zapLog,
	)
	srv := server.NewServer(h, cfg.Addr, zapLog)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLog.Fatal("server forced to shutdown", zap.Error(err))
	}
}
