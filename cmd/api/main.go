package main

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	httpadp "workforce-backend/internal/adapter/http"
	"workforce-backend/internal/adapter/middleware"
	"workforce-backend/internal/adapter/repository/mysql"
	"workforce-backend/internal/config"
	"workforce-backend/internal/domain/balance"
	"workforce-backend/internal/domain/leave"
	"workforce-backend/internal/domain/schedule"
	"workforce-backend/internal/domain/staff"
	"workforce-backend/internal/domain/swap"
	"workforce-backend/internal/infrastructure/cache"
	"workforce-backend/internal/infrastructure/db"
	ucLeave "workforce-backend/internal/usecase/leave"
	ucLedger "workforce-backend/internal/usecase/ledger"
	ucSchedule "workforce-backend/internal/usecase/schedule"
	ucSwap "workforce-backend/internal/usecase/swap"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("bad configuration")
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.WithError(err).Fatal("mysql connect failed")
	}
	if err := gdb.AutoMigrate(
		&staff.Employee{},
		&balance.Record{},
		&leave.Request{},
		&swap.Swap{},
		&schedule.Entry{},
		&schedule.Pattern{},
	); err != nil {
		log.WithError(err).Fatal("migration failed")
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.WithError(err).Fatal("redis connect failed")
	}

	staffRepo := mysql.NewStaffRepository(gdb)
	balanceRepo := mysql.NewBalanceRepository(gdb)
	leaveRepo := mysql.NewLeaveRepository(gdb)
	swapRepo := mysql.NewSwapRepository(gdb)
	entryRepo := mysql.NewScheduleEntryRepository(gdb)
	patternRepo := mysql.NewSchedulePatternRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	ledgerUC := ucLedger.NewUsecase(balanceRepo, staffRepo, tx, log)
	leaveUC := ucLeave.NewUsecase(leaveRepo, staffRepo, tx, log)
	swapUC := ucSwap.NewUsecase(swapRepo, staffRepo, tx, log)
	scheduleUC := ucSchedule.NewUsecase(entryRepo, patternRepo, staffRepo, tx, log)

	h := httpadp.NewHandler()
	balanceH := httpadp.NewBalanceHandler(ledgerUC)
	leaveH := httpadp.NewLeaveHandler(leaveUC)
	swapH := httpadp.NewSwapHandler(swapUC)
	scheduleH := httpadp.NewScheduleHandler(scheduleUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	api := e.Group("", middleware.Identity(),
		middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	api.GET("/balances", balanceH.List)
	api.GET("/balances/:employee_id", balanceH.Get)
	api.PUT("/balances/:employee_id", balanceH.Set)

	api.POST("/leave-requests", leaveH.Submit)
	api.GET("/leave-requests/pending", leaveH.ListPending)
	api.GET("/leave-requests/history", leaveH.ListHistory)
	api.POST("/leave-requests/:request_id/approve", leaveH.Approve)
	api.POST("/leave-requests/:request_id/deny", leaveH.Deny)

	api.POST("/swaps", swapH.Propose)
	api.GET("/swaps/available", swapH.ListAvailable)
	api.GET("/swaps/outgoing", swapH.ListOutgoing)
	api.GET("/swaps/accepted", swapH.ListAccepted)
	api.GET("/swaps/history", swapH.History)
	api.POST("/swaps/:swap_id/accept", swapH.Accept)
	api.POST("/swaps/:swap_id/approve", swapH.Approve)
	api.POST("/swaps/:swap_id/deny", swapH.Deny)
	api.DELETE("/swaps/:swap_id", swapH.Withdraw)

	api.GET("/schedules/week/:week_start", scheduleH.Week)
	api.GET("/schedules/:employee_id/expanded", scheduleH.Expanded)
	api.GET("/schedules/:employee_id/work-pattern", scheduleH.WorkPattern)
	api.PUT("/schedules/:employee_id/pattern", scheduleH.SetPattern)
	api.PUT("/schedules/:employee_id/slots", scheduleH.UpsertSlot)
	api.DELETE("/schedules/:employee_id/slots", scheduleH.ClearSlot)

	addr := ":" + cfg.AppPort
	log.WithField("addr", addr).Info("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
