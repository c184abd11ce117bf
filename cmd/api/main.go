package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "streampay-backend/internal/adapter/http"
	"streampay-backend/internal/adapter/middleware"
	"streampay-backend/internal/adapter/repository/mysql"
	"streampay-backend/internal/config"
	employeeDomain "streampay-backend/internal/domain/employee"
	"streampay-backend/internal/domain/identity"
	loanDomain "streampay-backend/internal/domain/loan"
	profileDomain "streampay-backend/internal/domain/profile"
	streamDomain "streampay-backend/internal/domain/stream"
	"streampay-backend/internal/infrastructure/cache"
	"streampay-backend/internal/infrastructure/db"
	employeeUC "streampay-backend/internal/usecase/employee"
	loanUC "streampay-backend/internal/usecase/loan"
	profileUC "streampay-backend/internal/usecase/profile"
	streamUC "streampay-backend/internal/usecase/stream"
	"streampay-backend/pkg/clock"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(
		&streamDomain.Stream{},
		&loanDomain.Loan{},
		&loanDomain.Transaction{},
		&employeeDomain.Employee{},
		&profileDomain.WorkProfile{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	streamRepo := mysql.NewStreamRepository(gdb)
	loanRepo := mysql.NewLoanRepository(gdb)
	loanTxRepo := mysql.NewLoanTransactionRepository(gdb)
	employeeRepo := mysql.NewEmployeeRepository(gdb)
	profileRepo := mysql.NewProfileRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	clk := clock.System()
	admin := identity.AccountID(cfg.AdminAccountID)

	streams := streamUC.NewUsecase(streamRepo, uow, clk)
	loans := loanUC.NewUsecase(loanRepo, loanTxRepo, streamRepo, uow, clk, admin)
	employees := employeeUC.NewUsecase(employeeRepo, clk)
	profiles := profileUC.NewUsecase(profileRepo)

	h := httpadp.NewHandler()
	sh := httpadp.NewStreamHandler(streams)
	lh := httpadp.NewLoanHandler(loans)
	eh := httpadp.NewEmployeeHandler(employees)
	ph := httpadp.NewProfileHandler(profiles)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	// routes
	e.GET("/health", h.Health)

	e.POST("/streams", sh.CreateStream)
	e.GET("/streams", sh.ListStreams)
	e.GET("/streams/:stream_id", sh.GetStream)
	e.GET("/streams/:stream_id/available", sh.GetAvailable)
	e.POST("/streams/:stream_id/withdraw", sh.Withdraw)
	e.POST("/streams/:stream_id/pause", sh.Pause)
	e.POST("/streams/:stream_id/resume", sh.Resume)
	e.POST("/streams/:stream_id/end", sh.End)
	e.GET("/employees/:account_id/streams", sh.ListEmployeeStreams)
	e.GET("/employers/:account_id/streams", sh.ListEmployerStreams)

	e.POST("/loans", lh.RequestLoan)
	e.GET("/loans", lh.ListLoans)
	e.GET("/loans/summary", lh.Summary)
	e.GET("/loans/:loan_id", lh.GetLoan)
	e.POST("/loans/:loan_id/approve", lh.Approve)
	e.POST("/loans/:loan_id/reject", lh.Reject)
	e.POST("/loans/:loan_id/repay", lh.Repay)
	e.POST("/loans/:loan_id/default", lh.MarkDefault)
	e.GET("/loans/:loan_id/transactions", lh.LoanTransactions)
	e.GET("/transactions", lh.Transactions)

	e.POST("/employees", eh.Register)
	e.GET("/employees/:account_id", eh.Get)
	e.PUT("/employees/:account_id", eh.Update)
	e.PUT("/employees/:account_id/position", eh.UpdatePosition)
	e.POST("/employees/:account_id/deactivate", eh.Deactivate)
	e.POST("/employees/:account_id/reactivate", eh.Reactivate)
	e.GET("/employers/:account_id/employees", eh.ListByEmployer)

	e.POST("/profiles", ph.Update)
	e.GET("/profiles/:account_id", ph.Get)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
