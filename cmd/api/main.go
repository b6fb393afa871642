package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "loanbook/internal/adapter/http"
	"loanbook/internal/adapter/middleware"
	"loanbook/internal/adapter/repository/mysql"
	"loanbook/internal/config"
	custdomain "loanbook/internal/domain/customer"
	loandomain "loanbook/internal/domain/loan"
	paydomain "loanbook/internal/domain/payment"
	"loanbook/internal/infrastructure/cache"
	"loanbook/internal/infrastructure/db"
	customeruc "loanbook/internal/usecase/customer"
	loanuc "loanbook/internal/usecase/loan"
	paymentuc "loanbook/internal/usecase/payment"
	systemuc "loanbook/internal/usecase/system"
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
	if err := gdb.AutoMigrate(&custdomain.Customer{}, &loandomain.Loan{}, &paydomain.Payment{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	customers := mysql.NewCustomerRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	payments := mysql.NewPaymentRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	customerUC := customeruc.NewUsecase(customers)
	loanUC := loanuc.NewUsecase(loans, customers, payments)
	paymentUC := paymentuc.NewUsecase(tx)
	systemUC := systemuc.NewUsecase(customers, loans, payments)

	h := httpadp.NewHandler(systemUC)
	customerH := httpadp.NewCustomerHandler(customerUC, loanUC)
	loanH := httpadp.NewLoanHandler(loanUC)
	paymentH := httpadp.NewPaymentHandler(paymentUC)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())
	e.Validator = httpadp.NewValidator()

	e.GET("/health", h.Health)
	e.GET("/status", h.Status)

	e.POST("/customers", customerH.CreateCustomer)
	e.GET("/customers/:customer_id/overview", customerH.Overview)

	e.POST("/loans", loanH.CreateLoan)
	e.GET("/loans/:loan_id/ledger", loanH.GetLedger)

	// Payment submission is the one mutation clients retry, so it alone sits
	// behind the idempotency layer. Redis being down degrades to no dedup
	// rather than taking the service out.
	payGroup := e.Group("/loans/:loan_id/payments")
	if rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB); err != nil {
		log.Printf("redis unavailable, idempotency disabled: %v", err)
	} else {
		payGroup.Use(middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	}
	payGroup.POST("", paymentH.RecordPayment)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
