package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"

	"finflow/internal/broadcast"
	broadcastmetrics "finflow/internal/broadcast/metrics"
	"finflow/internal/document"
	"finflow/internal/payment"
	paymentmetrics "finflow/internal/payment/metrics"
	"finflow/internal/platform/config"
	"finflow/internal/platform/httpserver"
	"finflow/internal/platform/logger"
	httptransport "finflow/internal/transport/http"
	"finflow/internal/transport/ws"
	"finflow/internal/verification"
	verificationmetrics "finflow/internal/verification/metrics"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	log := logger.New()

	cfg, err := config.Load(".")
	if err != nil {
		log.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	hub := broadcast.NewHub(log, broadcastmetrics.New(), cfg.BroadcastQueueSize)
	defer hub.Close()

	verifier := verification.NewService(log, verificationmetrics.New(),
		verification.WithCheckTimeout(cfg.CheckTimeout),
	)

	payments, err := payment.NewService(payment.NewStore(), log, paymentmetrics.New())
	if err != nil {
		log.Error("failed to build payment service", "error", err)
		os.Exit(1)
	}

	processor := document.NewProcessor(log)

	handler := httptransport.NewHandler(verifier, payments, processor, hub, log)
	wsHandler := ws.New(hub, log, cfg.WSAllowedOrigin)
	router := httptransport.NewRouter(handler, wsHandler.Register)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting finflow", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
