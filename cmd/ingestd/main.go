package main

import (
	"nmea-svr/internal/assemblerstore"
	"nmea-svr/internal/config"
	"nmea-svr/internal/dispatcher"
	"nmea-svr/internal/grpcclient"
	"nmea-svr/internal/link"
	"nmea-svr/internal/observability"
	"nmea-svr/internal/server"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger()
	logger.Info("Starting nmea-svr ingestion...", "port", cfg.TCPPort)

	// Inicializar Redis antes del server
	if err := assemblerstore.InitRedis(cfg.RedisAddr, 0); err != nil {
		logger.Error("Redis init failed", "error", err)
		return
	}
	link.Init(cfg.ProxyAddr, logger)

	fwd, err := grpcclient.NewGRPCClient(cfg.GRPCServer)
	if err != nil {
		logger.Error("gRPC forwarder init failed", "error", err)
		return
	}
	defer fwd.Close()

	go observability.StartMetricsServer(cfg.MetricsPort)

	d := dispatcher.New(fwd, logger)

	// Inicia el servidor TCP directamente
	if err := server.Start(":"+cfg.TCPPort, d.HandleConnection); err != nil {
		logger.Error("TCP server failed", "error", err)
	}
}
