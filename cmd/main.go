package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"larder/internal/allocator"
	"larder/internal/api"
	"larder/internal/config"
	"larder/internal/database"
	"larder/internal/insights"
	"larder/internal/monitoring"
)

var (
	port        = flag.Int("port", 8080, "API server port")
	metricsPort = flag.Int("metrics-port", 0, "Metrics server port (overrides config)")
	configFile  = flag.String("config", "configs/config.yaml", "Path to configuration file")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize LLM. Running without one is fine: the advisor and the
	// insights service both fall back to their local computations.
	model := initializeLLM(cfg)

	// Initialize database
	if err := database.InitDB(cfg.DatabaseDialect, cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	// Initialize services
	monitor := monitoring.NewMonitor()
	advisor := allocator.NewAdvisor(allocator.NewLLMClient(model), monitor)
	insightSvc := insights.NewService(model)

	// Initialize API server
	backOffice := api.NewBackOffice(database.GetDB(), advisor, insightSvc, monitor)
	backOffice.DefaultTargetFoodCostPct = cfg.TargetFoodCostPct
	backOffice.ReportWindowDays = cfg.ReportWindowDays

	// Start metrics server
	if cfg.MetricsConfig.Enabled {
		mport := cfg.MetricsConfig.Port
		if *metricsPort != 0 {
			mport = *metricsPort
		}
		go startMetricsServer(mport, cfg.MetricsConfig.Path)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: backOffice.Router,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down servers...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("API server shutdown error: %v", err)
		}
	}()

	log.Printf("Starting API server on port %d", *port)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("API server error: %v", err)
	}
}

func initializeLLM(cfg *config.Config) llms.LLM {
	if cfg.OpenAIKey == "" {
		log.Println("No OpenAI key configured; running with the local allocator only")
		return nil
	}

	llm, err := openai.New(
		openai.WithModel(cfg.OpenAIModel),
		openai.WithToken(cfg.OpenAIKey),
	)
	if err != nil {
		log.Printf("Failed to initialize OpenAI client, running with the local allocator only: %v", err)
		return nil
	}
	return llm
}

func startMetricsServer(port int, path string) {
	if path == "" {
		path = "/metrics"
	}

	metricsRouter := gin.Default()
	metricsRouter.GET(path, gin.WrapH(promhttp.Handler()))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	log.Printf("Starting metrics server on port %d", port)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Printf("Metrics server error: %v", err)
	}
}
