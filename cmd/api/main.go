package main

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/meenams/ai-schema-designer-meena-muthu/internal/config"
	"github.com/meenams/ai-schema-designer-meena-muthu/internal/handler"
	"github.com/meenams/ai-schema-designer-meena-muthu/internal/logger"
	"github.com/meenams/ai-schema-designer-meena-muthu/internal/plan"
	"github.com/meenams/ai-schema-designer-meena-muthu/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	log, err := logger.New(cfg.ServiceEnvironment)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting API service",
		zap.String("environment", cfg.ServiceEnvironment),
		zap.String("port", cfg.ServiceAPIPort))

	// Initialize plan service
	generator := plan.NewGenerator()
	planService := service.NewPlanService(generator, cfg.SampleCountDefault, cfg.SampleCountMax, log)

	// Initialize handler
	h := handler.NewHandler(planService, log)

	addr := fmt.Sprintf(":%s", cfg.ServiceAPIPort)
	log.Info("API server starting", zap.String("address", addr))

	if err := http.ListenAndServe(addr, h); err != nil {
		log.Fatal("Failed to start API server", zap.Error(err))
	}
}
