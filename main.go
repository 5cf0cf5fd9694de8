// @title           GFA Analyser API
// @version         1.0
// @description     Room classification and GFA/NOFA area aggregation per PNAP APP-2 and APP-151.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /

// @schemes http https
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	_ "gfabackend/docs"
	"gfabackend/handlers"
	"gfabackend/repository"
	"gfabackend/services"
	"gfabackend/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var purgeRunning int32

func CORSConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{
		"http://localhost:9000",
		"http://localhost:8080",
		"http://localhost:3000",
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{
		"Content-Type", "Content-Length", "Accept-Encoding",
		"Accept", "Origin", "X-Requested-With", "Authorization", "User-Agent",
		"Cache-Control", "Referer",
		"Access-Control-Request-Method", "Access-Control-Request-Headers",
	}
	corsConfig.AllowMethods = []string{
		"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH",
	}
	corsConfig.ExposeHeaders = []string{
		"Content-Length", "Content-Type", "Content-Disposition",
	}
	corsConfig.MaxAge = 12 * time.Hour
	return corsConfig
}

func capRateFromEnv(logger *zap.Logger) float64 {
	raw := os.Getenv("CAP_RATE")
	if raw == "" {
		return services.DefaultCapRate
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil || rate <= 0 || rate >= 1 {
		logger.Warn("invalid CAP_RATE, using default",
			zap.String("value", raw),
			zap.Float64("default", services.DefaultCapRate))
		return services.DefaultCapRate
	}
	return rate
}

func reportTTLFromEnv(logger *zap.Logger) time.Duration {
	raw := os.Getenv("REPORT_TTL")
	if raw == "" {
		return time.Hour
	}
	ttl, err := time.ParseDuration(raw)
	if err != nil || ttl <= 0 {
		logger.Warn("invalid REPORT_TTL, using default",
			zap.String("value", raw),
			zap.Duration("default", time.Hour))
		return time.Hour
	}
	return ttl
}

func maxFileBytesFromEnv(logger *zap.Logger) int64 {
	raw := os.Getenv("MAX_FILE_MB")
	if raw == "" {
		return 8 << 20
	}
	mb, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || mb <= 0 {
		logger.Warn("invalid MAX_FILE_MB, using default",
			zap.String("value", raw),
			zap.Int64("default_mb", 8))
		return 8 << 20
	}
	return mb << 20
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	table, err := repository.LoadRuleTable(logger)
	if err != nil {
		logger.Fatal("failed to load rule table", zap.Error(err))
	}
	engine := services.NewEngine(table, capRateFromEnv(logger))

	store := storage.InitStore(reportTTLFromEnv(logger))

	// Purge expired report artifacts hourly
	c := cron.New()
	_, err = c.AddFunc("@hourly", func() {
		if !atomic.CompareAndSwapInt32(&purgeRunning, 0, 1) {
			logger.Warn("previous purge still running, skipping this run")
			return
		}
		defer atomic.StoreInt32(&purgeRunning, 0)

		removed := store.PurgeExpired()
		if removed > 0 {
			logger.Info("purged expired reports",
				zap.Int("removed", removed),
				zap.Int("remaining", store.Len()))
		}
	})
	if err != nil {
		logger.Fatal("failed to schedule report purge", zap.Error(err))
	}
	c.Start()

	r := gin.Default()
	r.MaxMultipartMemory = maxFileBytesFromEnv(logger)

	r.Use(cors.New(CORSConfig()))

	// ==================== 1. HEALTH & RULES ====================
	r.GET("/api/health", handlers.HealthCheck(engine))
	r.GET("/api/rules", handlers.GetRules(engine))
	r.GET("/api/rules/:category", handlers.GetRuleByCategory(engine))

	// ==================== 2. CLASSIFICATION & ANALYSIS ====================
	r.POST("/api/classify", handlers.ClassifyRooms(engine))
	r.POST("/api/analyse", handlers.AnalyseFloor(engine))
	r.POST("/api/analyse/batch", handlers.AnalyseBuilding(engine))

	// ==================== 3. IMPORT ====================
	r.GET("/api/rooms_template", handlers.DownloadRoomsTemplate())
	r.POST("/api/import_rooms_csv", handlers.ImportRoomsCSV(engine))

	// ==================== 4. DOWNLOADS ====================
	r.GET("/api/download/:download_id", handlers.DownloadExcel())
	r.GET("/api/report_pdf/:download_id", handlers.DownloadPDF())

	// ==================== 5. SWAGGER ====================
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "9000"
	}
	portInt, err := strconv.Atoi(port)
	if err != nil {
		logger.Fatal("invalid PORT environment variable, must be a number", zap.String("port", port))
	}
	if portInt < 0 || portInt > 65535 {
		logger.Fatal("invalid PORT, must be between 0 and 65535", zap.Int("port", portInt))
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c.Stop()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exiting")
}
