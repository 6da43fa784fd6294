package main

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"autopr/internal/handler"
	"autopr/internal/render"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := render.Config{
		BrowserBin: os.Getenv("BROWSER_BIN"),
		NoSandbox:  os.Getenv("ROD_NO_SANDBOX") != "",
	}
	if s := os.Getenv("RENDER_TIMEOUT_SECONDS"); s != "" {
		if secs, err := strconv.Atoi(s); err == nil {
			cfg.LoadTimeout = time.Duration(secs) * time.Second
		}
	}

	engine, err := render.NewEngine(cfg)
	if err != nil {
		log.Fatalf("error starting render engine: %v", err)
	}
	defer engine.Close()

	reportHandler := handler.NewReportHandler(engine)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.POST("/reports/pdf", reportHandler.GeneratePDF)
	r.GET("/reports/sample", reportHandler.SamplePDF)
	r.GET("/health", reportHandler.GetHealth)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	err = r.Run(addr)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
