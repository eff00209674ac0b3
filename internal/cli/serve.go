package cli

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Shimizu-Technology/medsum/internal/config"
	"github.com/Shimizu-Technology/medsum/internal/handlers"
	"github.com/Shimizu-Technology/medsum/internal/metrics"
	"github.com/Shimizu-Technology/medsum/internal/router"
	"github.com/Shimizu-Technology/medsum/internal/services/extract"
	"github.com/Shimizu-Technology/medsum/internal/services/pipeline"
	"github.com/Shimizu-Technology/medsum/internal/services/summary"
	"github.com/Shimizu-Technology/medsum/internal/session"
)

func newServeCmd(v *viper.Viper, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web tool (page + JSON API)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(v, version)
		},
	}

	flags := cmd.Flags()
	flags.String("port", "8080", "HTTP port")
	flags.String("gin-mode", "debug", `gin mode: "debug", "release" or "test"`)
	flags.String("cors-origin", "http://localhost:5173", "allowed CORS origin for a separate frontend")
	flags.Int("max-upload-mb", 20, "maximum upload size in MB")
	flags.Duration("session-idle-timeout", 2*time.Hour, "end sessions idle for this long")

	for key, name := range map[string]string{
		config.KeyPort:               "port",
		config.KeyGinMode:            "gin-mode",
		config.KeyCORSOrigin:         "cors-origin",
		config.KeyMaxUploadMB:        "max-upload-mb",
		config.KeySessionIdleTimeout: "session-idle-timeout",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
	return cmd
}

func runServe(v *viper.Viper, version string) error {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("🚀 Medical Report Summarizer %s starting...", version)

	// Step 1: Load Configuration
	cfg, err := config.Load(v)
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	log.Printf("📋 Config loaded: port=%s, gin_mode=%s, max_upload=%dMB", cfg.Port, cfg.GinMode, cfg.MaxUploadMB())

	gin.SetMode(cfg.GinMode)

	// Step 2: Create Services
	ctx := context.Background()
	client, err := summary.New(ctx, cfg.SummaryOptions())
	if err != nil {
		log.Fatalf("❌ Failed to create summary client: %v", err)
	}
	log.Printf("✅ Summaries via %s (%s)", client.Provider(), client.Model())
	if client.Provider() == summary.ProviderMock {
		log.Println("⚠️  Mock provider: summaries are canned text (set LLM_PROVIDER for real output)")
	}

	sessions := session.NewManager(cfg.SessionIdleTimeout)
	defer sessions.Stop()

	m := metrics.New(sessions.Count)
	p := pipeline.New(extract.New(), client, m)

	// Step 3: Setup HTTP Router
	h := handlers.NewHandler(cfg, p, sessions, client, version)
	r := router.Setup(h, m)

	// Step 4: Start the HTTP Server
	// Generation is synchronous, so writes must outlast the endpoint timeout.
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.Timeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🌐 Server listening on http://localhost:%s", cfg.Port)
		log.Printf("📖 API docs: http://localhost:%s/api/docs", cfg.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	// Step 5: Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Printf("🛑 Received signal %v, shutting down gracefully...", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️  Server forced to shutdown: %v", err)
	}

	log.Println("👋 Server stopped. Goodbye!")
	return nil
}
