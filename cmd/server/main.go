/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the Revenue Engine server: the HTTP backend that
  turns purchase orders into status-filtered revenue totals.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Create API handler and rate limiter
  3. Configure HTTP router
  4. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port   HTTP server port (default: 8080)
  -rate   Sustained requests/second allowed per client (default: 20)
  -burst  Burst size per client (default: 40)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Exit

EXAMPLES:
  # Run on the default port
  ./server

  # Run on a different port with a tighter limit
  ./server -port=3000 -rate=5 -burst=10

ENVIRONMENT:
  No environment variables. All config via flags; the service holds no
  state, so there is nothing else to configure.

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
*/
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

	"github.com/fonoma/revenue-engine/api"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	rps := flag.Float64("rate", 20, "sustained requests/second per client")
	burst := flag.Int("burst", 40, "burst size per client")
	flag.Parse()

	// Initialize handler and router
	handler := api.NewHandler()
	limiter := api.NewRateLimiter(*rps, *burst)
	router := api.NewRouter(handler, limiter)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on http://localhost:%d", *port)
		log.Printf("📊 API available at http://localhost:%d/fonoma/backend", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
