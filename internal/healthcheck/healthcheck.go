package healthcheck

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/MyelinBots/catmanager-go/config"
)

// StartHealthcheck serves handler on the app port until ctx is done. A nil
// handler serves only the health check.
func StartHealthcheck(ctx context.Context, cfg config.AppConfig, handler http.Handler) *http.Server {
	if handler == nil {
		handler = HealthCheckHandler()
	}
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("healthcheck server error: %v", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("healthcheck shutdown: %v", err)
		}
	}()

	return srv
}

func HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
