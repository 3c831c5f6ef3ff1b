package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"Plenum/internal/audit"
	"Plenum/internal/auth"
	"Plenum/internal/calc/batch"
	"Plenum/internal/calc/corrosion"
	"Plenum/internal/calc/fullcalc"
	"Plenum/internal/calc/geometry"
	"Plenum/internal/calc/importer"
	"Plenum/internal/calc/report"
	"Plenum/internal/calc/vessel"
	"Plenum/internal/registry"
	"Plenum/internal/repo"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func engineOptions() vessel.Options {
	switch os.Getenv("HORIZONTAL_HEAD_RULE") {
	case "full-bore":
		return vessel.Options{HorizontalHead: vessel.HorizontalHeadFullBore}
	default:
		return vessel.Options{HorizontalHead: vessel.HorizontalHeadZero}
	}
}

func HandleList(mux *mux.Router, db *sql.DB, log *zap.Logger) {
	pg := repo.NewPostgresDB(db)

	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: pg, Log: log}
	opts := engineOptions()
	recorder := audit.NewAsyncRecorder(audit.NewPostgresRecorder(db), log)

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	geometryH := &geometry.Handler{Opts: opts}
	corrosionH := &corrosion.Handler{Opts: opts}
	fullH := &fullcalc.Handler{Opts: opts, Recorder: recorder}
	batchH := &batch.Handler{Opts: opts}
	importH := &importer.Handler{Opts: opts}
	reportH := &report.Handler{Opts: opts}
	registryH := &registry.Handler{Repo: pg, Opts: opts, Recorder: recorder, Log: log}

	secureApi.HandleFunc("/tools/vessel/calc", fullH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/thickness/calc", geometryH.Thickness).Methods("POST")
	secureApi.HandleFunc("/tools/mawp/calc", geometryH.MAWP).Methods("POST")
	secureApi.HandleFunc("/tools/corrosion/calc", corrosionH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/vessel/batch", batchH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/vessel/import", importH.Components).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.PDF).Methods("POST")
	secureApi.HandleFunc("/tools/report/xlsx", reportH.XLSX).Methods("POST")

	secureApi.HandleFunc("/vessels/components", registryH.Save).Methods("POST", "PUT")
	secureApi.HandleFunc("/vessels/components", registryH.List).Methods("GET")
	secureApi.HandleFunc("/vessels/components/{id}", registryH.Get).Methods("GET")
	secureApi.HandleFunc("/vessels/components/{id}/calc", registryH.Calc).Methods("POST")
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file loaded", zap.Error(err))
	}

	db := auth.InitDB(logger)
	defer db.Close()

	router := mux.NewRouter()
	HandleList(router, db, logger)
	handler := CORS(router)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	logger.Info("starting server", zap.String("addr", addr))

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")

	wg.Wait()
}
