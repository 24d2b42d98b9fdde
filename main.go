package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	auth "github.com/Universe-Codex/PhyArch/internal/auth"
	batch "github.com/Universe-Codex/PhyArch/internal/calc/batch"
	dispatch "github.com/Universe-Codex/PhyArch/internal/calc/dispatch"
	displacement "github.com/Universe-Codex/PhyArch/internal/calc/displacement"
	importer "github.com/Universe-Codex/PhyArch/internal/calc/importer"
	report "github.com/Universe-Codex/PhyArch/internal/calc/report"
	sizing "github.com/Universe-Codex/PhyArch/internal/calc/sizing"
	stress "github.com/Universe-Codex/PhyArch/internal/calc/stress"
	history "github.com/Universe-Codex/PhyArch/internal/history"
	repo "github.com/Universe-Codex/PhyArch/internal/repo"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
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

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresDB(db)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using process environment")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	// The calculation surface itself is open: the contract for a loosely
	// typed host is resolve-by-name and sentinel-on-invalid, nothing more.
	dispatchH := &dispatch.Handler{}
	api.HandleFunc("/engine/exports", dispatchH.List).Methods("GET")
	api.HandleFunc("/engine/call", dispatchH.Call).Methods("POST")

	stressH := &stress.Handler{}
	displacementH := &displacement.Handler{}
	sizingH := &sizing.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	reportH := &report.Handler{}

	api.HandleFunc("/tools/stress/calc", stressH.Calc).Methods("POST")
	api.HandleFunc("/tools/displacement/calc", displacementH.Calc).Methods("POST")
	api.HandleFunc("/tools/sizing/calc", sizingH.Calc).Methods("POST")
	api.HandleFunc("/tools/batch/stress", batchH.Stress).Methods("POST")
	api.HandleFunc("/tools/batch/displacement", batchH.Displacement).Methods("POST")
	api.HandleFunc("/tools/import/members", importerH.Members).Methods("POST")
	api.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	historyH := &history.Handler{Repo: userRepo}
	secureApi.HandleFunc("/history", historyH.Save).Methods("POST")
	secureApi.HandleFunc("/history", historyH.List).Methods("GET")
	secureApi.HandleFunc("/history/{id:[0-9]+}", historyH.Delete).Methods("DELETE")

	// Host page and the wasm build of the engine.
	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":443"
	}
	log.Println("Starting server on", addr)
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
