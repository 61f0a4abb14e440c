package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Infraestrutura e utilitários
	"locadora/config"
	"locadora/internal/inventory"
	"locadora/internal/pkg/cache"
	"locadora/internal/pkg/database"
	"locadora/internal/pkg/filestore"
	"locadora/internal/pkg/logger"
	"locadora/internal/pkg/metrics"

	// Camadas para Injeção de Dependências
	"locadora/internal/api/agency"
	"locadora/internal/api/router"
	"locadora/internal/api/search"
	"locadora/internal/repository/agencyrepo"
	"locadora/internal/service/agencyservice"
	"locadora/internal/service/searchservice"
)

// @title Locadora API
// @version 1.0
// @description Cadastro de locadoras e pesquisa agregada de veículos disponíveis.
// @BasePath /
func main() {
	log.Println("⚡ Inicializando serviço Locadora...")

	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	// Sem .env seguimos com o ambiente do sistema (ex: Docker).
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Configuração inválida: %v", err)
	}

	appLog := logger.NewLogger(cfg.LogLevel)
	if zl, ok := appLog.(*logger.ZapLogger); ok {
		defer zl.Sync()
	}
	appLog.Info("Configurações carregadas.", map[string]interface{}{
		"env":            cfg.Environment,
		"storage_driver": cfg.StorageDriver,
		"rate_limit":     cfg.RateLimitEnabled(),
	})

	// 1. Repositório (arquivo JSON ou PostgreSQL)
	var (
		agencyRepo agencyservice.AgencyRepository
		db         *sql.DB
	)
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.DBTimeout)
		db, err = database.NewPostgresDB(ctx, cfg.DatabaseURL, database.DefaultPoolConfig())
		cancel()
		if err != nil {
			appLog.Fatal("Falha ao conectar ao banco de dados.", err)
		}
		defer db.Close()
		agencyRepo = agencyrepo.NewPostgresRepository(db, cfg.DBTimeout, appLog)
		appLog.Info("Conexão PostgreSQL estabelecida.", nil)
	default:
		store := filestore.NewStore(cfg.DataFile, appLog)
		agencyRepo = agencyrepo.NewFileRepository(store, appLog)
		appLog.Info("Armazenamento em arquivo JSON.", map[string]interface{}{"path": cfg.DataFile})
	}

	// 2. Cache (Redis), apenas para rate limiting
	var cacheClient cache.Client
	if cfg.RateLimitEnabled() {
		redisClient, err := cache.NewRedisClient(cfg.RedisAddr)
		if err != nil {
			appLog.Fatal("Falha ao conectar ao Redis.", err)
		}
		defer redisClient.Close()
		cacheClient = redisClient
		appLog.Info("Conexão Redis estabelecida.", map[string]interface{}{"addr": cfg.RedisAddr})
	}

	// 3. Métricas
	m, err := metrics.New()
	if err != nil {
		appLog.Fatal("Falha ao registrar métricas.", err)
	}

	// 4. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler
	agencySvc := agencyservice.NewService(agencyRepo, appLog)
	agencyHandler := agency.NewHandler(agencySvc, appLog)
	appLog.Debug("Camadas de Locadora inicializadas.", nil)

	faults := inventory.NewRandomFaults(cfg.MockFailureRate, cfg.MockSeed)
	source := inventory.NewMockSource(agencyRepo, cfg.MockDelay, faults, appLog)
	searchSvc := searchservice.NewService(agencyRepo, source, m, appLog)
	searchHandler := search.NewHandler(searchSvc, appLog)
	appLog.Debug("Camadas de Pesquisa inicializadas.", map[string]interface{}{
		"mock_delay_ms":     cfg.MockDelay.Milliseconds(),
		"mock_failure_rate": faults.Rate(),
	})

	// 5. Roteador e Servidor
	r := router.NewRouter(agencyHandler, searchHandler, m, cacheClient, router.Options{
		AllowedOrigins:  cfg.CORSAllowedOrigins,
		RateLimit:       cfg.RateLimitMaxRequests,
		RateLimitPeriod: cfg.RateLimitPeriod,
	}, appLog)

	server := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     r,
		ReadTimeout: 10 * time.Second,
		// A pesquisa é sequencial: a latência cresce com o número de locadoras ativas.
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 6. Execução e Graceful Shutdown
	go func() {
		appLog.Info("Servidor Locadora ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLog.Error("Desligamento do servidor forçado.", err)
	}

	appLog.Info("Servidor encerrado com sucesso.", nil)
}
