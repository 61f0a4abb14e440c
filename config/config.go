package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Drivers de armazenamento suportados.
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

// Config armazena todas as configurações do serviço de Locadoras.
type Config struct {
	// Geral
	Port            string
	Environment     string
	LogLevel        string
	ShutdownTimeout time.Duration

	// Armazenamento
	StorageDriver string // "file" (padrão) ou "postgres"
	DataFile      string // Caminho do documento JSON de locadoras
	DatabaseURL   string
	DBTimeout     time.Duration

	// Rate Limiting (Redis); desligado quando RedisAddr é vazio
	RedisAddr            string
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration

	// CORS
	CORSAllowedOrigins []string

	// Inventário simulado
	MockDelay       time.Duration
	MockFailureRate float64
	MockSeed        int64
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
// O .env, quando existir, já deve ter sido carregado pelo main via godotenv.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		// 1. Geral
		Port:            getEnv("PORT", "3001"),
		Environment:     getEnv("ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT_SEC", 15) * time.Second,

		// 2. Armazenamento
		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", StorageFile)),
		DataFile:      getEnv("DATA_FILE", "db/locadoras.json"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		DBTimeout:     getDurationEnv("DB_TIMEOUT_SEC", 5) * time.Second,

		// 3. Rate Limiting
		RedisAddr:            getEnv("REDIS_ADDR", ""),
		RateLimitMaxRequests: getIntEnv("RATE_LIMIT_MAX_REQUESTS", 60),
		RateLimitPeriod:      getDurationEnv("RATE_LIMIT_PERIOD_MIN", 1) * time.Minute,

		// 4. CORS (apenas origens locais de desenvolvimento por padrão)
		CORSAllowedOrigins: getListEnv("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
		}),

		// 5. Inventário simulado
		MockDelay:       getDurationEnv("MOCK_DELAY_MS", 300) * time.Millisecond,
		MockFailureRate: getFloatEnv("MOCK_FAILURE_RATE", 0.1),
		MockSeed:        int64(getIntEnv("MOCK_SEED", 0)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate verifica combinações que impedem a inicialização.
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageFile:
		if strings.TrimSpace(c.DataFile) == "" {
			return fmt.Errorf("❌ Erro de Configuração: DATA_FILE não pode ser vazio com STORAGE_DRIVER=%s", StorageFile)
		}
	case StoragePostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("❌ Erro de Configuração: DATABASE_URL deve ser definida com STORAGE_DRIVER=%s", StoragePostgres)
		}
	default:
		return fmt.Errorf("❌ Erro de Configuração: STORAGE_DRIVER inválido %q (use %q ou %q)", c.StorageDriver, StorageFile, StoragePostgres)
	}

	if c.MockFailureRate < 0 || c.MockFailureRate > 1 {
		return fmt.Errorf("❌ Erro de Configuração: MOCK_FAILURE_RATE deve estar entre 0 e 1 (recebido %v)", c.MockFailureRate)
	}
	if c.RateLimitMaxRequests <= 0 {
		return fmt.Errorf("❌ Erro de Configuração: RATE_LIMIT_MAX_REQUESTS deve ser positivo")
	}
	return nil
}

// RateLimitEnabled informa se há Redis configurado para o rate limiting.
func (c *Config) RateLimitEnabled() bool {
	return c.RedisAddr != ""
}

// Funções Helpers (Auxiliares)

// getEnv lê a variável de ambiente ou retorna um valor padrão.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getDurationEnv lê uma variável de ambiente numérica e retorna-a como time.Duration (sem unidade).
func getDurationEnv(key string, defaultValue int) time.Duration {
	return time.Duration(getIntEnv(key, defaultValue))
}

// getIntEnv lê uma variável de ambiente numérica e retorna-a como int.
func getIntEnv(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// getFloatEnv lê uma variável de ambiente decimal.
func getFloatEnv(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número válido. Usando padrão (%v).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// getListEnv lê uma lista separada por vírgulas, ignorando itens vazios.
func getListEnv(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if strings.TrimSpace(valueStr) == "" {
		return defaultValue
	}

	var out []string
	for _, item := range strings.Split(valueStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
