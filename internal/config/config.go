package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/seller-metrics-api/internal/domain"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Columns           Columns           `mapstructure:",squash"`
	Efficiency        Efficiency        `mapstructure:",squash"`
	Datasets          Datasets          `mapstructure:",squash"`
	DatasetReloadSync DatasetReloadSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host            string   `mapstructure:"host"`
	Port            string   `mapstructure:"port" validate:"required"`
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	MaxUploadSizeMB int64    `mapstructure:"max_upload_size_mb" validate:"gt=0"`
	// Limite de uploads por segundo; zero desativa
	UploadRateLimitRPS   float64 `mapstructure:"upload_rate_limit_rps" validate:"gte=0"`
	UploadRateLimitBurst int     `mapstructure:"upload_rate_limit_burst" validate:"gte=1"`
}

// Columns é o mapeamento explícito das colunas dos arquivos; não há adivinhação de nomes
type Columns struct {
	SellerID string `mapstructure:"seller_id_column" validate:"required,nefield=GMV,nefield=Clicks"`
	GMV      string `mapstructure:"gmv_column" validate:"required,nefield=Clicks"`
	Clicks   string `mapstructure:"clicks_column" validate:"required"`
}

// Efficiency contém os limites de GMV por clique usados na classificação
type Efficiency struct {
	LowThreshold  float64 `mapstructure:"low_efficiency_threshold" validate:"gt=0"`
	HighThreshold float64 `mapstructure:"high_efficiency_threshold" validate:"gtfield=LowThreshold"`
}

// Datasets aponta para os arquivos carregados na inicialização e pelo agendador
type Datasets struct {
	EarlierPath string `mapstructure:"earlier_dataset_path"`
	LaterPath   string `mapstructure:"later_dataset_path"`
}

type DatasetReloadSync struct {
	CronSchedule string `mapstructure:"dataset_reload_cron" validate:"required"`
	Enabled      bool   `mapstructure:"dataset_reload_enabled"`
}

func (c Columns) trimmed() Columns {
	return Columns{
		SellerID: strings.TrimSpace(c.SellerID),
		GMV:      strings.TrimSpace(c.GMV),
		Clicks:   strings.TrimSpace(c.Clicks),
	}
}

// Mapping converte a configuração no mapeamento usado pelo engine
func (c Columns) Mapping() domain.ColumnMapping {
	t := c.trimmed()
	return domain.ColumnMapping{
		SellerID: t.SellerID,
		GMV:      t.GMV,
		Clicks:   t.Clicks,
	}
}

// Thresholds converte os limites configurados em decimais
func (e Efficiency) Thresholds() domain.EfficiencyThresholds {
	return domain.EfficiencyThresholds{
		Low:  decimal.NewFromFloat(e.LowThreshold),
		High: decimal.NewFromFloat(e.HighThreshold),
	}
}

// Configured indica se os dois caminhos foram informados
func (d Datasets) Configured() bool {
	return d.EarlierPath != "" && d.LaterPath != ""
}

// MaxUploadSize retorna o limite de upload em bytes
func (s Server) MaxUploadSize() int64 {
	return s.MaxUploadSizeMB << 20
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", "8000")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("MAX_UPLOAD_SIZE_MB", 32)
	v.SetDefault("UPLOAD_RATE_LIMIT_RPS", 1)
	v.SetDefault("UPLOAD_RATE_LIMIT_BURST", 5)

	v.SetDefault("SELLER_ID_COLUMN", "Seller")
	v.SetDefault("GMV_COLUMN", "GMV")
	v.SetDefault("CLICKS_COLUMN", "Clicks")

	// Limites de política para GMV por clique
	v.SetDefault("LOW_EFFICIENCY_THRESHOLD", 7)
	v.SetDefault("HIGH_EFFICIENCY_THRESHOLD", 50)

	v.SetDefault("EARLIER_DATASET_PATH", "")
	v.SetDefault("LATER_DATASET_PATH", "")

	v.SetDefault("DATASET_RELOAD_CRON", "0 * * * *") // A cada hora
	v.SetDefault("DATASET_RELOAD_ENABLED", false)

	v.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, fmt.Errorf("config: erro ao decodificar configuração: %w", err)
	}

	// Os nomes de coluna são comparados já sem espaços, como o engine os usa
	config.Columns = config.Columns.trimmed()

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("config: configuração inválida: %w", err)
	}

	return config, nil
}

// loadEnvFile procura um arquivo .env no diretório atual e nos diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
