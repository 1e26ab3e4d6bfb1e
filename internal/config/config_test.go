package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper(t *testing.T, env map[string]string) *viper.Viper {
	t.Helper()
	for k, v := range env {
		t.Setenv(k, v)
	}

	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(newTestViper(t, nil))
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, int64(32<<20), cfg.Server.MaxUploadSize())
	assert.Equal(t, 1.0, cfg.Server.UploadRateLimitRPS)
	assert.Equal(t, 5, cfg.Server.UploadRateLimitBurst)

	mapping := cfg.Columns.Mapping()
	assert.Equal(t, "Seller", mapping.SellerID)
	assert.Equal(t, "GMV", mapping.GMV)
	assert.Equal(t, "Clicks", mapping.Clicks)

	thresholds := cfg.Efficiency.Thresholds()
	assert.Equal(t, "7", thresholds.Low.String())
	assert.Equal(t, "50", thresholds.High.String())

	assert.False(t, cfg.Datasets.Configured())
	assert.False(t, cfg.DatasetReloadSync.Enabled)
}

func TestLoad_FromEnvironment(t *testing.T) {
	cfg, err := load(newTestViper(t, map[string]string{
		"SELLER_ID_COLUMN":          "Organization",
		"GMV_COLUMN":                "Total GMV",
		"CLICKS_COLUMN":             "Click Count",
		"LOW_EFFICIENCY_THRESHOLD":  "5.5",
		"HIGH_EFFICIENCY_THRESHOLD": "120",
		"EARLIER_DATASET_PATH":      "/data/feb-nov.csv",
		"LATER_DATASET_PATH":        "/data/oct-nov.xlsx",
		"ALLOWED_ORIGINS":           "http://a.test,http://b.test",
		"DATASET_RELOAD_ENABLED":    "true",
	}))
	require.NoError(t, err)

	assert.Equal(t, "Organization", cfg.Columns.SellerID)
	assert.Equal(t, "Total GMV", cfg.Columns.GMV)
	assert.Equal(t, "Click Count", cfg.Columns.Clicks)
	assert.Equal(t, "5.5", cfg.Efficiency.Thresholds().Low.String())
	assert.True(t, cfg.Datasets.Configured())
	assert.True(t, cfg.DatasetReloadSync.Enabled)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "Limite superior menor que o inferior", env: map[string]string{"LOW_EFFICIENCY_THRESHOLD": "60"}},
		{name: "Limite inferior zero", env: map[string]string{"LOW_EFFICIENCY_THRESHOLD": "0"}},
		{name: "Colunas repetidas", env: map[string]string{"GMV_COLUMN": "Clicks"}},
		{name: "Coluna de vendedor igual à de GMV", env: map[string]string{"SELLER_ID_COLUMN": "GMV"}},
		{name: "Colunas iguais após remover espaços", env: map[string]string{"GMV_COLUMN": " GMV", "SELLER_ID_COLUMN": "GMV"}},
		{name: "Coluna só com espaços", env: map[string]string{"CLICKS_COLUMN": "   "}},
		{name: "Limite de upload zero", env: map[string]string{"MAX_UPLOAD_SIZE_MB": "0"}},
		{name: "Rajada de upload zero", env: map[string]string{"UPLOAD_RATE_LIMIT_BURST": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(newTestViper(t, tt.env))
			assert.Error(t, err)
		})
	}
}
