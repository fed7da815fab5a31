package bootstrap_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-estoque/internal/bootstrap"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	"github.com/jhoicas/controle-estoque/pkg/config"
	"github.com/jhoicas/controle-estoque/pkg/logger"
)

func memoryConfig() *config.Config {
	return &config.Config{
		App:    config.AppConfig{Name: "teste"},
		Store:  config.StoreConfig{Driver: config.StoreDriverMemory},
		JWT:    config.JWTConfig{Secret: "s", Expiration: 5, Issuer: "teste"},
		Ledger: config.LedgerConfig{MaxAttempts: 3},
	}
}

func TestOpenRepositories_Memory(t *testing.T) {
	ctx := context.Background()
	cfg := memoryConfig()
	repos, err := bootstrap.OpenRepositories(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer repos.Close()

	svc := bootstrap.NewServices(repos, cfg, logger.Nop())
	p := &entity.Product{Name: "Parafuso", Quantity: 5, MaximumStock: 10}
	require.NoError(t, repos.Products.Create(ctx, p))

	res, err := svc.Engine.ApplyEntry(ctx, p.ID, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(8), res.Product.Quantity)

	movs, err := svc.Recorder.ListForProduct(ctx, p.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, movs, 1, "el motor y el histórico comparten el mismo almacén")

	deps := svc.RouterDeps(cfg.JWT.Secret)
	assert.NotNil(t, deps.Metrics)
	assert.Same(t, svc.Engine, deps.Engine)
}

func TestOpenRepositories_DriverInvalido(t *testing.T) {
	cfg := memoryConfig()
	cfg.Store.Driver = "sqlite"
	_, err := bootstrap.OpenRepositories(context.Background(), cfg, logger.Nop())
	assert.Error(t, err)
}
