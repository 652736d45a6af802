package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koodakziba/koodakziba-backend/internal/accounts"
	"github.com/koodakziba/koodakziba-backend/internal/catalog"
	"github.com/koodakziba/koodakziba-backend/pkg/config"
	"github.com/koodakziba/koodakziba-backend/pkg/security"
	"github.com/koodakziba/koodakziba-backend/pkg/store"
)

func testSeedCfg() config.SeedConfig {
	return config.SeedConfig{
		AdminUsername: "admin",
		AdminEmail:    "admin@koodakziba.ir",
		AdminPassword: "change-me",
		AdminPhone:    "09123456789",
	}
}

func testPasswordCfg() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8192,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func newCollections(t *testing.T) (*store.Collection[catalog.Product], *store.Collection[accounts.User]) {
	t.Helper()
	dir := t.TempDir()
	products, err := store.NewCollection[catalog.Product](dir, "products.json", nil)
	require.NoError(t, err)
	users, err := store.NewCollection[accounts.User](dir, "users.json", nil)
	require.NoError(t, err)
	return products, users
}

func TestRunSeedsEmptyCollections(t *testing.T) {
	ctx := context.Background()
	products, users := newCollections(t)

	seeder, err := New(products, users, testSeedCfg(), testPasswordCfg(), nil)
	require.NoError(t, err)
	require.NoError(t, seeder.Run(ctx))

	gotProducts := products.Load(ctx)
	require.Len(t, gotProducts, 6)
	assert.Equal(t, "پیراهن گلدار دخترانه", gotProducts[0].Name)
	assert.Equal(t, 450000, gotProducts[0].Price)

	discounted := 0
	for _, p := range gotProducts {
		if p.HasDiscount {
			discounted++
		}
	}
	assert.Equal(t, 3, discounted, "three seeded products carry discount windows")

	gotUsers := users.Load(ctx)
	require.Len(t, gotUsers, 1)
	admin := gotUsers[0]
	assert.True(t, admin.IsAdmin)
	assert.Equal(t, 1, admin.ID)
	assert.Equal(t, "admin@koodakziba.ir", admin.Email)

	ok, err := security.VerifyPassword("change-me", admin.Password)
	require.NoError(t, err)
	assert.True(t, ok, "admin password hash must verify")
}

func TestRunLeavesExistingFilesAlone(t *testing.T) {
	ctx := context.Background()
	products, users := newCollections(t)

	require.NoError(t, products.Save(ctx, []catalog.Product{{ID: 1, Name: "custom"}}))
	require.NoError(t, users.Save(ctx, []accounts.User{}))

	seeder, err := New(products, users, testSeedCfg(), testPasswordCfg(), nil)
	require.NoError(t, err)
	require.NoError(t, seeder.Run(ctx))

	gotProducts := products.Load(ctx)
	require.Len(t, gotProducts, 1)
	assert.Equal(t, "custom", gotProducts[0].Name)

	assert.Empty(t, users.Load(ctx), "existing empty users file stays empty")
}
