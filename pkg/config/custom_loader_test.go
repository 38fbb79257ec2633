package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/createrainforest/bosweb/modules/donation"
	"github.com/createrainforest/bosweb/pkg/config"
	"github.com/createrainforest/bosweb/pkg/ratelimiter"
)

var siteVars = []string{
	"SERVICE_MAILBOX",
	"INFO_MAIL_SUBJECT",
	"ORDER_NEXT_URL",
	"SHIPPING_NEXT_URL",
	"TRANSFER_NEXT_URL",
	"INFO_REQUEST_SECRET",
	"INFO_REQUEST_TTL",
	"RATE_LIMIT_CAPACITY",
	"RATE_LIMIT_REFILL_RATE",
	"RATE_LIMIT_REFILL_INTERVAL",
}

// unsetSiteVars clears the site variables for the test and restores them
// afterwards. LoadEnv never overrides a variable that is set, even to "".
func unsetSiteVars(t *testing.T) {
	t.Helper()
	for _, key := range siteVars {
		if old, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { _ = os.Setenv(key, old) })
		} else {
			t.Cleanup(func() { _ = os.Unsetenv(key) })
		}
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadEnv_SiteFile(t *testing.T) {
	unsetSiteVars(t)
	require.NoError(t, config.LoadEnv("testdata/site.env"))

	var cfg donation.Config
	require.NoError(t, config.ForceReloadConfig(&cfg))
	assert.Equal(t, "service@example.org", cfg.ServiceMailbox)
	assert.Equal(t, "Informationen zu BOS", cfg.InfoMailSubject)
	assert.Equal(t, "/de/bestellung-danke.html", cfg.OrderNextURL)
	assert.Empty(t, cfg.ShippingNextURL)
	assert.Empty(t, cfg.InfoRequestSecret)
	assert.Equal(t, 30*time.Minute, cfg.InfoRequestTTL)

	var limits ratelimiter.Config
	require.NoError(t, config.ForceReloadConfig(&limits))
	assert.Equal(t, 3, limits.Capacity)
	assert.Equal(t, 1, limits.RefillRate, "default kept")
	assert.Equal(t, time.Hour, limits.RefillInterval)
}

func TestLoadEnv_LaterFileWins(t *testing.T) {
	unsetSiteVars(t)
	require.NoError(t, config.LoadEnv("testdata/site.env", "testdata/staging.env"))

	var cfg donation.Config
	require.NoError(t, config.ForceReloadConfig(&cfg))
	assert.Equal(t, "staging@example.org", cfg.ServiceMailbox)
	assert.Equal(t, "staging-secret", cfg.InfoRequestSecret)
	assert.Equal(t, "Informationen zu BOS", cfg.InfoMailSubject, "earlier file fills the gaps")

	var limits ratelimiter.Config
	require.NoError(t, config.ForceReloadConfig(&limits))
	assert.Equal(t, 50, limits.Capacity)
}

func TestLoadEnv_ProcessEnvironmentWins(t *testing.T) {
	unsetSiteVars(t)
	require.NoError(t, os.Setenv("SERVICE_MAILBOX", "ops@example.org"))
	require.NoError(t, config.LoadEnv("testdata/site.env"))

	var cfg donation.Config
	require.NoError(t, config.ForceReloadConfig(&cfg))
	assert.Equal(t, "ops@example.org", cfg.ServiceMailbox)
	assert.Equal(t, 30*time.Minute, cfg.InfoRequestTTL)
}

func TestLoadEnv_MalformedValue(t *testing.T) {
	unsetSiteVars(t)
	require.NoError(t, config.LoadEnv("testdata/broken.env"))

	var cfg donation.Config
	err := config.ForceReloadConfig(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	unsetSiteVars(t)
	err := config.LoadEnv("testdata/missing.env")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "testdata/missing.env")

	assert.Panics(t, func() { config.MustLoadEnv("testdata/missing.env") })
	assert.NotPanics(t, func() { config.MustLoadEnv("testdata/site.env") })
}
