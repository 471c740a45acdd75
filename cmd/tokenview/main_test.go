package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/tokenview/internal/adapter/driven/memory"
	"github.com/ericfisherdev/tokenview/internal/config"
	"github.com/ericfisherdev/tokenview/internal/domain/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRootCmd_MissingClientIDFailsBeforeServing(t *testing.T) {
	t.Setenv("TOKENVIEW_GOOGLE_CLIENT_ID", "")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--store", "memory"})
	cmd.SetOut(io.Discard)

	err := cmd.Execute()

	require.ErrorIs(t, err, config.ErrMissingClientID)
}

func TestRootCmd_InvalidStoreFlag(t *testing.T) {
	t.Setenv("TOKENVIEW_GOOGLE_CLIENT_ID", "client-id")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--store", "redis"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOKENVIEW_STORE")
}

func TestLoadConfig_FlagsOverrideInvalidEnv(t *testing.T) {
	t.Setenv("TOKENVIEW_GOOGLE_CLIENT_ID", "client-id")
	t.Setenv("TOKENVIEW_STORE", "redis")
	t.Setenv("TOKENVIEW_LISTEN_ADDR", "")

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--store", "memory", "--listen-addr", "127.0.0.1:9999"}))

	cfg, err := loadConfig(cmd.Flags())

	require.NoError(t, err)
	assert.Equal(t, config.StoreMemory, cfg.Store)
	assert.Equal(t, "127.0.0.1:9999", cfg.ListenAddr)
}

func TestLoadConfig_InvalidEnvWithoutFlag(t *testing.T) {
	t.Setenv("TOKENVIEW_GOOGLE_CLIENT_ID", "client-id")
	t.Setenv("TOKENVIEW_STORE", "redis")

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags(nil))

	_, err := loadConfig(cmd.Flags())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOKENVIEW_STORE")
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"version"})
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Equal(t, version, strings.TrimSpace(out.String()))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("warn", "json", &buf)

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"key":"value"`)
}

func TestNewLogger_TextDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("bogus", "text", &buf)

	logger.Debug("hidden")
	logger.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestOpenStore_Memory(t *testing.T) {
	store, closeStore, err := openStore(context.Background(), &config.Config{Store: config.StoreMemory}, discardLogger())
	require.NoError(t, err)
	defer closeStore()

	assert.IsType(t, &memory.CredentialStore{}, store)
}

func TestOpenStore_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{Store: config.StoreSQLite, DBPath: filepath.Join(t.TempDir(), "tokenview.db")}

	store, closeStore, err := openStore(ctx, cfg, discardLogger())
	require.NoError(t, err)
	defer closeStore()

	require.NoError(t, store.Set(ctx, "slot", model.GoogleTokenKey, "token"))
	got, err := store.Get(ctx, "slot", model.GoogleTokenKey)
	require.NoError(t, err)
	assert.Equal(t, "token", got)
	assert.NoError(t, store.Ping(ctx))
}

func TestOpenStore_Unknown(t *testing.T) {
	_, _, err := openStore(context.Background(), &config.Config{Store: "redis"}, discardLogger())
	require.Error(t, err)
}
