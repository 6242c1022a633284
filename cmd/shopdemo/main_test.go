package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/dwikikusuma/shopcart/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{AppEnv: "test", LogLevel: "error", CheckoutMaxConcurrent: 2, DisplayLocale: "en-US"}
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	log := slog.New(slog.NewJSONHandler(io.Discard, nil))

	err := run(context.Background(), &out, testConfig(), log)
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Alice's Cart: [1 E-Book x1 @ $15.00, 2 Online Course x1 @ $50.00]")
	assert.Contains(t, got, "Bob's Cart: [3 Laptop x1 @ $1,000.00, 4 Chair x1 @ $150.00, 5 Desk x1 @ $250.00]")
	assert.Contains(t, got, "Alice's Total Before Discount: $65.00\n")
	assert.Contains(t, got, "Alice's Total After 10% Discount: $58.50\n")
	assert.Contains(t, got, "Bob's Total Before Discount: $1,545.00\n")
	assert.Contains(t, got, "Bob's Total After $100 Discount: $1,445.00\n")
	assert.Contains(t, got, "Alice checked out 2 item(s) for $65.00")
	assert.Contains(t, got, "Bob checked out 3 item(s) for $1,545.00")

	lines := strings.Split(strings.TrimSpace(got), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "Alice's Cart: []", lines[len(lines)-2])
	assert.Equal(t, "Bob's Cart: []", lines[len(lines)-1])
}

func TestRunBadLocale(t *testing.T) {
	cfg := testConfig()
	cfg.DisplayLocale = "??"

	err := run(context.Background(), io.Discard, cfg, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	require.Error(t, err)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := run(ctx, io.Discard, testConfig(), slog.New(slog.NewJSONHandler(io.Discard, nil)))
	require.ErrorIs(t, err, context.Canceled)
}
