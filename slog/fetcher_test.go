package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/carcheck/mock"
	carslog "github.com/fwojciec/carcheck/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const checkURL = "https://www.motorcheck.ie/free-car-check/?vrm=12D34567"

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs url, bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "<html>vehicle</html>", nil
			},
		}

		fetcher := carslog.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), checkURL)

		require.NoError(t, err)
		assert.Equal(t, "<html>vehicle</html>", html)
		output := buf.String()
		assert.Contains(t, output, "msg=fetch")
		assert.Contains(t, output, checkURL)
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("connection reset")
			},
		}

		fetcher := carslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), checkURL)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"connection reset\"")
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	closeCalled := false
	inner := &mock.Fetcher{
		CloseFn: func() error {
			closeCalled = true
			return nil
		},
	}

	fetcher := carslog.NewLoggingFetcher(inner, slog.New(slog.DiscardHandler))

	require.NoError(t, fetcher.Close())
	assert.True(t, closeCalled)
}
