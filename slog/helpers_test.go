package slog_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func lookupID(t *testing.T, line []byte) string {
	t.Helper()
	var entry struct {
		LookupID string `json:"lookup_id"`
	}
	require.NoError(t, json.Unmarshal(line, &entry))
	require.NotEmpty(t, entry.LookupID)
	return entry.LookupID
}
