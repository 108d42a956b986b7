package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLogger_RecordsEntries(t *testing.T) {
	logger := NewMockLogger()

	logger.Debug("d")
	logger.Info("i", Field{Key: FieldPage, Value: 1})
	logger.Warn("w")
	logger.Error("e")

	entries := logger.GetEntries()
	require.Len(t, entries, 4)
	assert.Equal(t, "DEBUG", entries[0].Level)
	assert.Equal(t, []Field{{Key: FieldPage, Value: 1}}, entries[1].Fields)
	assert.True(t, logger.HasEntry("WARN", "w"))
	assert.False(t, logger.HasEntry("INFO", "w"))
	assert.Len(t, logger.GetEntriesByLevel("ERROR"), 1)
}

func TestMockLogger_DerivedLoggersShareEntries(t *testing.T) {
	logger := NewMockLogger()
	testErr := errors.New("boom")

	logger.WithField(FieldFile, "a.pdf").WithError(testErr).Error("failed", Field{Key: FieldPage, Value: 3})

	entries := logger.GetEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, "failed", entries[0].Message)
	assert.Equal(t, testErr, entries[0].Error)
	assert.Equal(t, []Field{
		{Key: FieldFile, Value: "a.pdf"},
		{Key: FieldPage, Value: 3},
	}, entries[0].Fields)
}

func TestMockLogger_ZeroValueIsUsable(t *testing.T) {
	var logger MockLogger

	logger.Info("hello")
	logger.WithField("k", "v").Info("derived")

	assert.Len(t, logger.GetEntries(), 2)
}
