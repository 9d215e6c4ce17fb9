package env

import (
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"testing"
	"time"
)

func TestOrDefault(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Setenv("ENV_TEST_SET", "value")
	t.Setenv("ENV_TEST_EMPTY", "")

	assert.Equal(t, "value", OrDefault(log, "ENV_TEST_SET", "def"))
	assert.Equal(t, "def", OrDefault(log, "ENV_TEST_EMPTY", "def"))
	assert.Equal(t, "def", OrDefault(log, "ENV_TEST_MISSING", "def"))
}

func TestTypedDefaults(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Setenv("ENV_TEST_DURATION", "3s")
	t.Setenv("ENV_TEST_BAD_DURATION", "three seconds")
	t.Setenv("ENV_TEST_BOOL", "t")
	t.Setenv("ENV_TEST_INT", "42")
	t.Setenv("ENV_TEST_BAD_INT", "x")

	assert.Equal(t, 3*time.Second, DurationDefault(log, "ENV_TEST_DURATION", "1s"))
	assert.Equal(t, time.Second, DurationDefault(log, "ENV_TEST_BAD_DURATION", "1s"))
	assert.True(t, BoolDefault(log, "ENV_TEST_BOOL", "f"))
	assert.False(t, BoolDefault(log, "ENV_TEST_BOOL_MISSING", "f"))
	assert.Equal(t, 42, IntDefault(log, "ENV_TEST_INT", "1"))
	assert.Equal(t, 1, IntDefault(log, "ENV_TEST_BAD_INT", "1"))
}
