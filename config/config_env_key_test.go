package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"saga": map[string]any{
			"drinkUpdateTimeout":  "3s",
			"publishRepairEvents": true,
		},
		"pubsub": map[string]any{
			"topicId": "drink-counter-repair",
			"breaker": map[string]any{
				"failureRatio": 0.5,
			},
		},
		"worker": map[string]any{
			"kafkaGroupId": "drink-counter-worker",
		},
		"postgres": map[string]any{
			"master": map[string]any{
				"userName": "sommelier",
			},
		},
	}

	tests := map[string]string{
		"SAGA_DRINKUPDATETIMEOUT":      "saga.drinkUpdateTimeout",
		"PUBSUB_BREAKER_FAILURERATIO":  "pubsub.breaker.failureRatio",
		"WORKER_KAFKAGROUPID":          "worker.kafkaGroupId",
		"POSTGRES_MASTER_USERNAME":     "postgres.master.userName",
		"PERSISTENCE_DRIVER":           "persistence.driver",
		"SAGA__PUBLISHREPAIREVENTS":    "saga.publishRepairEvents",
		"WORKER_KAFKAGROUPID_FALLBACK": "worker.kafkaGroupId.fallback",
	}

	for envKey, want := range tests {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, existing))
		})
	}
}

type sagaSettings struct {
	Saga   *SagaConfig
	Worker *WorkerConfig
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "saga.yaml"), []byte(`
saga:
  drinkUpdateTimeout: 3s
  publishRepairEvents: true
worker:
  replayBatchSize: 100
  kafkaGroupId: drink-counter-worker
`), 0o600))

	pwd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(pwd, dir)
	require.NoError(t, err)

	t.Setenv("SAGA_DRINKUPDATETIMEOUT", "750ms")
	t.Setenv("WORKER_KAFKAGROUPID", "repair-replayers")

	cfg, err := LoadWithEnv[sagaSettings]("saga", rel)
	require.NoError(t, err)

	assert.Equal(t, 750*time.Millisecond, cfg.Saga.DrinkUpdateTimeout)
	assert.True(t, cfg.Saga.PublishRepairEvents)
	assert.Equal(t, 100, cfg.Worker.ReplayBatchSize)
	assert.Equal(t, "repair-replayers", cfg.Worker.KafkaGroupID)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[sagaSettings]("does-not-exist")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.yaml not found")
}
