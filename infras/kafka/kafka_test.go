package kafka_test

import (
	"context"
	"encoding/json"
	"nomad/config"
	"nomad/infras/kafka"
	"nomad/infras/otel/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{
		Key:     "user-1",
		Value:   map[string]any{"message": "hello"},
		Headers: map[string]string{"event": "post_comment_notification"},
	}

	out, err := msg.ToKafkaMessage()
	require.NoError(t, err)

	assert.Equal(t, []byte("user-1"), out.Key)
	require.Len(t, out.Headers, 1)
	assert.Equal(t, "event", out.Headers[0].Key)

	var value map[string]any
	require.NoError(t, json.Unmarshal(out.Value, &value))
	assert.Equal(t, "hello", value["message"])
}

func TestMessage_ToKafkaMessageInvalidValue(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage()
	assert.Error(t, err)
}

func TestNew_DisabledDropsMessages(t *testing.T) {
	cfg := &config.Config{}
	cfg.Kafka.Enable = false

	client := kafka.New(cfg, mocks.NewOtel())

	assert.NoError(t, client.SendMessages(context.Background(), "notifications", kafka.Message{Key: "k", Value: 1}))
	assert.NoError(t, client.Close())
}
