package nats_test

import (
	"context"
	"nomad/infras/nats"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalBus_PublishSubscribe(t *testing.T) {
	bus := nats.NewLocal("nomad.notifications")
	defer bus.Close()

	var received []string

	unsubscribe, err := bus.Subscribe(bus.Subject(">"), func(subject string, data []byte) {
		received = append(received, subject+"="+string(data))
	})
	require.NoError(t, err)

	require.NoError(t, bus.Publish(context.Background(), bus.Subject("user-1"), []byte("hello")))
	require.NoError(t, bus.Publish(context.Background(), "other.subject", []byte("ignored")))

	assert.Equal(t, []string{"nomad.notifications.user-1=hello"}, received)

	unsubscribe()

	require.NoError(t, bus.Publish(context.Background(), bus.Subject("user-1"), []byte("again")))
	assert.Len(t, received, 1)
}

func TestLocalBus_Wildcards(t *testing.T) {
	bus := nats.NewLocal("n")

	tests := []struct {
		pattern string
		subject string
		match   bool
	}{
		{pattern: "n.*", subject: "n.user-1", match: true},
		{pattern: "n.*", subject: "n.user-1.extra", match: false},
		{pattern: "n.>", subject: "n.user-1.extra", match: true},
		{pattern: "n.>", subject: "n", match: false},
		{pattern: "n.user-1", subject: "n.user-2", match: false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.subject, func(t *testing.T) {
			hit := false

			unsubscribe, err := bus.Subscribe(tt.pattern, func(string, []byte) { hit = true })
			require.NoError(t, err)
			defer unsubscribe()

			require.NoError(t, bus.Publish(context.Background(), tt.subject, nil))
			assert.Equal(t, tt.match, hit)
		})
	}
}
