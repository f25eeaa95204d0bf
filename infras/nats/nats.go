package nats

//go:generate go run go.uber.org/mock/mockgen -source=./nats.go -destination=./mocks/nats_mock.go -package=mocks

import (
	"context"
	"fmt"
	"nomad/config"
	"nomad/infras/otel"
	"nomad/shared/constant"
	"strings"
	"sync"
	"time"

	natsGo "github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrSubject  = "nats.subject"
	reconnectWait    = 2 * time.Second
	maxReconnects    = -1
	defaultSubjectNS = "nomad.notifications"
)

// Bus moves raw payloads between instances.
type Bus interface {
	Publish(ctx context.Context, subject string, data []byte) error
	Subscribe(subject string, handler func(subject string, data []byte)) (unsubscribe func(), err error)
	Subject(parts ...string) string
	Close()
}

type natsBus struct {
	conn   *natsGo.Conn
	otel   otel.Otel
	prefix string
}

// New connects to NATS. Without a configured URL it returns an in-process bus, which is
// enough for a single instance.
func New(config *config.Config, otl otel.Otel) Bus {
	prefix := config.External.NATS.SubjectPrefix
	if prefix == "" {
		prefix = defaultSubjectNS
	}

	if config.External.NATS.URL == "" {
		log.Warn().Msg("NATS url is not set, live notifications stay on this instance")

		return NewLocal(prefix)
	}

	conn, err := natsGo.Connect(
		config.External.NATS.URL,
		natsGo.Name(config.App.Name),
		natsGo.ReconnectWait(reconnectWait),
		natsGo.MaxReconnects(maxReconnects),
		natsGo.DisconnectErrHandler(func(_ *natsGo.Conn, err error) {
			log.Warn().Err(err).Msg("Disconnected from NATS")
		}),
		natsGo.ReconnectHandler(func(c *natsGo.Conn) {
			log.Info().Str("url", c.ConnectedUrl()).Msg("Reconnected to NATS")
		}),
	)
	if err != nil {
		log.Fatal().Err(err).Str("url", config.External.NATS.URL).Msg("Failed to connect to NATS")
	}

	log.Info().Str("url", conn.ConnectedUrl()).Msg("Connected to NATS")

	return &natsBus{
		conn:   conn,
		otel:   otl,
		prefix: prefix,
	}
}

func (b *natsBus) Publish(ctx context.Context, subject string, data []byte) (err error) {
	_, scope := b.otel.NewScope(ctx, constant.OtelRealtimeScopeName, constant.OtelRealtimeScopeName+".Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelAttrSubject, subject)

	if err = b.conn.Publish(subject, data); err != nil {
		log.Error().Err(err).Str("subject", subject).Msg("Failed to publish to NATS")

		return fmt.Errorf("failed to publish to NATS: %w", err)
	}

	return nil
}

func (b *natsBus) Subscribe(subject string, handler func(subject string, data []byte)) (func(), error) {
	sub, err := b.conn.Subscribe(subject, func(msg *natsGo.Msg) {
		handler(msg.Subject, msg.Data)
	})
	if err != nil {
		log.Error().Err(err).Str("subject", subject).Msg("Failed to subscribe to NATS subject")

		return nil, fmt.Errorf("failed to subscribe to NATS subject: %w", err)
	}

	log.Info().Str("subject", subject).Msg("Listening to NATS subject")

	return func() {
		if err := sub.Unsubscribe(); err != nil {
			log.Error().Err(err).Str("subject", subject).Msg("Failed to unsubscribe from NATS subject")
		}
	}, nil
}

func (b *natsBus) Subject(parts ...string) string {
	return strings.Join(append([]string{b.prefix}, parts...), ".")
}

func (b *natsBus) Close() {
	if err := b.conn.Drain(); err != nil {
		log.Error().Err(err).Msg("Failed to drain NATS connection")
	}
}

type localBus struct {
	mu       sync.RWMutex
	prefix   string
	handlers map[int]localHandler
	next     int
}

type localHandler struct {
	subject string
	fn      func(subject string, data []byte)
}

// NewLocal returns an in-process Bus. Subjects support the trailing '>' and single '*' token
// wildcards.
func NewLocal(prefix string) Bus {
	return &localBus{
		prefix:   prefix,
		handlers: map[int]localHandler{},
	}
}

func (b *localBus) Publish(_ context.Context, subject string, data []byte) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, h := range b.handlers {
		if subjectMatches(h.subject, subject) {
			h.fn(subject, data)
		}
	}

	return nil
}

func (b *localBus) Subscribe(subject string, handler func(subject string, data []byte)) (func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	b.handlers[id] = localHandler{subject: subject, fn: handler}

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		delete(b.handlers, id)
	}, nil
}

func (b *localBus) Subject(parts ...string) string {
	return strings.Join(append([]string{b.prefix}, parts...), ".")
}

func (b *localBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers = map[int]localHandler{}
}

func subjectMatches(pattern, subject string) bool {
	patternTokens := strings.Split(pattern, ".")
	subjectTokens := strings.Split(subject, ".")

	for i, token := range patternTokens {
		if token == ">" {
			return len(subjectTokens) > i
		}

		if i >= len(subjectTokens) {
			return false
		}

		if token != "*" && token != subjectTokens[i] {
			return false
		}
	}

	return len(patternTokens) == len(subjectTokens)
}
