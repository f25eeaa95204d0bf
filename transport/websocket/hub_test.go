package websocket_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nomad/config"
	"nomad/infras/jwt"
	jwtMocks "nomad/infras/jwt/mocks"
	"nomad/infras/nats"
	"nomad/infras/otel/mocks"
	"nomad/transport/websocket"

	ws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T) (*httptest.Server, websocket.Hub, nats.Bus, *jwtMocks.MockJWT) {
	t.Helper()

	ctrl := gomock.NewController(t)
	jwtService := jwtMocks.NewMockJWT(ctrl)
	bus := nats.NewLocal("nomad.notifications")

	hub := websocket.New(bus, jwtService, &config.Config{}, mocks.NewOtel())
	require.NoError(t, hub.Start())

	server := httptest.NewServer(http.HandlerFunc(hub.Serve))

	t.Cleanup(func() {
		server.Close()
		hub.Close()
	})

	return server, hub, bus, jwtService
}

func wsURL(server *httptest.Server, token string) string {
	return "ws" + strings.TrimPrefix(server.URL, "http") + "/?token=" + token
}

func TestHub_DeliversToRecipient(t *testing.T) {
	server, hub, bus, jwtService := newServer(t)

	jwtService.EXPECT().ValidateToken(gomock.Any(), "good", jwt.AccessToken).Return(&jwt.Claims{UserID: "user-1"}, nil)

	conn, _, err := ws.DefaultDialer.Dial(wsURL(server, "good"), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Connections("user-1") == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, bus.Publish(context.Background(), bus.Subject("user-2"), []byte(`{"event":"other"}`)))
	require.NoError(t, bus.Publish(context.Background(), bus.Subject("user-1"), []byte(`{"event":"mine"}`)))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))

	_, message, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"event":"mine"}`, string(message))
}

func TestHub_UnregistersOnClose(t *testing.T) {
	server, hub, _, jwtService := newServer(t)

	jwtService.EXPECT().ValidateToken(gomock.Any(), "good", jwt.AccessToken).Return(&jwt.Claims{UserID: "user-1"}, nil)

	conn, _, err := ws.DefaultDialer.Dial(wsURL(server, "good"), nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return hub.Connections("user-1") == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool { return hub.Connections("user-1") == 0 }, time.Second, 10*time.Millisecond)
}

func TestHub_RejectsBadToken(t *testing.T) {
	server, _, _, jwtService := newServer(t)

	jwtService.EXPECT().ValidateToken(gomock.Any(), "bad", jwt.AccessToken).Return(nil, jwt.ErrInvalidToken)

	_, res, err := ws.DefaultDialer.Dial(wsURL(server, "bad"), nil)
	require.Error(t, err)
	require.NotNil(t, res)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	_, res, err = ws.DefaultDialer.Dial(wsURL(server, ""), nil)
	require.Error(t, err)
	require.NotNil(t, res)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
