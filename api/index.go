package handler

import (
	"net/http"
	"nomad/config"
	"nomad/di"
	"nomad/shared/logger"
	"sync"

	transport "nomad/transport/http"
)

var (
	app  *transport.HTTP
	once sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		app = di.InitializeService()
	})

	app.ServeHTTP(w, r)
}
