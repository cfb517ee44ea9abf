package handler

import (
	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/shared/logger"
	"net/http"
	"sync"

	frontdeskHTTP "frontdesk/transport/http"
)

var (
	server *frontdeskHTTP.HTTP
	once   sync.Once
)

// Handler is the serverless entrypoint. The dependency graph is built on the first invocation and
// reused by warm instances.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
