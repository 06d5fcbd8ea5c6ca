package handler

import (
	"net/http"

	"beauteefool/config"
	"beauteefool/di"
	"beauteefool/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	di.InitializeService().Adaptor().ServeHTTP(w, r)
}
