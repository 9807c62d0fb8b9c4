package config

import (
	"net/http"

	"github.com/amir20/logview/internal/history"
	"github.com/sirupsen/logrus"
)

func NewHistoryClient(cfg Cli, log logrus.FieldLogger) *history.Client {
	httpClient := &http.Client{
		Timeout: cfg.Timeout,
	}

	return history.NewClient(
		cfg.URL,
		history.WithHTTPClient(httpClient),
		history.WithUserAgent(cfg.UserAgent),
		history.WithLogger(log),
	)
}
