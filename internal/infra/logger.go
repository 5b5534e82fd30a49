package infra

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/inquiries/internal/config"
)

// Logger configures standard logrus logger
func Logger(cfg config.LogCfg) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level - %w", err)
	}

	log := logrus.StandardLogger()
	log.SetLevel(level)

	if cfg.Format == config.LogFormatJSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log, nil
}
