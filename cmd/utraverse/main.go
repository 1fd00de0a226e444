package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

var (
	appName = "utraverse"
	appSHA  = "latest-app-git-sha" // Populated by the compiler at the linking stage.
)

func main() {
	host, _ := os.Hostname()
	// Instantiate a root logger that will be passed to all components.
	rootLogger := logrus.New()
	logger := rootLogger.WithFields(logrus.Fields{
		"app":  appName,
		"SHA":  appSHA,
		"host": host,
	})

	if err := newApp(rootLogger, logger, os.Stdin, os.Stdout).Run(os.Args); err != nil {
		logger.WithField("err", err).Error("shutting down due to an error")
		_ = os.Stderr.Sync()

		os.Exit(1)
	}
}
