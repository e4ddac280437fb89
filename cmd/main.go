package main

import (
	"os"

	"walletfeed/internal/app"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Error("Application terminated with error")
		os.Exit(1)
	}
}
