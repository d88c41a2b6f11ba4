package main

import (
	"os"

	"github.com/dhamidi/classdump/internal/logging"
)

func main() {
	logging.Configure(0, "")
	if err := newRootCmd().Execute(); err != nil {
		logging.Get("cli").Errorf("%s", err)
		os.Exit(1)
	}
}
