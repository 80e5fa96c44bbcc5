package main

import (
	"log/slog"
	"os"

	"github.com/gwend/finderinfo"
)

func main() {
	if err := newRootCmd(finderinfo.XattrStore{}, os.Stdout, os.Stderr).Execute(); err != nil {
		slog.Error("finderinfo failed", "err", err)
		os.Exit(1)
	}
}
