// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/strataio/strata/internal/config"
	"github.com/strataio/strata/internal/validate"
)

func runValidateCLI(args []string) int {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config file (YAML)")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing validate flags: %v\n", err)
		return 1
	}

	loader := config.NewLoader(*configPath, version)
	cfg, err := loader.Load()
	if err != nil {
		var ve validate.ValidationError
		if errors.As(err, &ve) {
			fmt.Fprintln(os.Stderr, "Configuration is invalid:")
			for _, e := range ve.Errors() {
				fmt.Fprintf(os.Stderr, "  - %s: %s\n", e.Field, e.Message)
			}
			return 1
		}
		fmt.Fprintf(os.Stderr, "Configuration load failed: %v\n", err)
		return 1
	}

	fmt.Printf("Configuration is valid (listen=%s, dataDir=%s, settings=%d)\n",
		cfg.ListenAddr, cfg.DataDir, len(cfg.Settings))
	return 0
}
