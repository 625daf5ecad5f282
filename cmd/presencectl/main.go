// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-rich-presence/internal/adapter"
	"github.com/MKhiriev/go-rich-presence/internal/client"
	"github.com/MKhiriev/go-rich-presence/internal/config"
	"github.com/MKhiriev/go-rich-presence/internal/logger"
)

func main() {
	log := logger.Nop()
	if os.Getenv("PRESENCECTL_DEBUG") != "" {
		log = logger.NewLogger("presencectl")
	}

	cfg, err := config.GetControlConfig(os.Args[1:])
	if err != nil {
		exit(err)
	}

	controlClient, err := adapter.NewHTTPControlClient(*cfg, log)
	if err != nil {
		exit(err)
	}

	if err = client.NewControl(controlClient, os.Stdout, log).Run(context.Background(), cfg.Args); err != nil {
		exit(err)
	}
}

func exit(err error) {
	fmt.Fprintf(os.Stderr, "presencectl: %v\n", err)
	if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) {
		os.Exit(2)
	}
	os.Exit(1)
}
