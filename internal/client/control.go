// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-rich-presence/internal/adapter"
	"github.com/MKhiriev/go-rich-presence/internal/logger"
	"github.com/MKhiriev/go-rich-presence/models"
)

// Control runs presencectl commands against a daemon.
type Control struct {
	client adapter.ControlClient
	out    io.Writer
	logger *logger.Logger
}

func NewControl(client adapter.ControlClient, out io.Writer, logger *logger.Logger) *Control {
	return &Control{client: client, out: out, logger: logger}
}

// Run executes the command line in args and prints the resulting status as
// JSON.
func (c *Control) Run(ctx context.Context, args []string) error {
	if args == nil {
		args = []string{}
	}
	root := c.command()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (c *Control) command() *cobra.Command {
	root := &cobra.Command{
		Use:   "presencectl",
		Short: "Control the presence daemon",
		Long: `Drive a running presenced over its control API.
Global flags (-a address, -c config) go before the command.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Usage()
			if len(args) == 0 {
				return ErrNoCommand
			}
			return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
		},
	}
	root.SetOut(c.out)
	root.SetErr(c.out)

	root.AddCommand(
		c.statusCommand("status", "Show the daemon's presence", c.client.Status),
		c.statusCommand("start", "Start the presence, or send an update while it runs", c.client.Start),
		c.statusCommand("stop", "Stop the presence", c.client.Stop),
		c.setCommand(),
	)

	return root
}

func (c *Control) statusCommand(use, short string, call func(ctx context.Context) (models.PresenceStatus, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.printStatus(cmd.Context(), use, call)
		},
	}
}

type setFlags struct {
	strs     map[string]*string
	switches map[string]*string
}

func (c *Control) setCommand() *cobra.Command {
	flags := &setFlags{
		strs:     make(map[string]*string),
		switches: make(map[string]*string),
	}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the presence configuration",
		Long: `Change the presence configuration. Only the flags given are sent,
so an explicit empty value clears a field.`,
		Example: `  presencectl set --status "In a match" --details Ranked --timer on
  presencectl set --large off`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			patch, err := flags.patch(cmd)
			if err != nil {
				return err
			}
			return c.printStatus(cmd.Context(), "set", func(ctx context.Context) (models.PresenceStatus, error) {
				return c.client.Patch(ctx, patch)
			})
		},
	}

	for _, f := range []struct{ name, usage string }{
		{"app-id", "Discord application id"},
		{"status", "State line"},
		{"details", "Details line"},
		{"large-image", "Large image asset key"},
		{"large-text", "Large image hover text"},
		{"small-image", "Small image asset key"},
		{"small-text", "Small image hover text"},
	} {
		flags.strs[f.name] = cmd.Flags().String(f.name, "", f.usage)
	}
	for _, f := range []struct{ name, usage string }{
		{"large", "Show the large image: on|off"},
		{"small", "Show the small image: on|off"},
		{"timer", "Show the elapsed timer: on|off"},
	} {
		flags.switches[f.name] = cmd.Flags().String(f.name, "", f.usage)
	}

	return cmd
}

// patch builds a patch from the flags present on the command line.
func (f *setFlags) patch(cmd *cobra.Command) (models.PresenceConfigPatch, error) {
	var patch models.PresenceConfigPatch

	for name, dst := range map[string]**string{
		"app-id":      &patch.AppID,
		"status":      &patch.Status,
		"details":     &patch.Details,
		"large-image": &patch.LargeImageKey,
		"large-text":  &patch.LargeImageDesc,
		"small-image": &patch.SmallImageKey,
		"small-text":  &patch.SmallImageDesc,
	} {
		if cmd.Flags().Changed(name) {
			*dst = f.strs[name]
		}
	}

	for name, dst := range map[string]**bool{
		"large": &patch.LargeImageEnabled,
		"small": &patch.SmallImageEnabled,
		"timer": &patch.TimerEnabled,
	} {
		if !cmd.Flags().Changed(name) {
			continue
		}
		on, err := parseSwitch(name, *f.switches[name])
		if err != nil {
			return models.PresenceConfigPatch{}, err
		}
		*dst = &on
	}

	if patch.IsEmpty() {
		return models.PresenceConfigPatch{}, ErrNothingToSet
	}
	return patch, nil
}

func (c *Control) printStatus(ctx context.Context, command string, call func(ctx context.Context) (models.PresenceStatus, error)) error {
	status, err := call(ctx)
	if err != nil {
		c.logger.Debug().Err(err).Str("command", command).Msg("control request failed")
		return err
	}

	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(status)
}

func parseSwitch(name, v string) (bool, error) {
	switch v {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("%w: --%s %q", ErrInvalidSwitch, name, v)
}
