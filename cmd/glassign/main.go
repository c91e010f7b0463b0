package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/robby/glassign/internal/auth"
	"github.com/robby/glassign/internal/config"
	"github.com/robby/glassign/internal/gitlab"
	"github.com/robby/glassign/internal/reconcile"
	"github.com/robby/glassign/internal/tui"
)

const (
	sourceTokenEnv = "GLASSIGN_SOURCE_TOKEN"
	destTokenEnv   = "GLASSIGN_DEST_TOKEN"
)

var (
	// CLI flags
	destUserFlag string
	yesFlag      bool
	noVerifyFlag bool
	verboseFlag  bool
	configFlag   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "glassign SOURCE_URL SOURCE_TOKEN DEST_URL DEST_TOKEN USERNAME",
		Short: "Migrate GitLab issue assignments between two instances",
		Long: `glassign migrates issue-assignment state between two GitLab instances.

It resolves USERNAME on the source instance, collects the issues assigned to
that user across membership projects, finds the equivalent issues on the
destination instance by short reference (e.g. "group/project#42"), and - after
per-issue confirmation - reassigns each matched destination issue to the
corresponding destination user.

Tokens are sent verbatim in the PRIVATE-TOKEN header. Pass "-" for a token
positional argument to read it from the ` + sourceTokenEnv + ` or ` + destTokenEnv + `
environment variable instead. A YAML config file (--config) can supply any of
the positional arguments; arguments given on the command line win.`,
		Args: validateArgs,
		RunE: run,
	}

	// Define CLI flags
	rootCmd.Flags().StringVarP(&destUserFlag, "dest-user", "d", "", "Destination username. Defaults to USERNAME.")
	rootCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "Reassign every match without prompting.")
	rootCmd.Flags().BoolVar(&noVerifyFlag, "no-verify", false, "Skip the post-reassignment read-back check.")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "List unmatched destination issues individually.")
	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Path to a YAML run config file.")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// validateArgs requires the five positional arguments unless a config file
// supplies them.
func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 5 {
		return fmt.Errorf("accepts at most 5 args, received %d", len(args))
	}
	if configFlag == "" && len(args) != 5 {
		return fmt.Errorf("requires SOURCE_URL SOURCE_TOKEN DEST_URL DEST_TOKEN USERNAME (or --config)")
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg := &config.Config{}
	if configFlag != "" {
		loaded, err := config.Load(configFlag)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Positional arguments override config file values, in order.
	overrides := []*string{&cfg.Source.URL, &cfg.Source.Token, &cfg.Dest.URL, &cfg.Dest.Token, &cfg.Assignee}
	for i, arg := range args {
		*overrides[i] = arg
	}
	if destUserFlag != "" {
		cfg.DestUser = destUserFlag
	}
	if yesFlag {
		cfg.Yes = true
	}
	if noVerifyFlag {
		verify := false
		cfg.Verify = &verify
	}

	if cfg.Source.URL == "" || cfg.Dest.URL == "" || cfg.Assignee == "" {
		return fmt.Errorf("source URL, destination URL and username are required")
	}

	sourceToken, err := auth.Resolve(cfg.Source.Token, sourceTokenEnv)
	if err != nil {
		return fmt.Errorf("source instance: %w", err)
	}
	destToken, err := auth.Resolve(cfg.Dest.Token, destTokenEnv)
	if err != nil {
		return fmt.Errorf("destination instance: %w", err)
	}

	source := gitlab.New(cfg.Source.URL, sourceToken, http.DefaultClient)
	dest := gitlab.New(cfg.Dest.URL, destToken, http.DefaultClient)

	var confirmer reconcile.Confirmer = tui.PromptConfirmer{}
	if cfg.Yes {
		confirmer = reconcile.AutoConfirmer{}
	}
	reporter := tui.NewConsoleReporter(os.Stdout, verboseFlag)

	reconciler := reconcile.New(source, dest, confirmer, reporter, reconcile.Options{
		Username:     cfg.Assignee,
		DestUsername: cfg.DestUser,
		Verify:       cfg.VerifyEnabled(),
	})

	return reconciler.Run(context.Background())
}
