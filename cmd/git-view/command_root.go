package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/git-view/internal/view"
	"github.com/goliatone/git-view/pkg/config"
	"github.com/goliatone/git-view/pkg/di"
	"github.com/goliatone/git-view/pkg/gitutil"
)

// Flag names for the view overrides.
const (
	flagRemote = "remote"
	flagBranch = "branch"
	flagCommit = "commit"
	flagIssue  = "issue"
	flagPath   = "path"
	flagSuffix = "suffix"
	flagPrint  = "print"
)

// newRootCommand creates the root command. extra options are applied to the
// container after the configured ones so tests can swap services.
func newRootCommand(extra ...di.Option) *cobra.Command {
	var opts view.Options

	cmd := &cobra.Command{
		Use:   "git-view",
		Short: "Open the current repository, branch, commit or issue in the browser",
		Long: `git-view works out the remote and ref you are looking at and opens the
matching page on the hosted service (GitHub, BitBucket). Run it as "git view".

The remote is, in order: --remote, "origin" when HEAD is detached, the
open.default.remote git setting, the branch's tracked remote, "origin".
The ref is the branch's upstream, the remote's default branch or the local
branch; when detached the exact tag at HEAD or the commit hash.

Configuration Sources (in precedence order):
  1. Command-line flags (highest priority)
  2. Environment variables (GIT_VIEW_*)
  3. Configuration file ($XDG_CONFIG_HOME/git-view/config.yaml)
  4. Built-in defaults (lowest priority)

Exit Codes:
  0 - Success
  1 - Generic error
  2 - Configuration error
  3 - Validation error (invalid or conflicting flags)
  4 - Not inside a git repository
  5 - Remote missing or its URL could not be parsed
  6 - git failed, could not be run, or produced invalid output
  7 - Browser could not be opened

Examples:
  git view
  git view --print --path
  git view --commit
  git view --issue
  git view --remote upstream --branch develop --suffix pulls`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := initializeContainer(cmd, extra...)
			if err != nil {
				return err
			}
			defer cleanupContainer(container)

			return runView(cmd, container, opts)
		},
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return newValidationError("invalid flag usage", err)
	})

	flags := cmd.Flags()
	flags.StringVarP(&opts.Remote, flagRemote, "r", "",
		"The remote to view")
	flags.StringVarP(&opts.Branch, flagBranch, "b", "",
		"The branch to view")
	flags.StringVarP(&opts.Commit, flagCommit, "c", "",
		"A commit to view; the current commit when given without a value")
	flags.StringVarP(&opts.Issue, flagIssue, "i", "",
		"An issue number to view; taken from the branch name when given without a value")
	flags.StringVarP(&opts.Path, flagPath, "p", "",
		"A path to view; the current directory when given without a value")
	flags.StringVarP(&opts.Suffix, flagSuffix, "s", "",
		"Text appended to the generated URL")
	flags.BoolVar(&opts.Print, flagPrint, false,
		"Print the URL instead of opening it")

	flags.Lookup(flagCommit).NoOptDefVal = view.CommitCurrent
	flags.Lookup(flagIssue).NoOptDefVal = view.IssueFromBranch
	flags.Lookup(flagPath).NoOptDefVal = view.PathCurrentDirectory

	cmd.MarkFlagsMutuallyExclusive(flagCommit, flagRemote)
	cmd.MarkFlagsMutuallyExclusive(flagCommit, flagBranch)
	cmd.MarkFlagsMutuallyExclusive(flagIssue, flagCommit)
	cmd.MarkFlagsMutuallyExclusive(flagIssue, flagPath)

	config.AddFlags(cmd)

	cmd.AddCommand(newVersionCommand())

	return cmd
}

// initializeContainer builds the configuration and wires the services.
func initializeContainer(cmd *cobra.Command, extra ...di.Option) (di.Container, error) {
	start := time.Now()

	cfg, err := config.NewBuilder().
		FromFile(config.ConfigFileFlag(cmd)). // explicit --config or auto-discover
		FromEnv().
		FromFlags(cmd).
		Build()
	if err != nil {
		return nil, newConfigError("failed to build configuration", err)
	}

	opts := []di.Option{
		di.WithConfig(cfg),
		di.WithLogOutput(cmd.ErrOrStderr()),
	}
	if cfg.Logging.Level == "debug" || cfg.Logging.Verbose {
		opts = append(opts, di.WithInstrumentation())
	}
	opts = append(opts, extra...)

	container, err := di.New(opts...)
	if err != nil {
		return nil, newConfigError("failed to initialize dependencies", err)
	}

	container.Logger().Debug("CLI container initialized",
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return container, nil
}

// runView resolves the URL and prints or opens it.
func runView(cmd *cobra.Command, container di.Container, opts view.Options) error {
	ctx := cmd.Context()

	if err := validateOverrides(opts); err != nil {
		return err
	}

	url, err := container.Viewer().Resolve(ctx, opts)
	if err != nil {
		return newResolveError(err)
	}

	if opts.Print {
		fmt.Fprintln(cmd.OutOrStdout(), url)
		return nil
	}

	container.Logger().Debug("Opening URL", "url", url)
	if err := container.Opener().Open(ctx, url); err != nil {
		return newBrowserError(fmt.Sprintf("couldn't open %s", url), err)
	}
	return nil
}

// validateOverrides rejects remote and branch names git could never resolve.
func validateOverrides(opts view.Options) error {
	if opts.Remote != "" {
		if err := gitutil.ValidateRemoteName(opts.Remote); err != nil {
			return newValidationError("invalid --remote", err)
		}
	}
	if opts.Branch != "" {
		if err := gitutil.ValidateBranchName(opts.Branch); err != nil {
			return newValidationError("invalid --branch", err)
		}
	}
	return nil
}

func cleanupContainer(container di.Container) {
	if err := container.Close(); err != nil {
		container.Logger().Warn("Container cleanup errors", "error", err)
	}
}
