package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmgilman/gitc/config"
	"github.com/jmgilman/gitc/errors"
	"github.com/jmgilman/gitc/git/cache"
)

func (a *app) newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion bash|zsh|fish|powershell",
		Short: "Generate a shell completion script",
		Long: `Generate a completion script for the given shell. Completion suggests
repositories that already have a mirror in the cache.

  source <(gitc completion bash)`,
		Args:                  usageArgs(cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs)),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			}
			return errors.Newf(errors.CodeInvalidInput, "unsupported shell %q: want bash, zsh, fish or powershell", args[0])
		},
	}
}

// usageArgs reports argument validation failures as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return errors.Wrap(err, errors.CodeInvalidInput, err.Error())
		}
		return nil
	}
}

// completeArgs completes the repository from the cache and the directory
// from the filesystem.
func (a *app) completeArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if strings.HasPrefix(toComplete, "-") {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	inv, err := splitArgs(args)
	if err != nil {
		// toComplete is the value of an option.
		return nil, cobra.ShellCompDirectiveDefault
	}

	switch len(inv.positional) {
	case 0:
		return a.cachedRepositories(toComplete), cobra.ShellCompDirectiveNoFileComp
	case 1:
		return nil, cobra.ShellCompDirectiveFilterDirs
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

// cachedRepositories lists cached URLs starting with prefix. Completion
// never fails; problems only yield no suggestions.
func (a *app) cachedRepositories(prefix string) []string {
	cfg, err := config.Load(a.getenv, a.home, a.workDir)
	if err != nil {
		return nil
	}

	mirrors, err := cache.New(cfg.CacheRoot, nil, cache.WithLogger(newLogger(a.stderr, cfg.LogLevel)))
	if err != nil {
		return nil
	}

	urls, err := mirrors.Complete(prefix)
	if err != nil {
		return nil
	}
	return urls
}
