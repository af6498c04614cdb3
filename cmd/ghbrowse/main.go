package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/jask/ghbrowse/internal/config"
	"github.com/jask/ghbrowse/internal/github"
	"github.com/jask/ghbrowse/internal/secrets"
	"github.com/jask/ghbrowse/internal/service"
	"github.com/jask/ghbrowse/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var repo, user string
	root := &cobra.Command{
		Use:   "ghbrowse [query]",
		Short: "Browse GitHub repositories and users from the terminal",
		Long: `ghbrowse searches GitHub repositories, shows repository detail with
contributors, and user profiles with their public repositories.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := tui.Start{User: strings.TrimSpace(user)}
			if len(args) == 1 {
				start.Query = args[0]
			}
			if repo != "" {
				id, err := github.ParseRepoID(repo)
				if err != nil {
					return err
				}
				start.Repo = id
			}
			return run(cmd.Context(), start)
		},
	}
	root.Flags().StringVar(&repo, "repo", "", "open a repository (owner/name)")
	root.Flags().StringVar(&user, "user", "", "open a user profile (login)")
	root.MarkFlagsMutuallyExclusive("repo", "user")

	root.AddCommand(newAuthCmd())
	root.AddCommand(newConfigCmd())
	return root
}

func run(ctx context.Context, start tui.Start) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logFile, err := tea.LogToFile(cfg.Log.Path, "ghbrowse")
	if err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	defer logFile.Close()

	tag, err := language.Parse(cfg.UI.Locale)
	if err != nil {
		log.Printf("warn: using undetermined locale, %q did not parse: %v", cfg.UI.Locale, err)
		tag = language.Und
	}
	start.Locale = tag

	client, err := newClient(cfg)
	if err != nil {
		return err
	}
	repos := &service.RepoService{API: client}
	users := &service.UserService{API: client}

	app := tui.New(ctx, tui.Services{Search: repos, Repos: repos, Users: users}, start)
	defer app.Close()

	log.Printf("ghbrowse start: api %s", cfg.GitHub.BaseURL)
	if _, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func newClient(cfg config.Config) (*github.Client, error) {
	opts := []github.Option{github.WithPerPage(cfg.GitHub.PerPage)}
	if token := resolveToken(cfg); token != "" {
		opts = append(opts, github.WithToken(token))
	}
	client, err := github.NewClient(cfg.GitHub.BaseURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("github client: %w", err)
	}
	return client, nil
}

// resolveToken prefers the env var named by the config, then the secret
// store, then the plain config value.
func resolveToken(cfg config.Config) string {
	env := strings.TrimSpace(cfg.GitHub.TokenEnv)
	if env == "" {
		env = "GITHUB_TOKEN"
	}
	if v := strings.TrimSpace(os.Getenv(env)); v != "" {
		return v
	}
	if t, err := secrets.FetchToken(cfg.GitHub.BaseURL); err == nil {
		return t
	}
	return strings.TrimSpace(cfg.GitHub.Token)
}
