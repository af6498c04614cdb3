package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jask/ghbrowse/internal/config"
	"github.com/jask/ghbrowse/internal/secrets"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the stored GitHub token",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "set",
		Short: "Read a token from stdin and store it for the configured API host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			token, err := readToken(cmd.InOrStdin())
			if err != nil {
				return err
			}
			if err := secrets.StoreToken(cfg.GitHub.BaseURL, token); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "token stored for %s\n", cfg.GitHub.BaseURL)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget the stored token for the configured API host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := secrets.DeleteToken(cfg.GitHub.BaseURL); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "token cleared for %s\n", cfg.GitHub.BaseURL)
			return nil
		},
	})
	return cmd
}

func readToken(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read token: %w", err)
	}
	token := strings.TrimSpace(line)
	if token == "" {
		return "", fmt.Errorf("read token: stdin is empty")
	}
	return token, nil
}
