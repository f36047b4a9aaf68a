// Command snout is the terminal admin console for the Focinho Amigo
// shelter backend. Run without arguments it starts the interactive
// interface; the subcommands cover headless use (scripts, checks).
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/victorozoterio/friendly-snout-console/internal/buildinfo"
	"github.com/victorozoterio/friendly-snout-console/internal/client/api"
	"github.com/victorozoterio/friendly-snout-console/internal/client/config"
	"github.com/victorozoterio/friendly-snout-console/internal/client/session"
	"github.com/victorozoterio/friendly-snout-console/internal/client/ui"
	"github.com/victorozoterio/friendly-snout-console/internal/filex"
	"github.com/victorozoterio/friendly-snout-console/internal/logging"
)

// readPassword is a seam for tests; reads without echo from the terminal.
var readPassword = term.ReadPassword

// app bundles the wired dependencies shared by every command.
type app struct {
	cfg     *config.Config
	store   *session.Store
	client  *api.Client
	session *session.Session
	log     logging.Logger
}

// newApp wires config, token store, API client and session together.
// The interactive interface owns stdout, so logs go to stderr.
func newApp(ctx context.Context) (*app, error) {
	cfg := config.LoadConfig()

	dir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	store, err := session.OpenStore(ctx, filepath.Join(dir, "session.db"))
	if err != nil {
		return nil, err
	}

	log := logging.NewTextLogger(os.Stderr, slog.LevelWarn)
	client := api.New(cfg.APIBaseURL, store, log, api.WithTimeout(cfg.RequestTimeout))
	return &app{
		cfg:     cfg,
		store:   store,
		client:  client,
		session: session.New(client, store, log),
		log:     log,
	}, nil
}

func (a *app) close() {
	_ = a.store.Close()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "snout",
		Short: "Terminal admin console for the Focinho Amigo shelter",
		Long: `snout administers the animal shelter from the terminal: animals,
attachments, medicines, medicine brands and application schedules.

Run without arguments to start the interactive interface.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			deps := &ui.Deps{
				API:     a.client,
				Session: a.session,
				Cfg:     a.cfg,
				Log:     a.log,
				Styles:  ui.DefaultStyles(),
			}
			program := tea.NewProgram(ui.NewApp(deps), tea.WithAltScreen(), tea.WithContext(ctx))
			_, err = program.Run()
			return err
		},
	}

	root.AddCommand(newVersionCmd(), newLoginCmd(), newLogoutCmd(), newWhoamiCmd(), newDashboardCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
		},
	}
}

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login [email]",
		Short: "Sign in and persist the session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			var email string
			if len(args) == 1 {
				email = args[0]
			} else {
				fmt.Fprint(cmd.OutOrStdout(), "Email: ")
				reader := bufio.NewReader(cmd.InOrStdin())
				line, err := reader.ReadString('\n')
				if err != nil {
					return err
				}
				email = strings.TrimSpace(line)
			}

			fmt.Fprint(cmd.OutOrStdout(), "Senha: ")
			password, err := readPassword(int(syscall.Stdin))
			fmt.Fprintln(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			if err := a.session.SignIn(ctx, email, string(password)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Sessão iniciada.")
			return nil
		},
	}
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.session.Logout(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Sessão encerrada.")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			claims, err := a.session.AccessClaims(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Conta: %s\n", claims.Email)
			fmt.Fprintf(cmd.OutOrStdout(), "Expira em: %s\n", claims.ExpiresAt.Format("02/01/2006 15:04"))
			return nil
		},
	}
}

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Print animal counts per shelter stage",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			totals, err := a.client.TotalPerStage(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Em quarentena: %d (%d cães, %d gatos)\n",
				totals.Quarantine.Total, totals.Quarantine.Dogs, totals.Quarantine.Cats)
			fmt.Fprintf(out, "Acolhidos:     %d (%d cães, %d gatos)\n",
				totals.Sheltered.Total, totals.Sheltered.Dogs, totals.Sheltered.Cats)
			fmt.Fprintf(out, "Adotados:      %d (%d cães, %d gatos)\n",
				totals.Adopted.Total, totals.Adopted.Dogs, totals.Adopted.Cats)
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
