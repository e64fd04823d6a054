package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/japaniel/lexique/pkg/config"
	"github.com/japaniel/lexique/pkg/db"
	"github.com/japaniel/lexique/pkg/ingest"
	"github.com/japaniel/lexique/pkg/lexique"
	"github.com/japaniel/lexique/pkg/logging"
)

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "lexique <lexique-file>",
		Short: "Load a Lexique spreadsheet into a SQLite database",
		Long: `lexique reads a Lexique export (.xlsx), keeps nouns and adjectives,
drops rows without a word or lemma and writes the result to the words table
of a SQLite database. The table is recreated on every run.

Exit Codes:
  0  - Success
  1  - Unexpected error (including duplicate entries)
  2  - CLI usage or configuration error
  3  - Panic
  10 - Database could not be created
  11 - Source file not found
  12 - Required column missing from the spreadsheet`,
		Args:          usageArgs(cobra.ExactArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(cmd, args[0], cfgFile)
		},
	}

	f := cmd.Flags()
	f.StringP("output", "o", "", "SQLite file to write (required)")
	f.String("sheet", "", "worksheet to read (default: first sheet)")
	f.StringSlice("classes", lexique.DefaultClasses, "grammatical classes to keep")
	f.BoolP("verbose", "v", false, "enable debug diagnostics on stderr")
	f.StringVar(&cfgFile, "config", "", "config file (default: ./"+config.DefaultFile+" if present)")

	cmd.SetFlagErrorFunc(flagUsageError)
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func runLoad(cmd *cobra.Command, source, cfgFile string) error {
	cfg, used, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.Verbose)
	if used != "" {
		logger.Debug("config file loaded", "path", used)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	out := cmd.OutOrStdout()
	conn, err := db.Open(ctx, cfg.Output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			logger.Warn("close database", "error", cerr)
		}
		fmt.Fprintln(out, "Database connection closed.")
	}()

	if err := db.InitDB(ctx, conn); err != nil {
		return err
	}
	fmt.Fprintf(out, "Database '%s' opened.\n", cfg.Output)

	ig := ingest.NewIngester(conn)
	ig.Classes = cfg.Classes
	ig.Sheet = cfg.Sheet
	ig.Out = out
	ig.Logger = logger

	sum, err := ig.Ingest(ctx, source)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Process completed successfully.")
	sum.Render(out)
	return nil
}
