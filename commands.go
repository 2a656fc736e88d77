package main

import (
	"io"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-cheat/internal/cli"
	"github.com/robalobadob/wordle-cheat/internal/httpserver"
	"github.com/robalobadob/wordle-cheat/internal/search"
	"github.com/robalobadob/wordle-cheat/internal/store"
	"github.com/robalobadob/wordle-cheat/internal/words"
)

// options collects flag values shared by all commands.
type options struct {
	wordsFile string
	logLevel  string
	summary   bool
	port      int
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "wordle-cheat",
		Short: "Narrow five-letter candidate words from Wordle clues",
		Long: `wordle-cheat reads narrowing commands from stdin, one per line,
and prints how many candidate words remain after each.
Type anything unrecognized for the command list.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(opts.logLevel, cmd.Name() != "serve", cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := words.Load(opts.wordsFile)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			sess := cli.NewSession(search.New(list), cmd.OutOrStdout(), cli.WithSummaries(opts.summary))
			return sess.Run(ctx, cmd.InOrStdin())
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&opts.wordsFile, "words", os.Getenv("WORDS_FILE"), "word list file, one word per line (default: embedded list)")
	f.StringVar(&opts.logLevel, "log-level", getEnv("LOG_LEVEL", "info"), "log level (trace, debug, info, warn, error)")
	root.Flags().BoolVar(&opts.summary, "summary", false, "print position summaries after each narrowing")

	root.AddCommand(newServeCmd(opts))
	return root
}

func newServeCmd(opts *options) *cobra.Command {
	port, _ := strconv.Atoi(getEnv("PORT", "5175"))

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve isolated search sessions over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := words.Load(opts.wordsFile)
			if err != nil {
				return err
			}
			srv := httpserver.New(store.NewMemoryStore(list), httpserver.Config{
				JWTSecret: os.Getenv("JWT_SECRET"),
				TokenTTL:  24 * time.Hour,
			})
			addr := ":" + strconv.Itoa(opts.port)
			log.Info().Str("addr", addr).Int("words", len(list)).Msg("starting session server")
			return srv.Start(addr)
		},
	}
	cmd.Flags().IntVar(&opts.port, "port", port, "listen port")
	return cmd
}

// setupLogging sets the global level. Interactive runs log through a console
// writer on stderr so records never interleave with the candidate output.
func setupLogging(level string, console bool, w io.Writer) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	if console {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})
	} else {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	}
	return nil
}
