package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/ethicsbuild/edai-hedera-network/pkg/console"
	"github.com/ethicsbuild/edai-hedera-network/pkg/edai"
	"github.com/ethicsbuild/edai-hedera-network/pkg/logging"
	"github.com/ethicsbuild/edai-hedera-network/pkg/prompt"
	"github.com/ethicsbuild/edai-hedera-network/pkg/shared"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	networkFlagName  = "network"
	networkFlagUsage = "Hedera network (mainnet or testnet)." +
		" Alternatively, this can be set with the following environment variable: " + networkEnvKey
	networkEnvKey = "HEDERA_NETWORK"

	dirFlagName  = "dir"
	dirFlagUsage = "Directory holding deployment-info.json and guardian records."

	logLevelFlagName  = "log-level"
	logLevelFlagUsage = "Diagnostic log level (debug, info, warn, error)." +
		" Alternatively, this can be set with the following environment variable: " + logLevelEnvKey
	logLevelEnvKey = "EDAI_LOG_LEVEL"
)

// commandOptions carries the process streams and the collaborators tests
// replace.
type commandOptions struct {
	stdin          io.Reader
	stdout         io.Writer
	stderr         io.Writer
	lookupOperator func(network string) shared.OperatorConfig
	openLedger     edai.LedgerOpener
	openMirror     edai.MirrorOpener
}

type globalFlags struct {
	network  string
	dir      string
	logLevel string
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return runWith(ctx, args, commandOptions{stdin: stdin, stdout: stdout, stderr: stderr})
}

func runWith(ctx context.Context, args []string, options commandOptions) int {
	flags := &globalFlags{}
	root := newRootCommand(flags, options)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	return exitCode(err, console.New(options.stderr))
}

func newRootCommand(flags *globalFlags, options commandOptions) *cobra.Command {
	root := &cobra.Command{
		Use:           "edai",
		Short:         "E.D.A.I. guardian credential network tooling for Hedera",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}
	root.SetIn(options.stdin)
	root.SetOut(options.stdout)
	root.SetErr(options.stderr)

	root.PersistentFlags().StringVar(&flags.network, networkFlagName, "", networkFlagUsage)
	root.PersistentFlags().StringVar(&flags.dir, dirFlagName, ".", dirFlagUsage)
	root.PersistentFlags().StringVar(&flags.logLevel, logLevelFlagName, "", logLevelFlagUsage)

	root.AddCommand(newDeployCommand(flags, options))
	root.AddCommand(newMintCommand(flags, options))
	root.AddCommand(newInspectCommand(flags, options))

	return root
}

// newClient builds the workflow client for one command invocation. The
// returned logger must be synced by the caller.
func newClient(flags *globalFlags, options commandOptions, mirrorBaseURL string) (*edai.Client, *zap.Logger, error) {
	level := flags.logLevel
	if level == "" {
		level = os.Getenv(logLevelEnvKey)
	}
	logger, err := logging.New(level, zapcore.AddSync(options.stderr))
	if err != nil {
		return nil, nil, err
	}

	client := edai.NewClient(edai.ClientConfig{
		RecordDir:      flags.dir,
		LookupOperator: options.lookupOperator,
		OpenLedger:     options.openLedger,
		OpenMirror:     options.openMirror,
		MirrorBaseURL:  mirrorBaseURL,
		Prompter:       prompt.New(options.stdin, options.stdout),
		Console:        console.New(options.stdout),
		Logger:         logger,
	})
	return client, logger, nil
}

// resolveNetwork applies the flag, then HEDERA_NETWORK, then mainnet.
func resolveNetwork(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if network := shared.NetworkFromEnv(); network != "" {
		return network
	}
	return shared.NetworkMainnet
}

// exitCode reports err on the console and maps it to the process exit code.
// A declined confirmation is not a failure.
func exitCode(err error, printer *console.Printer) int {
	if err == nil || errors.Is(err, edai.ErrCancelled) {
		return 0
	}

	var transactionError *edai.TransactionError
	if errors.As(err, &transactionError) {
		printer.Error("❌ %s failed: %v", transactionError.Operation, transactionError.Err)
		if code, ok := transactionError.StatusCode(); ok {
			printer.Error("Status: %s (code %d)", transactionError.Status.String(), code)
		}
		return 1
	}

	printer.Error("❌ %s", err)
	return 1
}
