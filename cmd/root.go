package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cprobe/plog/config"
	"github.com/cprobe/plog/fdscan"
	"github.com/cprobe/plog/logger"
	"github.com/cprobe/plog/pkg/procutil"
)

const name = "plog"

// execName is only consulted when debug logging is on.
var execName = procutil.ExecName

// usageError makes Execute print the usage text after the error.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// NewRootCmd builds the plog command. Only the first positional argument is
// scanned, any further ones are ignored.
func NewRootCmd() *cobra.Command {
	var loglevel string

	rootCmd := &cobra.Command{
		Use:           name + " [flags] pid",
		Short:         "Print the log files a process has open",
		Long:          "Print the paths of the log files a process holds open, found by resolving /proc/<pid>/fd.",
		Version:       config.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return &usageError{errors.New("missing pid argument")}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), args[0], loglevel)
		},
	}

	// pflag stops at the first bad flag, anything it set before stays set,
	// so -V wins over whatever follows it
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			return printVersion(cmd)
		}
		return &usageError{err}
	})
	rootCmd.SetVersionTemplate("{{.Name}} from catpaw-procps {{.Version}}\n")

	rootCmd.Flags().BoolP("version", "V", false, "output version information and exit")
	rootCmd.Flags().StringVar(&loglevel, "loglevel", "", "diagnostic log level on stderr: debug, info, warn, error")

	return rootCmd
}

func printVersion(cmd *cobra.Command) error {
	t, err := template.New("version").Parse(cmd.VersionTemplate())
	if err != nil {
		return err
	}
	return t.Execute(cmd.OutOrStdout(), cmd)
}

func run(out io.Writer, pidArg, loglevel string) error {
	if err := config.InitConfig(loglevel); err != nil {
		return &usageError{err}
	}

	closefn := logger.Build()
	defer closefn()

	pid, err := procutil.ParsePidArgument(pidArg)
	if err != nil {
		logger.Logger.Debugw("rejected pid argument", "arg", pidArg, "error", err)
		return fmt.Errorf("invalid process id: %s", pidArg)
	}

	if logger.Logger.Desugar().Core().Enabled(zap.DebugLevel) {
		logger.Logger.Debugw("scanning process", "pid", pid, "exec_name", execName(pid))
	}

	err = fdscan.New(out).Scan(pidArg)
	if err != nil && procutil.IsProcessGone(err) {
		logger.Logger.Debugw("process not found", "pid", pid)
	}
	return err
}

// Execute runs cmd and reports failures on its error stream, followed by
// the usage text for command line mistakes.
func Execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err == nil {
		return nil
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", name, err)

	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
	}
	return err
}

func Main() {
	if err := Execute(NewRootCmd()); err != nil {
		os.Exit(1)
	}
}
