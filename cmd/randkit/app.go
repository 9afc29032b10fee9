package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/randkit/randkit/internal/drawlog"
	"github.com/randkit/randkit/random"
)

type app struct {
	recordPath  string
	replayPath  string
	logfileName string
	verbosity   int

	logger   *LogWriter
	src      random.Source
	recorder *drawlog.Recorder
	closer   io.Closer
}

// run executes the command line in args and releases the draw log, if one
// was opened, whatever the outcome.
func run(args []string, stdout, stderr io.Writer) error {
	a := &app{}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.Execute()
	if cerr := a.close(); err == nil {
		err = cerr
	}
	return err
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "randkit",
		Short:         "Draw random numbers, choices, samples and shuffles",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.recordPath, "record", "", "record every draw to this file (default $"+drawlog.LocalOutputEnvVar+")")
	flags.StringVar(&a.replayPath, "replay", "", "draw from a file written by --record instead of the default source")
	flags.StringVar(&a.logfileName, "log-file", "", "write logs to this file instead of stderr")
	flags.IntVarP(&a.verbosity, "verbose", "v", 0, "log verbosity")

	root.AddCommand(
		a.randomCommand(),
		a.uniformCommand(),
		a.randIntCommand(),
		a.choiceCommand(),
		a.choicesCommand(),
		a.shuffleCommand(),
		a.sampleCommand(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	a.logger = NewLogWriter(cmd.ErrOrStderr(), a.logfileName, a.verbosity)

	a.src = random.Default()
	if a.replayPath != "" {
		player, err := drawlog.ReplayFile(a.replayPath)
		if err != nil {
			return err
		}
		if a.logger.IsVerbose() {
			a.logger.Printf("Replaying %d draws from %s", player.Remaining(), a.replayPath)
		}
		a.src = player.Next
	}

	if a.recordPath != "" {
		file, err := drawlog.OpenFile(a.recordPath)
		if err != nil {
			return err
		}
		a.recorder, a.closer = drawlog.NewRecorder(file), file
	} else {
		recorder, closer, err := drawlog.FromEnv()
		if err != nil {
			return err
		}
		a.recorder, a.closer = recorder, closer
	}
	if a.recorder != nil {
		if a.logger.IsVerbose() {
			a.logger.Printf("Recording draws to %s", a.recordFile())
		}
		a.src = a.recorder.Wrap(a.src)
	}
	return nil
}

func (a *app) recordFile() string {
	if a.recordPath != "" {
		return a.recordPath
	}
	return "$" + drawlog.LocalOutputEnvVar
}

func (a *app) close() error {
	if a.logger == nil {
		return nil
	}
	var err error
	if a.closer != nil {
		if a.logger.VerboseLevel(2) {
			a.logger.Printf("Recorded %d draws to %s", a.recorder.Count(), a.recordFile())
		}
		if cerr := a.closer.Close(); cerr != nil {
			err = fmt.Errorf("close draw log: %w", cerr)
		}
	}
	if cerr := a.logger.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("close log file: %w", cerr)
	}
	return err
}

func (a *app) opt() random.Option {
	return random.WithSource(a.src)
}

// draw runs f, turning the panics raised for bad arguments or an exhausted
// replay into errors.
func draw(f func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		if !ok || !(errors.Is(e, random.ErrInvalidArgument) || errors.Is(e, drawlog.ErrExhausted)) {
			panic(r)
		}
		err = e
	}()
	f()
	return nil
}
