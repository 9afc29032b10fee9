package main

import (
	"io"
	"log"
	"os"
	"strings"
)

// ------------------------------------------------------------
// If the verbosity at the call site is less than or equal to
// the level requested, the log will be enabled.  Higher callsite
// verbosity values are less likely to be output.
//
// if (2 <= verbosity) { log-is-enabled }
// ------------------------------------------------------------

type LogWriter struct {
	verbosity int
	logger    *log.Logger
	logfile   *os.File // nil when logging to the caller's writer
}

// NewLogWriter logs to logfileName, or to w when no file is named or the
// file cannot be created.
func NewLogWriter(w io.Writer, logfileName string, vLevel int) *LogWriter {
	var erx error
	var fp *os.File

	wrx := w
	logfilePath := strings.TrimSpace(logfileName)
	if logfilePath != "" {
		if fp, erx = os.Create(logfilePath); erx == nil {
			wrx = fp
		} else {
			fp = nil
		}
	}

	logger := log.New(wrx, "", log.LstdFlags)

	// Advise if the requested logfile was not created
	if erx != nil {
		logger.Printf("WARNING Unable to Create/Open requested logfile: %q", logfilePath)
	}

	return &LogWriter{vLevel, logger, fp}
}

// Close releases the log file, if one was opened.
func (lW *LogWriter) Close() error {
	if lW.logfile == nil {
		return nil
	}
	return lW.logfile.Close()
}

func (lW *LogWriter) IsVerbose() bool {
	return (lW.verbosity > 0)
}

func (lW *LogWriter) VerboseLevel(v int) bool {
	return (v <= lW.verbosity)
}

func (lW *LogWriter) Printf(format string, v ...any) {
	lW.logger.Printf(format, v...)
}
