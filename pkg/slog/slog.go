package slog

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"davsh/pkg/escseq"
)

const levelDebug = 0
const levelInfo = 1
const levelWarn = 2
const levelError = 3
const levelOff = 4
const separator = " - "

type Logger struct {
	logLevel int
	colorOn  bool
	logger   *log.Logger
}

func NewLogger(prefix string) *Logger {
	return &Logger{
		logLevel: levelInfo,
		colorOn:  true,
		logger:   log.New(os.Stdout, prefix, log.LstdFlags|log.Lmsgprefix),
	}
}

func (l *Logger) WithDebug() {
	l.logLevel = levelDebug
}

func (l *Logger) WithInfo() {
	l.logLevel = levelInfo
}

func (l *Logger) WithWarn() {
	l.logLevel = levelWarn
}

func (l *Logger) WithError() {
	l.logLevel = levelError
}

func (l *Logger) WithColorless() {
	l.colorOn = false
}

func (l *Logger) SetOutput(w io.Writer) {
	l.logger.SetOutput(w)
}

func (l *Logger) SetLevel(verbosity string) error {
	switch strings.ToUpper(verbosity) {
	case "DEBUG":
		l.WithDebug()
	case "INFO":
		l.WithInfo()
	case "WARN":
		l.WithWarn()
	case "ERROR":
		l.WithError()
	case "OFF":
		l.logLevel = levelOff
	default:
		return fmt.Errorf("unknown verbosity level: %s", verbosity)
	}
	return nil
}

func (l *Logger) Debugf(t string, args ...interface{}) {
	if l.logLevel == levelDebug {
		l.logger.Printf(colorDebug(l.colorOn)+separator+t, args...)
	}
}

func (l *Logger) Infof(t string, args ...interface{}) {
	if l.logLevel <= levelInfo {
		l.logger.Printf(colorInfo(l.colorOn)+separator+t, args...)
	}
}

func (l *Logger) Warnf(t string, args ...interface{}) {
	if l.logLevel <= levelWarn {
		l.logger.Printf(colorWarn(l.colorOn)+separator+t, args...)
	}
}

func (l *Logger) Errorf(t string, args ...interface{}) {
	if l.logLevel <= levelError {
		l.logger.Printf(colorError(l.colorOn)+separator+t, args...)
	}
}

func (l *Logger) Fatalf(t string, args ...interface{}) {
	l.logger.Fatalf(colorFatal(l.colorOn)+separator+t, args...)
}

func colorDebug(colorOn bool) string {
	if colorOn {
		return escseq.BlueBrightBoldText("DEBU")
	}
	return "DEBU"
}

func colorInfo(colorOn bool) string {
	if colorOn {
		return escseq.CyanBoldText("INFO")
	}
	return "INFO"
}

func colorWarn(colorOn bool) string {
	if colorOn {
		return escseq.YellowBrightBoldText("WARN")
	}
	return "WARN"
}

func colorError(colorOn bool) string {
	if colorOn {
		return escseq.RedBoldText("ERRO")
	}
	return "ERRO"
}

func colorFatal(colorOn bool) string {
	if colorOn {
		return escseq.RedBoldText("FATA")
	}
	return "FATA"
}
