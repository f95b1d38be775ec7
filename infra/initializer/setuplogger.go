package initializer

import (
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

func setupLogger(cfg *config.Log) *slog.Logger {
	logger := newLogger(cfg, os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
	slog.SetDefault(logger)
	return logger
}

// newLogger builds a charmbracelet logger behind the slog API. With the
// "auto" format, text is used on a terminal and JSON otherwise.
func newLogger(cfg *config.Log, w io.Writer, isTTY bool) *slog.Logger {
	styles := log.DefaultStyles()
	infoTxtColor := lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warnTxtColor := lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	errorTxtColor := lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	debugTxtColor := lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}

	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Padding(0, 1).
		Foreground(errorTxtColor)
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Bold(true).
		Padding(0, 1).
		Foreground(infoTxtColor)
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Bold(true).
		Padding(0, 1).
		Foreground(warnTxtColor)
	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Bold(true).
		Padding(0, 1).
		Foreground(debugTxtColor)

	for key, color := range map[string]lipgloss.AdaptiveColor{
		"error":      errorTxtColor,
		"account_id": infoTxtColor,
		"person_id":  infoTxtColor,
		"request_id": debugTxtColor,
		"handler":    debugTxtColor,
	} {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(color)
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}

	formatter := log.TextFormatter
	switch cfg.Format {
	case "json":
		formatter = log.JSONFormatter
	case "text":
	default:
		if !isTTY {
			formatter = log.JSONFormatter
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(styles)

	return slog.New(logger)
}
