package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/tartampluch/priroda-razuma/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// main is the application entry point. runMain returns an exit code so
// that deferred calls run before os.Exit.
func main() {
	os.Exit(runMain(os.Args[1:]))
}

// runMain wires the signal-aware context and executes the command tree.
func runMain(args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a := &app{stdin: os.Stdin}
	root := a.rootCommand()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	a.close()
	if err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}
	slog.Debug(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// printVersion outputs the build information.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyCommit, config.Commit),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging installs the default JSON logger writing to stderr and to a
// rotated log file. The returned closer is nil when no file could be opened.
func setupLogging(s config.LogSettings, debugMode bool) io.Closer {
	writers := []io.Writer{os.Stderr}

	var file *lumberjack.Logger
	logPath := s.File
	if logPath == "" {
		if p, err := defaultLogPath(); err == nil {
			logPath = p
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, p, err)
		}
	}
	if logPath != "" {
		file = &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    config.LogMaxSizeMB,
			MaxBackups: config.LogMaxBackups,
			MaxAge:     config.LogMaxAgeDays,
		}
		writers = append(writers, file)
	}

	level := slog.LevelInfo
	if s.Level != "" {
		if err := level.UnmarshalText([]byte(s.Level)); err != nil {
			level = slog.LevelInfo
		}
	}
	if debugMode {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}))
	slog.SetDefault(logger)

	if file == nil {
		return nil
	}
	return file
}

// defaultLogPath determines the platform-specific cache directory for logs.
func defaultLogPath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}
	return filepath.Join(appDir, config.LogFileName), nil
}
