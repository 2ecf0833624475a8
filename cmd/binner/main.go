package main

import (
	"flag"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"binner/internal/app"
	"binner/internal/domain"
	"binner/internal/infrastructure"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")

	var width, origin float64
	flag.Float64Var(&width, "w", 1.0, "Bin width")
	flag.Float64Var(&width, "width", 1.0, "Bin width")
	flag.Float64Var(&origin, "s", 0.0, "Bin edge start")
	flag.Float64Var(&origin, "origin", 0.0, "Bin edge start")
	decimals := flag.Int("decimals", -1, "Decimal places for bin centers (-1 = shortest)")
	logLevel := flag.String("log-level", "", "Log level")
	logFile := flag.String("log-file", "", "Log file")
	flag.Parse()

	logger := initLogger("info", "")
	defer logger.Sync()

	configReader := infrastructure.NewYAMLConfigReader(logger)
	config, err := configReader.ReadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to read config", zap.Error(err))
	}

	// Flags set on the command line win over the config file.
	applyCommandLineFlags(config, width, origin, *decimals, *logLevel, *logFile)

	logger = initLogger(config.LogLevel, config.LogFile)
	defer logger.Sync()

	in, err := openInput(flag.Arg(0))
	if err != nil {
		logger.Fatal("Failed to open input",
			zap.String("path", flag.Arg(0)),
			zap.Error(err))
	}
	defer in.Close()

	reader := infrastructure.NewStreamValueReader(logger)
	writer := infrastructure.NewTSVBinWriter(logger, infrastructure.DecimalsFormatter(config.Decimals))
	binner := app.NewBinner(logger, config, reader, writer)

	if err := binner.Run(in, os.Stdout); err != nil {
		logger.Fatal("Binning failed", zap.Error(err))
	}
}

func applyCommandLineFlags(config *domain.Config, width, origin float64, decimals int, logLevel, logFile string) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "w", "width":
			config.BinWidth = width
		case "s", "origin":
			config.BinOrigin = origin
		case "decimals":
			config.Decimals = decimals
		case "log-level":
			config.LogLevel = logLevel
		case "log-file":
			config.LogFile = logFile
		}
	})
}

// openInput returns the positional input file, or stdin for "" and "-".
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// initLogger initializes the logger with the specified level and log file name.
func initLogger(level string, logfileName string) *zap.Logger {
	config := zap.NewProductionConfig()

	switch level {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	outputPath := []string{"stderr"}
	if logfileName != "" {
		outputPath = []string{logfileName}
	}

	config.OutputPaths = outputPath
	config.ErrorOutputPaths = outputPath
	config.EncoderConfig.TimeKey = "t"
	config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	config.DisableCaller = false

	logger, _ := config.Build()
	return logger
}
