package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// EnvFileVar points at an alternate config file when no .env sits next
	// to the executable.
	EnvFileVar = "FLOATING_DICTIONARY_ENV"

	DefaultTargetLang = "th"
	DefaultOCRLang    = "auto"
)

type LoadOptions struct {
	TargetLangOverride string
	OCRLangOverride    string
}

type Config struct {
	// TargetLang is the translation target as a public short code ("th", "en", ...).
	TargetLang string
	// OCRLang is the OCR language hint; "auto" means every supported
	// language except the target.
	OCRLang string
	// TessdataDir is handed to the OCR engine explicitly instead of relying
	// on the process environment.
	TessdataDir       string
	EnableFileLogging bool
	CopyToClipboard   bool
	HTTPTimeoutSec    int
}

func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{})
}

func LoadWithOptions(opts LoadOptions) (*Config, error) {
	// Load configuration from sources in priority order:
	// 1) .env in the application (executable) directory
	// 2) If not found, use FLOATING_DICTIONARY_ENV as a path to a config file
	if envPath := resolveEnvPath(); envPath != "" {
		_ = godotenv.Load(envPath)
	}

	httpTimeoutSec := 10
	if v := os.Getenv("HTTP_TIMEOUT_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			httpTimeoutSec = n
		}
	}

	cfg := &Config{
		TargetLang:        resolveLang(opts.TargetLangOverride, "TARGET_LANG", DefaultTargetLang),
		OCRLang:           resolveLang(opts.OCRLangOverride, "OCR_LANG", DefaultOCRLang),
		TessdataDir:       os.Getenv("TESSDATA_DIR"),
		EnableFileLogging: strings.ToLower(os.Getenv("ENABLE_FILE_LOGGING")) == "true",
		CopyToClipboard:   strings.ToLower(os.Getenv("COPY_TO_CLIPBOARD")) == "true",
		HTTPTimeoutSec:    httpTimeoutSec,
	}

	return cfg, nil
}

func resolveEnvPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}

	execDir := filepath.Dir(execPath)
	exeEnv := filepath.Join(execDir, ".env")
	if _, err := os.Stat(exeEnv); err == nil {
		return exeEnv
	}

	if alt := os.Getenv(EnvFileVar); alt != "" {
		if _, err := os.Stat(alt); err == nil {
			return alt
		}
	}

	return ""
}

func resolveLang(override, envKey, defaultValue string) string {
	if v := strings.TrimSpace(override); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		return v
	}
	return defaultValue
}
