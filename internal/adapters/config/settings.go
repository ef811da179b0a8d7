package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"go.trai.ch/hellobundle/internal/core/domain"
	"go.trai.ch/zerr"
)

// EnvPrefix is the prefix of environment variables read as settings.
const EnvPrefix = "HELLOBUNDLE_"

// LoadSettings resolves the invocation settings.
// Precedence (highest to lowest): changed flags > environment > settings file > defaults.
// The settings file is .hellobundle.yaml in the working directory and is optional.
func LoadSettings(flags *pflag.FlagSet) (domain.Settings, error) {
	k := koanf.New(".")
	defaults := domain.DefaultSettings()

	if err := k.Load(confmap.Provider(map[string]any{
		"root":        defaults.Root,
		"manifest":    defaults.Manifest,
		"log-format":  defaults.LogFormat,
		"output-mode": defaults.OutputMode,
	}, "."), nil); err != nil {
		return domain.Settings{}, zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error())
	}

	if _, err := os.Stat(domain.SettingsFileName); err == nil {
		if err := k.Load(file.Provider(domain.SettingsFileName), yaml.Parser()); err != nil {
			return domain.Settings{}, zerr.With(
				zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error()), "path", domain.SettingsFileName)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return domain.Settings{}, zerr.With(
			zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error()), "path", domain.SettingsFileName)
	}

	// HELLOBUNDLE_LOG_FORMAT -> log-format
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", "-")
	}), nil); err != nil {
		return domain.Settings{}, zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error())
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			return f.Name, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return domain.Settings{}, zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error())
		}
	}

	var settings domain.Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return domain.Settings{}, zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error())
	}

	if err := validateSettings(settings); err != nil {
		return domain.Settings{}, err
	}

	return settings, nil
}

func validateSettings(s domain.Settings) error {
	switch s.LogFormat {
	case domain.LogFormatPretty, domain.LogFormatJSON:
	default:
		return zerr.With(zerr.With(domain.ErrInvalidSettings, "key", "log-format"), "value", s.LogFormat)
	}

	switch s.OutputMode {
	case domain.OutputModeAuto, domain.OutputModeTUI, domain.OutputModeLinear, domain.OutputModeQuiet:
	default:
		return zerr.With(zerr.With(domain.ErrInvalidSettings, "key", "output-mode"), "value", s.OutputMode)
	}

	if strings.TrimSpace(s.Root) == "" {
		return zerr.With(domain.ErrInvalidSettings, "key", "root")
	}

	return nil
}
