package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/cordialsys/walletfee/config/constants"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Search order: $WALLETFEE_CONFIG, then config.yaml in ".", ".." and $WALLETFEE_HOME.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if file := os.Getenv(constants.ConfigEnv); file != "" {
		v.SetConfigFile(file)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	v.AddConfigPath(constants.DefaultHome)
	return v
}

func isMissingConfig(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// yaml round trip so that yaml tags, not mapstructure tags, drive decoding
func reencode(src interface{}, dst interface{}) error {
	bz, err := yaml.Marshal(src)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(bz, dst)
}

// RequireConfig decodes the config file, or only one section of it, into dst.
// When defaults are given, a missing file is not an error: dst gets the defaults,
// and otherwise the file's values are merged over the defaults.
func RequireConfig(section string, dst interface{}, defaults interface{}) error {
	v := newViper()
	if err := v.ReadInConfig(); err != nil {
		if defaults == nil || !isMissingConfig(err) {
			return fmt.Errorf("could not read config file: %w", err)
		}
		logrus.WithField("reason", err.Error()).Debug("no config file, using defaults")
		return reencode(defaults, dst)
	}
	logrus.WithField("file", v.ConfigFileUsed()).Debug("loaded config")

	var err error
	if section != "" {
		// viper cannot decode a sub tree directly
		err = reencode(v.GetStringMap(section), dst)
	} else {
		err = reencode(v.AllSettings(), dst)
	}
	if err != nil {
		return fmt.Errorf("invalid config section %q: %w", section, err)
	}

	if defaults == nil {
		return nil
	}
	return ApplyDefaults(defaults, dst, dst)
}
