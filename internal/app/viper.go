package app

import (
	"fmt"
	"strings"

	"github.com/ruddnjs9605/rank-my-luck/internal/config"
	"github.com/spf13/viper"
)

// configHolder keeps the unmarshalled config shared by all providers
type configHolder struct {
	config *config.Config
}

func (a *application) setupViper(path string) error {
	env := config.GetEnvironment()

	viper.SetConfigName(fmt.Sprintf("config.%s", env))
	viper.SetConfigType("yml")

	viper.AddConfigPath(path)

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvPrefix("RANK_MY_LUCK")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("could not read config file: %w", err)
	}

	var c config.Config
	if err := viper.Unmarshal(&c); err != nil {
		return err
	}
	a.cfg.config = &c

	fmt.Println("[x] Config loaded successfully")
	return nil
}
