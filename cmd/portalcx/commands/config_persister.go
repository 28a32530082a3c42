package commands

import (
	"sync"

	"github.com/portalcx/portalcx-go/internal/constants"
	"github.com/spf13/viper"
)

// ConfigPersister implements the auth.ConfigPersister interface.
type ConfigPersister struct {
	mutex sync.Mutex
}

// NewConfigPersister creates a new config persister.
func NewConfigPersister() *ConfigPersister {
	return &ConfigPersister{}
}

// UpdateToken stores token in the config file. The base URL is recorded
// alongside so the token is not reused against another API.
func (p *ConfigPersister) UpdateToken(baseURL, token string) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	// Load current config
	config := loadConfig()

	if config.APIBaseURL == "" {
		config.APIBaseURL = baseURL
	}

	config.Token = token
	viper.Set(constants.ConfigKeyToken, token)

	// Save the updated config
	return saveConfigStruct(config)
}
