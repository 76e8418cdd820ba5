package config

import (
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/opensearch-project/opensearch-go/v2"
)

type OpenSearchConfig struct {
	Host      string
	Port      string
	Username  string
	Password  string
	RoomIndex string
}

func DefaultOpenSearchConfig() *OpenSearchConfig {
	return &OpenSearchConfig{
		Host:      getEnvWithDefault("OPENSEARCH_HOST", "localhost"),
		Port:      getEnvWithDefault("OPENSEARCH_PORT", "9200"),
		Username:  getEnvWithDefault("OPENSEARCH_USERNAME", ""),
		Password:  getEnvWithDefault("OPENSEARCH_PASSWORD", ""),
		RoomIndex: getEnvWithDefault("OPENSEARCH_ROOM_INDEX", "rooms"),
	}
}

func (c *OpenSearchConfig) GetClient() (*opensearch.Client, error) {
	cfg := opensearch.Config{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true,
			},
		},
		Addresses: []string{
			fmt.Sprintf("http://%s:%s", c.Host, c.Port),
		},
	}

	if c.Username != "" && c.Password != "" {
		cfg.Username = c.Username
		cfg.Password = c.Password
	}

	return opensearch.NewClient(cfg)
}
