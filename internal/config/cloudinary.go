package config

import (
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
)

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

func DefaultCloudinaryConfig() *CloudinaryConfig {
	return &CloudinaryConfig{
		CloudName: getEnvWithDefault("CLOUDINARY_CLOUD_NAME", ""),
		APIKey:    getEnvWithDefault("CLOUDINARY_API_KEY", ""),
		APISecret: getEnvWithDefault("CLOUDINARY_API_SECRET", ""),
		Folder:    getEnvWithDefault("CLOUDINARY_ROOM_FOLDER", "rooms"),
	}
}

// Enabled reports whether credentials were provided. Image upload is disabled without them.
func (c *CloudinaryConfig) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

func (c *CloudinaryConfig) GetClient() (*cloudinary.Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(c.CloudName, c.APIKey, c.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init failed: %w", err)
	}
	return cld, nil
}
