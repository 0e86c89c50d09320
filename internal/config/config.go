// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config структура для хранения конфигурации приложения
type Config struct {
	AwsBucketName string `yaml:"aws_bucket_name"`
	AwsAccessKey  string `yaml:"aws_access_key"`
	AwsSecretKey  string `yaml:"aws_secret_key"`
	AwsRegion     string `yaml:"aws_region"`
	AwsEndpoint   string `yaml:"aws_endpoint"`
	DownloadDir   string `yaml:"download_dir"` // Куда складывать скачанное аудио
	ExportDir     string `yaml:"export_dir"`   // Куда экспортировать нарезанные фрагменты
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

// LoadConfig загружает конфигурацию приложения из указанного файла
func LoadConfig(filePath string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	path := strings.Replace(filePath, "~", home, 1)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}

	applyDefaults(config)

	return config, nil
}

// applyDefaults заполняет незаданные поля значениями по умолчанию
// и раскрывает тильду в путях
func applyDefaults(config *Config) {
	if config.DownloadDir == "" {
		config.DownloadDir = "~/Downloads"
	}
	if config.ExportDir == "" {
		config.ExportDir = "~/Music/slices"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	config.DownloadDir = strings.Replace(config.DownloadDir, "~", home, 1)
	config.ExportDir = strings.Replace(config.ExportDir, "~", home, 1)
}
