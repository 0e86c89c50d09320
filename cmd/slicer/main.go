package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/hazadus/go-slicer/internal/config"
	"github.com/hazadus/go-slicer/internal/data"
)

const (
	defaultConfigPath   = "~/.slicer"
	defaultDataFilePath = "~/.slicer_data.yaml"
)

// Application объединяет конфигурацию и данные приложения,
// команды получают его как общий контекст
type Application struct {
	Config *config.Config
	Data   *data.AppData
}

// SaveData сохраняет данные приложения в файл по умолчанию
func (app *Application) SaveData() error {
	return app.Data.SaveData(defaultDataFilePath)
}

func main() {
	ctx := context.Background()

	// Загружаем конфигурацию
	cfg, err := config.LoadConfig(defaultConfigPath)
	if err != nil {
		// Без файла конфигурации работаем со значениями по умолчанию,
		// S3 и скачивание потребуют заполненного файла
		if !os.IsNotExist(err) {
			log.Fatalf("Ошибка загрузки конфигурации: %v", err)
		}
		cfg = config.Default()
	}

	// Загружаем данные приложения
	appData := data.NewAppData()
	if err := appData.LoadData(defaultDataFilePath); err != nil {
		log.Fatalf("Ошибка загрузки данных: %v", err)
	}

	app := &Application{
		Config: cfg,
		Data:   appData,
	}

	rootCmd := app.createRootCommand(ctx)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
