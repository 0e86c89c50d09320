package main

import (
	"github.com/spf13/cobra"

	"github.com/hazadus/go-slicer/internal/tui"
)

// createTUICommand создает команду tui с привязкой к экземпляру приложения
func (app *Application) createTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch TUI (Terminal User Interface)",
		Long:  `Launch interactive terminal user interface for managing and slicing recordings.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Создаем экземпляр TUI приложения
			tuiApp := tui.NewApp(app.Data, app.SaveData)

			// Запускаем TUI
			return tuiApp.Run()
		},
	}
}
