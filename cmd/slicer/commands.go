package main

import (
	"context"

	"github.com/spf13/cobra"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "slicer",
		Short: "A command line tool to slice mp3 recordings into fragments",
		Long:  `A command line tool to slice long mp3 recordings into labeled fragments with an interactive TUI.`,
	}

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createOpenCommand(ctx))
	rootCmd.AddCommand(app.createTUICommand())
	rootCmd.AddCommand(app.createListCommand())
	rootCmd.AddCommand(app.createFetchCommand(ctx))
	rootCmd.AddCommand(app.createExportCommand())
	rootCmd.AddCommand(app.createUploadCommand(ctx))
	rootCmd.AddCommand(app.createDeleteCommand(ctx))

	return rootCmd
}
