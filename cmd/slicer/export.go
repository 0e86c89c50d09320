package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-slicer/internal/data"
	"github.com/hazadus/go-slicer/internal/engine"
	"github.com/hazadus/go-slicer/internal/export"
)

// createExportCommand создает команду export с привязкой к экземпляру приложения
func (app *Application) createExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export [project id]",
		Short: "Export project slices to WAV files",
		Long:  `Cut the project recording into fragments and save each one as a WAV file in the configured export directory.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("неверный ID проекта: %s", args[0])
			}
			_, err = app.exportProject(id)
			return err
		},
	}
}

// exportProject нарезает запись проекта на WAV фрагменты
func (app *Application) exportProject(id int) ([]export.Result, error) {
	project, err := app.Data.ProjectByID(id)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска проекта: %w", err)
	}

	slots := projectSlots(project)

	fmt.Printf("✂️  Экспортируем проект #%d: %s - %s\n", project.ID, project.Artist, project.Title)
	fmt.Printf("   Фрагментов: %d\n", len(slots))
	fmt.Printf("   Директория: %s\n\n", app.Config.ExportDir)

	results, err := export.Slices(
		project.AudioPath,
		project.Title,
		app.Config.ExportDir,
		slots,
		func(done, total int) {
			fmt.Printf("\r📊 Прогресс: %d / %d", done, total)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка экспорта: %w", err)
	}

	fmt.Printf("\n✅ Экспортировано фрагментов: %d\n", len(results))
	for _, result := range results {
		fmt.Printf("   %s\n", result.Path)
	}

	return results, nil
}

// projectSlots восстанавливает фрагменты проекта из сохраненных
// точек разреза и меток
func projectSlots(project *data.Project) []engine.Slot {
	slots := engine.DeriveSlots(project.Duration, project.Splits, nil)
	for i := range slots {
		if i < len(project.Labels) && project.Labels[i] != "" {
			slots[i].Label = project.Labels[i]
		}
	}
	return slots
}
