package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-slicer/internal/project"
	"github.com/hazadus/go-slicer/internal/uploader"
	"github.com/hazadus/go-slicer/internal/utils"
)

// createListCommand создает команду list с привязкой к экземпляру приложения
func (app *Application) createListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all slicing projects",
		Long:  `Display a list of all slicing projects stored in the application data.`,
		Run: func(_ *cobra.Command, _ []string) {
			app.listProjects()
		},
	}
}

func (app *Application) listProjects() {
	manager := project.NewManager(app.Data)
	projects := manager.ListProjects()

	if len(projects) == 0 {
		fmt.Println("📚 Проектов пока нет. Добавьте запись с помощью команды 'open'.")
		return
	}

	fmt.Printf("📚 Найдено проектов: %d\n\n", len(projects))

	// Выводим заголовок таблицы
	fmt.Printf("%-4s %-25s %-30s %-12s %-10s %-10s\n",
		"ID", "Исполнитель", "Название", "Длительность", "Фрагменты", "Размер")
	fmt.Println(strings.Repeat("-", 100))

	// Выводим каждый проект
	for _, p := range projects {
		duration := "N/A"
		if p.Duration > 0 {
			duration = utils.FormatSeconds(p.Duration)
		}

		fmt.Printf("%-4d %-25s %-30s %-12s %-10d %-10s\n",
			p.ID,
			utils.TruncateString(p.Artist, 23),
			utils.TruncateString(p.Title, 28),
			duration,
			project.SlotCount(p),
			uploader.FormatFileSize(p.FileSize),
		)
	}

	fmt.Println()
	fmt.Println("💡 Используйте 'slicer open [файл]' или 'slicer tui' для нарезки")
}
