package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-slicer/internal/data"
	"github.com/hazadus/go-slicer/internal/metadata"
	"github.com/hazadus/go-slicer/internal/streaming"
	"github.com/hazadus/go-slicer/internal/tui"
	"github.com/hazadus/go-slicer/internal/utils"
)

// createOpenCommand создает команду open с привязкой к экземпляру приложения
func (app *Application) createOpenCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "open [mp3 file or URL]",
		Short: "Open an mp3 recording for slicing",
		Long:  `Create (or reopen) a slicing project for an mp3 file or URL and launch the slicer TUI.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.openProject(ctx, args[0])
		},
	}
}

func (app *Application) openProject(ctx context.Context, source string) error {
	// Определяем локальный путь к аудио: URL сначала буферизуем во
	// временный файл, иначе перемотка по фрагментам не заработает
	audioPath, sourceURL, err := resolveAudio(ctx, source)
	if err != nil {
		return err
	}

	// Ищем существующий проект для этого файла
	project := app.Data.ProjectByAudioPath(audioPath)
	if project == nil && sourceURL != "" {
		// Для URL временный файл каждый раз новый, ищем по источнику
		project = projectBySourceURL(app.Data, sourceURL)
		if project != nil {
			project.AudioPath = audioPath
		}
	}

	if project == nil {
		project, err = app.registerProject(audioPath, sourceURL)
		if err != nil {
			return err
		}
		fmt.Printf("📦 Создан проект #%d: %s - %s (%s)\n",
			project.ID, project.Artist, project.Title,
			utils.FormatSeconds(project.Duration))
	} else {
		fmt.Printf("📂 Открываем проект #%d: %s - %s\n",
			project.ID, project.Artist, project.Title)
	}

	if err := app.SaveData(); err != nil {
		return fmt.Errorf("ошибка сохранения данных: %w", err)
	}

	// Запускаем TUI сразу на экране нарезки
	tuiApp := tui.NewApp(app.Data, app.SaveData)
	return tuiApp.RunProject(project)
}

// registerProject создает проект для аудиофайла: извлекает метаданные,
// длительность и размер файла
func (app *Application) registerProject(audioPath, sourceURL string) (*data.Project, error) {
	extractor := metadata.NewExtractor()

	fileInfo, err := extractor.GetFileInfo(audioPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения аудиофайла: %w", err)
	}

	trackInfo := extractor.ExtractFromFile(audioPath)

	project := data.Project{
		Title:     trackInfo.Title,
		Artist:    trackInfo.Artist,
		AudioPath: audioPath,
		SourceURL: sourceURL,
		Duration:  fileInfo.Seconds(),
		FileSize:  fileInfo.Size,
	}

	id := app.Data.AddProject(project)
	return app.Data.ProjectByID(id)
}

// resolveAudio возвращает локальный путь к аудио для источника.
// Для URL возвращает также исходный адрес.
func resolveAudio(ctx context.Context, source string) (audioPath, sourceURL string, err error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		fmt.Printf("🌐 Загружаем файл по URL: %s\n", source)
		path, err := streaming.DownloadToTemp(ctx, source)
		if err != nil {
			return "", "", fmt.Errorf("ошибка загрузки по URL: %w", err)
		}
		return path, source, nil
	}

	if _, err := os.Stat(source); err != nil {
		return "", "", fmt.Errorf("файл не найден: %s", source)
	}
	return source, "", nil
}

// projectBySourceURL ищет проект по URL источника
func projectBySourceURL(appData *data.AppData, sourceURL string) *data.Project {
	for i := range appData.Projects {
		if appData.Projects[i].SourceURL == sourceURL {
			return &appData.Projects[i]
		}
	}
	return nil
}
