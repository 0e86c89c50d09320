package main

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-slicer/internal/s3"
)

// createDeleteCommand создает команду delete с привязкой к экземпляру приложения
func (app *Application) createDeleteCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [project id]",
		Short: "Delete a project by ID",
		Long:  `Delete a slicing project from local data and its uploaded slices from S3 storage.`,
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Printf("❌ Ошибка: неверный ID '%s'. ID должен быть числом.\n", args[0])
				return
			}
			app.deleteProject(ctx, id)
		},
	}
}

func (app *Application) deleteProject(ctx context.Context, id int) {
	// Находим проект по ID
	project, err := app.Data.ProjectByID(id)
	if err != nil {
		fmt.Printf("❌ Ошибка: %v\n", err)
		return
	}

	fmt.Printf("🗑️  Удаляем проект: %s - %s\n", project.Artist, project.Title)

	// Удаляем загруженные фрагменты из S3, если они есть
	if len(project.SliceURLs) > 0 {
		if err := app.deleteSlicesFromS3(ctx, project.SliceURLs); err != nil {
			fmt.Printf("⚠️  Предупреждение: не удалось удалить фрагменты из S3: %v\n", err)
			// Продолжаем выполнение, даже если не удалось удалить из S3
		} else {
			fmt.Printf("✅ Из S3 удалено фрагментов: %d\n", len(project.SliceURLs))
		}
	}

	// Удаляем проект из локальных данных
	if err := app.Data.DeleteProjectByID(id); err != nil {
		fmt.Printf("❌ Ошибка удаления проекта из данных: %v\n", err)
		return
	}

	// Сохраняем обновленные данные
	if err := app.SaveData(); err != nil {
		fmt.Printf("❌ Ошибка сохранения данных: %v\n", err)
		return
	}

	fmt.Println("✅ Проект успешно удален")
}

func (app *Application) deleteSlicesFromS3(ctx context.Context, sliceURLs []string) error {
	// Создаем S3 uploader
	s3Config := &s3.Config{
		Region:     app.Config.AwsRegion,
		AccessKey:  app.Config.AwsAccessKey,
		SecretKey:  app.Config.AwsSecretKey,
		Endpoint:   app.Config.AwsEndpoint,
		BucketName: app.Config.AwsBucketName,
	}

	uploader, err := s3.NewUploader(s3Config)
	if err != nil {
		return fmt.Errorf("ошибка создания S3 клиента: %w", err)
	}

	for _, sliceURL := range sliceURLs {
		// Извлекаем ключ из URL
		key, err := extractKeyFromURL(sliceURL)
		if err != nil {
			return fmt.Errorf("ошибка извлечения ключа из URL: %w", err)
		}

		// Удаляем файл из S3
		if err := uploader.DeleteFile(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// extractKeyFromURL извлекает ключ файла из URL S3
func extractKeyFromURL(fileURL string) (string, error) {
	parsedURL, err := url.Parse(fileURL)
	if err != nil {
		return "", fmt.Errorf("неверный URL: %w", err)
	}

	// Извлекаем путь без начального слеша и удаляем bucket name
	pathSegments := strings.TrimPrefix(parsedURL.Path, "/")

	// URL обычно имеет формат: endpoint/bucket/key
	// Нам нужно извлечь только key (все после bucket name)
	parts := strings.SplitN(pathSegments, "/", 2)
	if len(parts) < 2 {
		return "", fmt.Errorf("неверный формат URL S3")
	}

	// Возвращаем все части после bucket name
	return parts[1], nil
}
