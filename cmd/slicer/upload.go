package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-slicer/internal/s3"
	"github.com/hazadus/go-slicer/internal/uploader"
)

// createUploadCommand создает команду upload с привязкой к экземпляру приложения
func (app *Application) createUploadCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "upload [project id]",
		Short: "Export project slices and upload them to S3 storage",
		Long:  `Export the project fragments to WAV files and upload them to S3 storage, saving the resulting URLs.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("неверный ID проекта: %s", args[0])
			}

			// Создаем контекст с таймаутом для загрузки (10 минут)
			uploadCtx, cancel := context.WithTimeout(ctx, 10*time.Minute)
			defer cancel()
			return app.uploadProject(uploadCtx, id)
		},
	}
}

// uploadProject экспортирует фрагменты проекта и загружает их в S3
func (app *Application) uploadProject(ctx context.Context, id int) error {
	project, err := app.Data.ProjectByID(id)
	if err != nil {
		return fmt.Errorf("ошибка поиска проекта: %w", err)
	}

	// Сначала экспортируем фрагменты
	results, err := app.exportProject(id)
	if err != nil {
		return err
	}

	// Создаем S3 uploader
	s3Config := &s3.Config{
		Region:     app.Config.AwsRegion,
		AccessKey:  app.Config.AwsAccessKey,
		SecretKey:  app.Config.AwsSecretKey,
		Endpoint:   app.Config.AwsEndpoint,
		BucketName: app.Config.AwsBucketName,
	}

	s3Uploader, err := s3.NewUploader(s3Config)
	if err != nil {
		return fmt.Errorf("ошибка создания S3 uploader: %w", err)
	}

	// Создаем сервис загрузки
	uploadService := uploader.NewService(s3Uploader, app.Data)
	uploadService.SetByteProgress(func(bytesRead int64) {
		fmt.Printf("\r📊 Загружено: %s", uploader.FormatFileSize(bytesRead))
	})

	fmt.Printf("\n📤 Загружаем фрагменты в S3 (бакет %s):\n", app.Config.AwsBucketName)

	urls, err := uploadService.UploadSlices(ctx, project, results, func(done, total int) {
		fmt.Printf("\n   Фрагмент %d / %d\n", done, total)
	})
	if err != nil {
		return fmt.Errorf("ошибка загрузки фрагментов: %w", err)
	}

	// Проверяем, не была ли операция отменена
	if ctx.Err() != nil {
		return fmt.Errorf("операция отменена: %w", ctx.Err())
	}

	// Сохраняем URL фрагментов в данных проекта
	if err := uploadService.SaveSliceURLs(project.ID, urls); err != nil {
		return fmt.Errorf("ошибка обновления данных проекта: %w", err)
	}

	if err := app.SaveData(); err != nil {
		return fmt.Errorf("ошибка сохранения данных: %w", err)
	}

	fmt.Printf("\n✅ Фрагменты успешно загружены в S3!\n")
	for _, url := range urls {
		fmt.Printf("   %s\n", url)
	}
	return nil
}
