// Package uploader предоставляет функционал для выгрузки нарезанных
// фрагментов в S3 хранилище
package uploader

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/hazadus/go-slicer/internal/data"
	"github.com/hazadus/go-slicer/internal/export"
	"github.com/hazadus/go-slicer/internal/s3"
)

// Service управляет процессом выгрузки фрагментов проекта
type Service struct {
	s3Uploader *s3.Uploader
	appData    *data.AppData

	// byteProgress (если задан) получает число прочитанных байт
	// текущего файла во время выгрузки
	byteProgress func(int64)
}

// NewService создает новый сервис выгрузки
func NewService(s3Uploader *s3.Uploader, appData *data.AppData) *Service {
	return &Service{
		s3Uploader: s3Uploader,
		appData:    appData,
	}
}

// UploadSlices выгружает экспортированные фрагменты проекта в S3 и
// возвращает URL в порядке фрагментов. Колбэк progress (если задан)
// вызывается после каждого файла.
func (s *Service) UploadSlices(ctx context.Context, project *data.Project, slices []export.Result, progress func(done, total int)) ([]string, error) {
	if len(slices) == 0 {
		return nil, fmt.Errorf("нет фрагментов для выгрузки")
	}

	urls := make([]string, 0, len(slices))
	for i, slice := range slices {
		url, err := s.uploadOne(ctx, project, slice)
		if err != nil {
			return urls, fmt.Errorf("ошибка выгрузки фрагмента %d: %w", i+1, err)
		}
		urls = append(urls, url)

		if progress != nil {
			progress(i+1, len(slices))
		}
	}
	return urls, nil
}

// SetByteProgress задает колбэк побайтового прогресса выгрузки
func (s *Service) SetByteProgress(fn func(int64)) {
	s.byteProgress = fn
}

// uploadOne выгружает один файл фрагмента
func (s *Service) uploadOne(ctx context.Context, project *data.Project, slice export.Result) (string, error) {
	file, err := os.Open(slice.Path)
	if err != nil {
		return "", fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("ошибка получения информации о файле: %w", err)
	}

	// Оборачиваем reader для отслеживания прогресса
	var reader io.Reader = file
	if s.byteProgress != nil {
		reader = &ProgressReader{
			Reader:     file,
			Size:       stat.Size(),
			OnProgress: s.byteProgress,
		}
	}

	key := SliceKey(project.Title, slice.Path)
	url, err := s.s3Uploader.UploadFile(ctx, reader, key)
	if err != nil {
		return "", err
	}
	return url, nil
}

// SaveSliceURLs сохраняет URL выгруженных фрагментов в данные проекта
func (s *Service) SaveSliceURLs(projectID int, urls []string) error {
	project, err := s.appData.ProjectByID(projectID)
	if err != nil {
		return err
	}
	project.SliceURLs = urls
	return nil
}

// SliceKey формирует ключ фрагмента в S3: slices/<проект>/<файл>
func SliceKey(projectTitle, slicePath string) string {
	return fmt.Sprintf("slices/%s/%s", export.SanitizeFileName(projectTitle), filepath.Base(slicePath))
}

// ProgressReader структура для отслеживания прогресса чтения
type ProgressReader struct {
	io.Reader
	Size       int64
	OnProgress func(int64)
	bytesRead  int64
}

func (pr *ProgressReader) Read(p []byte) (n int, err error) {
	n, err = pr.Reader.Read(p)
	pr.bytesRead += int64(n)
	if pr.OnProgress != nil {
		pr.OnProgress(pr.bytesRead)
	}
	return n, err
}

// FormatFileSize форматирует размер файла в читаемом виде
func FormatFileSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// FormatDuration форматирует длительность времени
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
