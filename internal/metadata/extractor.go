// Package metadata предоставляет функционал для извлечения метаданных из аудио файлов
package metadata

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"github.com/gopxl/beep/mp3"
)

// TrackInfo хранит метаданные аудиозаписи
type TrackInfo struct {
	Artist string
	Title  string
	Album  string
}

// FileInfo содержит информацию о файле
type FileInfo struct {
	Size     int64
	Duration time.Duration
}

// Seconds возвращает длительность в секундах (формат движка нарезки)
func (fi *FileInfo) Seconds() float64 {
	return fi.Duration.Seconds()
}

// Extractor извлекает метаданные из аудио файлов
type Extractor struct{}

// NewExtractor создает новый экстрактор метаданных
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractFromReader извлекает метаданные из io.Reader
func (e *Extractor) ExtractFromReader(reader io.ReadSeeker, source string) TrackInfo {
	// Сбрасываем reader в начало
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return e.defaultInfo(source)
	}

	m, err := tag.ReadFrom(reader)
	if err != nil {
		return e.defaultInfo(source)
	}

	info := TrackInfo{
		Artist: m.Artist(),
		Title:  m.Title(),
		Album:  m.Album(),
	}
	if info.Title == "" {
		return e.defaultInfo(source)
	}
	return info
}

// ExtractFromFile извлекает метаданные из файла
func (e *Extractor) ExtractFromFile(filePath string) TrackInfo {
	file, err := os.Open(filePath)
	if err != nil {
		return e.defaultInfo(filePath)
	}
	defer file.Close()

	return e.ExtractFromReader(file, filePath)
}

// GetFileInfo получает размер файла и длительность записи. Длительность
// вычисляется декодированием MP3: она нужна движку нарезки до начала
// воспроизведения.
func (e *Extractor) GetFileInfo(filePath string) (*FileInfo, error) {
	stat, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения информации о файле: %w", err)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	streamer, format, err := mp3.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("ошибка декодирования MP3: %w", err)
	}
	defer streamer.Close()

	return &FileInfo{
		Size:     stat.Size(),
		Duration: format.SampleRate.D(streamer.Len()),
	}, nil
}

// defaultInfo возвращает метаданные по умолчанию на основе имени файла
func (e *Extractor) defaultInfo(source string) TrackInfo {
	fileName := filepath.Base(source)
	nameWithoutExt := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	// Пытаемся разобрать имя файла в формате "Artist - Title"
	parts := strings.Split(nameWithoutExt, " - ")
	if len(parts) >= 2 {
		return TrackInfo{
			Artist: strings.TrimSpace(parts[0]),
			Title:  strings.TrimSpace(strings.Join(parts[1:], " - ")),
		}
	}

	// Если не удалось разобрать, используем имя файла как название
	return TrackInfo{
		Artist: "Unknown Artist",
		Title:  nameWithoutExt,
	}
}
