// Package export сохраняет фрагменты нарезки в отдельные WAV файлы
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"

	"github.com/hazadus/go-slicer/internal/engine"
)

// Result описывает один экспортированный фрагмент
type Result struct {
	SlotIndex int
	Label     string
	Path      string
}

// Slices нарезает аудиофайл по фрагментам и сохраняет каждый в WAV файл
// в директории exportDir/<название проекта>. Возвращает список созданных
// файлов в порядке фрагментов. Колбэк progress (если задан) вызывается
// после каждого фрагмента.
func Slices(audioPath, projectTitle, exportDir string, slots []engine.Slot, progress func(done, total int)) ([]Result, error) {
	if len(slots) == 0 {
		return nil, fmt.Errorf("нет фрагментов для экспорта")
	}

	file, err := os.Open(audioPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	streamer, format, err := mp3.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("ошибка декодирования MP3: %w", err)
	}
	defer streamer.Close()

	// Создаем директорию проекта
	dir := filepath.Join(exportDir, SanitizeFileName(projectTitle))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("ошибка создания директории: %w", err)
	}

	results := make([]Result, 0, len(slots))
	for i, slot := range slots {
		path := filepath.Join(dir, SliceFileName(i, slot.Label))

		if err := encodeSlice(streamer, format, slot, path); err != nil {
			return results, fmt.Errorf("ошибка экспорта фрагмента %d: %w", i+1, err)
		}

		results = append(results, Result{
			SlotIndex: i,
			Label:     slot.Label,
			Path:      path,
		})
		if progress != nil {
			progress(i+1, len(slots))
		}
	}
	return results, nil
}

// encodeSlice вырезает один фрагмент из потока и кодирует его в WAV
func encodeSlice(streamer beep.StreamSeekCloser, format beep.Format, slot engine.Slot, path string) error {
	// Перематываем к началу фрагмента и берем ровно его длину в сэмплах
	start := format.SampleRate.N(secondsToDuration(slot.Start))
	length := format.SampleRate.N(secondsToDuration(slot.End - slot.Start))

	if err := streamer.Seek(start); err != nil {
		return fmt.Errorf("ошибка перемотки: %w", err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ошибка создания файла: %w", err)
	}
	defer out.Close()

	if err := wav.Encode(out, beep.Take(length, streamer), format); err != nil {
		os.Remove(path)
		return fmt.Errorf("ошибка кодирования WAV: %w", err)
	}
	return nil
}

// SliceFileName строит имя файла фрагмента: "01 - Метка.wav"
func SliceFileName(slotIndex int, label string) string {
	return fmt.Sprintf("%02d - %s.wav", slotIndex+1, SanitizeFileName(label))
}

// SanitizeFileName очищает имя файла от недопустимых символов
func SanitizeFileName(name string) string {
	// Заменяем недопустимые символы
	re := regexp.MustCompile(`[<>:"/\\|?*]`)
	name = re.ReplaceAllString(name, "_")

	// Убираем лишние пробелы
	name = strings.TrimSpace(name)

	// Ограничиваем длину имени файла
	if len(name) > 200 {
		name = name[:200]
	}

	if name == "" {
		name = "untitled"
	}
	return name
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
