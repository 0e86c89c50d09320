package metadata

import (
	"testing"
	"time"
)

func TestDefaultInfoFromFileName(t *testing.T) {
	extractor := NewExtractor()

	// Имя файла в формате "Artist - Title" разбирается на части
	info := extractor.defaultInfo("/music/Queen - Bohemian Rhapsody.mp3")
	if info.Artist != "Queen" {
		t.Errorf("Ожидался Artist: Queen, получено: %s", info.Artist)
	}
	if info.Title != "Bohemian Rhapsody" {
		t.Errorf("Ожидался Title: Bohemian Rhapsody, получено: %s", info.Title)
	}
}

func TestDefaultInfoPlainFileName(t *testing.T) {
	extractor := NewExtractor()

	// Имя без разделителя целиком идет в название
	info := extractor.defaultInfo("/music/recording.mp3")
	if info.Artist != "Unknown Artist" {
		t.Errorf("Ожидался Artist: Unknown Artist, получено: %s", info.Artist)
	}
	if info.Title != "recording" {
		t.Errorf("Ожидался Title: recording, получено: %s", info.Title)
	}
}

func TestExtractFromMissingFile(t *testing.T) {
	extractor := NewExtractor()

	// Недоступный файл - метаданные по умолчанию, а не ошибка
	info := extractor.ExtractFromFile("/nonexistent/Artist - Song.mp3")
	if info.Artist != "Artist" || info.Title != "Song" {
		t.Errorf("Ожидались метаданные из имени файла, получено: %+v", info)
	}
}

func TestGetFileInfoMissingFile(t *testing.T) {
	extractor := NewExtractor()

	if _, err := extractor.GetFileInfo("/nonexistent/test.mp3"); err == nil {
		t.Error("Ожидалась ошибка для несуществующего файла")
	}
}

func TestFileInfoSeconds(t *testing.T) {
	info := &FileInfo{Duration: 90 * time.Second}
	if info.Seconds() != 90 {
		t.Errorf("Ожидалось 90 секунд, получено %f", info.Seconds())
	}
}
