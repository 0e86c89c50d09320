package player

import (
	"os"
	"testing"
)

func TestPlayFileMissing(t *testing.T) {
	player := NewPlayer()
	defer player.Close()

	// Несуществующий файл - ошибка открытия
	if err := player.PlayFile("/nonexistent/test.mp3"); err == nil {
		t.Error("Ожидалась ошибка при воспроизведении несуществующего файла")
	}

	if player.IsPlaying() {
		t.Error("Плеер не должен играть после ошибки")
	}
	if player.CurrentPath() != "" {
		t.Errorf("Путь должен быть пустым, получено: %s", player.CurrentPath())
	}
}

func TestPlayFileInvalidData(t *testing.T) {
	player := NewPlayer()
	defer player.Close()

	// Файл с не-MP3 содержимым - ошибка декодирования
	tempFile := t.TempDir() + "/not-audio.mp3"
	if err := os.WriteFile(tempFile, []byte("это не mp3"), 0644); err != nil {
		t.Fatalf("Ошибка подготовки файла: %v", err)
	}

	if err := player.PlayFile(tempFile); err == nil {
		t.Error("Ожидалась ошибка декодирования для некорректного файла")
	}
}

func TestTransportRequestsSafeWhenStopped(t *testing.T) {
	player := NewPlayer()
	defer player.Close()

	// Транспортные запросы движка без загруженного файла - no-op,
	// а не паника
	player.SeekToFraction(0.5)
	player.Play()
	player.Pause()
	player.TogglePause()
	player.Stop()

	if player.IsPlaying() {
		t.Error("Остановленный плеер не должен играть")
	}
}
