// Package waveform строит огибающую амплитуды записи для отрисовки
// волновой формы в интерфейсе
package waveform

import (
	"fmt"
	"math"
	"os"

	"github.com/gopxl/beep/mp3"
)

// boost усиливает типичный уровень музыкального сигнала, чтобы огибающая
// занимала видимую высоту полосы
const boost = 5.0

// FromFile декодирует MP3 файл и возвращает огибающую из columns
// колонок со значениями 0..1
func FromFile(path string, columns int) ([]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	streamer, _, err := mp3.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("ошибка декодирования MP3: %w", err)
	}
	defer streamer.Close()

	// Читаем поток блоками и сводим стерео к моно
	mono := make([]float64, 0, streamer.Len())
	buf := make([][2]float64, 4096)
	for {
		n, ok := streamer.Stream(buf)
		for i := 0; i < n; i++ {
			mono = append(mono, (buf[i][0]+buf[i][1])/2)
		}
		if !ok {
			break
		}
	}

	return FromSamples(mono, columns), nil
}

// FromSamples сворачивает моно-сигнал в columns колонок. Каждая колонка -
// среднеквадратичная амплитуда (RMS) своего блока сэмплов, усиленная и
// ограниченная единицей.
func FromSamples(samples []float64, columns int) []float64 {
	if columns <= 0 {
		return nil
	}

	peaks := make([]float64, columns)
	if len(samples) == 0 {
		return peaks
	}

	step := len(samples) / columns
	if step == 0 {
		step = 1
	}

	for col := 0; col < columns; col++ {
		start := col * step
		if start >= len(samples) {
			break
		}
		end := start + step
		if end > len(samples) {
			end = len(samples)
		}

		var sum float64
		for _, s := range samples[start:end] {
			sum += s * s
		}
		rms := math.Sqrt(sum / float64(end-start))

		peaks[col] = math.Min(rms*boost, 1)
	}
	return peaks
}
