// Package streaming содержит компоненты для получения аудио по сети
package streaming

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"
)

// Reader представляет буферизованный поток для чтения данных порциями
type Reader struct {
	reader     *bufio.Reader
	resp       *http.Response
	bufferSize int
}

// NewReader создает новый потоковый ридер
func NewReader(ctx context.Context, url string, bufferSize int) (*Reader, error) {
	// Создаем HTTP клиент без общего таймаута: скачивание длинной записи
	// может занять минуты, ограничиваем только таймауты соединения
	client := &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			// Таймаут для TLS handshake
			TLSHandshakeTimeout: 10 * time.Second,
			// Таймаут ожидания заголовков ответа
			ResponseHeaderTimeout: 30 * time.Second,
			// Время жизни соединения в пуле
			IdleConnTimeout:       300 * time.Second,
			MaxIdleConns:          10,
			MaxIdleConnsPerHost:   2,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	// Заголовки для непрерывного чтения аудиопотока
	req.Header.Set("Accept-Encoding", "identity") // Отключаем сжатие для потока
	req.Header.Set("Range", "bytes=0-")           // Читаем с начала
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("User-Agent", "go-slicer/1.0")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	// Проверяем статус ответа
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		resp.Body.Close()
		return nil, fmt.Errorf("ошибка HTTP: %s", resp.Status)
	}

	return &Reader{
		reader:     bufio.NewReaderSize(resp.Body, bufferSize),
		resp:       resp,
		bufferSize: bufferSize,
	}, nil
}

// Read реализует интерфейс io.Reader для потокового чтения
func (sr *Reader) Read(p []byte) (n int, err error) {
	return sr.reader.Read(p)
}

// Close закрывает соединение
func (sr *Reader) Close() error {
	return sr.resp.Body.Close()
}

// DownloadToTemp скачивает аудио по URL во временный файл и возвращает
// его путь. Нарезка требует перемотки, поэтому сетевой источник сначала
// целиком буферизуется на диск.
func DownloadToTemp(ctx context.Context, url string) (string, error) {
	const bufferSize = 256 * 1024 // 256KB буфер

	reader, err := NewReader(ctx, url, bufferSize)
	if err != nil {
		return "", fmt.Errorf("ошибка создания потокового ридера: %w", err)
	}
	defer reader.Close()

	tempFile, err := os.CreateTemp("", "slicer-*.mp3")
	if err != nil {
		return "", fmt.Errorf("ошибка создания временного файла: %w", err)
	}
	defer tempFile.Close()

	if _, err := io.Copy(tempFile, reader); err != nil {
		os.Remove(tempFile.Name())
		return "", fmt.Errorf("ошибка скачивания: %w", err)
	}

	return tempFile.Name(), nil
}
