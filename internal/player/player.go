// Package player содержит компоненты для управления воспроизведением аудио
package player

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
)

// tickInterval - период отправки обновлений прогресса. Движок нарезки
// опирается на эти тики для определения активного фрагмента и контроля
// цикла, поэтому период заметно короче секунды.
const tickInterval = 200 * time.Millisecond

// Status представляет текущий статус плеера
type Status struct {
	Current   time.Duration // Текущая позиция
	Total     time.Duration // Общая продолжительность
	IsPlaying bool          // Идет ли воспроизведение
}

// Player управляет воспроизведением аудиофайла проекта и исполняет
// транспортные запросы движка нарезки (перемотка, запуск, пауза).
type Player struct {
	// Каналы для обратной связи
	progressChan chan Status
	doneChan     chan bool

	// Внутреннее состояние
	ctx           context.Context
	cancel        context.CancelFunc
	mutex         sync.RWMutex
	isInitialized bool
	isPaused      bool
	currentPath   string

	// Компоненты для воспроизведения
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	file     *os.File
}

// NewPlayer создает новый экземпляр плеера
func NewPlayer() *Player {
	ctx, cancel := context.WithCancel(context.Background())
	return &Player{
		progressChan: make(chan Status, 1),
		doneChan:     make(chan bool, 1),
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Progress возвращает канал для получения обновлений прогресса
func (p *Player) Progress() <-chan Status {
	return p.progressChan
}

// Done возвращает канал, сигнализирующий о завершении воспроизведения
func (p *Player) Done() <-chan bool {
	return p.doneChan
}

// PlayFile начинает воспроизведение локального MP3 файла
func (p *Player) PlayFile(path string) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	// Останавливаем текущее воспроизведение, если есть
	p.stopInternal()

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("ошибка открытия файла: %w", err)
	}

	// Декодируем MP3: файловый источник дает возможность перемотки
	streamer, format, err := mp3.Decode(file)
	if err != nil {
		file.Close()
		return fmt.Errorf("ошибка декодирования MP3: %w", err)
	}

	// Инициализируем speaker (только один раз)
	if !p.isInitialized {
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/5)); err != nil {
			streamer.Close()
			file.Close()
			return fmt.Errorf("ошибка инициализации динамиков: %w", err)
		}
		p.isInitialized = true
	}

	p.file = file
	p.streamer = streamer
	p.format = format
	p.currentPath = path

	// Создаем контроллер паузы
	p.ctrl = &beep.Ctrl{
		Streamer: streamer,
		Paused:   false,
	}
	p.isPaused = false

	// Запускаем воспроизведение
	speaker.Play(beep.Seq(p.ctrl, beep.Callback(func() {
		// Уведомляем о завершении воспроизведения
		select {
		case p.doneChan <- true:
		default:
		}
	})))

	// Запускаем мониторинг прогресса в отдельной горутине
	go p.monitorProgress(format)

	return nil
}

// SeekToFraction перематывает воспроизведение к позиции, заданной долей
// длительности записи (0..1). Запрос идемпотентен и безопасен в любом
// состоянии плеера.
func (p *Player) SeekToFraction(fraction float64) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	if p.streamer == nil {
		return
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	speaker.Lock()
	// Позиция в сэмплах; последний сэмпл не трогаем, чтобы не закрыть поток
	pos := int(fraction * float64(p.streamer.Len()))
	if pos >= p.streamer.Len() {
		pos = p.streamer.Len() - 1
	}
	_ = p.streamer.Seek(pos)
	speaker.Unlock()
}

// Play возобновляет воспроизведение (транспортный запрос движка)
func (p *Player) Play() {
	p.setPaused(false)
}

// Pause приостанавливает воспроизведение (транспортный запрос движка)
func (p *Player) Pause() {
	p.setPaused(true)
}

// TogglePause переключает паузу
func (p *Player) TogglePause() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.ctrl != nil {
		speaker.Lock()
		p.isPaused = !p.isPaused
		p.ctrl.Paused = p.isPaused
		speaker.Unlock()
	}
}

func (p *Player) setPaused(paused bool) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.ctrl != nil {
		speaker.Lock()
		p.isPaused = paused
		p.ctrl.Paused = paused
		speaker.Unlock()
	}
}

// Stop останавливает воспроизведение
func (p *Player) Stop() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.stopInternal()
}

// stopInternal внутренний метод остановки (должен вызываться под мьютексом)
func (p *Player) stopInternal() {
	if p.ctrl != nil {
		speaker.Clear()
		p.ctrl = nil
	}

	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}

	if p.file != nil {
		p.file.Close()
		p.file = nil
	}

	p.currentPath = ""
	p.isPaused = false
}

// Close закрывает плеер и освобождает ресурсы
func (p *Player) Close() error {
	p.cancel()
	p.Stop()
	close(p.progressChan)
	close(p.doneChan)
	return nil
}

// IsPlaying возвращает true, если идет воспроизведение
func (p *Player) IsPlaying() bool {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.ctrl != nil && !p.isPaused
}

// CurrentPath возвращает путь воспроизводимого файла
func (p *Player) CurrentPath() string {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.currentPath
}

// monitorProgress мониторит прогресс воспроизведения и отправляет обновления
func (p *Player) monitorProgress(format beep.Format) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.mutex.RLock()

			if p.streamer == nil || p.ctrl == nil {
				p.mutex.RUnlock()
				return
			}

			speaker.Lock()
			currentPos := format.SampleRate.D(p.streamer.Position())
			totalLen := format.SampleRate.D(p.streamer.Len())
			paused := p.isPaused
			speaker.Unlock()

			p.mutex.RUnlock()

			// Отправляем обновление статуса
			status := Status{
				Current:   currentPos,
				Total:     totalLen,
				IsPlaying: !paused,
			}

			select {
			case p.progressChan <- status:
			default:
				// Если канал заблокирован, пропускаем обновление
			}
		}
	}
}
