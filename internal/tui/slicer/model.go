// Package slicer содержит модель экрана нарезки записи для TUI:
// волновую форму с регионами фрагментов, управление границами с
// клавиатуры и воспроизведение с зацикливанием фрагмента.
package slicer

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-slicer/internal/data"
	"github.com/hazadus/go-slicer/internal/engine"
	"github.com/hazadus/go-slicer/internal/player"
	"github.com/hazadus/go-slicer/internal/waveform"
)

const (
	// nudgeStep - шаг сдвига границы фрагмента за одно нажатие, секунд
	nudgeStep = 0.25
	// waveformColumns - число колонок огибающей волновой формы
	waveformColumns = 72
)

// GoBackMsg отправляется для возврата к списку проектов
type GoBackMsg struct{}

// ProgressMsg содержит обновления прогресса воспроизведения
type ProgressMsg struct {
	Status player.Status
}

// PlaybackFinishedMsg отправляется при завершении воспроизведения
type PlaybackFinishedMsg struct{}

// PlaybackErrorMsg отправляется при ошибке воспроизведения
type PlaybackErrorMsg struct {
	Error error
}

// waveformMsg доставляет асинхронно построенную огибающую записи
type waveformMsg struct {
	peaks []float64
}

// uiRegion адаптирует границы жеста к интерфейсу региона движка
type uiRegion struct {
	start, end float64
	slotIndex  int
}

func (r uiRegion) Start() float64 { return r.start }
func (r uiRegion) End() float64   { return r.end }
func (r uiRegion) SlotIndex() int { return r.slotIndex }

// Model представляет модель экрана нарезки
type Model struct {
	project  *data.Project
	appData  *data.AppData
	engine   *engine.Engine
	player   *player.Player
	saveFunc func() error

	regions      []engine.RegionSpec
	peaks        []float64
	selected     int
	progressBar  progress.Model
	labelInput   textinput.Model
	editingLabel bool

	status          player.Status
	tick            engine.TickState
	playbackStarted bool
	pendingLoop     int // Фрагмент, цикл которого включится после старта воспроизведения
	notice          string
	err             error
	width           int
	height          int
}

// NewModel создает модель нарезки для проекта. Движок создается на
// каждую запись отдельно; сохраненные точки и метки восстанавливаются.
func NewModel(proj *data.Project, appData *data.AppData, pl *player.Player, saveFunc func() error) (*Model, error) {
	eng, err := engine.New(proj.Duration, pl)
	if err != nil {
		return nil, err
	}

	m := &Model{
		project:     proj,
		appData:     appData,
		engine:      eng,
		player:      pl,
		saveFunc:    saveFunc,
		pendingLoop: -1,
		tick:        engine.TickState{ActiveSlot: -1, LoopingSlot: -1, Progress: -1},
	}

	// Движок владеет состоянием, модель лишь перестраивает визуальные
	// регионы по его команде
	eng.SetRegionRebuilder(func(regions []engine.RegionSpec) {
		m.regions = regions
	})
	eng.Load(proj.Splits, proj.Labels)
	m.regions = eng.Regions()

	// Прогресс-бар обратного отсчета активного фрагмента
	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 40
	m.progressBar = prog

	// Поле ввода метки фрагмента
	input := textinput.New()
	input.Placeholder = "Название фрагмента"
	input.CharLimit = 40
	m.labelInput = input

	return m, nil
}

// Init инициализирует модель и запускает построение волновой формы
func (m *Model) Init() tea.Cmd {
	return m.loadWaveform()
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progressBar.Width = min(60, msg.Width-10)
		return m, nil

	case tea.KeyMsg:
		if m.editingLabel {
			return m.updateLabelInput(msg)
		}
		return m.handleKey(msg)

	case ProgressMsg:
		return m.handleProgress(msg)

	case PlaybackFinishedMsg:
		// Воспроизведение дошло до конца записи
		m.playbackStarted = false
		m.engine.StopPlayback()
		m.tick = engine.TickState{ActiveSlot: -1, LoopingSlot: -1, Progress: -1}
		return m, nil

	case PlaybackErrorMsg:
		m.err = msg.Error
		m.playbackStarted = false
		return m, nil

	case waveformMsg:
		m.peaks = msg.peaks
		return m, nil

	case progress.FrameMsg:
		progressModel, cmd := m.progressBar.Update(msg)
		m.progressBar = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

// handleKey обрабатывает жесты нарезки и управления воспроизведением
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		// Сохраняем нарезку и возвращаемся к списку проектов
		m.saveProject()
		m.player.Stop()
		m.engine.StopPlayback()
		return m, func() tea.Msg {
			return GoBackMsg{}
		}

	case "ctrl+s":
		m.saveProject()
		m.notice = "Нарезка сохранена"
		return m, nil

	case " ":
		// Пауза/воспроизведение
		if !m.playbackStarted {
			return m, m.startPlayback()
		}
		m.player.TogglePause()
		return m, nil

	case "enter":
		// Воспроизведение с начала выбранного фрагмента
		slot := m.engine.Slots()[m.selected]
		if !m.playbackStarted {
			return m, tea.Sequence(m.startPlayback(), m.seekTo(slot.Start))
		}
		m.player.SeekToFraction(slot.Start / m.engine.Duration())
		m.player.Play()
		return m, nil

	case "left":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case "right":
		if m.selected < len(m.engine.Slots())-1 {
			m.selected++
		}
		return m, nil

	case "s":
		// Разрез в текущей позиции воспроизведения
		m.engine.AddSplitAt(m.status.Current.Seconds())
		return m, nil

	case ",":
		return m.nudge(-nudgeStep, 0)
	case ".":
		return m.nudge(nudgeStep, 0)
	case "<":
		return m.nudge(0, -nudgeStep)
	case ">":
		return m.nudge(0, nudgeStep)

	case "x":
		// Удаление фрагмента: слияние с соседом
		m.engine.RemoveSlot(m.selected)
		m.clampSelection()
		return m, nil

	case "r":
		// Зацикливание выбранного фрагмента
		if !m.playbackStarted {
			m.pendingLoop = m.selected
			return m, m.startPlayback()
		}
		m.engine.ToggleLoop(m.selected)
		return m, nil

	case "e":
		// Редактирование метки выбранного фрагмента
		m.editingLabel = true
		m.labelInput.SetValue(m.engine.Slots()[m.selected].Label)
		m.labelInput.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

// nudge сдвигает края выбранного фрагмента и передает жест движку как
// изменение размеров региона. Перетаскивание сквозь тонкого соседа
// движок трактует как слияние.
func (m *Model) nudge(startDelta, endDelta float64) (tea.Model, tea.Cmd) {
	slots := m.engine.Slots()
	slot := slots[m.selected]

	m.engine.ResizeRegion(uiRegion{
		start:     slot.Start + startDelta,
		end:       slot.End + endDelta,
		slotIndex: m.selected,
	})
	m.clampSelection()
	return m, nil
}

// updateLabelInput обрабатывает ввод в поле метки
func (m *Model) updateLabelInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.engine.SetLabel(m.selected, m.labelInput.Value())
		m.editingLabel = false
		m.labelInput.Blur()
		return m, nil

	case "esc":
		m.editingLabel = false
		m.labelInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.labelInput, cmd = m.labelInput.Update(msg)
	return m, cmd
}

// handleProgress обрабатывает тик воспроизведения: движок определяет
// активный фрагмент, контролирует цикл и считает обратный отсчет
func (m *Model) handleProgress(msg ProgressMsg) (tea.Model, tea.Cmd) {
	m.status = msg.Status

	// Отложенный цикл: воспроизведение только что запустилось
	if m.pendingLoop >= 0 {
		m.engine.ToggleLoop(m.pendingLoop)
		m.pendingLoop = -1
	}

	m.tick = m.engine.Tick(msg.Status.Current.Seconds())

	percent := 0.0
	if m.tick.Progress >= 0 {
		percent = m.tick.Progress
	}

	return m, tea.Batch(
		m.progressBar.SetPercent(percent),
		m.listenForProgress(),
	)
}

// clampSelection удерживает выбор в границах списка после слияний
func (m *Model) clampSelection() {
	if m.selected >= len(m.engine.Slots()) {
		m.selected = len(m.engine.Slots()) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// saveProject сохраняет точки разреза и метки в данные приложения
func (m *Model) saveProject() {
	_ = m.appData.UpdateSlicing(m.project.ID, m.engine.Splits(), m.engine.Labels())
	if m.saveFunc != nil {
		_ = m.saveFunc()
	}
}

// Close очищает ресурсы модели
func (m *Model) Close() error {
	m.player.Stop()
	return nil
}

// loadWaveform асинхронно строит огибающую записи
func (m *Model) loadWaveform() tea.Cmd {
	path := m.project.AudioPath
	return func() tea.Msg {
		peaks, err := waveform.FromFile(path, waveformColumns)
		if err != nil {
			// Без огибающей можно работать: рисуем плоскую полосу
			return waveformMsg{peaks: make([]float64, waveformColumns)}
		}
		return waveformMsg{peaks: peaks}
	}
}

// startPlayback запускает воспроизведение записи проекта
func (m *Model) startPlayback() tea.Cmd {
	return func() tea.Msg {
		if err := m.player.PlayFile(m.project.AudioPath); err != nil {
			return PlaybackErrorMsg{Error: err}
		}
		m.playbackStarted = true
		return ProgressMsg{Status: player.Status{}}
	}
}

// seekTo перематывает воспроизведение к моменту времени
func (m *Model) seekTo(seconds float64) tea.Cmd {
	return func() tea.Msg {
		m.player.SeekToFraction(seconds / m.engine.Duration())
		return nil
	}
}

// listenForProgress слушает обновления прогресса от плеера
func (m *Model) listenForProgress() tea.Cmd {
	return func() tea.Msg {
		select {
		case status, ok := <-m.player.Progress():
			if !ok {
				return PlaybackFinishedMsg{}
			}
			return ProgressMsg{Status: status}

		case _, ok := <-m.player.Done():
			if !ok {
				return PlaybackFinishedMsg{}
			}
			return PlaybackFinishedMsg{}
		}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
