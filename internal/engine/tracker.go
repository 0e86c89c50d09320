package engine

// Transport - внешний коллаборатор, исполняющий транспортные запросы
// движка: перемотку (в долях длительности записи), запуск и паузу
// воспроизведения.
type Transport interface {
	SeekToFraction(fraction float64)
	Play()
	Pause()
}

// LoopTarget описывает фрагмент, выбранный для циклического
// воспроизведения
type LoopTarget struct {
	Index int
	Start float64
	End   float64
}

// TickState - состояние, вычисленное по одному тику воспроизведения
type TickState struct {
	ActiveSlot    int     // Индекс активного фрагмента, -1 если нет
	ActiveChanged bool    // Изменился ли активный фрагмент с прошлого тика
	LoopingSlot   int     // Индекс зацикленного фрагмента, -1 если нет
	Progress      float64 // Доля проигранного внутри активного фрагмента, -1 если нет активного
}

// PlaybackTracker определяет активный фрагмент по текущему времени
// воспроизведения, поддерживает зацикливание одного фрагмента и считает
// долю проигранного для индикатора обратного отсчета.
type PlaybackTracker struct {
	duration  float64
	slots     func() []Slot // Всегда актуальный список фрагментов
	transport Transport
	active    int
	looping   *LoopTarget
}

// NewPlaybackTracker создает трекер воспроизведения. Функция slots
// должна возвращать текущий список фрагментов, а не снимок: правка
// границ сразу же меняет активный фрагмент на следующем тике.
func NewPlaybackTracker(duration float64, slots func() []Slot, transport Transport) *PlaybackTracker {
	return &PlaybackTracker{
		duration:  duration,
		slots:     slots,
		transport: transport,
		active:    -1,
	}
}

// Tick обрабатывает очередной тик воспроизведения
func (tr *PlaybackTracker) Tick(currentTime float64) TickState {
	// Сначала цикл: выход за конец зацикленного фрагмента перематывает
	// воспроизведение обратно к его началу. Запрос идемпотентен.
	if tr.looping != nil && currentTime >= tr.looping.End && tr.transport != nil {
		tr.transport.SeekToFraction(tr.looping.Start / tr.duration)
	}

	slots := tr.slots()
	active := activeSlotIndex(slots, currentTime)
	changed := active != tr.active
	tr.active = active

	progress := -1.0
	if active >= 0 {
		slot := slots[active]
		if slot.End > slot.Start {
			progress = clamp((currentTime-slot.Start)/(slot.End-slot.Start), 0, 1)
		}
	}

	return TickState{
		ActiveSlot:    active,
		ActiveChanged: changed,
		LoopingSlot:   tr.loopingIndex(),
		Progress:      progress,
	}
}

// ToggleLoop включает зацикливание фрагмента с заданным индексом.
// Повторный выбор того же фрагмента снимает цикл, не трогая позицию
// воспроизведения. Включение цикла перематывает к началу фрагмента
// и запрашивает запуск воспроизведения.
func (tr *PlaybackTracker) ToggleLoop(index int) {
	if tr.looping != nil && tr.looping.Index == index {
		tr.looping = nil
		return
	}

	slots := tr.slots()
	if index < 0 || index >= len(slots) {
		return
	}

	slot := slots[index]
	tr.looping = &LoopTarget{
		Index: index,
		Start: slot.Start,
		End:   slot.End,
	}

	if tr.transport != nil {
		tr.transport.SeekToFraction(slot.Start / tr.duration)
		tr.transport.Play()
	}
}

// ClearLoop снимает зацикливание, не трогая позицию воспроизведения
func (tr *PlaybackTracker) ClearLoop() {
	tr.looping = nil
}

// Looping возвращает текущую цель зацикливания или nil
func (tr *PlaybackTracker) Looping() *LoopTarget {
	return tr.looping
}

// Stop синхронно сбрасывает активный фрагмент и цикл (воспроизведение
// остановлено или запись заменена)
func (tr *PlaybackTracker) Stop() {
	tr.active = -1
	tr.looping = nil
}

// Reset подготавливает трекер к новой записи
func (tr *PlaybackTracker) Reset(duration float64) {
	tr.duration = duration
	tr.Stop()
}

func (tr *PlaybackTracker) loopingIndex() int {
	if tr.looping == nil {
		return -1
	}
	return tr.looping.Index
}

// activeSlotIndex находит фрагмент, содержащий момент времени t,
// или -1. Конец последнего фрагмента считается включенным, чтобы при
// t == duration активный фрагмент не пропадал.
func activeSlotIndex(slots []Slot, t float64) int {
	for i, slot := range slots {
		if slot.Contains(t, i == len(slots)-1) {
			return i
		}
	}
	return -1
}
