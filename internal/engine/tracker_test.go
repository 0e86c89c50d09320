package engine

import (
	"math"
	"testing"
)

// fakeTransport записывает транспортные запросы движка
type fakeTransport struct {
	seeks  []float64
	plays  int
	pauses int
}

func (f *fakeTransport) SeekToFraction(fraction float64) { f.seeks = append(f.seeks, fraction) }
func (f *fakeTransport) Play()                           { f.plays++ }
func (f *fakeTransport) Pause()                          { f.pauses++ }

// newTestEngine создает движок с нарезкой [0,3] [3,6] [6,10]
func newTestEngine(t *testing.T) (*Engine, *fakeTransport) {
	t.Helper()
	transport := &fakeTransport{}
	e, err := New(10, transport)
	if err != nil {
		t.Fatalf("Ошибка создания движка: %v", err)
	}
	e.AddSplitAt(3)
	e.AddSplitAt(6)
	return e, transport
}

func TestTickActiveSlotDetection(t *testing.T) {
	e, _ := newTestEngine(t)

	// 4.9999 внутри фрагмента [3,6)
	state := e.Tick(4.9999)
	if state.ActiveSlot != 1 {
		t.Errorf("Ожидался активный фрагмент 1, получено %d", state.ActiveSlot)
	}
	if math.Abs(state.Progress-0.667) > 0.001 {
		t.Errorf("Ожидался прогресс ~0.667, получено %f", state.Progress)
	}

	// Ровно 6.0 - уже следующий фрагмент
	state = e.Tick(6.0)
	if state.ActiveSlot != 2 {
		t.Errorf("Ожидался активный фрагмент 2, получено %d", state.ActiveSlot)
	}
}

func TestTickLastSlotEndInclusive(t *testing.T) {
	e, _ := newTestEngine(t)

	// В точке t == duration активный фрагмент не пропадает
	state := e.Tick(10)
	if state.ActiveSlot != 2 {
		t.Errorf("Ожидался активный фрагмент 2, получено %d", state.ActiveSlot)
	}
	if state.Progress != 1 {
		t.Errorf("Ожидался прогресс 1, получено %f", state.Progress)
	}
}

func TestTickOutOfRange(t *testing.T) {
	e, _ := newTestEngine(t)

	state := e.Tick(-1)
	if state.ActiveSlot != -1 {
		t.Errorf("Ожидалось отсутствие активного фрагмента, получено %d", state.ActiveSlot)
	}
	if state.Progress != -1 {
		t.Errorf("Ожидался прогресс -1, получено %f", state.Progress)
	}
}

func TestTickEdgeTriggered(t *testing.T) {
	e, _ := newTestEngine(t)

	// Первый тик внутри фрагмента - смена активного
	state := e.Tick(1)
	if !state.ActiveChanged {
		t.Error("Первый тик должен сообщить о смене активного фрагмента")
	}

	// Повторный тик в том же фрагменте - без смены
	state = e.Tick(2)
	if state.ActiveChanged {
		t.Error("Тик в том же фрагменте не должен сообщать о смене")
	}

	// Переход в следующий фрагмент - снова смена
	state = e.Tick(4)
	if !state.ActiveChanged {
		t.Error("Переход в другой фрагмент должен сообщить о смене")
	}
}

func TestTickReadsCurrentSlots(t *testing.T) {
	e, _ := newTestEngine(t)

	state := e.Tick(4)
	if state.ActiveSlot != 1 {
		t.Fatalf("Ожидался активный фрагмент 1, получено %d", state.ActiveSlot)
	}

	// Правка границ между тиками сразу меняет активный фрагмент:
	// трекер всегда читает актуальный список, а не снимок
	e.RemoveSlot(1)
	state = e.Tick(4)
	if state.ActiveSlot != 1 {
		t.Errorf("Ожидался активный фрагмент 1 в новой нарезке, получено %d", state.ActiveSlot)
	}
	if len(e.Slots()) != 2 {
		t.Errorf("Ожидалось 2 фрагмента, получено %d", len(e.Slots()))
	}
}

func TestToggleLoopSeeksAndPlays(t *testing.T) {
	e, transport := newTestEngine(t)

	// Включение цикла перематывает к началу фрагмента и запускает
	// воспроизведение
	e.ToggleLoop(1)

	if len(transport.seeks) != 1 || transport.seeks[0] != 0.3 {
		t.Errorf("Ожидалась перемотка к доле 0.3, получено %v", transport.seeks)
	}
	if transport.plays != 1 {
		t.Errorf("Ожидался 1 запрос запуска воспроизведения, получено %d", transport.plays)
	}
}

func TestTickLoopWrapAround(t *testing.T) {
	e, transport := newTestEngine(t)
	e.ToggleLoop(1)
	transport.seeks = nil

	// Выход за конец зацикленного фрагмента перематывает к его началу
	state := e.Tick(6.01)
	if len(transport.seeks) != 1 || transport.seeks[0] != 0.3 {
		t.Errorf("Ожидалась перемотка к доле 0.3, получено %v", transport.seeks)
	}
	if state.LoopingSlot != 1 {
		t.Errorf("Ожидался зацикленный фрагмент 1, получено %d", state.LoopingSlot)
	}

	// Тик внутри фрагмента перемотку не запрашивает
	transport.seeks = nil
	e.Tick(4)
	if len(transport.seeks) != 0 {
		t.Errorf("Неожиданная перемотка: %v", transport.seeks)
	}
}

func TestToggleLoopSameSlotClears(t *testing.T) {
	e, transport := newTestEngine(t)
	e.ToggleLoop(1)
	transport.seeks = nil

	// Повторный выбор того же фрагмента снимает цикл, позиция не трогается
	e.ToggleLoop(1)

	if e.Looping() != nil {
		t.Error("Цикл должен быть снят")
	}
	if len(transport.seeks) != 0 {
		t.Errorf("Снятие цикла не должно перематывать: %v", transport.seeks)
	}
}

func TestToggleLoopInvalidIndexIgnored(t *testing.T) {
	e, transport := newTestEngine(t)

	e.ToggleLoop(42)

	if e.Looping() != nil {
		t.Error("Цикл по индексу вне диапазона не должен включаться")
	}
	if len(transport.seeks) != 0 || transport.plays != 0 {
		t.Error("Жест вне диапазона не должен порождать транспортных запросов")
	}
}

func TestStopPlaybackClearsState(t *testing.T) {
	e, _ := newTestEngine(t)
	e.ToggleLoop(1)
	e.Tick(4)

	// Остановка синхронно сбрасывает активный фрагмент и цикл
	e.StopPlayback()

	if e.Looping() != nil {
		t.Error("Остановка должна снимать цикл")
	}

	// Следующий тик снова сообщает о смене активного фрагмента
	state := e.Tick(4)
	if !state.ActiveChanged {
		t.Error("После остановки первый тик должен сообщить о смене активного фрагмента")
	}
}

func TestClearLoopKeepsPosition(t *testing.T) {
	transport := &fakeTransport{}
	slots := DeriveSlots(10, []float64{3, 6}, nil)
	tr := NewPlaybackTracker(10, func() []Slot { return slots }, transport)

	tr.ToggleLoop(1)
	seeks := len(transport.seeks)

	// Снятие цикла не отправляет транспортных запросов
	tr.ClearLoop()

	if tr.Looping() != nil {
		t.Error("Ожидалось снятие цикла")
	}
	if len(transport.seeks) != seeks || transport.pauses != 0 {
		t.Error("Снятие цикла не должно трогать позицию воспроизведения")
	}

	// Следующий тик не перематывает к началу бывшего цикла
	state := tr.Tick(6.5)
	if len(transport.seeks) != seeks {
		t.Errorf("Ожидалось отсутствие перемотки, получено %v", transport.seeks)
	}
	if state.LoopingSlot != -1 {
		t.Errorf("Ожидался LoopingSlot -1, получено %d", state.LoopingSlot)
	}
}
