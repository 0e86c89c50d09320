package engine

// Engine - единственный владелец состояния нарезки одной записи: множества
// точек разреза, производного списка фрагментов и трекера воспроизведения.
// Никакого глобального состояния: каждая запись редактируется собственным
// экземпляром движка.
type Engine struct {
	splits  *SplitPointSet
	slots   []Slot
	tracker *PlaybackTracker

	// rebuildRegions вызывается после каждого изменения границ, чтобы
	// коллаборатор отрисовки целиком перестроил визуальные регионы
	rebuildRegions func([]RegionSpec)
}

// New создает движок нарезки для записи заданной длительности
func New(duration float64, transport Transport) (*Engine, error) {
	splits, err := NewSplitPointSet(duration)
	if err != nil {
		return nil, err
	}

	e := &Engine{splits: splits}
	e.slots = DeriveSlots(duration, nil, nil)
	e.tracker = NewPlaybackTracker(duration, e.Slots, transport)
	return e, nil
}

// SetRegionRebuilder задает обработчик перестроения визуальных регионов
func (e *Engine) SetRegionRebuilder(fn func([]RegionSpec)) {
	e.rebuildRegions = fn
}

// Duration возвращает длительность записи в секундах
func (e *Engine) Duration() float64 {
	return e.splits.Duration()
}

// Splits возвращает копию текущих точек разреза
func (e *Engine) Splits() []float64 {
	return e.splits.Points()
}

// Slots возвращает текущий список фрагментов
func (e *Engine) Slots() []Slot {
	return e.slots
}

// Regions строит описание визуальных регионов по текущим фрагментам
func (e *Engine) Regions() []RegionSpec {
	regions := make([]RegionSpec, len(e.slots))
	for i, slot := range e.slots {
		regions[i] = RegionSpec{
			Start:      slot.Start,
			End:        slot.End,
			ColorIndex: i % regionColorCount,
			SlotIndex:  i,
		}
	}
	return regions
}

// AddSplitAt добавляет точку разреза в заданный момент времени.
// Недопустимые жесты (слишком близко к краю или к существующей точке)
// молча игнорируются.
func (e *Engine) AddSplitAt(t float64) bool {
	if !e.splits.Add(t) {
		return false
	}
	e.refresh()
	return true
}

// AddSplitAtFraction добавляет точку разреза в позиции, заданной долей
// длительности записи (0..1)
func (e *Engine) AddSplitAtFraction(fraction float64) bool {
	return e.AddSplitAt(fraction * e.splits.Duration())
}

// ResizeRegion интерпретирует двусторонний жест изменения размеров
// региона как одну-две правки точек разреза, применяя политику слияния,
// когда край перетащили сквозь соседний фрагмент. Возвращает true, если
// множество точек изменилось.
func (e *Engine) ResizeRegion(r Region) bool {
	before := e.splits.Points()
	next := resizeTransition(before, e.splits.Duration(), r.SlotIndex(), r.Start(), r.End())
	if pointsEqual(before, next) {
		return false
	}
	e.splits.replace(next)
	e.refresh()
	return true
}

// RemoveSlot удаляет фрагмент, сливая его с правым соседом (последний
// фрагмент - с левым). Единственный фрагмент удалить нельзя.
func (e *Engine) RemoveSlot(slotIndex int) bool {
	before := e.splits.Points()
	next := removeTransition(before, slotIndex)
	if pointsEqual(before, next) {
		return false
	}
	e.splits.replace(next)
	e.refresh()
	return true
}

// MoveSplit передвигает правую границу фрагмента slotIndex в новую
// позицию (тонкая подстройка без слияния)
func (e *Engine) MoveSplit(splitIndex int, t float64) float64 {
	stored := e.splits.Update(splitIndex, t)
	if stored > 0 {
		e.refresh()
	}
	return stored
}

// SetLabel изменяет метку фрагмента
func (e *Engine) SetLabel(slotIndex int, label string) bool {
	if slotIndex < 0 || slotIndex >= len(e.slots) || label == "" {
		return false
	}
	e.slots[slotIndex].Label = label
	return true
}

// Load восстанавливает сохраненные точки разреза и метки фрагментов
// (открытие существующего проекта). Недопустимые точки молча
// отбрасываются.
func (e *Engine) Load(splits []float64, labels []string) {
	for _, t := range splits {
		e.splits.Add(t)
	}
	e.slots = DeriveSlots(e.splits.Duration(), e.splits.Points(), nil)
	for i, label := range labels {
		e.SetLabel(i, label)
	}
	e.notifyRegions()
}

// Reset очищает движок для новой записи
func (e *Engine) Reset(duration float64) error {
	if err := e.splits.Reset(duration); err != nil {
		return err
	}
	e.slots = DeriveSlots(duration, nil, nil)
	e.tracker.Reset(duration)
	e.notifyRegions()
	return nil
}

// Tick обрабатывает тик воспроизведения: определяет активный фрагмент,
// поддерживает цикл и считает прогресс
func (e *Engine) Tick(currentTime float64) TickState {
	return e.tracker.Tick(currentTime)
}

// ToggleLoop включает или снимает зацикливание фрагмента
func (e *Engine) ToggleLoop(slotIndex int) {
	e.tracker.ToggleLoop(slotIndex)
}

// Looping возвращает текущую цель зацикливания или nil
func (e *Engine) Looping() *LoopTarget {
	return e.tracker.Looping()
}

// StopPlayback синхронно сбрасывает состояние воспроизведения
func (e *Engine) StopPlayback() {
	e.tracker.Stop()
}

// Labels возвращает метки фрагментов в порядке следования
func (e *Engine) Labels() []string {
	labels := make([]string, len(e.slots))
	for i, slot := range e.slots {
		labels[i] = slot.Label
	}
	return labels
}

// refresh пересчитывает фрагменты после мутации точек разреза и
// уведомляет коллаборатора отрисовки. Вызывается синхронно, чтобы
// потребители никогда не видели устаревший список.
func (e *Engine) refresh() {
	e.slots = DeriveSlots(e.splits.Duration(), e.splits.Points(), e.slots)
	e.notifyRegions()
}

func (e *Engine) notifyRegions() {
	if e.rebuildRegions != nil {
		e.rebuildRegions(e.Regions())
	}
}

func pointsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
