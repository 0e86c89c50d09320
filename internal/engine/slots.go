package engine

import "fmt"

// Slot представляет производный фрагмент записи между двумя соседними
// границами. Фрагменты никогда не изменяются напрямую - список целиком
// пересчитывается после каждой мутации множества точек разреза.
type Slot struct {
	Index int
	Start float64
	End   float64
	Label string
}

// DeriveSlots строит список фрагментов по длительности записи и
// отсортированным точкам разреза. Функция чистая и идемпотентная:
// фрагментов всегда ровно len(splits)+1, они без зазоров и перекрытий
// покрывают отрезок [0, duration]. Метки переносятся из предыдущего
// списка по совпадению индекса; новым фрагментам за пределами прежней
// длины присваивается метка по умолчанию.
func DeriveSlots(duration float64, splits []float64, previous []Slot) []Slot {
	// Строим полный список границ: [0, точки..., duration]
	boundaries := make([]float64, 0, len(splits)+2)
	boundaries = append(boundaries, 0)
	boundaries = append(boundaries, splits...)
	boundaries = append(boundaries, duration)

	slots := make([]Slot, len(boundaries)-1)
	for i := range slots {
		label := defaultLabel(i)
		if i < len(previous) && previous[i].Label != "" {
			label = previous[i].Label
		}
		slots[i] = Slot{
			Index: i,
			Start: boundaries[i],
			End:   boundaries[i+1],
			Label: label,
		}
	}
	return slots
}

// Contains сообщает, попадает ли момент времени t в фрагмент.
// Интервал полуоткрытый [start, end); для последнего фрагмента конец
// считается включенным, чтобы в точке t == duration активный фрагмент
// не пропадал.
func (s Slot) Contains(t float64, isLast bool) bool {
	if isLast {
		return s.Start <= t && t <= s.End
	}
	return s.Start <= t && t < s.End
}

// defaultLabel возвращает метку фрагмента по умолчанию
func defaultLabel(i int) string {
	return fmt.Sprintf("Фрагмент %d", i+1)
}
