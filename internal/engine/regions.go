package engine

import (
	"math"
	"sort"
)

// Region - узкий интерфейс к визуальному региону внешнего коллаборатора
// отрисовки. Движок только читает регион во время жеста и никогда его
// не изменяет; слой адаптации переводит объекты конкретной библиотеки
// в этот интерфейс.
type Region interface {
	Start() float64
	End() float64
	SlotIndex() int
}

// RegionSpec описывает визуальный регион, который коллаборатор отрисовки
// должен построить для фрагмента. После каждого изменения границ список
// регионов перестраивается целиком - это самый простой способ сохранить
// согласованность визуального состояния после слияний.
type RegionSpec struct {
	Start      float64
	End        float64
	ColorIndex int
	SlotIndex  int
}

// regionColorCount - размер палитры цветов регионов
const regionColorCount = 6

// resizeTransition - чистый переход множества точек разреза по жесту
// изменения размеров региона: возвращает новое отсортированное множество,
// не изменяя исходное. Двусторонний жест трактуется как одна или две
// правки точек; перетаскивание края «сквозь» тонкий соседний фрагмент
// (ближе mergeThreshold к его дальней границе) удаляет разделяющую точку
// целиком, и сосед исчезает - слияние.
func resizeTransition(points []float64, duration float64, slotIndex int, newStart, newEnd float64) []float64 {
	// Полный список границ: [0, точки..., duration]
	boundaries := make([]float64, 0, len(points)+2)
	boundaries = append(boundaries, 0)
	boundaries = append(boundaries, points...)
	boundaries = append(boundaries, duration)

	if slotIndex < 0 || slotIndex > len(boundaries)-2 {
		return copyPoints(points)
	}

	originalStart := boundaries[slotIndex]
	originalEnd := boundaries[slotIndex+1]

	// Собираем правки относительно исходного множества: какие точки
	// удалить и какие передвинуть. Применение одним шагом делает
	// политику слияния независимой от порядка правок.
	removed := make(map[int]bool)
	updated := make(map[int]float64)

	// Левый край: его двигает точка points[slotIndex-1]
	if math.Abs(newStart-originalStart) > edgeEpsilon && slotIndex > 0 {
		if newStart < originalStart && newStart <= boundaries[slotIndex-1]+mergeThreshold {
			// Расширение влево поглотило левого соседа
			removed[slotIndex-1] = true
		} else {
			lo := 0.0
			if slotIndex > 1 {
				lo = boundaries[slotIndex-1]
			}
			updated[slotIndex-1] = roundCentiseconds(clamp(newStart, lo+minSpacing, originalEnd-minSpacing))
		}
	}

	// Правый край: его двигает точка points[slotIndex]
	if math.Abs(newEnd-originalEnd) > edgeEpsilon && slotIndex < len(boundaries)-2 {
		if newEnd > originalEnd && newEnd >= boundaries[slotIndex+2]-mergeThreshold {
			// Расширение вправо поглотило правого соседа
			removed[slotIndex] = true
		} else {
			// Нижняя граница коридора учитывает уже передвинутый левый край
			lo := originalStart
			if moved, ok := updated[slotIndex-1]; ok {
				lo = moved
			}
			hi := duration
			if slotIndex+2 < len(boundaries)-1 {
				hi = boundaries[slotIndex+2]
			}
			updated[slotIndex] = roundCentiseconds(clamp(newEnd, lo+minSpacing, hi-minSpacing))
		}
	}

	next := make([]float64, 0, len(points))
	for i, p := range points {
		if removed[i] {
			continue
		}
		if v, ok := updated[i]; ok {
			p = v
		}
		next = append(next, p)
	}
	sort.Float64s(next)
	return next
}

// removeTransition - чистый переход по жесту удаления региона: фрагмент
// сливается с правым соседом (удаляется точка его правой границы);
// последний фрагмент сливается с левым соседом. Единственный фрагмент
// удалить нельзя - множество возвращается без изменений.
func removeTransition(points []float64, slotIndex int) []float64 {
	if len(points) == 0 || slotIndex < 0 || slotIndex > len(points) {
		return copyPoints(points)
	}

	removeAt := slotIndex
	if slotIndex == len(points) {
		// Последний фрагмент: удаляем точку его левой границы
		removeAt = slotIndex - 1
	}

	next := make([]float64, 0, len(points)-1)
	next = append(next, points[:removeAt]...)
	next = append(next, points[removeAt+1:]...)
	return next
}

func copyPoints(points []float64) []float64 {
	next := make([]float64, len(points))
	copy(next, points)
	return next
}
