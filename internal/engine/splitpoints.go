// Package engine содержит движок нарезки аудиозаписи на фрагменты:
// множество точек разреза, производный список фрагментов, синхронизацию
// с интерактивными регионами и отслеживание воспроизведения.
package engine

import (
	"fmt"
	"math"
	"sort"
)

const (
	// minSpacing - минимальное расстояние в секундах между соседними
	// границами (включая неявные границы 0 и duration)
	minSpacing = 0.1
	// mergeThreshold - порог в секундах, при котором перетаскивание границы
	// «сквозь» соседний фрагмент приводит к слиянию фрагментов
	mergeThreshold = 0.1
	// edgeEpsilon - минимальный сдвиг края региона, который считается
	// изменением (меньшие отклонения - шум округления)
	edgeEpsilon = 0.01
)

// SplitPointSet владеет упорядоченным множеством точек разреза.
// Все точки строго возрастают, уникальны и отстоят друг от друга
// и от краев записи не менее чем на minSpacing.
type SplitPointSet struct {
	duration float64
	points   []float64
}

// NewSplitPointSet создает пустое множество точек разреза для записи
// заданной длительности. Некорректная длительность - единственная
// фатальная ошибка: все производные инварианты зависят от нее.
func NewSplitPointSet(duration float64) (*SplitPointSet, error) {
	if math.IsNaN(duration) || duration <= 0 {
		return nil, fmt.Errorf("некорректная длительность записи: %f", duration)
	}
	return &SplitPointSet{
		duration: duration,
		points:   make([]float64, 0),
	}, nil
}

// Duration возвращает длительность записи в секундах
func (s *SplitPointSet) Duration() float64 {
	return s.duration
}

// Points возвращает копию отсортированных точек разреза
func (s *SplitPointSet) Points() []float64 {
	points := make([]float64, len(s.points))
	copy(points, s.points)
	return points
}

// Len возвращает количество точек разреза
func (s *SplitPointSet) Len() int {
	return len(s.points)
}

// Add добавляет точку разреза. Возвращает false (ничего не меняя),
// если точка слишком близко к краю записи или к существующей точке.
func (s *SplitPointSet) Add(t float64) bool {
	if math.IsNaN(t) || t < minSpacing || t > s.duration-minSpacing {
		return false
	}

	// Проверяем расстояние до существующих точек
	for _, p := range s.points {
		if math.Abs(p-t) < minSpacing {
			return false
		}
	}

	s.points = append(s.points, t)
	sort.Float64s(s.points)
	return true
}

// RemoveIndex удаляет точку разреза по ее индексу в отсортированном
// множестве. Возвращает false, если индекс вне диапазона.
func (s *SplitPointSet) RemoveIndex(i int) bool {
	if i < 0 || i >= len(s.points) {
		return false
	}
	s.points = append(s.points[:i], s.points[i+1:]...)
	return true
}

// Update перемещает точку разреза с индексом i в позицию t.
// Новая позиция ограничивается коридором между соседними точками
// (с отступом minSpacing) и округляется до сотых долей секунды.
// Возвращает фактически сохраненное значение.
func (s *SplitPointSet) Update(i int, t float64) float64 {
	if i < 0 || i >= len(s.points) {
		return 0
	}

	// Определяем границы коридора: соседние точки или края записи
	prev := 0.0
	if i > 0 {
		prev = s.points[i-1]
	}
	next := s.duration
	if i < len(s.points)-1 {
		next = s.points[i+1]
	}

	t = clamp(t, prev+minSpacing, next-minSpacing)
	s.points[i] = roundCentiseconds(t)

	// Сортировка позиционно ничего не меняет, так как коридор
	// сохраняет порядок, но поддерживает инвариант явно
	sort.Float64s(s.points)
	return s.points[i]
}

// Reset очищает множество точек (запись заменена новой)
func (s *SplitPointSet) Reset(duration float64) error {
	if math.IsNaN(duration) || duration <= 0 {
		return fmt.Errorf("некорректная длительность записи: %f", duration)
	}
	s.duration = duration
	s.points = s.points[:0]
	return nil
}

// replace подменяет множество точек результатом чистого перехода
// (используется синхронизацией регионов)
func (s *SplitPointSet) replace(points []float64) {
	s.points = points
	sort.Float64s(s.points)
}

// clamp ограничивает значение отрезком [lo, hi]
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// roundCentiseconds округляет время до сотых долей секунды
func roundCentiseconds(t float64) float64 {
	return math.Round(t*100) / 100
}
