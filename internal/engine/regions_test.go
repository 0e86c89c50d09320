package engine

import "testing"

// Сценарий из трех фрагментов: [0,3] [3,6] [6,10]
func threeSlots() ([]float64, float64) {
	return []float64{3, 6}, 10.0
}

func TestResizeRightEdgeUpdate(t *testing.T) {
	points, duration := threeSlots()

	// Тонкая подстройка правого края среднего фрагмента: без слияния
	next := resizeTransition(points, duration, 1, 3, 5.95)

	if len(next) != 2 {
		t.Fatalf("Ожидалось 2 точки, получено %d", len(next))
	}
	if next[0] != 3 || next[1] != 5.95 {
		t.Errorf("Ожидались точки [3, 5.95], получено %v", next)
	}
}

func TestResizeRightEdgeMerge(t *testing.T) {
	points, duration := threeSlots()

	// Правый край перетащили почти до конца записи (9.92 >= 9.9):
	// правый сосед поглощается, остается одна точка
	next := resizeTransition(points, duration, 1, 3, 9.92)

	if len(next) != 1 {
		t.Fatalf("Ожидалась 1 точка после слияния, получено %d", len(next))
	}
	if next[0] != 3 {
		t.Errorf("Ожидалась точка 3, получено %f", next[0])
	}
}

func TestResizeLeftEdgeUpdate(t *testing.T) {
	points, duration := threeSlots()

	// Сдвиг левого края среднего фрагмента внутрь соседа
	next := resizeTransition(points, duration, 1, 3.5, 6)

	if len(next) != 2 {
		t.Fatalf("Ожидалось 2 точки, получено %d", len(next))
	}
	if next[0] != 3.5 || next[1] != 6 {
		t.Errorf("Ожидались точки [3.5, 6], получено %v", next)
	}
}

func TestResizeLeftEdgeMerge(t *testing.T) {
	points, duration := threeSlots()

	// Левый край последнего фрагмента дотащили до начала среднего
	// (3.05 <= 3 + 0.1): средний фрагмент поглощается
	next := resizeTransition(points, duration, 2, 3.05, 10)

	if len(next) != 1 {
		t.Fatalf("Ожидалась 1 точка после слияния, получено %d", len(next))
	}
	if next[0] != 3 {
		t.Errorf("Ожидалась точка 3, получено %f", next[0])
	}
}

func TestResizeBelowEpsilonIgnored(t *testing.T) {
	points, duration := threeSlots()

	// Сдвиги меньше edgeEpsilon - шум, множество не меняется
	next := resizeTransition(points, duration, 1, 3.005, 5.995)

	if !pointsEqual(points, next) {
		t.Errorf("Ожидалось неизменное множество, получено %v", next)
	}
}

func TestResizeOuterEdgesIgnored(t *testing.T) {
	points, duration := threeSlots()

	// Левый край первого фрагмента и правый край последнего - внешние
	// границы записи, их жесты не порождают правок
	next := resizeTransition(points, duration, 0, 1.5, 3)
	if !pointsEqual(points, next) {
		t.Errorf("Левый край первого фрагмента: ожидалось неизменное множество, получено %v", next)
	}

	next = resizeTransition(points, duration, 2, 6, 8.5)
	if !pointsEqual(points, next) {
		t.Errorf("Правый край последнего фрагмента: ожидалось неизменное множество, получено %v", next)
	}
}

func TestResizeBothEdges(t *testing.T) {
	points, duration := threeSlots()

	// Оба края среднего фрагмента сдвинуты одним жестом
	next := resizeTransition(points, duration, 1, 3.5, 5.5)

	if len(next) != 2 {
		t.Fatalf("Ожидалось 2 точки, получено %d", len(next))
	}
	if next[0] != 3.5 || next[1] != 5.5 {
		t.Errorf("Ожидались точки [3.5, 5.5], получено %v", next)
	}
}

func TestResizeInvalidIndexIgnored(t *testing.T) {
	points, duration := threeSlots()

	for _, index := range []int{-1, 3, 42} {
		next := resizeTransition(points, duration, index, 1, 2)
		if !pointsEqual(points, next) {
			t.Errorf("Индекс %d вне диапазона: ожидалось неизменное множество", index)
		}
	}
}

func TestResizeIsPure(t *testing.T) {
	points, duration := threeSlots()

	resizeTransition(points, duration, 1, 3, 9.92)

	// Исходное множество не изменяется
	if points[0] != 3 || points[1] != 6 {
		t.Errorf("resizeTransition не должен изменять исходный срез: %v", points)
	}
}

func TestRemoveMiddleSlot(t *testing.T) {
	points, _ := threeSlots()

	// Средний фрагмент сливается с правым соседом: удаляется точка
	// его правой границы
	next := removeTransition(points, 1)

	if len(next) != 1 {
		t.Fatalf("Ожидалась 1 точка, получено %d", len(next))
	}
	if next[0] != 3 {
		t.Errorf("Ожидалась точка 3, получено %f", next[0])
	}
}

func TestRemoveFirstSlot(t *testing.T) {
	points, _ := threeSlots()

	next := removeTransition(points, 0)

	if len(next) != 1 || next[0] != 6 {
		t.Errorf("Ожидались точки [6], получено %v", next)
	}
}

func TestRemoveLastSlot(t *testing.T) {
	points, _ := threeSlots()

	// Последний фрагмент сливается с левым соседом
	next := removeTransition(points, 2)

	if len(next) != 1 || next[0] != 3 {
		t.Errorf("Ожидались точки [3], получено %v", next)
	}
}

func TestRemoveOnlySlot(t *testing.T) {
	// Единственный фрагмент удалить нельзя
	next := removeTransition(nil, 0)
	if len(next) != 0 {
		t.Errorf("Ожидалось пустое множество, получено %v", next)
	}
}

func TestRemoveInvalidIndexIgnored(t *testing.T) {
	points, _ := threeSlots()

	for _, index := range []int{-1, 3, 42} {
		next := removeTransition(points, index)
		if !pointsEqual(points, next) {
			t.Errorf("Индекс %d вне диапазона: ожидалось неизменное множество", index)
		}
	}
}
