package engine

import "testing"

func TestDeriveSlotsPartition(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		splits   []float64
	}{
		{"без точек", 10, nil},
		{"одна точка", 10, []float64{5}},
		{"две точки", 10, []float64{3, 6}},
		{"плотная нарезка", 60, []float64{5, 12, 30, 44.5, 59}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			slots := DeriveSlots(test.duration, test.splits, nil)

			// Фрагментов всегда на один больше, чем точек разреза
			if len(slots) != len(test.splits)+1 {
				t.Fatalf("Ожидалось %d фрагментов, получено %d", len(test.splits)+1, len(slots))
			}

			// Фрагменты покрывают [0, duration] без зазоров и перекрытий
			if slots[0].Start != 0 {
				t.Errorf("Первый фрагмент должен начинаться с 0, получено %f", slots[0].Start)
			}
			if slots[len(slots)-1].End != test.duration {
				t.Errorf("Последний фрагмент должен заканчиваться в %f, получено %f",
					test.duration, slots[len(slots)-1].End)
			}
			for i := 1; i < len(slots); i++ {
				if slots[i].Start != slots[i-1].End {
					t.Errorf("Зазор или перекрытие между фрагментами %d и %d", i-1, i)
				}
			}

			// Индексы последовательны
			for i, slot := range slots {
				if slot.Index != i {
					t.Errorf("Фрагмент %d имеет индекс %d", i, slot.Index)
				}
			}
		})
	}
}

func TestDeriveSlotsLabelContinuity(t *testing.T) {
	previous := DeriveSlots(10, []float64{5}, nil)
	previous[0].Label = "Вступление"
	previous[1].Label = "Куплет"

	// Метки переносятся по совпадению индекса
	slots := DeriveSlots(10, []float64{3, 5}, previous)
	if slots[0].Label != "Вступление" {
		t.Errorf("Ожидалась метка 'Вступление', получено '%s'", slots[0].Label)
	}
	if slots[1].Label != "Куплет" {
		t.Errorf("Ожидалась метка 'Куплет', получено '%s'", slots[1].Label)
	}

	// Новый фрагмент за пределами прежней длины получает метку по умолчанию
	if slots[2].Label != defaultLabel(2) {
		t.Errorf("Ожидалась метка по умолчанию '%s', получено '%s'", defaultLabel(2), slots[2].Label)
	}
}

func TestDeriveSlotsIsPure(t *testing.T) {
	splits := []float64{3, 6}
	previous := DeriveSlots(10, splits, nil)

	DeriveSlots(10, splits, previous)

	// Исходные данные не изменяются
	if splits[0] != 3 || splits[1] != 6 {
		t.Error("DeriveSlots не должен изменять срез точек разреза")
	}
	if previous[0].Start != 0 || previous[0].End != 3 {
		t.Error("DeriveSlots не должен изменять предыдущий список фрагментов")
	}
}

func TestSlotContains(t *testing.T) {
	slot := Slot{Start: 3, End: 6}

	// Интервал полуоткрытый: начало включено, конец нет
	if !slot.Contains(3, false) {
		t.Error("Начало фрагмента должно быть включено")
	}
	if slot.Contains(6, false) {
		t.Error("Конец не последнего фрагмента не должен быть включен")
	}

	// У последнего фрагмента конец считается включенным
	if !slot.Contains(6, true) {
		t.Error("Конец последнего фрагмента должен быть включен")
	}
}
