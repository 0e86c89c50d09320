package projectlist

import (
	"testing"

	"github.com/hazadus/go-slicer/internal/data"
)

func TestNewModel(t *testing.T) {
	// Создаем тестовые данные
	appData := &data.AppData{
		Projects: []data.Project{
			{
				ID:        1,
				Artist:    "Test Artist 1",
				Title:     "Test Recording 1",
				AudioPath: "/tmp/one.mp3",
				Duration:  180,
				Splits:    []float64{60},
			},
			{
				ID:        2,
				Artist:    "Test Artist 2",
				Title:     "Test Recording 2",
				AudioPath: "/tmp/two.mp3",
				Duration:  240,
			},
		},
	}

	// Создаем модель
	model := NewModel(appData)

	// Проверяем, что модель создалась корректно
	if model == nil {
		t.Fatal("NewModel вернул nil")
	}

	if model.manager == nil {
		t.Fatal("manager не инициализирован")
	}

	if model.list.Items() == nil {
		t.Fatal("элементы списка не инициализированы")
	}

	// Проверяем количество элементов в списке
	if len(model.list.Items()) != 2 {
		t.Fatalf("Ожидалось 2 элемента, получено %d", len(model.list.Items()))
	}
}

func TestRefreshData(t *testing.T) {
	appData := &data.AppData{}

	model := NewModel(appData)
	if len(model.list.Items()) != 0 {
		t.Fatalf("Ожидался пустой список, получено %d элементов", len(model.list.Items()))
	}

	// Добавляем проект и обновляем список
	appData.AddProject(data.Project{
		Title:     "New Recording",
		AudioPath: "/tmp/new.mp3",
		Duration:  60,
	})
	model.RefreshData()

	if len(model.list.Items()) != 1 {
		t.Fatalf("Ожидался 1 элемент после обновления, получено %d", len(model.list.Items()))
	}
}
