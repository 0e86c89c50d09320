package project

import (
	"testing"

	"github.com/hazadus/go-slicer/internal/data"
)

func TestListProjects(t *testing.T) {
	appData := data.NewAppData()
	manager := NewManager(appData)

	// Изначально список пуст
	if len(manager.ListProjects()) != 0 {
		t.Errorf("Ожидался пустой список проектов, получено %d", len(manager.ListProjects()))
	}

	appData.AddProject(data.Project{Title: "One"})
	appData.AddProject(data.Project{Title: "Two"})

	projects := manager.ListProjects()
	if len(projects) != 2 {
		t.Fatalf("Ожидалось 2 проекта, получено %d", len(projects))
	}
	if projects[0].Title != "One" {
		t.Errorf("Ожидался Title: One, получено: %s", projects[0].Title)
	}
}

func TestSlotCount(t *testing.T) {
	tests := []struct {
		splits   []float64
		expected int
	}{
		{nil, 1},
		{[]float64{5}, 2},
		{[]float64{3, 6}, 3},
	}

	for _, test := range tests {
		count := SlotCount(data.Project{Splits: test.splits})
		if count != test.expected {
			t.Errorf("Для %d точек ожидалось %d фрагментов, получено %d",
				len(test.splits), test.expected, count)
		}
	}
}
