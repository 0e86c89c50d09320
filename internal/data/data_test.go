package data

import (
	"path/filepath"
	"testing"
)

func TestAddProject(t *testing.T) {
	appData := NewAppData()

	project := Project{
		Title:     "Test Song",
		Artist:    "Test Artist",
		AudioPath: "/tmp/test.mp3",
		Duration:  180.5,
		Splits:    []float64{30, 95.5},
		Labels:    []string{"Вступление", "Куплет", "Припев"},
	}

	id := appData.AddProject(project)

	if id != 1 {
		t.Errorf("Ожидался ID: 1, получено: %d", id)
	}
	if len(appData.Projects) != 1 {
		t.Fatalf("Ожидался 1 проект, получено %d", len(appData.Projects))
	}

	added := appData.Projects[0]
	if added.Title != project.Title {
		t.Errorf("Ожидался Title: %s, получено: %s", project.Title, added.Title)
	}
	if len(added.Splits) != 2 {
		t.Errorf("Ожидалось 2 точки разреза, получено %d", len(added.Splits))
	}
}

func TestProjectIDsSequential(t *testing.T) {
	appData := NewAppData()

	appData.AddProject(Project{Title: "One"})
	appData.AddProject(Project{Title: "Two"})
	appData.AddProject(Project{Title: "Three"})

	// Проверяем, что ID присваиваются последовательно
	for i, project := range appData.Projects {
		expectedID := i + 1
		if project.ID != expectedID {
			t.Errorf("Проект %d: ожидался ID %d, получено %d", i+1, expectedID, project.ID)
		}
	}

	// После удаления ID продолжают расти, а не переиспользуются
	if err := appData.DeleteProjectByID(3); err != nil {
		t.Fatalf("Ошибка удаления проекта: %v", err)
	}
	id := appData.AddProject(Project{Title: "Four"})
	if id != 3 {
		t.Errorf("Ожидался ID: 3, получено: %d", id)
	}
}

func TestProjectByID(t *testing.T) {
	appData := NewAppData()
	appData.AddProject(Project{Title: "One"})
	appData.AddProject(Project{Title: "Two"})

	found, err := appData.ProjectByID(2)
	if err != nil {
		t.Fatalf("Ошибка поиска проекта: %v", err)
	}
	if found.Title != "Two" {
		t.Errorf("Ожидался Title: Two, получено: %s", found.Title)
	}

	// Поиск несуществующего проекта возвращает ошибку
	if _, err := appData.ProjectByID(999); err == nil {
		t.Error("Ожидалась ошибка при поиске несуществующего проекта")
	}
}

func TestProjectByAudioPath(t *testing.T) {
	appData := NewAppData()
	appData.AddProject(Project{Title: "One", AudioPath: "/music/a.mp3"})

	if appData.ProjectByAudioPath("/music/a.mp3") == nil {
		t.Error("Проект по известному пути должен находиться")
	}
	if appData.ProjectByAudioPath("/music/b.mp3") != nil {
		t.Error("Проект по неизвестному пути не должен находиться")
	}
}

func TestUpdateSlicing(t *testing.T) {
	appData := NewAppData()
	id := appData.AddProject(Project{Title: "One", Duration: 10})

	err := appData.UpdateSlicing(id, []float64{3, 6}, []string{"A", "B", "C"})
	if err != nil {
		t.Fatalf("Ошибка обновления нарезки: %v", err)
	}

	project, _ := appData.ProjectByID(id)
	if len(project.Splits) != 2 || project.Splits[1] != 6 {
		t.Errorf("Точки разреза не сохранились: %v", project.Splits)
	}
	if len(project.Labels) != 3 {
		t.Errorf("Метки не сохранились: %v", project.Labels)
	}

	if err := appData.UpdateSlicing(999, nil, nil); err == nil {
		t.Error("Ожидалась ошибка для несуществующего проекта")
	}
}

func TestSaveAndLoadData(t *testing.T) {
	tempDir := t.TempDir()
	dataPath := filepath.Join(tempDir, "data.yaml")

	appData := NewAppData()
	appData.AddProject(Project{
		Title:    "Song",
		Duration: 240,
		Splits:   []float64{60, 120.5, 180},
		Labels:   []string{"A", "B", "C", "D"},
	})

	// Сохраняем и загружаем данные заново
	if err := appData.SaveData(dataPath); err != nil {
		t.Fatalf("Ошибка сохранения данных: %v", err)
	}

	loaded := NewAppData()
	if err := loaded.LoadData(dataPath); err != nil {
		t.Fatalf("Ошибка загрузки данных: %v", err)
	}

	if len(loaded.Projects) != 1 {
		t.Fatalf("Ожидался 1 проект, получено %d", len(loaded.Projects))
	}
	project := loaded.Projects[0]
	if project.Duration != 240 {
		t.Errorf("Ожидалась длительность 240, получено %f", project.Duration)
	}
	if len(project.Splits) != 3 || project.Splits[1] != 120.5 {
		t.Errorf("Точки разреза не восстановились: %v", project.Splits)
	}
}

func TestLoadDataMissingFile(t *testing.T) {
	tempDir := t.TempDir()

	// Отсутствующий файл - не ошибка: инициализируемся пустыми данными
	appData := NewAppData()
	if err := appData.LoadData(filepath.Join(tempDir, "missing.yaml")); err != nil {
		t.Fatalf("Отсутствующий файл данных не должен быть ошибкой: %v", err)
	}
	if len(appData.Projects) != 0 {
		t.Errorf("Ожидался пустой список проектов, получено %d", len(appData.Projects))
	}
}
