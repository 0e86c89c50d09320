package data

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Project описывает сохраненный проект нарезки одной аудиозаписи
type Project struct {
	ID        int       `yaml:"id"`
	Title     string    `yaml:"title"`
	Artist    string    `yaml:"artist"`
	AudioPath string    `yaml:"audio_path"` // Локальный путь к аудиофайлу
	SourceURL string    `yaml:"source_url"` // Откуда получен файл (URL или YouTube)
	Duration  float64   `yaml:"duration"`   // Длительность записи в секундах
	FileSize  int64     `yaml:"file_size"`  // Размер файла в байтах
	Splits    []float64 `yaml:"splits"`     // Точки разреза в секундах
	Labels    []string  `yaml:"labels"`     // Метки фрагментов по порядку
	SliceURLs []string  `yaml:"slice_urls"` // URL выгруженных в S3 фрагментов
}

// AppData хранит все проекты нарезки
type AppData struct {
	Projects []Project `yaml:"projects"`
}

// NewAppData создает новую структуру AppData
func NewAppData() *AppData {
	return &AppData{
		Projects: make([]Project, 0),
	}
}

// LoadData загружает данные из файла
func (d *AppData) LoadData(filePath string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	path := strings.Replace(filePath, "~", home, 1)

	data, err := os.ReadFile(path)
	if err != nil {
		// Если файл не найден, инициализируем пустыми данными
		if os.IsNotExist(err) {
			*d = *NewAppData()
			return nil
		}
		return fmt.Errorf("ошибка чтения файла данных: %w", err)
	}
	if len(data) == 0 {
		*d = *NewAppData()
		return nil
	}
	if err := yaml.Unmarshal(data, d); err != nil {
		return fmt.Errorf("ошибка разбора данных: %w", err)
	}
	return nil
}

// SaveData сохраняет данные в файл
func (d *AppData) SaveData(filePath string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	path := strings.Replace(filePath, "~", home, 1)

	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("ошибка сериализации данных: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("ошибка записи файла данных: %w", err)
	}
	return nil
}

// AddProject добавляет новый проект и возвращает присвоенный ему ID
func (d *AppData) AddProject(project Project) int {
	// Находим максимальный ID и присваиваем новый проекту
	if len(d.Projects) > 0 {
		maxID := d.Projects[0].ID
		for _, p := range d.Projects {
			if p.ID > maxID {
				maxID = p.ID
			}
		}
		project.ID = maxID + 1
	} else {
		project.ID = 1 // Если проектов нет, начинаем с 1
	}
	d.Projects = append(d.Projects, project)
	return project.ID
}

// ProjectByID возвращает проект по ID
func (d *AppData) ProjectByID(id int) (*Project, error) {
	for i := range d.Projects {
		if d.Projects[i].ID == id {
			return &d.Projects[i], nil
		}
	}
	return nil, fmt.Errorf("проекта с ID %d не найдено", id)
}

// ProjectByAudioPath возвращает ранее созданный проект для аудиофайла
// или nil
func (d *AppData) ProjectByAudioPath(path string) *Project {
	for i := range d.Projects {
		if d.Projects[i].AudioPath == path {
			return &d.Projects[i]
		}
	}
	return nil
}

// DeleteProjectByID удаляет проект по ID
func (d *AppData) DeleteProjectByID(id int) error {
	for i := range d.Projects {
		if d.Projects[i].ID == id {
			d.Projects = append(d.Projects[:i], d.Projects[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("проекта с ID %d не найдено", id)
}

// UpdateSlicing сохраняет изменившиеся точки разреза и метки проекта
func (d *AppData) UpdateSlicing(id int, splits []float64, labels []string) error {
	project, err := d.ProjectByID(id)
	if err != nil {
		return err
	}
	project.Splits = splits
	project.Labels = labels
	return nil
}
