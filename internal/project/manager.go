// Package project содержит логику управления проектами нарезки
package project

import (
	"github.com/hazadus/go-slicer/internal/data"
)

// Manager управляет проектами нарезки в приложении
type Manager struct {
	appData *data.AppData
}

// NewManager создает новый экземпляр Manager
func NewManager(appData *data.AppData) *Manager {
	return &Manager{
		appData: appData,
	}
}

// ListProjects возвращает список всех проектов
func (m *Manager) ListProjects() []data.Project {
	return m.appData.Projects
}

// SlotCount возвращает количество фрагментов проекта
// (точек разреза всегда на одну меньше)
func SlotCount(p data.Project) int {
	return len(p.Splits) + 1
}
