// Package app содержит основную логику TUI приложения
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-slicer/internal/data"
	"github.com/hazadus/go-slicer/internal/player"
	"github.com/hazadus/go-slicer/internal/tui/projectlist"
	"github.com/hazadus/go-slicer/internal/tui/slicer"
)

// ScreenType определяет тип текущего экрана
type ScreenType int

// Константы для типов экранов
const (
	// ProjectListScreen - экран списка проектов
	ProjectListScreen ScreenType = iota
	// SlicerScreen - экран нарезки записи
	SlicerScreen
)

// MainModel представляет главную модель TUI
type MainModel struct {
	appData          *data.AppData
	currentScreen    ScreenType
	projectListModel *projectlist.Model
	slicerModel      *slicer.Model
	globalPlayer     *player.Player // Глобальный плеер для переиспользования
	saveFunc         func() error   // Функция для сохранения данных
}

// NewMainModel создает новую главную модель
func NewMainModel(appData *data.AppData, saveFunc func() error) *MainModel {
	// Создаем модель списка проектов
	projectListModel := projectlist.NewModel(appData)

	// Создаем глобальный плеер один раз
	globalPlayer := player.NewPlayer()

	return &MainModel{
		appData:          appData,
		currentScreen:    ProjectListScreen,
		projectListModel: projectListModel,
		slicerModel:      nil, // Будет создана при выборе проекта
		globalPlayer:     globalPlayer,
		saveFunc:         saveFunc,
	}
}

// NewMainModelForProject создает главную модель, открытую сразу на
// экране нарезки указанного проекта
func NewMainModelForProject(appData *data.AppData, saveFunc func() error, project *data.Project) *MainModel {
	m := NewMainModel(appData, saveFunc)

	slicerModel, err := slicer.NewModel(project, appData, m.globalPlayer, saveFunc)
	if err != nil {
		// При некорректном проекте остаемся на списке
		return m
	}

	m.currentScreen = SlicerScreen
	m.slicerModel = slicerModel
	return m
}

// Init инициализирует модель
func (m *MainModel) Init() tea.Cmd {
	// Начинаем с экрана нарезки, если он задан при создании
	if m.currentScreen == SlicerScreen && m.slicerModel != nil {
		return m.slicerModel.Init()
	}
	// Инициализируем модель списка проектов
	return m.projectListModel.Init()
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Глобальные горячие клавиши
		switch msg.String() {
		case "ctrl+c":
			// Останавливаем плеер перед выходом
			if m.globalPlayer != nil {
				m.globalPlayer.Stop()
			}
			return m, tea.Quit
		}

	case projectlist.ProjectSelectedMsg:
		// Переключаемся на экран нарезки выбранного проекта. Нарезка
		// работает с проектом из данных приложения, а не с копией
		project, err := m.appData.ProjectByID(msg.Project.ID)
		if err != nil {
			return m, nil
		}
		slicerModel, err := slicer.NewModel(project, m.appData, m.globalPlayer, m.saveFunc)
		if err != nil {
			// Проект с некорректной длительностью открыть нельзя
			return m, nil
		}
		m.currentScreen = SlicerScreen
		m.slicerModel = slicerModel
		return m, m.slicerModel.Init()

	case slicer.GoBackMsg:
		// Возвращаемся к списку проектов, нарезка уже сохранена
		m.currentScreen = ProjectListScreen
		m.slicerModel = nil
		m.projectListModel.RefreshData()
		return m, nil

	case tea.WindowSizeMsg:
		// Передаем размеры окна активной модели
		switch m.currentScreen {
		case ProjectListScreen:
			var listCmd tea.Cmd
			m.projectListModel, listCmd = m.projectListModel.Update(msg)
			return m, listCmd
		case SlicerScreen:
			if m.slicerModel != nil {
				updatedModel, slicerCmd := m.slicerModel.Update(msg)
				if slicerModel, ok := updatedModel.(*slicer.Model); ok {
					m.slicerModel = slicerModel
				}
				return m, slicerCmd
			}
		}
		return m, nil
	}

	// Передаем сообщение активной модели
	switch m.currentScreen {
	case ProjectListScreen:
		var listCmd tea.Cmd
		m.projectListModel, listCmd = m.projectListModel.Update(msg)
		cmd = listCmd

	case SlicerScreen:
		if m.slicerModel != nil {
			updatedModel, slicerCmd := m.slicerModel.Update(msg)
			if slicerModel, ok := updatedModel.(*slicer.Model); ok {
				m.slicerModel = slicerModel
			}
			cmd = slicerCmd
		}
	}

	return m, cmd
}

// View отображает интерфейс
func (m *MainModel) View() string {
	switch m.currentScreen {
	case ProjectListScreen:
		return m.projectListModel.View()

	case SlicerScreen:
		if m.slicerModel != nil {
			return m.slicerModel.View()
		}
		return "Ошибка: модель нарезки не инициализирована"

	default:
		return "Неизвестный экран"
	}
}

// Close закрывает ресурсы главной модели
func (m *MainModel) Close() {
	if m.globalPlayer != nil {
		m.globalPlayer.Close()
	}
}
