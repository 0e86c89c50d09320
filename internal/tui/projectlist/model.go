// Package projectlist содержит модель экрана списка проектов для TUI
package projectlist

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-slicer/internal/data"
	"github.com/hazadus/go-slicer/internal/project"
	"github.com/hazadus/go-slicer/internal/utils"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	quitTextStyle     = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

// ProjectSelectedMsg отправляется при выборе проекта для нарезки
type ProjectSelectedMsg struct {
	Project data.Project
}

// projectItem реализует интерфейс list.Item для проекта
type projectItem struct {
	project data.Project
}

func (i projectItem) FilterValue() string {
	return fmt.Sprintf("%s %s", i.project.Artist, i.project.Title)
}

// projectItemDelegate реализует отображение элементов списка
type projectItemDelegate struct{}

func (d projectItemDelegate) Height() int                             { return 1 }
func (d projectItemDelegate) Spacing() int                            { return 0 }
func (d projectItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d projectItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(projectItem)
	if !ok {
		return
	}

	// Форматируем строку: ID | Исполнитель | Название | Фрагменты | Длительность
	duration := utils.FormatDuration(time.Duration(i.project.Duration) * time.Second)
	str := fmt.Sprintf("%-4d %-20s %-40s %3d фр. %s",
		i.project.ID,
		utils.TruncateString(i.project.Artist, 20),
		utils.TruncateString(i.project.Title, 40),
		project.SlotCount(i.project),
		duration)

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// Model представляет модель экрана списка проектов
type Model struct {
	list     list.Model
	manager  *project.Manager
	quitting bool
}

// NewModel создает новую модель списка проектов
func NewModel(appData *data.AppData) *Model {
	manager := project.NewManager(appData)
	projects := manager.ListProjects()

	// Преобразуем проекты в элементы списка
	items := make([]list.Item, len(projects))
	for i, p := range projects {
		items[i] = projectItem{project: p}
	}

	// Создаем список
	l := list.New(items, projectItemDelegate{}, 0, 0)
	l.Title = "Проекты нарезки"
	l.SetShowStatusBar(false)
	l.SetShowTitle(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	return &Model{
		list:    l,
		manager: manager,
	}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// RefreshData обновляет данные модели без пересоздания
func (m *Model) RefreshData() {
	projects := m.manager.ListProjects()

	items := make([]list.Item, len(projects))
	for i, p := range projects {
		items[i] = projectItem{project: p}
	}

	m.list.SetItems(items)
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 4) // Оставляем место для заголовка и справки
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			// Получаем выбранный элемент
			selectedItem := m.list.SelectedItem()
			if selectedItem != nil {
				if item, ok := selectedItem.(projectItem); ok {
					// Отправляем сообщение о выборе проекта
					return m, func() tea.Msg {
						return ProjectSelectedMsg{Project: item.project}
					}
				}
			}
		}
	}

	// Обновляем список
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View отображает модель
func (m *Model) View() string {
	if m.quitting {
		return quitTextStyle.Render("До свидания!")
	}

	view := m.list.View()
	// Добавляем дополнительную справку
	extraHelp := helpStyle.Render("Enter: открыть нарезку • q: выход")
	return view + "\n" + extraHelp
}
