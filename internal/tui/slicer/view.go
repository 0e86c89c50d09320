package slicer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-slicer/internal/utils"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	waveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("83"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229"))

	// Палитра регионов: индекс цвета фрагмента циклически попадает сюда
	regionPalette = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("83")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("171")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
	}

	waveChars = []rune("▁▂▃▄▅▆▇█")
)

// View отрисовывает экран нарезки
func (m *Model) View() string {
	var b strings.Builder

	// Заголовок с информацией о записи
	header := fmt.Sprintf("✂️  %s - %s  [%s]",
		m.project.Artist,
		m.project.Title,
		utils.FormatSeconds(m.project.Duration),
	)
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	// Волновая форма, полоса регионов и курсор позиции
	b.WriteString(waveStyle.Render(m.renderWaveform()))
	b.WriteString("\n")
	b.WriteString(m.renderRegionBar())
	b.WriteString("\n")
	b.WriteString(m.renderPlayhead())
	b.WriteString("\n\n")

	// Таблица фрагментов
	b.WriteString(m.renderSlots())
	b.WriteString("\n")

	// Обратный отсчет активного фрагмента
	if m.tick.ActiveSlot >= 0 && m.tick.Progress >= 0 {
		slots := m.engine.Slots()
		if m.tick.ActiveSlot < len(slots) {
			remaining := slots[m.tick.ActiveSlot].End - m.status.Current.Seconds()
			if remaining < 0 {
				remaining = 0
			}
			b.WriteString(fmt.Sprintf("До конца фрагмента: %s\n", utils.FormatSeconds(remaining)))
			b.WriteString(m.progressBar.View())
			b.WriteString("\n")
		}
	}

	// Строка состояния воспроизведения
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(noticeStyle.Render("✅ " + m.notice))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render("❌ Ошибка: " + m.err.Error()))
		b.WriteString("\n")
	}

	// Оверлей редактирования метки
	if m.editingLabel {
		b.WriteString("\nНовое название фрагмента:\n")
		b.WriteString(m.labelInput.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("Enter: сохранить • Esc: отмена"))
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(
		"Space: пауза • Enter: играть фрагмент • r: цикл • s: разрез • x: удалить\n" +
			", . < >: сдвиг краев • ←/→: выбор • e: метка • Ctrl+S: сохранить • q: назад"))

	return b.String()
}

// stripWidth возвращает ширину полосы волновой формы в колонках
func (m *Model) stripWidth() int {
	if len(m.peaks) > 0 {
		return len(m.peaks)
	}
	return waveformColumns
}

// renderWaveform отрисовывает огибающую записи блоками разной высоты
func (m *Model) renderWaveform() string {
	if len(m.peaks) == 0 {
		return strings.Repeat("·", m.stripWidth())
	}

	var b strings.Builder
	for _, level := range m.peaks {
		idx := int(level * float64(len(waveChars)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(waveChars) {
			idx = len(waveChars) - 1
		}
		b.WriteRune(waveChars[idx])
	}
	return b.String()
}

// renderRegionBar отрисовывает цветную полосу регионов фрагментов
func (m *Model) renderRegionBar() string {
	width := m.stripWidth()
	duration := m.engine.Duration()

	var b strings.Builder
	for _, region := range m.regions {
		startCol := int(region.Start / duration * float64(width))
		endCol := int(region.End / duration * float64(width))
		if endCol <= startCol {
			endCol = startCol + 1
		}
		if endCol > width {
			endCol = width
		}

		style := regionPalette[region.ColorIndex%len(regionPalette)]
		segment := strings.Repeat("━", endCol-startCol)
		if region.SlotIndex == m.selected {
			segment = strings.Repeat("█", endCol-startCol)
		}
		b.WriteString(style.Render(segment))
	}
	return b.String()
}

// renderPlayhead отрисовывает курсор текущей позиции воспроизведения
func (m *Model) renderPlayhead() string {
	width := m.stripWidth()
	duration := m.engine.Duration()

	col := int(m.status.Current.Seconds() / duration * float64(width))
	if col < 0 {
		col = 0
	}
	if col >= width {
		col = width - 1
	}
	return strings.Repeat(" ", col) + "▲"
}

// renderSlots отрисовывает таблицу фрагментов с маркерами состояния
func (m *Model) renderSlots() string {
	var b strings.Builder
	for i, slot := range m.engine.Slots() {
		marker := "  "
		if i == m.tick.ActiveSlot {
			marker = "▶ "
		}
		loop := " "
		if i == m.tick.LoopingSlot {
			loop = "⟳"
		}

		row := fmt.Sprintf("%s%s %2d. %-30s %s – %s",
			marker,
			loop,
			i+1,
			utils.TruncateString(slot.Label, 30),
			utils.FormatSeconds(slot.Start),
			utils.FormatSeconds(slot.End),
		)
		if i == m.selected {
			row = selectedRowStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

// renderStatus отрисовывает строку состояния воспроизведения
func (m *Model) renderStatus() string {
	icon := "⏹"
	if m.playbackStarted {
		if m.player.IsPlaying() {
			icon = "▶️"
		} else {
			icon = "⏸"
		}
	}
	return fmt.Sprintf("%s  %s / %s",
		icon,
		utils.FormatDuration(m.status.Current),
		utils.FormatDuration(m.status.Total),
	)
}
