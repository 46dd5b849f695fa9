package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/quantmind-br/hybridgit/internal/config"
)

type state int

const (
	stateMenu state = iota
	stateForm
	stateConfirm
	stateSaved
	stateError
)

// SaveFunc persists an edited configuration.
type SaveFunc func(*config.Config) error

type Model struct {
	state       state
	values      *ConfigValues
	path        string
	menuIndex   int
	currentForm *huh.Form
	err         error
	dirty       bool
	saveFunc    SaveFunc
	accessible  bool
	saved       *config.Config
}

type Options struct {
	Config     *config.Config
	Path       string
	SaveFunc   SaveFunc
	Accessible bool
}

func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	return Model{
		state:      stateMenu,
		values:     FromConfig(cfg),
		path:       opts.Path,
		saveFunc:   opts.SaveFunc,
		accessible: opts.Accessible,
	}
}

// Saved returns the configuration written by the last successful save.
func (m Model) Saved() *config.Config {
	return m.saved
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch m.state {
		case stateMenu:
			return m.updateMenu(key)
		case stateForm:
			if key.String() == "esc" {
				m.state = stateMenu
				return m, nil
			}
		case stateConfirm:
			return m.updateConfirm(key)
		case stateSaved, stateError:
			return m, tea.Quit
		}
	}

	if m.state == stateForm && m.currentForm != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		if m.dirty {
			m.state = stateConfirm
			return m, nil
		}
		return m, tea.Quit

	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		}

	case "down", "j":
		if m.menuIndex < len(Categories) {
			m.menuIndex++
		}

	case "enter":
		if m.menuIndex == len(Categories) {
			return m.handleSave()
		}
		form := GetFormForCategory(Categories[m.menuIndex].ID, m.values)
		if form == nil {
			return m, nil
		}
		if m.accessible {
			form = form.WithAccessible(true).WithTheme(GetAccessibleTheme())
		}
		m.currentForm = form
		m.state = stateForm
		return m, m.currentForm.Init()

	case "s":
		return m.handleSave()
	}

	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.currentForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.currentForm = f
	}
	switch m.currentForm.State {
	case huh.StateCompleted:
		m.dirty = true
		m.state = stateMenu
		return m, nil
	case huh.StateAborted:
		m.state = stateMenu
		return m, nil
	}
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m.handleSave()
	case "n", "N", "esc":
		return m, tea.Quit
	case "c":
		m.state = stateMenu
	}
	return m, nil
}

func (m Model) handleSave() (tea.Model, tea.Cmd) {
	cfg, err := m.values.ToConfig()
	if err != nil {
		m.state = stateError
		m.err = err
		return m, nil
	}

	if m.saveFunc != nil {
		if err := m.saveFunc(cfg); err != nil {
			m.state = stateError
			m.err = err
			return m, nil
		}
	}

	m.saved = cfg
	m.state = stateSaved
	m.dirty = false
	return m, nil
}

func (m Model) View() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("hybridgit configuration"))
	s.WriteString("\n")
	if m.path != "" {
		s.WriteString(DescriptionStyle.Render(m.path))
		s.WriteString("\n")
	}
	s.WriteString("\n")

	switch m.state {
	case stateMenu:
		s.WriteString(m.renderMenu())
	case stateForm:
		if m.currentForm != nil {
			s.WriteString(m.currentForm.View())
		}
	case stateConfirm:
		s.WriteString(m.renderConfirm())
	case stateSaved:
		s.WriteString(SuccessStyle.Render("Configuration saved."))
		s.WriteString("\n\nPress any key to exit.")
	case stateError:
		s.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		s.WriteString("\n\nPress any key to exit.")
	}

	return s.String()
}

func (m Model) renderMenu() string {
	var s strings.Builder

	for i, cat := range Categories {
		cursor := "  "
		style := UnselectedStyle
		if i == m.menuIndex {
			cursor = "> "
			style = SelectedStyle
		}
		s.WriteString(style.Render(cursor + cat.Name))
		if i == m.menuIndex {
			s.WriteString(DescriptionStyle.Render("  " + cat.Description))
		}
		s.WriteString("\n")
	}

	saveStyle := UnselectedStyle
	saveCursor := "  "
	if m.menuIndex == len(Categories) {
		saveCursor = "> "
		saveStyle = SelectedStyle
	}
	s.WriteString("\n")
	s.WriteString(saveStyle.Render(saveCursor + "Save"))
	if m.dirty {
		s.WriteString(WarnStyle.Render(" (unsaved changes)"))
	}
	s.WriteString("\n\n")

	s.WriteString(HelpStyle.Render("↑/↓ navigate • enter select • s save • q quit"))

	return s.String()
}

func (m Model) renderConfirm() string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(warnColor).
		Padding(1, 2).
		Render("You have unsaved changes.\n\nSave before quitting?\n\n[y] Yes  [n] No  [c] Cancel")
}

// Run starts the editor and returns the saved configuration, or nil when
// the user quit without saving.
func Run(opts Options) (*config.Config, error) {
	final, err := tea.NewProgram(NewModel(opts), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}
	if m, ok := final.(Model); ok {
		return m.Saved(), nil
	}
	return nil, nil
}
