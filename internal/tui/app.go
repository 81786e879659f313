// Package tui implements the interactive planning screen.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/petcare/pawpal/internal/app"
	"github.com/petcare/pawpal/internal/domain"
	"github.com/petcare/pawpal/internal/usecase"
)

// Mode represents the current interaction mode.
type Mode int

// Interaction modes.
const (
	ModePlan Mode = iota // Viewing the plan
	ModeAdd              // Filling the add-task form
)

// Form field indexes, in focus order.
const (
	fieldPet = iota
	fieldDescription
	fieldDuration
	fieldPriority
	fieldTime
	fieldFrequency
	fieldCount
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	container *app.Container
	plan      *usecase.GeneratePlanOutput
	err       error

	keys   KeyMap
	styles Styles
	help   help.Model

	inputs [fieldCount]textinput.Model

	owner       string
	mode        Mode
	focus       int
	showExplain bool
	width       int
	height      int
}

// planLoadedMsg carries a freshly generated plan.
type planLoadedMsg struct {
	out *usecase.GeneratePlanOutput
}

// taskAddedMsg signals that the form was submitted successfully.
type taskAddedMsg struct{}

// errMsg carries an error from a command.
type errMsg struct {
	err error
}

// New creates a new TUI Model for the given owner.
func New(c *app.Container, owner string) *Model {
	m := &Model{
		container: c,
		owner:     owner,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		help:      help.New(),
		mode:      ModePlan,
	}

	placeholders := [fieldCount]string{
		fieldPet:         "Pet name",
		fieldDescription: "Task description",
		fieldDuration:    "Duration in minutes",
		fieldPriority:    "Priority 1-5",
		fieldTime:        "Start time HH:MM",
		fieldFrequency:   "daily, weekly or monthly",
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 100
		m.inputs[i] = ti
	}

	return m
}

// Init loads the initial plan.
func (m *Model) Init() tea.Cmd {
	return m.loadPlan()
}

// loadPlan regenerates the owner's plan.
func (m *Model) loadPlan() tea.Cmd {
	return func() tea.Msg {
		uc := m.container.GeneratePlanUseCase()
		out, err := uc.Execute(context.Background(), usecase.GeneratePlanInput{Owner: m.owner})
		if err != nil {
			return errMsg{err: err}
		}
		return planLoadedMsg{out: out}
	}
}

// submitForm parses the form fields and adds the task.
func (m *Model) submitForm() tea.Cmd {
	pet := strings.TrimSpace(m.inputs[fieldPet].Value())
	description := strings.TrimSpace(m.inputs[fieldDescription].Value())
	durationStr := strings.TrimSpace(m.inputs[fieldDuration].Value())
	priorityStr := strings.TrimSpace(m.inputs[fieldPriority].Value())
	timeStr := strings.TrimSpace(m.inputs[fieldTime].Value())
	frequency := strings.TrimSpace(m.inputs[fieldFrequency].Value())

	return func() tea.Msg {
		duration, err := strconv.Atoi(durationStr)
		if err != nil {
			return errMsg{err: fmt.Errorf("invalid duration %q", durationStr)}
		}
		priority := 3
		if priorityStr != "" {
			priority, err = strconv.Atoi(priorityStr)
			if err != nil {
				return errMsg{err: fmt.Errorf("invalid priority %q", priorityStr)}
			}
		}
		startTime, err := parseTimeOfDay(timeStr)
		if err != nil {
			return errMsg{err: err}
		}
		if frequency == "" {
			frequency = string(domain.FrequencyDaily)
		}

		uc := m.container.AddTaskUseCase()
		_, err = uc.Execute(context.Background(), usecase.AddTaskInput{
			Owner:           m.owner,
			Pet:             pet,
			Description:     description,
			DurationMinutes: duration,
			Priority:        priority,
			Time:            startTime,
			Frequency:       domain.Frequency(frequency),
		})
		if err != nil {
			return errMsg{err: err}
		}
		return taskAddedMsg{}
	}
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case planLoadedMsg:
		m.plan = msg.out
		m.err = nil
		return m, nil

	case taskAddedMsg:
		m.mode = ModePlan
		m.resetForm()
		return m, m.loadPlan()

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.mode == ModeAdd {
			return m.updateAddMode(msg)
		}
		return m.updatePlanMode(msg)
	}

	return m, nil
}

func (m *Model) updatePlanMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Add):
		m.mode = ModeAdd
		m.focus = 0
		m.err = nil
		return m, m.inputs[0].Focus()
	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadPlan()
	case key.Matches(msg, m.keys.Explain):
		m.showExplain = !m.showExplain
		return m, nil
	}
	return m, nil
}

func (m *Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModePlan
		m.resetForm()
		m.err = nil
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m, m.submitForm()
	case key.Matches(msg, m.keys.Next):
		return m, m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m, m.moveFocus(-1)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	return m.inputs[m.focus].Focus()
}

func (m *Model) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
}

// View renders the current screen.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render(fmt.Sprintf("PawPal: plan for %s", m.owner)))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	if m.mode == ModeAdd {
		b.WriteString(m.viewForm())
	} else {
		b.WriteString(m.viewPlan())
	}

	return m.styles.App.Render(b.String())
}

func (m *Model) viewPlan() string {
	var b strings.Builder

	if m.plan == nil {
		b.WriteString("Loading...\n")
		return b.String()
	}

	b.WriteString(m.styles.Section.Render(
		fmt.Sprintf("Schedule (%d of %d min)", m.plan.Scheduled, m.plan.Budget)))
	b.WriteString("\n")
	if len(m.plan.Plan) == 0 {
		b.WriteString(m.styles.PlanSkipped.Render("Nothing to schedule."))
		b.WriteString("\n")
	}
	for _, t := range m.plan.Plan {
		line := fmt.Sprintf("[#%d] %s %s (%s, %d min, priority %d)",
			t.Number, formatTimeOfDay(t.Time), t.Description, t.PetName,
			t.DurationMinutes, t.Priority)
		b.WriteString(m.styles.PlanScheduled.Render(line))
		b.WriteString("\n")
	}

	if m.showExplain {
		b.WriteString(m.styles.Section.Render("Reasoning"))
		b.WriteString("\n")
		for _, line := range m.plan.Explanation {
			b.WriteString(m.styles.PlanLine.Render("  " + line))
			b.WriteString("\n")
		}
	}

	for _, warning := range m.plan.Conflicts {
		b.WriteString(m.styles.Conflict.Render(warning))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Counter.Render(
		fmt.Sprintf("%d incomplete, %d completed", m.plan.Incomplete, m.plan.Completed)))
	b.WriteString("\n")

	b.WriteString(m.styles.Help.Render("a add task · r refresh · e reasoning · q quit"))
	return b.String()
}

func (m *Model) viewForm() string {
	var b strings.Builder

	labels := [fieldCount]string{
		fieldPet:         "Pet",
		fieldDescription: "Description",
		fieldDuration:    "Duration",
		fieldPriority:    "Priority",
		fieldTime:        "Time",
		fieldFrequency:   "Frequency",
	}

	b.WriteString(m.styles.Section.Render("New task"))
	b.WriteString("\n")
	for i := range m.inputs {
		label := m.styles.FormLabel.Render(labels[i])
		if i == m.focus {
			label = m.styles.FormFocused.Render(labels[i])
		}
		b.WriteString(fmt.Sprintf("%s %s\n", label, m.inputs[i].View()))
	}

	b.WriteString(m.styles.Help.Render("enter submit · tab next field · esc cancel"))
	return b.String()
}

func formatTimeOfDay(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func parseTimeOfDay(s string) (int, error) {
	var h, min int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &min); err != nil {
		return 0, fmt.Errorf("invalid time %q (want HH:MM)", s)
	}
	if h < 0 || h > 23 || min < 0 || min > 59 {
		return 0, fmt.Errorf("invalid time %q (want HH:MM)", s)
	}
	return h*60 + min, nil
}
