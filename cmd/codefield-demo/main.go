package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	root "github.com/iw2rmb/codefield"
	"github.com/iw2rmb/codefield/codefield"
	"github.com/iw2rmb/codefield/editor"
	"github.com/iw2rmb/codefield/form"
	"github.com/iw2rmb/codefield/internal/config"
	"github.com/iw2rmb/codefield/internal/store"
)

const (
	classNotes = "notes"

	refName  = "name"
	refDoc   = "doc"
	refNotes = "notes"
)

var defaults = map[string]string{
	refName:  "example",
	refDoc:   "<a/>",
	refNotes: "Edit the document above.\nctrl+n / ctrl+p move between fields.",
}

type keyMap struct {
	Quit     key.Binding
	Readonly key.Binding
	Server   key.Binding
}

var keys = keyMap{
	Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Readonly: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "toggle readonly")),
	Server:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "server update")),
}

var statusStyle = lipgloss.NewStyle().Faint(true)

type model struct {
	form     *form.Form
	readonly bool
	revision int
	width    int
	status   string
}

func newForm(inst *form.Instance, cfg config.Config, opts ...form.Option) (*form.Form, error) {
	f := form.New(inst, opts...)
	f.Register(form.ClassInput, form.InputDefinition())
	codefield.Register(f)
	f.Register(classNotes, codefield.Definition(codefield.WithEditorConfig(editor.Config{
		Mode:        cfg.Editor.Mode,
		LineNumbers: cfg.Editor.LineNumbers,
		IndentUnit:  cfg.Editor.IndentUnit,
		Style:       editor.DefaultStyle(),
	})))

	specs := []form.ControlSpec{
		{ID: "name", Class: form.ClassInput, Label: "Name", Ref: refName},
		{ID: "code", Class: codefield.ClassName, Label: "Document", Ref: refDoc, Readonly: cfg.Demo.Readonly, Height: 10},
		{ID: "notes", Class: classNotes, Label: "Notes", Ref: refNotes, Height: 4},
	}
	for _, spec := range specs {
		if _, err := f.Add(spec); err != nil {
			return nil, err
		}
	}
	f.EnableAll()
	return f, nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Readonly):
			m.readonly = !m.readonly
			if err := m.form.SetReadonly("code", m.readonly); err != nil {
				m.status = err.Error()
			} else {
				m.status = fmt.Sprintf("document readonly: %v", m.readonly)
			}
			return m, nil
		case key.Matches(msg, keys.Server):
			m.revision++
			m.form.Instance().SetValue(refDoc, serverDocument(m.revision))
			m.status = fmt.Sprintf("server wrote revision %d", m.revision)
			return m, nil
		}
	}
	return m, m.form.Update(msg)
}

// serverDocument simulates a value computed outside the editor.
func serverDocument(rev int) string {
	return fmt.Sprintf("<doc revision=\"%d\">\n    <a/>\n</doc>", rev)
}

func (m model) View() string {
	help := make([]string, 0, 3)
	for _, b := range []key.Binding{keys.Server, keys.Readonly, keys.Quit} {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	status := root.VersionTag() + " | " + strings.Join(help, " • ")
	if m.status != "" {
		status = m.status + " | " + status
	}
	if m.width > 0 {
		status = ansi.Truncate(status, m.width, "…")
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.form.View(), statusStyle.Render(status))
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var formOpts []form.Option
	if os.Getenv("CODEFIELD_DEBUG") != "" {
		f, err := tea.LogToFile("codefield-debug.log", "debug")
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
		formOpts = append(formOpts, form.WithLogger(log.Default()))
	}

	inst := form.NewInstance(defaults)
	if cfg.Database.Path != "" {
		s, err := store.Open(cfg.Database.Path)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		defer s.Close()

		if id, ok, err := s.Latest(ctx); err != nil {
			log.Fatalf("latest instance: %v", err)
		} else if ok {
			if inst, err = s.Load(ctx, id, defaults); err != nil {
				log.Fatalf("load: %v", err)
			}
		} else if err := s.Save(ctx, inst); err != nil {
			log.Fatalf("save: %v", err)
		}
		s.Attach(ctx, inst, func(err error) { log.Printf("store: %v", err) })
	}

	f, err := newForm(inst, cfg, formOpts...)
	if err != nil {
		log.Fatalf("form: %v", err)
	}
	f.FocusNext()

	p := tea.NewProgram(model{form: f, readonly: cfg.Demo.Readonly}, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
