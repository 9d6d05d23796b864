package app

import (
	"context"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"notes/internal/logging"
	"notes/internal/toast"
	"notes/internal/types"
)

const (
	defaultRequestTimeout = 10 * time.Second
	defaultWidth          = 80
	headerLines           = 2
	helpLines             = 1
)

// Options wires the model to its collaborators. Toasts is shared with
// whatever else wants to notify the user; API and Toasts are required.
type Options struct {
	API            NotesAPI
	Toasts         *toast.Queue
	Logger         logging.Logger
	APIBase        string
	RequestTimeout time.Duration
	InitialRoute   Route
}

// Model is the root bubbletea model. It owns the router and mounts one view
// controller at a time.
type Model struct {
	api     NotesAPI
	toasts  *toast.Queue
	logger  logging.Logger
	apiBase string
	timeout time.Duration

	route   Route
	gen     int
	list    *ListController
	create  *CreateController
	edit    *EditController
	confirm *ConfirmController
	loader  spinner.Model

	width  int
	height int
	now    func() time.Time
}

func NewModel(opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	toasts := opts.Toasts
	if toasts == nil {
		toasts = toast.NewQueue()
	}
	loader := spinner.New(spinner.WithSpinner(spinner.Line))
	loader.Style = lipgloss.NewStyle()
	return &Model{
		api:     opts.API,
		toasts:  toasts,
		logger:  logger,
		apiBase: opts.APIBase,
		timeout: timeout,
		route:   opts.InitialRoute,
		confirm: NewConfirmController(),
		loader:  loader,
		now:     time.Now,
	}
}

// Run starts the TUI and blocks until it exits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	_, err := newProgram(ctx, NewModel(opts)).Run()
	return err
}

func newProgram(ctx context.Context, model *Model, extra ...tea.ProgramOption) *tea.Program {
	p := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithContext(ctx)}, extra...)...)
	// Queue changes fire from Update as well as from expiry timers. Send
	// blocks until the event loop reads it, so it must not run on the
	// goroutine that is inside Update.
	model.toasts.OnChange(func() {
		go p.Send(toastsChangedMsg{})
	})
	return p
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.navigate(m.route), m.loader.Tick)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.loader, cmd = m.loader.Update(msg)
		return m, cmd
	case toastsChangedMsg:
		return m, nil
	case navigateMsg:
		return m, m.navigate(msg.route)
	case notesLoadedMsg:
		return m, m.reduceNotesLoaded(msg)
	case noteLoadedMsg:
		return m, m.reduceNoteLoaded(msg)
	case noteCreatedMsg:
		return m, m.reduceNoteCreated(msg)
	case noteSavedMsg:
		return m, m.reduceNoteSaved(msg)
	case noteDeletedMsg:
		return m, m.reduceNoteDeleted(msg)
	case clipboardResultMsg:
		m.reduceClipboardResult(msg)
		return m, nil
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	}
	if form := m.activeForm(); form != nil {
		return m, form.Update(msg)
	}
	return m, nil
}

func (m *Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

func (m *Model) Route() Route {
	return m.route
}

// navigate mounts the view for route. Bumping the generation makes results
// still in flight for the previous view stale.
func (m *Model) navigate(route Route) tea.Cmd {
	m.gen++
	m.route = route
	m.confirm.Close()
	m.list, m.create, m.edit = nil, nil, nil
	m.logger.Debug("navigate", logging.F("route", route.Path()), logging.F("generation", m.gen))

	switch route.kind {
	case routeCreate:
		m.create = NewCreateController(m.gen)
		m.create.form.SetWidth(m.contentWidth())
		return m.create.form.Focus()
	case routeEdit:
		m.edit = NewEditController(m.gen, route.id)
		return fetchNoteCmd(m.api, m.gen, route.id, m.timeout)
	default:
		m.list = NewListController(m.gen)
		return m.refreshList()
	}
}

func (m *Model) refreshList() tea.Cmd {
	if m.list == nil || m.list.loading {
		return nil
	}
	m.list.StartLoad()
	return fetchNotesCmd(m.api, m.list.gen, m.timeout)
}

func (m *Model) activeForm() *noteForm {
	switch {
	case m.create != nil:
		return m.create.form
	case m.edit != nil && m.edit.Ready():
		return m.edit.form
	}
	return nil
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	if form := m.activeForm(); form != nil {
		form.SetWidth(m.contentWidth())
	}
}

func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

func (m *Model) render() string {
	width := m.contentWidth()
	toasts := m.toastLines(width)
	bodyHeight := 0
	if m.height > 0 {
		bodyHeight = max(1, m.height-headerLines-helpLines-len(toasts))
	}

	lines := []string{
		spread(headerStyle.Render("Notes"), statusStyle.Render(truncateToWidth(m.apiBase, max(1, width/2))), width),
		dividerStyle.Render(strings.Repeat("─", width)),
	}
	lines = append(lines, strings.Split(m.bodyView(width, bodyHeight), "\n")...)
	if m.height > 0 {
		target := headerLines + bodyHeight
		if len(lines) > target {
			lines = lines[:target]
		}
		for len(lines) < target {
			lines = append(lines, "")
		}
	}
	lines = append(lines, toasts...)
	lines = append(lines, helpStyle.Render(truncateToWidth(m.helpText(), width)))
	out := strings.Join(lines, "\n")

	if m.confirm.IsOpen() {
		block, row := m.confirm.View(width, m.height)
		out = overlayAt(out, block, row)
	}
	return out
}

func (m *Model) bodyView(width, height int) string {
	spin := m.loader.View()
	switch {
	case m.list != nil:
		return m.list.View(width, height, spin)
	case m.create != nil:
		return m.create.View(width)
	case m.edit != nil:
		return m.edit.View(width, spin)
	}
	return ""
}

func (m *Model) helpText() string {
	if m.confirm.IsOpen() {
		return "y confirm • n/esc cancel • ←/→ select • enter choose"
	}
	switch {
	case m.create != nil:
		return "tab next field • ctrl+s create • esc cancel • ctrl+x dismiss toast"
	case m.edit != nil && m.edit.Ready():
		return "tab next field • ctrl+s save • ctrl+d delete • ctrl+y copy • ctrl+p preview • esc back • ctrl+x dismiss toast"
	case m.edit != nil:
		return "enter/esc back to list • ctrl+c quit"
	}
	return "↑/↓ select • enter edit • n new • d delete • r refresh • x dismiss toast • q quit"
}

func (m *Model) currentNote() (types.Note, bool) {
	if m.list == nil {
		return types.Note{}, false
	}
	return m.list.Selected()
}
