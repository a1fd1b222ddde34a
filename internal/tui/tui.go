package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/n0roo/opsdash/internal/catalog"
	"github.com/n0roo/opsdash/internal/classifier"
	"github.com/n0roo/opsdash/internal/dashboard"
	"github.com/n0roo/opsdash/internal/insight"
	"github.com/n0roo/opsdash/internal/kpi"
	"github.com/n0roo/opsdash/internal/navigator"
	"github.com/n0roo/opsdash/internal/watcher"
)

const (
	cardWidth    = 26
	overlayWidth = 64
)

// Loader reads the catalog the dashboards run on
type Loader func() (*catalog.Catalog, error)

// Options configures the TUI
type Options struct {
	Loader Loader
	Logger *zap.Logger
	// Start is the dashboard shown first
	Start classifier.DashboardID
	// Plain renders insights without terminal styling
	Plain bool
	// WatchPath reloads the catalog when this file changes
	WatchPath string
}

// Model is the main TUI model. One mounted instance per dashboard tab.
type Model struct {
	loader   Loader
	logger   *zap.Logger
	registry *dashboard.Registry
	tabs     []*dashboard.Instance

	// State
	current    int
	cursor     int
	width      int
	height     int
	ready      bool
	loading    bool
	lastReload time.Time
	err        error

	// Components
	spinner spinner.Model
	md      *glamour.TermRenderer
}

// CatalogChangedMsg asks the model to reload its catalog
type CatalogChangedMsg struct{}

// reloadMsg carries a freshly loaded catalog
type reloadMsg struct {
	catalog *catalog.Catalog
	err     error
}

// NewModel loads the catalog and mounts every dashboard
func NewModel(opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	c, err := opts.Loader()
	if err != nil {
		return Model{}, fmt.Errorf("카탈로그 로드 실패: %w", err)
	}
	engine, err := dashboard.NewEngine(c)
	if err != nil {
		return Model{}, fmt.Errorf("엔진 생성 실패: %w", err)
	}

	registry := dashboard.NewRegistry(engine, logger)
	tabs := make([]*dashboard.Instance, 0, len(classifier.Dashboards()))
	current := 0
	for i, id := range classifier.Dashboards() {
		inst, err := registry.Mount(id)
		if err != nil {
			return Model{}, err
		}
		tabs = append(tabs, inst)
		if id == opts.Start {
			current = i
		}
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(primaryColor)

	style := glamour.WithAutoStyle()
	if opts.Plain {
		style = glamour.WithStandardStyle("notty")
	}
	md, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(overlayWidth-8))
	if err != nil {
		logger.Warn("Markdown renderer unavailable", zap.Error(err))
		md = nil
	}

	return Model{
		loader:     opts.Loader,
		logger:     logger,
		registry:   registry,
		tabs:       tabs,
		current:    current,
		lastReload: time.Now(),
		spinner:    s,
		md:         md,
	}, nil
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Current returns the instance of the active tab
func (m Model) Current() *dashboard.Instance {
	return m.tabs[m.current]
}

func (m Model) reload() tea.Msg {
	c, err := m.loader()
	return reloadMsg{catalog: c, err: err}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case CatalogChangedMsg:
		m.loading = true
		return m, m.reload

	case reloadMsg:
		m.loading = false
		m.lastReload = time.Now()
		if msg.err != nil {
			m.err = fmt.Errorf("카탈로그 로드 실패: %w", msg.err)
			m.logger.Warn("Reload failed", zap.Error(msg.err))
			return m, nil
		}
		engine, err := dashboard.NewEngine(msg.catalog)
		if err != nil {
			// 이전 엔진을 유지한다
			m.err = fmt.Errorf("엔진 생성 실패: %w", err)
			m.logger.Warn("Reload rejected", zap.Error(err))
			return m, nil
		}
		m.err = nil
		m.registry.Rebind(engine)
		m.cursor = clamp(m.cursor, len(m.focusItems()))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	inst := m.Current()
	before := inst.Tier()

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "1", "2", "3", "4", "5":
		if i := int(msg.String()[0] - '1'); i < len(m.tabs) {
			m.switchTab(i)
		}
		return m, nil
	case "tab":
		m.switchTab((m.current + 1) % len(m.tabs))
		return m, nil
	case "shift+tab":
		m.switchTab((m.current + len(m.tabs) - 1) % len(m.tabs))
		return m, nil
	case "j", "down":
		m.cursor = clamp(m.cursor+1, len(m.focusItems()))
	case "k", "up":
		m.cursor = clamp(m.cursor-1, len(m.focusItems()))
	case "d":
		inst.ToggleTier2()
	case "enter":
		m.activate(false)
	case "i":
		m.activate(true)
	case "esc":
		inst.Back()
	case "r":
		m.loading = true
		return m, m.reload
	}

	if inst.Tier() != before {
		m.cursor = 0
	}
	return m, nil
}

func (m *Model) switchTab(i int) {
	if i == m.current {
		return
	}
	m.current = i
	m.cursor = 0
}

// focusList is what the cursor moves over at the current depth
type focusList struct {
	cards      []catalog.Card
	categories []catalog.Category
}

func (m Model) focus() focusList {
	inst := m.Current()
	board := inst.Content()
	s := inst.State()

	switch {
	case s.Tier3Category != "":
		cat, _ := board.Category(s.Tier3Category)
		return focusList{cards: cat.Cards}
	case s.Tier2Open:
		return focusList{categories: board.Categories}
	default:
		return focusList{cards: board.Cards}
	}
}

func (m Model) focusItems() []string {
	f := m.focus()
	items := make([]string, 0, len(f.cards)+len(f.categories))
	for _, c := range f.cards {
		items = append(items, c.Label)
	}
	for _, c := range f.categories {
		items = append(items, c.ID)
	}
	return items
}

// activate acts on the item under the cursor. Cards open the insight
// overlay, categories open tier 3 unless cardsOnly is set.
func (m *Model) activate(cardsOnly bool) {
	inst := m.Current()
	f := m.focus()

	switch {
	case len(f.cards) > 0:
		card := f.cards[clamp(m.cursor, len(f.cards))]
		inst.Inspect(card.Label, formatValue(card))
	case len(f.categories) > 0 && !cardsOnly:
		inst.OpenTier3(f.categories[clamp(m.cursor, len(f.categories))].ID)
	}
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "\n  Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	main := m.renderBoard()
	if overlay := m.renderInsight(); overlay != "" {
		main = lipgloss.JoinHorizontal(lipgloss.Top, main, "  ", overlay)
	}
	b.WriteString(main)

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("  " + m.err.Error()))
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderHeader() string {
	title := "🏥 Hospital Operations"
	status := fmt.Sprintf("Catalog: %s", m.lastReload.Format("15:04:05"))
	if m.loading {
		status = m.spinner.View() + " Reloading"
	}

	headerWidth := m.width
	if headerWidth < 60 {
		headerWidth = 60
	}

	left := lipgloss.NewStyle().Bold(true).Render(title)
	right := lipgloss.NewStyle().Foreground(mutedColor).Render(status)

	gap := headerWidth - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 0 {
		gap = 0
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color("#2D3748")).
		Foreground(lipgloss.Color("#FFFFFF")).
		Padding(0, 1).
		Width(headerWidth).
		Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderTabs() string {
	var tabs []string
	for i, inst := range m.tabs {
		style := tabStyle
		if i == m.current {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(fmt.Sprintf("[%d]%s", i+1, tabTitle(inst))))
	}
	return strings.Join(tabs, " ")
}

func tabTitle(inst *dashboard.Instance) string {
	if t := inst.Content().Title; t != "" {
		return t
	}
	return inst.Board.Domain().Title()
}

func (m Model) renderFooter() string {
	s := m.Current().State()

	var help string
	switch {
	case s.Tier3Category != "":
		help = "  [j/k] Move  [Enter/i] Insight  [Esc] Back  [r] Reload  [q] Quit"
	case s.Tier2Open:
		help = "  [j/k] Move  [Enter] Open category  [d] Collapse  [Esc] Back  [r] Reload  [q] Quit"
	default:
		help = "  [1-5] Dashboards  [j/k] Move  [Enter/i] Insight  [d] Details  [r] Reload  [q] Quit"
	}
	if s.Insight != nil {
		help += "  [Esc] Close insight"
	}
	return helpStyle.Render(help)
}

func (m Model) renderBoard() string {
	inst := m.Current()
	board := inst.Content()
	s := inst.State()

	var b strings.Builder

	focusCards := !s.Tier2Open
	b.WriteString(m.renderCards(board.Cards, focusCards))

	if s.Tier2Open {
		b.WriteString("\n")
		b.WriteString(m.renderCategories(board.Categories, s.Tier3Category == ""))
	}

	if s.Tier3Category != "" {
		cat, ok := board.Category(s.Tier3Category)
		if ok {
			b.WriteString("\n")
			b.WriteString(m.renderCategoryModal(cat))
		}
	}

	return b.String()
}

func (m Model) cardsPerRow() int {
	width := m.width
	if m.Current().State().Insight != nil {
		width -= overlayWidth + 2
	}
	n := width / (cardWidth + 4)
	if n < 1 {
		return 1
	}
	return n
}

func (m Model) renderCards(cards []catalog.Card, focused bool) string {
	if len(cards) == 0 {
		return subtitleStyle.Render("  No metrics")
	}

	perRow := m.cardsPerRow()
	var rows []string
	var row []string
	for i, c := range cards {
		row = append(row, renderCard(c, focused && i == m.cursor))
		if len(row) == perRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCard(c catalog.Card, selected bool) string {
	style := cardStyle
	if selected {
		style = cardSelectedStyle
	}

	s := kpi.Summarize(c.Series)
	inner := cardWidth - 2
	lines := []string{
		truncate(c.Label, inner),
		cardValueStyle.Render(formatValue(c)),
	}
	if s.Count > 0 {
		trend := trendStyle(s.Change).Render(kpi.Trend(s.Change) + " " + kpi.FormatChange(s.Change))
		lines = append(lines, sparkStyle.Render(kpi.Sparkline(c.Series))+" "+trend)
	}

	return style.Width(cardWidth).Render(strings.Join(lines, "\n"))
}

func formatValue(c catalog.Card) string {
	switch c.Unit {
	case "":
		return c.Value
	case "%":
		return c.Value + "%"
	default:
		return c.Value + " " + c.Unit
	}
}

func (m Model) renderCategories(categories []catalog.Category, focused bool) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Detailed Analytics"))
	b.WriteString("\n")

	if len(categories) == 0 {
		b.WriteString(subtitleStyle.Render("  No categories"))
		return panelStyle.Render(b.String())
	}

	for i, cat := range categories {
		rising := 0
		for _, c := range cat.Cards {
			if kpi.Summarize(c.Series).Change > 0.5 {
				rising++
			}
		}
		line := fmt.Sprintf("%s %s",
			padRight(truncate(cat.Title, 28), 28),
			subtitleStyle.Render(fmt.Sprintf("%d metrics, %d rising", len(cat.Cards), rising)))

		if focused && i == m.cursor {
			b.WriteString(selectedItemStyle.Render("> " + line))
		} else {
			b.WriteString(normalItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderCategoryModal(cat catalog.Category) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(cat.Title))
	b.WriteString("\n\n")

	for i, c := range cat.Cards {
		s := kpi.Summarize(c.Series)
		line := fmt.Sprintf("%s %s %s  min %.1f  max %.1f  avg %.1f  %s",
			padRight(truncate(c.Label, 30), 30),
			padRight(formatValue(c), 10),
			sparkStyle.Render(kpi.Sparkline(c.Series)),
			s.Min, s.Max, s.Mean,
			trendStyle(s.Change).Render(kpi.FormatChange(s.Change)))

		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render("> " + line))
		} else {
			b.WriteString(normalItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return modalStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderInsight() string {
	o, p, ok := m.Current().Insight()
	if !ok {
		return ""
	}

	doc := insight.Markdown(o.Title, o.Value, p)
	body := doc
	if m.md != nil {
		if out, err := m.md.Render(doc); err == nil {
			body = out
		} else {
			m.logger.Warn("Markdown render failed", zap.Error(err))
		}
	}

	if p.Fallback {
		body = fallbackBadgeStyle.Render("generic insight for "+string(p.Kind)) + "\n" + body
	}

	return overlayStyle.Width(overlayWidth).Render(strings.TrimRight(body, "\n"))
}

// Tier reports the active tab's drill-down depth
func (m Model) Tier() navigator.Tier {
	return m.Current().Tier()
}

// Run starts the TUI. When opts.WatchPath is set the catalog is
// reloaded whenever that file changes.
func Run(ctx context.Context, opts Options) error {
	m, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if opts.WatchPath != "" {
		w, err := watcher.New(opts.WatchPath,
			watcher.WithLogger(m.logger),
			watcher.WithOnChange(func() { p.Send(CatalogChangedMsg{}) }),
			watcher.WithOnError(func(err error) { m.logger.Warn("Watch error", zap.Error(err)) }),
		)
		if err != nil {
			return err
		}
		if err := w.Start(ctx); err != nil {
			return err
		}
		defer w.Close()
	}

	_, err = p.Run()
	return err
}
