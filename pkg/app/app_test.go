package app

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/vtable/pkg/record"
	"gitlab.com/tinyland/lab/vtable/pkg/sorting"
	"gitlab.com/tinyland/lab/vtable/pkg/termtest"
	"gitlab.com/tinyland/lab/vtable/pkg/theme"
)

// plainStyles renders without escape sequences.
func plainStyles() theme.Styles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return theme.NewStyles(theme.Get("default"), r)
}

func testOptions() Options {
	return Options{
		Source:        record.NewGenerator(1),
		Rows:          100,
		Overscan:      2,
		RowHeight:     1,
		Styles:        plainStyles(),
		Mouse:         true,
		StatusTimeout: time.Second,
	}
}

// newTestModel returns a model over 100 rows sized to an 80x24 terminal:
// 22 table lines after the footer, 20 of them for rows.
func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	m, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m, _ = update(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

// update sends a message through Update and returns the updated model.
func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func offset(m Model) float64 {
	return m.Table().Viewport().ScrollOffset
}

// flakySource generates normally once, then panics.
type flakySource struct {
	calls int
	gen   *record.Generator
}

func (s *flakySource) Generate(n int) []record.Record {
	s.calls++
	if s.calls > 1 {
		panic("source exhausted")
	}
	return s.gen.Generate(n)
}

func TestNewRequiresSource(t *testing.T) {
	if _, err := New(Options{}); err == nil {
		t.Error("expected error for nil source")
	}
}

func TestInitReturnsCmd(t *testing.T) {
	m := newTestModel(t, testOptions())
	if m.Init() == nil {
		t.Fatal("Init() returned nil")
	}
}

func TestWindowSizeMsgResizesViewport(t *testing.T) {
	m := newTestModel(t, testOptions())
	if m.Width() != 80 || m.Height() != 24 {
		t.Errorf("expected 80x24, got %dx%d", m.Width(), m.Height())
	}
	if got := m.Table().Viewport().Height; got != 20 {
		t.Errorf("expected viewport height 20, got %v", got)
	}
	w := m.Table().Window()
	if w.Start != 0 || w.End != 22 {
		t.Errorf("expected window [0,22) with overscan 2, got [%d,%d)", w.Start, w.End)
	}
}

func TestArrowKeysScroll(t *testing.T) {
	m := newTestModel(t, testOptions())
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(m, runes("j"))
	if offset(m) != 2 {
		t.Errorf("expected offset 2 after two downs, got %v", offset(m))
	}
	m, _ = update(m, runes("k"))
	if offset(m) != 1 {
		t.Errorf("expected offset 1 after up, got %v", offset(m))
	}
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyUp})
	if offset(m) != 0 {
		t.Errorf("offset should clamp at 0, got %v", offset(m))
	}
}

func TestPagingAndJumps(t *testing.T) {
	m := newTestModel(t, testOptions())
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyPgDown})
	if offset(m) != 20 {
		t.Errorf("expected offset 20 after page down, got %v", offset(m))
	}
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnd})
	if offset(m) != 80 {
		t.Errorf("expected offset 80 at end, got %v", offset(m))
	}
	if w := m.Table().Window(); w.End != 100 {
		t.Errorf("expected window to reach the last row, got %+v", w)
	}
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyPgUp})
	if offset(m) != 60 {
		t.Errorf("expected offset 60 after page up, got %v", offset(m))
	}
	m, _ = update(m, runes("g"))
	if offset(m) != 0 {
		t.Errorf("expected offset 0 at top, got %v", offset(m))
	}
}

func TestSortKeyCyclesColumn(t *testing.T) {
	m := newTestModel(t, testOptions())
	want := []sorting.Spec{
		{Key: record.KeyAge, Direction: sorting.Ascending},
		{Key: record.KeyAge, Direction: sorting.Descending},
		{},
	}
	for i, w := range want {
		var cmd tea.Cmd
		m, cmd = update(m, runes("4"))
		if got := m.Table().Spec(); got != w {
			t.Errorf("press %d: expected %v, got %v", i+1, w, got)
		}
		if cmd == nil {
			t.Errorf("press %d: expected a status timeout cmd", i+1)
		}
		if status, isErr := m.Status(); isErr || !strings.HasPrefix(status, "sort: ") {
			t.Errorf("press %d: unexpected status %q (err=%v)", i+1, status, isErr)
		}
	}
}

func TestSortKeyOutOfRange(t *testing.T) {
	m := newTestModel(t, testOptions())
	m, _ = update(m, runes("9"))
	status, isErr := m.Status()
	if !isErr || !strings.Contains(status, "no column 9") {
		t.Errorf("expected error status, got %q (err=%v)", status, isErr)
	}
}

func TestUnknownColumnShowsErrorAndKeepsSort(t *testing.T) {
	opts := testOptions()
	opts.Columns = []string{record.KeyID, "bogus"}
	m := newTestModel(t, opts)

	m, _ = update(m, runes("1"))
	m, _ = update(m, runes("2"))
	status, isErr := m.Status()
	if !isErr || !strings.Contains(status, "bogus") {
		t.Errorf("expected configuration error status, got %q (err=%v)", status, isErr)
	}
	if got := m.Table().Spec(); got != (sorting.Spec{Key: record.KeyID, Direction: sorting.Ascending}) {
		t.Errorf("sort should be unchanged, got %v", got)
	}
	if !strings.Contains(m.View(), "⊘") {
		t.Error("disabled column indicator missing from view")
	}
}

func TestQSendsQuitMessage(t *testing.T) {
	m := newTestModel(t, testOptions())
	m, cmd := update(m, runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel(t, testOptions())
	_, cmd := update(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestQuestionMarkTogglesHelp(t *testing.T) {
	m := newTestModel(t, testOptions())
	before := m.Table().Viewport().Height
	m, _ = update(m, runes("?"))
	after := m.Table().Viewport().Height
	if after >= before {
		t.Errorf("full help should shrink the viewport: %v -> %v", before, after)
	}
	if !strings.Contains(m.View(), "force rerender") {
		t.Error("full help missing from view")
	}
	m, _ = update(m, runes("?"))
	if m.Table().Viewport().Height != before {
		t.Errorf("closing help should restore the viewport, got %v", m.Table().Viewport().Height)
	}
}

func TestRefreshReplacesRecordsAndKeepsSort(t *testing.T) {
	m := newTestModel(t, testOptions())
	m, _ = update(m, runes("6")) // status
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyPgDown})

	m, cmd := update(m, runes("r"))
	if cmd == nil {
		t.Fatal("expected refresh command")
	}
	if _, again := update(m, runes("r")); again != nil {
		t.Error("second refresh while one is running should be ignored")
	}

	msg, ok := cmd().(RecordsRefreshedMsg)
	if !ok {
		t.Fatalf("expected RecordsRefreshedMsg, got %T", cmd())
	}
	if msg.Err != nil || len(msg.Records) != 100 {
		t.Fatalf("unexpected refresh result: err=%v rows=%d", msg.Err, len(msg.Records))
	}
	m, _ = update(m, msg)

	if got := m.Table().Records()[0].ID; got != 100 {
		t.Errorf("expected new identities starting at 100, got %d", got)
	}
	if got := m.Table().Spec(); got.Key != record.KeyStatus || got.Direction != sorting.Ascending {
		t.Errorf("sort lost across refresh: %v", got)
	}
	if offset(m) != 20 {
		t.Errorf("offset should survive refresh, got %v", offset(m))
	}
	if status, _ := m.Status(); !strings.HasPrefix(status, "refreshed 100 rows") {
		t.Errorf("unexpected status %q", status)
	}
}

func TestRefreshErrorReported(t *testing.T) {
	opts := testOptions()
	opts.Source = &flakySource{gen: record.NewGenerator(1)}
	m := newTestModel(t, opts)

	m, cmd := update(m, runes("r"))
	m, _ = update(m, cmd())
	status, isErr := m.Status()
	if !isErr || !strings.Contains(status, "source exhausted") {
		t.Errorf("expected refresh error status, got %q (err=%v)", status, isErr)
	}
	if m.Table().Len() != 100 {
		t.Errorf("failed refresh should keep the old rows, got %d", m.Table().Len())
	}
}

func TestStatusExpires(t *testing.T) {
	m := newTestModel(t, testOptions())
	m, _ = update(m, runes("1"))
	m, _ = update(m, runes("1"))

	m, _ = update(m, StatusExpiredMsg{Seq: 1})
	if status, _ := m.Status(); status == "" {
		t.Error("stale expiry cleared a newer status")
	}
	m, _ = update(m, StatusExpiredMsg{Seq: 2})
	if status, _ := m.Status(); status != "" {
		t.Errorf("status should be cleared, got %q", status)
	}
}

func TestStatusTimeoutCmdDisabled(t *testing.T) {
	if StatusTimeoutCmd(0, 1) != nil {
		t.Error("zero timeout should not schedule anything")
	}
}

func TestMouseWheelScrolls(t *testing.T) {
	m := newTestModel(t, testOptions())
	m, _ = update(m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if offset(m) != wheelLines {
		t.Errorf("expected offset %d, got %v", wheelLines, offset(m))
	}
	m, _ = update(m, tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	if offset(m) != 0 {
		t.Errorf("expected offset 0, got %v", offset(m))
	}
}

func TestMouseClickOnHeaderSorts(t *testing.T) {
	m := newTestModel(t, testOptions())
	m, _ = update(m, tea.MouseMsg{X: 2, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if got := m.Table().Spec(); got != (sorting.Spec{Key: record.KeyID, Direction: sorting.Ascending}) {
		t.Errorf("expected id asc, got %v", got)
	}
	m, _ = update(m, tea.MouseMsg{X: 2, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if got := m.Table().Spec(); got.Direction != sorting.Ascending {
		t.Errorf("click below the header should not sort, got %v", got)
	}
}

func TestMouseDisabled(t *testing.T) {
	opts := testOptions()
	opts.Mouse = false
	m := newTestModel(t, opts)
	m, _ = update(m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if offset(m) != 0 {
		t.Errorf("mouse disabled, expected offset 0, got %v", offset(m))
	}
}

func TestRerenderKey(t *testing.T) {
	m := newTestModel(t, testOptions())
	before := m.Table().Stats()
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	after := m.Table().Stats()
	if after.Windows != before.Windows+1 {
		t.Errorf("expected one more window derivation, got %d -> %d", before.Windows, after.Windows)
	}
	if after.Sorts != before.Sorts {
		t.Errorf("force rerender re-ran the sort: %d -> %d", before.Sorts, after.Sorts)
	}
}

func TestViewReturnsInitializingBeforeResize(t *testing.T) {
	m, err := New(testOptions())
	if err != nil {
		t.Fatal(err)
	}
	if m.View() != "Initializing..." {
		t.Errorf("unexpected view %q", m.View())
	}
}

func TestViewLayout(t *testing.T) {
	m := newTestModel(t, testOptions())
	view := m.View()
	if err := termtest.ValidateFrame(view, 80, 24); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(view, "\n")
	if !strings.Contains(lines[0], "First Name") {
		t.Errorf("first line should be the header, got %q", lines[0])
	}
	info := lines[22]
	for _, want := range []string{"100 Rows", "unsorted", "renders"} {
		if !strings.Contains(info, want) {
			t.Errorf("info line %q missing %q", info, want)
		}
	}
	if !strings.Contains(lines[23], "quit") {
		t.Errorf("help line %q missing quit", lines[23])
	}
}

func TestSnapshot(t *testing.T) {
	m, err := New(testOptions())
	if err != nil {
		t.Fatal(err)
	}
	out := m.Snapshot(100, 12)
	if err := termtest.ValidateFrame(out, 100, 12); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[len(lines)-1], "100 Rows") {
		t.Errorf("last line should be the info line, got %q", lines[len(lines)-1])
	}
	if got := m.Table().Viewport().Height; got != 9 {
		t.Errorf("snapshot should size the viewport to 9 rows, got %v", got)
	}
}

func TestDecoratorsCoverStyledColumns(t *testing.T) {
	d := Decorators(plainStyles())
	for _, k := range []string{record.KeyStatus, record.KeyProgress} {
		if d[k] == nil {
			t.Errorf("missing decorator for %s", k)
		}
	}
}
