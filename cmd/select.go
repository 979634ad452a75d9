package cmd

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/fsviz/internal/core/analysis"
	"github.com/kamal-hamza/fsviz/internal/core/domain"
	"github.com/kamal-hamza/fsviz/pkg/ui"
)

var selectCmd = &cobra.Command{
	Use:   "select [directory]",
	Short: "Pick file types with checkboxes and chart them",
	Long: `Walk a directory, list every file type with a checkbox and render the
charts for the checked types. All types start checked.

Keyboard Shortcuts:
  ↑/k ↓/j     Move
  Space       Toggle type
  a           Check all
  n           Check none
  Enter       Generate charts
  q / Esc     Quit without generating`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSelect,
}

func runSelect(cmd *cobra.Command, args []string) error {
	result, err := scanRoot(cmd.Context(), args)
	if err != nil {
		return err
	}
	if result.Count() == 0 {
		fmt.Println(ui.FormatWarning("No files found"))
		return nil
	}

	filter, ok, err := runExtensionSelector(result)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println(ui.FormatInfo("Operation cancelled."))
		return nil
	}

	path, _, err := renderReport(cmd.Context(), result, filter, "")
	if err != nil {
		return err
	}
	fmt.Println(ui.FormatSuccess("Charts written to " + path))
	fmt.Println(ui.FormatMuted("  Selection: " + filter.String()))

	if appConfig.OpenCharts {
		if err := OpenFile(path); err != nil {
			fmt.Println(ui.FormatWarning(err.Error()))
		}
	}
	return nil
}

// runExtensionSelector shows the checkbox list. ok is false when the user
// quit without generating.
func runExtensionSelector(result *domain.ScanResult) (domain.ExtensionFilter, bool, error) {
	types := analysis.AggregateTypes(result.Records, domain.NewExtensionFilter())

	view, err := NewExtensionSelectorView(types)
	if err != nil {
		return domain.ExtensionFilter{}, false, fmt.Errorf("failed to start selector: %w", err)
	}
	return view.Run()
}

// selection is the checkbox state, kept apart from the screen
type selection struct {
	items   []domain.TypeCount
	checked []bool
	cursor  int
}

func newSelection(types domain.AggregationTable) *selection {
	s := &selection{
		items:   types.Entries,
		checked: make([]bool, types.Len()),
	}
	s.setAll(true)
	return s
}

func (s *selection) move(delta int) {
	s.cursor += delta
	if s.cursor > len(s.items)-1 {
		s.cursor = len(s.items) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *selection) toggle() {
	if len(s.items) == 0 {
		return
	}
	s.checked[s.cursor] = !s.checked[s.cursor]
}

func (s *selection) setAll(v bool) {
	for i := range s.checked {
		s.checked[i] = v
	}
}

func (s *selection) countChecked() int {
	n := 0
	for _, c := range s.checked {
		if c {
			n++
		}
	}
	return n
}

// filter returns the checked extensions. They come from the aggregation
// table so they are already normalized.
func (s *selection) filter() domain.ExtensionFilter {
	var exts []string
	for i, item := range s.items {
		if s.checked[i] {
			exts = append(exts, item.Extension)
		}
	}
	return domain.NewExtensionFilter(exts...)
}

// ExtensionSelectorView is a full-screen checkbox list of file types
type ExtensionSelectorView struct {
	sel    *selection
	screen tcell.Screen
	width  int
	height int
	offset int
}

// NewExtensionSelectorView creates the selector and takes over the terminal
func NewExtensionSelectorView(types domain.AggregationTable) (*ExtensionSelectorView, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	if err := screen.Init(); err != nil {
		return nil, err
	}

	width, height := screen.Size()

	return &ExtensionSelectorView{
		sel:    newSelection(types),
		screen: screen,
		width:  width,
		height: height,
	}, nil
}

// Run processes key presses until the user generates or quits
func (v *ExtensionSelectorView) Run() (domain.ExtensionFilter, bool, error) {
	defer v.screen.Fini()

	v.screen.Clear()
	v.render()

	for {
		ev := v.screen.PollEvent()

		switch ev := ev.(type) {
		case *tcell.EventResize:
			v.width, v.height = ev.Size()
			v.screen.Sync()
			v.render()

		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
				return domain.ExtensionFilter{}, false, nil
			case ev.Key() == tcell.KeyEnter:
				return v.sel.filter(), true, nil
			case ev.Key() == tcell.KeyUp || ev.Rune() == 'k':
				v.sel.move(-1)
			case ev.Key() == tcell.KeyDown || ev.Rune() == 'j':
				v.sel.move(1)
			case ev.Key() == tcell.KeyPgUp:
				v.sel.move(-v.listHeight())
			case ev.Key() == tcell.KeyPgDn:
				v.sel.move(v.listHeight())
			case ev.Rune() == ' ':
				v.sel.toggle()
			case ev.Rune() == 'a':
				v.sel.setAll(true)
			case ev.Rune() == 'n':
				v.sel.setAll(false)
			}
			v.render()
		}
	}
}

func (v *ExtensionSelectorView) listHeight() int {
	// title, blank line, blank line, footer
	h := v.height - 4
	if h < 1 {
		h = 1
	}
	return h
}

func (v *ExtensionSelectorView) render() {
	v.screen.Clear()

	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorPurple)
	mutedStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	cursorStyle := tcell.StyleDefault.Reverse(true)

	title := fmt.Sprintf("File Type Selection  (%d of %d checked)", v.sel.countChecked(), len(v.sel.items))
	v.drawText(0, 0, title, titleStyle)

	// Keep the cursor on screen
	lh := v.listHeight()
	if v.sel.cursor < v.offset {
		v.offset = v.sel.cursor
	}
	if v.sel.cursor >= v.offset+lh {
		v.offset = v.sel.cursor - lh + 1
	}

	y := 2
	for i := v.offset; i < len(v.sel.items) && i < v.offset+lh; i++ {
		item := v.sel.items[i]
		box := "[ ]"
		if v.sel.checked[i] {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %-16s %s", box, displayExt(item.Extension), strconv.Itoa(item.Count))

		style := tcell.StyleDefault
		if i == v.sel.cursor {
			style = cursorStyle
		}
		v.drawText(2, y, line, style)
		y++
	}

	footer := "space toggle • a all • n none • enter generate charts • q quit"
	v.drawText(0, v.height-1, footer, mutedStyle)

	v.screen.Show()
}

func (v *ExtensionSelectorView) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		if col >= v.width {
			break
		}
		v.screen.SetContent(col, y, r, nil, style)
		col++
	}
}
