package model

// Mode is the interaction mode of the view.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeHelp
)

// EventKind tags a key event. KeyRune carries the pressed character; the
// other kinds are the special keys the view reacts to.
type EventKind int

const (
	KeyNone EventKind = iota
	KeyRune
	KeyUp
	KeyDown
	KeyTab
	KeyEnter
	KeyEscape
	KeyBackspace
)

// KeyEvent is one discrete key press. The zero value (KeyNone) means no key
// was pending this cycle and is a no-op.
type KeyEvent struct {
	Kind EventKind
	Rune rune
}

// ViewState is the configuration driving filtering, sorting and display:
// interaction mode, sort key, scroll offset and filter text. It is mutated
// only through Handle and the page/count setters, so the transition table is
// testable without a terminal.
type ViewState struct {
	Mode   Mode
	Sort   SortKey
	Scroll int
	Filter string

	// PageSize is how many process rows fit on screen; FilteredCount is the
	// length of the current filtered list. Both bound the scroll offset.
	PageSize      int
	FilteredCount int
}

func NewViewState(pageSize int) ViewState {
	if pageSize < 1 {
		pageSize = 1
	}
	return ViewState{Sort: SortByCPU, PageSize: pageSize}
}

// Handle applies one key event to the state. Unknown keys are ignored.
func (v *ViewState) Handle(ev KeyEvent) {
	switch v.Mode {
	case ModeNormal:
		v.handleNormal(ev)
	case ModeSearch:
		v.handleSearch(ev)
	case ModeHelp:
		v.handleHelp(ev)
	}
}

func (v *ViewState) handleNormal(ev KeyEvent) {
	switch ev.Kind {
	case KeyTab:
		v.Sort = v.Sort.Toggle()
		v.Scroll = 0
	case KeyUp:
		v.Scroll--
		v.clampScroll()
	case KeyDown:
		v.Scroll++
		v.clampScroll()
	case KeyRune:
		switch ev.Rune {
		case '/':
			v.Mode = ModeSearch
			v.Filter = ""
		case 'h', 'H':
			v.Mode = ModeHelp
		}
	}
}

func (v *ViewState) handleSearch(ev KeyEvent) {
	switch ev.Kind {
	case KeyEnter:
		// Filter text stays applied.
		v.Mode = ModeNormal
	case KeyEscape:
		v.Mode = ModeNormal
		v.Filter = ""
	case KeyBackspace:
		if v.Filter != "" {
			v.Filter = v.Filter[:len(v.Filter)-1]
		}
	case KeyRune:
		v.Filter += string(ev.Rune)
	}
}

func (v *ViewState) handleHelp(ev KeyEvent) {
	if ev.Kind == KeyEscape || (ev.Kind == KeyRune && (ev.Rune == 'h' || ev.Rune == 'H')) {
		v.Mode = ModeNormal
	}
}

// SetFilteredCount records the size of the current filtered list and
// re-clamps the scroll offset against it.
func (v *ViewState) SetFilteredCount(n int) {
	if n < 0 {
		n = 0
	}
	v.FilteredCount = n
	v.clampScroll()
}

// SetPageSize adjusts the visible row count, e.g. after a terminal resize.
func (v *ViewState) SetPageSize(n int) {
	if n < 1 {
		n = 1
	}
	v.PageSize = n
	v.clampScroll()
}

// MaxScroll is the largest valid scroll offset for the current filtered list.
func (v *ViewState) MaxScroll() int {
	max := v.FilteredCount - v.PageSize
	if max < 0 {
		return 0
	}
	return max
}

func (v *ViewState) clampScroll() {
	if v.Scroll < 0 {
		v.Scroll = 0
	}
	if max := v.MaxScroll(); v.Scroll > max {
		v.Scroll = max
	}
}
