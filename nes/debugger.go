package nes

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

var (
	registerStyle = lipgloss.NewStyle().Bold(true)
	haltedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	currentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

// debugModel is a pure consumer of CPU/Bus state: it never drives the
// core itself except by calling cpu.Step() once per keypress, a
// one-tick-per-message bubbletea model.
type debugModel struct {
	cpu    *CPU
	prevPC uint16
	lastErr error
	quit    bool
}

// NewDebugger builds the initial TUI model around an already-reset CPU.
// Callers are expected to have inserted a cartridge and called
// cpu.Reset() beforehand; the debugger only steps, it never loads ROMs.
func NewDebugger(cpu *CPU) tea.Model {
	return debugModel{cpu: cpu}
}

func (m debugModel) Init() tea.Cmd {
	return nil
}

func (m debugModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quit = true
			return m, tea.Quit
		case " ", "n":
			if m.cpu.Halted {
				return m, nil
			}
			m.prevPC = m.cpu.Pc
			result := m.cpu.Step()
			if result.Err != nil {
				m.lastErr = result.Err
			}
		}
	}
	return m, nil
}

// renderPage renders one 16-byte memory row, highlighting the byte at PC.
func (m debugModel) renderPage(start uint16) string {
	s := fmt.Sprintf("%04X | ", start)
	for i := 0; i < 16; i++ {
		addr := start + uint16(i)
		b := m.cpu.read(addr)
		if addr == m.cpu.Pc {
			s += currentStyle.Render(fmt.Sprintf("[%02X]", b)) + " "
		} else {
			s += fmt.Sprintf(" %02X  ", b)
		}
	}
	return s
}

// pageTable renders a column header, the first zero-page row, and up to
// five 16-byte rows centered on the row holding the current PC.
func (m debugModel) pageTable() string {
	header := "addr | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf(" %01X   ", b)
	}

	base := m.cpu.Pc &^ 0x000F
	rows := []string{header, m.renderPage(0x0000)}
	for i := int32(-2); i <= 2; i++ {
		row := int32(base) + i*16
		if row < 0 || row > 0xFFF0 {
			continue
		}
		rows = append(rows, m.renderPage(uint16(row)))
	}
	return strings.Join(rows, "\n")
}

func (m debugModel) registers() string {
	flags := []struct {
		name string
		set  bool
	}{
		{"N", m.cpu.getFlag(FlagN)},
		{"V", m.cpu.getFlag(FlagV)},
		{"U", m.cpu.getFlag(FlagU)},
		{"B", m.cpu.getFlag(FlagB)},
		{"D", m.cpu.getFlag(FlagD)},
		{"I", m.cpu.getFlag(FlagI)},
		{"Z", m.cpu.getFlag(FlagZ)},
		{"C", m.cpu.getFlag(FlagC)},
	}
	var names, bits strings.Builder
	for _, f := range flags {
		fmt.Fprintf(&names, "%s ", f.name)
		if f.set {
			bits.WriteString("1 ")
		} else {
			bits.WriteString("0 ")
		}
	}

	body := fmt.Sprintf(
		"PC: %04X (was %04X)\nA:  %02X\nX:  %02X\nY:  %02X\nSP: %02X\nCYC: %d\n\n%s\n%s",
		m.cpu.Pc, m.prevPC,
		m.cpu.A, m.cpu.X, m.cpu.Y, m.cpu.Sp, m.cpu.Cycles,
		names.String(), bits.String(),
	)

	if m.cpu.Halted {
		return registerStyle.Render(body) + "\n\n" + haltedStyle.Render("HALTED: illegal opcode")
	}
	return registerStyle.Render(body)
}

func (m debugModel) View() string {
	disasm, _ := Disassemble(m.cpu.Pc, m.cpu.read)

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), "   ", m.registers()),
		"",
		disasm,
	}
	if m.lastErr != nil {
		lines = append(lines, spew.Sdump(m.lastErr))
	}
	lines = append(lines, "", "space/n: step    q: quit")

	return strings.Join(lines, "\n")
}
