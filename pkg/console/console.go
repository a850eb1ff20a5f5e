// Package console renders operator-facing output: colored status lines,
// rules and key/value tables.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const RuleWidth = 60

// Row is one key/value line of a table.
type Row struct {
	Key   string
	Value string
}

type Printer struct {
	out      io.Writer
	renderer *lipgloss.Renderer
	success  lipgloss.Style
	info     lipgloss.Style
	warn     lipgloss.Style
	failure  lipgloss.Style
	heading  lipgloss.Style
}

// New returns a Printer writing to out. Color is used only when out is a
// terminal that supports it.
func New(out io.Writer) *Printer {
	renderer := lipgloss.NewRenderer(out)
	return &Printer{
		out:      out,
		renderer: renderer,
		success:  renderer.NewStyle().Foreground(lipgloss.Color("2")),
		info:     renderer.NewStyle().Foreground(lipgloss.Color("4")),
		warn:     renderer.NewStyle().Foreground(lipgloss.Color("3")),
		failure:  renderer.NewStyle().Foreground(lipgloss.Color("1")),
		heading:  renderer.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
	}
}

func (p *Printer) Success(format string, args ...any) {
	p.line(p.success, format, args...)
}

func (p *Printer) Info(format string, args ...any) {
	p.line(p.info, format, args...)
}

func (p *Printer) Warn(format string, args ...any) {
	p.line(p.warn, format, args...)
}

func (p *Printer) Error(format string, args ...any) {
	p.line(p.failure, format, args...)
}

func (p *Printer) Plain(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) Blank() {
	fmt.Fprintln(p.out)
}

// Banner prints title between two rules.
func (p *Printer) Banner(title string) {
	p.Rule()
	fmt.Fprintln(p.out, p.heading.Render(title))
	p.Rule()
}

func (p *Printer) Rule() {
	fmt.Fprintln(p.out, p.info.Render(strings.Repeat("=", RuleWidth)))
}

// Steps prints a numbered list under title.
func (p *Printer) Steps(title string, steps ...string) {
	p.Blank()
	p.Warn("%s", title)
	for index, step := range steps {
		p.Warn("%d. %s", index+1, step)
	}
}

// Table prints rows as a bordered two column table.
func (p *Printer) Table(rows []Row) {
	if len(rows) == 0 {
		return
	}

	keyStyle := p.renderer.NewStyle().Padding(0, 1).Bold(true)
	valueStyle := p.renderer.NewStyle().Padding(0, 1)

	rendered := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.info).
		StyleFunc(func(row, column int) lipgloss.Style {
			if column == 0 {
				return keyStyle
			}
			return valueStyle
		})
	for _, row := range rows {
		rendered.Row(row.Key, row.Value)
	}

	fmt.Fprintln(p.out, rendered.String())
}

func (p *Printer) line(style lipgloss.Style, format string, args ...any) {
	fmt.Fprintln(p.out, style.Render(fmt.Sprintf(format, args...)))
}
