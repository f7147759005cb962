package util

import (
	"io"
	"strings"

	"github.com/gosuri/uilive"
	"github.com/logrusorgru/aurora"
)

// TerminalPrinter keeps a single live progress line on a terminal,
// replacing it with every line written.
type TerminalPrinter struct {
	writer *uilive.Writer
	colors aurora.Aurora
}

var _ io.Writer = &TerminalPrinter{}

func NewTerminalPrinter(out io.Writer, colored bool) *TerminalPrinter {
	writer := uilive.New()
	writer.Out = out
	return &TerminalPrinter{
		writer: writer,
		colors: aurora.NewAurora(colored),
	}
}

func (p *TerminalPrinter) Start() {
	p.writer.Start()
}

func (p *TerminalPrinter) Stop() {
	p.writer.Stop()
}

func (p *TerminalPrinter) Write(b []byte) (int, error) {
	line := strings.TrimRight(string(b), "\n")
	if _, err := io.WriteString(p.writer, p.colors.Cyan(line).String()+"\n"); err != nil {
		return 0, err
	}
	if err := p.writer.Flush(); err != nil {
		return 0, err
	}
	return len(b), nil
}
