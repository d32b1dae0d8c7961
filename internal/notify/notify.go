// Package notify holds the transient notification surfaces used by the
// contact workflow: a per-session toast queue for the web page and a
// terminal printer for the CLI.
package notify

import (
	"fmt"
	"io"
	"sync"
)

// Level is the toast flavor.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Toast is one transient message.
type Toast struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Queue collects toasts until the next render drains them.
type Queue struct {
	mu     sync.Mutex
	toasts []Toast
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) NotifySuccess(message string) {
	q.push(Toast{Level: LevelSuccess, Message: message})
}

func (q *Queue) NotifyFailure(message string) {
	q.push(Toast{Level: LevelError, Message: message})
}

func (q *Queue) push(t Toast) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.toasts = append(q.toasts, t)
}

// Drain returns the pending toasts and empties the queue.
func (q *Queue) Drain() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.toasts
	q.toasts = nil
	return out
}

// Printer writes notifications to a terminal.
type Printer struct {
	w     io.Writer
	color bool
}

func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

func (p *Printer) NotifySuccess(message string) {
	p.print("\033[32m", "✔", message)
}

func (p *Printer) NotifyFailure(message string) {
	p.print("\033[31m", "✖", message)
}

func (p *Printer) print(color, mark, message string) {
	if p.color {
		fmt.Fprintf(p.w, "%s%s\033[0m %s\n", color, mark, message)
		return
	}
	fmt.Fprintf(p.w, "%s %s\n", mark, message)
}
