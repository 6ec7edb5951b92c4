// Copyright © 2024 The Corvid Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command corvidwatch attaches to a running UCI engine subprocess over
// its stdio pipe and renders a live terminal dashboard of its search:
// depth, score, nodes, nps, and principal-variation history.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"github.com/mitchellh/colorstring"
	"golang.org/x/term"
)

func main() {
	enginePath := flag.String("engine", "", "path to the UCI engine binary to attach to")
	position := flag.String("position", "startpos", "position command argument, e.g. startpos or a FEN")
	depth := flag.Int("depth", 0, "search depth limit (0 searches until stopped)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, wrapHelp(
			"corvidwatch attaches to a running UCI engine subprocess over its stdio pipe and renders a live terminal dashboard of its search: depth, score, nodes, nps, and principal-variation history. Press q or Ctrl-C to quit.",
			72,
		))
		flag.PrintDefaults()
	}
	flag.Parse()

	if *enginePath == "" {
		fmt.Fprintln(os.Stderr, "corvidwatch: -engine is required")
		os.Exit(1)
	}

	watcher, err := attach(*enginePath)
	if err != nil {
		log.Fatalf("corvidwatch: %v", err)
	}
	defer watcher.close()

	watcher.send("uci")
	watcher.send("isready")
	watcher.send(fmt.Sprintf("position %s", *position))
	if *depth > 0 {
		watcher.send(fmt.Sprintf("go depth %d", *depth))
	} else {
		watcher.send("go infinite")
	}

	if err := ui.Init(); err != nil {
		log.Fatalf("corvidwatch: failed to initialize terminal: %v", err)
	}
	defer ui.Close()

	dashboard := newDashboard()
	dashboard.layout()

	infoLines := make(chan infoLine, 64)
	go watcher.scan(infoLines)

	events := ui.PollEvents()
	for {
		select {
		case line, ok := <-infoLines:
			if !ok {
				return
			}
			dashboard.update(line)
			ui.Render(dashboard.widgets()...)

		case e := <-events:
			switch e.ID {
			case "q", "<C-c>":
				return
			case "<Resize>":
				dashboard.layout()
				ui.Render(dashboard.widgets()...)
			}
		}
	}
}

// engineWatcher owns the subprocess and its stdio pipes.
type engineWatcher struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Scanner
}

func attach(path string) (*engineWatcher, error) {
	cmd := exec.Command(path)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	return &engineWatcher{cmd: cmd, stdin: stdin, stdout: bufio.NewScanner(stdout)}, nil
}

func (w *engineWatcher) send(command string) {
	fmt.Fprintln(w.stdin, command)
}

func (w *engineWatcher) close() {
	w.send("stop")
	w.send("quit")
	w.stdin.Close()
	w.cmd.Wait()
}

// scan reads the engine's stdout, parses info lines, and forwards them
// until the pipe closes.
func (w *engineWatcher) scan(out chan<- infoLine) {
	defer close(out)

	for w.stdout.Scan() {
		text := w.stdout.Text()
		if !strings.HasPrefix(text, "info ") {
			continue
		}

		if line, ok := parseInfoLine(text); ok {
			out <- line
		}
	}
}

// infoLine is the subset of a UCI `info` line the dashboard renders.
type infoLine struct {
	Depth int
	Score int
	Mate  bool
	Nodes int
	NPS   int
	PV    string
}

func parseInfoLine(text string) (infoLine, bool) {
	fields := strings.Fields(text)

	var line infoLine
	sawDepth := false

	for i := 1; i < len(fields); i++ {
		switch fields[i] {
		case "depth":
			if i+1 < len(fields) {
				line.Depth, _ = strconv.Atoi(fields[i+1])
				sawDepth = true
			}
		case "score":
			if i+2 < len(fields) {
				switch fields[i+1] {
				case "cp":
					line.Score, _ = strconv.Atoi(fields[i+2])
				case "mate":
					line.Mate = true
					line.Score, _ = strconv.Atoi(fields[i+2])
				}
			}
		case "nodes":
			if i+1 < len(fields) {
				line.Nodes, _ = strconv.Atoi(fields[i+1])
			}
		case "nps":
			if i+1 < len(fields) {
				line.NPS, _ = strconv.Atoi(fields[i+1])
			}
		case "pv":
			line.PV = strings.Join(fields[i+1:], " ")
			i = len(fields)
		}
	}

	return line, sawDepth
}

// dashboard holds the termui widgets that make up the display.
type dashboard struct {
	stats   *widgets.Paragraph
	pvList  *widgets.List
	history []string
	width   int
}

func newDashboard() *dashboard {
	stats := widgets.NewParagraph()
	stats.Title = "corvidwatch"

	pvList := widgets.NewList()
	pvList.Title = "principal variations"

	return &dashboard{stats: stats, pvList: pvList}
}

// layout sizes the widgets to the current terminal, falling back to a
// fixed size if the terminal dimensions can't be read.
func (d *dashboard) layout() {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width == 0 {
		width, height = 80, 24
	}

	d.stats.SetRect(0, 0, width, 6)
	d.pvList.SetRect(0, 6, width, height)
	d.width = width - len("[ 0] mate -1  pv ")
	if d.width < 10 {
		d.width = 10
	}
}

func (d *dashboard) update(line infoLine) {
	scoreText := fmt.Sprintf("%d cp", line.Score)
	if line.Mate {
		scoreText = fmt.Sprintf("mate %d", line.Score)
	}

	d.stats.Text = colorstring.Color(fmt.Sprintf(
		"[green]depth[reset] %d  [yellow]score[reset] %s  [blue]nodes[reset] %d  [blue]nps[reset] %d",
		line.Depth, scoreText, line.Nodes, line.NPS,
	))

	entry := fmt.Sprintf("[%2d] %s  pv %s", line.Depth, scoreText, fitToWidth(line.PV, d.width))
	d.history = append(d.history, entry)
	if len(d.history) > 200 {
		d.history = d.history[len(d.history)-200:]
	}

	d.pvList.Rows = d.history
	d.pvList.ScrollBottom()
}

func (d *dashboard) widgets() []ui.Drawable {
	return []ui.Drawable{d.stats, d.pvList}
}
