package level

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hospital-search/searchclient/internal/color"
)

// Initial is the mutable part of a freshly parsed level: the starting
// agent positions and box layout. It is handed to internal/state to
// build the root search node; Level itself never changes after Parse
// returns.
type Initial struct {
	AgentRows []int
	AgentCols []int
	Boxes     [][]rune
}

// Parse reads the textual level format the judge server sends on
// stdin:
//
//	#domain
//	hospital
//	#levelname
//	<name>
//	#colors
//	<color>: <entities>, ...
//	...
//	#initial
//	<rows of walls '+', agents '0'-'9', boxes 'A'-'Z'>
//	#goal
//	<rows of goal agents/boxes>
//	#end
//
// The server is assumed to have already validated the level against
// its own grammar, so Parse does not re-validate section ordering; it
// only has to tolerate short or ragged lines.
func Parse(r io.Reader) (*Level, *Initial, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	readLine := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		return sc.Text(), true
	}

	if _, ok := readLine(); !ok { // #domain
		return nil, nil, fmt.Errorf("level: missing #domain line")
	}
	if _, ok := readLine(); !ok { // hospital
		return nil, nil, fmt.Errorf("level: missing domain name line")
	}
	if _, ok := readLine(); !ok { // #levelname
		return nil, nil, fmt.Errorf("level: missing #levelname line")
	}
	name, ok := readLine() // <name>
	if !ok {
		return nil, nil, fmt.Errorf("level: missing level name line")
	}

	if _, ok := readLine(); !ok { // #colors
		return nil, nil, fmt.Errorf("level: missing #colors line")
	}

	lvl := &Level{Name: name}
	for i := range lvl.AgentColors {
		lvl.AgentColors[i] = color.Blue
	}
	for i := range lvl.BoxColors {
		lvl.BoxColors[i] = color.Blue
	}

	line, ok := readLine()
	if !ok {
		return nil, nil, fmt.Errorf("level: missing #initial line")
	}
	for !strings.HasPrefix(line, "#") {
		if err := parseColorLine(lvl, line); err != nil {
			return nil, nil, err
		}
		line, ok = readLine()
		if !ok {
			return nil, nil, fmt.Errorf("level: truncated #colors section")
		}
	}

	// line is "#initial"
	var levelLines []string
	numCols := 0
	line, ok = readLine()
	if !ok {
		return nil, nil, fmt.Errorf("level: missing #goal line")
	}
	for !strings.HasPrefix(line, "#") {
		levelLines = append(levelLines, line)
		if len(line) > numCols {
			numCols = len(line)
		}
		line, ok = readLine()
		if !ok {
			return nil, nil, fmt.Errorf("level: truncated #initial section")
		}
	}
	numRows := len(levelLines)

	lvl.NumRows = numRows
	lvl.NumCols = numCols
	lvl.Walls = make([][]bool, numRows)
	boxes := make([][]rune, numRows)
	for r := range boxes {
		lvl.Walls[r] = make([]bool, numCols)
		boxes[r] = make([]rune, numCols)
	}

	var agentRows, agentCols [10]int
	numAgents := 0
	for r, l := range levelLines {
		for c, ch := range []rune(l) {
			switch {
			case ch >= '0' && ch <= '9':
				agentRows[ch-'0'] = r
				agentCols[ch-'0'] = c
				numAgents++
			case ch >= 'A' && ch <= 'Z':
				boxes[r][c] = ch
			case ch == '+':
				lvl.Walls[r][c] = true
			}
		}
	}

	init := &Initial{
		AgentRows: append([]int(nil), agentRows[:numAgents]...),
		AgentCols: append([]int(nil), agentCols[:numAgents]...),
		Boxes:     boxes,
	}

	// line is "#goal"
	lvl.Goals = make([][]rune, numRows)
	for r := range lvl.Goals {
		lvl.Goals[r] = make([]rune, numCols)
	}
	line, ok = readLine()
	row := 0
	for ok && !strings.HasPrefix(line, "#") {
		for c, ch := range []rune(line) {
			if (ch >= '0' && ch <= '9') || (ch >= 'A' && ch <= 'Z') {
				if row < numRows && c < numCols {
					lvl.Goals[row][c] = ch
				}
			}
		}
		row++
		line, ok = readLine()
	}

	// line is "#end" (or EOF, which we tolerate)
	return lvl, init, nil
}

// parseColorLine parses one "<color>: <entities>" line from the
// #colors section, assigning the named color to every listed agent
// digit or box letter.
func parseColorLine(lvl *Level, line string) error {
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 {
		return fmt.Errorf("level: malformed color line %q", line)
	}
	c := color.FromString(parts[0])
	for _, entity := range strings.Split(parts[1], ",") {
		entity = strings.TrimSpace(entity)
		if entity == "" {
			continue
		}
		ch := []rune(entity)[0]
		switch {
		case ch >= '0' && ch <= '9':
			lvl.AgentColors[ch-'0'] = c
		case ch >= 'A' && ch <= 'Z':
			lvl.BoxColors[ch-'A'] = c
		}
	}
	return nil
}
