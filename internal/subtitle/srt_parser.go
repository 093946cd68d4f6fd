package subtitle

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var timingRegex = regexp.MustCompile(
	`^(\d{2}:\d{2}:\d{2},\d{3}) --> (\d{2}:\d{2}:\d{2},\d{3})$`,
)

type parseState int

const (
	expectNumber parseState = iota
	expectTiming
	expectText
	collectText
)

type srtParser struct {
	opts ParseOptions
	doc  *Document

	state   parseState
	current Cue
	text    []string

	// first line of the block being built
	blockStart int
	// a non-blank line was dropped since the last block boundary
	orphan bool
}

// ParseSRT extracts every well-formed cue block from content, in file order.
// Blocks that don't match the grammar are skipped and counted, unless
// opts.Strict is set, in which case the first one is reported as a
// *ParseError.
func ParseSRT(content string, opts ParseOptions) (*Document, error) {
	p := &srtParser{
		opts: opts,
		doc:  &Document{},
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if err := p.feed(i+1, line); err != nil {
			return nil, err
		}
	}
	if err := p.finish(len(lines)); err != nil {
		return nil, err
	}

	return p.doc, nil
}

func (p *srtParser) feed(lineNum int, line string) error {
	blank := strings.TrimSpace(line) == ""

	switch p.state {
	case expectNumber:
		if blank {
			p.settle()
			return nil
		}
		if n, ok := parseIndex(line); ok {
			p.begin(lineNum, n)
			return nil
		}
		return p.discard(lineNum, "expected cue number")

	case expectTiming:
		if blank {
			p.state = expectNumber
			if err := p.discard(p.blockStart, "missing timing line"); err != nil {
				return err
			}
			p.settle()
			return nil
		}
		if m := timingRegex.FindStringSubmatch(line); m != nil {
			p.current.Begin = m[1]
			p.current.End = m[2]
			p.state = expectText
			return nil
		}
		if err := p.discard(lineNum, "expected timing line"); err != nil {
			return err
		}
		// the scan restarts here, so the line may open the next block
		if n, ok := parseIndex(line); ok {
			p.begin(lineNum, n)
			return nil
		}
		p.state = expectNumber
		return nil

	case expectText:
		if blank {
			p.state = expectNumber
			if err := p.discard(lineNum, "missing cue text"); err != nil {
				return err
			}
			p.settle()
			return nil
		}
		p.text = append(p.text, line)
		p.state = collectText
		return nil

	case collectText:
		if blank {
			p.emit()
			return nil
		}
		p.text = append(p.text, line)
		return nil
	}

	return nil
}

func (p *srtParser) finish(lastLine int) error {
	switch p.state {
	case collectText:
		p.emit()
	case expectTiming:
		if err := p.discard(p.blockStart, "missing timing line"); err != nil {
			return err
		}
	case expectText:
		if err := p.discard(lastLine, "missing cue text"); err != nil {
			return err
		}
	}
	p.settle()
	return nil
}

func (p *srtParser) begin(lineNum, number int) {
	p.settle()
	p.current = Cue{Number: number}
	p.text = nil
	p.blockStart = lineNum
	p.state = expectTiming
}

func (p *srtParser) emit() {
	p.current.Text = strings.TrimRightFunc(
		strings.Join(p.text, "\n"),
		unicode.IsSpace,
	)
	p.doc.Cues = append(p.doc.Cues, p.current)
	p.current = Cue{}
	p.text = nil
	p.state = expectNumber
}

func (p *srtParser) discard(lineNum int, reason string) error {
	if p.opts.Strict {
		return &ParseError{Line: lineNum, Reason: reason}
	}
	p.orphan = true
	return nil
}

func (p *srtParser) settle() {
	if p.orphan {
		p.doc.Skipped++
		p.orphan = false
	}
}

// index lines are bare ASCII digits
func parseIndex(line string) (int, bool) {
	if line == "" {
		return 0, false
	}
	for _, r := range line {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, false
	}
	return n, true
}
