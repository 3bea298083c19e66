package sim

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tile-platformer/internal/core"
)

// Script is a scripted input sequence such as "right:30 jump right+jump:5 idle:60".
// Each token is one or more '+'-joined action names held for the given
// number of ticks (default 1).
type Script struct {
	segments []segment
	total    int
}

type segment struct {
	actions []core.Action
	ticks   int
}

var actionNames = map[string]core.Action{
	"left":  core.ActionLeft,
	"right": core.ActionRight,
	"jump":  core.ActionJump,
	"idle":  core.ActionNone,
}

// ParseScript parses a whitespace-separated list of input tokens.
func ParseScript(s string) (Script, error) {
	var sc Script
	for _, tok := range strings.Fields(s) {
		names, count, hasCount := strings.Cut(tok, ":")

		ticks := 1
		if hasCount {
			n, err := strconv.Atoi(count)
			if err != nil || n <= 0 {
				return Script{}, fmt.Errorf("script token %q: tick count must be a positive integer", tok)
			}
			ticks = n
		}

		var seg segment
		for _, name := range strings.Split(strings.ToLower(names), "+") {
			a, ok := actionNames[name]
			if !ok {
				return Script{}, fmt.Errorf("script token %q: unknown action %q", tok, name)
			}
			if a != core.ActionNone {
				seg.actions = append(seg.actions, a)
			}
		}
		seg.ticks = ticks

		sc.segments = append(sc.segments, seg)
		sc.total += ticks
	}
	return sc, nil
}

// Len returns the number of ticks the script covers.
func (s Script) Len() int {
	return s.total
}

// Frame returns the input for the given zero-based tick. Ticks past the end
// of the script are idle.
func (s Script) Frame(tick int) core.InputFrame {
	in := core.NewInputFrame()
	if tick < 0 {
		return in
	}
	for _, seg := range s.segments {
		if tick < seg.ticks {
			for _, a := range seg.actions {
				in.Set(a)
			}
			return in
		}
		tick -= seg.ticks
	}
	return in
}
