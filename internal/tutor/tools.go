package tutor

import (
	"fmt"
	"sort"
	"sync"

	"github.com/abhisek/lecto/internal/checkpoint"
)

// ToolFunc executes a tutor tool call. Tools return a short status string
// synchronously even when the underlying UI effect is asynchronous.
type ToolFunc func(args map[string]any) string

// Registry maps tool names to handlers the remote tutor agent may invoke.
type Registry struct {
	mu    sync.Mutex
	tools map[string]ToolFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]ToolFunc)}
}

// Register adds or replaces a tool.
func (r *Registry) Register(name string, fn ToolFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[name] = fn
}

// Dispatch invokes the named tool. Unknown tools return an error status
// rather than failing the conversation.
func (r *Registry) Dispatch(name string, args map[string]any) string {
	r.mu.Lock()
	fn, ok := r.tools[name]
	r.mu.Unlock()
	if !ok {
		return fmt.Sprintf("unknown tool %q", name)
	}
	return fn(args)
}

// Names returns the registered tool names, sorted.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.tools))
	for n := range r.tools {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// PlayerControls is what the tutor's tools may do to the player. The player
// session implements this; every mutation still funnels through the
// scheduler's single transport entry point.
type PlayerControls interface {
	SeekToTime(seconds float64)
	SeekToCheckpoint(timestamp float64, typ checkpoint.Type, prompt string) bool
	OpenTab(name string) bool
	PauseVideo()
	ResumeVideo()
	AnswerCheckpoint(selection string) (string, bool)
	ReplaySection(seconds float64)
	ContextText() string
	ContextBriefing() string
}

// RegisterPlayerTools wires the standard player tool set onto a registry.
func RegisterPlayerTools(r *Registry, p PlayerControls) {
	r.Register("getContext", func(map[string]any) string {
		return p.ContextText()
	})
	r.Register("getContextBriefing", func(map[string]any) string {
		return p.ContextBriefing()
	})
	r.Register("seekToTime", func(args map[string]any) string {
		secs, ok := floatArg(args, "seconds")
		if !ok {
			return "seekToTime needs a numeric 'seconds' argument"
		}
		p.SeekToTime(secs)
		return fmt.Sprintf("seeked to %.0fs", secs)
	})
	r.Register("seekToCheckpoint", func(args map[string]any) string {
		ts, ok := floatArg(args, "timestamp")
		if !ok {
			return "seekToCheckpoint needs a numeric 'timestamp' argument"
		}
		typ, _ := args["type"].(string)
		prompt, _ := args["prompt"].(string)
		if !p.SeekToCheckpoint(ts, checkpoint.Type(typ), prompt) {
			return fmt.Sprintf("no checkpoint near %.1fs", ts)
		}
		return fmt.Sprintf("opened checkpoint near %.1fs", ts)
	})
	r.Register("openTab", func(args map[string]any) string {
		name, _ := args["tabName"].(string)
		if name == "" {
			return "openTab needs a 'tabName' argument"
		}
		if !p.OpenTab(name) {
			return fmt.Sprintf("unknown tab %q", name)
		}
		return "opened " + name
	})
	r.Register("pauseVideo", func(map[string]any) string {
		p.PauseVideo()
		return "paused"
	})
	r.Register("resumeVideo", func(map[string]any) string {
		p.ResumeVideo()
		return "resumed"
	})
	r.Register("answerCheckpoint", func(args map[string]any) string {
		sel, _ := args["selection"].(string)
		if sel == "" {
			return "answerCheckpoint needs a 'selection' argument"
		}
		status, ok := p.AnswerCheckpoint(sel)
		if !ok {
			return "no checkpoint is open"
		}
		return status
	})
	r.Register("replaySection", func(args map[string]any) string {
		secs, ok := floatArg(args, "seconds")
		if !ok {
			secs = 20
		}
		p.ReplaySection(secs)
		return fmt.Sprintf("replaying the last %.0fs", secs)
	})
}

func floatArg(args map[string]any, key string) (float64, bool) {
	switch v := args[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}
