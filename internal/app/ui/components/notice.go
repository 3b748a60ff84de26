package components

import (
	"context"
	"time"

	"github.com/looplab/fsm"
)

// Notice states
const (
	NoticeIdle    = "idle"
	NoticeCopying = "copying"
	NoticeCopied  = "copied"
	NoticeFailed  = "failed"
)

// Notice events
const (
	noticeCopy    = "copy"
	noticeSucceed = "succeed"
	noticeFail    = "fail"
	noticeExpire  = "expire"
)

// Notice callbacks
const (
	onIdle    = "enter_" + NoticeIdle
	onCopying = "enter_" + NoticeCopying
	onCopied  = "enter_" + NoticeCopied
	onFailed  = "enter_" + NoticeFailed
)

// Notice messages
const (
	CopyingText = "copying…"
	CopiedText  = "copied!"
	FailedText  = "copy failed"
)

// Target identifies the swatch or gradient a notice belongs to
type Target struct {
	Row int
	Col int
}

// Notice is the transient copy feedback shown next to the copied item
type Notice struct {
	fsm       *fsm.FSM
	duration  time.Duration
	remaining time.Duration
	target    Target
	seq       int
	reason    string
}

// NewNotice creates an idle notice that clears itself after duration
func NewNotice(duration time.Duration) *Notice {
	n := &Notice{duration: duration}

	n.fsm = fsm.NewFSM(
		NoticeIdle,
		fsm.Events{
			{Name: noticeCopy, Src: []string{NoticeIdle, NoticeCopying, NoticeCopied, NoticeFailed}, Dst: NoticeCopying},
			{Name: noticeSucceed, Src: []string{NoticeCopying}, Dst: NoticeCopied},
			{Name: noticeFail, Src: []string{NoticeCopying}, Dst: NoticeFailed},
			{Name: noticeExpire, Src: []string{NoticeCopied, NoticeFailed}, Dst: NoticeIdle},
		},
		fsm.Callbacks{
			onIdle: func(ctx context.Context, e *fsm.Event) {
				n.remaining = 0
				n.reason = ""
			},
			onCopying: func(ctx context.Context, e *fsm.Event) {
				n.remaining = 0
				n.reason = ""
			},
			onCopied: func(ctx context.Context, e *fsm.Event) {
				n.remaining = n.duration
			},
			onFailed: func(ctx context.Context, e *fsm.Event) {
				n.remaining = n.duration

				if len(e.Args) > 0 {
					if err, ok := e.Args[0].(error); ok && err != nil {
						n.reason = err.Error()
					}
				}
			},
		},
	)

	return n
}

// Begin starts a copy for target and returns the sequence number its result must carry
func (n *Notice) Begin(target Target) int {
	n.seq++
	n.target = target
	n.event(noticeCopy)

	return n.seq
}

// Resolve applies a copy result; results from superseded copies are ignored
func (n *Notice) Resolve(seq int, err error) bool {
	if seq != n.seq || n.State() != NoticeCopying {
		return false
	}

	if err != nil {
		n.event(noticeFail, err)
	} else {
		n.event(noticeSucceed)
	}

	return true
}

// Tick ages a settled notice and clears it once its duration has passed
func (n *Notice) Tick(elapsed time.Duration) {
	switch n.State() {
	case NoticeCopied, NoticeFailed:
		n.remaining -= elapsed
		if n.remaining <= 0 {
			n.event(noticeExpire)
		}
	}
}

// State returns the current notice state
func (n *Notice) State() string {
	return n.fsm.Current()
}

// Active reports whether anything should be shown
func (n *Notice) Active() bool {
	return n.State() != NoticeIdle
}

// Target returns the item the notice belongs to
func (n *Notice) Target() Target {
	return n.target
}

// Reason returns the failure cause of the last failed copy
func (n *Notice) Reason() string {
	return n.reason
}

// Text returns the plain notice message
func (n *Notice) Text() string {
	switch n.State() {
	case NoticeCopying:
		return CopyingText
	case NoticeCopied:
		return CopiedText
	case NoticeFailed:
		if n.reason == "" {
			return FailedText
		}

		return FailedText + ": " + n.reason
	default:
		return ""
	}
}

// Render returns the styled notice message
func (n *Notice) Render() string {
	switch n.State() {
	case NoticeCopying:
		return NoticeCopyingStyle.Render(n.Text())
	case NoticeCopied:
		return NoticeCopiedStyle.Render(n.Text())
	case NoticeFailed:
		return NoticeFailedStyle.Render(n.Text())
	default:
		return ""
	}
}

// RenderFor returns the notice when it belongs to target, otherwise nothing
func (n *Notice) RenderFor(target Target) string {
	if !n.Active() || n.target != target {
		return ""
	}

	return n.Render()
}

func (n *Notice) event(name string, args ...any) {
	_ = n.fsm.Event(context.Background(), name, args...)
}
