package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/client/models"
	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/client/services"
)

// renderer prints status transitions as they are published: only the file
// lines that changed since the previous State, then the message when it
// differs from the last one shown.
type renderer struct {
	out io.Writer

	good *color.Color
	bad  *color.Color
	info *color.Color

	mu      sync.Mutex
	last    map[string]models.UploadRecord
	lastMsg string
}

func newRenderer(out io.Writer, colored bool) *renderer {
	r := &renderer{
		out:  out,
		good: color.New(color.FgGreen),
		bad:  color.New(color.FgRed),
		info: color.New(color.FgBlue),
		last: map[string]models.UploadRecord{},
	}
	if !colored {
		r.good.DisableColor()
		r.bad.DisableColor()
		r.info.DisableColor()
	}
	return r
}

func (r *renderer) render(st services.State) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]models.UploadRecord, st.Snapshot.Len())
	for _, fs := range st.Snapshot.Records() {
		seen[fs.Name] = fs.Record
		if prev, ok := r.last[fs.Name]; ok && prev == fs.Record {
			continue
		}
		r.fileLine(fs)
	}
	r.last = seen

	if st.Message != r.lastMsg {
		if st.Message != "" {
			fmt.Fprintln(r.out, r.messageColor(st.Message).Sprint(st.Message))
		}
		r.lastMsg = st.Message
	}
}

// printState writes every file line and the current message.
func (r *renderer) printState(st services.State) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if st.Snapshot.Len() == 0 {
		fmt.Fprintln(r.out, "No upload status yet.")
	}
	for _, fs := range st.Snapshot.Records() {
		r.fileLine(fs)
	}

	c := st.Snapshot.Counts()
	if st.Snapshot.Len() > 0 {
		fmt.Fprintf(r.out, "pending %d, uploading %d, uploaded %d, failed %d\n",
			c[models.StatusPending], c[models.StatusInProgress], c[models.StatusSucceeded], c[models.StatusFailed])
	}
	if st.Message != "" {
		fmt.Fprintln(r.out, r.messageColor(st.Message).Sprint(st.Message))
	}
}

func (r *renderer) fileLine(fs services.FileStatus) {
	label := fs.Record.Label()
	var c *color.Color
	switch fs.Record.Status {
	case models.StatusSucceeded:
		c = r.good
	case models.StatusFailed:
		c = r.bad
	default:
		c = r.info
	}
	line := fmt.Sprintf("  %s: %s", fs.Name, c.Sprint(label))
	if fs.Record.Status == models.StatusSucceeded && fs.Record.RemoteID != "" {
		line += fmt.Sprintf(" (id %s)", fs.Record.RemoteID)
	}
	fmt.Fprintln(r.out, line)
}

func (r *renderer) messageColor(msg string) *color.Color {
	switch {
	case strings.HasPrefix(msg, "Failed"), strings.HasPrefix(msg, "Error"):
		return r.bad
	case strings.HasPrefix(msg, "Successfully"), strings.HasPrefix(msg, "All selected"):
		return r.good
	default:
		return r.info
	}
}
