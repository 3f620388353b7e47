// Package tui is a read-only monitor for a running archive daemon. It shows
// aggregate state only: record count, the first valid sample, and the live
// event feed. It never reads individual conversations.
package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
	archivev1 "github.com/chatvault/chatvault/gen/archive/v1"
	"github.com/chatvault/chatvault/internal/tui/client"
	"github.com/rivo/tview"
)

const refreshInterval = 2 * time.Second

// App is the monitor application shell.
type App struct {
	app     *tview.Application
	grpc    *client.Client
	session string

	statusBar *tview.TextView
	stats     *tview.TextView
	events    *tview.TextView

	flash   string
	flashAt time.Time

	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp creates the monitor application.
func NewApp(c *client.Client, sessionName string) *App {
	ctx, cancel := context.WithCancel(context.Background())

	a := &App{
		app:     tview.NewApplication(),
		grpc:    c,
		session: sessionName,
		ctx:     ctx,
		cancel:  cancel,
	}

	a.statusBar = tview.NewTextView().SetDynamicColors(true)
	a.statusBar.SetBackgroundColor(tview.Styles.MoreContrastBackgroundColor)

	a.stats = tview.NewTextView().SetDynamicColors(true)
	a.stats.SetBorder(true).SetTitle(" archive ")

	a.events = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	a.events.SetBorder(true).SetTitle(" events ")

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.stats, 9, 0, false).
		AddItem(a.events, 0, 1, true).
		AddItem(a.statusBar, 1, 0, false)

	a.app.SetRoot(layout, true)
	a.app.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		switch ev.Rune() {
		case 'q':
			a.app.Stop()
			return nil
		case 'e':
			go a.export()
			return nil
		case 'r':
			go a.refresh()
			return nil
		}
		return ev
	})

	return a
}

// Run starts the monitor loops and blocks until quit.
func (a *App) Run() error {
	defer a.cancel()

	go a.watchEvents()
	go func() {
		ticker := time.NewTicker(refreshInterval)
		defer ticker.Stop()
		a.refresh()
		for {
			select {
			case <-ticker.C:
				a.refresh()
			case <-a.ctx.Done():
				return
			}
		}
	}()

	return a.app.Run()
}

func (a *App) refresh() {
	ctx, cancel := context.WithTimeout(a.ctx, 5*time.Second)
	defer cancel()

	st, err := a.grpc.Archive.Status(ctx, &archivev1.StatusRequest{})
	if err != nil {
		a.draw(func() {
			a.stats.SetText(fmt.Sprintf("[red]daemon unreachable:[-] %v", err))
			a.renderStatusBar("?")
		})
		return
	}

	sample, err := a.grpc.Archive.Sample(ctx, &archivev1.SampleRequest{})
	sampleLine := "(empty archive)"
	if err == nil && sample.GetFound() {
		rec := sample.GetRecord()
		sampleLine = fmt.Sprintf("%s: %s", rec.GetSenderName(), truncate(rec.GetText(), 60))
	}

	a.draw(func() {
		a.stats.SetText(fmt.Sprintf(
			"[::b]session[-:-:-]  %s\n[::b]state[-:-:-]    %s\n[::b]records[-:-:-]  %d\n[::b]sample[-:-:-]   %s",
			st.GetSession(), st.GetState(), st.GetTotalRecords(), tview.Escape(sampleLine)))
		a.renderStatusBar(st.GetState())
	})
}

func (a *App) export() {
	ctx, cancel := context.WithTimeout(a.ctx, 30*time.Second)
	defer cancel()

	resp, err := a.grpc.Archive.Export(ctx, &archivev1.ExportRequest{})
	if err != nil {
		a.setFlash(fmt.Sprintf("export: %v", err))
		return
	}
	a.setFlash(fmt.Sprintf("exported %d records to %s", resp.GetRecords(), resp.GetPath()))
	a.refresh()
}

// watchEvents streams daemon events into the feed, reconnecting on error.
func (a *App) watchEvents() {
	for a.ctx.Err() == nil {
		stream, err := a.grpc.Archive.WatchEvents(a.ctx, &archivev1.WatchEventsRequest{})
		if err != nil {
			time.Sleep(time.Second)
			continue
		}
		for {
			evt, err := stream.Recv()
			if err == io.EOF || err != nil {
				break
			}
			line := fmt.Sprintf("[gray]%s[-] %s\n",
				time.UnixMilli(evt.GetOccurredAtUnixMs()).Format("15:04:05"),
				evt.GetKind())
			a.draw(func() {
				_, _ = fmt.Fprint(a.events, line)
				a.events.ScrollToEnd()
			})
		}
		time.Sleep(time.Second)
	}
}

func (a *App) setFlash(msg string) {
	a.flash = msg
	a.flashAt = time.Now()
	a.draw(func() { a.renderStatusBar("") })
}

func (a *App) renderStatusBar(state string) {
	line := fmt.Sprintf(" [::b]%s[-:-:-] | q:quit  e:export  r:refresh", a.session)
	if state != "" {
		line = fmt.Sprintf(" [::b]%s[-:-:-] | %s | q:quit  e:export  r:refresh", a.session, state)
	}
	if a.flash != "" && time.Since(a.flashAt) < 10*time.Second {
		line += fmt.Sprintf(" | [yellow]%s[-]", tview.Escape(a.flash))
	}
	a.statusBar.SetText(line)
}

func (a *App) draw(fn func()) {
	a.app.QueueUpdateDraw(fn)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "…"
}
