// ABOUTME: Theme store to Bubble Tea bridge; forwards state snapshots as ThemeStateMsg
// ABOUTME: Sends from its own goroutine and coalesces bursts to the newest snapshot

package ui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/themeswitch-go/internal/themestore"
)

// ProgramSender matches *tea.Program's Send method.
type ProgramSender interface {
	Send(msg tea.Msg)
}

// Bridge subscribes to store and relays every change to program until ctx
// is done or the returned stop function is called.
//
// Store subscribers run under the store's publication lock, and Update may
// be the caller of SwitchTheme, so the handler never blocks: it parks the
// snapshot and wakes the sender goroutine.
func Bridge(ctx context.Context, store *themestore.Store, program ProgramSender) (stop func()) {
	var (
		mu      sync.Mutex
		latest  themestore.State
		pending bool
	)
	wake := make(chan struct{}, 1)

	unsubscribe := store.Subscribe(func(st themestore.State) {
		mu.Lock()
		latest, pending = st, true
		mu.Unlock()
		select {
		case wake <- struct{}{}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(ctx)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-wake:
			}
			mu.Lock()
			st, ok := latest, pending
			pending = false
			mu.Unlock()
			if ok {
				program.Send(ThemeStateMsg{State: st})
			}
		}
	}()

	return func() {
		unsubscribe()
		cancel()
	}
}
