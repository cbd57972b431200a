// Package router derives the current page from a URL fragment and tracks
// navigation state. Route derivation is a total function: every fragment
// resolves to a variant, with malformed input falling back to Home.
package router

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gospelarchive/core/internal/domain/entities"
)

// Fragment grammar
const (
	HomeFragment = "#/"
	AdminPrefix  = "#/admin"
	BoardPrefix  = "#/board/"
)

// BoardFragment builds the fragment for a category/language board.
func BoardFragment(category, language string) string {
	return fmt.Sprintf("#/board/%s/%s", category, language)
}

// Parse resolves a fragment to a route. A board fragment must split into
// exactly four slash-delimited segments; any other shape under the board
// prefix falls back to Home rather than an error state.
func Parse(fragment string) entities.Route {
	if strings.HasPrefix(fragment, AdminPrefix) {
		return entities.Route{Kind: entities.RouteAdmin}
	}

	if strings.HasPrefix(fragment, BoardPrefix) {
		parts := strings.Split(fragment, "/")
		if len(parts) == 4 {
			return entities.Route{
				Kind:     entities.RouteBoard,
				Category: parts[2],
				Language: parts[3],
			}
		}
	}

	return entities.Route{Kind: entities.RouteHome}
}

// Change describes one navigation event. ResetScroll tells the view layer to
// return to the top of the page.
type Change struct {
	Fragment    string
	Route       entities.Route
	ResetScroll bool
}

// Navigator holds the current fragment and notifies subscribers on every
// navigation. Programmatic and external navigation share this single path.
type Navigator struct {
	mu        sync.Mutex
	fragment  string
	listeners []func(Change)
	pending   *time.Timer
	closed    bool
}

// NewNavigator creates a navigator with no current fragment. Call Start to
// bootstrap it.
func NewNavigator() *Navigator {
	return &Navigator{}
}

// OnChange registers a listener for navigation events.
func (n *Navigator) OnChange(fn func(Change)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, fn)
}

// Start bootstraps the navigator: an empty fragment force-navigates to the
// home fragment, which emits one synthetic navigation event.
func (n *Navigator) Start() {
	n.mu.Lock()
	fragment := n.fragment
	n.mu.Unlock()

	if fragment == "" {
		n.Navigate(HomeFragment)
		return
	}
	n.Navigate(fragment)
}

// Navigate sets the current fragment and notifies listeners. Every
// navigation resets scroll.
func (n *Navigator) Navigate(fragment string) {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.fragment = fragment
	listeners := make([]func(Change), len(n.listeners))
	copy(listeners, n.listeners)
	n.mu.Unlock()

	change := Change{
		Fragment:    fragment,
		Route:       Parse(fragment),
		ResetScroll: true,
	}
	for _, fn := range listeners {
		fn(change)
	}
}

// NavigateAfter schedules a navigation after the given delay. A later call
// replaces an earlier pending one; Close drops anything still pending.
func (n *Navigator) NavigateAfter(delay time.Duration, fragment string) {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	if n.pending != nil {
		n.pending.Stop()
	}
	n.pending = time.AfterFunc(delay, func() {
		n.Navigate(fragment)
	})
	n.mu.Unlock()
}

// Current returns the current fragment.
func (n *Navigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.fragment
}

// CurrentRoute returns the parsed form of the current fragment.
func (n *Navigator) CurrentRoute() entities.Route {
	return Parse(n.Current())
}

// Close stops any pending deferred navigation and silences the navigator.
func (n *Navigator) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
	if n.pending != nil {
		n.pending.Stop()
		n.pending = nil
	}
}
