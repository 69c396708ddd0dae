// Package tools defines the closed registry of assistant tools. Each tool has
// an explicit kind, a typed parameter struct and an availability check driven
// by the configured API keys. Results are canned: the registry models the
// contract with the external services (availability, invoke, await, fail)
// without talking to any network.
package tools

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Kind enumerates the tool set. The set is fixed at compile time.
type Kind int

const (
	KindSearch Kind = iota
	KindNews
	KindMaps
	KindFinance
	KindEvents
	KindLocal
	KindTrends
	KindDocs
	KindSheets
)

// Settings keys holding the API credentials each tool family needs.
const (
	KeySerpAPI   = "serp_api_key"
	KeyGoogleAPI = "google_api_key"
)

// ErrUnavailable is returned by Invoke when the tool's API key is not
// configured. Callers surface this as a persistent degraded state, not a
// transient error.
var ErrUnavailable = errors.New("tool not configured")

// Params carries a tool invocation's inputs.
type Params struct {
	Query string
	Extra map[string]string
}

// Item is a single result entry.
type Item struct {
	Title   string
	Snippet string
	Link    string
}

// Result is the outcome of a tool invocation.
type Result struct {
	Tool  string
	Query string
	Items []Item
}

// KeySource resolves API key values; in the application this is backed by
// the settings table.
type KeySource interface {
	APIKey(name string) string
}

// invokeLatency simulates the round trip to the external service.
const invokeLatency = 150 * time.Millisecond

// Tool is one entry in the registry.
type Tool struct {
	Kind        Kind
	Name        string
	Description string

	keyName string
	keys    KeySource
	respond func(Params) []Item
}

// Available reports whether the tool's API key is configured.
func (t Tool) Available() bool {
	return t.keys.APIKey(t.keyName) != ""
}

// Invoke runs the tool. It fails fast when the tool is unavailable, honors
// ctx cancellation while the simulated call is in flight, and otherwise
// returns canned data.
func (t Tool) Invoke(ctx context.Context, p Params) (*Result, error) {
	if !t.Available() {
		return nil, fmt.Errorf("%s: %w", t.Name, ErrUnavailable)
	}

	timer := time.NewTimer(invokeLatency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	return &Result{Tool: t.Name, Query: p.Query, Items: t.respond(p)}, nil
}

// Registry is the immutable tool list, built once at startup.
type Registry struct {
	tools []Tool
}

// NewRegistry builds the full tool set over the given key source.
func NewRegistry(keys KeySource) *Registry {
	serp := func(kind Kind, name, desc string, respond func(Params) []Item) Tool {
		return Tool{Kind: kind, Name: name, Description: desc, keyName: KeySerpAPI, keys: keys, respond: respond}
	}
	google := func(kind Kind, name, desc string, respond func(Params) []Item) Tool {
		return Tool{Kind: kind, Name: name, Description: desc, keyName: KeyGoogleAPI, keys: keys, respond: respond}
	}

	return &Registry{tools: []Tool{
		serp(KindSearch, "search", "Web search", searchItems),
		serp(KindNews, "news", "News search", newsItems),
		serp(KindMaps, "maps", "Place search", mapsItems),
		serp(KindFinance, "finance", "Market data", financeItems),
		serp(KindEvents, "events", "Event search", eventsItems),
		serp(KindLocal, "local", "Local business search", localItems),
		serp(KindTrends, "trends", "Search trends", trendsItems),
		google(KindDocs, "docs", "Document access", docsItems),
		google(KindSheets, "sheets", "Spreadsheet access", sheetsItems),
	}}
}

// Lookup returns the tool of the given kind.
func (r *Registry) Lookup(kind Kind) (Tool, bool) {
	for _, t := range r.tools {
		if t.Kind == kind {
			return t, true
		}
	}
	return Tool{}, false
}

// ByName returns the tool with the given name.
func (r *Registry) ByName(name string) (Tool, bool) {
	for _, t := range r.tools {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}

// All returns a copy of the registry in declaration order.
func (r *Registry) All() []Tool {
	out := make([]Tool, len(r.tools))
	copy(out, r.tools)
	return out
}
