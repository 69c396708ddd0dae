package tools

import (
	"context"
	"errors"
	"testing"
)

type fakeKeys map[string]string

func (f fakeKeys) APIKey(name string) string { return f[name] }

func TestRegistryIsClosedSet(t *testing.T) {
	r := NewRegistry(fakeKeys{})
	all := r.All()
	if len(all) != 9 {
		t.Fatalf("expected 9 tools, got %d", len(all))
	}

	kinds := map[Kind]bool{}
	for _, tool := range all {
		if kinds[tool.Kind] {
			t.Fatalf("duplicate kind %d", tool.Kind)
		}
		kinds[tool.Kind] = true
	}
}

func TestAllReturnsCopy(t *testing.T) {
	r := NewRegistry(fakeKeys{})
	first := r.All()
	first[0].Name = "mutated"
	if r.All()[0].Name == "mutated" {
		t.Fatal("All must not expose the registry's backing slice")
	}
}

func TestAvailabilityFollowsKeys(t *testing.T) {
	keys := fakeKeys{}
	r := NewRegistry(keys)

	search, _ := r.Lookup(KindSearch)
	docs, _ := r.Lookup(KindDocs)
	if search.Available() || docs.Available() {
		t.Fatal("no keys configured: nothing should be available")
	}

	keys[KeySerpAPI] = "sk-123"
	if !search.Available() {
		t.Fatal("search should be available once the SerpAPI key is set")
	}
	if docs.Available() {
		t.Fatal("docs needs the Google key, not the SerpAPI key")
	}

	keys[KeyGoogleAPI] = "g-456"
	if !docs.Available() {
		t.Fatal("docs should be available once the Google key is set")
	}
}

func TestInvokeUnavailable(t *testing.T) {
	r := NewRegistry(fakeKeys{})
	search, _ := r.Lookup(KindSearch)

	_, err := search.Invoke(context.Background(), Params{Query: "go"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestInvokeReturnsCannedResult(t *testing.T) {
	r := NewRegistry(fakeKeys{KeySerpAPI: "sk"})
	news, _ := r.Lookup(KindNews)

	res, err := news.Invoke(context.Background(), Params{Query: "transporte"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Tool != "news" || res.Query != "transporte" {
		t.Fatalf("unexpected result envelope: %+v", res)
	}
	if len(res.Items) == 0 {
		t.Fatal("expected canned items")
	}
}

func TestInvokeHonorsCancellation(t *testing.T) {
	r := NewRegistry(fakeKeys{KeySerpAPI: "sk"})
	search, _ := r.Lookup(KindSearch)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := search.Invoke(ctx, Params{Query: "go"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestLookupUnknownKind(t *testing.T) {
	r := NewRegistry(fakeKeys{})
	if _, ok := r.Lookup(Kind(99)); ok {
		t.Fatal("unknown kind should not resolve")
	}
	if _, ok := r.ByName("nope"); ok {
		t.Fatal("unknown name should not resolve")
	}
}
