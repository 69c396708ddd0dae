package tools

import "fmt"

// Canned responders. Each shapes a plausible result for its service so the
// assistant flow can be exercised end to end without credentials for real
// backends.

func searchItems(p Params) []Item {
	return []Item{
		{Title: fmt.Sprintf("Top result for %q", p.Query), Snippet: "Overview and key facts.", Link: "https://example.com/1"},
		{Title: fmt.Sprintf("%s — analysis", p.Query), Snippet: "In-depth discussion of the topic.", Link: "https://example.com/2"},
		{Title: fmt.Sprintf("%s FAQ", p.Query), Snippet: "Frequently asked questions.", Link: "https://example.com/3"},
	}
}

func newsItems(p Params) []Item {
	return []Item{
		{Title: fmt.Sprintf("Breaking: developments on %s", p.Query), Snippet: "Published 2 hours ago.", Link: "https://news.example.com/1"},
		{Title: fmt.Sprintf("%s: what changed this week", p.Query), Snippet: "Published yesterday.", Link: "https://news.example.com/2"},
	}
}

func mapsItems(p Params) []Item {
	return []Item{
		{Title: fmt.Sprintf("%s — nearest location", p.Query), Snippet: "1.2 km away, open now."},
		{Title: fmt.Sprintf("%s — city center", p.Query), Snippet: "3.8 km away, closes 18:00."},
	}
}

func financeItems(p Params) []Item {
	return []Item{
		{Title: p.Query, Snippet: "142.10 +1.8% today"},
	}
}

func eventsItems(p Params) []Item {
	return []Item{
		{Title: fmt.Sprintf("%s meetup", p.Query), Snippet: "Thursday 19:00, community hall."},
		{Title: fmt.Sprintf("%s conference", p.Query), Snippet: "Next month, convention center."},
	}
}

func localItems(p Params) []Item {
	return []Item{
		{Title: fmt.Sprintf("%s near you", p.Query), Snippet: "4.6 stars, 120 reviews."},
	}
}

func trendsItems(p Params) []Item {
	return []Item{
		{Title: p.Query, Snippet: "Interest over time: rising"},
	}
}

func docsItems(p Params) []Item {
	return []Item{
		{Title: "Q2 Planning Notes", Snippet: "Shared document, edited 3 days ago."},
		{Title: "Meeting Minutes", Snippet: "Shared document, edited last week."},
	}
}

func sheetsItems(p Params) []Item {
	return []Item{
		{Title: "Budget 2025", Snippet: "Sheet1!A1:D20"},
	}
}
