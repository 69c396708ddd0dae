package board

import (
	"reflect"
	"testing"
)

func sampleBoard() []Column {
	return []Column{
		{ID: "todo", Title: "To Do", Cards: []Card{
			{ID: "t1", Title: "Research competitors", Priority: PriorityMedium},
			{ID: "t2", Title: "Create wireframes", Priority: PriorityHigh},
		}},
		{ID: "inprogress", Title: "In Progress", Cards: []Card{
			{ID: "t4", Title: "UI Implementation", Priority: PriorityHigh},
		}},
		{ID: "done", Title: "Done", Cards: nil},
	}
}

func TestMoveAppendsToTarget(t *testing.T) {
	cols := sampleBoard()
	out, moved := Move(cols, "t1", "todo", "inprogress")
	if !moved {
		t.Fatal("expected move to happen")
	}

	if got := out[0].CardCount(); got != 1 {
		t.Fatalf("source should have 1 card, got %d", got)
	}
	if out[0].Cards[0].ID != "t2" {
		t.Fatalf("remaining card should be t2, got %s", out[0].Cards[0].ID)
	}

	target := out[1]
	if got := target.CardCount(); got != 2 {
		t.Fatalf("target should have 2 cards, got %d", got)
	}
	// Moved card is always appended at the end, never inserted mid-list.
	if target.Cards[len(target.Cards)-1].ID != "t1" {
		t.Fatalf("moved card should be last in target, got %v", target.Cards)
	}
}

func TestMovePreservesTotalCount(t *testing.T) {
	cols := sampleBoard()
	before := TotalCards(cols)

	moves := []struct{ card, from, to string }{
		{"t1", "todo", "done"},
		{"t4", "inprogress", "todo"},
		{"t1", "done", "inprogress"},
		{"t2", "todo", "done"},
	}
	for _, mv := range moves {
		var moved bool
		cols, moved = Move(cols, mv.card, mv.from, mv.to)
		if !moved {
			t.Fatalf("move %+v should have succeeded", mv)
		}
	}

	if after := TotalCards(cols); after != before {
		t.Fatalf("card count changed: before %d, after %d", before, after)
	}

	// Every card appears in exactly one column.
	seen := map[string]int{}
	for _, col := range cols {
		for _, card := range col.Cards {
			seen[card.ID]++
		}
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("card %s appears %d times", id, n)
		}
	}
}

func TestMoveSameColumnIsNoop(t *testing.T) {
	cols := sampleBoard()
	out, moved := Move(cols, "t1", "todo", "todo")
	if moved {
		t.Fatal("same-column move should not mutate")
	}
	if !reflect.DeepEqual(out, cols) {
		t.Fatal("board should be unchanged after same-column move")
	}
}

func TestMoveCardNotInSource(t *testing.T) {
	cols := sampleBoard()
	// t4 lives in inprogress; the drag payload claims todo.
	out, moved := Move(cols, "t4", "todo", "done")
	if moved {
		t.Fatal("move with stale source should be ignored")
	}
	if !reflect.DeepEqual(out, cols) {
		t.Fatal("board should be unchanged after stale move")
	}
}

func TestMoveUnknownCard(t *testing.T) {
	cols := sampleBoard()
	out, moved := Move(cols, "nope", "todo", "done")
	if moved {
		t.Fatal("unknown card should be ignored")
	}
	if !reflect.DeepEqual(out, cols) {
		t.Fatal("board should be unchanged")
	}
}

func TestMoveDoesNotMutateInput(t *testing.T) {
	cols := sampleBoard()
	want := sampleBoard()
	Move(cols, "t1", "todo", "done")
	if !reflect.DeepEqual(cols, want) {
		t.Fatal("Move must not mutate its input snapshot")
	}
}

func TestFindCard(t *testing.T) {
	cols := sampleBoard()
	card, colID, ok := FindCard(cols, "t4")
	if !ok || card.ID != "t4" || colID != "inprogress" {
		t.Fatalf("FindCard = %v %q %v", card, colID, ok)
	}
	if _, _, ok := FindCard(cols, "missing"); ok {
		t.Fatal("FindCard should report missing card")
	}
}

func TestEndToEndScenario(t *testing.T) {
	cols := []Column{
		{ID: "todo", Title: "To Do", Cards: []Card{{ID: "t1", Title: "Only task"}}},
		{ID: "done", Title: "Done"},
	}

	out, moved := Move(cols, "t1", "todo", "done")
	if !moved {
		t.Fatal("move should succeed")
	}
	if out[0].CardCount() != 0 {
		t.Fatal("todo should be empty")
	}
	if out[1].CardCount() != 1 || out[1].Cards[0].ID != "t1" {
		t.Fatal("done should contain t1 as its last element")
	}
	if TotalCards(out) != 1 {
		t.Fatalf("total card count should stay 1, got %d", TotalCards(out))
	}
}
