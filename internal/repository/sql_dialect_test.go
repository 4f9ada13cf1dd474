package repository

import "testing"

func TestBuildLikeConditionByDialect(t *testing.T) {
	condition, argCount := buildLikeConditionByDialect("sqlite", []string{"title", "text"})
	if condition != "title LIKE ? OR text LIKE ?" {
		t.Fatalf("unexpected sqlite condition: %s", condition)
	}
	if argCount != 2 {
		t.Fatalf("expected 2 args, got %d", argCount)
	}

	condition, argCount = buildLikeConditionByDialect("postgres", []string{"title"})
	if condition != "title ILIKE ?" {
		t.Fatalf("unexpected postgres condition: %s", condition)
	}
	if argCount != 1 {
		t.Fatalf("expected 1 arg, got %d", argCount)
	}
}

func TestBuildLikeConditionSkipsEmptyColumns(t *testing.T) {
	condition, argCount := buildLikeConditionByDialect("sqlite", []string{"", "title", "  "})
	if condition != "title LIKE ?" {
		t.Fatalf("unexpected condition: %s", condition)
	}
	if argCount != 1 {
		t.Fatalf("expected 1 arg, got %d", argCount)
	}
}

func TestRepeatLikeArgs(t *testing.T) {
	args := repeatLikeArgs("%kw%", 3)
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(args))
	}
	for _, arg := range args {
		if arg != "%kw%" {
			t.Fatalf("unexpected arg: %v", arg)
		}
	}
}
