package fix_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/taglint/pkg/fix"
)

func TestValidateEdits(t *testing.T) {
	tests := []struct {
		name    string
		edits   []fix.TextEdit
		length  int
		wantErr bool
	}{
		{"valid edits", []fix.TextEdit{fix.Delete(0, 2), fix.Insert(5, "x")}, 10, false},
		{"negative start", []fix.TextEdit{fix.Delete(-1, 2)}, 10, true},
		{"end before start", []fix.TextEdit{{StartOffset: 5, EndOffset: 3}}, 10, true},
		{"end past content", []fix.TextEdit{fix.Delete(8, 11)}, 10, true},
		{"insert at content end", []fix.TextEdit{fix.Insert(10, "x")}, 10, false},
		{"empty edits", nil, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fix.ValidateEdits(tt.edits, tt.length)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEdits() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var verr *fix.ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("error type = %T, want *ValidationError", err)
				}
			}
		})
	}
}

func TestSortEdits(t *testing.T) {
	edits := []fix.TextEdit{
		fix.Delete(5, 8),
		fix.Insert(1, "a"),
		fix.Delete(5, 6),
		fix.Insert(0, "b"),
	}

	fix.SortEdits(edits)

	wantStarts := []int{0, 1, 5, 5}
	for i, e := range edits {
		if e.StartOffset != wantStarts[i] {
			t.Errorf("edit[%d].StartOffset = %d, want %d", i, e.StartOffset, wantStarts[i])
		}
	}
	// Equal starts tie-break by end offset.
	if edits[2].EndOffset != 6 || edits[3].EndOffset != 8 {
		t.Errorf("tie-break by end offset failed: %v, %v", edits[2], edits[3])
	}
}

func TestDetectConflicts(t *testing.T) {
	t.Run("no overlap", func(t *testing.T) {
		edits := []fix.TextEdit{fix.Delete(0, 2), fix.Delete(2, 4)}
		if err := fix.DetectConflicts(edits); err != nil {
			t.Errorf("DetectConflicts() = %v, want nil", err)
		}
	})

	t.Run("overlap detected", func(t *testing.T) {
		edits := []fix.TextEdit{fix.Delete(0, 3), fix.Delete(2, 4)}
		err := fix.DetectConflicts(edits)
		var cerr *fix.ConflictError
		if !errors.As(err, &cerr) {
			t.Fatalf("error = %v, want *ConflictError", err)
		}
	})
}

func TestPrepareEdits(t *testing.T) {
	t.Run("sorts and copies", func(t *testing.T) {
		edits := []fix.TextEdit{fix.Delete(5, 6), fix.Delete(0, 1)}
		prepared, err := fix.PrepareEdits(edits, 10)
		if err != nil {
			t.Fatalf("PrepareEdits() error = %v", err)
		}

		if prepared[0].StartOffset != 0 {
			t.Error("prepared edits not sorted")
		}
		// Original slice is untouched.
		if edits[0].StartOffset != 5 {
			t.Error("input slice was mutated")
		}
	})

	t.Run("errors on conflict", func(t *testing.T) {
		edits := []fix.TextEdit{fix.Delete(0, 3), fix.Delete(2, 4)}
		if _, err := fix.PrepareEdits(edits, 10); err == nil {
			t.Error("expected conflict error")
		}
	})

	t.Run("errors on invalid range", func(t *testing.T) {
		edits := []fix.TextEdit{fix.Delete(0, 99)}
		if _, err := fix.PrepareEdits(edits, 10); err == nil {
			t.Error("expected validation error")
		}
	})
}

func TestMergeAndFilterConflicts(t *testing.T) {
	t.Run("merges overlapping deletes", func(t *testing.T) {
		edits := []fix.TextEdit{fix.Delete(0, 3), fix.Delete(2, 5)}
		accepted, skipped, merged := fix.MergeAndFilterConflicts(edits)

		if len(accepted) != 1 || len(skipped) != 0 || merged != 1 {
			t.Fatalf("got accepted=%d skipped=%d merged=%d, want 1/0/1",
				len(accepted), len(skipped), merged)
		}
		if accepted[0].StartOffset != 0 || accepted[0].EndOffset != 5 {
			t.Errorf("merged delete = %v, want [0:5)", accepted[0])
		}
	})

	t.Run("skips conflicting non-deletes", func(t *testing.T) {
		edits := []fix.TextEdit{fix.Replace(0, 3, "a"), fix.Replace(2, 5, "b")}
		accepted, skipped, merged := fix.MergeAndFilterConflicts(edits)

		if len(accepted) != 1 || len(skipped) != 1 || merged != 0 {
			t.Fatalf("got accepted=%d skipped=%d merged=%d, want 1/1/0",
				len(accepted), len(skipped), merged)
		}
		if accepted[0].NewText != "a" {
			t.Error("earlier edit should win")
		}
	})

	t.Run("passes disjoint edits through", func(t *testing.T) {
		edits := []fix.TextEdit{fix.Delete(0, 1), fix.Insert(5, "x"), fix.Delete(7, 9)}
		accepted, skipped, merged := fix.MergeAndFilterConflicts(edits)

		if len(accepted) != 3 || len(skipped) != 0 || merged != 0 {
			t.Errorf("got accepted=%d skipped=%d merged=%d, want 3/0/0",
				len(accepted), len(skipped), merged)
		}
	})
}

func TestPrepareEditsFiltered(t *testing.T) {
	t.Run("does not error on conflicts", func(t *testing.T) {
		edits := []fix.TextEdit{fix.Replace(2, 5, "b"), fix.Replace(0, 3, "a")}
		accepted, skipped, merged, err := fix.PrepareEditsFiltered(edits, 10)
		if err != nil {
			t.Fatalf("PrepareEditsFiltered() error = %v", err)
		}
		if len(accepted) != 1 || len(skipped) != 1 || merged != 0 {
			t.Errorf("got accepted=%d skipped=%d merged=%d, want 1/1/0",
				len(accepted), len(skipped), merged)
		}
	})

	t.Run("still validates ranges", func(t *testing.T) {
		edits := []fix.TextEdit{fix.Delete(0, 99)}
		if _, _, _, err := fix.PrepareEditsFiltered(edits, 10); err == nil {
			t.Error("expected validation error")
		}
	})

	t.Run("empty input", func(t *testing.T) {
		accepted, skipped, merged, err := fix.PrepareEditsFiltered(nil, 10)
		if err != nil || accepted != nil || skipped != nil || merged != 0 {
			t.Errorf("unexpected result for empty input: %v %v %d %v", accepted, skipped, merged, err)
		}
	})
}
