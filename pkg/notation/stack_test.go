package notation

import (
	"reflect"
	"testing"
)

func TestStackPushPop(t *testing.T) {
	s := NewStack[string]()
	if !s.IsEmpty() {
		t.Fatal("New stack should be empty")
	}

	s.Push("a")
	s.Push("b")
	s.Push("c")

	if s.Size() != 3 {
		t.Fatalf("Expected size 3, got %d", s.Size())
	}

	top, ok := s.Peek()
	if !ok || top != "c" {
		t.Errorf("Expected peek 'c', got %q (ok=%v)", top, ok)
	}
	if s.Size() != 3 {
		t.Errorf("Peek should not change size, got %d", s.Size())
	}

	for _, want := range []string{"c", "b", "a"} {
		got, ok := s.Pop()
		if !ok {
			t.Fatalf("Pop failed, expected %q", want)
		}
		if got != want {
			t.Errorf("Expected pop %q, got %q", want, got)
		}
	}

	if !s.IsEmpty() {
		t.Error("Stack should be empty after popping everything")
	}
}

func TestStackEmptyIsAbsent(t *testing.T) {
	s := NewStack[float64]()

	v, ok := s.Pop()
	if ok {
		t.Error("Pop on empty stack should report false")
	}
	if v != 0 {
		t.Errorf("Expected zero value, got %v", v)
	}

	if _, ok := s.Peek(); ok {
		t.Error("Peek on empty stack should report false")
	}
	if s.Size() != 0 {
		t.Errorf("Expected size 0, got %d", s.Size())
	}
}

func TestStackSnapshotIsIndependent(t *testing.T) {
	s := NewStack[int]()
	s.Push(1)
	s.Push(2)

	snap := s.Snapshot()
	if !reflect.DeepEqual(snap, []int{1, 2}) {
		t.Fatalf("Expected snapshot [1 2], got %v", snap)
	}

	s.Pop()
	s.Push(9)
	s.Push(10)

	if !reflect.DeepEqual(snap, []int{1, 2}) {
		t.Errorf("Snapshot changed after stack mutation: %v", snap)
	}

	empty := NewStack[int]().Snapshot()
	if empty == nil || len(empty) != 0 {
		t.Errorf("Expected empty non-nil snapshot, got %#v", empty)
	}
}
