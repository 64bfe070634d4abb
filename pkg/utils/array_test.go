package utils

import (
	"slices"
	"strings"
	"testing"
)

func TestMap(t *testing.T) {
	got := Map([]string{"a", "bb", "ccc"}, func(s string) int { return len(s) })
	want := []int{1, 2, 3}
	if !slices.Equal(got, want) {
		t.Errorf("Map() = %v, want %v", got, want)
	}
}

func TestFilter(t *testing.T) {
	got := Filter([]string{"Arial.ttf", "notes.txt", "Mono.otf"}, func(s string) bool {
		return !strings.HasSuffix(s, ".txt")
	})
	want := []string{"Arial.ttf", "Mono.otf"}
	if !slices.Equal(got, want) {
		t.Errorf("Filter() = %v, want %v", got, want)
	}
}

func TestReduce(t *testing.T) {
	got := Reduce([]int{1, 2, 3, 4}, func(sum int, v int) int { return sum + v }, 0)
	if got != 10 {
		t.Errorf("Reduce() = %d, want 10", got)
	}
}

func TestSortDoesNotMutate(t *testing.T) {
	input := []int{3, 1, 2}
	got := Sort(input)
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("Sort() = %v, want [1 2 3]", got)
	}
	if !slices.Equal(input, []int{3, 1, 2}) {
		t.Errorf("Sort() mutated input: %v", input)
	}
}

func TestSortedKeys(t *testing.T) {
	got := SortedKeys(map[string]int{"b": 1, "a": 2, "c": 3})
	want := []string{"a", "b", "c"}
	if !slices.Equal(got, want) {
		t.Errorf("SortedKeys() = %v, want %v", got, want)
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		name  string
		slice []string
		value string
		want  bool
	}{
		{"present", []string{".ttf", ".otf"}, ".otf", true},
		{"absent", []string{".ttf", ".otf"}, ".woff", false},
		{"empty", nil, ".ttf", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(tt.slice, tt.value); got != tt.want {
				t.Errorf("Contains(%v, %q) = %v, want %v", tt.slice, tt.value, got, tt.want)
			}
		})
	}
}
