package scramble

import (
	"reflect"
	"testing"
)

func TestGenerate_DefaultLengthFromAlphabet(t *testing.T) {
	g := NewRandom()
	for round := 0; round < 50; round++ {
		s := g.Generate(DefaultLength)
		if len(s) != 20 {
			t.Fatalf("Generate(20) returned %d tokens", len(s))
		}
		for _, tok := range s {
			if !InAlphabet(tok) {
				t.Errorf("token %q is not in the alphabet", tok)
			}
		}
	}
}

func TestGenerate_NonPositive(t *testing.T) {
	g := New(1)
	for _, n := range []int{0, -5} {
		if s := g.Generate(n); len(s) != 0 {
			t.Errorf("Generate(%d) = %v, want empty", n, s)
		}
	}
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	a := New(42).Generate(30)
	b := New(42).Generate(30)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different scrambles:\n%v\n%v", a, b)
	}
	c := New(43).Generate(30)
	if reflect.DeepEqual(a, c) {
		t.Error("different seeds produced the same 30-move scramble")
	}
}

func TestGenerate_CoversAlphabet(t *testing.T) {
	seen := map[string]int{}
	for _, tok := range New(7).Generate(5000) {
		seen[tok]++
	}
	if len(seen) != 18 {
		t.Errorf("5000 draws hit %d of 18 tokens", len(seen))
	}
}

func TestGenerateMoves_Valid(t *testing.T) {
	for _, m := range New(3).GenerateMoves(100) {
		if !InAlphabet(m.Notation()) {
			t.Errorf("move %v is outside the alphabet", m)
		}
	}
}

func TestAlphabet_IsACopy(t *testing.T) {
	a := Alphabet()
	a[0] = "X"
	if Alphabet()[0] != "F" {
		t.Error("Alphabet exposes internal storage")
	}
}
