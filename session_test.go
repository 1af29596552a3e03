package cubesim

import (
	"errors"
	"reflect"
	"testing"

	"github.com/SeamusWaldron/cubesim/internal/cube"
	"github.com/SeamusWaldron/cubesim/internal/scramble"
	"github.com/SeamusWaldron/cubesim/pkg/types"
)

const solvedState = "wwwwwwwwwrrrrrrrrrgggggggggyyyyyyyyyooooooooobbbbbbbbb"

func TestNewSessionIsSolved(t *testing.T) {
	s := NewSession()
	if !s.IsSolved() {
		t.Error("New session should be solved")
	}
	if s.Serialize() != solvedState {
		t.Errorf("Serialize() = %s", s.Serialize())
	}
}

func TestApplyMove_U(t *testing.T) {
	s := NewSession()
	if err := s.ApplyMove("U"); err != nil {
		t.Fatalf("ApplyMove(U): %v", err)
	}
	if s.IsSolved() {
		t.Error("Session should not be solved after U")
	}
	c := s.Cube()
	for i := 0; i < 3; i++ {
		if c.Facelets[cube.F][i] != cube.Red {
			t.Errorf("front top row[%d] = %v, want the right face's red", i, c.Facelets[cube.F][i])
		}
	}
}

func TestApplySequence_RRRR(t *testing.T) {
	s := NewSession()
	results, err := s.ApplySequence([]string{"R", "R", "R", "R"})
	if err != nil {
		t.Fatalf("ApplySequence: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}
	if !s.IsSolved() {
		t.Error("R R R R should return to solved")
		t.Log(s.Cube().String())
	}
	if s.Serialize() != solvedState {
		t.Errorf("Serialize() = %s, want solved", s.Serialize())
	}
}

func TestApplyMove_InvalidLeavesStateUnchanged(t *testing.T) {
	s := NewSession()
	_ = s.ApplyMove("F")
	before := s.Serialize()

	for _, tok := range []string{"", "x"} {
		err := s.ApplyMove(tok)
		if !errors.Is(err, ErrInvalidMove) {
			t.Errorf("ApplyMove(%q) error = %v, want ErrInvalidMove", tok, err)
		}
		if !IsInvalidMove(err) {
			t.Errorf("IsInvalidMove(%v) = false", err)
		}
		if s.Serialize() != before {
			t.Errorf("ApplyMove(%q) changed the cube", tok)
		}
	}
}

func TestApplySequence_ContinuesPastBadToken(t *testing.T) {
	s := NewSession()
	results, err := s.ApplySequence([]string{"R", "q", "R'"})
	if !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("error = %v, want ErrInvalidMove", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if !results[0].OK() || results[1].OK() || !results[2].OK() {
		t.Errorf("unexpected per-token results: %+v", results)
	}
	if !s.IsSolved() {
		t.Error("R then R' should leave the cube solved")
	}
}

func TestApplySequenceStrict_StopsAtFirstFailure(t *testing.T) {
	s := NewSession()
	results, err := s.ApplySequenceStrict([]string{"R", "??", "U"})
	if !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("error = %v, want ErrInvalidMove", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if got := s.History(); !reflect.DeepEqual(got, []string{"R"}) {
		t.Errorf("History() = %v, want [R]", got)
	}
}

func TestScrambleThenSolve(t *testing.T) {
	s := NewSession(WithSeed(2024))
	for round := 0; round < 25; round++ {
		tokens := s.Scramble(20)
		if len(tokens) != 20 {
			t.Fatalf("Scramble(20) returned %d tokens", len(tokens))
		}
		if err := s.Cube().Validate(); err != nil {
			t.Fatalf("scrambled cube invalid: %v", err)
		}

		solution, err := s.Solve()
		if err != nil {
			t.Fatalf("Solve: %v", err)
		}
		if len(solution) != len(tokens) {
			t.Errorf("solution has %d moves, want %d", len(solution), len(tokens))
		}
		if !s.IsSolved() {
			t.Errorf("scramble %v then solution %v did not solve", tokens, solution)
			t.Log(s.Cube().String())
		}
	}
}

func TestScramble_DefaultLength(t *testing.T) {
	s := NewSession(WithScrambleLength(12))
	if got := len(s.Scramble(0)); got != 12 {
		t.Errorf("Scramble(0) length = %d, want 12", got)
	}
	if got := len(NewSession().GenerateScramble(-1)); got != scramble.DefaultLength {
		t.Errorf("GenerateScramble(-1) length = %d, want %d", got, scramble.DefaultLength)
	}
}

func TestGenerateScramble_DoesNotApply(t *testing.T) {
	s := NewSession()
	tokens := s.GenerateScramble(20)
	if len(tokens) != 20 {
		t.Fatalf("got %d tokens", len(tokens))
	}
	for _, tok := range tokens {
		if !scramble.InAlphabet(tok) {
			t.Errorf("token %q outside the alphabet", tok)
		}
	}
	if !s.IsSolved() {
		t.Error("GenerateScramble must not touch the cube")
	}
	if s.ScrambleRecord() != nil {
		t.Error("GenerateScramble must not record a scramble")
	}
}

func TestSeedIsReproducible(t *testing.T) {
	a := NewSession(WithSeed(9)).Scramble(20)
	b := NewSession(WithSeed(9)).Scramble(20)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("seeded sessions diverged:\n%v\n%v", a, b)
	}
}

func TestSolve_WithoutScramble(t *testing.T) {
	s := NewSession()
	if _, err := s.Solve(); !errors.Is(err, ErrNoScramble) {
		t.Errorf("Solve() error = %v, want ErrNoScramble", err)
	}
}

func TestSolve_RefusesAfterInterleavedMoves(t *testing.T) {
	s := NewSession(WithSeed(5))
	s.Scramble(10)
	before := s.Serialize()

	if err := s.ApplyMove("R"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Solution(); !errors.Is(err, ErrHistoryDiverged) {
		t.Errorf("Solution() error = %v, want ErrHistoryDiverged", err)
	}
	_ = s.ApplyMove("R'")
	if s.Serialize() != before {
		t.Fatal("R R' should restore the scrambled state")
	}
	// History, not state, decides: undoing the extra move does not help.
	if _, err := s.Solve(); !errors.Is(err, ErrHistoryDiverged) {
		t.Errorf("Solve() error = %v, want ErrHistoryDiverged", err)
	}
}

func TestRecordScramble(t *testing.T) {
	s := NewSession()
	if err := s.RecordScramble([]string{"r", "u'", "F2"}); err != nil {
		t.Fatalf("RecordScramble: %v", err)
	}
	if got := s.ScrambleRecord(); !reflect.DeepEqual(got, []string{"R", "U'", "F2"}) {
		t.Errorf("ScrambleRecord() = %v", got)
	}
	solution, err := s.Solution()
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"F2", "U", "R'"}; !reflect.DeepEqual(solution, want) {
		t.Errorf("Solution() = %v, want %v", solution, want)
	}
	if _, err := s.Solve(); err != nil {
		t.Fatal(err)
	}
	if !s.IsSolved() {
		t.Error("Solve should restore solved")
	}
	if s.ScrambleRecord() != nil {
		t.Error("Solve should clear the scramble record")
	}
}

func TestRecordScramble_InvalidChangesNothing(t *testing.T) {
	s := NewSession()
	_ = s.ApplyMove("L")
	before := s.Serialize()
	if err := s.RecordScramble([]string{"R", "bogus"}); !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("error = %v, want ErrInvalidMove", err)
	}
	if s.Serialize() != before {
		t.Error("invalid scramble changed the cube")
	}
}

func TestLoad(t *testing.T) {
	src := NewSession()
	_, _ = src.ApplySequence([]string{"R", "U", "F'"})

	dst := NewSession()
	if err := dst.Load(src.Serialize()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if dst.Serialize() != src.Serialize() {
		t.Error("loaded state differs")
	}
	if err := dst.Load("nope"); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Load(nope) error = %v, want ErrInvalidState", err)
	}
}

func TestMoveCallbackAndHistory(t *testing.T) {
	var seen []types.Move
	s := NewSession(WithMoveCallback(func(m types.Move) { seen = append(seen, m) }))
	_, _ = s.ApplySequence([]string{"U", "D2"})
	if len(seen) != 2 || seen[1] != D2 {
		t.Errorf("callback saw %v", seen)
	}
	if got := s.History(); !reflect.DeepEqual(got, []string{"U", "D2"}) {
		t.Errorf("History() = %v", got)
	}

	s.Reset()
	if len(s.History()) != 0 || !s.IsSolved() {
		t.Error("Reset should clear history and solve the cube")
	}

	quiet := NewSession(WithMoveHistory(false))
	_ = quiet.ApplyMove("U")
	if len(quiet.History()) != 0 {
		t.Error("history disabled but recorded")
	}
}

func TestInvert_Package(t *testing.T) {
	for _, tok := range scramble.Alphabet() {
		once, err := Invert([]string{tok})
		if err != nil {
			t.Fatal(err)
		}
		twice, _ := Invert(once)
		if !reflect.DeepEqual(twice, []string{tok}) {
			t.Errorf("Invert(Invert([%s])) = %v", tok, twice)
		}
	}
}

func TestAlgorithms(t *testing.T) {
	c := cube.New()
	for i := 0; i < 6; i++ {
		c.Apply(SexyMove...)
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
	}
	c.Apply(TPerm...)
	c.Apply(TPerm...)
	if !c.IsSolved() {
		t.Error("T-perm x 2 should return to solved")
	}
}

func TestSessionApply(t *testing.T) {
	var seen int
	s := NewSession(WithMoveCallback(func(types.Move) { seen++ }))

	s.Apply(TPerm...)
	if s.IsSolved() {
		t.Error("T-perm should scramble the cube")
	}
	s.Apply(TPerm...)
	if !s.IsSolved() {
		t.Error("T-perm x 2 should return to solved")
	}
	if seen != 2*len(TPerm) {
		t.Errorf("callback saw %d moves, want %d", seen, 2*len(TPerm))
	}

	s.Scramble(5)
	s.Apply(R)
	if _, err := s.Solve(); !errors.Is(err, ErrHistoryDiverged) {
		t.Errorf("Solve after Apply error = %v, want ErrHistoryDiverged", err)
	}
}
