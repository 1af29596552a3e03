// Package cubesim simulates a 3x3 Rubik's cube: sticker state, face turns,
// move notation, random scrambles and scramble inversion.
//
// # Quick Start
//
//	s := cubesim.NewSession()
//
//	// Apply moves from notation
//	if err := s.ApplyMove("R'"); err != nil {
//	    log.Fatal(err)
//	}
//	results, err := s.ApplySequence([]string{"U", "F2", "x"})
//	// err reports the bad token; U and F2 were still applied.
//
//	fmt.Println("Solved:", s.IsSolved())
//	fmt.Println("State:", s.Serialize())
//
// # Scramble and Solve
//
// A session records the scramble it applied. Solve undoes it by replaying
// the inverse sequence:
//
//	scramble := s.Scramble(20)
//	solution, err := s.Solve()
//
// Solve works from move history, not from cube state. It refuses with
// ErrHistoryDiverged once any other move has been applied after the
// scramble.
//
// # State Strings
//
// Serialize returns 54 characters, one per sticker, faces in the order
// Up, Right, Front, Down, Left, Back, each face row-major. Colors are
// w, y, g, b, r, o.
package cubesim
