package app

import (
	"fmt"
	"io"

	"github.com/agbru/diocalc/internal/cli"
	"github.com/agbru/diocalc/internal/diophantine"
	apperrors "github.com/agbru/diocalc/internal/errors"
	"github.com/agbru/diocalc/internal/ui"
)

// selftestGCDPairs are the canned Bézout inputs, covering negative and
// zero first operands and both argument orders.
var selftestGCDPairs = []struct{ d, v int64 }{
	{237, 141}, {6, 3}, {5, 2}, {3, 7}, {199, 98}, {98, 199},
	{-129, 273}, {-273, 129}, {0, 21},
}

// selftestProblems are the canned bounded systems with their expected
// solution counts.
var selftestProblems = []struct {
	d, v, w, p, q int64
	constrainT    bool
	wantCount     int
}{
	{-199, 98, 5, 0, 99, true, 1},
	{-199, 98, 5, 0, 99, false, 1},
	{23, 31, 4, 0, 99, true, 4},
	{23, 31, 4, 0, 99, false, 3},
	{23, 31, 4, 0, 3, true, 0},
	{24, 18, 3, 0, 99, true, 0},
}

// runSelftest replays the canned regression systems and verifies the
// defining identities of every result. Any violation exits with the
// mismatch code.
func (a *Application) runSelftest(out io.Writer) int {
	failures := 0

	fmt.Fprintf(out, "%sGCD Tests%s\n", ui.ColorBold(), ui.ColorReset())
	for _, pair := range selftestGCDPairs {
		g, x, y, err := diophantine.Bezout(pair.d, pair.v)
		if err != nil {
			failures++
			fmt.Fprintf(out, "  %sFAIL%s Bezout(%d,%d): %v\n", ui.ColorRed(), ui.ColorReset(), pair.d, pair.v, err)
			continue
		}
		if g <= 0 || x*pair.d+y*pair.v != g {
			failures++
			fmt.Fprintf(out, "  %sFAIL%s %s\n", ui.ColorRed(), ui.ColorReset(),
				cli.FormatIdentity(pair.d, pair.v, g, x, y))
			continue
		}
		fmt.Fprintf(out, "  %sok%s   %s\n", ui.ColorGreen(), ui.ColorReset(),
			cli.FormatIdentity(pair.d, pair.v, g, x, y))
	}

	fmt.Fprintf(out, "\n%sSolution Tests%s\n", ui.ColorBold(), ui.ColorReset())
	for _, prob := range selftestProblems {
		sols, err := diophantine.SolveBounded(prob.d, prob.v, prob.w, prob.p, prob.q, prob.constrainT)
		if err != nil {
			failures++
			fmt.Fprintf(out, "  %sFAIL%s solve(%d,%d,%d): %v\n", ui.ColorRed(), ui.ColorReset(), prob.d, prob.v, prob.w, err)
			continue
		}
		ok := len(sols) == prob.wantCount
		for _, sol := range sols {
			if sol.S*prob.d+sol.T*prob.v != prob.w {
				ok = false
			}
			bounded := sol.S
			if prob.constrainT {
				bounded = sol.T
			}
			if bounded < prob.p || bounded > prob.q {
				ok = false
			}
		}
		if !ok {
			failures++
			fmt.Fprintf(out, "  %sFAIL%s s*%d + t*%d = %d: got %d solutions, want %d\n",
				ui.ColorRed(), ui.ColorReset(), prob.d, prob.v, prob.w, len(sols), prob.wantCount)
			continue
		}
		fmt.Fprintf(out, "  %sok%s   s*%d + t*%d = %d: %d solutions\n",
			ui.ColorGreen(), ui.ColorReset(), prob.d, prob.v, prob.w, len(sols))
	}

	if failures > 0 {
		fmt.Fprintf(out, "\n%s%d self-test failures%s\n", ui.ColorRed(), failures, ui.ColorReset())
		return apperrors.ExitErrorMismatch
	}
	fmt.Fprintf(out, "\n%sAll self-tests passed.%s\n", ui.ColorGreen(), ui.ColorReset())
	return apperrors.ExitSuccess
}
