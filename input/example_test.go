package input_test

import (
	"fmt"
	"strings"

	"github.com/plus3/gridstep/input"
)

// ExampleParseScript replays a script frame by frame. When several keys go
// down together the first of W, S, A, D wins.
func ExampleParseScript() {
	script, err := input.ParseScript(strings.NewReader("# opening\n0 w\n3 d a\n"))
	if err != nil {
		panic(err)
	}

	for frame := uint64(0); frame <= script.LastFrame(); frame++ {
		script.Seek(frame)
		fmt.Println(frame, input.Direction(script))
	}

	// Output:
	// 0 forward
	// 1 none
	// 2 none
	// 3 left
}
