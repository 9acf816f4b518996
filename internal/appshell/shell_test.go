package appshell

import (
	"context"
	"testing"
)

func TestExitCode(t *testing.T) {
	live := context.Background()
	dead, cancel := context.WithCancel(context.Background())
	cancel()

	cases := []struct {
		ctx  context.Context
		code int
		want int
	}{
		{live, 0, 0},
		{live, 2, 2},
		{dead, 0, 130},
		{dead, 3, 3},
	}
	for i, c := range cases {
		if got := ExitCode(c.ctx, c.code); got != c.want {
			t.Errorf("case %d: ExitCode = %d, want %d", i, got, c.want)
		}
	}
}
