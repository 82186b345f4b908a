package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestScoreCommand(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{
			args: []string{"score", "--location", "Hospital Area", "--issue", "Gas leak", "--description", "near entrance", "--sentiment", "2"},
			want: []string{"context", "+50", "danger keyword Gas", "priority 100 (raw 120) CRITICAL"},
		},
		{
			args: []string{"score", "--location", "Residential Area", "--issue", "x", "--description", "There was a Fire"},
			want: []string{"routine zone", "priority 50 (raw 50)\n"},
		},
		{
			args: []string{"score", "--location", "Main Highway", "--sentiment=-0.35"},
			want: []string{"sentiment     -3", "priority 37 (raw 37)"},
		},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			var out bytes.Buffer
			root := newRootCmd()
			root.SetOut(&out)
			root.SetArgs(tt.args)
			if err := root.Execute(); err != nil {
				t.Fatalf("execute: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out.String(), w) {
					t.Errorf("output missing %q:\n%s", w, out.String())
				}
			}
		})
	}
}

func TestScoreCommandRejectsArgs(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"score", "extra"})
	if err := root.Execute(); err == nil {
		t.Error("expected error for positional argument")
	}
}
