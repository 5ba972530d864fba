// SPDX-License-Identifier: MIT

// Command spath computes single-source shortest paths over a cost matrix.
//
//	spath --example --source 0
//	spath --matrix roads.txt --sentinel 999 --source 0 --target 4
//	spath --matrix - --one-based --sentinel -1 --source 1 --target 3 < in.txt
//	spath                     # interactive when stdin is a terminal
//
// Exit status: 0 on success (an unreachable target is still a success),
// 2 on malformed input or out-of-range indices, 1 on internal failures.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(execute(os.Args[1:], newEnv(os.Stdin, os.Stdout, os.Stderr)))
}

// execute runs the command tree and maps the outcome to an exit status.
func execute(args []string, e *env) int {
	if args == nil {
		args = []string{}
	}
	cmd := newRootCmd(e)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(e.stderr, "spath:", err)
	}

	return exitCode(err)
}

// env is everything the command touches outside its own memory.
type env struct {
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	terminal func(any) bool
	prompter prompter
}

func newEnv(stdin io.Reader, stdout, stderr io.Writer) *env {
	return &env{
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
		terminal: isTerminal,
		prompter: &huhPrompter{in: stdin, out: stderr},
	}
}
