package main

import (
	"io"
	"os"

	md2latex "github.com/yehyu2004/go-md2latex"
)

// Environment bundles the process-level dependencies of the CLI so tests
// can substitute writers and pool construction.
type Environment struct {
	Stdout  io.Writer
	Stderr  io.Writer
	NewPool func(n int, opts ...md2latex.Option) Pool
}

// defaultEnvironment returns the production environment.
func defaultEnvironment() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewPool: func(n int, opts ...md2latex.Option) Pool {
			return md2latex.NewConverterPool(n, opts...)
		},
	}
}
