package main

import (
	"fmt"
	"os/exec"
)

// doctorEngines is the list of LaTeX engines checked by the doctor command,
// in preference order.
var doctorEngines = []string{"pdflatex", "xelatex", "lualatex"}

// runDoctor checks the environment for a usable LaTeX engine and prints a
// status line per engine. Returns an error when none is available so the
// process exits non-zero.
func runDoctor(env *Environment) error {
	found := 0
	for _, engine := range doctorEngines {
		path, err := exec.LookPath(engine)
		if err != nil {
			fmt.Fprintf(env.Stdout, "  %-10s not found\n", engine)
			continue
		}
		fmt.Fprintf(env.Stdout, "  %-10s %s\n", engine, path)
		found++
	}

	if found == 0 {
		return fmt.Errorf("no LaTeX engine found on PATH (PDF output unavailable, --tex-only still works)")
	}
	fmt.Fprintf(env.Stdout, "%d engine(s) available\n", found)
	return nil
}
