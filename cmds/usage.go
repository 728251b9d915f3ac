package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

// WriteUsage lists visible commands sorted by name, aliases folded into their command.
func (p *Executor) WriteUsage(w io.Writer) {
	fmt.Fprintf(w, "usage:\n")
	writeCommands(w, p.commands, 1)
}

func writeCommands(w io.Writer, commands map[string]*Command, depth int) {
	seen := make(map[*Command]bool)
	var names []string
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)

	indent := strings.Repeat("  ", depth)
	for _, name := range names {
		command := commands[name]
		if command == nil || command.Hidden || seen[command] || slices.Contains(command.Aliases, name) {
			continue
		}
		seen[command] = true

		label := name
		if len(command.Aliases) > 0 {
			label += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		if command.Func.IsValid() {
			for i, max := 0, command.Func.Type().NumIn(); i < max; i++ {
				label += " <" + command.Func.Type().In(i).String() + ">"
			}
		}
		if command.Description != "" {
			fmt.Fprintf(w, "%s%-32s %s\n", indent, label, command.Description)
		} else {
			fmt.Fprintf(w, "%s%s\n", indent, label)
		}

		if len(command.Subs) > 0 {
			writeCommands(w, command.Subs, depth+1)
		}
	}
}
