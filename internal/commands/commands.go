package commands

import (
	"flag"
	"fmt"
	"io"
	"sort"
)

// Command is a subcommand with its own flags and a Run function.
// Run is called after FlagSet.Parse and receives the remaining positional arguments.
type Command struct {
	Name    string
	Summary string
	FlagSet *flag.FlagSet
	Run     func(args []string) error
}

// Registry holds subcommands by name. Register commands, then hand os.Args[1:] to Execute.
type Registry struct {
	cmds     map[string]*Command
	fallback string
}

// NewRegistry returns an empty registry. fallback names the command run when the
// argument list is empty or starts with a flag (e.g. "run").
func NewRegistry(fallback string) *Registry {
	return &Registry{cmds: make(map[string]*Command), fallback: fallback}
}

// Register adds a subcommand. fs is that command's FlagSet; run is called after
// fs.Parse succeeds with fs.Args().
func (r *Registry) Register(name, summary string, fs *flag.FlagSet, run func(args []string) error) {
	r.cmds[name] = &Command{Name: name, Summary: summary, FlagSet: fs, Run: run}
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Usage writes one line per command to w.
func (r *Registry) Usage(w io.Writer) {
	for _, n := range r.Names() {
		fmt.Fprintf(w, "  %-12s %s\n", n, r.cmds[n].Summary)
	}
}

// Execute runs the subcommand named by args[0] with args[1:] as flags and positionals.
// Returns an error for an unknown command, a flag parse error, or from Run.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 || (len(args[0]) > 0 && args[0][0] == '-') {
		if r.fallback == "" {
			return fmt.Errorf("missing subcommand")
		}
		args = append([]string{r.fallback}, args...)
	}
	cmd, ok := r.cmds[args[0]]
	if !ok {
		return fmt.Errorf("unknown command: %s", args[0])
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return err
	}
	return cmd.Run(cmd.FlagSet.Args())
}
