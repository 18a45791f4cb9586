package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/overload/internal/config"
	"github.com/funvibe/overload/internal/derive"
	"github.com/funvibe/overload/internal/operator"
	"github.com/funvibe/overload/internal/resolver"
)

const usageText = `overload - inspect operator overload resolution

Usage:
  overload explain -profile <file.yaml> [-graph <policy.yaml>] [-no-color]
  overload catalog
  overload help

explain reads a profile spec (the operators a type registers directly) and
prints how every catalog operator would resolve for that type: direct,
derived (and via which strategy), fallback, or absent.

catalog lists every overridable operator with its arity, category and
mutation contract.`

const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[32m"
	ansiCyan   = "\x1b[36m"
	ansiYellow = "\x1b[33m"
	ansiDim    = "\x1b[2m"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usageText)
		os.Exit(2)
	}
	switch os.Args[1] {
	case "explain":
		if err := runExplain(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "overload: %s\n", err)
			os.Exit(1)
		}
	case "catalog":
		runCatalog()
	case "help", "-h", "--help":
		fmt.Println(usageText)
	default:
		fmt.Fprintf(os.Stderr, "overload: unknown command %q\n", os.Args[1])
		fmt.Fprintln(os.Stderr, usageText)
		os.Exit(2)
	}
}

func runExplain(args []string) error {
	fs := flag.NewFlagSet("explain", flag.ExitOnError)
	profilePath := fs.String("profile", "", "profile spec file (yaml)")
	graphPath := fs.String("graph", "", "derivation policy file (yaml)")
	noColor := fs.Bool("no-color", false, "disable ANSI colors")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *profilePath == "" {
		return fmt.Errorf("explain: -profile is required")
	}

	spec, err := config.LoadProfileSpec(*profilePath)
	if err != nil {
		return err
	}

	graph := derive.NewGraph()
	if *graphPath != "" {
		policy, err := config.LoadPolicy(*graphPath)
		if err != nil {
			return err
		}
		if err := policy.Apply(graph); err != nil {
			return err
		}
	}

	prof, err := spec.Build()
	if err != nil {
		return err
	}

	useColor := !*noColor && (isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
	paint := func(code, s string) string {
		if !useColor {
			return s
		}
		return code + s + ansiReset
	}

	fmt.Printf("type %s  (profile %s)\n\n", prof.TypeName(), prof.ID())
	res := resolver.New(graph)
	for _, kind := range operator.Kinds() {
		r := res.Explain(prof, kind)
		label := fmt.Sprintf("%-5s", kind)
		switch r.Outcome {
		case resolver.OutcomeDirect:
			fmt.Printf("  %s  %s\n", label, paint(ansiGreen, "direct"))
		case resolver.OutcomeDerived:
			fmt.Printf("  %s  %s via %s (needs %s)\n",
				label, paint(ansiCyan, "derived"), r.Strategy, kindList(r.Requires))
		case resolver.OutcomeFallback:
			fmt.Printf("  %s  %s\n", label, paint(ansiYellow, "fallback"))
		default:
			fmt.Printf("  %s  %s\n", label, paint(ansiDim, "absent"))
		}
	}
	return nil
}

func runCatalog() {
	fmt.Println("operator  arity   category     ordered  mutating")
	for _, kind := range operator.Kinds() {
		arity := "unary"
		if kind.Arity() == operator.Binary {
			arity = "binary"
		}
		fmt.Printf("%-9s %-7s %-12s %-8v %v\n",
			kind, arity, kind.Category(), kind.Ordered(), kind.Mutating())
	}
}

func kindList(kinds []operator.Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}
