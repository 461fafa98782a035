// Command nars-repl is an interactive console host for the reasoner: it
// reads lines of Narsese from stdin, steps the working cycle, and prints
// derivations and question answers as they appear. Grounded on
// cmd/chat-cli/main.go's bufio.Scanner-driven REPL loop and flag-based
// configuration.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	nconfig "github.com/cognicore/narscore/pkg/nars/config"
	"github.com/cognicore/narscore/pkg/nars/reasoner"
	"github.com/cognicore/narscore/pkg/nars/sentence"
)

func main() {
	var (
		configPath = flag.String("config", "", "Engine configuration YAML (optional)")
		steps      = flag.Int("steps-per-line", 1, "Reasoner steps to run after each input line")
	)
	flag.Parse()

	cfg, err := (&nconfig.Loader{Path: *configPath}).Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	r := reasoner.New(cfg)

	fmt.Println("===========================================")
	fmt.Println("  nars-repl")
	fmt.Println("  Non-Axiomatic Reasoning System console")
	fmt.Println("===========================================")
	fmt.Println()
	fmt.Println("Enter Narsese (e.g. \"<robin --> bird>. %0.9;0.9%\"), Ctrl+D to exit:")
	fmt.Println()

	pending := map[string]*sentence.Task{}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		task, err := r.InputNarsese(line)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		if task != nil && task.Sentence.Punctuation == sentence.Question {
			pending[task.Key()] = task
		}

		for i := 0; i < *steps; i++ {
			for _, derived := range r.Step() {
				fmt.Printf("Derived: %s\n", derived.Sentence)
			}
		}

		for key, q := range pending {
			if q.BestSolution != nil {
				fmt.Printf("Answer: %s\n", *q.BestSolution)
				delete(pending, key)
			}
		}
	}

	fmt.Println("\nGoodbye!")
}
