package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	calculator "github.com/Enduranc3/Calculator"
	"github.com/Enduranc3/Calculator/internal/config"
	"github.com/Enduranc3/Calculator/internal/logger"
	"github.com/Enduranc3/Calculator/internal/server"
)

const version = "1.2.0"

var configPath string

func init() {
	serveCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(functionsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "calc evaluates arithmetic expressions",
	Long: `calc validates and evaluates arithmetic expressions with strict
input checking, left-associative operators, and a library of named
mathematical functions.`,
}

var evalCmd = &cobra.Command{
	Use:   "eval [expression ...]",
	Short: "Evaluate expressions from arguments or standard input",
	Long: `Evaluate each argument as an expression. With no arguments, read
lines from standard input until a blank line or EOF. Invalid input and
domain errors are reported without stopping the loop.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			bad := false
			for _, expr := range args {
				if !report(expr) {
					bad = true
				}
			}
			if bad {
				return errors.New("some expressions failed")
			}
			return nil
		}
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			line := sc.Text()
			if line == "" {
				break
			}
			if !calculator.Validate(line) {
				fmt.Fprintf(os.Stderr, "invalid input: %v\n", calculator.Check(line))
				continue
			}
			report(line)
		}
		return sc.Err()
	},
}

// report evaluates one expression and prints the result or the error.
// It returns whether evaluation succeeded.
func report(expr string) bool {
	v, err := calculator.Evaluate(expr)
	if err != nil {
		var de *calculator.DomainError
		if errors.As(err, &de) {
			fmt.Fprintf(os.Stderr, "%s: argument outside domain of %s\n", expr, de.Func)
		} else {
			fmt.Fprintf(os.Stderr, "%s: %v\n", expr, err)
		}
		return false
	}
	fmt.Println(calculator.Format(v))
	return true
}

var functionsCmd = &cobra.Command{
	Use:   "functions",
	Short: "List every registered function alias",
	Run: func(cmd *cobra.Command, args []string) {
		for _, a := range calculator.Aliases() {
			fmt.Printf("%-10s %s\n", a.Name, a.Ident)
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the calculator HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		log := logger.New(&cfg.Log)
		defer func() { _ = log.Sync() }()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s := server.New(&cfg.Server, log)
		if err := s.ListenAndServe(ctx); err != nil {
			log.Error("server stopped", zap.Error(err))
			return err
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the calc version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("calc " + version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
