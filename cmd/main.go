package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kievzenit/dde/internal/ast"
	"github.com/kievzenit/dde/internal/config"
	"github.com/kievzenit/dde/internal/evaluator"
	"github.com/kievzenit/dde/internal/interpreter"
	"github.com/kievzenit/dde/internal/lexer"
	"github.com/kievzenit/dde/internal/parser"
	"github.com/kievzenit/dde/internal/script_errors"
)

const cliToolVersion = "dde 0.1.0-dev"

const prompt = ">> "

type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	debug    bool
	printEnv bool
	envFile  string
	script   string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c := &cli{stdin: stdin, stdout: stdout, stderr: stderr}

	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "--help", "-h":
			printUsage(stdout)
			return 0
		case "--version", "-V":
			fmt.Fprintln(stdout, cliToolVersion)
			return 0
		case "--debug":
			c.debug = true
		case "--print-env":
			c.printEnv = true
		case "--env-file":
			if i+1 >= len(args) {
				fmt.Fprintln(stderr, "--env-file requires a path")
				return 1
			}
			i++
			c.envFile = args[i]
		default:
			if strings.HasPrefix(arg, "--env-file=") {
				c.envFile = strings.TrimPrefix(arg, "--env-file=")
				continue
			}
			if strings.HasPrefix(arg, "-") && arg != "-" {
				fmt.Fprintf(stderr, "unknown flag: %s\n", arg)
				printUsage(stderr)
				return 1
			}
			if c.script != "" {
				fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(args[i:], " "))
				return 1
			}
			c.script = arg
		}
	}

	env := evaluator.NewEnvironment()
	if c.envFile != "" {
		loaded, err := config.LoadEnvironment(c.envFile)
		if err != nil {
			fmt.Fprintf(stderr, "failed to load environment: %v\n", err)
			return 1
		}
		env = loaded
	}

	in := interpreter.New(&interpreter.Options{
		Stdout: stdout,
		Env:    env,
	})

	var code int
	if c.script == "" {
		code = c.repl(in)
	} else {
		code = c.runScript(in)
	}

	if c.printEnv && code == 0 {
		if err := config.EncodeEnvironment(stdout, in.Environment()); err != nil {
			fmt.Fprintf(stderr, "failed to print environment: %v\n", err)
			return 1
		}
	}

	return code
}

func (c *cli) runScript(in *interpreter.Interpreter) int {
	source, err := c.readScript()
	if err != nil {
		fmt.Fprintf(c.stderr, "failed to read %s: %v\n", c.script, err)
		return 1
	}

	eh := script_errors.NewErrorHandler(c.stderr)
	_, err = c.execute(in, source)

	var exit *evaluator.ExitSignal
	if errors.As(err, &exit) {
		return exit.Code
	}
	if err != nil {
		eh.AddError(err)
		eh.Report()
		return 1
	}

	return 0
}

func (c *cli) readScript() (string, error) {
	if c.script == "-" {
		data, err := io.ReadAll(c.stdin)
		return string(data), err
	}

	data, err := os.ReadFile(c.script)
	return string(data), err
}

// repl reads one line at a time. A failing line is reported and the
// session carries on with whatever the earlier lines left in the environment.
func (c *cli) repl(in *interpreter.Interpreter) int {
	eh := script_errors.NewErrorHandler(c.stderr)
	scanner := bufio.NewScanner(c.stdin)

	for {
		fmt.Fprint(c.stdout, prompt)
		if !scanner.Scan() {
			break
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		v, err := c.execute(in, line)

		var exit *evaluator.ExitSignal
		if errors.As(err, &exit) {
			return exit.Code
		}
		if err != nil {
			eh.AddError(err)
			eh.Report()
			continue
		}

		if _, isNull := v.(evaluator.NullValue); !isNull {
			fmt.Fprintln(c.stdout, evaluator.Inspect(v))
		}
	}

	fmt.Fprintln(c.stdout)
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(c.stderr, "failed to read input: %v\n", err)
		return 1
	}

	return 0
}

// execute runs the pipeline stage by stage so --debug can show the tokens
// and the tree before evaluation starts.
func (c *cli) execute(in *interpreter.Interpreter, source string) (evaluator.Value, error) {
	if !c.debug {
		return in.Run(source)
	}

	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	for _, token := range tokens {
		fmt.Fprintln(c.stderr, token.String())
	}

	program, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(c.stderr, ast.Dump(program...))

	return in.Eval(program)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: dde [--debug] [--print-env] [--env-file vars.yml] [file.dde | -]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Runs a script file, or starts an interactive session when no file is given.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  --debug           print tokens and the syntax tree to stderr")
	fmt.Fprintln(w, "  --print-env       print the final variables as YAML")
	fmt.Fprintln(w, "  --env-file PATH   seed variables from a YAML mapping")
	fmt.Fprintln(w, "  --help, -h        show this help")
	fmt.Fprintln(w, "  --version, -V     show the version")
}
