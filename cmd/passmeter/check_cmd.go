// Copyright (c) ClaceIO, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/claceio/passmeter/internal/strength"
	"github.com/claceio/passmeter/internal/types"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

const NO_PASSWORD_MESSAGE = "please enter a password to check"

func checkCommand(clientConfig *types.ClientConfig) *cli.Command {
	flags := []cli.Flag{
		newBoolFlag("prompt", "p", "Prompt for the password, input is not echoed", false),
		formatFlag(),
		templateFlag(),
	}

	return &cli.Command{
		Name:      "check",
		Usage:     "Check the strength of a password",
		Flags:     flags,
		ArgsUsage: "[<password>]",
		UsageText: `args: [<password>]

<password> is optional. If not specified, the password is prompted for when --prompt is set,
otherwise one line is read from stdin. Passing the password as an argument leaves it in the
shell history, use --prompt or stdin for real passwords.

Examples:
  Check a password interactively: passmeter check --prompt
  Check a password from a file: passmeter check < pass.txt
  Check with json output: passmeter check --format json 'Abcdefg1!'
  Print only the score: passmeter check --template '{{ .Score }}' 'Abcdefg1!'`,
		Action: func(cCtx *cli.Context) error {
			if cCtx.NArg() > 1 {
				return cli.Exit("only one argument expected: <password>", 1)
			}
			if cCtx.Bool("prompt") && cCtx.NArg() == 1 {
				return cli.Exit("cannot specify both --prompt and <password>", 1)
			}

			password, err := readCheckPassword(cCtx)
			if err != nil {
				return cli.Exit(err, 1)
			}
			if password == "" {
				return cli.Exit(NO_PASSWORD_MESSAGE, 1)
			}

			report := strength.Evaluate(password)
			if err := printReport(cCtx, report, cmp.Or(cCtx.String("format"), clientConfig.Client.DefaultFormat), cCtx.String("template")); err != nil {
				return cli.Exit(err, 1)
			}
			return nil
		},
	}
}

func readCheckPassword(cCtx *cli.Context) (string, error) {
	if cCtx.NArg() == 1 {
		return cCtx.Args().First(), nil
	}
	if cCtx.Bool("prompt") {
		return promptPassword(cCtx.App.ErrWriter, "Enter password: ")
	}
	if isTerminal(cCtx.App.Reader) {
		return "", fmt.Errorf("%s, use --prompt to enter it interactively", NO_PASSWORD_MESSAGE)
	}
	return readLine(cCtx.App.Reader)
}

func promptPassword(w io.Writer, prompt string) (string, error) {
	fmt.Fprint(w, prompt)
	bytePassword, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("error reading password: %w", err)
	}
	return strings.TrimSpace(string(bytePassword)), nil
}

// readLine reads the first line, without the line ending. Other whitespace is kept
// since it is part of the password.
func readLine(r io.Reader) (string, error) {
	reader := bufio.NewReader(r)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("error reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func isTerminal(v any) bool {
	file, ok := v.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
