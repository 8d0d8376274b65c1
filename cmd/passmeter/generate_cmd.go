// Copyright (c) ClaceIO, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"cmp"
	"fmt"

	"github.com/claceio/passmeter/internal/passwd"
	"github.com/claceio/passmeter/internal/strength"
	"github.com/claceio/passmeter/internal/types"
	"github.com/urfave/cli/v2"
)

const MAX_COUNT = 1000

type generatedPassword struct {
	Password string           `json:"password"`
	Length   int              `json:"length"`
	Report   *strength.Report `json:"report,omitempty"`
}

func generateCommand(clientConfig *types.ClientConfig) *cli.Command {
	flags := []cli.Flag{
		newIntFlag("length", "l", "The password length, defaults to generator.default_length from the config", 0),
		newIntFlag("count", "n", "The number of passwords to generate", 1),
		newBoolFlag("evaluate", "e", "Show the strength of each generated password", false),
		formatFlag(),
		templateFlag(),
	}

	return &cli.Command{
		Name:  "generate",
		Usage: "Generate strong random passwords",
		Flags: flags,
		UsageText: `Generated passwords have at least one uppercase letter, lowercase letter, digit and
special character (!@#$%^&*). The length has to be within the generator.min_length and
generator.max_length config range, 8 to 20 by default.

Examples:
  Generate one password of the default length: passmeter generate
  Generate five passwords of length 16: passmeter generate -l 16 -n 5
  Generate with strength in json: passmeter generate --evaluate --format json`,
		Action: func(cCtx *cli.Context) error {
			if cCtx.NArg() > 0 {
				return cli.Exit("no arguments expected", 1)
			}
			length := clientConfig.Generator.DefaultLength
			if cCtx.IsSet("length") {
				length = cCtx.Int("length")
			}
			if err := clientConfig.Generator.CheckLength(length); err != nil {
				return cli.Exit(err, 1)
			}
			count := cCtx.Int("count")
			if count < 1 || count > MAX_COUNT {
				return cli.Exit(fmt.Sprintf("count %d out of range, must be between 1 and %d", count, MAX_COUNT), 1)
			}

			results, err := generatePasswords(length, count, cCtx.Bool("evaluate"))
			if err != nil {
				return cli.Exit(err, 1)
			}
			if err := printGenerated(cCtx, results, cmp.Or(cCtx.String("format"), clientConfig.Client.DefaultFormat), cCtx.String("template")); err != nil {
				return cli.Exit(err, 1)
			}
			return nil
		},
	}
}

func generatePasswords(length, count int, evaluate bool) ([]generatedPassword, error) {
	results := make([]generatedPassword, 0, count)
	for i := 0; i < count; i++ {
		password, err := passwd.Generate(length)
		if err != nil {
			return nil, err
		}
		result := generatedPassword{Password: password, Length: length}
		if evaluate {
			report := strength.Evaluate(password)
			result.Report = &report
		}
		results = append(results, result)
	}
	return results, nil
}
