package main

import (
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/sirkon/errors"
	"github.com/sirkon/message"
)

type cliArgs struct {
	File string `help:"File to write lists into and read them back from. A temporary file is used if omitted." env:"LSTACK_FILE" type:"path"`
	Keep bool   `help:"Keep the temporary file when it was not given explicitly."`

	List  listCommand  `cmd:"" help:"Replay list operations."`
	Stack stackCommand `cmd:"" help:"Replay stack operations."`
}

// runContext данные общие для всех команд.
type runContext struct {
	path   string
	logger *printLogger
}

func main() {
	var args cliArgs
	ctx := kong.Parse(
		&args,
		kong.Name("lstack-demo"),
		kong.Description("Demonstrates list and stack operations with text file persistence."),
		kong.UsageOnError(),
	)

	path := args.File
	generated := path == ""
	if generated {
		path = filepath.Join(os.TempDir(), "lstack-"+uuid.NewString()+".txt")
	}

	err := ctx.Run(&runContext{
		path:   path,
		logger: &printLogger{},
	})

	if generated && !args.Keep {
		if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
			message.Warning(errors.Wrap(rmErr, "remove temporary file").Str("path", path))
		}
	}

	if err != nil {
		message.Critical(errors.Wrap(err, "run "+ctx.Command()))
	}
}
