package lambdaecho

import (
	"context"
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/nathants/lambda-echo/lib"
)

func init() {
	lib.Commands["echo-check"] = echoCheck
	lib.Args["echo-check"] = echoCheckArgs{}
}

type echoCheckArgs struct {
	Name           string `arg:"positional" help:"deployed function, omit with --local"`
	Cases          string `arg:"-c,--cases,required" help:"yaml list of {name, event}"`
	Local          bool   `arg:"-l,--local" help:"check the in process handler"`
	MaxConcurrency int    `arg:"-m,--max-concurrency" default:"8"`
}

func (echoCheckArgs) Description() string {
	return "\ninvoke each case twice and verify the echoed envelopes\n"
}

func echoCheck() {
	var args echoCheckArgs
	arg.MustParse(&args)
	ctx := context.Background()
	if args.Name == "" && !args.Local {
		lib.Logger.Fatal("error: need a function name or --local")
	}
	if args.MaxConcurrency < 1 {
		lib.Logger.Fatal("error: --max-concurrency must be at least 1")
	}
	cases, err := lib.LoadEchoCases(args.Cases)
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	invoke := lib.LambdaInvoker(args.Name)
	if args.Local {
		invoke = lib.LocalInvoker(localArn)
	}
	results, err := lib.EchoCheck(ctx, &lib.EchoCheckInput{
		Cases:          cases,
		Invoke:         invoke,
		MaxConcurrency: args.MaxConcurrency,
	})
	if results == nil {
		lib.Logger.Fatal("error: ", err)
	}
	failed := false
	for _, result := range results {
		switch {
		case result.Err != nil:
			failed = true
			fmt.Printf("fail %s: %s\n", result.Name, result.Err)
		case len(result.Failures) > 0:
			failed = true
			for _, failure := range result.Failures {
				fmt.Printf("fail %s: %s\n", result.Name, failure)
			}
		default:
			fmt.Printf("ok %s\n", result.Name)
		}
	}
	if failed {
		os.Exit(1)
	}
}
