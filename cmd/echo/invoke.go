package lambdaecho

import (
	"context"
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/nathants/lambda-echo/lib"
)

func init() {
	lib.Commands["echo-invoke"] = echoInvoke
	lib.Args["echo-invoke"] = echoInvokeArgs{}
}

type echoInvokeArgs struct {
	Name          string `arg:"positional,required"`
	PayloadFile   string `arg:"-f,--payload-file"`
	PayloadString string `arg:"-s,--payload-string"`
	Yaml          bool   `arg:"-y,--yaml"`
	Decode        bool   `arg:"-d,--decode" help:"print the decoded body instead of the response"`
	Verbose       bool   `arg:"-v,--verbose" help:"keep START/END/REPORT lines in the log tail"`
}

func (echoInvokeArgs) Description() string {
	return "\ninvoke a deployed echo function\n"
}

func echoInvoke() {
	var args echoInvokeArgs
	arg.MustParse(&args)
	ctx := context.Background()
	payload, err := readPayload(args.PayloadString, args.PayloadFile)
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	out, err := lib.LambdaInvoke(ctx, args.Name, payload)
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	if out.Log != "" {
		log := out.Log
		if !args.Verbose {
			log = lib.DropLinesWithAny(log, lib.LambdaReportTokens...)
		}
		fmt.Fprintln(os.Stderr, log)
	}
	if out.FunctionError != "" {
		fmt.Fprintln(os.Stderr, string(out.Payload))
		os.Exit(1)
	}
	response, err := lib.DecodeResponse(out.Payload)
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	printResponse(response, args.Decode, args.Yaml)
}
