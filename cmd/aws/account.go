package lambdaecho

import (
	"context"
	"fmt"

	"github.com/alexflint/go-arg"
	"github.com/nathants/lambda-echo/lib"
)

func init() {
	lib.Commands["aws-account"] = account
	lib.Args["aws-account"] = accountArgs{}
}

type accountArgs struct {
	Expect string `arg:"-e,--expect" help:"exit 1 unless the caller is in this account"`
	User   bool   `arg:"-u,--user" help:"also print the caller name and region"`
}

func (accountArgs) Description() string {
	return "\ncurrent account id\n"
}

func account() {
	var args accountArgs
	arg.MustParse(&args)
	ctx := context.Background()
	account, err := lib.StsAccount(ctx)
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	if args.Expect != "" && args.Expect != account {
		lib.Logger.Fatalf("error: account %s != %s\n", account, args.Expect)
	}
	if !args.User {
		fmt.Println(account)
		return
	}
	user, err := lib.StsUser(ctx)
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	fmt.Println(account, user, lib.Region())
}
