package lambdaecho

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/aws/aws-lambda-go/events"
	"github.com/gofrs/uuid"
	"github.com/nathants/lambda-echo/lib"
)

const localArn = "arn:aws:lambda:us-east-1:000000000000:function:echo"

func init() {
	lib.Commands["echo-local"] = echoLocal
	lib.Args["echo-local"] = echoLocalArgs{}
}

type echoLocalArgs struct {
	PayloadFile   string `arg:"-f,--payload-file" help:"event json file"`
	PayloadString string `arg:"-s,--payload-string" help:"event json"`
	ContextFile   string `arg:"-c,--context-file" help:"echo this json as the context instead of lambda metadata"`
	Api           string `arg:"-a,--api" help:"use a sample api gateway GET event for this path, exclusive with -s and -f"`
	Arn           string `arg:"--arn" help:"invoked function arn reported in the context"`
	Yaml          bool   `arg:"-y,--yaml"`
	Decode        bool   `arg:"-d,--decode" help:"print the decoded body instead of the response"`
}

func (echoLocalArgs) Description() string {
	return "\nrun the echo handler in process\n"
}

func echoLocal() {
	var args echoLocalArgs
	arg.MustParse(&args)
	ctx := context.Background()
	if args.Arn == "" {
		args.Arn = localArn
	}
	payload, err := localPayload(args)
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	var response *lib.Response
	if args.ContextFile != "" {
		response, err = echoWithContextFile(payload, args.ContextFile)
	} else {
		response, err = lib.LocalInvoker(args.Arn)(ctx, payload)
	}
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	printResponse(response, args.Decode, args.Yaml)
}

func localPayload(args echoLocalArgs) ([]byte, error) {
	if args.Api != "" {
		if args.PayloadString != "" || args.PayloadFile != "" {
			return nil, fmt.Errorf("--api cannot be combined with --payload-string or --payload-file")
		}
		return json.Marshal(sampleApiEvent(args.Api))
	}
	return readPayload(args.PayloadString, args.PayloadFile)
}

// echoWithContextFile echoes the file's json verbatim as the context.
func echoWithContextFile(payload []byte, path string) (*lib.Response, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return lib.Echo(rawOrNull(payload), rawOrNull(data))
}

func sampleApiEvent(path string) events.APIGatewayProxyRequest {
	return events.APIGatewayProxyRequest{
		Resource:   "/{proxy+}",
		Path:       path,
		HTTPMethod: "GET",
		Headers:    map[string]string{"accept": "application/json"},
		RequestContext: events.APIGatewayProxyRequestContext{
			RequestID:  uuid.Must(uuid.NewV4()).String(),
			Stage:      "$default",
			HTTPMethod: "GET",
			Path:       path,
		},
	}
}

func rawOrNull(data []byte) json.RawMessage {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return json.RawMessage(data)
}

func readPayload(payloadString, payloadFile string) ([]byte, error) {
	if payloadString != "" {
		return []byte(payloadString), nil
	}
	if payloadFile != "" {
		return os.ReadFile(payloadFile)
	}
	return nil, nil
}

func printResponse(response *lib.Response, decode, asYaml bool) {
	var v any = response
	if decode {
		envelope, err := lib.DecodeEnvelope(response.Body)
		if err != nil {
			lib.Logger.Fatal("error: ", err)
		}
		v = envelope
	}
	out, err := lib.Pformat(v, asYaml)
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	fmt.Println(out)
}
