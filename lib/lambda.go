package lib

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdatypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/dustin/go-humanize"
)

var lambdaClient *lambda.Client
var lambdaClientLock sync.Mutex

func LambdaClientExplicit(accessKeyID, accessKeySecret, region string) *lambda.Client {
	return lambda.NewFromConfig(*SessionExplicit(accessKeyID, accessKeySecret, region))
}

func LambdaClient() *lambda.Client {
	lambdaClientLock.Lock()
	defer lambdaClientLock.Unlock()
	if lambdaClient == nil {
		lambdaClient = lambda.NewFromConfig(*Session())
	}
	return lambdaClient
}

type LambdaInvokeOutput struct {
	Payload       []byte
	Log           string
	FunctionError string
}

// LambdaReportTokens mark the runtime's own lines in a log tail.
var LambdaReportTokens = []string{"START RequestId:", "END RequestId:", "REPORT RequestId:"}

func LambdaInvoke(ctx context.Context, name string, payload []byte) (*LambdaInvokeOutput, error) {
	Logger.Println("invoke:", name, strings.ReplaceAll(humanize.Bytes(uint64(len(payload))), " ", ""))
	out, err := LambdaClient().Invoke(ctx, &lambda.InvokeInput{
		FunctionName:   aws.String(name),
		InvocationType: lambdatypes.InvocationTypeRequestResponse,
		LogType:        lambdatypes.LogTypeTail,
		Payload:        payload,
	})
	if err != nil {
		Logger.Println("error:", err)
		return nil, err
	}
	result := &LambdaInvokeOutput{
		Payload: out.Payload,
	}
	if out.LogResult != nil {
		result.Log = *out.LogResult
		data, err := base64.StdEncoding.DecodeString(*out.LogResult)
		if err == nil {
			result.Log = string(data)
		}
	}
	if out.FunctionError != nil {
		result.FunctionError = *out.FunctionError
	}
	return result, nil
}

// LambdaInvokeEcho invokes name and decodes the payload as a Response.
func LambdaInvokeEcho(ctx context.Context, name string, payload []byte) (*Response, error) {
	out, err := LambdaInvoke(ctx, name, payload)
	if err != nil {
		return nil, err
	}
	if out.FunctionError != "" {
		err := fmt.Errorf("function error %s: %s", out.FunctionError, string(out.Payload))
		Logger.Println("error:", err)
		return nil, err
	}
	return DecodeResponse(out.Payload)
}
