package lib

import (
	"context"

	"github.com/aws/aws-lambda-go/lambdacontext"
)

type CognitoIdentity struct {
	IdentityID     string `json:"cognitoIdentityId"`
	IdentityPoolID string `json:"cognitoIdentityPoolId"`
}

type ClientContext struct {
	Client map[string]string `json:"client,omitempty"`
	Env    map[string]string `json:"env,omitempty"`
	Custom map[string]string `json:"custom,omitempty"`
}

// InvocationContext is the invocation metadata echoed back as "context".
type InvocationContext struct {
	FunctionName       string           `json:"functionName"`
	FunctionVersion    string           `json:"functionVersion"`
	InvokedFunctionArn string           `json:"invokedFunctionArn"`
	MemoryLimitInMB    int              `json:"memoryLimitInMB"`
	AwsRequestID       string           `json:"awsRequestId"`
	LogGroupName       string           `json:"logGroupName"`
	LogStreamName      string           `json:"logStreamName"`
	DeadlineMs         int64            `json:"deadlineMs,omitempty"`
	Identity           *CognitoIdentity `json:"identity,omitempty"`
	ClientContext      *ClientContext   `json:"clientContext,omitempty"`
}

// Fields that differ between two invocations of the same event.
var InvocationContextVolatileFields = []string{"awsRequestId", "deadlineMs"}

func NewInvocationContext(ctx context.Context) *InvocationContext {
	ic := &InvocationContext{
		FunctionName:    lambdacontext.FunctionName,
		FunctionVersion: lambdacontext.FunctionVersion,
		MemoryLimitInMB: lambdacontext.MemoryLimitInMB,
		LogGroupName:    lambdacontext.LogGroupName,
		LogStreamName:   lambdacontext.LogStreamName,
	}
	if deadline, ok := ctx.Deadline(); ok {
		ic.DeadlineMs = deadline.UnixMilli()
	}
	lc, ok := lambdacontext.FromContext(ctx)
	if !ok {
		return ic
	}
	ic.AwsRequestID = lc.AwsRequestID
	ic.InvokedFunctionArn = lc.InvokedFunctionArn
	if lc.Identity.CognitoIdentityID != "" || lc.Identity.CognitoIdentityPoolID != "" {
		ic.Identity = &CognitoIdentity{
			IdentityID:     lc.Identity.CognitoIdentityID,
			IdentityPoolID: lc.Identity.CognitoIdentityPoolID,
		}
	}
	cc := lc.ClientContext
	client := map[string]string{}
	for k, v := range map[string]string{
		"installationId": cc.Client.InstallationID,
		"appTitle":       cc.Client.AppTitle,
		"appVersionCode": cc.Client.AppVersionCode,
		"appPackageName": cc.Client.AppPackageName,
	} {
		if v != "" {
			client[k] = v
		}
	}
	if len(client) > 0 || len(cc.Env) > 0 || len(cc.Custom) > 0 {
		ic.ClientContext = &ClientContext{Env: cc.Env, Custom: cc.Custom}
		if len(client) > 0 {
			ic.ClientContext.Client = client
		}
	}
	return ic
}

// NewLocalContext returns ctx carrying lambda metadata for an in-process
// invocation, the way the runtime would populate it.
func NewLocalContext(ctx context.Context, requestID, functionArn string) context.Context {
	return lambdacontext.NewContext(ctx, &lambdacontext.LambdaContext{
		AwsRequestID:       requestID,
		InvokedFunctionArn: functionArn,
	})
}
