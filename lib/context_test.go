package lib

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
)

func TestNewInvocationContextWithoutLambda(t *testing.T) {
	ic := NewInvocationContext(context.Background())
	if ic.AwsRequestID != "" || ic.InvokedFunctionArn != "" || ic.DeadlineMs != 0 {
		t.Errorf("got: %#v", ic)
		return
	}
	if ic.Identity != nil || ic.ClientContext != nil {
		t.Errorf("got: %#v", ic)
	}
}

func TestNewInvocationContext(t *testing.T) {
	deadline := time.Unix(1700000000, 0)
	ctx, cancel := context.WithDeadline(context.Background(), deadline)
	defer cancel()
	ctx = lambdacontext.NewContext(ctx, &lambdacontext.LambdaContext{
		AwsRequestID:       "abc",
		InvokedFunctionArn: "arn:aws:lambda:us-east-1:000000000000:function:echo",
		Identity: lambdacontext.CognitoIdentity{
			CognitoIdentityID:     "id",
			CognitoIdentityPoolID: "pool",
		},
		ClientContext: lambdacontext.ClientContext{
			Client: lambdacontext.ClientApplication{AppTitle: "app"},
			Custom: map[string]string{"k": "v"},
		},
	})
	ic := NewInvocationContext(ctx)
	if ic.AwsRequestID != "abc" {
		t.Errorf("\ngot:\n%s\nwant:\n%s\n", ic.AwsRequestID, "abc")
		return
	}
	if ic.InvokedFunctionArn != "arn:aws:lambda:us-east-1:000000000000:function:echo" {
		t.Errorf("got: %s", ic.InvokedFunctionArn)
		return
	}
	if ic.DeadlineMs != deadline.UnixMilli() {
		t.Errorf("\ngot:\n%d\nwant:\n%d\n", ic.DeadlineMs, deadline.UnixMilli())
		return
	}
	if ic.Identity == nil || ic.Identity.IdentityID != "id" || ic.Identity.IdentityPoolID != "pool" {
		t.Errorf("got: %#v", ic.Identity)
		return
	}
	if ic.ClientContext == nil || ic.ClientContext.Client["appTitle"] != "app" || ic.ClientContext.Custom["k"] != "v" {
		t.Errorf("got: %#v", ic.ClientContext)
	}
}

func TestInvocationContextOmitsEmptyFields(t *testing.T) {
	ctx := NewLocalContext(context.Background(), "abc", "arn")
	response, err := Echo(nil, NewInvocationContext(ctx))
	if err != nil {
		t.Error(err)
		return
	}
	envelope, err := DecodeEnvelope(response.Body)
	if err != nil {
		t.Error(err)
		return
	}
	fields := envelope.Context.(map[string]any)
	for _, k := range []string{"deadlineMs", "identity", "clientContext"} {
		if _, ok := fields[k]; ok {
			t.Errorf("unexpected field %s", k)
			return
		}
	}
	if fields["awsRequestId"] != "abc" {
		t.Errorf("got: %#v", fields)
	}
}
