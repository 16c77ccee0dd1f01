package lib

import (
	"context"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/sts"
)

var stsClient *sts.Client
var stsClientLock sync.Mutex

func STSClientExplicit(accessKeyID, accessKeySecret, region string) *sts.Client {
	return sts.NewFromConfig(*SessionExplicit(accessKeyID, accessKeySecret, region))
}

func STSClient() *sts.Client {
	stsClientLock.Lock()
	defer stsClientLock.Unlock()
	if stsClient == nil {
		stsClient = sts.NewFromConfig(*Session())
	}
	return stsClient
}

var stsIdentity *sts.GetCallerIdentityOutput
var stsIdentityLock sync.Mutex

func stsCallerIdentity(ctx context.Context) (*sts.GetCallerIdentityOutput, error) {
	stsIdentityLock.Lock()
	defer stsIdentityLock.Unlock()
	if stsIdentity == nil {
		out, err := STSClient().GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
		if err != nil {
			Logger.Println("error:", err)
			return nil, err
		}
		stsIdentity = out
	}
	return stsIdentity, nil
}

func StsAccount(ctx context.Context) (string, error) {
	out, err := stsCallerIdentity(ctx)
	if err != nil {
		return "", err
	}
	return *out.Account, nil
}

func StsUser(ctx context.Context) (string, error) {
	out, err := stsCallerIdentity(ctx)
	if err != nil {
		return "", err
	}
	return Last(strings.Split(*out.Arn, "/")), nil
}
