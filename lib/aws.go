package lib

import (
	"context"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

const sdkMaxAttempts = 5

var sess *aws.Config
var sessLock sync.Mutex

// Session loads the default config once. When LOCALSTACK_ENDPOINT is set
// every client talks to that endpoint with localstack's test credentials.
func Session() *aws.Config {
	sessLock.Lock()
	defer sessLock.Unlock()
	if sess == nil {
		opts := []func(*config.LoadOptions) error{
			config.WithRetryMaxAttempts(sdkMaxAttempts),
		}
		endpoint := os.Getenv("LOCALSTACK_ENDPOINT")
		if endpoint != "" {
			opts = localstackOptions(endpoint)
		}
		cfg, err := config.LoadDefaultConfig(context.Background(), opts...)
		if err != nil {
			Logger.Fatal("error: ", err)
		}
		sess = &cfg
	}
	return sess
}

func localstackOptions(endpoint string) []func(*config.LoadOptions) error {
	return append(
		explicitOptions("test", "test", "us-east-1"),
		config.WithBaseEndpoint(endpoint),
	)
}

func explicitOptions(accessKeyID, accessKeySecret, region string) []func(*config.LoadOptions) error {
	return []func(*config.LoadOptions) error{
		config.WithRetryMaxAttempts(sdkMaxAttempts),
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKeyID, accessKeySecret, "")),
	}
}

func SessionExplicit(accessKeyID, accessKeySecret, region string) *aws.Config {
	cfg, err := config.LoadDefaultConfig(context.Background(), explicitOptions(accessKeyID, accessKeySecret, region)...)
	if err != nil {
		Logger.Fatal("error: ", err)
	}
	return &cfg
}

func Region() string {
	return Session().Region
}
