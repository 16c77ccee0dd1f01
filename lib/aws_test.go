package lib

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/config"
)

func TestSessionExplicit(t *testing.T) {
	cfg := SessionExplicit("AKIDEXAMPLE", "secret", "eu-west-2")
	if cfg.Region != "eu-west-2" {
		t.Errorf("\ngot:\n%s\nwant:\n%s\n", cfg.Region, "eu-west-2")
		return
	}
	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Error(err)
		return
	}
	if creds.AccessKeyID != "AKIDEXAMPLE" || creds.SecretAccessKey != "secret" || creds.SessionToken != "" {
		t.Errorf("got: %#v", creds)
		return
	}
	if cfg.RetryMaxAttempts != sdkMaxAttempts {
		t.Errorf("\ngot:\n%d\nwant:\n%d\n", cfg.RetryMaxAttempts, sdkMaxAttempts)
	}
}

func TestExplicitClients(t *testing.T) {
	lambdaRegion := LambdaClientExplicit("id", "secret", "ap-south-1").Options().Region
	if lambdaRegion != "ap-south-1" {
		t.Errorf("\ngot:\n%s\nwant:\n%s\n", lambdaRegion, "ap-south-1")
		return
	}
	stsRegion := STSClientExplicit("id", "secret", "ca-central-1").Options().Region
	if stsRegion != "ca-central-1" {
		t.Errorf("\ngot:\n%s\nwant:\n%s\n", stsRegion, "ca-central-1")
	}
}

func TestLocalstackOptions(t *testing.T) {
	cfg, err := config.LoadDefaultConfig(context.Background(), localstackOptions("http://localhost:4566")...)
	if err != nil {
		t.Error(err)
		return
	}
	if cfg.Region != "us-east-1" {
		t.Errorf("\ngot:\n%s\nwant:\n%s\n", cfg.Region, "us-east-1")
		return
	}
	if cfg.BaseEndpoint == nil || *cfg.BaseEndpoint != "http://localhost:4566" {
		t.Errorf("got: %v", cfg.BaseEndpoint)
		return
	}
	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Error(err)
		return
	}
	if creds.AccessKeyID != "test" {
		t.Errorf("\ngot:\n%s\nwant:\n%s\n", creds.AccessKeyID, "test")
	}
}
