//
// attr: concurrency 0
// attr: memory 128
// attr: timeout 10
// policy: AWSLambdaBasicExecutionRole
// trigger: api

package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/nathants/lambda-echo/lib"
)

func main() {
	lambda.Start(lib.Handler)
}
