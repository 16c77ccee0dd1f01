package lib

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/gofrs/uuid"
)

func checkAccountLambda(t *testing.T) string {
	name := os.Getenv("LAMBDA_ECHO_TEST_FUNCTION")
	if name == "" || os.Getenv("LAMBDA_ECHO_TEST_ACCOUNT") == "" {
		t.Skip("LAMBDA_ECHO_TEST_FUNCTION and LAMBDA_ECHO_TEST_ACCOUNT not set")
	}
	account, err := StsAccount(context.Background())
	if err != nil {
		panic(err)
	}
	if os.Getenv("LAMBDA_ECHO_TEST_ACCOUNT") != account {
		panic(fmt.Sprintf("%s != %s", os.Getenv("LAMBDA_ECHO_TEST_ACCOUNT"), account))
	}
	return name
}

func TestLambdaInvokeEcho(t *testing.T) {
	name := checkAccountLambda(t)
	id := uuid.Must(uuid.NewV4()).String()
	response, err := LambdaInvokeEcho(context.Background(), name, []byte(fmt.Sprintf(`{"id":%q}`, id)))
	if err != nil {
		t.Error(err)
		return
	}
	if response.StatusCode != 200 {
		t.Errorf("\ngot:\n%d\nwant:\n200\n", response.StatusCode)
		return
	}
	envelope, err := DecodeEnvelope(response.Body)
	if err != nil {
		t.Error(err)
		return
	}
	event, ok := envelope.Event.(map[string]any)
	if !ok || event["id"] != id {
		t.Errorf("got: %#v", envelope.Event)
		return
	}
	if envelope.Message != EchoMessage {
		t.Errorf("\ngot:\n%s\nwant:\n%s\n", envelope.Message, EchoMessage)
	}
}

func TestLambdaEchoCheck(t *testing.T) {
	name := checkAccountLambda(t)
	results, err := EchoCheck(context.Background(), &EchoCheckInput{
		Cases: []*EchoCase{
			{Name: "object", Event: map[string]any{"a": 1}},
			{Name: "null"},
			{Name: "list", Event: []any{"x", 1.5, false}},
		},
		Invoke: LambdaInvoker(name),
	})
	if err != nil {
		t.Error(err)
		return
	}
	for _, result := range results {
		if !result.Ok() {
			t.Errorf("%s: %v", result.Name, result.Failures)
		}
	}
}
