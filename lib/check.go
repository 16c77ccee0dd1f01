package lib

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/r3labs/diff/v2"
	"golang.org/x/sync/semaphore"
	"gopkg.in/yaml.v3"
)

type EchoCase struct {
	Name  string `yaml:"name"`
	Event any    `yaml:"event"`
}

const defaultCheckConcurrency = 8

type EchoInvoker func(ctx context.Context, payload []byte) (*Response, error)

type EchoCheckResult struct {
	Name     string
	Failures []string
	Err      error
}

func (r *EchoCheckResult) Ok() bool {
	return r.Err == nil && len(r.Failures) == 0
}

type EchoCheckInput struct {
	Cases          []*EchoCase
	Invoke         EchoInvoker
	MaxConcurrency int
}

func LoadEchoCases(path string) ([]*EchoCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		Logger.Println("error:", err)
		return nil, err
	}
	var cases []*EchoCase
	err = yaml.Unmarshal(data, &cases)
	if err != nil {
		Logger.Println("error:", err)
		return nil, err
	}
	for i, c := range cases {
		if c.Name == "" {
			c.Name = fmt.Sprintf("case-%d", i)
		}
	}
	return cases, nil
}

// LocalInvoker runs Handler in process with a fresh request id per call.
func LocalInvoker(functionArn string) EchoInvoker {
	return func(ctx context.Context, payload []byte) (*Response, error) {
		ctx = NewLocalContext(ctx, uuid.Must(uuid.NewV4()).String(), functionArn)
		return Handler(ctx, payload)
	}
}

func LambdaInvoker(name string) EchoInvoker {
	return func(ctx context.Context, payload []byte) (*Response, error) {
		return LambdaInvokeEcho(ctx, name, payload)
	}
}

// EchoCheck invokes every case twice and verifies status, message, echoed
// event, and that both envelopes match outside the per invocation fields.
func EchoCheck(ctx context.Context, input *EchoCheckInput) ([]*EchoCheckResult, error) {
	maxConcurrency := input.MaxConcurrency
	if maxConcurrency <= 0 {
		maxConcurrency = defaultCheckConcurrency
	}
	type invocation struct {
		index    int
		attempt  int
		response *Response
		err      error
	}
	total := len(input.Cases) * 2
	resultChan := make(chan *invocation, total)
	concurrency := semaphore.NewWeighted(int64(maxConcurrency))
	cancelCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	payloads := make([][]byte, len(input.Cases))
	for i, c := range input.Cases {
		payload, err := json.Marshal(c.Event)
		if err != nil {
			Logger.Println("error:", err)
			return nil, fmt.Errorf("case %s: %w", c.Name, err)
		}
		payloads[i] = payload
	}
	for i := range input.Cases {
		for attempt := range 2 {
			go func() {
				result := &invocation{index: i, attempt: attempt}
				defer func() {
					if r := recover(); r != nil {
						logRecover(r)
						result.err = fmt.Errorf("panic: %v", r)
					}
					resultChan <- result
				}()
				err := concurrency.Acquire(cancelCtx, 1)
				if err != nil {
					result.err = err
					return
				}
				defer concurrency.Release(1)
				result.response, result.err = input.Invoke(cancelCtx, payloads[i])
			}()
		}
	}
	responses := make([][2]*Response, len(input.Cases))
	results := make([]*EchoCheckResult, len(input.Cases))
	for i, c := range input.Cases {
		results[i] = &EchoCheckResult{Name: c.Name}
	}
	for range total {
		inv := <-resultChan
		if inv.err != nil {
			results[inv.index].Err = inv.err
			continue
		}
		responses[inv.index][inv.attempt] = inv.response
	}
	var errLast error
	for i, c := range input.Cases {
		result := results[i]
		if result.Err != nil {
			errLast = result.Err
			continue
		}
		result.Failures = checkEchoCase(c, responses[i][0], responses[i][1])
	}
	return results, errLast
}

func checkEchoCase(c *EchoCase, first, second *Response) []string {
	var failures []string
	var bodies [2]map[string]any
	for i, response := range []*Response{first, second} {
		if response.StatusCode != http.StatusOK {
			failures = append(failures, fmt.Sprintf("attempt %d: statusCode %d", i, response.StatusCode))
		}
		err := json.Unmarshal([]byte(response.Body), &bodies[i])
		if err != nil {
			failures = append(failures, fmt.Sprintf("attempt %d: body: %s", i, err))
			return failures
		}
		if bodies[i]["message"] != EchoMessage {
			failures = append(failures, fmt.Sprintf("attempt %d: message %v", i, bodies[i]["message"]))
		}
	}
	want, err := jsonNormalize(c.Event)
	if err != nil {
		return append(failures, err.Error())
	}
	changes, err := diff.Diff(
		map[string]any{"event": want},
		map[string]any{"event": bodies[0]["event"]},
		diff.AllowTypeMismatch(true),
		diff.SliceOrdering(true),
	)
	if err != nil {
		return append(failures, err.Error())
	}
	for _, change := range changes {
		failures = append(failures, formatChange(change))
	}
	changes, err = diff.Diff(bodies[0], bodies[1], diff.AllowTypeMismatch(true), diff.SliceOrdering(true))
	if err != nil {
		return append(failures, err.Error())
	}
	for _, change := range changes {
		if isVolatileChange(change) {
			continue
		}
		failures = append(failures, "idempotence: "+formatChange(change))
	}
	return failures
}

func isVolatileChange(change diff.Change) bool {
	return len(change.Path) >= 2 && change.Path[0] == "context" && Contains(InvocationContextVolatileFields, change.Path[1])
}

func formatChange(change diff.Change) string {
	return fmt.Sprintf("%s %s: %v -> %v", change.Type, strings.Join(change.Path, "."), change.From, change.To)
}

// jsonNormalize converts a yaml decoded value into the shape json.Unmarshal
// produces, so numbers compare as float64.
func jsonNormalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	err = json.Unmarshal(data, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
