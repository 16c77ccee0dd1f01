package lib

import (
	"testing"
)

func TestDropLinesWithAny(t *testing.T) {
	type test struct {
		input  string
		output string
		tokens []string
	}
	tests := []test{
		{"a\nb\nc\n", "a\nb\nc\n", []string{"foo"}},
		{"a\nb\nc\n", "b\nc\n", []string{"a"}},
		{"a\nb\nc\n", "b\n", []string{"a", "c"}},
		{"START RequestId: x\nhi\nEND RequestId: x\nREPORT RequestId: x\n", "hi\n", LambdaReportTokens},
	}
	for _, test := range tests {
		output := DropLinesWithAny(test.input, test.tokens...)
		if output != test.output {
			t.Errorf("got:\n%s\nwant:\n%s\n", output, test.output)
		}
	}
}

func TestLast(t *testing.T) {
	type test struct {
		input  []string
		output string
	}
	tests := []test{
		{nil, ""},
		{[]string{"a"}, "a"},
		{[]string{"arn:aws:sts::1:assumed-role", "name"}, "name"},
	}
	for _, test := range tests {
		output := Last(test.input)
		if output != test.output {
			t.Errorf("got:\n%s\nwant:\n%s\n", output, test.output)
		}
	}
}
