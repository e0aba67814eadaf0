package libstring_test

import (
	"testing"

	"github.com/bmatsuo/mlisp/lisptest"
)

func TestPackage(t *testing.T) {
	tests := lisptest.TestSuite{
		{"str", lisptest.TestSequence{
			{`(str)`, `""`, ""},
			{`(str "a" 1 "b")`, `"a1b"`, ""},
			{`(str '(1 "x") nil true)`, `"(1 x)niltrue"`, ""},
			{`(str 'sym)`, `"sym"`, ""},
		}},
		{"printing", lisptest.TestSequence{
			{`(pr-str "a" 1)`, `"\"a\" 1"`, ""},
			{`(pr-str)`, `""`, ""},
			{`(prn "a\n" 1)`, "nil", "\"a\\n\" 1\n"},
			{`(println "a" 1 '("b"))`, "nil", "a 1 (b)\n"},
			{`(println)`, "nil", "\n"},
		}},
		{"format", lisptest.TestSequence{
			{`(format "x={} y={}" 1 "s")`, `"x=1 y=s"`, ""},
			{`(format "{{}}")`, `"{}"`, ""},
			{`(format "{}")`, `format: too many formatting directives for supplied values`, ""},
			{`(format "{x}" 1)`, `format: formatting directives must be empty`, ""},
			{`(format "}")`, `format: unexpected closing brace '}' outside of formatting directive`, ""},
			{`(format 1)`, `format: first argument is not a string: number`, ""},
		}},
		{"symbols", lisptest.TestSequence{
			{`(symbol "abc")`, "abc", ""},
			{`(symbol 1)`, "symbol: argument is not a string: number", ""},
			{`(symbol? 'a)`, "true", ""},
			{`(symbol? "a")`, "false", ""},
			{`(string? "a")`, "true", ""},
			{`(string? 'a)`, "false", ""},
		}},
	}
	lisptest.RunTestSuite(t, tests)
}
